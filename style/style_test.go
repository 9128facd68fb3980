package style

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	p := Default()
	if p.Unbreakable != 1000000 || p.StronglyConnected != 1000 || p.Arithmetic != 42 {
		t.Errorf("unexpected stock penalties: %+v", p)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("stock penalties must validate: %v", err)
	}
}

func TestRead(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		expected Penalties
		wantErr  bool
	}{
		{
			name:     "empty document keeps defaults",
			doc:      "",
			expected: Default(),
		},
		{
			name: "partial override",
			doc:  "arithmetic: 50\n",
			expected: Penalties{
				Unbreakable:       DefaultUnbreakable,
				StronglyConnected: DefaultStronglyConnected,
				Arithmetic:        50,
			},
		},
		{
			name: "full override",
			doc: strings.Join([]string{
				"unbreakable: 2000000",
				"strongly_connected: 5000",
				"arithmetic: 100",
			}, "\n"),
			expected: Penalties{
				Unbreakable:       2000000,
				StronglyConnected: 5000,
				Arithmetic:        100,
			},
		},
		{
			name:    "broken ordering",
			doc:     "strongly_connected: 10\n",
			wantErr: true,
		},
		{
			name:    "non-positive arithmetic",
			doc:     "arithmetic: 0\n",
			wantErr: true,
		},
		{
			name:    "unbreakable below strong connection",
			doc:     "unbreakable: 500\n",
			wantErr: true,
		},
		{
			name:    "not yaml at all",
			doc:     "{unterminated",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Read(strings.NewReader(tt.doc))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("an error was expected, got %+v", p)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, p)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.yaml")
	if err := os.WriteFile(path, []byte("arithmetic: 64\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Arithmetic != 64 || p.Unbreakable != DefaultUnbreakable {
		t.Errorf("unexpected penalties: %+v", p)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("an error was expected for a missing file")
	}
}
