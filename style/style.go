// Package style holds the penalty value set the annotation pass works
// with, together with YAML loading for user style documents.
package style

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Default penalty values. Any value at or above Unbreakable means a break
// is forbidden outright; the others are costs for the layout solver to
// weigh.
const (
	DefaultUnbreakable       = 1000 * 1000
	DefaultStronglyConnected = 1000
	DefaultArithmetic        = 42
)

// Penalties is the set of penalty values used by the construct rules.
type Penalties struct {
	// Unbreakable forbids a break.
	Unbreakable int `yaml:"unbreakable"`

	// StronglyConnected permits a break only as a last resort.
	StronglyConnected int `yaml:"strongly_connected"`

	// Arithmetic mildly discourages breaking inside arithmetic chains.
	Arithmetic int `yaml:"arithmetic"`
}

// Default returns the stock penalty set.
func Default() Penalties {
	return Penalties{
		Unbreakable:       DefaultUnbreakable,
		StronglyConnected: DefaultStronglyConnected,
		Arithmetic:        DefaultArithmetic,
	}
}

// Validate checks the ordering the construct rules rely on: arithmetic
// glue must stay weaker than strong connection, which must stay weaker
// than the unbreakable sentinel.
func (p Penalties) Validate() error {
	if p.Arithmetic <= 0 {
		return fmt.Errorf("arithmetic penalty must be positive, got %d", p.Arithmetic)
	}
	if p.StronglyConnected <= p.Arithmetic {
		return fmt.Errorf(
			"strongly_connected (%d) must exceed arithmetic (%d)",
			p.StronglyConnected, p.Arithmetic,
		)
	}
	if p.Unbreakable <= p.StronglyConnected {
		return fmt.Errorf(
			"unbreakable (%d) must exceed strongly_connected (%d)",
			p.Unbreakable, p.StronglyConnected,
		)
	}
	return nil
}

// Read decodes a style document over the defaults: fields missing from
// the document keep their stock values.
func Read(r io.Reader) (Penalties, error) {
	p := Default()

	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&p); err != nil {
		if err == io.EOF {
			// An empty document means the defaults.
			return p, nil
		}
		return Penalties{}, fmt.Errorf("decode style document: %w", err)
	}

	if err := p.Validate(); err != nil {
		return Penalties{}, fmt.Errorf("validate style document: %w", err)
	}

	return p, nil
}

// Load reads a style document from a file.
func Load(path string) (Penalties, error) {
	file, err := os.Open(path)
	if err != nil {
		return Penalties{}, fmt.Errorf("open style document: %w", err)
	}
	defer file.Close()

	p, err := Read(file)
	if err != nil {
		return Penalties{}, fmt.Errorf("read style document %s: %w", path, err)
	}

	return p, nil
}
