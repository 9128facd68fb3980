package pysplit

import (
	"github.com/rs/zerolog"

	"github.com/sirkon/pysplit/pytree"
	"github.com/sirkon/pysplit/internal/splitpenalty"
	"github.com/sirkon/pysplit/style"
)

// Penalty sentinels with the stock style. A leaf penalty at or above
// Unbreakable forbids a break before its token; any other present value
// is a cost for the layout solver; an absent penalty means the solver's
// own default applies.
const (
	Unbreakable       = style.DefaultUnbreakable
	StronglyConnected = style.DefaultStronglyConnected
	Arithmetic        = style.DefaultArithmetic
)

// Option adjusts a single annotation run.
type Option func(*config)

type config struct {
	pen style.Penalties
	log zerolog.Logger
}

// WithPenalties replaces the stock penalty values, e.g. with a set
// loaded from a user style document.
func WithPenalties(pen style.Penalties) Option {
	return func(c *config) {
		c.pen = pen
	}
}

// WithLogger enables per-rule trace logging during the pass.
func WithLogger(log zerolog.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}

// Annotate walks the tree once and records a split penalty on every
// token a construct rule applies to. The tree is mutated in place and
// must not be shared during the call; annotating an already annotated
// tree changes nothing.
//
// The input tree must be grammar-conformant. Malformed trees panic
// rather than being repaired: tree correctness is the parser's job.
func Annotate(root pytree.Node, opts ...Option) {
	cfg := config{
		pen: style.Default(),
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	splitpenalty.ComputeSplitPenalties(root, cfg.pen, cfg.log)
}
