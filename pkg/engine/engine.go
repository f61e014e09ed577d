// Package engine evaluates guarded rules two ways. The Resolver walks an
// ordered chain and stops at the first satisfied guard, which suits
// conversational next-step selection. The Scorer evaluates every rule of an
// unordered set and ranks whatever fired, which suits incident diagnosis.
// Both are pure reads of the state they are given; the only mutable state in
// the system is the store or observation set owned by the caller.
package engine

import (
	"errors"

	"go.uber.org/zap"
)

// ErrBadRuleSet marks configuration errors caught when a Resolver or Scorer
// is built. Nothing that passes construction can fail at evaluation time.
var ErrBadRuleSet = errors.New("invalid rule set")

// Option configures a Resolver or Scorer.
type Option func(*options)

type options struct {
	log *zap.Logger
}

// WithLogger attaches a structured logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.log = l }
}

func newOptions(opts []Option) options {
	o := options{}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
