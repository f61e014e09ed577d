package engine

import (
	"fmt"

	"go.uber.org/zap"

	"verdict/internal/logging"
	"verdict/pkg/facts"
	"verdict/pkg/rules"
)

// Resolution is the outcome of a resolver pass: the rule that fired and the
// actions it bound. Every action shares one kind.
type Resolution struct {
	Rule    string
	Actions []rules.Action
}

// Kind returns the selected action kind, or "" for a nil resolution.
func (r *Resolution) Kind() string {
	if r == nil || len(r.Actions) == 0 {
		return ""
	}
	return r.Actions[0].Kind
}

// Resolver picks the single next action from an ordered rule chain.
// Declaration order is the priority contract: the first rule whose guard
// holds decides the outcome and later rules are never evaluated.
//
// A resolver is immutable after construction and safe to share across
// concurrent sessions; each session owns its store.
type Resolver struct {
	chain []rules.ActionRule
	log   *zap.Logger
}

// NewResolver validates the chain and builds a resolver.
func NewResolver(chain []rules.ActionRule, opts ...Option) (*Resolver, error) {
	o := newOptions(opts)
	if len(chain) == 0 {
		return nil, fmt.Errorf("%w: no rules", ErrBadRuleSet)
	}
	seen := make(map[string]struct{}, len(chain))
	for i, r := range chain {
		if r.Name == "" {
			return nil, fmt.Errorf("%w: rule %d has no name", ErrBadRuleSet, i)
		}
		if _, dup := seen[r.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate rule %q", ErrBadRuleSet, r.Name)
		}
		seen[r.Name] = struct{}{}
		if r.When == nil {
			return nil, fmt.Errorf("%w: rule %q has no guard", ErrBadRuleSet, r.Name)
		}
	}
	cp := make([]rules.ActionRule, len(chain))
	copy(cp, chain)
	return &Resolver{chain: cp, log: logging.Named(o.log, logging.Resolver)}, nil
}

// Resolve returns the first matching rule's actions, or nil when no guard
// holds. A nil resolution is a normal outcome, not an error.
func (r *Resolver) Resolve(store *facts.Store) *Resolution {
	timer := logging.StartTimer(r.log, "resolve")
	defer timer.Stop()

	for _, rule := range r.chain {
		if !rule.When(store) {
			continue
		}
		res := &Resolution{Rule: rule.Name}
		if rule.Fire == nil {
			res.Actions = []rules.Action{{Kind: rule.Name}}
		} else {
			res.Actions = rule.Fire(store)
		}
		r.log.Debug("rule fired",
			zap.String("rule", rule.Name),
			zap.Int("actions", len(res.Actions)))
		return res
	}
	r.log.Debug("no rule matched")
	return nil
}
