// Package rules defines the rule shapes shared by the engine's two
// evaluation strategies: ordered action rules resolved first-match for
// conversational flows, and unordered diagnosis rules scored all-matches
// for incident triage. Rules are plain values, declared in code and
// immutable once handed to an engine.
package rules

import (
	"go.uber.org/zap/zapcore"

	"verdict/pkg/facts"
)

// Action is a decision output: a directive kind plus any bound values.
// A zero-argument directive carries no Args.
type Action struct {
	Kind string
	Args []interface{}
}

// String renders the action in functor notation.
func (a Action) String() string {
	return facts.Fact{Name: a.Kind, Args: a.Args}.String()
}

// MarshalLogObject renders the action for structured logging.
func (a Action) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	return facts.Fact{Name: a.Kind, Args: a.Args}.MarshalLogObject(enc)
}

// ActionRule guards one conversational action. Rules are evaluated in
// declaration order; the chain's order is its priority contract.
type ActionRule struct {
	// Name identifies the rule and, when Fire is nil, the action kind.
	Name string
	// When gates the rule. It must be a pure read of the store.
	When func(*facts.Store) bool
	// Fire binds values into one or more actions of a single kind. A nil
	// Fire yields the zero-argument directive Action{Kind: Name}. A non-nil
	// Fire must produce at least one action whenever When held.
	Fire func(*facts.Store) []Action
}

// BaseScore is one ordered alternative for a diagnosis rule's base score.
type BaseScore struct {
	Signal facts.Signal
	Score  int
}

// Corroboration is an optional evidence signal, appended only when
// observed. A positive Bonus adds to the diagnosis score; zero means the
// signal corroborates without changing it.
type Corroboration struct {
	Signal facts.Signal
	Bonus  int
}

// DiagnosisRule scores one candidate root cause.
//
// The guard is implicit in the data: the rule fires when the set's trigger,
// every Requires signal, and at least one Base alternative are all
// observed. The first observed Base alternative supplies the base score and
// the evidentiary cause signal; when none is observed the rule contributes
// nothing, and no default score is invented.
type DiagnosisRule struct {
	Cause       string
	Requires    []facts.Signal
	Base        []BaseScore
	Corroborate []Corroboration
}

// DiagnosisSet is an unordered collection of diagnosis rules gated by one
// top-level trigger symptom. Rule order never affects results.
type DiagnosisSet struct {
	Trigger facts.Signal
	Rules   []DiagnosisRule
}
