package engine

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"verdict/internal/logging"
	"verdict/pkg/catalog"
	"verdict/pkg/facts"
	"verdict/pkg/rules"
)

// Diagnosis is one scored candidate root cause: the evidence that justifies
// it and the playbook to act on it. Immutable once built. Evidence is
// ordered, deduplicated, and drawn entirely from the input observations.
type Diagnosis struct {
	Cause    string
	Score    int
	Evidence []facts.Signal
	Actions  []catalog.ActionID
}

// MarshalLogObject renders the diagnosis for structured logging.
func (d Diagnosis) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("cause", d.Cause)
	enc.AddInt("score", d.Score)
	return enc.AddArray("evidence", zapcore.ArrayMarshalerFunc(func(ae zapcore.ArrayEncoder) error {
		for _, s := range d.Evidence {
			ae.AppendString(string(s))
		}
		return nil
	}))
}

// Scorer evaluates every rule of a diagnosis set against an observation set
// and ranks the results. Unlike the Resolver it never stops at the first
// match: each firing rule contributes one diagnosis.
//
// A scorer is immutable after construction and safe to share across
// concurrent investigations.
type Scorer struct {
	set rules.DiagnosisSet
	cat *catalog.Catalog
	log *zap.Logger
}

// NewScorer validates the rule set against the catalog and builds a scorer.
// Every failure here is a configuration error: a cause a rule can reach must
// have a playbook before any evaluation runs, never discovered mid-incident.
func NewScorer(set rules.DiagnosisSet, cat *catalog.Catalog, opts ...Option) (*Scorer, error) {
	o := newOptions(opts)
	if set.Trigger == "" {
		return nil, fmt.Errorf("%w: empty trigger signal", ErrBadRuleSet)
	}
	if len(set.Rules) == 0 {
		return nil, fmt.Errorf("%w: no rules", ErrBadRuleSet)
	}
	if cat == nil {
		return nil, fmt.Errorf("%w: nil catalog", ErrBadRuleSet)
	}
	seen := make(map[string]struct{}, len(set.Rules))
	for i, rule := range set.Rules {
		if rule.Cause == "" {
			return nil, fmt.Errorf("%w: rule %d has no cause", ErrBadRuleSet, i)
		}
		if _, dup := seen[rule.Cause]; dup {
			return nil, fmt.Errorf("%w: duplicate cause %q", ErrBadRuleSet, rule.Cause)
		}
		seen[rule.Cause] = struct{}{}
		if len(rule.Base) == 0 {
			return nil, fmt.Errorf("%w: cause %q has no base alternatives", ErrBadRuleSet, rule.Cause)
		}
		for _, b := range rule.Base {
			if b.Signal == "" {
				return nil, fmt.Errorf("%w: cause %q has a base alternative with no signal", ErrBadRuleSet, rule.Cause)
			}
			if b.Score < 0 {
				return nil, fmt.Errorf("%w: cause %q has negative base score %d", ErrBadRuleSet, rule.Cause, b.Score)
			}
		}
		for _, req := range rule.Requires {
			if req == "" {
				return nil, fmt.Errorf("%w: cause %q requires an empty signal", ErrBadRuleSet, rule.Cause)
			}
		}
		for _, c := range rule.Corroborate {
			if c.Signal == "" {
				return nil, fmt.Errorf("%w: cause %q has a corroboration with no signal", ErrBadRuleSet, rule.Cause)
			}
			if c.Bonus < 0 {
				return nil, fmt.Errorf("%w: cause %q has negative bonus %d", ErrBadRuleSet, rule.Cause, c.Bonus)
			}
		}
		if _, err := cat.ActionsFor(rule.Cause); err != nil {
			return nil, fmt.Errorf("%w: cause %q has no playbook: %w", ErrBadRuleSet, rule.Cause, err)
		}
	}
	cp := set
	cp.Rules = make([]rules.DiagnosisRule, len(set.Rules))
	copy(cp.Rules, set.Rules)
	return &Scorer{set: cp, cat: cat, log: logging.Named(o.log, logging.Scorer)}, nil
}

// Diagnose evaluates the whole rule set and returns the ranked diagnoses.
// When the trigger symptom itself has not been observed the scorer
// short-circuits to an empty result without evaluating any rule.
func (s *Scorer) Diagnose(obs *facts.ObservationSet) []Diagnosis {
	timer := logging.StartTimer(s.log, "diagnose")
	defer timer.Stop()

	if !obs.Contains(s.set.Trigger) {
		s.log.Debug("trigger absent, nothing to diagnose",
			zap.String("trigger", string(s.set.Trigger)))
		return nil
	}

	var out []Diagnosis
	for _, rule := range s.set.Rules {
		d, ok := s.evaluate(rule, obs)
		if !ok {
			continue
		}
		s.log.Debug("rule fired", zap.Object("diagnosis", d))
		out = append(out, d)
	}
	rank(out)
	s.log.Debug("diagnosis complete",
		zap.Int("matches", len(out)),
		zap.Array("observed", obs))
	return out
}

// evaluate applies one rule. A false return is a normal non-match.
func (s *Scorer) evaluate(rule rules.DiagnosisRule, obs *facts.ObservationSet) (Diagnosis, bool) {
	for _, req := range rule.Requires {
		if !obs.Contains(req) {
			return Diagnosis{}, false
		}
	}
	base, ok := selectBase(rule.Base, obs)
	if !ok {
		return Diagnosis{}, false
	}

	score := base.Score
	evidence := appendSignal(nil, s.set.Trigger)
	evidence = appendSignal(evidence, base.Signal)
	for _, req := range rule.Requires {
		evidence = appendSignal(evidence, req)
	}
	for _, c := range rule.Corroborate {
		if !obs.Contains(c.Signal) {
			continue
		}
		score += c.Bonus
		evidence = appendSignal(evidence, c.Signal)
	}

	actions, err := s.cat.ActionsFor(rule.Cause)
	if err != nil {
		// Validated at construction; an immutable catalog cannot lose entries.
		s.log.Error("cause missing from catalog", zap.String("cause", rule.Cause), zap.Error(err))
		return Diagnosis{}, false
	}

	return Diagnosis{
		Cause:    rule.Cause,
		Score:    score,
		Evidence: evidence,
		Actions:  actions,
	}, true
}

// selectBase picks the first declared alternative whose signal is observed.
// None observed means the rule does not fire; there is no default score.
func selectBase(alts []rules.BaseScore, obs *facts.ObservationSet) (rules.BaseScore, bool) {
	for _, alt := range alts {
		if obs.Contains(alt.Signal) {
			return alt, true
		}
	}
	return rules.BaseScore{}, false
}

// appendSignal grows an evidence list, skipping signals already cited.
func appendSignal(evidence []facts.Signal, sig facts.Signal) []facts.Signal {
	for _, e := range evidence {
		if e == sig {
			return evidence
		}
	}
	return append(evidence, sig)
}
