// Package incident ships the production-incident diagnosis rule set: which
// root causes to suspect, how strongly, and what to do about each, given
// the currently observed signals. It is the all-matches counterpart to the
// carsales conversation chain.
package incident

import (
	"verdict/pkg/catalog"
	"verdict/pkg/engine"
	"verdict/pkg/facts"
	"verdict/pkg/rules"
)

// The fallback diagnosis always scores lowest; every specific cause outranks
// it by construction.
const fallbackScore = 10

// RuleSet returns the diagnosis rules. Scores express relative urgency, not
// probability. Base alternatives go from hard evidence down to weaker
// symptoms of the same cause; the first one observed wins.
func RuleSet() rules.DiagnosisSet {
	return rules.DiagnosisSet{
		Trigger: Trigger,
		Rules: []rules.DiagnosisRule{
			{
				Cause: CauseDatabaseOutage,
				Base: []rules.BaseScore{
					{Signal: SignalDBInstanceDown, Score: 98},
					{Signal: SignalDBConnRefused, Score: 95},
					{Signal: SignalDBTimeouts, Score: 88},
				},
				Corroborate: []rules.Corroboration{
					{Signal: SignalHealthCheckFailing, Bonus: 3},
					{Signal: SignalConnPoolExhausted},
				},
			},
			{
				Cause:    CauseBadDeploy,
				Requires: []facts.Signal{SignalRecentDeploy},
				Base: []rules.BaseScore{
					{Signal: SignalCrashLoop, Score: 92},
					{Signal: SignalErrorRateSpike, Score: 90},
				},
				Corroborate: []rules.Corroboration{
					{Signal: SignalHealthCheckFailing, Bonus: 3},
				},
			},
			{
				Cause: CauseDependencyOutage,
				Base: []rules.BaseScore{
					{Signal: SignalUpstreamDown, Score: 90},
					{Signal: SignalUpstreamTimeouts, Score: 80},
				},
				Corroborate: []rules.Corroboration{
					{Signal: SignalCircuitBreakerOpen, Bonus: 4},
				},
			},
			{
				Cause: CauseExpiredCertificate,
				Base: []rules.BaseScore{
					{Signal: SignalCertExpired, Score: 89},
					{Signal: SignalTLSHandshakeFails, Score: 72},
				},
			},
			{
				Cause: CauseResourceExhaustion,
				Base: []rules.BaseScore{
					{Signal: SignalOOMKills, Score: 85},
					{Signal: SignalDiskFull, Score: 84},
					{Signal: SignalFDExhausted, Score: 78},
				},
				Corroborate: []rules.Corroboration{
					{Signal: SignalPodRestarts, Bonus: 2},
				},
			},
			{
				Cause: CauseConfigError,
				Base: []rules.BaseScore{
					{Signal: SignalBadConfigRollout, Score: 75},
					{Signal: SignalMissingSecret, Score: 70},
				},
				Corroborate: []rules.Corroboration{
					{Signal: SignalRecentDeploy},
				},
			},
			// Catch-all: the trigger alone is enough to start general triage,
			// so an investigation never comes back empty-handed.
			{
				Cause: CauseUnknown,
				Base: []rules.BaseScore{
					{Signal: Trigger, Score: fallbackScore},
				},
			},
		},
	}
}

// NewScorer wires the rule set to the embedded playbook catalog. It fails
// if the two have drifted apart: a reachable cause without a playbook is a
// configuration error and surfaces here, never mid-incident.
func NewScorer(opts ...engine.Option) (*engine.Scorer, error) {
	cat, err := catalog.Default()
	if err != nil {
		return nil, err
	}
	return engine.NewScorer(RuleSet(), cat, opts...)
}

// Diagnose runs the default scorer over an observation set and returns the
// ranked diagnoses. Empty when the trigger symptom is absent.
func Diagnose(obs *facts.ObservationSet) ([]engine.Diagnosis, error) {
	s, err := NewScorer()
	if err != nil {
		return nil, err
	}
	return s.Diagnose(obs), nil
}

// ActionsFor exposes a cause's playbook without a full diagnosis run.
func ActionsFor(cause string) ([]catalog.ActionID, error) {
	cat, err := catalog.Default()
	if err != nil {
		return nil, err
	}
	return cat.ActionsFor(cause)
}
