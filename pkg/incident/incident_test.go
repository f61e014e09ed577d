package incident

import (
	"errors"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"verdict/pkg/catalog"
	"verdict/pkg/engine"
	"verdict/pkg/facts"
)

func diagnose(t *testing.T, signals ...facts.Signal) []engine.Diagnosis {
	t.Helper()
	got, err := Diagnose(facts.NewObservationSet(signals...))
	if err != nil {
		t.Fatalf("Diagnose failed: %v", err)
	}
	return got
}

func find(t *testing.T, ds []engine.Diagnosis, cause string) engine.Diagnosis {
	t.Helper()
	for _, d := range ds {
		if d.Cause == cause {
			return d
		}
	}
	t.Fatalf("No diagnosis for cause %s in %v", cause, ds)
	return engine.Diagnosis{}
}

func playbook(t *testing.T, cause string) []catalog.ActionID {
	t.Helper()
	actions, err := ActionsFor(cause)
	if err != nil {
		t.Fatalf("ActionsFor %s failed: %v", cause, err)
	}
	return actions
}

func TestDiagnoseDatabaseRefused(t *testing.T) {
	got := diagnose(t, Trigger, SignalDBConnRefused)

	want := []engine.Diagnosis{
		{
			Cause:    CauseDatabaseOutage,
			Score:    95,
			Evidence: []facts.Signal{Trigger, SignalDBConnRefused},
			Actions:  playbook(t, CauseDatabaseOutage),
		},
		{
			Cause:    CauseUnknown,
			Score:    10,
			Evidence: []facts.Signal{Trigger},
			Actions:  playbook(t, CauseUnknown),
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Diagnosis mismatch (-want +got):\n%s", diff)
	}
}

func TestDiagnoseHealthCheckBonus(t *testing.T) {
	got := diagnose(t, Trigger, SignalDBConnRefused, SignalHealthCheckFailing)

	d := find(t, got, CauseDatabaseOutage)
	if d.Score != 98 {
		t.Errorf("Expected score 98 with the health-check corroboration, got %d", d.Score)
	}
	wantEvidence := []facts.Signal{Trigger, SignalDBConnRefused, SignalHealthCheckFailing}
	if diff := cmp.Diff(wantEvidence, d.Evidence); diff != "" {
		t.Errorf("Evidence mismatch (-want +got):\n%s", diff)
	}

	// The fallback is unaffected
	if u := find(t, got, CauseUnknown); u.Score != 10 {
		t.Errorf("Expected fallback at 10, got %d", u.Score)
	}
}

func TestDiagnoseNoTrigger(t *testing.T) {
	// 1. Strong signals without the trigger symptom: nothing to diagnose
	if got := diagnose(t, SignalDBConnRefused, SignalDBInstanceDown); len(got) != 0 {
		t.Errorf("Expected no diagnoses without the trigger, got %d", len(got))
	}

	// 2. Nothing observed at all
	if got := diagnose(t); len(got) != 0 {
		t.Errorf("Expected no diagnoses for empty observations, got %d", len(got))
	}
}

func TestDiagnoseFallbackAlone(t *testing.T) {
	got := diagnose(t, Trigger)

	if len(got) != 1 {
		t.Fatalf("Expected only the fallback, got %d diagnoses", len(got))
	}
	if got[0].Cause != CauseUnknown || got[0].Score != 10 {
		t.Errorf("Expected unknown at 10, got %s at %d", got[0].Cause, got[0].Score)
	}
	if diff := cmp.Diff([]facts.Signal{Trigger}, got[0].Evidence); diff != "" {
		t.Errorf("Evidence mismatch (-want +got):\n%s", diff)
	}
}

func TestDiagnoseRanking(t *testing.T) {
	got := diagnose(t,
		Trigger, SignalDBConnRefused, SignalUpstreamTimeouts,
		SignalCircuitBreakerOpen, SignalCertExpired,
	)

	var causes []string
	var scores []int
	for _, d := range got {
		causes = append(causes, d.Cause)
		scores = append(scores, d.Score)
	}

	wantCauses := []string{
		CauseDatabaseOutage, CauseExpiredCertificate, CauseDependencyOutage, CauseUnknown,
	}
	wantScores := []int{95, 89, 84, 10}
	if diff := cmp.Diff(wantCauses, causes); diff != "" {
		t.Errorf("Ranking mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantScores, scores); diff != "" {
		t.Errorf("Score mismatch (-want +got):\n%s", diff)
	}
}

func TestDiagnoseBadDeployRequires(t *testing.T) {
	// 1. A crash loop alone is not pinned on a deploy that never happened
	got := diagnose(t, Trigger, SignalCrashLoop)
	for _, d := range got {
		if d.Cause == CauseBadDeploy {
			t.Fatal("Expected bad_deploy to be withheld without a recent deploy")
		}
	}

	// 2. With the deploy context the rule fires and cites it
	got = diagnose(t, Trigger, SignalCrashLoop, SignalRecentDeploy)
	d := find(t, got, CauseBadDeploy)
	if d.Score != 92 {
		t.Errorf("Expected score 92, got %d", d.Score)
	}
	wantEvidence := []facts.Signal{Trigger, SignalCrashLoop, SignalRecentDeploy}
	if diff := cmp.Diff(wantEvidence, d.Evidence); diff != "" {
		t.Errorf("Evidence mismatch (-want +got):\n%s", diff)
	}
}

func TestDiagnoseConfigError(t *testing.T) {
	got := diagnose(t, Trigger, SignalBadConfigRollout, SignalRecentDeploy)

	// 1. The deploy corroborates the config rollout without raising the score
	d := find(t, got, CauseConfigError)
	if d.Score != 75 {
		t.Errorf("Expected score 75, got %d", d.Score)
	}
	wantEvidence := []facts.Signal{Trigger, SignalBadConfigRollout, SignalRecentDeploy}
	if diff := cmp.Diff(wantEvidence, d.Evidence); diff != "" {
		t.Errorf("Evidence mismatch (-want +got):\n%s", diff)
	}

	// 2. bad_deploy stays quiet: its own base symptoms were not observed
	for _, d := range got {
		if d.Cause == CauseBadDeploy {
			t.Error("Expected bad_deploy to be withheld without crash or error-rate signals")
		}
	}
}

func TestDiagnoseResourceExhaustion(t *testing.T) {
	got := diagnose(t, Trigger, SignalDiskFull, SignalOOMKills, SignalPodRestarts)

	// OOM is the first declared alternative, so it supplies base and
	// evidence; disk full is observed but not cited.
	d := find(t, got, CauseResourceExhaustion)
	if d.Score != 87 {
		t.Errorf("Expected score 87 (85 base + 2 restarts), got %d", d.Score)
	}
	wantEvidence := []facts.Signal{Trigger, SignalOOMKills, SignalPodRestarts}
	if diff := cmp.Diff(wantEvidence, d.Evidence); diff != "" {
		t.Errorf("Evidence mismatch (-want +got):\n%s", diff)
	}
}

func TestRuleSetCatalogAligned(t *testing.T) {
	// 1. The shipped rule set builds against the shipped catalog
	if _, err := NewScorer(); err != nil {
		t.Fatalf("NewScorer failed: %v", err)
	}

	// 2. Rule causes and catalog causes are exactly the same set
	var causes []string
	for _, r := range RuleSet().Rules {
		causes = append(causes, r.Cause)
	}
	sort.Strings(causes)

	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default failed: %v", err)
	}
	if diff := cmp.Diff(cat.Causes(), causes); diff != "" {
		t.Errorf("Rule causes diverge from catalog (-catalog +rules):\n%s", diff)
	}
}

func TestActionsFor(t *testing.T) {
	actions, err := ActionsFor(CauseDatabaseOutage)
	if err != nil {
		t.Fatalf("ActionsFor failed: %v", err)
	}
	if len(actions) == 0 {
		t.Fatal("Expected a non-empty playbook")
	}

	if _, err := ActionsFor("alien_invasion"); !errors.Is(err, catalog.ErrUnknownCause) {
		t.Errorf("Expected ErrUnknownCause, got %v", err)
	}
}
