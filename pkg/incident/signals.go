package incident

import "verdict/pkg/facts"

// Trigger is the top-level symptom that starts an investigation. Nothing in
// this rule set fires without it.
const Trigger = facts.Signal("service returns 500 for all requests")

// Signals the cause rules know about. Producers (monitoring pipelines,
// manual triage input) are expected to use these exact labels.
const (
	SignalDBInstanceDown     = facts.Signal("db instance down")
	SignalDBConnRefused      = facts.Signal("db connection refused")
	SignalDBTimeouts         = facts.Signal("db queries timing out")
	SignalHealthCheckFailing = facts.Signal("health check failing")
	SignalConnPoolExhausted  = facts.Signal("connection pool exhausted")

	SignalRecentDeploy   = facts.Signal("deploy in the last hour")
	SignalCrashLoop      = facts.Signal("crash loop after deploy")
	SignalErrorRateSpike = facts.Signal("error rate spiked after deploy")

	SignalUpstreamDown       = facts.Signal("upstream dependency hard down")
	SignalUpstreamTimeouts   = facts.Signal("upstream dependency timeouts")
	SignalCircuitBreakerOpen = facts.Signal("circuit breaker open")

	SignalCertExpired       = facts.Signal("certificate expired")
	SignalTLSHandshakeFails = facts.Signal("tls handshake failures")

	SignalOOMKills    = facts.Signal("out of memory kills")
	SignalDiskFull    = facts.Signal("disk full")
	SignalFDExhausted = facts.Signal("file descriptors exhausted")
	SignalPodRestarts = facts.Signal("pod restarts climbing")

	SignalBadConfigRollout = facts.Signal("bad config rollout")
	SignalMissingSecret    = facts.Signal("missing secret")
)

// Root causes this set can point at. Each has a playbook in the default
// catalog; the scorer refuses to build if they drift apart.
const (
	CauseDatabaseOutage     = "database_outage"
	CauseBadDeploy          = "bad_deploy"
	CauseDependencyOutage   = "dependency_outage"
	CauseExpiredCertificate = "expired_certificate"
	CauseResourceExhaustion = "resource_exhaustion"
	CauseConfigError        = "config_error"
	CauseUnknown            = "unknown"
)
