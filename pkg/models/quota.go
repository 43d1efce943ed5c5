package models

import "time"

// QuotaDecisionKind is the admission outcome for a request.
type QuotaDecisionKind string

const (
	QuotaAllow  QuotaDecisionKind = "allow"
	QuotaWarn   QuotaDecisionKind = "warn"
	QuotaReject QuotaDecisionKind = "reject"
)

// Quota rejection / warning reasons.
const (
	QuotaReasonAccountSuspended  = "account_suspended"
	QuotaReasonAgentPaused       = "agent_paused"
	QuotaReasonAgentKilled       = "agent_killed"
	QuotaReasonCanceled          = "subscription_canceled"
	QuotaReasonPastDue           = "payment_past_due"
	QuotaReasonOverageExceeded   = "overage_threshold_exceeded"
	QuotaReasonQuotaExceeded     = "quota_exceeded"
	QuotaReasonApproachingQuota  = "approaching_quota"
)

// QuotaContext is the billing/containment state resolved for a request.
// Resolved via a single stored-procedure call with a 5-minute cache; any
// resolution failure yields the free-tier default (never a hard fail).
type QuotaContext struct {
	AccountID            string            `json:"account_id"`
	PlanID               string            `json:"plan_id"`
	BillingModel         string            `json:"billing_model"`
	SubscriptionStatus   string            `json:"subscription_status"`
	IncludedChecks       int               `json:"included_checks"`
	CheckCountThisPeriod int               `json:"check_count_this_period"`
	OverageThreshold     int               `json:"overage_threshold"`
	PerCheckPrice        float64           `json:"per_check_price"`
	FeatureFlags         map[string]bool   `json:"feature_flags"`
	Limits               map[string]int    `json:"limits"`
	CurrentPeriodEnd     *time.Time        `json:"current_period_end,omitempty"`
	PastDueSince         *time.Time        `json:"past_due_since,omitempty"`
	IsSuspended          bool              `json:"is_suspended"`
	ContainmentStatus    ContainmentStatus `json:"containment_status"`
	AgentSettings        map[string]any    `json:"agent_settings,omitempty"`
}

// FreeTierQuotaContext is the fail-open default used when resolution fails.
func FreeTierQuotaContext() *QuotaContext {
	return &QuotaContext{
		PlanID:             "free",
		BillingModel:       "none",
		SubscriptionStatus: "active",
		ContainmentStatus:  ContainmentActive,
	}
}

// FeatureEnabled reports the flag value, defaulting to true when unset.
// Account feature flags gate optional pipeline stages (e.g.
// cryptographic_attestation); absence means enabled.
func (q *QuotaContext) FeatureEnabled(name string) bool {
	if q == nil || q.FeatureFlags == nil {
		return true
	}
	v, ok := q.FeatureFlags[name]
	if !ok {
		return true
	}
	return v
}

// QuotaDecision is the admission result plus response headers to merge.
type QuotaDecision struct {
	Kind    QuotaDecisionKind `json:"kind"`
	Reason  string            `json:"reason,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
}
