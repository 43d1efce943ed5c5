package quota

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mnemom/smoltbot/pkg/models"
)

var decideNow = time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

func paidContext(plan string) *models.QuotaContext {
	return &models.QuotaContext{
		AccountID:          "acct_1",
		PlanID:             plan,
		BillingModel:       "subscription",
		SubscriptionStatus: "active",
		ContainmentStatus:  models.ContainmentActive,
	}
}

func TestDecideTable(t *testing.T) {
	pastDueRecent := decideNow.Add(-2 * 24 * time.Hour)
	pastDueStale := decideNow.Add(-10 * 24 * time.Hour)

	tests := []struct {
		name   string
		setup  func() *models.QuotaContext
		kind   models.QuotaDecisionKind
		reason string
	}{
		{
			name: "suspended account rejected first",
			setup: func() *models.QuotaContext {
				qc := paidContext("enterprise")
				qc.IsSuspended = true
				return qc
			},
			kind: models.QuotaReject, reason: models.QuotaReasonAccountSuspended,
		},
		{
			name: "paused agent rejected",
			setup: func() *models.QuotaContext {
				qc := paidContext("enterprise")
				qc.ContainmentStatus = models.ContainmentPaused
				return qc
			},
			kind: models.QuotaReject, reason: models.QuotaReasonAgentPaused,
		},
		{
			name: "killed agent rejected",
			setup: func() *models.QuotaContext {
				qc := paidContext("team")
				qc.ContainmentStatus = models.ContainmentKilled
				return qc
			},
			kind: models.QuotaReject, reason: models.QuotaReasonAgentKilled,
		},
		{
			name:  "free tier always allowed",
			setup: models.FreeTierQuotaContext,
			kind:  models.QuotaAllow,
		},
		{
			name: "enterprise always allowed",
			setup: func() *models.QuotaContext {
				qc := paidContext("enterprise")
				qc.SubscriptionStatus = "past_due"
				return qc
			},
			kind: models.QuotaAllow,
		},
		{
			name: "canceled subscription rejected",
			setup: func() *models.QuotaContext {
				qc := paidContext("developer")
				qc.SubscriptionStatus = "canceled"
				return qc
			},
			kind: models.QuotaReject, reason: models.QuotaReasonCanceled,
		},
		{
			name: "team past due rejected immediately",
			setup: func() *models.QuotaContext {
				qc := paidContext("team")
				qc.SubscriptionStatus = "past_due"
				qc.PastDueSince = &pastDueRecent
				return qc
			},
			kind: models.QuotaReject, reason: models.QuotaReasonPastDue,
		},
		{
			name: "developer past due within grace allowed",
			setup: func() *models.QuotaContext {
				qc := paidContext("developer")
				qc.SubscriptionStatus = "past_due"
				qc.PastDueSince = &pastDueRecent
				return qc
			},
			kind: models.QuotaAllow,
		},
		{
			name: "developer past due beyond grace rejected",
			setup: func() *models.QuotaContext {
				qc := paidContext("developer")
				qc.SubscriptionStatus = "past_due"
				qc.PastDueSince = &pastDueStale
				return qc
			},
			kind: models.QuotaReject, reason: models.QuotaReasonPastDue,
		},
		{
			name: "overage threshold rejected",
			setup: func() *models.QuotaContext {
				qc := paidContext("developer")
				qc.IncludedChecks = 1000
				qc.CheckCountThisPeriod = 1500
				qc.OverageThreshold = 1500
				return qc
			},
			kind: models.QuotaReject, reason: models.QuotaReasonOverageExceeded,
		},
		{
			name: "quota exceeded warns",
			setup: func() *models.QuotaContext {
				qc := paidContext("developer")
				qc.IncludedChecks = 1000
				qc.CheckCountThisPeriod = 1000
				qc.OverageThreshold = 1500
				return qc
			},
			kind: models.QuotaWarn, reason: models.QuotaReasonQuotaExceeded,
		},
		{
			name: "approaching quota warns at 80 percent",
			setup: func() *models.QuotaContext {
				qc := paidContext("developer")
				qc.IncludedChecks = 1000
				qc.CheckCountThisPeriod = 800
				return qc
			},
			kind: models.QuotaWarn, reason: models.QuotaReasonApproachingQuota,
		},
		{
			name: "under quota allowed",
			setup: func() *models.QuotaContext {
				qc := paidContext("developer")
				qc.IncludedChecks = 1000
				qc.CheckCountThisPeriod = 100
				return qc
			},
			kind: models.QuotaAllow,
		},
		{
			name:  "nil context treated as free tier",
			setup: func() *models.QuotaContext { return nil },
			kind:  models.QuotaAllow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Decide(tt.setup(), decideNow)
			assert.Equal(t, tt.kind, d.Kind)
			assert.Equal(t, tt.reason, d.Reason)
		})
	}
}

func TestDecideUsageHeaders(t *testing.T) {
	qc := paidContext("developer")
	qc.IncludedChecks = 1000
	qc.CheckCountThisPeriod = 850

	d := Decide(qc, decideNow)
	assert.Equal(t, models.QuotaWarn, d.Kind)
	assert.Equal(t, "85", d.Headers["X-Mnemom-Usage-Percent"])
	assert.Equal(t, models.QuotaReasonApproachingQuota, d.Headers["X-Mnemom-Usage-Warning"])

	qc.CheckCountThisPeriod = 100
	d = Decide(qc, decideNow)
	assert.Equal(t, "10", d.Headers["X-Mnemom-Usage-Percent"])
	assert.Empty(t, d.Headers["X-Mnemom-Usage-Warning"])
}
