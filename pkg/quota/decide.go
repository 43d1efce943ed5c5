// Package quota decides request admission from billing and containment state.
// The decision function is pure; the surrounding cache is lossy by design and
// every failure degrades to the free tier (fail-open).
package quota

import (
	"fmt"
	"time"

	"github.com/mnemom/smoltbot/pkg/models"
)

// Quota thresholds, as fractions of included checks.
const (
	warnThreshold     = 0.8
	developerGraceDur = 7 * 24 * time.Hour
)

// Decide evaluates the admission table for a resolved quota context.
func Decide(qc *models.QuotaContext, now time.Time) models.QuotaDecision {
	if qc == nil {
		qc = models.FreeTierQuotaContext()
	}

	if qc.IsSuspended {
		return reject(models.QuotaReasonAccountSuspended)
	}
	switch qc.ContainmentStatus {
	case models.ContainmentPaused:
		return reject(models.QuotaReasonAgentPaused)
	case models.ContainmentKilled:
		return reject(models.QuotaReasonAgentKilled)
	}

	if qc.PlanID == "free" || qc.BillingModel == "none" {
		return allow()
	}
	if qc.PlanID == "enterprise" {
		return allow()
	}

	switch qc.SubscriptionStatus {
	case "canceled":
		return reject(models.QuotaReasonCanceled)
	case "past_due":
		if qc.PlanID == "team" {
			return reject(models.QuotaReasonPastDue)
		}
		if qc.PlanID == "developer" {
			if qc.PastDueSince != nil && now.Sub(*qc.PastDueSince) > developerGraceDur {
				return reject(models.QuotaReasonPastDue)
			}
			// Developer plan gets a grace window.
		}
	}

	if qc.IncludedChecks > 0 {
		used := float64(qc.CheckCountThisPeriod) / float64(qc.IncludedChecks)
		percent := int(used * 100)

		if qc.OverageThreshold > 0 && qc.CheckCountThisPeriod >= qc.OverageThreshold {
			return reject(models.QuotaReasonOverageExceeded)
		}
		if used >= 1.0 {
			return warn(models.QuotaReasonQuotaExceeded, percent)
		}
		if used >= warnThreshold {
			return warn(models.QuotaReasonApproachingQuota, percent)
		}
		d := allow()
		d.Headers = usageHeaders(percent, "")
		return d
	}

	return allow()
}

func allow() models.QuotaDecision {
	return models.QuotaDecision{Kind: models.QuotaAllow}
}

func reject(reason string) models.QuotaDecision {
	return models.QuotaDecision{Kind: models.QuotaReject, Reason: reason}
}

func warn(reason string, percent int) models.QuotaDecision {
	return models.QuotaDecision{
		Kind:    models.QuotaWarn,
		Reason:  reason,
		Headers: usageHeaders(percent, reason),
	}
}

func usageHeaders(percent int, warning string) map[string]string {
	h := map[string]string{
		"X-Mnemom-Usage-Percent": fmt.Sprintf("%d", percent),
	}
	if warning != "" {
		h["X-Mnemom-Usage-Warning"] = warning
	}
	return h
}
