// Package integrity turns extracted reasoning into checkpoints and signals.
// It resolves the conscience-value layers, calls the analysis model, parses
// and re-derives the verdict, and tracks per-session windows and drift.
package integrity

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/mnemom/smoltbot/pkg/models"
)

// DeriveVerdict recomputes the verdict from the concern list. The analysis
// model's stated verdict is advisory only; the derived verdict is what gets
// stored and enforced.
//
// Rules:
//   - boundary_violation: any critical concern, or a high-severity concern in
//     prompt_injection, deceptive_reasoning, or value_misalignment
//   - review_needed: any remaining medium-or-higher concern
//   - clear: nothing at medium or above
func DeriveVerdict(concerns []models.Concern) models.Verdict {
	hasMediumPlus := false
	for _, c := range concerns {
		if c.Severity == models.SeverityCritical {
			return models.VerdictBoundaryViolation
		}
		if c.Severity == models.SeverityHigh {
			switch c.Category {
			case models.ConcernPromptInjection, models.ConcernDeceptiveReasoning, models.ConcernValueMisalignment:
				return models.VerdictBoundaryViolation
			default:
				hasMediumPlus = true
			}
			continue
		}
		if c.Severity == models.SeverityMedium {
			hasMediumPlus = true
		}
	}
	if hasMediumPlus {
		return models.VerdictReviewNeeded
	}
	return models.VerdictClear
}

// MapVerdictToAction picks the recommended action for a verdict.
// A review_needed verdict escalates to warn_user while a drift alert is
// active for the session.
func MapVerdictToAction(verdict models.Verdict, driftAlertActive bool) models.Action {
	switch verdict {
	case models.VerdictBoundaryViolation:
		return models.ActionDenyAndEscalate
	case models.VerdictReviewNeeded:
		if driftAlertActive {
			return models.ActionWarnUser
		}
		return models.ActionLogAndContinue
	default:
		return models.ActionContinue
	}
}

// Proceed reports whether the agent's request should be served normally.
func Proceed(verdict models.Verdict) bool {
	return verdict != models.VerdictBoundaryViolation
}

type normalizedConcern struct {
	Category    string `json:"category"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
	Evidence    string `json:"evidence"`
}

// HashConcerns hashes the normalized concern list: evidence truncated to
// MaxEvidenceLength, serialized as a JSON array in input order, SHA-256 hex.
func HashConcerns(concerns []models.Concern) string {
	normalized := make([]normalizedConcern, 0, len(concerns))
	for _, c := range concerns {
		n := c.Normalized()
		normalized = append(normalized, normalizedConcern{
			Category:    string(n.Category),
			Severity:    string(n.Severity),
			Description: n.Description,
			Evidence:    n.Evidence,
		})
	}
	raw, err := json.Marshal(normalized)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
