package gateway

import (
	"net/http"

	"github.com/mnemom/smoltbot/pkg/models"
)

// Client-facing error envelope types.
const (
	errTypeAuthentication = "authentication_error"
	errTypeBilling        = "billing_error"
	errTypeContainment    = "containment_error"
	errTypeIntegrity      = "integrity_violation"
)

// errorEnvelope is the JSON body for every gateway-originated error.
type errorEnvelope struct {
	Type       string         `json:"type"`
	Message    string         `json:"message"`
	Checkpoint map[string]any `json:"checkpoint,omitempty"`
}

func authenticationError() (int, errorEnvelope) {
	return http.StatusUnauthorized, errorEnvelope{
		Type:    errTypeAuthentication,
		Message: "missing provider credential header",
	}
}

func billingIdentityError() (int, errorEnvelope) {
	return http.StatusUnauthorized, errorEnvelope{
		Type:    errTypeAuthentication,
		Message: "billing identity does not match this agent",
	}
}

// admissionError maps a quota rejection to the right status and envelope.
// Containment reasons are 403; everything else is a billing refusal (402).
func admissionError(reason string) (int, errorEnvelope) {
	switch reason {
	case models.QuotaReasonAgentPaused, models.QuotaReasonAgentKilled:
		return http.StatusForbidden, errorEnvelope{
			Type:    errTypeContainment,
			Message: "agent is contained: " + reason,
		}
	default:
		return http.StatusPaymentRequired, errorEnvelope{
			Type:    errTypeBilling,
			Message: "request refused: " + reason,
		}
	}
}

// violationEnvelope replaces the upstream body under enforce mode. Only the
// category-level checkpoint summary is included, never evidence text.
func violationEnvelope(cp *models.IntegrityCheckpoint, action models.Action) errorEnvelope {
	categories := make([]string, 0, len(cp.Concerns))
	for _, concern := range cp.Concerns {
		categories = append(categories, string(concern.Category))
	}
	return errorEnvelope{
		Type:    errTypeIntegrity,
		Message: "response blocked by integrity enforcement",
		Checkpoint: map[string]any{
			"checkpoint_id":      cp.CheckpointID,
			"verdict":            cp.Verdict,
			"concern_categories": categories,
			"recommended_action": action,
		},
	}
}
