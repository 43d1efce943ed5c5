package observer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mnemom/smoltbot/pkg/integrity"
	"github.com/mnemom/smoltbot/pkg/models"
)

// Trace summarises one observed decision in alignment-protocol terms. It is
// attached to a checkpoint via linked_trace_id, never stored on its own.
type Trace struct {
	TraceID            string   `json:"trace_id"`
	AgentID            string   `json:"agent_id"`
	SessionID          string   `json:"session_id"`
	Alternatives       []string `json:"alternatives"`
	SelectionReasoning string   `json:"selection_reasoning"`
	ValuesApplied      []string `json:"values_applied"`
	Confidence         float64  `json:"confidence"`
}

const traceSystemPrompt = `You summarise an AI agent's reasoning into a decision trace.
Given the agent's internal reasoning and the user request, reply with exactly one JSON object:
{"alternatives": ["<option the agent considered>", ...], "selection_reasoning": "<one sentence on why the chosen path won>", "values_applied": ["<value name>", ...]}
List only alternatives actually visible in the reasoning. Keep values_applied to names of principles the reasoning explicitly weighed. No prose outside the JSON.`

type traceReply struct {
	Alternatives       []string `json:"alternatives"`
	SelectionReasoning string   `json:"selection_reasoning"`
	ValuesApplied      []string `json:"values_applied"`
}

// buildTrace runs the trace model over the reasoning and validates the reply
// against the agent's card. Confidence comes from reasoning length, not from
// the model.
func buildTrace(ctx context.Context, analyzer integrity.Analyzer, traceID, agentID, sessionID, thinking, userQuery string, card *models.AlignmentCard) (*Trace, error) {
	var user strings.Builder
	if userQuery != "" {
		user.WriteString("User request: ")
		user.WriteString(userQuery)
		user.WriteString("\n\n")
	}
	user.WriteString("Agent reasoning:\n")
	user.WriteString(thinking)

	reply, _, err := analyzer.Analyze(ctx, integrity.Prompt{
		System: traceSystemPrompt,
		User:   user.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("trace model call: %w", err)
	}

	raw := integrity.LargestJSONObject(reply)
	if raw == "" {
		return nil, fmt.Errorf("no JSON object in trace reply")
	}
	var parsed traceReply
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("trace reply not parseable: %w", err)
	}

	return &Trace{
		TraceID:            traceID,
		AgentID:            agentID,
		SessionID:          sessionID,
		Alternatives:       parsed.Alternatives,
		SelectionReasoning: parsed.SelectionReasoning,
		ValuesApplied:      validValues(parsed.ValuesApplied, card),
		Confidence:         reasoningConfidence(thinking),
	}, nil
}

// validValues keeps only values the card actually declares. The trace model
// sometimes invents plausible-sounding value names.
func validValues(applied []string, card *models.AlignmentCard) []string {
	if card == nil {
		return nil
	}
	kept := make([]string, 0, len(applied))
	for _, v := range applied {
		if card.HasValue(v) {
			kept = append(kept, v)
		}
	}
	return kept
}

// reasoningConfidence maps reasoning length to a confidence band. Longer
// reasoning gives the trace model more to work with.
func reasoningConfidence(thinking string) float64 {
	switch n := len(thinking); {
	case n < 200:
		return 0.3
	case n < 1000:
		return 0.5
	case n < 4000:
		return 0.7
	default:
		return 0.85
	}
}
