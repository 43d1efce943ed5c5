package gateway

import (
	"strings"

	"github.com/mnemom/smoltbot/pkg/models"
)

// Reasoning budgets per provider, matching each provider's documented knobs.
const (
	anthropicThinkingBudget = 10000
	geminiThinkingBudget    = 16384
)

// injectReasoning enables extended reasoning on the parsed request body so
// there is something to analyze. Existing operator settings win: a body that
// already configures reasoning is left alone.
func injectReasoning(provider models.Provider, model string, body map[string]any) {
	switch provider {
	case models.ProviderAnthropic:
		if _, ok := body["thinking"]; ok {
			return
		}
		body["thinking"] = map[string]any{
			"type":          "enabled",
			"budget_tokens": anthropicThinkingBudget,
		}

	case models.ProviderOpenAI:
		// Only the GPT-5 family accepts reasoning_effort.
		if !strings.HasPrefix(model, "gpt-5") {
			return
		}
		if _, ok := body["reasoning_effort"]; ok {
			return
		}
		body["reasoning_effort"] = "medium"

	case models.ProviderGemini:
		gen, ok := body["generationConfig"].(map[string]any)
		if !ok {
			gen = map[string]any{}
			body["generationConfig"] = gen
		}
		if _, ok := gen["thinkingConfig"]; ok {
			return
		}
		if strings.HasPrefix(model, "gemini-3") {
			gen["thinkingConfig"] = map[string]any{"thinkingLevel": "HIGH"}
			return
		}
		gen["thinkingConfig"] = map[string]any{
			"thinkingBudget":  geminiThinkingBudget,
			"includeThoughts": true,
		}
	}
}

// injectNudges splices pending nudge notices into the system prompt and
// reports whether anything was injected. Gemini's system_instruction format
// differs enough that nudge injection is skipped for it.
func injectNudges(provider models.Provider, body map[string]any, notices []string) bool {
	if len(notices) == 0 {
		return false
	}
	joined := strings.Join(notices, "\n\n")

	switch provider {
	case models.ProviderAnthropic:
		switch sys := body["system"].(type) {
		case string:
			body["system"] = sys + "\n\n" + joined
		case []any:
			body["system"] = append(sys, map[string]any{"type": "text", "text": joined})
		default:
			body["system"] = joined
		}
		return true

	case models.ProviderOpenAI:
		messages, _ := body["messages"].([]any)
		system := map[string]any{"role": "system", "content": joined}
		body["messages"] = append([]any{system}, messages...)
		return true

	default:
		return false
	}
}
