package integrity

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mnemom/smoltbot/pkg/models"
)

// AnalysisResponse is the analysis model's reply after validation.
type AnalysisResponse struct {
	Verdict          models.Verdict           `json:"verdict"`
	Concerns         []models.Concern         `json:"concerns"`
	ReasoningSummary string                   `json:"reasoning_summary"`
	Conscience       models.ConscienceContext `json:"conscience_context"`
}

// ParseAnalysis extracts the largest {...} substring from the model reply and
// validates it. Invalid concerns are dropped with a warning rather than
// failing the parse; a nil response means no usable JSON was found and the
// caller should fall back to a synthetic clear checkpoint.
func ParseAnalysis(reply string) (*AnalysisResponse, []string) {
	raw := LargestJSONObject(reply)
	if raw == "" {
		return nil, []string{"no JSON object found in analysis reply"}
	}

	var resp AnalysisResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, []string{fmt.Sprintf("analysis reply not parseable: %v", err)}
	}

	var warnings []string
	if !resp.Verdict.IsValid() {
		warnings = append(warnings, fmt.Sprintf("unknown verdict %q, ignoring stated verdict", resp.Verdict))
		resp.Verdict = ""
	}

	kept := resp.Concerns[:0]
	for _, c := range resp.Concerns {
		if !c.Category.IsValid() {
			warnings = append(warnings, fmt.Sprintf("dropping concern with unknown category %q", c.Category))
			continue
		}
		if !c.Severity.IsValid() {
			warnings = append(warnings, fmt.Sprintf("dropping concern with unknown severity %q", c.Severity))
			continue
		}
		kept = append(kept, c.Normalized())
	}
	resp.Concerns = kept

	if !resp.Conscience.ConsultationDepth.IsValid() {
		resp.Conscience.ConsultationDepth = models.DepthStandard
	}

	return &resp, warnings
}

// LargestJSONObject returns the longest balanced {...} substring. Models
// often wrap the JSON in prose or markdown fences; this strips both.
func LargestJSONObject(s string) string {
	best := ""
	for start := strings.IndexByte(s, '{'); start >= 0; {
		depth := 0
		inString := false
		escaped := false
		end := -1
		for i := start; i < len(s); i++ {
			ch := s[i]
			if inString {
				switch {
				case escaped:
					escaped = false
				case ch == '\\':
					escaped = true
				case ch == '"':
					inString = false
				}
				continue
			}
			switch ch {
			case '"':
				inString = true
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					end = i
				}
			}
			if end >= 0 {
				break
			}
		}
		if end < 0 {
			break
		}
		if candidate := s[start : end+1]; len(candidate) > len(best) {
			best = candidate
		}
		next := strings.IndexByte(s[end+1:], '{')
		if next < 0 {
			break
		}
		start = end + 1 + next
	}
	return best
}
