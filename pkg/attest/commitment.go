package attest

import (
	"encoding/json"
	"fmt"

	"github.com/gowebpki/jcs"
)

// AnalysisInputs is what the input commitment covers: everything that shaped
// the analysis besides the thinking text itself. Keys are sorted by RFC 8785
// canonicalization before hashing, so field order here is cosmetic.
type AnalysisInputs struct {
	CardCanonical     json.RawMessage `json:"card"`
	ConscienceValues  []string        `json:"conscience_values"`
	WindowContext     json.RawMessage `json:"window_context"`
	ModelVersion      string          `json:"model_version"`
	PromptTemplateVer string          `json:"prompt_template_version"`
}

// Commit canonicalizes the inputs and returns the SHA-256 hex commitment.
func (in AnalysisInputs) Commit() (string, error) {
	raw, err := json.Marshal(in)
	if err != nil {
		return "", fmt.Errorf("marshal analysis inputs: %w", err)
	}
	return InputCommitment(raw)
}

// InputCommitment hashes raw JSON after RFC 8785 canonicalization, so
// semantically identical inputs commit to the same value regardless of key
// order or whitespace.
func InputCommitment(rawJSON []byte) (string, error) {
	canonical, err := jcs.Transform(rawJSON)
	if err != nil {
		return "", fmt.Errorf("canonicalize input: %w", err)
	}
	return sha256Hex(canonical), nil
}

// ThinkingHash is the content hash stored on checkpoints in place of the
// reasoning text itself. Raw thinking never leaves the gateway process.
func ThinkingHash(thinking string) string {
	return sha256Hex([]byte(thinking))
}
