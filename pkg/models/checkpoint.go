package models

import "time"

// MaxEvidenceLength bounds concern evidence before hashing and storage.
const MaxEvidenceLength = 200

// Concern is a single issue raised during integrity analysis.
type Concern struct {
	Category               ConcernCategory `json:"category"`
	Severity               Severity        `json:"severity"`
	Description            string          `json:"description"`
	Evidence               string          `json:"evidence,omitempty"`
	RelevantCardField      string          `json:"relevant_card_field,omitempty"`
	RelevantConscienceName string          `json:"relevant_conscience_value,omitempty"`
}

// Normalized returns a copy with evidence truncated to MaxEvidenceLength.
func (c Concern) Normalized() Concern {
	out := c
	if len(out.Evidence) > MaxEvidenceLength {
		out.Evidence = out.Evidence[:MaxEvidenceLength]
	}
	return out
}

// ConscienceContext records which values were consulted and how.
type ConscienceContext struct {
	ValuesChecked     []string          `json:"values_checked"`
	Conflicts         []string          `json:"conflicts"`
	Supports          []string          `json:"supports"`
	Considerations    []string          `json:"considerations"`
	ConsultationDepth ConsultationDepth `json:"consultation_depth"`
}

// WindowPosition locates a checkpoint inside its session window.
type WindowPosition struct {
	Index      int `json:"index"`
	WindowSize int `json:"window_size"`
}

// AnalysisMetadata captures how the analysis itself was performed.
type AnalysisMetadata struct {
	AnalysisModel        string  `json:"analysis_model"`
	AnalysisDurationMs   int64   `json:"analysis_duration_ms"`
	TokensOriginal       int     `json:"tokens_original"`
	TokensAnalyzed       int     `json:"tokens_analyzed"`
	Truncated            bool    `json:"truncated"`
	ExtractionConfidence float64 `json:"extraction_confidence"`
	ConcernsHash         string  `json:"concerns_hash,omitempty"`
}

// Attestation bundles the cryptographic binding of a checkpoint.
// Empty when attestation is disabled or failed (the checkpoint stands alone).
type Attestation struct {
	InputCommitment string `json:"input_commitment"`
	ChainHash       string `json:"chain_hash"`
	PrevChainHash   string `json:"prev_chain_hash,omitempty"`
	MerkleLeafIndex int    `json:"merkle_leaf_index"`
	CertificateID   string `json:"certificate_id"`
	Signature       string `json:"signature"`
	SigningKeyID    string `json:"signing_key_id"`
}

// IntegrityCheckpoint is the per-interaction integrity record.
// Immutable once written; upsert is keyed by CheckpointID.
type IntegrityCheckpoint struct {
	CheckpointID      string            `json:"checkpoint_id"`
	AgentID           string            `json:"agent_id"`
	CardID            string            `json:"card_id"`
	SessionID         string            `json:"session_id"`
	Timestamp         time.Time         `json:"timestamp"`
	Provider          Provider          `json:"provider"`
	Model             string            `json:"model"`
	ThinkingBlockHash string            `json:"thinking_block_hash"`
	Verdict           Verdict           `json:"verdict"`
	Concerns          []Concern         `json:"concerns"`
	ReasoningSummary  string            `json:"reasoning_summary"`
	Conscience        ConscienceContext `json:"conscience_context"`
	Window            WindowPosition    `json:"window_position"`
	Analysis          AnalysisMetadata  `json:"analysis_metadata"`
	LinkedTraceID     string            `json:"linked_trace_id,omitempty"`
	Source            CheckpointSource  `json:"source"`
	Attestation       *Attestation      `json:"attestation,omitempty"`
	// Synthetic marks a clear verdict produced without actual analysis
	// (no thinking found, or fail-open on parse failure).
	Synthetic bool `json:"synthetic,omitempty"`
}

// WindowSummary describes the recent per-session checkpoint window.
type WindowSummary struct {
	Size             int             `json:"size"`
	VerdictCounts    map[Verdict]int `json:"verdict_counts"`
	IntegrityRatio   float64         `json:"integrity_ratio"`
	DriftAlertActive bool            `json:"drift_alert_active"`
}

// IntegritySignal is the pipeline's decision attached to a proxied response.
type IntegritySignal struct {
	Checkpoint        *IntegrityCheckpoint `json:"checkpoint"`
	WindowSummary     WindowSummary        `json:"window_summary"`
	Proceed           bool                 `json:"proceed"`
	RecommendedAction Action               `json:"recommended_action"`
}
