package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mnemom/smoltbot/ent"
	"github.com/mnemom/smoltbot/ent/integritycheckpoint"
	"github.com/mnemom/smoltbot/pkg/models"
)

// CheckpointService persists integrity checkpoints. Checkpoints are
// immutable once written; writes are upserts keyed by checkpoint_id so a
// duplicate store (gateway plus observer racing) is a no-op.
type CheckpointService struct {
	client *ent.Client
}

// NewCheckpointService creates a new CheckpointService.
func NewCheckpointService(client *ent.Client) *CheckpointService {
	if client == nil {
		panic("NewCheckpointService: client must not be nil")
	}
	return &CheckpointService{client: client}
}

// StoreCheckpoint persists the checkpoint. First write wins; a conflicting
// checkpoint_id leaves the stored row untouched.
func (s *CheckpointService) StoreCheckpoint(ctx context.Context, cp *models.IntegrityCheckpoint) error {
	if cp == nil {
		return NewValidationError("checkpoint", "required")
	}
	if cp.CheckpointID == "" {
		return NewValidationError("checkpoint_id", "required")
	}
	if cp.AgentID == "" {
		return NewValidationError("agent_id", "required")
	}
	if cp.SessionID == "" {
		return NewValidationError("session_id", "required")
	}
	if !cp.Verdict.IsValid() {
		return NewValidationError("verdict", fmt.Sprintf("unknown verdict %q", cp.Verdict))
	}
	if !cp.Provider.IsValid() {
		return NewValidationError("provider", fmt.Sprintf("unknown provider %q", cp.Provider))
	}

	concerns, err := toJSONMaps(cp.Concerns)
	if err != nil {
		return fmt.Errorf("failed to encode concerns: %w", err)
	}
	conscience, err := toJSONMap(cp.Conscience)
	if err != nil {
		return fmt.Errorf("failed to encode conscience_context: %w", err)
	}
	window, err := toJSONMap(cp.Window)
	if err != nil {
		return fmt.Errorf("failed to encode window_position: %w", err)
	}
	analysis, err := toJSONMap(cp.Analysis)
	if err != nil {
		return fmt.Errorf("failed to encode analysis_metadata: %w", err)
	}

	builder := s.client.IntegrityCheckpoint.Create().
		SetID(cp.CheckpointID).
		SetAgentID(cp.AgentID).
		SetSessionID(cp.SessionID).
		SetTimestamp(cp.Timestamp).
		SetProvider(integritycheckpoint.Provider(cp.Provider)).
		SetVerdict(integritycheckpoint.Verdict(cp.Verdict)).
		SetSource(integritycheckpoint.Source(cp.Source)).
		SetSynthetic(cp.Synthetic).
		SetConscienceContext(conscience).
		SetWindowPosition(window).
		SetAnalysisMetadata(analysis)

	if cp.CardID != "" {
		builder.SetCardID(cp.CardID)
	}
	if cp.Model != "" {
		builder.SetModel(cp.Model)
	}
	if cp.ThinkingBlockHash != "" {
		builder.SetThinkingBlockHash(cp.ThinkingBlockHash)
	}
	if len(concerns) > 0 {
		builder.SetConcerns(concerns)
	}
	if cp.ReasoningSummary != "" {
		builder.SetReasoningSummary(cp.ReasoningSummary)
	}
	if cp.LinkedTraceID != "" {
		builder.SetLinkedTraceID(cp.LinkedTraceID)
	}
	if att := cp.Attestation; att != nil {
		builder.
			SetInputCommitment(att.InputCommitment).
			SetChainHash(att.ChainHash).
			SetPrevChainHash(att.PrevChainHash).
			SetMerkleLeafIndex(att.MerkleLeafIndex).
			SetCertificateID(att.CertificateID).
			SetSignature(att.Signature).
			SetSigningKeyID(att.SigningKeyID)
	}

	err = builder.
		OnConflictColumns(integritycheckpoint.FieldID).
		Ignore().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to store checkpoint: %w", err)
	}
	return nil
}

// GetCheckpoint returns a checkpoint by id.
func (s *CheckpointService) GetCheckpoint(ctx context.Context, checkpointID string) (*ent.IntegrityCheckpoint, error) {
	row, err := s.client.IntegrityCheckpoint.Get(ctx, checkpointID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("checkpoint %s: %w", checkpointID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get checkpoint: %w", err)
	}
	return row, nil
}

// ListSession returns the session's checkpoints in chronological order.
func (s *CheckpointService) ListSession(ctx context.Context, agentID, sessionID string, limit int) ([]*ent.IntegrityCheckpoint, error) {
	q := s.client.IntegrityCheckpoint.Query().
		Where(
			integritycheckpoint.AgentID(agentID),
			integritycheckpoint.SessionID(sessionID),
		).
		Order(ent.Asc(integritycheckpoint.FieldTimestamp))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list session checkpoints: %w", err)
	}
	return rows, nil
}

// RecentVerdicts returns the agent's n most recent verdicts, newest first.
// Used by the auto-containment check.
func (s *CheckpointService) RecentVerdicts(ctx context.Context, agentID string, n int) ([]models.Verdict, error) {
	rows, err := s.client.IntegrityCheckpoint.Query().
		Where(integritycheckpoint.AgentID(agentID)).
		Order(ent.Desc(integritycheckpoint.FieldTimestamp)).
		Limit(n).
		Select(integritycheckpoint.FieldVerdict).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent verdicts: %w", err)
	}
	verdicts := make([]models.Verdict, 0, len(rows))
	for _, row := range rows {
		verdicts = append(verdicts, models.Verdict(row.Verdict))
	}
	return verdicts, nil
}

// SessionViolationCount counts boundary violations in the session. Used by
// the threshold nudge strategy.
func (s *CheckpointService) SessionViolationCount(ctx context.Context, agentID, sessionID string) (int, error) {
	n, err := s.client.IntegrityCheckpoint.Query().
		Where(
			integritycheckpoint.AgentID(agentID),
			integritycheckpoint.SessionID(sessionID),
			integritycheckpoint.VerdictEQ(integritycheckpoint.VerdictBoundaryViolation),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count session violations: %w", err)
	}
	return n, nil
}

// LinkSessionTrace attaches a trace to the newest gateway checkpoint of the
// session that has no trace yet. Returns false when no such checkpoint
// exists, in which case the observer records its own checkpoint instead.
func (s *CheckpointService) LinkSessionTrace(ctx context.Context, agentID, sessionID, traceID string) (bool, error) {
	row, err := s.client.IntegrityCheckpoint.Query().
		Where(
			integritycheckpoint.AgentID(agentID),
			integritycheckpoint.SessionID(sessionID),
			integritycheckpoint.SourceEQ(integritycheckpoint.SourceGateway),
			integritycheckpoint.LinkedTraceIDIsNil(),
		).
		Order(ent.Desc(integritycheckpoint.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to find checkpoint for trace link: %w", err)
	}

	err = s.client.IntegrityCheckpoint.UpdateOneID(row.ID).
		SetLinkedTraceID(traceID).
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to link trace: %w", err)
	}
	return true, nil
}

// ExistsForTrace reports whether any checkpoint already links the given
// trace. The observer uses this for gateway-wins deduplication.
func (s *CheckpointService) ExistsForTrace(ctx context.Context, traceID string) (bool, error) {
	exists, err := s.client.IntegrityCheckpoint.Query().
		Where(integritycheckpoint.LinkedTraceID(traceID)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check trace linkage: %w", err)
	}
	return exists, nil
}

// toJSONMap converts a typed struct to the generic JSON object representation
// ent stores for schema-flexible columns.
func toJSONMap(v any) (map[string]interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
