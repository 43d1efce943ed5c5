package services

import (
	"context"
	"fmt"

	"github.com/mnemom/smoltbot/ent"
	"github.com/mnemom/smoltbot/ent/auditlog"
	"github.com/mnemom/smoltbot/pkg/ids"
)

// AuditService records operator and system actions on agents.
type AuditService struct {
	client *ent.Client
}

// NewAuditService creates a new AuditService.
func NewAuditService(client *ent.Client) *AuditService {
	if client == nil {
		panic("NewAuditService: client must not be nil")
	}
	return &AuditService{client: client}
}

// AuditEntry is one action to record.
type AuditEntry struct {
	AgentID        string
	Action         string
	Actor          string
	Reason         string
	PreviousStatus string
	NewStatus      string
	Detail         map[string]any
}

// Record persists the entry.
func (s *AuditService) Record(ctx context.Context, entry AuditEntry) (*ent.AuditLog, error) {
	if entry.AgentID == "" {
		return nil, NewValidationError("agent_id", "required")
	}
	if entry.Action == "" {
		return nil, NewValidationError("action", "required")
	}
	if entry.Actor == "" {
		return nil, NewValidationError("actor", "required")
	}

	builder := s.client.AuditLog.Create().
		SetID(ids.NewAuditID()).
		SetAgentID(entry.AgentID).
		SetAction(entry.Action).
		SetActor(entry.Actor)
	if entry.Reason != "" {
		builder.SetReason(entry.Reason)
	}
	if entry.PreviousStatus != "" {
		builder.SetPreviousStatus(entry.PreviousStatus)
	}
	if entry.NewStatus != "" {
		builder.SetNewStatus(entry.NewStatus)
	}
	if entry.Detail != nil {
		builder.SetDetail(entry.Detail)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record audit entry: %w", err)
	}
	return row, nil
}

// ListForAgent returns the agent's audit trail, newest first.
func (s *AuditService) ListForAgent(ctx context.Context, agentID string, limit int) ([]*ent.AuditLog, error) {
	q := s.client.AuditLog.Query().
		Where(auditlog.AgentID(agentID)).
		Order(ent.Desc(auditlog.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	return rows, nil
}
