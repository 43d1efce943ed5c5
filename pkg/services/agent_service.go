package services

import (
	"context"
	"fmt"

	"github.com/mnemom/smoltbot/ent"
	"github.com/mnemom/smoltbot/ent/agent"
	"github.com/mnemom/smoltbot/pkg/ids"
	"github.com/mnemom/smoltbot/pkg/models"
)

// AgentService manages agent identity and containment state.
// Agents are created lazily on the first request bearing an unseen credential.
type AgentService struct {
	client *ent.Client
}

// NewAgentService creates a new AgentService.
func NewAgentService(client *ent.Client) *AgentService {
	if client == nil {
		panic("NewAgentService: client must not be nil")
	}
	return &AgentService{client: client}
}

// EnsureAgent returns the agent for the given credential, creating it with
// default settings if this is the first time the credential has been seen.
// Concurrent first requests race on the agent_hash unique constraint; the
// loser reads the winner's row.
func (s *AgentService) EnsureAgent(ctx context.Context, credential string) (*ent.Agent, error) {
	if credential == "" {
		return nil, NewValidationError("credential", "required")
	}

	hash := ids.AgentHash(credential)

	existing, err := s.client.Agent.Query().
		Where(agent.AgentHash(hash)).
		Only(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query agent: %w", err)
	}

	err = s.client.Agent.Create().
		SetID(ids.AgentID(hash)).
		SetAgentHash(hash).
		OnConflictColumns(agent.FieldAgentHash).
		Ignore().
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}

	created, err := s.client.Agent.Query().
		Where(agent.AgentHash(hash)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load agent after create: %w", err)
	}
	return created, nil
}

// BindAccount associates the agent with a billing account on first sight.
// The billing identity is validated independently of the provider
// credential: an agent already bound to a different account is rejected
// rather than silently rebound.
func (s *AgentService) BindAccount(ctx context.Context, agentID, accountID string) error {
	if accountID == "" {
		return NewValidationError("account_id", "required")
	}

	ag, err := s.client.Agent.Get(ctx, agentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("agent %s: %w", agentID, ErrNotFound)
		}
		return fmt.Errorf("failed to load agent: %w", err)
	}
	if ag.AccountID == accountID {
		return nil
	}
	if ag.AccountID != "" {
		return NewValidationError("account_id", "agent is bound to a different billing account")
	}

	err = s.client.Agent.Update().
		Where(agent.ID(agentID), agent.AccountIDEQ("")).
		SetAccountID(accountID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to bind account: %w", err)
	}
	return nil
}

// GetAgent returns the agent by id.
func (s *AgentService) GetAgent(ctx context.Context, agentID string) (*ent.Agent, error) {
	a, err := s.client.Agent.Get(ctx, agentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("agent %s: %w", agentID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	return a, nil
}

// AgentSettings is the mutable per-agent policy configuration.
type AgentSettings struct {
	EnforcementMode          *models.EnforcementMode
	NudgeStrategy            *models.NudgeStrategy
	NudgeRate                *int
	NudgeThreshold           *int
	AutoContainmentThreshold *int
	AIPDisabled              *bool
}

// UpdateSettings applies the non-nil fields of settings to the agent.
func (s *AgentService) UpdateSettings(ctx context.Context, agentID string, settings AgentSettings) (*ent.Agent, error) {
	upd := s.client.Agent.UpdateOneID(agentID)

	if settings.EnforcementMode != nil {
		if !settings.EnforcementMode.IsValid() {
			return nil, NewValidationError("enforcement_mode", "must be one of observe, nudge, enforce")
		}
		upd.SetEnforcementMode(agent.EnforcementMode(*settings.EnforcementMode))
	}
	if settings.NudgeStrategy != nil {
		if !settings.NudgeStrategy.IsValid() {
			return nil, NewValidationError("nudge_strategy", "must be one of always, sampling, threshold, off")
		}
		upd.SetNudgeStrategy(agent.NudgeStrategy(*settings.NudgeStrategy))
	}
	if settings.NudgeRate != nil {
		if *settings.NudgeRate < 0 || *settings.NudgeRate > 100 {
			return nil, NewValidationError("nudge_rate", "must be within [0, 100]")
		}
		upd.SetNudgeRate(*settings.NudgeRate)
	}
	if settings.NudgeThreshold != nil {
		if *settings.NudgeThreshold < 1 {
			return nil, NewValidationError("nudge_threshold", "must be at least 1")
		}
		upd.SetNudgeThreshold(*settings.NudgeThreshold)
	}
	if settings.AutoContainmentThreshold != nil {
		if *settings.AutoContainmentThreshold < 1 {
			return nil, NewValidationError("auto_containment_threshold", "must be at least 1")
		}
		upd.SetAutoContainmentThreshold(*settings.AutoContainmentThreshold)
	}
	if settings.AIPDisabled != nil {
		upd.SetAipDisabled(*settings.AIPDisabled)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("agent %s: %w", agentID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update agent settings: %w", err)
	}
	return updated, nil
}

// TransitionContainment moves the agent to a new containment status and writes
// the matching audit record in the same transaction. A no-op transition
// (same status) still succeeds but writes no audit row.
func (s *AgentService) TransitionContainment(ctx context.Context, agentID string, newStatus models.ContainmentStatus, action, actor, reason string) (*ent.Agent, error) {
	if !newStatus.IsValid() {
		return nil, NewValidationError("containment_status", "must be one of active, paused, killed")
	}
	if actor == "" {
		return nil, NewValidationError("actor", "required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	current, err := tx.Agent.Get(ctx, agentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("agent %s: %w", agentID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load agent: %w", err)
	}

	if string(current.ContainmentStatus) == string(newStatus) {
		return current, tx.Commit()
	}

	updated, err := tx.Agent.UpdateOneID(agentID).
		SetContainmentStatus(agent.ContainmentStatus(newStatus)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update containment status: %w", err)
	}

	_, err = tx.AuditLog.Create().
		SetID(ids.NewAuditID()).
		SetAgentID(agentID).
		SetAction(action).
		SetActor(actor).
		SetReason(reason).
		SetPreviousStatus(string(current.ContainmentStatus)).
		SetNewStatus(string(newStatus)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to write audit record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit containment transition: %w", err)
	}
	return updated, nil
}
