package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mnemom/smoltbot/ent"
	"github.com/mnemom/smoltbot/ent/alignmentcard"
	"github.com/mnemom/smoltbot/pkg/ids"
	"github.com/mnemom/smoltbot/pkg/models"
)

// CardService manages alignment cards. Exactly one card is active per agent
// at any instant; activating a new card deactivates the previous one in the
// same transaction.
type CardService struct {
	client *ent.Client
}

// NewCardService creates a new CardService.
func NewCardService(client *ent.Client) *CardService {
	if client == nil {
		panic("NewCardService: client must not be nil")
	}
	return &CardService{client: client}
}

// PutCard stores card as the agent's active card. A missing card_id is
// minted. The previous active card (if any) is deactivated atomically.
func (s *CardService) PutCard(ctx context.Context, agentID string, card *models.AlignmentCard) (*models.AlignmentCard, error) {
	if card == nil {
		return nil, NewValidationError("card", "required")
	}
	if len(card.DeclaredValues) == 0 {
		return nil, NewValidationError("declared_values", "at least one value is required")
	}

	stored := *card
	stored.AgentID = agentID
	if stored.CardID == "" {
		stored.CardID = ids.NewCardID()
	}

	declaredValues, err := toJSONMaps(stored.DeclaredValues)
	if err != nil {
		return nil, fmt.Errorf("failed to encode declared_values: %w", err)
	}
	triggers, err := toJSONMaps(stored.EscalationTriggers)
	if err != nil {
		return nil, fmt.Errorf("failed to encode escalation_triggers: %w", err)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.AlignmentCard.Update().
		Where(alignmentcard.AgentID(agentID), alignmentcard.IsActive(true)).
		SetIsActive(false).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to deactivate previous card: %w", err)
	}

	builder := tx.AlignmentCard.Create().
		SetID(stored.CardID).
		SetAgentID(agentID).
		SetDeclaredValues(declaredValues).
		SetIsActive(true)
	if stored.Principal != "" {
		builder.SetPrincipal(stored.Principal)
	}
	if stored.Role != "" {
		builder.SetRole(stored.Role)
	}
	if stored.Description != "" {
		builder.SetDescription(stored.Description)
	}
	if len(stored.BoundedActions) > 0 {
		builder.SetBoundedActions(stored.BoundedActions)
	}
	if len(stored.ForbiddenActions) > 0 {
		builder.SetForbiddenActions(stored.ForbiddenActions)
	}
	if len(triggers) > 0 {
		builder.SetEscalationTriggers(triggers)
	}
	if stored.AuditCommitment != "" {
		builder.SetAuditCommitment(stored.AuditCommitment)
	}

	if _, err := builder.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit card update: %w", err)
	}
	return &stored, nil
}

// ActiveCard returns the agent's active card, or ErrNotFound when the agent
// has never declared one.
func (s *CardService) ActiveCard(ctx context.Context, agentID string) (*models.AlignmentCard, error) {
	row, err := s.client.AlignmentCard.Query().
		Where(alignmentcard.AgentID(agentID), alignmentcard.IsActive(true)).
		Order(ent.Desc(alignmentcard.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("active card for agent %s: %w", agentID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query active card: %w", err)
	}
	return cardFromRow(row)
}

// cardFromRow converts the persisted representation back to the domain model.
func cardFromRow(row *ent.AlignmentCard) (*models.AlignmentCard, error) {
	card := &models.AlignmentCard{
		CardID:           row.ID,
		AgentID:          row.AgentID,
		Principal:        row.Principal,
		Role:             row.Role,
		Description:      row.Description,
		BoundedActions:   row.BoundedActions,
		ForbiddenActions: row.ForbiddenActions,
		AuditCommitment:  row.AuditCommitment,
	}
	if err := fromJSONMaps(row.DeclaredValues, &card.DeclaredValues); err != nil {
		return nil, fmt.Errorf("failed to decode declared_values: %w", err)
	}
	if err := fromJSONMaps(row.EscalationTriggers, &card.EscalationTriggers); err != nil {
		return nil, fmt.Errorf("failed to decode escalation_triggers: %w", err)
	}
	return card, nil
}

// toJSONMaps converts a typed slice to the generic JSON representation ent
// stores for schema-flexible columns.
func toJSONMaps(v any) ([]map[string]interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out []map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func fromJSONMaps(in []map[string]interface{}, out any) error {
	if len(in) == 0 {
		return nil
	}
	raw, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}
