// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mnemom/smoltbot/ent/agent"
	"github.com/mnemom/smoltbot/ent/alignmentcard"
	"github.com/mnemom/smoltbot/ent/auditlog"
	"github.com/mnemom/smoltbot/ent/integritycheckpoint"
	"github.com/mnemom/smoltbot/ent/merkletree"
	"github.com/mnemom/smoltbot/ent/nudge"
	"github.com/mnemom/smoltbot/ent/predicate"
	"github.com/mnemom/smoltbot/ent/webhookdelivery"
	"github.com/mnemom/smoltbot/ent/webhookendpoint"
	"github.com/mnemom/smoltbot/ent/webhookevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgent               = "Agent"
	TypeAlignmentCard       = "AlignmentCard"
	TypeAuditLog            = "AuditLog"
	TypeIntegrityCheckpoint = "IntegrityCheckpoint"
	TypeMerkleTree          = "MerkleTree"
	TypeNudge               = "Nudge"
	TypeWebhookDelivery     = "WebhookDelivery"
	TypeWebhookEndpoint     = "WebhookEndpoint"
	TypeWebhookEvent        = "WebhookEvent"
)

// AgentMutation represents an operation that mutates the Agent nodes in the graph.
type AgentMutation struct {
	config
	op                            Op
	typ                           string
	id                            *string
	agent_hash                    *string
	account_id                    *string
	enforcement_mode              *agent.EnforcementMode
	containment_status            *agent.ContainmentStatus
	auto_containment_threshold    *int
	addauto_containment_threshold *int
	nudge_strategy                *agent.NudgeStrategy
	nudge_rate                    *int
	addnudge_rate                 *int
	nudge_threshold               *int
	addnudge_threshold            *int
	aip_disabled                  *bool
	created_at                    *time.Time
	updated_at                    *time.Time
	clearedFields                 map[string]struct{}
	cards                         map[string]struct{}
	removedcards                  map[string]struct{}
	clearedcards                  bool
	checkpoints                   map[string]struct{}
	removedcheckpoints            map[string]struct{}
	clearedcheckpoints            bool
	merkle_tree                   *string
	clearedmerkle_tree            bool
	nudges                        map[string]struct{}
	removednudges                 map[string]struct{}
	clearednudges                 bool
	audit_logs                    map[string]struct{}
	removedaudit_logs             map[string]struct{}
	clearedaudit_logs             bool
	done                          bool
	oldValue                      func(context.Context) (*Agent, error)
	predicates                    []predicate.Agent
}

var _ ent.Mutation = (*AgentMutation)(nil)

// agentOption allows management of the mutation configuration using functional options.
type agentOption func(*AgentMutation)

// newAgentMutation creates new mutation for the Agent entity.
func newAgentMutation(c config, op Op, opts ...agentOption) *AgentMutation {
	m := &AgentMutation{
		config:        c,
		op:            op,
		typ:           TypeAgent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentID sets the ID field of the mutation.
func withAgentID(id string) agentOption {
	return func(m *AgentMutation) {
		var (
			err   error
			once  sync.Once
			value *Agent
		)
		m.oldValue = func(ctx context.Context) (*Agent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Agent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgent sets the old Agent of the mutation.
func withAgent(node *Agent) agentOption {
	return func(m *AgentMutation) {
		m.oldValue = func(context.Context) (*Agent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Agent entities.
func (m *AgentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Agent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentHash sets the "agent_hash" field.
func (m *AgentMutation) SetAgentHash(s string) {
	m.agent_hash = &s
}

// AgentHash returns the value of the "agent_hash" field in the mutation.
func (m *AgentMutation) AgentHash() (r string, exists bool) {
	v := m.agent_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentHash returns the old "agent_hash" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldAgentHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentHash: %w", err)
	}
	return oldValue.AgentHash, nil
}

// ResetAgentHash resets all changes to the "agent_hash" field.
func (m *AgentMutation) ResetAgentHash() {
	m.agent_hash = nil
}

// SetAccountID sets the "account_id" field.
func (m *AgentMutation) SetAccountID(s string) {
	m.account_id = &s
}

// AccountID returns the value of the "account_id" field in the mutation.
func (m *AgentMutation) AccountID() (r string, exists bool) {
	v := m.account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountID returns the old "account_id" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldAccountID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountID: %w", err)
	}
	return oldValue.AccountID, nil
}

// ClearAccountID clears the value of the "account_id" field.
func (m *AgentMutation) ClearAccountID() {
	m.account_id = nil
	m.clearedFields[agent.FieldAccountID] = struct{}{}
}

// AccountIDCleared returns if the "account_id" field was cleared in this mutation.
func (m *AgentMutation) AccountIDCleared() bool {
	_, ok := m.clearedFields[agent.FieldAccountID]
	return ok
}

// ResetAccountID resets all changes to the "account_id" field.
func (m *AgentMutation) ResetAccountID() {
	m.account_id = nil
	delete(m.clearedFields, agent.FieldAccountID)
}

// SetEnforcementMode sets the "enforcement_mode" field.
func (m *AgentMutation) SetEnforcementMode(am agent.EnforcementMode) {
	m.enforcement_mode = &am
}

// EnforcementMode returns the value of the "enforcement_mode" field in the mutation.
func (m *AgentMutation) EnforcementMode() (r agent.EnforcementMode, exists bool) {
	v := m.enforcement_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldEnforcementMode returns the old "enforcement_mode" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldEnforcementMode(ctx context.Context) (v agent.EnforcementMode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnforcementMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnforcementMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnforcementMode: %w", err)
	}
	return oldValue.EnforcementMode, nil
}

// ResetEnforcementMode resets all changes to the "enforcement_mode" field.
func (m *AgentMutation) ResetEnforcementMode() {
	m.enforcement_mode = nil
}

// SetContainmentStatus sets the "containment_status" field.
func (m *AgentMutation) SetContainmentStatus(as agent.ContainmentStatus) {
	m.containment_status = &as
}

// ContainmentStatus returns the value of the "containment_status" field in the mutation.
func (m *AgentMutation) ContainmentStatus() (r agent.ContainmentStatus, exists bool) {
	v := m.containment_status
	if v == nil {
		return
	}
	return *v, true
}

// OldContainmentStatus returns the old "containment_status" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldContainmentStatus(ctx context.Context) (v agent.ContainmentStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContainmentStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContainmentStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContainmentStatus: %w", err)
	}
	return oldValue.ContainmentStatus, nil
}

// ResetContainmentStatus resets all changes to the "containment_status" field.
func (m *AgentMutation) ResetContainmentStatus() {
	m.containment_status = nil
}

// SetAutoContainmentThreshold sets the "auto_containment_threshold" field.
func (m *AgentMutation) SetAutoContainmentThreshold(i int) {
	m.auto_containment_threshold = &i
	m.addauto_containment_threshold = nil
}

// AutoContainmentThreshold returns the value of the "auto_containment_threshold" field in the mutation.
func (m *AgentMutation) AutoContainmentThreshold() (r int, exists bool) {
	v := m.auto_containment_threshold
	if v == nil {
		return
	}
	return *v, true
}

// OldAutoContainmentThreshold returns the old "auto_containment_threshold" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldAutoContainmentThreshold(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutoContainmentThreshold is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutoContainmentThreshold requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutoContainmentThreshold: %w", err)
	}
	return oldValue.AutoContainmentThreshold, nil
}

// AddAutoContainmentThreshold adds i to the "auto_containment_threshold" field.
func (m *AgentMutation) AddAutoContainmentThreshold(i int) {
	if m.addauto_containment_threshold != nil {
		*m.addauto_containment_threshold += i
	} else {
		m.addauto_containment_threshold = &i
	}
}

// AddedAutoContainmentThreshold returns the value that was added to the "auto_containment_threshold" field in this mutation.
func (m *AgentMutation) AddedAutoContainmentThreshold() (r int, exists bool) {
	v := m.addauto_containment_threshold
	if v == nil {
		return
	}
	return *v, true
}

// ClearAutoContainmentThreshold clears the value of the "auto_containment_threshold" field.
func (m *AgentMutation) ClearAutoContainmentThreshold() {
	m.auto_containment_threshold = nil
	m.addauto_containment_threshold = nil
	m.clearedFields[agent.FieldAutoContainmentThreshold] = struct{}{}
}

// AutoContainmentThresholdCleared returns if the "auto_containment_threshold" field was cleared in this mutation.
func (m *AgentMutation) AutoContainmentThresholdCleared() bool {
	_, ok := m.clearedFields[agent.FieldAutoContainmentThreshold]
	return ok
}

// ResetAutoContainmentThreshold resets all changes to the "auto_containment_threshold" field.
func (m *AgentMutation) ResetAutoContainmentThreshold() {
	m.auto_containment_threshold = nil
	m.addauto_containment_threshold = nil
	delete(m.clearedFields, agent.FieldAutoContainmentThreshold)
}

// SetNudgeStrategy sets the "nudge_strategy" field.
func (m *AgentMutation) SetNudgeStrategy(as agent.NudgeStrategy) {
	m.nudge_strategy = &as
}

// NudgeStrategy returns the value of the "nudge_strategy" field in the mutation.
func (m *AgentMutation) NudgeStrategy() (r agent.NudgeStrategy, exists bool) {
	v := m.nudge_strategy
	if v == nil {
		return
	}
	return *v, true
}

// OldNudgeStrategy returns the old "nudge_strategy" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldNudgeStrategy(ctx context.Context) (v agent.NudgeStrategy, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNudgeStrategy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNudgeStrategy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNudgeStrategy: %w", err)
	}
	return oldValue.NudgeStrategy, nil
}

// ResetNudgeStrategy resets all changes to the "nudge_strategy" field.
func (m *AgentMutation) ResetNudgeStrategy() {
	m.nudge_strategy = nil
}

// SetNudgeRate sets the "nudge_rate" field.
func (m *AgentMutation) SetNudgeRate(i int) {
	m.nudge_rate = &i
	m.addnudge_rate = nil
}

// NudgeRate returns the value of the "nudge_rate" field in the mutation.
func (m *AgentMutation) NudgeRate() (r int, exists bool) {
	v := m.nudge_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldNudgeRate returns the old "nudge_rate" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldNudgeRate(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNudgeRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNudgeRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNudgeRate: %w", err)
	}
	return oldValue.NudgeRate, nil
}

// AddNudgeRate adds i to the "nudge_rate" field.
func (m *AgentMutation) AddNudgeRate(i int) {
	if m.addnudge_rate != nil {
		*m.addnudge_rate += i
	} else {
		m.addnudge_rate = &i
	}
}

// AddedNudgeRate returns the value that was added to the "nudge_rate" field in this mutation.
func (m *AgentMutation) AddedNudgeRate() (r int, exists bool) {
	v := m.addnudge_rate
	if v == nil {
		return
	}
	return *v, true
}

// ResetNudgeRate resets all changes to the "nudge_rate" field.
func (m *AgentMutation) ResetNudgeRate() {
	m.nudge_rate = nil
	m.addnudge_rate = nil
}

// SetNudgeThreshold sets the "nudge_threshold" field.
func (m *AgentMutation) SetNudgeThreshold(i int) {
	m.nudge_threshold = &i
	m.addnudge_threshold = nil
}

// NudgeThreshold returns the value of the "nudge_threshold" field in the mutation.
func (m *AgentMutation) NudgeThreshold() (r int, exists bool) {
	v := m.nudge_threshold
	if v == nil {
		return
	}
	return *v, true
}

// OldNudgeThreshold returns the old "nudge_threshold" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldNudgeThreshold(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNudgeThreshold is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNudgeThreshold requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNudgeThreshold: %w", err)
	}
	return oldValue.NudgeThreshold, nil
}

// AddNudgeThreshold adds i to the "nudge_threshold" field.
func (m *AgentMutation) AddNudgeThreshold(i int) {
	if m.addnudge_threshold != nil {
		*m.addnudge_threshold += i
	} else {
		m.addnudge_threshold = &i
	}
}

// AddedNudgeThreshold returns the value that was added to the "nudge_threshold" field in this mutation.
func (m *AgentMutation) AddedNudgeThreshold() (r int, exists bool) {
	v := m.addnudge_threshold
	if v == nil {
		return
	}
	return *v, true
}

// ResetNudgeThreshold resets all changes to the "nudge_threshold" field.
func (m *AgentMutation) ResetNudgeThreshold() {
	m.nudge_threshold = nil
	m.addnudge_threshold = nil
}

// SetAipDisabled sets the "aip_disabled" field.
func (m *AgentMutation) SetAipDisabled(b bool) {
	m.aip_disabled = &b
}

// AipDisabled returns the value of the "aip_disabled" field in the mutation.
func (m *AgentMutation) AipDisabled() (r bool, exists bool) {
	v := m.aip_disabled
	if v == nil {
		return
	}
	return *v, true
}

// OldAipDisabled returns the old "aip_disabled" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldAipDisabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAipDisabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAipDisabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAipDisabled: %w", err)
	}
	return oldValue.AipDisabled, nil
}

// ResetAipDisabled resets all changes to the "aip_disabled" field.
func (m *AgentMutation) ResetAipDisabled() {
	m.aip_disabled = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddCardIDs adds the "cards" edge to the AlignmentCard entity by ids.
func (m *AgentMutation) AddCardIDs(ids ...string) {
	if m.cards == nil {
		m.cards = make(map[string]struct{})
	}
	for i := range ids {
		m.cards[ids[i]] = struct{}{}
	}
}

// ClearCards clears the "cards" edge to the AlignmentCard entity.
func (m *AgentMutation) ClearCards() {
	m.clearedcards = true
}

// CardsCleared reports if the "cards" edge to the AlignmentCard entity was cleared.
func (m *AgentMutation) CardsCleared() bool {
	return m.clearedcards
}

// RemoveCardIDs removes the "cards" edge to the AlignmentCard entity by IDs.
func (m *AgentMutation) RemoveCardIDs(ids ...string) {
	if m.removedcards == nil {
		m.removedcards = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.cards, ids[i])
		m.removedcards[ids[i]] = struct{}{}
	}
}

// RemovedCards returns the removed IDs of the "cards" edge to the AlignmentCard entity.
func (m *AgentMutation) RemovedCardsIDs() (ids []string) {
	for id := range m.removedcards {
		ids = append(ids, id)
	}
	return
}

// CardsIDs returns the "cards" edge IDs in the mutation.
func (m *AgentMutation) CardsIDs() (ids []string) {
	for id := range m.cards {
		ids = append(ids, id)
	}
	return
}

// ResetCards resets all changes to the "cards" edge.
func (m *AgentMutation) ResetCards() {
	m.cards = nil
	m.clearedcards = false
	m.removedcards = nil
}

// AddCheckpointIDs adds the "checkpoints" edge to the IntegrityCheckpoint entity by ids.
func (m *AgentMutation) AddCheckpointIDs(ids ...string) {
	if m.checkpoints == nil {
		m.checkpoints = make(map[string]struct{})
	}
	for i := range ids {
		m.checkpoints[ids[i]] = struct{}{}
	}
}

// ClearCheckpoints clears the "checkpoints" edge to the IntegrityCheckpoint entity.
func (m *AgentMutation) ClearCheckpoints() {
	m.clearedcheckpoints = true
}

// CheckpointsCleared reports if the "checkpoints" edge to the IntegrityCheckpoint entity was cleared.
func (m *AgentMutation) CheckpointsCleared() bool {
	return m.clearedcheckpoints
}

// RemoveCheckpointIDs removes the "checkpoints" edge to the IntegrityCheckpoint entity by IDs.
func (m *AgentMutation) RemoveCheckpointIDs(ids ...string) {
	if m.removedcheckpoints == nil {
		m.removedcheckpoints = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.checkpoints, ids[i])
		m.removedcheckpoints[ids[i]] = struct{}{}
	}
}

// RemovedCheckpoints returns the removed IDs of the "checkpoints" edge to the IntegrityCheckpoint entity.
func (m *AgentMutation) RemovedCheckpointsIDs() (ids []string) {
	for id := range m.removedcheckpoints {
		ids = append(ids, id)
	}
	return
}

// CheckpointsIDs returns the "checkpoints" edge IDs in the mutation.
func (m *AgentMutation) CheckpointsIDs() (ids []string) {
	for id := range m.checkpoints {
		ids = append(ids, id)
	}
	return
}

// ResetCheckpoints resets all changes to the "checkpoints" edge.
func (m *AgentMutation) ResetCheckpoints() {
	m.checkpoints = nil
	m.clearedcheckpoints = false
	m.removedcheckpoints = nil
}

// SetMerkleTreeID sets the "merkle_tree" edge to the MerkleTree entity by id.
func (m *AgentMutation) SetMerkleTreeID(id string) {
	m.merkle_tree = &id
}

// ClearMerkleTree clears the "merkle_tree" edge to the MerkleTree entity.
func (m *AgentMutation) ClearMerkleTree() {
	m.clearedmerkle_tree = true
}

// MerkleTreeCleared reports if the "merkle_tree" edge to the MerkleTree entity was cleared.
func (m *AgentMutation) MerkleTreeCleared() bool {
	return m.clearedmerkle_tree
}

// MerkleTreeID returns the "merkle_tree" edge ID in the mutation.
func (m *AgentMutation) MerkleTreeID() (id string, exists bool) {
	if m.merkle_tree != nil {
		return *m.merkle_tree, true
	}
	return
}

// MerkleTreeIDs returns the "merkle_tree" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MerkleTreeID instead. It exists only for internal usage by the builders.
func (m *AgentMutation) MerkleTreeIDs() (ids []string) {
	if id := m.merkle_tree; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMerkleTree resets all changes to the "merkle_tree" edge.
func (m *AgentMutation) ResetMerkleTree() {
	m.merkle_tree = nil
	m.clearedmerkle_tree = false
}

// AddNudgeIDs adds the "nudges" edge to the Nudge entity by ids.
func (m *AgentMutation) AddNudgeIDs(ids ...string) {
	if m.nudges == nil {
		m.nudges = make(map[string]struct{})
	}
	for i := range ids {
		m.nudges[ids[i]] = struct{}{}
	}
}

// ClearNudges clears the "nudges" edge to the Nudge entity.
func (m *AgentMutation) ClearNudges() {
	m.clearednudges = true
}

// NudgesCleared reports if the "nudges" edge to the Nudge entity was cleared.
func (m *AgentMutation) NudgesCleared() bool {
	return m.clearednudges
}

// RemoveNudgeIDs removes the "nudges" edge to the Nudge entity by IDs.
func (m *AgentMutation) RemoveNudgeIDs(ids ...string) {
	if m.removednudges == nil {
		m.removednudges = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.nudges, ids[i])
		m.removednudges[ids[i]] = struct{}{}
	}
}

// RemovedNudges returns the removed IDs of the "nudges" edge to the Nudge entity.
func (m *AgentMutation) RemovedNudgesIDs() (ids []string) {
	for id := range m.removednudges {
		ids = append(ids, id)
	}
	return
}

// NudgesIDs returns the "nudges" edge IDs in the mutation.
func (m *AgentMutation) NudgesIDs() (ids []string) {
	for id := range m.nudges {
		ids = append(ids, id)
	}
	return
}

// ResetNudges resets all changes to the "nudges" edge.
func (m *AgentMutation) ResetNudges() {
	m.nudges = nil
	m.clearednudges = false
	m.removednudges = nil
}

// AddAuditLogIDs adds the "audit_logs" edge to the AuditLog entity by ids.
func (m *AgentMutation) AddAuditLogIDs(ids ...string) {
	if m.audit_logs == nil {
		m.audit_logs = make(map[string]struct{})
	}
	for i := range ids {
		m.audit_logs[ids[i]] = struct{}{}
	}
}

// ClearAuditLogs clears the "audit_logs" edge to the AuditLog entity.
func (m *AgentMutation) ClearAuditLogs() {
	m.clearedaudit_logs = true
}

// AuditLogsCleared reports if the "audit_logs" edge to the AuditLog entity was cleared.
func (m *AgentMutation) AuditLogsCleared() bool {
	return m.clearedaudit_logs
}

// RemoveAuditLogIDs removes the "audit_logs" edge to the AuditLog entity by IDs.
func (m *AgentMutation) RemoveAuditLogIDs(ids ...string) {
	if m.removedaudit_logs == nil {
		m.removedaudit_logs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.audit_logs, ids[i])
		m.removedaudit_logs[ids[i]] = struct{}{}
	}
}

// RemovedAuditLogs returns the removed IDs of the "audit_logs" edge to the AuditLog entity.
func (m *AgentMutation) RemovedAuditLogsIDs() (ids []string) {
	for id := range m.removedaudit_logs {
		ids = append(ids, id)
	}
	return
}

// AuditLogsIDs returns the "audit_logs" edge IDs in the mutation.
func (m *AgentMutation) AuditLogsIDs() (ids []string) {
	for id := range m.audit_logs {
		ids = append(ids, id)
	}
	return
}

// ResetAuditLogs resets all changes to the "audit_logs" edge.
func (m *AgentMutation) ResetAuditLogs() {
	m.audit_logs = nil
	m.clearedaudit_logs = false
	m.removedaudit_logs = nil
}

// Where appends a list predicates to the AgentMutation builder.
func (m *AgentMutation) Where(ps ...predicate.Agent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Agent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Agent).
func (m *AgentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.agent_hash != nil {
		fields = append(fields, agent.FieldAgentHash)
	}
	if m.account_id != nil {
		fields = append(fields, agent.FieldAccountID)
	}
	if m.enforcement_mode != nil {
		fields = append(fields, agent.FieldEnforcementMode)
	}
	if m.containment_status != nil {
		fields = append(fields, agent.FieldContainmentStatus)
	}
	if m.auto_containment_threshold != nil {
		fields = append(fields, agent.FieldAutoContainmentThreshold)
	}
	if m.nudge_strategy != nil {
		fields = append(fields, agent.FieldNudgeStrategy)
	}
	if m.nudge_rate != nil {
		fields = append(fields, agent.FieldNudgeRate)
	}
	if m.nudge_threshold != nil {
		fields = append(fields, agent.FieldNudgeThreshold)
	}
	if m.aip_disabled != nil {
		fields = append(fields, agent.FieldAipDisabled)
	}
	if m.created_at != nil {
		fields = append(fields, agent.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agent.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldAgentHash:
		return m.AgentHash()
	case agent.FieldAccountID:
		return m.AccountID()
	case agent.FieldEnforcementMode:
		return m.EnforcementMode()
	case agent.FieldContainmentStatus:
		return m.ContainmentStatus()
	case agent.FieldAutoContainmentThreshold:
		return m.AutoContainmentThreshold()
	case agent.FieldNudgeStrategy:
		return m.NudgeStrategy()
	case agent.FieldNudgeRate:
		return m.NudgeRate()
	case agent.FieldNudgeThreshold:
		return m.NudgeThreshold()
	case agent.FieldAipDisabled:
		return m.AipDisabled()
	case agent.FieldCreatedAt:
		return m.CreatedAt()
	case agent.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agent.FieldAgentHash:
		return m.OldAgentHash(ctx)
	case agent.FieldAccountID:
		return m.OldAccountID(ctx)
	case agent.FieldEnforcementMode:
		return m.OldEnforcementMode(ctx)
	case agent.FieldContainmentStatus:
		return m.OldContainmentStatus(ctx)
	case agent.FieldAutoContainmentThreshold:
		return m.OldAutoContainmentThreshold(ctx)
	case agent.FieldNudgeStrategy:
		return m.OldNudgeStrategy(ctx)
	case agent.FieldNudgeRate:
		return m.OldNudgeRate(ctx)
	case agent.FieldNudgeThreshold:
		return m.OldNudgeThreshold(ctx)
	case agent.FieldAipDisabled:
		return m.OldAipDisabled(ctx)
	case agent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agent.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Agent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agent.FieldAgentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentHash(v)
		return nil
	case agent.FieldAccountID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountID(v)
		return nil
	case agent.FieldEnforcementMode:
		v, ok := value.(agent.EnforcementMode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnforcementMode(v)
		return nil
	case agent.FieldContainmentStatus:
		v, ok := value.(agent.ContainmentStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContainmentStatus(v)
		return nil
	case agent.FieldAutoContainmentThreshold:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutoContainmentThreshold(v)
		return nil
	case agent.FieldNudgeStrategy:
		v, ok := value.(agent.NudgeStrategy)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNudgeStrategy(v)
		return nil
	case agent.FieldNudgeRate:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNudgeRate(v)
		return nil
	case agent.FieldNudgeThreshold:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNudgeThreshold(v)
		return nil
	case agent.FieldAipDisabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAipDisabled(v)
		return nil
	case agent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agent.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentMutation) AddedFields() []string {
	var fields []string
	if m.addauto_containment_threshold != nil {
		fields = append(fields, agent.FieldAutoContainmentThreshold)
	}
	if m.addnudge_rate != nil {
		fields = append(fields, agent.FieldNudgeRate)
	}
	if m.addnudge_threshold != nil {
		fields = append(fields, agent.FieldNudgeThreshold)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldAutoContainmentThreshold:
		return m.AddedAutoContainmentThreshold()
	case agent.FieldNudgeRate:
		return m.AddedNudgeRate()
	case agent.FieldNudgeThreshold:
		return m.AddedNudgeThreshold()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agent.FieldAutoContainmentThreshold:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAutoContainmentThreshold(v)
		return nil
	case agent.FieldNudgeRate:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNudgeRate(v)
		return nil
	case agent.FieldNudgeThreshold:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNudgeThreshold(v)
		return nil
	}
	return fmt.Errorf("unknown Agent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agent.FieldAccountID) {
		fields = append(fields, agent.FieldAccountID)
	}
	if m.FieldCleared(agent.FieldAutoContainmentThreshold) {
		fields = append(fields, agent.FieldAutoContainmentThreshold)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentMutation) ClearField(name string) error {
	switch name {
	case agent.FieldAccountID:
		m.ClearAccountID()
		return nil
	case agent.FieldAutoContainmentThreshold:
		m.ClearAutoContainmentThreshold()
		return nil
	}
	return fmt.Errorf("unknown Agent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentMutation) ResetField(name string) error {
	switch name {
	case agent.FieldAgentHash:
		m.ResetAgentHash()
		return nil
	case agent.FieldAccountID:
		m.ResetAccountID()
		return nil
	case agent.FieldEnforcementMode:
		m.ResetEnforcementMode()
		return nil
	case agent.FieldContainmentStatus:
		m.ResetContainmentStatus()
		return nil
	case agent.FieldAutoContainmentThreshold:
		m.ResetAutoContainmentThreshold()
		return nil
	case agent.FieldNudgeStrategy:
		m.ResetNudgeStrategy()
		return nil
	case agent.FieldNudgeRate:
		m.ResetNudgeRate()
		return nil
	case agent.FieldNudgeThreshold:
		m.ResetNudgeThreshold()
		return nil
	case agent.FieldAipDisabled:
		m.ResetAipDisabled()
		return nil
	case agent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agent.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.cards != nil {
		edges = append(edges, agent.EdgeCards)
	}
	if m.checkpoints != nil {
		edges = append(edges, agent.EdgeCheckpoints)
	}
	if m.merkle_tree != nil {
		edges = append(edges, agent.EdgeMerkleTree)
	}
	if m.nudges != nil {
		edges = append(edges, agent.EdgeNudges)
	}
	if m.audit_logs != nil {
		edges = append(edges, agent.EdgeAuditLogs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agent.EdgeCards:
		ids := make([]ent.Value, 0, len(m.cards))
		for id := range m.cards {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeCheckpoints:
		ids := make([]ent.Value, 0, len(m.checkpoints))
		for id := range m.checkpoints {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeMerkleTree:
		if id := m.merkle_tree; id != nil {
			return []ent.Value{*id}
		}
	case agent.EdgeNudges:
		ids := make([]ent.Value, 0, len(m.nudges))
		for id := range m.nudges {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeAuditLogs:
		ids := make([]ent.Value, 0, len(m.audit_logs))
		for id := range m.audit_logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedcards != nil {
		edges = append(edges, agent.EdgeCards)
	}
	if m.removedcheckpoints != nil {
		edges = append(edges, agent.EdgeCheckpoints)
	}
	if m.removednudges != nil {
		edges = append(edges, agent.EdgeNudges)
	}
	if m.removedaudit_logs != nil {
		edges = append(edges, agent.EdgeAuditLogs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case agent.EdgeCards:
		ids := make([]ent.Value, 0, len(m.removedcards))
		for id := range m.removedcards {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeCheckpoints:
		ids := make([]ent.Value, 0, len(m.removedcheckpoints))
		for id := range m.removedcheckpoints {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeNudges:
		ids := make([]ent.Value, 0, len(m.removednudges))
		for id := range m.removednudges {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeAuditLogs:
		ids := make([]ent.Value, 0, len(m.removedaudit_logs))
		for id := range m.removedaudit_logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedcards {
		edges = append(edges, agent.EdgeCards)
	}
	if m.clearedcheckpoints {
		edges = append(edges, agent.EdgeCheckpoints)
	}
	if m.clearedmerkle_tree {
		edges = append(edges, agent.EdgeMerkleTree)
	}
	if m.clearednudges {
		edges = append(edges, agent.EdgeNudges)
	}
	if m.clearedaudit_logs {
		edges = append(edges, agent.EdgeAuditLogs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentMutation) EdgeCleared(name string) bool {
	switch name {
	case agent.EdgeCards:
		return m.clearedcards
	case agent.EdgeCheckpoints:
		return m.clearedcheckpoints
	case agent.EdgeMerkleTree:
		return m.clearedmerkle_tree
	case agent.EdgeNudges:
		return m.clearednudges
	case agent.EdgeAuditLogs:
		return m.clearedaudit_logs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentMutation) ClearEdge(name string) error {
	switch name {
	case agent.EdgeMerkleTree:
		m.ClearMerkleTree()
		return nil
	}
	return fmt.Errorf("unknown Agent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentMutation) ResetEdge(name string) error {
	switch name {
	case agent.EdgeCards:
		m.ResetCards()
		return nil
	case agent.EdgeCheckpoints:
		m.ResetCheckpoints()
		return nil
	case agent.EdgeMerkleTree:
		m.ResetMerkleTree()
		return nil
	case agent.EdgeNudges:
		m.ResetNudges()
		return nil
	case agent.EdgeAuditLogs:
		m.ResetAuditLogs()
		return nil
	}
	return fmt.Errorf("unknown Agent edge %s", name)
}

// AlignmentCardMutation represents an operation that mutates the AlignmentCard nodes in the graph.
type AlignmentCardMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	principal                 *string
	role                      *string
	description               *string
	declared_values           *[]map[string]interface{}
	appenddeclared_values     []map[string]interface{}
	bounded_actions           *[]string
	appendbounded_actions     []string
	forbidden_actions         *[]string
	appendforbidden_actions   []string
	escalation_triggers       *[]map[string]interface{}
	appendescalation_triggers []map[string]interface{}
	audit_commitment          *string
	is_active                 *bool
	created_at                *time.Time
	updated_at                *time.Time
	clearedFields             map[string]struct{}
	agent                     *string
	clearedagent              bool
	done                      bool
	oldValue                  func(context.Context) (*AlignmentCard, error)
	predicates                []predicate.AlignmentCard
}

var _ ent.Mutation = (*AlignmentCardMutation)(nil)

// alignmentcardOption allows management of the mutation configuration using functional options.
type alignmentcardOption func(*AlignmentCardMutation)

// newAlignmentCardMutation creates new mutation for the AlignmentCard entity.
func newAlignmentCardMutation(c config, op Op, opts ...alignmentcardOption) *AlignmentCardMutation {
	m := &AlignmentCardMutation{
		config:        c,
		op:            op,
		typ:           TypeAlignmentCard,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAlignmentCardID sets the ID field of the mutation.
func withAlignmentCardID(id string) alignmentcardOption {
	return func(m *AlignmentCardMutation) {
		var (
			err   error
			once  sync.Once
			value *AlignmentCard
		)
		m.oldValue = func(ctx context.Context) (*AlignmentCard, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AlignmentCard.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAlignmentCard sets the old AlignmentCard of the mutation.
func withAlignmentCard(node *AlignmentCard) alignmentcardOption {
	return func(m *AlignmentCardMutation) {
		m.oldValue = func(context.Context) (*AlignmentCard, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AlignmentCardMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AlignmentCardMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AlignmentCard entities.
func (m *AlignmentCardMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AlignmentCardMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AlignmentCardMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AlignmentCard.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *AlignmentCardMutation) SetAgentID(s string) {
	m.agent = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *AlignmentCardMutation) AgentID() (r string, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the AlignmentCard entity.
// If the AlignmentCard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlignmentCardMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *AlignmentCardMutation) ResetAgentID() {
	m.agent = nil
}

// SetPrincipal sets the "principal" field.
func (m *AlignmentCardMutation) SetPrincipal(s string) {
	m.principal = &s
}

// Principal returns the value of the "principal" field in the mutation.
func (m *AlignmentCardMutation) Principal() (r string, exists bool) {
	v := m.principal
	if v == nil {
		return
	}
	return *v, true
}

// OldPrincipal returns the old "principal" field's value of the AlignmentCard entity.
// If the AlignmentCard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlignmentCardMutation) OldPrincipal(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrincipal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrincipal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrincipal: %w", err)
	}
	return oldValue.Principal, nil
}

// ClearPrincipal clears the value of the "principal" field.
func (m *AlignmentCardMutation) ClearPrincipal() {
	m.principal = nil
	m.clearedFields[alignmentcard.FieldPrincipal] = struct{}{}
}

// PrincipalCleared returns if the "principal" field was cleared in this mutation.
func (m *AlignmentCardMutation) PrincipalCleared() bool {
	_, ok := m.clearedFields[alignmentcard.FieldPrincipal]
	return ok
}

// ResetPrincipal resets all changes to the "principal" field.
func (m *AlignmentCardMutation) ResetPrincipal() {
	m.principal = nil
	delete(m.clearedFields, alignmentcard.FieldPrincipal)
}

// SetRole sets the "role" field.
func (m *AlignmentCardMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *AlignmentCardMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the AlignmentCard entity.
// If the AlignmentCard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlignmentCardMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ClearRole clears the value of the "role" field.
func (m *AlignmentCardMutation) ClearRole() {
	m.role = nil
	m.clearedFields[alignmentcard.FieldRole] = struct{}{}
}

// RoleCleared returns if the "role" field was cleared in this mutation.
func (m *AlignmentCardMutation) RoleCleared() bool {
	_, ok := m.clearedFields[alignmentcard.FieldRole]
	return ok
}

// ResetRole resets all changes to the "role" field.
func (m *AlignmentCardMutation) ResetRole() {
	m.role = nil
	delete(m.clearedFields, alignmentcard.FieldRole)
}

// SetDescription sets the "description" field.
func (m *AlignmentCardMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *AlignmentCardMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the AlignmentCard entity.
// If the AlignmentCard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlignmentCardMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *AlignmentCardMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[alignmentcard.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *AlignmentCardMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[alignmentcard.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *AlignmentCardMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, alignmentcard.FieldDescription)
}

// SetDeclaredValues sets the "declared_values" field.
func (m *AlignmentCardMutation) SetDeclaredValues(value []map[string]interface{}) {
	m.declared_values = &value
	m.appenddeclared_values = nil
}

// DeclaredValues returns the value of the "declared_values" field in the mutation.
func (m *AlignmentCardMutation) DeclaredValues() (r []map[string]interface{}, exists bool) {
	v := m.declared_values
	if v == nil {
		return
	}
	return *v, true
}

// OldDeclaredValues returns the old "declared_values" field's value of the AlignmentCard entity.
// If the AlignmentCard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlignmentCardMutation) OldDeclaredValues(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeclaredValues is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeclaredValues requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeclaredValues: %w", err)
	}
	return oldValue.DeclaredValues, nil
}

// AppendDeclaredValues adds value to the "declared_values" field.
func (m *AlignmentCardMutation) AppendDeclaredValues(value []map[string]interface{}) {
	m.appenddeclared_values = append(m.appenddeclared_values, value...)
}

// AppendedDeclaredValues returns the list of values that were appended to the "declared_values" field in this mutation.
func (m *AlignmentCardMutation) AppendedDeclaredValues() ([]map[string]interface{}, bool) {
	if len(m.appenddeclared_values) == 0 {
		return nil, false
	}
	return m.appenddeclared_values, true
}

// ResetDeclaredValues resets all changes to the "declared_values" field.
func (m *AlignmentCardMutation) ResetDeclaredValues() {
	m.declared_values = nil
	m.appenddeclared_values = nil
}

// SetBoundedActions sets the "bounded_actions" field.
func (m *AlignmentCardMutation) SetBoundedActions(s []string) {
	m.bounded_actions = &s
	m.appendbounded_actions = nil
}

// BoundedActions returns the value of the "bounded_actions" field in the mutation.
func (m *AlignmentCardMutation) BoundedActions() (r []string, exists bool) {
	v := m.bounded_actions
	if v == nil {
		return
	}
	return *v, true
}

// OldBoundedActions returns the old "bounded_actions" field's value of the AlignmentCard entity.
// If the AlignmentCard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlignmentCardMutation) OldBoundedActions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBoundedActions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBoundedActions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBoundedActions: %w", err)
	}
	return oldValue.BoundedActions, nil
}

// AppendBoundedActions adds s to the "bounded_actions" field.
func (m *AlignmentCardMutation) AppendBoundedActions(s []string) {
	m.appendbounded_actions = append(m.appendbounded_actions, s...)
}

// AppendedBoundedActions returns the list of values that were appended to the "bounded_actions" field in this mutation.
func (m *AlignmentCardMutation) AppendedBoundedActions() ([]string, bool) {
	if len(m.appendbounded_actions) == 0 {
		return nil, false
	}
	return m.appendbounded_actions, true
}

// ClearBoundedActions clears the value of the "bounded_actions" field.
func (m *AlignmentCardMutation) ClearBoundedActions() {
	m.bounded_actions = nil
	m.appendbounded_actions = nil
	m.clearedFields[alignmentcard.FieldBoundedActions] = struct{}{}
}

// BoundedActionsCleared returns if the "bounded_actions" field was cleared in this mutation.
func (m *AlignmentCardMutation) BoundedActionsCleared() bool {
	_, ok := m.clearedFields[alignmentcard.FieldBoundedActions]
	return ok
}

// ResetBoundedActions resets all changes to the "bounded_actions" field.
func (m *AlignmentCardMutation) ResetBoundedActions() {
	m.bounded_actions = nil
	m.appendbounded_actions = nil
	delete(m.clearedFields, alignmentcard.FieldBoundedActions)
}

// SetForbiddenActions sets the "forbidden_actions" field.
func (m *AlignmentCardMutation) SetForbiddenActions(s []string) {
	m.forbidden_actions = &s
	m.appendforbidden_actions = nil
}

// ForbiddenActions returns the value of the "forbidden_actions" field in the mutation.
func (m *AlignmentCardMutation) ForbiddenActions() (r []string, exists bool) {
	v := m.forbidden_actions
	if v == nil {
		return
	}
	return *v, true
}

// OldForbiddenActions returns the old "forbidden_actions" field's value of the AlignmentCard entity.
// If the AlignmentCard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlignmentCardMutation) OldForbiddenActions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldForbiddenActions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldForbiddenActions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldForbiddenActions: %w", err)
	}
	return oldValue.ForbiddenActions, nil
}

// AppendForbiddenActions adds s to the "forbidden_actions" field.
func (m *AlignmentCardMutation) AppendForbiddenActions(s []string) {
	m.appendforbidden_actions = append(m.appendforbidden_actions, s...)
}

// AppendedForbiddenActions returns the list of values that were appended to the "forbidden_actions" field in this mutation.
func (m *AlignmentCardMutation) AppendedForbiddenActions() ([]string, bool) {
	if len(m.appendforbidden_actions) == 0 {
		return nil, false
	}
	return m.appendforbidden_actions, true
}

// ClearForbiddenActions clears the value of the "forbidden_actions" field.
func (m *AlignmentCardMutation) ClearForbiddenActions() {
	m.forbidden_actions = nil
	m.appendforbidden_actions = nil
	m.clearedFields[alignmentcard.FieldForbiddenActions] = struct{}{}
}

// ForbiddenActionsCleared returns if the "forbidden_actions" field was cleared in this mutation.
func (m *AlignmentCardMutation) ForbiddenActionsCleared() bool {
	_, ok := m.clearedFields[alignmentcard.FieldForbiddenActions]
	return ok
}

// ResetForbiddenActions resets all changes to the "forbidden_actions" field.
func (m *AlignmentCardMutation) ResetForbiddenActions() {
	m.forbidden_actions = nil
	m.appendforbidden_actions = nil
	delete(m.clearedFields, alignmentcard.FieldForbiddenActions)
}

// SetEscalationTriggers sets the "escalation_triggers" field.
func (m *AlignmentCardMutation) SetEscalationTriggers(value []map[string]interface{}) {
	m.escalation_triggers = &value
	m.appendescalation_triggers = nil
}

// EscalationTriggers returns the value of the "escalation_triggers" field in the mutation.
func (m *AlignmentCardMutation) EscalationTriggers() (r []map[string]interface{}, exists bool) {
	v := m.escalation_triggers
	if v == nil {
		return
	}
	return *v, true
}

// OldEscalationTriggers returns the old "escalation_triggers" field's value of the AlignmentCard entity.
// If the AlignmentCard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlignmentCardMutation) OldEscalationTriggers(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEscalationTriggers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEscalationTriggers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEscalationTriggers: %w", err)
	}
	return oldValue.EscalationTriggers, nil
}

// AppendEscalationTriggers adds value to the "escalation_triggers" field.
func (m *AlignmentCardMutation) AppendEscalationTriggers(value []map[string]interface{}) {
	m.appendescalation_triggers = append(m.appendescalation_triggers, value...)
}

// AppendedEscalationTriggers returns the list of values that were appended to the "escalation_triggers" field in this mutation.
func (m *AlignmentCardMutation) AppendedEscalationTriggers() ([]map[string]interface{}, bool) {
	if len(m.appendescalation_triggers) == 0 {
		return nil, false
	}
	return m.appendescalation_triggers, true
}

// ClearEscalationTriggers clears the value of the "escalation_triggers" field.
func (m *AlignmentCardMutation) ClearEscalationTriggers() {
	m.escalation_triggers = nil
	m.appendescalation_triggers = nil
	m.clearedFields[alignmentcard.FieldEscalationTriggers] = struct{}{}
}

// EscalationTriggersCleared returns if the "escalation_triggers" field was cleared in this mutation.
func (m *AlignmentCardMutation) EscalationTriggersCleared() bool {
	_, ok := m.clearedFields[alignmentcard.FieldEscalationTriggers]
	return ok
}

// ResetEscalationTriggers resets all changes to the "escalation_triggers" field.
func (m *AlignmentCardMutation) ResetEscalationTriggers() {
	m.escalation_triggers = nil
	m.appendescalation_triggers = nil
	delete(m.clearedFields, alignmentcard.FieldEscalationTriggers)
}

// SetAuditCommitment sets the "audit_commitment" field.
func (m *AlignmentCardMutation) SetAuditCommitment(s string) {
	m.audit_commitment = &s
}

// AuditCommitment returns the value of the "audit_commitment" field in the mutation.
func (m *AlignmentCardMutation) AuditCommitment() (r string, exists bool) {
	v := m.audit_commitment
	if v == nil {
		return
	}
	return *v, true
}

// OldAuditCommitment returns the old "audit_commitment" field's value of the AlignmentCard entity.
// If the AlignmentCard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlignmentCardMutation) OldAuditCommitment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuditCommitment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuditCommitment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuditCommitment: %w", err)
	}
	return oldValue.AuditCommitment, nil
}

// ClearAuditCommitment clears the value of the "audit_commitment" field.
func (m *AlignmentCardMutation) ClearAuditCommitment() {
	m.audit_commitment = nil
	m.clearedFields[alignmentcard.FieldAuditCommitment] = struct{}{}
}

// AuditCommitmentCleared returns if the "audit_commitment" field was cleared in this mutation.
func (m *AlignmentCardMutation) AuditCommitmentCleared() bool {
	_, ok := m.clearedFields[alignmentcard.FieldAuditCommitment]
	return ok
}

// ResetAuditCommitment resets all changes to the "audit_commitment" field.
func (m *AlignmentCardMutation) ResetAuditCommitment() {
	m.audit_commitment = nil
	delete(m.clearedFields, alignmentcard.FieldAuditCommitment)
}

// SetIsActive sets the "is_active" field.
func (m *AlignmentCardMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *AlignmentCardMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the AlignmentCard entity.
// If the AlignmentCard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlignmentCardMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *AlignmentCardMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AlignmentCardMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AlignmentCardMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AlignmentCard entity.
// If the AlignmentCard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlignmentCardMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AlignmentCardMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AlignmentCardMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AlignmentCardMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AlignmentCard entity.
// If the AlignmentCard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlignmentCardMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AlignmentCardMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (m *AlignmentCardMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[alignmentcard.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the Agent entity was cleared.
func (m *AlignmentCardMutation) AgentCleared() bool {
	return m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *AlignmentCardMutation) AgentIDs() (ids []string) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *AlignmentCardMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// Where appends a list predicates to the AlignmentCardMutation builder.
func (m *AlignmentCardMutation) Where(ps ...predicate.AlignmentCard) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AlignmentCardMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AlignmentCardMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AlignmentCard, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AlignmentCardMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AlignmentCardMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AlignmentCard).
func (m *AlignmentCardMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AlignmentCardMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.agent != nil {
		fields = append(fields, alignmentcard.FieldAgentID)
	}
	if m.principal != nil {
		fields = append(fields, alignmentcard.FieldPrincipal)
	}
	if m.role != nil {
		fields = append(fields, alignmentcard.FieldRole)
	}
	if m.description != nil {
		fields = append(fields, alignmentcard.FieldDescription)
	}
	if m.declared_values != nil {
		fields = append(fields, alignmentcard.FieldDeclaredValues)
	}
	if m.bounded_actions != nil {
		fields = append(fields, alignmentcard.FieldBoundedActions)
	}
	if m.forbidden_actions != nil {
		fields = append(fields, alignmentcard.FieldForbiddenActions)
	}
	if m.escalation_triggers != nil {
		fields = append(fields, alignmentcard.FieldEscalationTriggers)
	}
	if m.audit_commitment != nil {
		fields = append(fields, alignmentcard.FieldAuditCommitment)
	}
	if m.is_active != nil {
		fields = append(fields, alignmentcard.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, alignmentcard.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, alignmentcard.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AlignmentCardMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case alignmentcard.FieldAgentID:
		return m.AgentID()
	case alignmentcard.FieldPrincipal:
		return m.Principal()
	case alignmentcard.FieldRole:
		return m.Role()
	case alignmentcard.FieldDescription:
		return m.Description()
	case alignmentcard.FieldDeclaredValues:
		return m.DeclaredValues()
	case alignmentcard.FieldBoundedActions:
		return m.BoundedActions()
	case alignmentcard.FieldForbiddenActions:
		return m.ForbiddenActions()
	case alignmentcard.FieldEscalationTriggers:
		return m.EscalationTriggers()
	case alignmentcard.FieldAuditCommitment:
		return m.AuditCommitment()
	case alignmentcard.FieldIsActive:
		return m.IsActive()
	case alignmentcard.FieldCreatedAt:
		return m.CreatedAt()
	case alignmentcard.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AlignmentCardMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case alignmentcard.FieldAgentID:
		return m.OldAgentID(ctx)
	case alignmentcard.FieldPrincipal:
		return m.OldPrincipal(ctx)
	case alignmentcard.FieldRole:
		return m.OldRole(ctx)
	case alignmentcard.FieldDescription:
		return m.OldDescription(ctx)
	case alignmentcard.FieldDeclaredValues:
		return m.OldDeclaredValues(ctx)
	case alignmentcard.FieldBoundedActions:
		return m.OldBoundedActions(ctx)
	case alignmentcard.FieldForbiddenActions:
		return m.OldForbiddenActions(ctx)
	case alignmentcard.FieldEscalationTriggers:
		return m.OldEscalationTriggers(ctx)
	case alignmentcard.FieldAuditCommitment:
		return m.OldAuditCommitment(ctx)
	case alignmentcard.FieldIsActive:
		return m.OldIsActive(ctx)
	case alignmentcard.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case alignmentcard.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AlignmentCard field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlignmentCardMutation) SetField(name string, value ent.Value) error {
	switch name {
	case alignmentcard.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case alignmentcard.FieldPrincipal:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrincipal(v)
		return nil
	case alignmentcard.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case alignmentcard.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case alignmentcard.FieldDeclaredValues:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeclaredValues(v)
		return nil
	case alignmentcard.FieldBoundedActions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBoundedActions(v)
		return nil
	case alignmentcard.FieldForbiddenActions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetForbiddenActions(v)
		return nil
	case alignmentcard.FieldEscalationTriggers:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEscalationTriggers(v)
		return nil
	case alignmentcard.FieldAuditCommitment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuditCommitment(v)
		return nil
	case alignmentcard.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case alignmentcard.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case alignmentcard.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AlignmentCard field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AlignmentCardMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AlignmentCardMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlignmentCardMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AlignmentCard numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AlignmentCardMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(alignmentcard.FieldPrincipal) {
		fields = append(fields, alignmentcard.FieldPrincipal)
	}
	if m.FieldCleared(alignmentcard.FieldRole) {
		fields = append(fields, alignmentcard.FieldRole)
	}
	if m.FieldCleared(alignmentcard.FieldDescription) {
		fields = append(fields, alignmentcard.FieldDescription)
	}
	if m.FieldCleared(alignmentcard.FieldBoundedActions) {
		fields = append(fields, alignmentcard.FieldBoundedActions)
	}
	if m.FieldCleared(alignmentcard.FieldForbiddenActions) {
		fields = append(fields, alignmentcard.FieldForbiddenActions)
	}
	if m.FieldCleared(alignmentcard.FieldEscalationTriggers) {
		fields = append(fields, alignmentcard.FieldEscalationTriggers)
	}
	if m.FieldCleared(alignmentcard.FieldAuditCommitment) {
		fields = append(fields, alignmentcard.FieldAuditCommitment)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AlignmentCardMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AlignmentCardMutation) ClearField(name string) error {
	switch name {
	case alignmentcard.FieldPrincipal:
		m.ClearPrincipal()
		return nil
	case alignmentcard.FieldRole:
		m.ClearRole()
		return nil
	case alignmentcard.FieldDescription:
		m.ClearDescription()
		return nil
	case alignmentcard.FieldBoundedActions:
		m.ClearBoundedActions()
		return nil
	case alignmentcard.FieldForbiddenActions:
		m.ClearForbiddenActions()
		return nil
	case alignmentcard.FieldEscalationTriggers:
		m.ClearEscalationTriggers()
		return nil
	case alignmentcard.FieldAuditCommitment:
		m.ClearAuditCommitment()
		return nil
	}
	return fmt.Errorf("unknown AlignmentCard nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AlignmentCardMutation) ResetField(name string) error {
	switch name {
	case alignmentcard.FieldAgentID:
		m.ResetAgentID()
		return nil
	case alignmentcard.FieldPrincipal:
		m.ResetPrincipal()
		return nil
	case alignmentcard.FieldRole:
		m.ResetRole()
		return nil
	case alignmentcard.FieldDescription:
		m.ResetDescription()
		return nil
	case alignmentcard.FieldDeclaredValues:
		m.ResetDeclaredValues()
		return nil
	case alignmentcard.FieldBoundedActions:
		m.ResetBoundedActions()
		return nil
	case alignmentcard.FieldForbiddenActions:
		m.ResetForbiddenActions()
		return nil
	case alignmentcard.FieldEscalationTriggers:
		m.ResetEscalationTriggers()
		return nil
	case alignmentcard.FieldAuditCommitment:
		m.ResetAuditCommitment()
		return nil
	case alignmentcard.FieldIsActive:
		m.ResetIsActive()
		return nil
	case alignmentcard.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case alignmentcard.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AlignmentCard field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AlignmentCardMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.agent != nil {
		edges = append(edges, alignmentcard.EdgeAgent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AlignmentCardMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case alignmentcard.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AlignmentCardMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AlignmentCardMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AlignmentCardMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedagent {
		edges = append(edges, alignmentcard.EdgeAgent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AlignmentCardMutation) EdgeCleared(name string) bool {
	switch name {
	case alignmentcard.EdgeAgent:
		return m.clearedagent
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AlignmentCardMutation) ClearEdge(name string) error {
	switch name {
	case alignmentcard.EdgeAgent:
		m.ClearAgent()
		return nil
	}
	return fmt.Errorf("unknown AlignmentCard unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AlignmentCardMutation) ResetEdge(name string) error {
	switch name {
	case alignmentcard.EdgeAgent:
		m.ResetAgent()
		return nil
	}
	return fmt.Errorf("unknown AlignmentCard edge %s", name)
}

// AuditLogMutation represents an operation that mutates the AuditLog nodes in the graph.
type AuditLogMutation struct {
	config
	op              Op
	typ             string
	id              *string
	action          *string
	actor           *string
	reason          *string
	previous_status *string
	new_status      *string
	detail          *map[string]interface{}
	created_at      *time.Time
	clearedFields   map[string]struct{}
	agent           *string
	clearedagent    bool
	done            bool
	oldValue        func(context.Context) (*AuditLog, error)
	predicates      []predicate.AuditLog
}

var _ ent.Mutation = (*AuditLogMutation)(nil)

// auditlogOption allows management of the mutation configuration using functional options.
type auditlogOption func(*AuditLogMutation)

// newAuditLogMutation creates new mutation for the AuditLog entity.
func newAuditLogMutation(c config, op Op, opts ...auditlogOption) *AuditLogMutation {
	m := &AuditLogMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditLogID sets the ID field of the mutation.
func withAuditLogID(id string) auditlogOption {
	return func(m *AuditLogMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditLog
		)
		m.oldValue = func(ctx context.Context) (*AuditLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditLog sets the old AuditLog of the mutation.
func withAuditLog(node *AuditLog) auditlogOption {
	return func(m *AuditLogMutation) {
		m.oldValue = func(context.Context) (*AuditLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditLog entities.
func (m *AuditLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *AuditLogMutation) SetAgentID(s string) {
	m.agent = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *AuditLogMutation) AgentID() (r string, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *AuditLogMutation) ResetAgentID() {
	m.agent = nil
}

// SetAction sets the "action" field.
func (m *AuditLogMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *AuditLogMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *AuditLogMutation) ResetAction() {
	m.action = nil
}

// SetActor sets the "actor" field.
func (m *AuditLogMutation) SetActor(s string) {
	m.actor = &s
}

// Actor returns the value of the "actor" field in the mutation.
func (m *AuditLogMutation) Actor() (r string, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActor returns the old "actor" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldActor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActor: %w", err)
	}
	return oldValue.Actor, nil
}

// ResetActor resets all changes to the "actor" field.
func (m *AuditLogMutation) ResetActor() {
	m.actor = nil
}

// SetReason sets the "reason" field.
func (m *AuditLogMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *AuditLogMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *AuditLogMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[auditlog.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *AuditLogMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *AuditLogMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, auditlog.FieldReason)
}

// SetPreviousStatus sets the "previous_status" field.
func (m *AuditLogMutation) SetPreviousStatus(s string) {
	m.previous_status = &s
}

// PreviousStatus returns the value of the "previous_status" field in the mutation.
func (m *AuditLogMutation) PreviousStatus() (r string, exists bool) {
	v := m.previous_status
	if v == nil {
		return
	}
	return *v, true
}

// OldPreviousStatus returns the old "previous_status" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldPreviousStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreviousStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreviousStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreviousStatus: %w", err)
	}
	return oldValue.PreviousStatus, nil
}

// ClearPreviousStatus clears the value of the "previous_status" field.
func (m *AuditLogMutation) ClearPreviousStatus() {
	m.previous_status = nil
	m.clearedFields[auditlog.FieldPreviousStatus] = struct{}{}
}

// PreviousStatusCleared returns if the "previous_status" field was cleared in this mutation.
func (m *AuditLogMutation) PreviousStatusCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldPreviousStatus]
	return ok
}

// ResetPreviousStatus resets all changes to the "previous_status" field.
func (m *AuditLogMutation) ResetPreviousStatus() {
	m.previous_status = nil
	delete(m.clearedFields, auditlog.FieldPreviousStatus)
}

// SetNewStatus sets the "new_status" field.
func (m *AuditLogMutation) SetNewStatus(s string) {
	m.new_status = &s
}

// NewStatus returns the value of the "new_status" field in the mutation.
func (m *AuditLogMutation) NewStatus() (r string, exists bool) {
	v := m.new_status
	if v == nil {
		return
	}
	return *v, true
}

// OldNewStatus returns the old "new_status" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldNewStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewStatus: %w", err)
	}
	return oldValue.NewStatus, nil
}

// ClearNewStatus clears the value of the "new_status" field.
func (m *AuditLogMutation) ClearNewStatus() {
	m.new_status = nil
	m.clearedFields[auditlog.FieldNewStatus] = struct{}{}
}

// NewStatusCleared returns if the "new_status" field was cleared in this mutation.
func (m *AuditLogMutation) NewStatusCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldNewStatus]
	return ok
}

// ResetNewStatus resets all changes to the "new_status" field.
func (m *AuditLogMutation) ResetNewStatus() {
	m.new_status = nil
	delete(m.clearedFields, auditlog.FieldNewStatus)
}

// SetDetail sets the "detail" field.
func (m *AuditLogMutation) SetDetail(value map[string]interface{}) {
	m.detail = &value
}

// Detail returns the value of the "detail" field in the mutation.
func (m *AuditLogMutation) Detail() (r map[string]interface{}, exists bool) {
	v := m.detail
	if v == nil {
		return
	}
	return *v, true
}

// OldDetail returns the old "detail" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldDetail(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetail: %w", err)
	}
	return oldValue.Detail, nil
}

// ClearDetail clears the value of the "detail" field.
func (m *AuditLogMutation) ClearDetail() {
	m.detail = nil
	m.clearedFields[auditlog.FieldDetail] = struct{}{}
}

// DetailCleared returns if the "detail" field was cleared in this mutation.
func (m *AuditLogMutation) DetailCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldDetail]
	return ok
}

// ResetDetail resets all changes to the "detail" field.
func (m *AuditLogMutation) ResetDetail() {
	m.detail = nil
	delete(m.clearedFields, auditlog.FieldDetail)
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (m *AuditLogMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[auditlog.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the Agent entity was cleared.
func (m *AuditLogMutation) AgentCleared() bool {
	return m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *AuditLogMutation) AgentIDs() (ids []string) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *AuditLogMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// Where appends a list predicates to the AuditLogMutation builder.
func (m *AuditLogMutation) Where(ps ...predicate.AuditLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditLog).
func (m *AuditLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditLogMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.agent != nil {
		fields = append(fields, auditlog.FieldAgentID)
	}
	if m.action != nil {
		fields = append(fields, auditlog.FieldAction)
	}
	if m.actor != nil {
		fields = append(fields, auditlog.FieldActor)
	}
	if m.reason != nil {
		fields = append(fields, auditlog.FieldReason)
	}
	if m.previous_status != nil {
		fields = append(fields, auditlog.FieldPreviousStatus)
	}
	if m.new_status != nil {
		fields = append(fields, auditlog.FieldNewStatus)
	}
	if m.detail != nil {
		fields = append(fields, auditlog.FieldDetail)
	}
	if m.created_at != nil {
		fields = append(fields, auditlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditlog.FieldAgentID:
		return m.AgentID()
	case auditlog.FieldAction:
		return m.Action()
	case auditlog.FieldActor:
		return m.Actor()
	case auditlog.FieldReason:
		return m.Reason()
	case auditlog.FieldPreviousStatus:
		return m.PreviousStatus()
	case auditlog.FieldNewStatus:
		return m.NewStatus()
	case auditlog.FieldDetail:
		return m.Detail()
	case auditlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditlog.FieldAgentID:
		return m.OldAgentID(ctx)
	case auditlog.FieldAction:
		return m.OldAction(ctx)
	case auditlog.FieldActor:
		return m.OldActor(ctx)
	case auditlog.FieldReason:
		return m.OldReason(ctx)
	case auditlog.FieldPreviousStatus:
		return m.OldPreviousStatus(ctx)
	case auditlog.FieldNewStatus:
		return m.OldNewStatus(ctx)
	case auditlog.FieldDetail:
		return m.OldDetail(ctx)
	case auditlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditlog.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case auditlog.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case auditlog.FieldActor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActor(v)
		return nil
	case auditlog.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case auditlog.FieldPreviousStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreviousStatus(v)
		return nil
	case auditlog.FieldNewStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewStatus(v)
		return nil
	case auditlog.FieldDetail:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetail(v)
		return nil
	case auditlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditlog.FieldReason) {
		fields = append(fields, auditlog.FieldReason)
	}
	if m.FieldCleared(auditlog.FieldPreviousStatus) {
		fields = append(fields, auditlog.FieldPreviousStatus)
	}
	if m.FieldCleared(auditlog.FieldNewStatus) {
		fields = append(fields, auditlog.FieldNewStatus)
	}
	if m.FieldCleared(auditlog.FieldDetail) {
		fields = append(fields, auditlog.FieldDetail)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditLogMutation) ClearField(name string) error {
	switch name {
	case auditlog.FieldReason:
		m.ClearReason()
		return nil
	case auditlog.FieldPreviousStatus:
		m.ClearPreviousStatus()
		return nil
	case auditlog.FieldNewStatus:
		m.ClearNewStatus()
		return nil
	case auditlog.FieldDetail:
		m.ClearDetail()
		return nil
	}
	return fmt.Errorf("unknown AuditLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditLogMutation) ResetField(name string) error {
	switch name {
	case auditlog.FieldAgentID:
		m.ResetAgentID()
		return nil
	case auditlog.FieldAction:
		m.ResetAction()
		return nil
	case auditlog.FieldActor:
		m.ResetActor()
		return nil
	case auditlog.FieldReason:
		m.ResetReason()
		return nil
	case auditlog.FieldPreviousStatus:
		m.ResetPreviousStatus()
		return nil
	case auditlog.FieldNewStatus:
		m.ResetNewStatus()
		return nil
	case auditlog.FieldDetail:
		m.ResetDetail()
		return nil
	case auditlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.agent != nil {
		edges = append(edges, auditlog.EdgeAgent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditLogMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case auditlog.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedagent {
		edges = append(edges, auditlog.EdgeAgent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditLogMutation) EdgeCleared(name string) bool {
	switch name {
	case auditlog.EdgeAgent:
		return m.clearedagent
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditLogMutation) ClearEdge(name string) error {
	switch name {
	case auditlog.EdgeAgent:
		m.ClearAgent()
		return nil
	}
	return fmt.Errorf("unknown AuditLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditLogMutation) ResetEdge(name string) error {
	switch name {
	case auditlog.EdgeAgent:
		m.ResetAgent()
		return nil
	}
	return fmt.Errorf("unknown AuditLog edge %s", name)
}

// IntegrityCheckpointMutation represents an operation that mutates the IntegrityCheckpoint nodes in the graph.
type IntegrityCheckpointMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	card_id              *string
	session_id           *string
	timestamp            *time.Time
	provider             *integritycheckpoint.Provider
	model                *string
	thinking_block_hash  *string
	verdict              *integritycheckpoint.Verdict
	concerns             *[]map[string]interface{}
	appendconcerns       []map[string]interface{}
	reasoning_summary    *string
	conscience_context   *map[string]interface{}
	window_position      *map[string]interface{}
	analysis_metadata    *map[string]interface{}
	linked_trace_id      *string
	source               *integritycheckpoint.Source
	synthetic            *bool
	input_commitment     *string
	chain_hash           *string
	prev_chain_hash      *string
	merkle_leaf_index    *int
	addmerkle_leaf_index *int
	certificate_id       *string
	signature            *string
	signing_key_id       *string
	created_at           *time.Time
	clearedFields        map[string]struct{}
	agent                *string
	clearedagent         bool
	done                 bool
	oldValue             func(context.Context) (*IntegrityCheckpoint, error)
	predicates           []predicate.IntegrityCheckpoint
}

var _ ent.Mutation = (*IntegrityCheckpointMutation)(nil)

// integritycheckpointOption allows management of the mutation configuration using functional options.
type integritycheckpointOption func(*IntegrityCheckpointMutation)

// newIntegrityCheckpointMutation creates new mutation for the IntegrityCheckpoint entity.
func newIntegrityCheckpointMutation(c config, op Op, opts ...integritycheckpointOption) *IntegrityCheckpointMutation {
	m := &IntegrityCheckpointMutation{
		config:        c,
		op:            op,
		typ:           TypeIntegrityCheckpoint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIntegrityCheckpointID sets the ID field of the mutation.
func withIntegrityCheckpointID(id string) integritycheckpointOption {
	return func(m *IntegrityCheckpointMutation) {
		var (
			err   error
			once  sync.Once
			value *IntegrityCheckpoint
		)
		m.oldValue = func(ctx context.Context) (*IntegrityCheckpoint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().IntegrityCheckpoint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIntegrityCheckpoint sets the old IntegrityCheckpoint of the mutation.
func withIntegrityCheckpoint(node *IntegrityCheckpoint) integritycheckpointOption {
	return func(m *IntegrityCheckpointMutation) {
		m.oldValue = func(context.Context) (*IntegrityCheckpoint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IntegrityCheckpointMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IntegrityCheckpointMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of IntegrityCheckpoint entities.
func (m *IntegrityCheckpointMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IntegrityCheckpointMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IntegrityCheckpointMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().IntegrityCheckpoint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *IntegrityCheckpointMutation) SetAgentID(s string) {
	m.agent = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *IntegrityCheckpointMutation) AgentID() (r string, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the IntegrityCheckpoint entity.
// If the IntegrityCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrityCheckpointMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *IntegrityCheckpointMutation) ResetAgentID() {
	m.agent = nil
}

// SetCardID sets the "card_id" field.
func (m *IntegrityCheckpointMutation) SetCardID(s string) {
	m.card_id = &s
}

// CardID returns the value of the "card_id" field in the mutation.
func (m *IntegrityCheckpointMutation) CardID() (r string, exists bool) {
	v := m.card_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCardID returns the old "card_id" field's value of the IntegrityCheckpoint entity.
// If the IntegrityCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrityCheckpointMutation) OldCardID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCardID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCardID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCardID: %w", err)
	}
	return oldValue.CardID, nil
}

// ClearCardID clears the value of the "card_id" field.
func (m *IntegrityCheckpointMutation) ClearCardID() {
	m.card_id = nil
	m.clearedFields[integritycheckpoint.FieldCardID] = struct{}{}
}

// CardIDCleared returns if the "card_id" field was cleared in this mutation.
func (m *IntegrityCheckpointMutation) CardIDCleared() bool {
	_, ok := m.clearedFields[integritycheckpoint.FieldCardID]
	return ok
}

// ResetCardID resets all changes to the "card_id" field.
func (m *IntegrityCheckpointMutation) ResetCardID() {
	m.card_id = nil
	delete(m.clearedFields, integritycheckpoint.FieldCardID)
}

// SetSessionID sets the "session_id" field.
func (m *IntegrityCheckpointMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *IntegrityCheckpointMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the IntegrityCheckpoint entity.
// If the IntegrityCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrityCheckpointMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *IntegrityCheckpointMutation) ResetSessionID() {
	m.session_id = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *IntegrityCheckpointMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *IntegrityCheckpointMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the IntegrityCheckpoint entity.
// If the IntegrityCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrityCheckpointMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *IntegrityCheckpointMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *IntegrityCheckpointMutation) SetProvider(i integritycheckpoint.Provider) {
	m.provider = &i
}

// Provider returns the value of the "provider" field in the mutation.
func (m *IntegrityCheckpointMutation) Provider() (r integritycheckpoint.Provider, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the IntegrityCheckpoint entity.
// If the IntegrityCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrityCheckpointMutation) OldProvider(ctx context.Context) (v integritycheckpoint.Provider, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *IntegrityCheckpointMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *IntegrityCheckpointMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *IntegrityCheckpointMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the IntegrityCheckpoint entity.
// If the IntegrityCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrityCheckpointMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ClearModel clears the value of the "model" field.
func (m *IntegrityCheckpointMutation) ClearModel() {
	m.model = nil
	m.clearedFields[integritycheckpoint.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *IntegrityCheckpointMutation) ModelCleared() bool {
	_, ok := m.clearedFields[integritycheckpoint.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *IntegrityCheckpointMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, integritycheckpoint.FieldModel)
}

// SetThinkingBlockHash sets the "thinking_block_hash" field.
func (m *IntegrityCheckpointMutation) SetThinkingBlockHash(s string) {
	m.thinking_block_hash = &s
}

// ThinkingBlockHash returns the value of the "thinking_block_hash" field in the mutation.
func (m *IntegrityCheckpointMutation) ThinkingBlockHash() (r string, exists bool) {
	v := m.thinking_block_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldThinkingBlockHash returns the old "thinking_block_hash" field's value of the IntegrityCheckpoint entity.
// If the IntegrityCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrityCheckpointMutation) OldThinkingBlockHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThinkingBlockHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThinkingBlockHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThinkingBlockHash: %w", err)
	}
	return oldValue.ThinkingBlockHash, nil
}

// ClearThinkingBlockHash clears the value of the "thinking_block_hash" field.
func (m *IntegrityCheckpointMutation) ClearThinkingBlockHash() {
	m.thinking_block_hash = nil
	m.clearedFields[integritycheckpoint.FieldThinkingBlockHash] = struct{}{}
}

// ThinkingBlockHashCleared returns if the "thinking_block_hash" field was cleared in this mutation.
func (m *IntegrityCheckpointMutation) ThinkingBlockHashCleared() bool {
	_, ok := m.clearedFields[integritycheckpoint.FieldThinkingBlockHash]
	return ok
}

// ResetThinkingBlockHash resets all changes to the "thinking_block_hash" field.
func (m *IntegrityCheckpointMutation) ResetThinkingBlockHash() {
	m.thinking_block_hash = nil
	delete(m.clearedFields, integritycheckpoint.FieldThinkingBlockHash)
}

// SetVerdict sets the "verdict" field.
func (m *IntegrityCheckpointMutation) SetVerdict(i integritycheckpoint.Verdict) {
	m.verdict = &i
}

// Verdict returns the value of the "verdict" field in the mutation.
func (m *IntegrityCheckpointMutation) Verdict() (r integritycheckpoint.Verdict, exists bool) {
	v := m.verdict
	if v == nil {
		return
	}
	return *v, true
}

// OldVerdict returns the old "verdict" field's value of the IntegrityCheckpoint entity.
// If the IntegrityCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrityCheckpointMutation) OldVerdict(ctx context.Context) (v integritycheckpoint.Verdict, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerdict is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerdict requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerdict: %w", err)
	}
	return oldValue.Verdict, nil
}

// ResetVerdict resets all changes to the "verdict" field.
func (m *IntegrityCheckpointMutation) ResetVerdict() {
	m.verdict = nil
}

// SetConcerns sets the "concerns" field.
func (m *IntegrityCheckpointMutation) SetConcerns(value []map[string]interface{}) {
	m.concerns = &value
	m.appendconcerns = nil
}

// Concerns returns the value of the "concerns" field in the mutation.
func (m *IntegrityCheckpointMutation) Concerns() (r []map[string]interface{}, exists bool) {
	v := m.concerns
	if v == nil {
		return
	}
	return *v, true
}

// OldConcerns returns the old "concerns" field's value of the IntegrityCheckpoint entity.
// If the IntegrityCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrityCheckpointMutation) OldConcerns(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConcerns is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConcerns requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConcerns: %w", err)
	}
	return oldValue.Concerns, nil
}

// AppendConcerns adds value to the "concerns" field.
func (m *IntegrityCheckpointMutation) AppendConcerns(value []map[string]interface{}) {
	m.appendconcerns = append(m.appendconcerns, value...)
}

// AppendedConcerns returns the list of values that were appended to the "concerns" field in this mutation.
func (m *IntegrityCheckpointMutation) AppendedConcerns() ([]map[string]interface{}, bool) {
	if len(m.appendconcerns) == 0 {
		return nil, false
	}
	return m.appendconcerns, true
}

// ClearConcerns clears the value of the "concerns" field.
func (m *IntegrityCheckpointMutation) ClearConcerns() {
	m.concerns = nil
	m.appendconcerns = nil
	m.clearedFields[integritycheckpoint.FieldConcerns] = struct{}{}
}

// ConcernsCleared returns if the "concerns" field was cleared in this mutation.
func (m *IntegrityCheckpointMutation) ConcernsCleared() bool {
	_, ok := m.clearedFields[integritycheckpoint.FieldConcerns]
	return ok
}

// ResetConcerns resets all changes to the "concerns" field.
func (m *IntegrityCheckpointMutation) ResetConcerns() {
	m.concerns = nil
	m.appendconcerns = nil
	delete(m.clearedFields, integritycheckpoint.FieldConcerns)
}

// SetReasoningSummary sets the "reasoning_summary" field.
func (m *IntegrityCheckpointMutation) SetReasoningSummary(s string) {
	m.reasoning_summary = &s
}

// ReasoningSummary returns the value of the "reasoning_summary" field in the mutation.
func (m *IntegrityCheckpointMutation) ReasoningSummary() (r string, exists bool) {
	v := m.reasoning_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoningSummary returns the old "reasoning_summary" field's value of the IntegrityCheckpoint entity.
// If the IntegrityCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrityCheckpointMutation) OldReasoningSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoningSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoningSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoningSummary: %w", err)
	}
	return oldValue.ReasoningSummary, nil
}

// ClearReasoningSummary clears the value of the "reasoning_summary" field.
func (m *IntegrityCheckpointMutation) ClearReasoningSummary() {
	m.reasoning_summary = nil
	m.clearedFields[integritycheckpoint.FieldReasoningSummary] = struct{}{}
}

// ReasoningSummaryCleared returns if the "reasoning_summary" field was cleared in this mutation.
func (m *IntegrityCheckpointMutation) ReasoningSummaryCleared() bool {
	_, ok := m.clearedFields[integritycheckpoint.FieldReasoningSummary]
	return ok
}

// ResetReasoningSummary resets all changes to the "reasoning_summary" field.
func (m *IntegrityCheckpointMutation) ResetReasoningSummary() {
	m.reasoning_summary = nil
	delete(m.clearedFields, integritycheckpoint.FieldReasoningSummary)
}

// SetConscienceContext sets the "conscience_context" field.
func (m *IntegrityCheckpointMutation) SetConscienceContext(value map[string]interface{}) {
	m.conscience_context = &value
}

// ConscienceContext returns the value of the "conscience_context" field in the mutation.
func (m *IntegrityCheckpointMutation) ConscienceContext() (r map[string]interface{}, exists bool) {
	v := m.conscience_context
	if v == nil {
		return
	}
	return *v, true
}

// OldConscienceContext returns the old "conscience_context" field's value of the IntegrityCheckpoint entity.
// If the IntegrityCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrityCheckpointMutation) OldConscienceContext(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConscienceContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConscienceContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConscienceContext: %w", err)
	}
	return oldValue.ConscienceContext, nil
}

// ClearConscienceContext clears the value of the "conscience_context" field.
func (m *IntegrityCheckpointMutation) ClearConscienceContext() {
	m.conscience_context = nil
	m.clearedFields[integritycheckpoint.FieldConscienceContext] = struct{}{}
}

// ConscienceContextCleared returns if the "conscience_context" field was cleared in this mutation.
func (m *IntegrityCheckpointMutation) ConscienceContextCleared() bool {
	_, ok := m.clearedFields[integritycheckpoint.FieldConscienceContext]
	return ok
}

// ResetConscienceContext resets all changes to the "conscience_context" field.
func (m *IntegrityCheckpointMutation) ResetConscienceContext() {
	m.conscience_context = nil
	delete(m.clearedFields, integritycheckpoint.FieldConscienceContext)
}

// SetWindowPosition sets the "window_position" field.
func (m *IntegrityCheckpointMutation) SetWindowPosition(value map[string]interface{}) {
	m.window_position = &value
}

// WindowPosition returns the value of the "window_position" field in the mutation.
func (m *IntegrityCheckpointMutation) WindowPosition() (r map[string]interface{}, exists bool) {
	v := m.window_position
	if v == nil {
		return
	}
	return *v, true
}

// OldWindowPosition returns the old "window_position" field's value of the IntegrityCheckpoint entity.
// If the IntegrityCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrityCheckpointMutation) OldWindowPosition(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindowPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindowPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindowPosition: %w", err)
	}
	return oldValue.WindowPosition, nil
}

// ClearWindowPosition clears the value of the "window_position" field.
func (m *IntegrityCheckpointMutation) ClearWindowPosition() {
	m.window_position = nil
	m.clearedFields[integritycheckpoint.FieldWindowPosition] = struct{}{}
}

// WindowPositionCleared returns if the "window_position" field was cleared in this mutation.
func (m *IntegrityCheckpointMutation) WindowPositionCleared() bool {
	_, ok := m.clearedFields[integritycheckpoint.FieldWindowPosition]
	return ok
}

// ResetWindowPosition resets all changes to the "window_position" field.
func (m *IntegrityCheckpointMutation) ResetWindowPosition() {
	m.window_position = nil
	delete(m.clearedFields, integritycheckpoint.FieldWindowPosition)
}

// SetAnalysisMetadata sets the "analysis_metadata" field.
func (m *IntegrityCheckpointMutation) SetAnalysisMetadata(value map[string]interface{}) {
	m.analysis_metadata = &value
}

// AnalysisMetadata returns the value of the "analysis_metadata" field in the mutation.
func (m *IntegrityCheckpointMutation) AnalysisMetadata() (r map[string]interface{}, exists bool) {
	v := m.analysis_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysisMetadata returns the old "analysis_metadata" field's value of the IntegrityCheckpoint entity.
// If the IntegrityCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrityCheckpointMutation) OldAnalysisMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysisMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysisMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysisMetadata: %w", err)
	}
	return oldValue.AnalysisMetadata, nil
}

// ClearAnalysisMetadata clears the value of the "analysis_metadata" field.
func (m *IntegrityCheckpointMutation) ClearAnalysisMetadata() {
	m.analysis_metadata = nil
	m.clearedFields[integritycheckpoint.FieldAnalysisMetadata] = struct{}{}
}

// AnalysisMetadataCleared returns if the "analysis_metadata" field was cleared in this mutation.
func (m *IntegrityCheckpointMutation) AnalysisMetadataCleared() bool {
	_, ok := m.clearedFields[integritycheckpoint.FieldAnalysisMetadata]
	return ok
}

// ResetAnalysisMetadata resets all changes to the "analysis_metadata" field.
func (m *IntegrityCheckpointMutation) ResetAnalysisMetadata() {
	m.analysis_metadata = nil
	delete(m.clearedFields, integritycheckpoint.FieldAnalysisMetadata)
}

// SetLinkedTraceID sets the "linked_trace_id" field.
func (m *IntegrityCheckpointMutation) SetLinkedTraceID(s string) {
	m.linked_trace_id = &s
}

// LinkedTraceID returns the value of the "linked_trace_id" field in the mutation.
func (m *IntegrityCheckpointMutation) LinkedTraceID() (r string, exists bool) {
	v := m.linked_trace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLinkedTraceID returns the old "linked_trace_id" field's value of the IntegrityCheckpoint entity.
// If the IntegrityCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrityCheckpointMutation) OldLinkedTraceID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLinkedTraceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLinkedTraceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLinkedTraceID: %w", err)
	}
	return oldValue.LinkedTraceID, nil
}

// ClearLinkedTraceID clears the value of the "linked_trace_id" field.
func (m *IntegrityCheckpointMutation) ClearLinkedTraceID() {
	m.linked_trace_id = nil
	m.clearedFields[integritycheckpoint.FieldLinkedTraceID] = struct{}{}
}

// LinkedTraceIDCleared returns if the "linked_trace_id" field was cleared in this mutation.
func (m *IntegrityCheckpointMutation) LinkedTraceIDCleared() bool {
	_, ok := m.clearedFields[integritycheckpoint.FieldLinkedTraceID]
	return ok
}

// ResetLinkedTraceID resets all changes to the "linked_trace_id" field.
func (m *IntegrityCheckpointMutation) ResetLinkedTraceID() {
	m.linked_trace_id = nil
	delete(m.clearedFields, integritycheckpoint.FieldLinkedTraceID)
}

// SetSource sets the "source" field.
func (m *IntegrityCheckpointMutation) SetSource(i integritycheckpoint.Source) {
	m.source = &i
}

// Source returns the value of the "source" field in the mutation.
func (m *IntegrityCheckpointMutation) Source() (r integritycheckpoint.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the IntegrityCheckpoint entity.
// If the IntegrityCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrityCheckpointMutation) OldSource(ctx context.Context) (v integritycheckpoint.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *IntegrityCheckpointMutation) ResetSource() {
	m.source = nil
}

// SetSynthetic sets the "synthetic" field.
func (m *IntegrityCheckpointMutation) SetSynthetic(b bool) {
	m.synthetic = &b
}

// Synthetic returns the value of the "synthetic" field in the mutation.
func (m *IntegrityCheckpointMutation) Synthetic() (r bool, exists bool) {
	v := m.synthetic
	if v == nil {
		return
	}
	return *v, true
}

// OldSynthetic returns the old "synthetic" field's value of the IntegrityCheckpoint entity.
// If the IntegrityCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrityCheckpointMutation) OldSynthetic(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSynthetic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSynthetic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSynthetic: %w", err)
	}
	return oldValue.Synthetic, nil
}

// ResetSynthetic resets all changes to the "synthetic" field.
func (m *IntegrityCheckpointMutation) ResetSynthetic() {
	m.synthetic = nil
}

// SetInputCommitment sets the "input_commitment" field.
func (m *IntegrityCheckpointMutation) SetInputCommitment(s string) {
	m.input_commitment = &s
}

// InputCommitment returns the value of the "input_commitment" field in the mutation.
func (m *IntegrityCheckpointMutation) InputCommitment() (r string, exists bool) {
	v := m.input_commitment
	if v == nil {
		return
	}
	return *v, true
}

// OldInputCommitment returns the old "input_commitment" field's value of the IntegrityCheckpoint entity.
// If the IntegrityCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrityCheckpointMutation) OldInputCommitment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputCommitment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputCommitment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputCommitment: %w", err)
	}
	return oldValue.InputCommitment, nil
}

// ClearInputCommitment clears the value of the "input_commitment" field.
func (m *IntegrityCheckpointMutation) ClearInputCommitment() {
	m.input_commitment = nil
	m.clearedFields[integritycheckpoint.FieldInputCommitment] = struct{}{}
}

// InputCommitmentCleared returns if the "input_commitment" field was cleared in this mutation.
func (m *IntegrityCheckpointMutation) InputCommitmentCleared() bool {
	_, ok := m.clearedFields[integritycheckpoint.FieldInputCommitment]
	return ok
}

// ResetInputCommitment resets all changes to the "input_commitment" field.
func (m *IntegrityCheckpointMutation) ResetInputCommitment() {
	m.input_commitment = nil
	delete(m.clearedFields, integritycheckpoint.FieldInputCommitment)
}

// SetChainHash sets the "chain_hash" field.
func (m *IntegrityCheckpointMutation) SetChainHash(s string) {
	m.chain_hash = &s
}

// ChainHash returns the value of the "chain_hash" field in the mutation.
func (m *IntegrityCheckpointMutation) ChainHash() (r string, exists bool) {
	v := m.chain_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldChainHash returns the old "chain_hash" field's value of the IntegrityCheckpoint entity.
// If the IntegrityCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrityCheckpointMutation) OldChainHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChainHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChainHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChainHash: %w", err)
	}
	return oldValue.ChainHash, nil
}

// ClearChainHash clears the value of the "chain_hash" field.
func (m *IntegrityCheckpointMutation) ClearChainHash() {
	m.chain_hash = nil
	m.clearedFields[integritycheckpoint.FieldChainHash] = struct{}{}
}

// ChainHashCleared returns if the "chain_hash" field was cleared in this mutation.
func (m *IntegrityCheckpointMutation) ChainHashCleared() bool {
	_, ok := m.clearedFields[integritycheckpoint.FieldChainHash]
	return ok
}

// ResetChainHash resets all changes to the "chain_hash" field.
func (m *IntegrityCheckpointMutation) ResetChainHash() {
	m.chain_hash = nil
	delete(m.clearedFields, integritycheckpoint.FieldChainHash)
}

// SetPrevChainHash sets the "prev_chain_hash" field.
func (m *IntegrityCheckpointMutation) SetPrevChainHash(s string) {
	m.prev_chain_hash = &s
}

// PrevChainHash returns the value of the "prev_chain_hash" field in the mutation.
func (m *IntegrityCheckpointMutation) PrevChainHash() (r string, exists bool) {
	v := m.prev_chain_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPrevChainHash returns the old "prev_chain_hash" field's value of the IntegrityCheckpoint entity.
// If the IntegrityCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrityCheckpointMutation) OldPrevChainHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrevChainHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrevChainHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrevChainHash: %w", err)
	}
	return oldValue.PrevChainHash, nil
}

// ClearPrevChainHash clears the value of the "prev_chain_hash" field.
func (m *IntegrityCheckpointMutation) ClearPrevChainHash() {
	m.prev_chain_hash = nil
	m.clearedFields[integritycheckpoint.FieldPrevChainHash] = struct{}{}
}

// PrevChainHashCleared returns if the "prev_chain_hash" field was cleared in this mutation.
func (m *IntegrityCheckpointMutation) PrevChainHashCleared() bool {
	_, ok := m.clearedFields[integritycheckpoint.FieldPrevChainHash]
	return ok
}

// ResetPrevChainHash resets all changes to the "prev_chain_hash" field.
func (m *IntegrityCheckpointMutation) ResetPrevChainHash() {
	m.prev_chain_hash = nil
	delete(m.clearedFields, integritycheckpoint.FieldPrevChainHash)
}

// SetMerkleLeafIndex sets the "merkle_leaf_index" field.
func (m *IntegrityCheckpointMutation) SetMerkleLeafIndex(i int) {
	m.merkle_leaf_index = &i
	m.addmerkle_leaf_index = nil
}

// MerkleLeafIndex returns the value of the "merkle_leaf_index" field in the mutation.
func (m *IntegrityCheckpointMutation) MerkleLeafIndex() (r int, exists bool) {
	v := m.merkle_leaf_index
	if v == nil {
		return
	}
	return *v, true
}

// OldMerkleLeafIndex returns the old "merkle_leaf_index" field's value of the IntegrityCheckpoint entity.
// If the IntegrityCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrityCheckpointMutation) OldMerkleLeafIndex(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMerkleLeafIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMerkleLeafIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMerkleLeafIndex: %w", err)
	}
	return oldValue.MerkleLeafIndex, nil
}

// AddMerkleLeafIndex adds i to the "merkle_leaf_index" field.
func (m *IntegrityCheckpointMutation) AddMerkleLeafIndex(i int) {
	if m.addmerkle_leaf_index != nil {
		*m.addmerkle_leaf_index += i
	} else {
		m.addmerkle_leaf_index = &i
	}
}

// AddedMerkleLeafIndex returns the value that was added to the "merkle_leaf_index" field in this mutation.
func (m *IntegrityCheckpointMutation) AddedMerkleLeafIndex() (r int, exists bool) {
	v := m.addmerkle_leaf_index
	if v == nil {
		return
	}
	return *v, true
}

// ClearMerkleLeafIndex clears the value of the "merkle_leaf_index" field.
func (m *IntegrityCheckpointMutation) ClearMerkleLeafIndex() {
	m.merkle_leaf_index = nil
	m.addmerkle_leaf_index = nil
	m.clearedFields[integritycheckpoint.FieldMerkleLeafIndex] = struct{}{}
}

// MerkleLeafIndexCleared returns if the "merkle_leaf_index" field was cleared in this mutation.
func (m *IntegrityCheckpointMutation) MerkleLeafIndexCleared() bool {
	_, ok := m.clearedFields[integritycheckpoint.FieldMerkleLeafIndex]
	return ok
}

// ResetMerkleLeafIndex resets all changes to the "merkle_leaf_index" field.
func (m *IntegrityCheckpointMutation) ResetMerkleLeafIndex() {
	m.merkle_leaf_index = nil
	m.addmerkle_leaf_index = nil
	delete(m.clearedFields, integritycheckpoint.FieldMerkleLeafIndex)
}

// SetCertificateID sets the "certificate_id" field.
func (m *IntegrityCheckpointMutation) SetCertificateID(s string) {
	m.certificate_id = &s
}

// CertificateID returns the value of the "certificate_id" field in the mutation.
func (m *IntegrityCheckpointMutation) CertificateID() (r string, exists bool) {
	v := m.certificate_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCertificateID returns the old "certificate_id" field's value of the IntegrityCheckpoint entity.
// If the IntegrityCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrityCheckpointMutation) OldCertificateID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCertificateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCertificateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCertificateID: %w", err)
	}
	return oldValue.CertificateID, nil
}

// ClearCertificateID clears the value of the "certificate_id" field.
func (m *IntegrityCheckpointMutation) ClearCertificateID() {
	m.certificate_id = nil
	m.clearedFields[integritycheckpoint.FieldCertificateID] = struct{}{}
}

// CertificateIDCleared returns if the "certificate_id" field was cleared in this mutation.
func (m *IntegrityCheckpointMutation) CertificateIDCleared() bool {
	_, ok := m.clearedFields[integritycheckpoint.FieldCertificateID]
	return ok
}

// ResetCertificateID resets all changes to the "certificate_id" field.
func (m *IntegrityCheckpointMutation) ResetCertificateID() {
	m.certificate_id = nil
	delete(m.clearedFields, integritycheckpoint.FieldCertificateID)
}

// SetSignature sets the "signature" field.
func (m *IntegrityCheckpointMutation) SetSignature(s string) {
	m.signature = &s
}

// Signature returns the value of the "signature" field in the mutation.
func (m *IntegrityCheckpointMutation) Signature() (r string, exists bool) {
	v := m.signature
	if v == nil {
		return
	}
	return *v, true
}

// OldSignature returns the old "signature" field's value of the IntegrityCheckpoint entity.
// If the IntegrityCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrityCheckpointMutation) OldSignature(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignature: %w", err)
	}
	return oldValue.Signature, nil
}

// ClearSignature clears the value of the "signature" field.
func (m *IntegrityCheckpointMutation) ClearSignature() {
	m.signature = nil
	m.clearedFields[integritycheckpoint.FieldSignature] = struct{}{}
}

// SignatureCleared returns if the "signature" field was cleared in this mutation.
func (m *IntegrityCheckpointMutation) SignatureCleared() bool {
	_, ok := m.clearedFields[integritycheckpoint.FieldSignature]
	return ok
}

// ResetSignature resets all changes to the "signature" field.
func (m *IntegrityCheckpointMutation) ResetSignature() {
	m.signature = nil
	delete(m.clearedFields, integritycheckpoint.FieldSignature)
}

// SetSigningKeyID sets the "signing_key_id" field.
func (m *IntegrityCheckpointMutation) SetSigningKeyID(s string) {
	m.signing_key_id = &s
}

// SigningKeyID returns the value of the "signing_key_id" field in the mutation.
func (m *IntegrityCheckpointMutation) SigningKeyID() (r string, exists bool) {
	v := m.signing_key_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSigningKeyID returns the old "signing_key_id" field's value of the IntegrityCheckpoint entity.
// If the IntegrityCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrityCheckpointMutation) OldSigningKeyID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSigningKeyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSigningKeyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSigningKeyID: %w", err)
	}
	return oldValue.SigningKeyID, nil
}

// ClearSigningKeyID clears the value of the "signing_key_id" field.
func (m *IntegrityCheckpointMutation) ClearSigningKeyID() {
	m.signing_key_id = nil
	m.clearedFields[integritycheckpoint.FieldSigningKeyID] = struct{}{}
}

// SigningKeyIDCleared returns if the "signing_key_id" field was cleared in this mutation.
func (m *IntegrityCheckpointMutation) SigningKeyIDCleared() bool {
	_, ok := m.clearedFields[integritycheckpoint.FieldSigningKeyID]
	return ok
}

// ResetSigningKeyID resets all changes to the "signing_key_id" field.
func (m *IntegrityCheckpointMutation) ResetSigningKeyID() {
	m.signing_key_id = nil
	delete(m.clearedFields, integritycheckpoint.FieldSigningKeyID)
}

// SetCreatedAt sets the "created_at" field.
func (m *IntegrityCheckpointMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IntegrityCheckpointMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the IntegrityCheckpoint entity.
// If the IntegrityCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrityCheckpointMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *IntegrityCheckpointMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (m *IntegrityCheckpointMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[integritycheckpoint.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the Agent entity was cleared.
func (m *IntegrityCheckpointMutation) AgentCleared() bool {
	return m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *IntegrityCheckpointMutation) AgentIDs() (ids []string) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *IntegrityCheckpointMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// Where appends a list predicates to the IntegrityCheckpointMutation builder.
func (m *IntegrityCheckpointMutation) Where(ps ...predicate.IntegrityCheckpoint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IntegrityCheckpointMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IntegrityCheckpointMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.IntegrityCheckpoint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IntegrityCheckpointMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IntegrityCheckpointMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (IntegrityCheckpoint).
func (m *IntegrityCheckpointMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IntegrityCheckpointMutation) Fields() []string {
	fields := make([]string, 0, 24)
	if m.agent != nil {
		fields = append(fields, integritycheckpoint.FieldAgentID)
	}
	if m.card_id != nil {
		fields = append(fields, integritycheckpoint.FieldCardID)
	}
	if m.session_id != nil {
		fields = append(fields, integritycheckpoint.FieldSessionID)
	}
	if m.timestamp != nil {
		fields = append(fields, integritycheckpoint.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, integritycheckpoint.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, integritycheckpoint.FieldModel)
	}
	if m.thinking_block_hash != nil {
		fields = append(fields, integritycheckpoint.FieldThinkingBlockHash)
	}
	if m.verdict != nil {
		fields = append(fields, integritycheckpoint.FieldVerdict)
	}
	if m.concerns != nil {
		fields = append(fields, integritycheckpoint.FieldConcerns)
	}
	if m.reasoning_summary != nil {
		fields = append(fields, integritycheckpoint.FieldReasoningSummary)
	}
	if m.conscience_context != nil {
		fields = append(fields, integritycheckpoint.FieldConscienceContext)
	}
	if m.window_position != nil {
		fields = append(fields, integritycheckpoint.FieldWindowPosition)
	}
	if m.analysis_metadata != nil {
		fields = append(fields, integritycheckpoint.FieldAnalysisMetadata)
	}
	if m.linked_trace_id != nil {
		fields = append(fields, integritycheckpoint.FieldLinkedTraceID)
	}
	if m.source != nil {
		fields = append(fields, integritycheckpoint.FieldSource)
	}
	if m.synthetic != nil {
		fields = append(fields, integritycheckpoint.FieldSynthetic)
	}
	if m.input_commitment != nil {
		fields = append(fields, integritycheckpoint.FieldInputCommitment)
	}
	if m.chain_hash != nil {
		fields = append(fields, integritycheckpoint.FieldChainHash)
	}
	if m.prev_chain_hash != nil {
		fields = append(fields, integritycheckpoint.FieldPrevChainHash)
	}
	if m.merkle_leaf_index != nil {
		fields = append(fields, integritycheckpoint.FieldMerkleLeafIndex)
	}
	if m.certificate_id != nil {
		fields = append(fields, integritycheckpoint.FieldCertificateID)
	}
	if m.signature != nil {
		fields = append(fields, integritycheckpoint.FieldSignature)
	}
	if m.signing_key_id != nil {
		fields = append(fields, integritycheckpoint.FieldSigningKeyID)
	}
	if m.created_at != nil {
		fields = append(fields, integritycheckpoint.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IntegrityCheckpointMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case integritycheckpoint.FieldAgentID:
		return m.AgentID()
	case integritycheckpoint.FieldCardID:
		return m.CardID()
	case integritycheckpoint.FieldSessionID:
		return m.SessionID()
	case integritycheckpoint.FieldTimestamp:
		return m.Timestamp()
	case integritycheckpoint.FieldProvider:
		return m.Provider()
	case integritycheckpoint.FieldModel:
		return m.Model()
	case integritycheckpoint.FieldThinkingBlockHash:
		return m.ThinkingBlockHash()
	case integritycheckpoint.FieldVerdict:
		return m.Verdict()
	case integritycheckpoint.FieldConcerns:
		return m.Concerns()
	case integritycheckpoint.FieldReasoningSummary:
		return m.ReasoningSummary()
	case integritycheckpoint.FieldConscienceContext:
		return m.ConscienceContext()
	case integritycheckpoint.FieldWindowPosition:
		return m.WindowPosition()
	case integritycheckpoint.FieldAnalysisMetadata:
		return m.AnalysisMetadata()
	case integritycheckpoint.FieldLinkedTraceID:
		return m.LinkedTraceID()
	case integritycheckpoint.FieldSource:
		return m.Source()
	case integritycheckpoint.FieldSynthetic:
		return m.Synthetic()
	case integritycheckpoint.FieldInputCommitment:
		return m.InputCommitment()
	case integritycheckpoint.FieldChainHash:
		return m.ChainHash()
	case integritycheckpoint.FieldPrevChainHash:
		return m.PrevChainHash()
	case integritycheckpoint.FieldMerkleLeafIndex:
		return m.MerkleLeafIndex()
	case integritycheckpoint.FieldCertificateID:
		return m.CertificateID()
	case integritycheckpoint.FieldSignature:
		return m.Signature()
	case integritycheckpoint.FieldSigningKeyID:
		return m.SigningKeyID()
	case integritycheckpoint.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IntegrityCheckpointMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case integritycheckpoint.FieldAgentID:
		return m.OldAgentID(ctx)
	case integritycheckpoint.FieldCardID:
		return m.OldCardID(ctx)
	case integritycheckpoint.FieldSessionID:
		return m.OldSessionID(ctx)
	case integritycheckpoint.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case integritycheckpoint.FieldProvider:
		return m.OldProvider(ctx)
	case integritycheckpoint.FieldModel:
		return m.OldModel(ctx)
	case integritycheckpoint.FieldThinkingBlockHash:
		return m.OldThinkingBlockHash(ctx)
	case integritycheckpoint.FieldVerdict:
		return m.OldVerdict(ctx)
	case integritycheckpoint.FieldConcerns:
		return m.OldConcerns(ctx)
	case integritycheckpoint.FieldReasoningSummary:
		return m.OldReasoningSummary(ctx)
	case integritycheckpoint.FieldConscienceContext:
		return m.OldConscienceContext(ctx)
	case integritycheckpoint.FieldWindowPosition:
		return m.OldWindowPosition(ctx)
	case integritycheckpoint.FieldAnalysisMetadata:
		return m.OldAnalysisMetadata(ctx)
	case integritycheckpoint.FieldLinkedTraceID:
		return m.OldLinkedTraceID(ctx)
	case integritycheckpoint.FieldSource:
		return m.OldSource(ctx)
	case integritycheckpoint.FieldSynthetic:
		return m.OldSynthetic(ctx)
	case integritycheckpoint.FieldInputCommitment:
		return m.OldInputCommitment(ctx)
	case integritycheckpoint.FieldChainHash:
		return m.OldChainHash(ctx)
	case integritycheckpoint.FieldPrevChainHash:
		return m.OldPrevChainHash(ctx)
	case integritycheckpoint.FieldMerkleLeafIndex:
		return m.OldMerkleLeafIndex(ctx)
	case integritycheckpoint.FieldCertificateID:
		return m.OldCertificateID(ctx)
	case integritycheckpoint.FieldSignature:
		return m.OldSignature(ctx)
	case integritycheckpoint.FieldSigningKeyID:
		return m.OldSigningKeyID(ctx)
	case integritycheckpoint.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown IntegrityCheckpoint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IntegrityCheckpointMutation) SetField(name string, value ent.Value) error {
	switch name {
	case integritycheckpoint.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case integritycheckpoint.FieldCardID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCardID(v)
		return nil
	case integritycheckpoint.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case integritycheckpoint.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case integritycheckpoint.FieldProvider:
		v, ok := value.(integritycheckpoint.Provider)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case integritycheckpoint.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case integritycheckpoint.FieldThinkingBlockHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThinkingBlockHash(v)
		return nil
	case integritycheckpoint.FieldVerdict:
		v, ok := value.(integritycheckpoint.Verdict)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerdict(v)
		return nil
	case integritycheckpoint.FieldConcerns:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConcerns(v)
		return nil
	case integritycheckpoint.FieldReasoningSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoningSummary(v)
		return nil
	case integritycheckpoint.FieldConscienceContext:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConscienceContext(v)
		return nil
	case integritycheckpoint.FieldWindowPosition:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindowPosition(v)
		return nil
	case integritycheckpoint.FieldAnalysisMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysisMetadata(v)
		return nil
	case integritycheckpoint.FieldLinkedTraceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLinkedTraceID(v)
		return nil
	case integritycheckpoint.FieldSource:
		v, ok := value.(integritycheckpoint.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case integritycheckpoint.FieldSynthetic:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSynthetic(v)
		return nil
	case integritycheckpoint.FieldInputCommitment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputCommitment(v)
		return nil
	case integritycheckpoint.FieldChainHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChainHash(v)
		return nil
	case integritycheckpoint.FieldPrevChainHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrevChainHash(v)
		return nil
	case integritycheckpoint.FieldMerkleLeafIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMerkleLeafIndex(v)
		return nil
	case integritycheckpoint.FieldCertificateID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCertificateID(v)
		return nil
	case integritycheckpoint.FieldSignature:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignature(v)
		return nil
	case integritycheckpoint.FieldSigningKeyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSigningKeyID(v)
		return nil
	case integritycheckpoint.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown IntegrityCheckpoint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IntegrityCheckpointMutation) AddedFields() []string {
	var fields []string
	if m.addmerkle_leaf_index != nil {
		fields = append(fields, integritycheckpoint.FieldMerkleLeafIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IntegrityCheckpointMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case integritycheckpoint.FieldMerkleLeafIndex:
		return m.AddedMerkleLeafIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IntegrityCheckpointMutation) AddField(name string, value ent.Value) error {
	switch name {
	case integritycheckpoint.FieldMerkleLeafIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMerkleLeafIndex(v)
		return nil
	}
	return fmt.Errorf("unknown IntegrityCheckpoint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IntegrityCheckpointMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(integritycheckpoint.FieldCardID) {
		fields = append(fields, integritycheckpoint.FieldCardID)
	}
	if m.FieldCleared(integritycheckpoint.FieldModel) {
		fields = append(fields, integritycheckpoint.FieldModel)
	}
	if m.FieldCleared(integritycheckpoint.FieldThinkingBlockHash) {
		fields = append(fields, integritycheckpoint.FieldThinkingBlockHash)
	}
	if m.FieldCleared(integritycheckpoint.FieldConcerns) {
		fields = append(fields, integritycheckpoint.FieldConcerns)
	}
	if m.FieldCleared(integritycheckpoint.FieldReasoningSummary) {
		fields = append(fields, integritycheckpoint.FieldReasoningSummary)
	}
	if m.FieldCleared(integritycheckpoint.FieldConscienceContext) {
		fields = append(fields, integritycheckpoint.FieldConscienceContext)
	}
	if m.FieldCleared(integritycheckpoint.FieldWindowPosition) {
		fields = append(fields, integritycheckpoint.FieldWindowPosition)
	}
	if m.FieldCleared(integritycheckpoint.FieldAnalysisMetadata) {
		fields = append(fields, integritycheckpoint.FieldAnalysisMetadata)
	}
	if m.FieldCleared(integritycheckpoint.FieldLinkedTraceID) {
		fields = append(fields, integritycheckpoint.FieldLinkedTraceID)
	}
	if m.FieldCleared(integritycheckpoint.FieldInputCommitment) {
		fields = append(fields, integritycheckpoint.FieldInputCommitment)
	}
	if m.FieldCleared(integritycheckpoint.FieldChainHash) {
		fields = append(fields, integritycheckpoint.FieldChainHash)
	}
	if m.FieldCleared(integritycheckpoint.FieldPrevChainHash) {
		fields = append(fields, integritycheckpoint.FieldPrevChainHash)
	}
	if m.FieldCleared(integritycheckpoint.FieldMerkleLeafIndex) {
		fields = append(fields, integritycheckpoint.FieldMerkleLeafIndex)
	}
	if m.FieldCleared(integritycheckpoint.FieldCertificateID) {
		fields = append(fields, integritycheckpoint.FieldCertificateID)
	}
	if m.FieldCleared(integritycheckpoint.FieldSignature) {
		fields = append(fields, integritycheckpoint.FieldSignature)
	}
	if m.FieldCleared(integritycheckpoint.FieldSigningKeyID) {
		fields = append(fields, integritycheckpoint.FieldSigningKeyID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IntegrityCheckpointMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IntegrityCheckpointMutation) ClearField(name string) error {
	switch name {
	case integritycheckpoint.FieldCardID:
		m.ClearCardID()
		return nil
	case integritycheckpoint.FieldModel:
		m.ClearModel()
		return nil
	case integritycheckpoint.FieldThinkingBlockHash:
		m.ClearThinkingBlockHash()
		return nil
	case integritycheckpoint.FieldConcerns:
		m.ClearConcerns()
		return nil
	case integritycheckpoint.FieldReasoningSummary:
		m.ClearReasoningSummary()
		return nil
	case integritycheckpoint.FieldConscienceContext:
		m.ClearConscienceContext()
		return nil
	case integritycheckpoint.FieldWindowPosition:
		m.ClearWindowPosition()
		return nil
	case integritycheckpoint.FieldAnalysisMetadata:
		m.ClearAnalysisMetadata()
		return nil
	case integritycheckpoint.FieldLinkedTraceID:
		m.ClearLinkedTraceID()
		return nil
	case integritycheckpoint.FieldInputCommitment:
		m.ClearInputCommitment()
		return nil
	case integritycheckpoint.FieldChainHash:
		m.ClearChainHash()
		return nil
	case integritycheckpoint.FieldPrevChainHash:
		m.ClearPrevChainHash()
		return nil
	case integritycheckpoint.FieldMerkleLeafIndex:
		m.ClearMerkleLeafIndex()
		return nil
	case integritycheckpoint.FieldCertificateID:
		m.ClearCertificateID()
		return nil
	case integritycheckpoint.FieldSignature:
		m.ClearSignature()
		return nil
	case integritycheckpoint.FieldSigningKeyID:
		m.ClearSigningKeyID()
		return nil
	}
	return fmt.Errorf("unknown IntegrityCheckpoint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IntegrityCheckpointMutation) ResetField(name string) error {
	switch name {
	case integritycheckpoint.FieldAgentID:
		m.ResetAgentID()
		return nil
	case integritycheckpoint.FieldCardID:
		m.ResetCardID()
		return nil
	case integritycheckpoint.FieldSessionID:
		m.ResetSessionID()
		return nil
	case integritycheckpoint.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case integritycheckpoint.FieldProvider:
		m.ResetProvider()
		return nil
	case integritycheckpoint.FieldModel:
		m.ResetModel()
		return nil
	case integritycheckpoint.FieldThinkingBlockHash:
		m.ResetThinkingBlockHash()
		return nil
	case integritycheckpoint.FieldVerdict:
		m.ResetVerdict()
		return nil
	case integritycheckpoint.FieldConcerns:
		m.ResetConcerns()
		return nil
	case integritycheckpoint.FieldReasoningSummary:
		m.ResetReasoningSummary()
		return nil
	case integritycheckpoint.FieldConscienceContext:
		m.ResetConscienceContext()
		return nil
	case integritycheckpoint.FieldWindowPosition:
		m.ResetWindowPosition()
		return nil
	case integritycheckpoint.FieldAnalysisMetadata:
		m.ResetAnalysisMetadata()
		return nil
	case integritycheckpoint.FieldLinkedTraceID:
		m.ResetLinkedTraceID()
		return nil
	case integritycheckpoint.FieldSource:
		m.ResetSource()
		return nil
	case integritycheckpoint.FieldSynthetic:
		m.ResetSynthetic()
		return nil
	case integritycheckpoint.FieldInputCommitment:
		m.ResetInputCommitment()
		return nil
	case integritycheckpoint.FieldChainHash:
		m.ResetChainHash()
		return nil
	case integritycheckpoint.FieldPrevChainHash:
		m.ResetPrevChainHash()
		return nil
	case integritycheckpoint.FieldMerkleLeafIndex:
		m.ResetMerkleLeafIndex()
		return nil
	case integritycheckpoint.FieldCertificateID:
		m.ResetCertificateID()
		return nil
	case integritycheckpoint.FieldSignature:
		m.ResetSignature()
		return nil
	case integritycheckpoint.FieldSigningKeyID:
		m.ResetSigningKeyID()
		return nil
	case integritycheckpoint.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown IntegrityCheckpoint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IntegrityCheckpointMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.agent != nil {
		edges = append(edges, integritycheckpoint.EdgeAgent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IntegrityCheckpointMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case integritycheckpoint.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IntegrityCheckpointMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IntegrityCheckpointMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IntegrityCheckpointMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedagent {
		edges = append(edges, integritycheckpoint.EdgeAgent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IntegrityCheckpointMutation) EdgeCleared(name string) bool {
	switch name {
	case integritycheckpoint.EdgeAgent:
		return m.clearedagent
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IntegrityCheckpointMutation) ClearEdge(name string) error {
	switch name {
	case integritycheckpoint.EdgeAgent:
		m.ClearAgent()
		return nil
	}
	return fmt.Errorf("unknown IntegrityCheckpoint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IntegrityCheckpointMutation) ResetEdge(name string) error {
	switch name {
	case integritycheckpoint.EdgeAgent:
		m.ResetAgent()
		return nil
	}
	return fmt.Errorf("unknown IntegrityCheckpoint edge %s", name)
}

// MerkleTreeMutation represents an operation that mutates the MerkleTree nodes in the graph.
type MerkleTreeMutation struct {
	config
	op            Op
	typ           string
	id            *string
	root          *string
	depth         *int
	adddepth      *int
	leaf_count    *int
	addleaf_count *int
	leaves        *[]string
	appendleaves  []string
	updated_at    *time.Time
	clearedFields map[string]struct{}
	agent         *string
	clearedagent  bool
	done          bool
	oldValue      func(context.Context) (*MerkleTree, error)
	predicates    []predicate.MerkleTree
}

var _ ent.Mutation = (*MerkleTreeMutation)(nil)

// merkletreeOption allows management of the mutation configuration using functional options.
type merkletreeOption func(*MerkleTreeMutation)

// newMerkleTreeMutation creates new mutation for the MerkleTree entity.
func newMerkleTreeMutation(c config, op Op, opts ...merkletreeOption) *MerkleTreeMutation {
	m := &MerkleTreeMutation{
		config:        c,
		op:            op,
		typ:           TypeMerkleTree,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMerkleTreeID sets the ID field of the mutation.
func withMerkleTreeID(id string) merkletreeOption {
	return func(m *MerkleTreeMutation) {
		var (
			err   error
			once  sync.Once
			value *MerkleTree
		)
		m.oldValue = func(ctx context.Context) (*MerkleTree, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MerkleTree.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMerkleTree sets the old MerkleTree of the mutation.
func withMerkleTree(node *MerkleTree) merkletreeOption {
	return func(m *MerkleTreeMutation) {
		m.oldValue = func(context.Context) (*MerkleTree, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MerkleTreeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MerkleTreeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MerkleTree entities.
func (m *MerkleTreeMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MerkleTreeMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MerkleTreeMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MerkleTree.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *MerkleTreeMutation) SetAgentID(s string) {
	m.agent = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *MerkleTreeMutation) AgentID() (r string, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the MerkleTree entity.
// If the MerkleTree object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MerkleTreeMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *MerkleTreeMutation) ResetAgentID() {
	m.agent = nil
}

// SetRoot sets the "root" field.
func (m *MerkleTreeMutation) SetRoot(s string) {
	m.root = &s
}

// Root returns the value of the "root" field in the mutation.
func (m *MerkleTreeMutation) Root() (r string, exists bool) {
	v := m.root
	if v == nil {
		return
	}
	return *v, true
}

// OldRoot returns the old "root" field's value of the MerkleTree entity.
// If the MerkleTree object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MerkleTreeMutation) OldRoot(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoot: %w", err)
	}
	return oldValue.Root, nil
}

// ResetRoot resets all changes to the "root" field.
func (m *MerkleTreeMutation) ResetRoot() {
	m.root = nil
}

// SetDepth sets the "depth" field.
func (m *MerkleTreeMutation) SetDepth(i int) {
	m.depth = &i
	m.adddepth = nil
}

// Depth returns the value of the "depth" field in the mutation.
func (m *MerkleTreeMutation) Depth() (r int, exists bool) {
	v := m.depth
	if v == nil {
		return
	}
	return *v, true
}

// OldDepth returns the old "depth" field's value of the MerkleTree entity.
// If the MerkleTree object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MerkleTreeMutation) OldDepth(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepth: %w", err)
	}
	return oldValue.Depth, nil
}

// AddDepth adds i to the "depth" field.
func (m *MerkleTreeMutation) AddDepth(i int) {
	if m.adddepth != nil {
		*m.adddepth += i
	} else {
		m.adddepth = &i
	}
}

// AddedDepth returns the value that was added to the "depth" field in this mutation.
func (m *MerkleTreeMutation) AddedDepth() (r int, exists bool) {
	v := m.adddepth
	if v == nil {
		return
	}
	return *v, true
}

// ResetDepth resets all changes to the "depth" field.
func (m *MerkleTreeMutation) ResetDepth() {
	m.depth = nil
	m.adddepth = nil
}

// SetLeafCount sets the "leaf_count" field.
func (m *MerkleTreeMutation) SetLeafCount(i int) {
	m.leaf_count = &i
	m.addleaf_count = nil
}

// LeafCount returns the value of the "leaf_count" field in the mutation.
func (m *MerkleTreeMutation) LeafCount() (r int, exists bool) {
	v := m.leaf_count
	if v == nil {
		return
	}
	return *v, true
}

// OldLeafCount returns the old "leaf_count" field's value of the MerkleTree entity.
// If the MerkleTree object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MerkleTreeMutation) OldLeafCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeafCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeafCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeafCount: %w", err)
	}
	return oldValue.LeafCount, nil
}

// AddLeafCount adds i to the "leaf_count" field.
func (m *MerkleTreeMutation) AddLeafCount(i int) {
	if m.addleaf_count != nil {
		*m.addleaf_count += i
	} else {
		m.addleaf_count = &i
	}
}

// AddedLeafCount returns the value that was added to the "leaf_count" field in this mutation.
func (m *MerkleTreeMutation) AddedLeafCount() (r int, exists bool) {
	v := m.addleaf_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetLeafCount resets all changes to the "leaf_count" field.
func (m *MerkleTreeMutation) ResetLeafCount() {
	m.leaf_count = nil
	m.addleaf_count = nil
}

// SetLeaves sets the "leaves" field.
func (m *MerkleTreeMutation) SetLeaves(s []string) {
	m.leaves = &s
	m.appendleaves = nil
}

// Leaves returns the value of the "leaves" field in the mutation.
func (m *MerkleTreeMutation) Leaves() (r []string, exists bool) {
	v := m.leaves
	if v == nil {
		return
	}
	return *v, true
}

// OldLeaves returns the old "leaves" field's value of the MerkleTree entity.
// If the MerkleTree object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MerkleTreeMutation) OldLeaves(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeaves is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeaves requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeaves: %w", err)
	}
	return oldValue.Leaves, nil
}

// AppendLeaves adds s to the "leaves" field.
func (m *MerkleTreeMutation) AppendLeaves(s []string) {
	m.appendleaves = append(m.appendleaves, s...)
}

// AppendedLeaves returns the list of values that were appended to the "leaves" field in this mutation.
func (m *MerkleTreeMutation) AppendedLeaves() ([]string, bool) {
	if len(m.appendleaves) == 0 {
		return nil, false
	}
	return m.appendleaves, true
}

// ResetLeaves resets all changes to the "leaves" field.
func (m *MerkleTreeMutation) ResetLeaves() {
	m.leaves = nil
	m.appendleaves = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MerkleTreeMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MerkleTreeMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the MerkleTree entity.
// If the MerkleTree object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MerkleTreeMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MerkleTreeMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (m *MerkleTreeMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[merkletree.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the Agent entity was cleared.
func (m *MerkleTreeMutation) AgentCleared() bool {
	return m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *MerkleTreeMutation) AgentIDs() (ids []string) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *MerkleTreeMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// Where appends a list predicates to the MerkleTreeMutation builder.
func (m *MerkleTreeMutation) Where(ps ...predicate.MerkleTree) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MerkleTreeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MerkleTreeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MerkleTree, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MerkleTreeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MerkleTreeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MerkleTree).
func (m *MerkleTreeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MerkleTreeMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.agent != nil {
		fields = append(fields, merkletree.FieldAgentID)
	}
	if m.root != nil {
		fields = append(fields, merkletree.FieldRoot)
	}
	if m.depth != nil {
		fields = append(fields, merkletree.FieldDepth)
	}
	if m.leaf_count != nil {
		fields = append(fields, merkletree.FieldLeafCount)
	}
	if m.leaves != nil {
		fields = append(fields, merkletree.FieldLeaves)
	}
	if m.updated_at != nil {
		fields = append(fields, merkletree.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MerkleTreeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case merkletree.FieldAgentID:
		return m.AgentID()
	case merkletree.FieldRoot:
		return m.Root()
	case merkletree.FieldDepth:
		return m.Depth()
	case merkletree.FieldLeafCount:
		return m.LeafCount()
	case merkletree.FieldLeaves:
		return m.Leaves()
	case merkletree.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MerkleTreeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case merkletree.FieldAgentID:
		return m.OldAgentID(ctx)
	case merkletree.FieldRoot:
		return m.OldRoot(ctx)
	case merkletree.FieldDepth:
		return m.OldDepth(ctx)
	case merkletree.FieldLeafCount:
		return m.OldLeafCount(ctx)
	case merkletree.FieldLeaves:
		return m.OldLeaves(ctx)
	case merkletree.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MerkleTree field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MerkleTreeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case merkletree.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case merkletree.FieldRoot:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoot(v)
		return nil
	case merkletree.FieldDepth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepth(v)
		return nil
	case merkletree.FieldLeafCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeafCount(v)
		return nil
	case merkletree.FieldLeaves:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeaves(v)
		return nil
	case merkletree.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MerkleTree field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MerkleTreeMutation) AddedFields() []string {
	var fields []string
	if m.adddepth != nil {
		fields = append(fields, merkletree.FieldDepth)
	}
	if m.addleaf_count != nil {
		fields = append(fields, merkletree.FieldLeafCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MerkleTreeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case merkletree.FieldDepth:
		return m.AddedDepth()
	case merkletree.FieldLeafCount:
		return m.AddedLeafCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MerkleTreeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case merkletree.FieldDepth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDepth(v)
		return nil
	case merkletree.FieldLeafCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLeafCount(v)
		return nil
	}
	return fmt.Errorf("unknown MerkleTree numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MerkleTreeMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MerkleTreeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MerkleTreeMutation) ClearField(name string) error {
	return fmt.Errorf("unknown MerkleTree nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MerkleTreeMutation) ResetField(name string) error {
	switch name {
	case merkletree.FieldAgentID:
		m.ResetAgentID()
		return nil
	case merkletree.FieldRoot:
		m.ResetRoot()
		return nil
	case merkletree.FieldDepth:
		m.ResetDepth()
		return nil
	case merkletree.FieldLeafCount:
		m.ResetLeafCount()
		return nil
	case merkletree.FieldLeaves:
		m.ResetLeaves()
		return nil
	case merkletree.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown MerkleTree field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MerkleTreeMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.agent != nil {
		edges = append(edges, merkletree.EdgeAgent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MerkleTreeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case merkletree.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MerkleTreeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MerkleTreeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MerkleTreeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedagent {
		edges = append(edges, merkletree.EdgeAgent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MerkleTreeMutation) EdgeCleared(name string) bool {
	switch name {
	case merkletree.EdgeAgent:
		return m.clearedagent
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MerkleTreeMutation) ClearEdge(name string) error {
	switch name {
	case merkletree.EdgeAgent:
		m.ClearAgent()
		return nil
	}
	return fmt.Errorf("unknown MerkleTree unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MerkleTreeMutation) ResetEdge(name string) error {
	switch name {
	case merkletree.EdgeAgent:
		m.ResetAgent()
		return nil
	}
	return fmt.Errorf("unknown MerkleTree edge %s", name)
}

// NudgeMutation represents an operation that mutates the Nudge nodes in the graph.
type NudgeMutation struct {
	config
	op            Op
	typ           string
	id            *string
	checkpoint_id *string
	session_id    *string
	message       *string
	status        *nudge.Status
	created_at    *time.Time
	delivered_at  *time.Time
	clearedFields map[string]struct{}
	agent         *string
	clearedagent  bool
	done          bool
	oldValue      func(context.Context) (*Nudge, error)
	predicates    []predicate.Nudge
}

var _ ent.Mutation = (*NudgeMutation)(nil)

// nudgeOption allows management of the mutation configuration using functional options.
type nudgeOption func(*NudgeMutation)

// newNudgeMutation creates new mutation for the Nudge entity.
func newNudgeMutation(c config, op Op, opts ...nudgeOption) *NudgeMutation {
	m := &NudgeMutation{
		config:        c,
		op:            op,
		typ:           TypeNudge,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNudgeID sets the ID field of the mutation.
func withNudgeID(id string) nudgeOption {
	return func(m *NudgeMutation) {
		var (
			err   error
			once  sync.Once
			value *Nudge
		)
		m.oldValue = func(ctx context.Context) (*Nudge, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Nudge.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNudge sets the old Nudge of the mutation.
func withNudge(node *Nudge) nudgeOption {
	return func(m *NudgeMutation) {
		m.oldValue = func(context.Context) (*Nudge, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NudgeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NudgeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Nudge entities.
func (m *NudgeMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NudgeMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NudgeMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Nudge.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *NudgeMutation) SetAgentID(s string) {
	m.agent = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *NudgeMutation) AgentID() (r string, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the Nudge entity.
// If the Nudge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NudgeMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *NudgeMutation) ResetAgentID() {
	m.agent = nil
}

// SetCheckpointID sets the "checkpoint_id" field.
func (m *NudgeMutation) SetCheckpointID(s string) {
	m.checkpoint_id = &s
}

// CheckpointID returns the value of the "checkpoint_id" field in the mutation.
func (m *NudgeMutation) CheckpointID() (r string, exists bool) {
	v := m.checkpoint_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCheckpointID returns the old "checkpoint_id" field's value of the Nudge entity.
// If the Nudge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NudgeMutation) OldCheckpointID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheckpointID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheckpointID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheckpointID: %w", err)
	}
	return oldValue.CheckpointID, nil
}

// ClearCheckpointID clears the value of the "checkpoint_id" field.
func (m *NudgeMutation) ClearCheckpointID() {
	m.checkpoint_id = nil
	m.clearedFields[nudge.FieldCheckpointID] = struct{}{}
}

// CheckpointIDCleared returns if the "checkpoint_id" field was cleared in this mutation.
func (m *NudgeMutation) CheckpointIDCleared() bool {
	_, ok := m.clearedFields[nudge.FieldCheckpointID]
	return ok
}

// ResetCheckpointID resets all changes to the "checkpoint_id" field.
func (m *NudgeMutation) ResetCheckpointID() {
	m.checkpoint_id = nil
	delete(m.clearedFields, nudge.FieldCheckpointID)
}

// SetSessionID sets the "session_id" field.
func (m *NudgeMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *NudgeMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Nudge entity.
// If the Nudge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NudgeMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *NudgeMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[nudge.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *NudgeMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[nudge.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *NudgeMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, nudge.FieldSessionID)
}

// SetMessage sets the "message" field.
func (m *NudgeMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *NudgeMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the Nudge entity.
// If the Nudge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NudgeMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *NudgeMutation) ResetMessage() {
	m.message = nil
}

// SetStatus sets the "status" field.
func (m *NudgeMutation) SetStatus(n nudge.Status) {
	m.status = &n
}

// Status returns the value of the "status" field in the mutation.
func (m *NudgeMutation) Status() (r nudge.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Nudge entity.
// If the Nudge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NudgeMutation) OldStatus(ctx context.Context) (v nudge.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *NudgeMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *NudgeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NudgeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Nudge entity.
// If the Nudge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NudgeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NudgeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetDeliveredAt sets the "delivered_at" field.
func (m *NudgeMutation) SetDeliveredAt(t time.Time) {
	m.delivered_at = &t
}

// DeliveredAt returns the value of the "delivered_at" field in the mutation.
func (m *NudgeMutation) DeliveredAt() (r time.Time, exists bool) {
	v := m.delivered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveredAt returns the old "delivered_at" field's value of the Nudge entity.
// If the Nudge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NudgeMutation) OldDeliveredAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveredAt: %w", err)
	}
	return oldValue.DeliveredAt, nil
}

// ClearDeliveredAt clears the value of the "delivered_at" field.
func (m *NudgeMutation) ClearDeliveredAt() {
	m.delivered_at = nil
	m.clearedFields[nudge.FieldDeliveredAt] = struct{}{}
}

// DeliveredAtCleared returns if the "delivered_at" field was cleared in this mutation.
func (m *NudgeMutation) DeliveredAtCleared() bool {
	_, ok := m.clearedFields[nudge.FieldDeliveredAt]
	return ok
}

// ResetDeliveredAt resets all changes to the "delivered_at" field.
func (m *NudgeMutation) ResetDeliveredAt() {
	m.delivered_at = nil
	delete(m.clearedFields, nudge.FieldDeliveredAt)
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (m *NudgeMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[nudge.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the Agent entity was cleared.
func (m *NudgeMutation) AgentCleared() bool {
	return m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *NudgeMutation) AgentIDs() (ids []string) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *NudgeMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// Where appends a list predicates to the NudgeMutation builder.
func (m *NudgeMutation) Where(ps ...predicate.Nudge) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NudgeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NudgeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Nudge, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NudgeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NudgeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Nudge).
func (m *NudgeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NudgeMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.agent != nil {
		fields = append(fields, nudge.FieldAgentID)
	}
	if m.checkpoint_id != nil {
		fields = append(fields, nudge.FieldCheckpointID)
	}
	if m.session_id != nil {
		fields = append(fields, nudge.FieldSessionID)
	}
	if m.message != nil {
		fields = append(fields, nudge.FieldMessage)
	}
	if m.status != nil {
		fields = append(fields, nudge.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, nudge.FieldCreatedAt)
	}
	if m.delivered_at != nil {
		fields = append(fields, nudge.FieldDeliveredAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NudgeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case nudge.FieldAgentID:
		return m.AgentID()
	case nudge.FieldCheckpointID:
		return m.CheckpointID()
	case nudge.FieldSessionID:
		return m.SessionID()
	case nudge.FieldMessage:
		return m.Message()
	case nudge.FieldStatus:
		return m.Status()
	case nudge.FieldCreatedAt:
		return m.CreatedAt()
	case nudge.FieldDeliveredAt:
		return m.DeliveredAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NudgeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case nudge.FieldAgentID:
		return m.OldAgentID(ctx)
	case nudge.FieldCheckpointID:
		return m.OldCheckpointID(ctx)
	case nudge.FieldSessionID:
		return m.OldSessionID(ctx)
	case nudge.FieldMessage:
		return m.OldMessage(ctx)
	case nudge.FieldStatus:
		return m.OldStatus(ctx)
	case nudge.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case nudge.FieldDeliveredAt:
		return m.OldDeliveredAt(ctx)
	}
	return nil, fmt.Errorf("unknown Nudge field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NudgeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case nudge.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case nudge.FieldCheckpointID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheckpointID(v)
		return nil
	case nudge.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case nudge.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case nudge.FieldStatus:
		v, ok := value.(nudge.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case nudge.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case nudge.FieldDeliveredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveredAt(v)
		return nil
	}
	return fmt.Errorf("unknown Nudge field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NudgeMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NudgeMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NudgeMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Nudge numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NudgeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(nudge.FieldCheckpointID) {
		fields = append(fields, nudge.FieldCheckpointID)
	}
	if m.FieldCleared(nudge.FieldSessionID) {
		fields = append(fields, nudge.FieldSessionID)
	}
	if m.FieldCleared(nudge.FieldDeliveredAt) {
		fields = append(fields, nudge.FieldDeliveredAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NudgeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NudgeMutation) ClearField(name string) error {
	switch name {
	case nudge.FieldCheckpointID:
		m.ClearCheckpointID()
		return nil
	case nudge.FieldSessionID:
		m.ClearSessionID()
		return nil
	case nudge.FieldDeliveredAt:
		m.ClearDeliveredAt()
		return nil
	}
	return fmt.Errorf("unknown Nudge nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NudgeMutation) ResetField(name string) error {
	switch name {
	case nudge.FieldAgentID:
		m.ResetAgentID()
		return nil
	case nudge.FieldCheckpointID:
		m.ResetCheckpointID()
		return nil
	case nudge.FieldSessionID:
		m.ResetSessionID()
		return nil
	case nudge.FieldMessage:
		m.ResetMessage()
		return nil
	case nudge.FieldStatus:
		m.ResetStatus()
		return nil
	case nudge.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case nudge.FieldDeliveredAt:
		m.ResetDeliveredAt()
		return nil
	}
	return fmt.Errorf("unknown Nudge field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NudgeMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.agent != nil {
		edges = append(edges, nudge.EdgeAgent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NudgeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case nudge.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NudgeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NudgeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NudgeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedagent {
		edges = append(edges, nudge.EdgeAgent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NudgeMutation) EdgeCleared(name string) bool {
	switch name {
	case nudge.EdgeAgent:
		return m.clearedagent
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NudgeMutation) ClearEdge(name string) error {
	switch name {
	case nudge.EdgeAgent:
		m.ClearAgent()
		return nil
	}
	return fmt.Errorf("unknown Nudge unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NudgeMutation) ResetEdge(name string) error {
	switch name {
	case nudge.EdgeAgent:
		m.ResetAgent()
		return nil
	}
	return fmt.Errorf("unknown Nudge edge %s", name)
}

// WebhookDeliveryMutation represents an operation that mutates the WebhookDelivery nodes in the graph.
type WebhookDeliveryMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	status              *webhookdelivery.Status
	attempt_count       *int
	addattempt_count    *int
	max_attempts        *int
	addmax_attempts     *int
	next_attempt_at     *time.Time
	last_attempt_at     *time.Time
	last_status_code    *int
	addlast_status_code *int
	last_response_body  *string
	latency_ms          *int
	addlatency_ms       *int
	last_error          *string
	delivered_at        *time.Time
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	event               *string
	clearedevent        bool
	endpoint            *string
	clearedendpoint     bool
	done                bool
	oldValue            func(context.Context) (*WebhookDelivery, error)
	predicates          []predicate.WebhookDelivery
}

var _ ent.Mutation = (*WebhookDeliveryMutation)(nil)

// webhookdeliveryOption allows management of the mutation configuration using functional options.
type webhookdeliveryOption func(*WebhookDeliveryMutation)

// newWebhookDeliveryMutation creates new mutation for the WebhookDelivery entity.
func newWebhookDeliveryMutation(c config, op Op, opts ...webhookdeliveryOption) *WebhookDeliveryMutation {
	m := &WebhookDeliveryMutation{
		config:        c,
		op:            op,
		typ:           TypeWebhookDelivery,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWebhookDeliveryID sets the ID field of the mutation.
func withWebhookDeliveryID(id string) webhookdeliveryOption {
	return func(m *WebhookDeliveryMutation) {
		var (
			err   error
			once  sync.Once
			value *WebhookDelivery
		)
		m.oldValue = func(ctx context.Context) (*WebhookDelivery, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WebhookDelivery.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWebhookDelivery sets the old WebhookDelivery of the mutation.
func withWebhookDelivery(node *WebhookDelivery) webhookdeliveryOption {
	return func(m *WebhookDeliveryMutation) {
		m.oldValue = func(context.Context) (*WebhookDelivery, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WebhookDeliveryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WebhookDeliveryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WebhookDelivery entities.
func (m *WebhookDeliveryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WebhookDeliveryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WebhookDeliveryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WebhookDelivery.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventID sets the "event_id" field.
func (m *WebhookDeliveryMutation) SetEventID(s string) {
	m.event = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *WebhookDeliveryMutation) EventID() (r string, exists bool) {
	v := m.event
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *WebhookDeliveryMutation) ResetEventID() {
	m.event = nil
}

// SetEndpointID sets the "endpoint_id" field.
func (m *WebhookDeliveryMutation) SetEndpointID(s string) {
	m.endpoint = &s
}

// EndpointID returns the value of the "endpoint_id" field in the mutation.
func (m *WebhookDeliveryMutation) EndpointID() (r string, exists bool) {
	v := m.endpoint
	if v == nil {
		return
	}
	return *v, true
}

// OldEndpointID returns the old "endpoint_id" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldEndpointID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndpointID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndpointID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndpointID: %w", err)
	}
	return oldValue.EndpointID, nil
}

// ResetEndpointID resets all changes to the "endpoint_id" field.
func (m *WebhookDeliveryMutation) ResetEndpointID() {
	m.endpoint = nil
}

// SetStatus sets the "status" field.
func (m *WebhookDeliveryMutation) SetStatus(w webhookdelivery.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WebhookDeliveryMutation) Status() (r webhookdelivery.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldStatus(ctx context.Context) (v webhookdelivery.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WebhookDeliveryMutation) ResetStatus() {
	m.status = nil
}

// SetAttemptCount sets the "attempt_count" field.
func (m *WebhookDeliveryMutation) SetAttemptCount(i int) {
	m.attempt_count = &i
	m.addattempt_count = nil
}

// AttemptCount returns the value of the "attempt_count" field in the mutation.
func (m *WebhookDeliveryMutation) AttemptCount() (r int, exists bool) {
	v := m.attempt_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptCount returns the old "attempt_count" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldAttemptCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptCount: %w", err)
	}
	return oldValue.AttemptCount, nil
}

// AddAttemptCount adds i to the "attempt_count" field.
func (m *WebhookDeliveryMutation) AddAttemptCount(i int) {
	if m.addattempt_count != nil {
		*m.addattempt_count += i
	} else {
		m.addattempt_count = &i
	}
}

// AddedAttemptCount returns the value that was added to the "attempt_count" field in this mutation.
func (m *WebhookDeliveryMutation) AddedAttemptCount() (r int, exists bool) {
	v := m.addattempt_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptCount resets all changes to the "attempt_count" field.
func (m *WebhookDeliveryMutation) ResetAttemptCount() {
	m.attempt_count = nil
	m.addattempt_count = nil
}

// SetMaxAttempts sets the "max_attempts" field.
func (m *WebhookDeliveryMutation) SetMaxAttempts(i int) {
	m.max_attempts = &i
	m.addmax_attempts = nil
}

// MaxAttempts returns the value of the "max_attempts" field in the mutation.
func (m *WebhookDeliveryMutation) MaxAttempts() (r int, exists bool) {
	v := m.max_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxAttempts returns the old "max_attempts" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldMaxAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxAttempts: %w", err)
	}
	return oldValue.MaxAttempts, nil
}

// AddMaxAttempts adds i to the "max_attempts" field.
func (m *WebhookDeliveryMutation) AddMaxAttempts(i int) {
	if m.addmax_attempts != nil {
		*m.addmax_attempts += i
	} else {
		m.addmax_attempts = &i
	}
}

// AddedMaxAttempts returns the value that was added to the "max_attempts" field in this mutation.
func (m *WebhookDeliveryMutation) AddedMaxAttempts() (r int, exists bool) {
	v := m.addmax_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxAttempts resets all changes to the "max_attempts" field.
func (m *WebhookDeliveryMutation) ResetMaxAttempts() {
	m.max_attempts = nil
	m.addmax_attempts = nil
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (m *WebhookDeliveryMutation) SetNextAttemptAt(t time.Time) {
	m.next_attempt_at = &t
}

// NextAttemptAt returns the value of the "next_attempt_at" field in the mutation.
func (m *WebhookDeliveryMutation) NextAttemptAt() (r time.Time, exists bool) {
	v := m.next_attempt_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextAttemptAt returns the old "next_attempt_at" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldNextAttemptAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextAttemptAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextAttemptAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextAttemptAt: %w", err)
	}
	return oldValue.NextAttemptAt, nil
}

// ClearNextAttemptAt clears the value of the "next_attempt_at" field.
func (m *WebhookDeliveryMutation) ClearNextAttemptAt() {
	m.next_attempt_at = nil
	m.clearedFields[webhookdelivery.FieldNextAttemptAt] = struct{}{}
}

// NextAttemptAtCleared returns if the "next_attempt_at" field was cleared in this mutation.
func (m *WebhookDeliveryMutation) NextAttemptAtCleared() bool {
	_, ok := m.clearedFields[webhookdelivery.FieldNextAttemptAt]
	return ok
}

// ResetNextAttemptAt resets all changes to the "next_attempt_at" field.
func (m *WebhookDeliveryMutation) ResetNextAttemptAt() {
	m.next_attempt_at = nil
	delete(m.clearedFields, webhookdelivery.FieldNextAttemptAt)
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (m *WebhookDeliveryMutation) SetLastAttemptAt(t time.Time) {
	m.last_attempt_at = &t
}

// LastAttemptAt returns the value of the "last_attempt_at" field in the mutation.
func (m *WebhookDeliveryMutation) LastAttemptAt() (r time.Time, exists bool) {
	v := m.last_attempt_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAttemptAt returns the old "last_attempt_at" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldLastAttemptAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAttemptAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAttemptAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAttemptAt: %w", err)
	}
	return oldValue.LastAttemptAt, nil
}

// ClearLastAttemptAt clears the value of the "last_attempt_at" field.
func (m *WebhookDeliveryMutation) ClearLastAttemptAt() {
	m.last_attempt_at = nil
	m.clearedFields[webhookdelivery.FieldLastAttemptAt] = struct{}{}
}

// LastAttemptAtCleared returns if the "last_attempt_at" field was cleared in this mutation.
func (m *WebhookDeliveryMutation) LastAttemptAtCleared() bool {
	_, ok := m.clearedFields[webhookdelivery.FieldLastAttemptAt]
	return ok
}

// ResetLastAttemptAt resets all changes to the "last_attempt_at" field.
func (m *WebhookDeliveryMutation) ResetLastAttemptAt() {
	m.last_attempt_at = nil
	delete(m.clearedFields, webhookdelivery.FieldLastAttemptAt)
}

// SetLastStatusCode sets the "last_status_code" field.
func (m *WebhookDeliveryMutation) SetLastStatusCode(i int) {
	m.last_status_code = &i
	m.addlast_status_code = nil
}

// LastStatusCode returns the value of the "last_status_code" field in the mutation.
func (m *WebhookDeliveryMutation) LastStatusCode() (r int, exists bool) {
	v := m.last_status_code
	if v == nil {
		return
	}
	return *v, true
}

// OldLastStatusCode returns the old "last_status_code" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldLastStatusCode(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastStatusCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastStatusCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastStatusCode: %w", err)
	}
	return oldValue.LastStatusCode, nil
}

// AddLastStatusCode adds i to the "last_status_code" field.
func (m *WebhookDeliveryMutation) AddLastStatusCode(i int) {
	if m.addlast_status_code != nil {
		*m.addlast_status_code += i
	} else {
		m.addlast_status_code = &i
	}
}

// AddedLastStatusCode returns the value that was added to the "last_status_code" field in this mutation.
func (m *WebhookDeliveryMutation) AddedLastStatusCode() (r int, exists bool) {
	v := m.addlast_status_code
	if v == nil {
		return
	}
	return *v, true
}

// ClearLastStatusCode clears the value of the "last_status_code" field.
func (m *WebhookDeliveryMutation) ClearLastStatusCode() {
	m.last_status_code = nil
	m.addlast_status_code = nil
	m.clearedFields[webhookdelivery.FieldLastStatusCode] = struct{}{}
}

// LastStatusCodeCleared returns if the "last_status_code" field was cleared in this mutation.
func (m *WebhookDeliveryMutation) LastStatusCodeCleared() bool {
	_, ok := m.clearedFields[webhookdelivery.FieldLastStatusCode]
	return ok
}

// ResetLastStatusCode resets all changes to the "last_status_code" field.
func (m *WebhookDeliveryMutation) ResetLastStatusCode() {
	m.last_status_code = nil
	m.addlast_status_code = nil
	delete(m.clearedFields, webhookdelivery.FieldLastStatusCode)
}

// SetLastResponseBody sets the "last_response_body" field.
func (m *WebhookDeliveryMutation) SetLastResponseBody(s string) {
	m.last_response_body = &s
}

// LastResponseBody returns the value of the "last_response_body" field in the mutation.
func (m *WebhookDeliveryMutation) LastResponseBody() (r string, exists bool) {
	v := m.last_response_body
	if v == nil {
		return
	}
	return *v, true
}

// OldLastResponseBody returns the old "last_response_body" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldLastResponseBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastResponseBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastResponseBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastResponseBody: %w", err)
	}
	return oldValue.LastResponseBody, nil
}

// ClearLastResponseBody clears the value of the "last_response_body" field.
func (m *WebhookDeliveryMutation) ClearLastResponseBody() {
	m.last_response_body = nil
	m.clearedFields[webhookdelivery.FieldLastResponseBody] = struct{}{}
}

// LastResponseBodyCleared returns if the "last_response_body" field was cleared in this mutation.
func (m *WebhookDeliveryMutation) LastResponseBodyCleared() bool {
	_, ok := m.clearedFields[webhookdelivery.FieldLastResponseBody]
	return ok
}

// ResetLastResponseBody resets all changes to the "last_response_body" field.
func (m *WebhookDeliveryMutation) ResetLastResponseBody() {
	m.last_response_body = nil
	delete(m.clearedFields, webhookdelivery.FieldLastResponseBody)
}

// SetLatencyMs sets the "latency_ms" field.
func (m *WebhookDeliveryMutation) SetLatencyMs(i int) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *WebhookDeliveryMutation) LatencyMs() (r int, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldLatencyMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *WebhookDeliveryMutation) AddLatencyMs(i int) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *WebhookDeliveryMutation) AddedLatencyMs() (r int, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearLatencyMs clears the value of the "latency_ms" field.
func (m *WebhookDeliveryMutation) ClearLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
	m.clearedFields[webhookdelivery.FieldLatencyMs] = struct{}{}
}

// LatencyMsCleared returns if the "latency_ms" field was cleared in this mutation.
func (m *WebhookDeliveryMutation) LatencyMsCleared() bool {
	_, ok := m.clearedFields[webhookdelivery.FieldLatencyMs]
	return ok
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *WebhookDeliveryMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
	delete(m.clearedFields, webhookdelivery.FieldLatencyMs)
}

// SetLastError sets the "last_error" field.
func (m *WebhookDeliveryMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *WebhookDeliveryMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldLastError(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *WebhookDeliveryMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[webhookdelivery.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *WebhookDeliveryMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[webhookdelivery.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *WebhookDeliveryMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, webhookdelivery.FieldLastError)
}

// SetDeliveredAt sets the "delivered_at" field.
func (m *WebhookDeliveryMutation) SetDeliveredAt(t time.Time) {
	m.delivered_at = &t
}

// DeliveredAt returns the value of the "delivered_at" field in the mutation.
func (m *WebhookDeliveryMutation) DeliveredAt() (r time.Time, exists bool) {
	v := m.delivered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveredAt returns the old "delivered_at" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldDeliveredAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveredAt: %w", err)
	}
	return oldValue.DeliveredAt, nil
}

// ClearDeliveredAt clears the value of the "delivered_at" field.
func (m *WebhookDeliveryMutation) ClearDeliveredAt() {
	m.delivered_at = nil
	m.clearedFields[webhookdelivery.FieldDeliveredAt] = struct{}{}
}

// DeliveredAtCleared returns if the "delivered_at" field was cleared in this mutation.
func (m *WebhookDeliveryMutation) DeliveredAtCleared() bool {
	_, ok := m.clearedFields[webhookdelivery.FieldDeliveredAt]
	return ok
}

// ResetDeliveredAt resets all changes to the "delivered_at" field.
func (m *WebhookDeliveryMutation) ResetDeliveredAt() {
	m.delivered_at = nil
	delete(m.clearedFields, webhookdelivery.FieldDeliveredAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *WebhookDeliveryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WebhookDeliveryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WebhookDeliveryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WebhookDeliveryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WebhookDeliveryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WebhookDeliveryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearEvent clears the "event" edge to the WebhookEvent entity.
func (m *WebhookDeliveryMutation) ClearEvent() {
	m.clearedevent = true
	m.clearedFields[webhookdelivery.FieldEventID] = struct{}{}
}

// EventCleared reports if the "event" edge to the WebhookEvent entity was cleared.
func (m *WebhookDeliveryMutation) EventCleared() bool {
	return m.clearedevent
}

// EventIDs returns the "event" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EventID instead. It exists only for internal usage by the builders.
func (m *WebhookDeliveryMutation) EventIDs() (ids []string) {
	if id := m.event; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEvent resets all changes to the "event" edge.
func (m *WebhookDeliveryMutation) ResetEvent() {
	m.event = nil
	m.clearedevent = false
}

// ClearEndpoint clears the "endpoint" edge to the WebhookEndpoint entity.
func (m *WebhookDeliveryMutation) ClearEndpoint() {
	m.clearedendpoint = true
	m.clearedFields[webhookdelivery.FieldEndpointID] = struct{}{}
}

// EndpointCleared reports if the "endpoint" edge to the WebhookEndpoint entity was cleared.
func (m *WebhookDeliveryMutation) EndpointCleared() bool {
	return m.clearedendpoint
}

// EndpointIDs returns the "endpoint" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EndpointID instead. It exists only for internal usage by the builders.
func (m *WebhookDeliveryMutation) EndpointIDs() (ids []string) {
	if id := m.endpoint; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEndpoint resets all changes to the "endpoint" edge.
func (m *WebhookDeliveryMutation) ResetEndpoint() {
	m.endpoint = nil
	m.clearedendpoint = false
}

// Where appends a list predicates to the WebhookDeliveryMutation builder.
func (m *WebhookDeliveryMutation) Where(ps ...predicate.WebhookDelivery) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WebhookDeliveryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WebhookDeliveryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WebhookDelivery, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WebhookDeliveryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WebhookDeliveryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WebhookDelivery).
func (m *WebhookDeliveryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WebhookDeliveryMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.event != nil {
		fields = append(fields, webhookdelivery.FieldEventID)
	}
	if m.endpoint != nil {
		fields = append(fields, webhookdelivery.FieldEndpointID)
	}
	if m.status != nil {
		fields = append(fields, webhookdelivery.FieldStatus)
	}
	if m.attempt_count != nil {
		fields = append(fields, webhookdelivery.FieldAttemptCount)
	}
	if m.max_attempts != nil {
		fields = append(fields, webhookdelivery.FieldMaxAttempts)
	}
	if m.next_attempt_at != nil {
		fields = append(fields, webhookdelivery.FieldNextAttemptAt)
	}
	if m.last_attempt_at != nil {
		fields = append(fields, webhookdelivery.FieldLastAttemptAt)
	}
	if m.last_status_code != nil {
		fields = append(fields, webhookdelivery.FieldLastStatusCode)
	}
	if m.last_response_body != nil {
		fields = append(fields, webhookdelivery.FieldLastResponseBody)
	}
	if m.latency_ms != nil {
		fields = append(fields, webhookdelivery.FieldLatencyMs)
	}
	if m.last_error != nil {
		fields = append(fields, webhookdelivery.FieldLastError)
	}
	if m.delivered_at != nil {
		fields = append(fields, webhookdelivery.FieldDeliveredAt)
	}
	if m.created_at != nil {
		fields = append(fields, webhookdelivery.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, webhookdelivery.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WebhookDeliveryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case webhookdelivery.FieldEventID:
		return m.EventID()
	case webhookdelivery.FieldEndpointID:
		return m.EndpointID()
	case webhookdelivery.FieldStatus:
		return m.Status()
	case webhookdelivery.FieldAttemptCount:
		return m.AttemptCount()
	case webhookdelivery.FieldMaxAttempts:
		return m.MaxAttempts()
	case webhookdelivery.FieldNextAttemptAt:
		return m.NextAttemptAt()
	case webhookdelivery.FieldLastAttemptAt:
		return m.LastAttemptAt()
	case webhookdelivery.FieldLastStatusCode:
		return m.LastStatusCode()
	case webhookdelivery.FieldLastResponseBody:
		return m.LastResponseBody()
	case webhookdelivery.FieldLatencyMs:
		return m.LatencyMs()
	case webhookdelivery.FieldLastError:
		return m.LastError()
	case webhookdelivery.FieldDeliveredAt:
		return m.DeliveredAt()
	case webhookdelivery.FieldCreatedAt:
		return m.CreatedAt()
	case webhookdelivery.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WebhookDeliveryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case webhookdelivery.FieldEventID:
		return m.OldEventID(ctx)
	case webhookdelivery.FieldEndpointID:
		return m.OldEndpointID(ctx)
	case webhookdelivery.FieldStatus:
		return m.OldStatus(ctx)
	case webhookdelivery.FieldAttemptCount:
		return m.OldAttemptCount(ctx)
	case webhookdelivery.FieldMaxAttempts:
		return m.OldMaxAttempts(ctx)
	case webhookdelivery.FieldNextAttemptAt:
		return m.OldNextAttemptAt(ctx)
	case webhookdelivery.FieldLastAttemptAt:
		return m.OldLastAttemptAt(ctx)
	case webhookdelivery.FieldLastStatusCode:
		return m.OldLastStatusCode(ctx)
	case webhookdelivery.FieldLastResponseBody:
		return m.OldLastResponseBody(ctx)
	case webhookdelivery.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case webhookdelivery.FieldLastError:
		return m.OldLastError(ctx)
	case webhookdelivery.FieldDeliveredAt:
		return m.OldDeliveredAt(ctx)
	case webhookdelivery.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case webhookdelivery.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WebhookDelivery field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookDeliveryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case webhookdelivery.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case webhookdelivery.FieldEndpointID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndpointID(v)
		return nil
	case webhookdelivery.FieldStatus:
		v, ok := value.(webhookdelivery.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case webhookdelivery.FieldAttemptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptCount(v)
		return nil
	case webhookdelivery.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxAttempts(v)
		return nil
	case webhookdelivery.FieldNextAttemptAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextAttemptAt(v)
		return nil
	case webhookdelivery.FieldLastAttemptAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAttemptAt(v)
		return nil
	case webhookdelivery.FieldLastStatusCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastStatusCode(v)
		return nil
	case webhookdelivery.FieldLastResponseBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastResponseBody(v)
		return nil
	case webhookdelivery.FieldLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case webhookdelivery.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case webhookdelivery.FieldDeliveredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveredAt(v)
		return nil
	case webhookdelivery.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case webhookdelivery.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WebhookDelivery field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WebhookDeliveryMutation) AddedFields() []string {
	var fields []string
	if m.addattempt_count != nil {
		fields = append(fields, webhookdelivery.FieldAttemptCount)
	}
	if m.addmax_attempts != nil {
		fields = append(fields, webhookdelivery.FieldMaxAttempts)
	}
	if m.addlast_status_code != nil {
		fields = append(fields, webhookdelivery.FieldLastStatusCode)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, webhookdelivery.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WebhookDeliveryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case webhookdelivery.FieldAttemptCount:
		return m.AddedAttemptCount()
	case webhookdelivery.FieldMaxAttempts:
		return m.AddedMaxAttempts()
	case webhookdelivery.FieldLastStatusCode:
		return m.AddedLastStatusCode()
	case webhookdelivery.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookDeliveryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case webhookdelivery.FieldAttemptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptCount(v)
		return nil
	case webhookdelivery.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxAttempts(v)
		return nil
	case webhookdelivery.FieldLastStatusCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastStatusCode(v)
		return nil
	case webhookdelivery.FieldLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown WebhookDelivery numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WebhookDeliveryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(webhookdelivery.FieldNextAttemptAt) {
		fields = append(fields, webhookdelivery.FieldNextAttemptAt)
	}
	if m.FieldCleared(webhookdelivery.FieldLastAttemptAt) {
		fields = append(fields, webhookdelivery.FieldLastAttemptAt)
	}
	if m.FieldCleared(webhookdelivery.FieldLastStatusCode) {
		fields = append(fields, webhookdelivery.FieldLastStatusCode)
	}
	if m.FieldCleared(webhookdelivery.FieldLastResponseBody) {
		fields = append(fields, webhookdelivery.FieldLastResponseBody)
	}
	if m.FieldCleared(webhookdelivery.FieldLatencyMs) {
		fields = append(fields, webhookdelivery.FieldLatencyMs)
	}
	if m.FieldCleared(webhookdelivery.FieldLastError) {
		fields = append(fields, webhookdelivery.FieldLastError)
	}
	if m.FieldCleared(webhookdelivery.FieldDeliveredAt) {
		fields = append(fields, webhookdelivery.FieldDeliveredAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WebhookDeliveryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WebhookDeliveryMutation) ClearField(name string) error {
	switch name {
	case webhookdelivery.FieldNextAttemptAt:
		m.ClearNextAttemptAt()
		return nil
	case webhookdelivery.FieldLastAttemptAt:
		m.ClearLastAttemptAt()
		return nil
	case webhookdelivery.FieldLastStatusCode:
		m.ClearLastStatusCode()
		return nil
	case webhookdelivery.FieldLastResponseBody:
		m.ClearLastResponseBody()
		return nil
	case webhookdelivery.FieldLatencyMs:
		m.ClearLatencyMs()
		return nil
	case webhookdelivery.FieldLastError:
		m.ClearLastError()
		return nil
	case webhookdelivery.FieldDeliveredAt:
		m.ClearDeliveredAt()
		return nil
	}
	return fmt.Errorf("unknown WebhookDelivery nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WebhookDeliveryMutation) ResetField(name string) error {
	switch name {
	case webhookdelivery.FieldEventID:
		m.ResetEventID()
		return nil
	case webhookdelivery.FieldEndpointID:
		m.ResetEndpointID()
		return nil
	case webhookdelivery.FieldStatus:
		m.ResetStatus()
		return nil
	case webhookdelivery.FieldAttemptCount:
		m.ResetAttemptCount()
		return nil
	case webhookdelivery.FieldMaxAttempts:
		m.ResetMaxAttempts()
		return nil
	case webhookdelivery.FieldNextAttemptAt:
		m.ResetNextAttemptAt()
		return nil
	case webhookdelivery.FieldLastAttemptAt:
		m.ResetLastAttemptAt()
		return nil
	case webhookdelivery.FieldLastStatusCode:
		m.ResetLastStatusCode()
		return nil
	case webhookdelivery.FieldLastResponseBody:
		m.ResetLastResponseBody()
		return nil
	case webhookdelivery.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case webhookdelivery.FieldLastError:
		m.ResetLastError()
		return nil
	case webhookdelivery.FieldDeliveredAt:
		m.ResetDeliveredAt()
		return nil
	case webhookdelivery.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case webhookdelivery.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown WebhookDelivery field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WebhookDeliveryMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.event != nil {
		edges = append(edges, webhookdelivery.EdgeEvent)
	}
	if m.endpoint != nil {
		edges = append(edges, webhookdelivery.EdgeEndpoint)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WebhookDeliveryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case webhookdelivery.EdgeEvent:
		if id := m.event; id != nil {
			return []ent.Value{*id}
		}
	case webhookdelivery.EdgeEndpoint:
		if id := m.endpoint; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WebhookDeliveryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WebhookDeliveryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WebhookDeliveryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedevent {
		edges = append(edges, webhookdelivery.EdgeEvent)
	}
	if m.clearedendpoint {
		edges = append(edges, webhookdelivery.EdgeEndpoint)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WebhookDeliveryMutation) EdgeCleared(name string) bool {
	switch name {
	case webhookdelivery.EdgeEvent:
		return m.clearedevent
	case webhookdelivery.EdgeEndpoint:
		return m.clearedendpoint
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WebhookDeliveryMutation) ClearEdge(name string) error {
	switch name {
	case webhookdelivery.EdgeEvent:
		m.ClearEvent()
		return nil
	case webhookdelivery.EdgeEndpoint:
		m.ClearEndpoint()
		return nil
	}
	return fmt.Errorf("unknown WebhookDelivery unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WebhookDeliveryMutation) ResetEdge(name string) error {
	switch name {
	case webhookdelivery.EdgeEvent:
		m.ResetEvent()
		return nil
	case webhookdelivery.EdgeEndpoint:
		m.ResetEndpoint()
		return nil
	}
	return fmt.Errorf("unknown WebhookDelivery edge %s", name)
}

// WebhookEndpointMutation represents an operation that mutates the WebhookEndpoint nodes in the graph.
type WebhookEndpointMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	account_id              *string
	url                     *string
	description             *string
	signing_secret          *string
	event_types             *[]string
	appendevent_types       []string
	is_active               *bool
	consecutive_failures    *int
	addconsecutive_failures *int
	disabled_at             *time.Time
	disabled_reason         *string
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	deliveries              map[string]struct{}
	removeddeliveries       map[string]struct{}
	cleareddeliveries       bool
	done                    bool
	oldValue                func(context.Context) (*WebhookEndpoint, error)
	predicates              []predicate.WebhookEndpoint
}

var _ ent.Mutation = (*WebhookEndpointMutation)(nil)

// webhookendpointOption allows management of the mutation configuration using functional options.
type webhookendpointOption func(*WebhookEndpointMutation)

// newWebhookEndpointMutation creates new mutation for the WebhookEndpoint entity.
func newWebhookEndpointMutation(c config, op Op, opts ...webhookendpointOption) *WebhookEndpointMutation {
	m := &WebhookEndpointMutation{
		config:        c,
		op:            op,
		typ:           TypeWebhookEndpoint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWebhookEndpointID sets the ID field of the mutation.
func withWebhookEndpointID(id string) webhookendpointOption {
	return func(m *WebhookEndpointMutation) {
		var (
			err   error
			once  sync.Once
			value *WebhookEndpoint
		)
		m.oldValue = func(ctx context.Context) (*WebhookEndpoint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WebhookEndpoint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWebhookEndpoint sets the old WebhookEndpoint of the mutation.
func withWebhookEndpoint(node *WebhookEndpoint) webhookendpointOption {
	return func(m *WebhookEndpointMutation) {
		m.oldValue = func(context.Context) (*WebhookEndpoint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WebhookEndpointMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WebhookEndpointMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WebhookEndpoint entities.
func (m *WebhookEndpointMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WebhookEndpointMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WebhookEndpointMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WebhookEndpoint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAccountID sets the "account_id" field.
func (m *WebhookEndpointMutation) SetAccountID(s string) {
	m.account_id = &s
}

// AccountID returns the value of the "account_id" field in the mutation.
func (m *WebhookEndpointMutation) AccountID() (r string, exists bool) {
	v := m.account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountID returns the old "account_id" field's value of the WebhookEndpoint entity.
// If the WebhookEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEndpointMutation) OldAccountID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountID: %w", err)
	}
	return oldValue.AccountID, nil
}

// ResetAccountID resets all changes to the "account_id" field.
func (m *WebhookEndpointMutation) ResetAccountID() {
	m.account_id = nil
}

// SetURL sets the "url" field.
func (m *WebhookEndpointMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *WebhookEndpointMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the WebhookEndpoint entity.
// If the WebhookEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEndpointMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *WebhookEndpointMutation) ResetURL() {
	m.url = nil
}

// SetDescription sets the "description" field.
func (m *WebhookEndpointMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *WebhookEndpointMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the WebhookEndpoint entity.
// If the WebhookEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEndpointMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *WebhookEndpointMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[webhookendpoint.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *WebhookEndpointMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[webhookendpoint.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *WebhookEndpointMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, webhookendpoint.FieldDescription)
}

// SetSigningSecret sets the "signing_secret" field.
func (m *WebhookEndpointMutation) SetSigningSecret(s string) {
	m.signing_secret = &s
}

// SigningSecret returns the value of the "signing_secret" field in the mutation.
func (m *WebhookEndpointMutation) SigningSecret() (r string, exists bool) {
	v := m.signing_secret
	if v == nil {
		return
	}
	return *v, true
}

// OldSigningSecret returns the old "signing_secret" field's value of the WebhookEndpoint entity.
// If the WebhookEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEndpointMutation) OldSigningSecret(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSigningSecret is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSigningSecret requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSigningSecret: %w", err)
	}
	return oldValue.SigningSecret, nil
}

// ResetSigningSecret resets all changes to the "signing_secret" field.
func (m *WebhookEndpointMutation) ResetSigningSecret() {
	m.signing_secret = nil
}

// SetEventTypes sets the "event_types" field.
func (m *WebhookEndpointMutation) SetEventTypes(s []string) {
	m.event_types = &s
	m.appendevent_types = nil
}

// EventTypes returns the value of the "event_types" field in the mutation.
func (m *WebhookEndpointMutation) EventTypes() (r []string, exists bool) {
	v := m.event_types
	if v == nil {
		return
	}
	return *v, true
}

// OldEventTypes returns the old "event_types" field's value of the WebhookEndpoint entity.
// If the WebhookEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEndpointMutation) OldEventTypes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventTypes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventTypes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventTypes: %w", err)
	}
	return oldValue.EventTypes, nil
}

// AppendEventTypes adds s to the "event_types" field.
func (m *WebhookEndpointMutation) AppendEventTypes(s []string) {
	m.appendevent_types = append(m.appendevent_types, s...)
}

// AppendedEventTypes returns the list of values that were appended to the "event_types" field in this mutation.
func (m *WebhookEndpointMutation) AppendedEventTypes() ([]string, bool) {
	if len(m.appendevent_types) == 0 {
		return nil, false
	}
	return m.appendevent_types, true
}

// ClearEventTypes clears the value of the "event_types" field.
func (m *WebhookEndpointMutation) ClearEventTypes() {
	m.event_types = nil
	m.appendevent_types = nil
	m.clearedFields[webhookendpoint.FieldEventTypes] = struct{}{}
}

// EventTypesCleared returns if the "event_types" field was cleared in this mutation.
func (m *WebhookEndpointMutation) EventTypesCleared() bool {
	_, ok := m.clearedFields[webhookendpoint.FieldEventTypes]
	return ok
}

// ResetEventTypes resets all changes to the "event_types" field.
func (m *WebhookEndpointMutation) ResetEventTypes() {
	m.event_types = nil
	m.appendevent_types = nil
	delete(m.clearedFields, webhookendpoint.FieldEventTypes)
}

// SetIsActive sets the "is_active" field.
func (m *WebhookEndpointMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *WebhookEndpointMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the WebhookEndpoint entity.
// If the WebhookEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEndpointMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *WebhookEndpointMutation) ResetIsActive() {
	m.is_active = nil
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (m *WebhookEndpointMutation) SetConsecutiveFailures(i int) {
	m.consecutive_failures = &i
	m.addconsecutive_failures = nil
}

// ConsecutiveFailures returns the value of the "consecutive_failures" field in the mutation.
func (m *WebhookEndpointMutation) ConsecutiveFailures() (r int, exists bool) {
	v := m.consecutive_failures
	if v == nil {
		return
	}
	return *v, true
}

// OldConsecutiveFailures returns the old "consecutive_failures" field's value of the WebhookEndpoint entity.
// If the WebhookEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEndpointMutation) OldConsecutiveFailures(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsecutiveFailures is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsecutiveFailures requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsecutiveFailures: %w", err)
	}
	return oldValue.ConsecutiveFailures, nil
}

// AddConsecutiveFailures adds i to the "consecutive_failures" field.
func (m *WebhookEndpointMutation) AddConsecutiveFailures(i int) {
	if m.addconsecutive_failures != nil {
		*m.addconsecutive_failures += i
	} else {
		m.addconsecutive_failures = &i
	}
}

// AddedConsecutiveFailures returns the value that was added to the "consecutive_failures" field in this mutation.
func (m *WebhookEndpointMutation) AddedConsecutiveFailures() (r int, exists bool) {
	v := m.addconsecutive_failures
	if v == nil {
		return
	}
	return *v, true
}

// ResetConsecutiveFailures resets all changes to the "consecutive_failures" field.
func (m *WebhookEndpointMutation) ResetConsecutiveFailures() {
	m.consecutive_failures = nil
	m.addconsecutive_failures = nil
}

// SetDisabledAt sets the "disabled_at" field.
func (m *WebhookEndpointMutation) SetDisabledAt(t time.Time) {
	m.disabled_at = &t
}

// DisabledAt returns the value of the "disabled_at" field in the mutation.
func (m *WebhookEndpointMutation) DisabledAt() (r time.Time, exists bool) {
	v := m.disabled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDisabledAt returns the old "disabled_at" field's value of the WebhookEndpoint entity.
// If the WebhookEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEndpointMutation) OldDisabledAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisabledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisabledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisabledAt: %w", err)
	}
	return oldValue.DisabledAt, nil
}

// ClearDisabledAt clears the value of the "disabled_at" field.
func (m *WebhookEndpointMutation) ClearDisabledAt() {
	m.disabled_at = nil
	m.clearedFields[webhookendpoint.FieldDisabledAt] = struct{}{}
}

// DisabledAtCleared returns if the "disabled_at" field was cleared in this mutation.
func (m *WebhookEndpointMutation) DisabledAtCleared() bool {
	_, ok := m.clearedFields[webhookendpoint.FieldDisabledAt]
	return ok
}

// ResetDisabledAt resets all changes to the "disabled_at" field.
func (m *WebhookEndpointMutation) ResetDisabledAt() {
	m.disabled_at = nil
	delete(m.clearedFields, webhookendpoint.FieldDisabledAt)
}

// SetDisabledReason sets the "disabled_reason" field.
func (m *WebhookEndpointMutation) SetDisabledReason(s string) {
	m.disabled_reason = &s
}

// DisabledReason returns the value of the "disabled_reason" field in the mutation.
func (m *WebhookEndpointMutation) DisabledReason() (r string, exists bool) {
	v := m.disabled_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldDisabledReason returns the old "disabled_reason" field's value of the WebhookEndpoint entity.
// If the WebhookEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEndpointMutation) OldDisabledReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisabledReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisabledReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisabledReason: %w", err)
	}
	return oldValue.DisabledReason, nil
}

// ClearDisabledReason clears the value of the "disabled_reason" field.
func (m *WebhookEndpointMutation) ClearDisabledReason() {
	m.disabled_reason = nil
	m.clearedFields[webhookendpoint.FieldDisabledReason] = struct{}{}
}

// DisabledReasonCleared returns if the "disabled_reason" field was cleared in this mutation.
func (m *WebhookEndpointMutation) DisabledReasonCleared() bool {
	_, ok := m.clearedFields[webhookendpoint.FieldDisabledReason]
	return ok
}

// ResetDisabledReason resets all changes to the "disabled_reason" field.
func (m *WebhookEndpointMutation) ResetDisabledReason() {
	m.disabled_reason = nil
	delete(m.clearedFields, webhookendpoint.FieldDisabledReason)
}

// SetCreatedAt sets the "created_at" field.
func (m *WebhookEndpointMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WebhookEndpointMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WebhookEndpoint entity.
// If the WebhookEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEndpointMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WebhookEndpointMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WebhookEndpointMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WebhookEndpointMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the WebhookEndpoint entity.
// If the WebhookEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEndpointMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WebhookEndpointMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddDeliveryIDs adds the "deliveries" edge to the WebhookDelivery entity by ids.
func (m *WebhookEndpointMutation) AddDeliveryIDs(ids ...string) {
	if m.deliveries == nil {
		m.deliveries = make(map[string]struct{})
	}
	for i := range ids {
		m.deliveries[ids[i]] = struct{}{}
	}
}

// ClearDeliveries clears the "deliveries" edge to the WebhookDelivery entity.
func (m *WebhookEndpointMutation) ClearDeliveries() {
	m.cleareddeliveries = true
}

// DeliveriesCleared reports if the "deliveries" edge to the WebhookDelivery entity was cleared.
func (m *WebhookEndpointMutation) DeliveriesCleared() bool {
	return m.cleareddeliveries
}

// RemoveDeliveryIDs removes the "deliveries" edge to the WebhookDelivery entity by IDs.
func (m *WebhookEndpointMutation) RemoveDeliveryIDs(ids ...string) {
	if m.removeddeliveries == nil {
		m.removeddeliveries = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.deliveries, ids[i])
		m.removeddeliveries[ids[i]] = struct{}{}
	}
}

// RemovedDeliveries returns the removed IDs of the "deliveries" edge to the WebhookDelivery entity.
func (m *WebhookEndpointMutation) RemovedDeliveriesIDs() (ids []string) {
	for id := range m.removeddeliveries {
		ids = append(ids, id)
	}
	return
}

// DeliveriesIDs returns the "deliveries" edge IDs in the mutation.
func (m *WebhookEndpointMutation) DeliveriesIDs() (ids []string) {
	for id := range m.deliveries {
		ids = append(ids, id)
	}
	return
}

// ResetDeliveries resets all changes to the "deliveries" edge.
func (m *WebhookEndpointMutation) ResetDeliveries() {
	m.deliveries = nil
	m.cleareddeliveries = false
	m.removeddeliveries = nil
}

// Where appends a list predicates to the WebhookEndpointMutation builder.
func (m *WebhookEndpointMutation) Where(ps ...predicate.WebhookEndpoint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WebhookEndpointMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WebhookEndpointMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WebhookEndpoint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WebhookEndpointMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WebhookEndpointMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WebhookEndpoint).
func (m *WebhookEndpointMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WebhookEndpointMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.account_id != nil {
		fields = append(fields, webhookendpoint.FieldAccountID)
	}
	if m.url != nil {
		fields = append(fields, webhookendpoint.FieldURL)
	}
	if m.description != nil {
		fields = append(fields, webhookendpoint.FieldDescription)
	}
	if m.signing_secret != nil {
		fields = append(fields, webhookendpoint.FieldSigningSecret)
	}
	if m.event_types != nil {
		fields = append(fields, webhookendpoint.FieldEventTypes)
	}
	if m.is_active != nil {
		fields = append(fields, webhookendpoint.FieldIsActive)
	}
	if m.consecutive_failures != nil {
		fields = append(fields, webhookendpoint.FieldConsecutiveFailures)
	}
	if m.disabled_at != nil {
		fields = append(fields, webhookendpoint.FieldDisabledAt)
	}
	if m.disabled_reason != nil {
		fields = append(fields, webhookendpoint.FieldDisabledReason)
	}
	if m.created_at != nil {
		fields = append(fields, webhookendpoint.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, webhookendpoint.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WebhookEndpointMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case webhookendpoint.FieldAccountID:
		return m.AccountID()
	case webhookendpoint.FieldURL:
		return m.URL()
	case webhookendpoint.FieldDescription:
		return m.Description()
	case webhookendpoint.FieldSigningSecret:
		return m.SigningSecret()
	case webhookendpoint.FieldEventTypes:
		return m.EventTypes()
	case webhookendpoint.FieldIsActive:
		return m.IsActive()
	case webhookendpoint.FieldConsecutiveFailures:
		return m.ConsecutiveFailures()
	case webhookendpoint.FieldDisabledAt:
		return m.DisabledAt()
	case webhookendpoint.FieldDisabledReason:
		return m.DisabledReason()
	case webhookendpoint.FieldCreatedAt:
		return m.CreatedAt()
	case webhookendpoint.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WebhookEndpointMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case webhookendpoint.FieldAccountID:
		return m.OldAccountID(ctx)
	case webhookendpoint.FieldURL:
		return m.OldURL(ctx)
	case webhookendpoint.FieldDescription:
		return m.OldDescription(ctx)
	case webhookendpoint.FieldSigningSecret:
		return m.OldSigningSecret(ctx)
	case webhookendpoint.FieldEventTypes:
		return m.OldEventTypes(ctx)
	case webhookendpoint.FieldIsActive:
		return m.OldIsActive(ctx)
	case webhookendpoint.FieldConsecutiveFailures:
		return m.OldConsecutiveFailures(ctx)
	case webhookendpoint.FieldDisabledAt:
		return m.OldDisabledAt(ctx)
	case webhookendpoint.FieldDisabledReason:
		return m.OldDisabledReason(ctx)
	case webhookendpoint.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case webhookendpoint.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WebhookEndpoint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookEndpointMutation) SetField(name string, value ent.Value) error {
	switch name {
	case webhookendpoint.FieldAccountID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountID(v)
		return nil
	case webhookendpoint.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case webhookendpoint.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case webhookendpoint.FieldSigningSecret:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSigningSecret(v)
		return nil
	case webhookendpoint.FieldEventTypes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventTypes(v)
		return nil
	case webhookendpoint.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case webhookendpoint.FieldConsecutiveFailures:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsecutiveFailures(v)
		return nil
	case webhookendpoint.FieldDisabledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisabledAt(v)
		return nil
	case webhookendpoint.FieldDisabledReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisabledReason(v)
		return nil
	case webhookendpoint.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case webhookendpoint.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WebhookEndpoint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WebhookEndpointMutation) AddedFields() []string {
	var fields []string
	if m.addconsecutive_failures != nil {
		fields = append(fields, webhookendpoint.FieldConsecutiveFailures)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WebhookEndpointMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case webhookendpoint.FieldConsecutiveFailures:
		return m.AddedConsecutiveFailures()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookEndpointMutation) AddField(name string, value ent.Value) error {
	switch name {
	case webhookendpoint.FieldConsecutiveFailures:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConsecutiveFailures(v)
		return nil
	}
	return fmt.Errorf("unknown WebhookEndpoint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WebhookEndpointMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(webhookendpoint.FieldDescription) {
		fields = append(fields, webhookendpoint.FieldDescription)
	}
	if m.FieldCleared(webhookendpoint.FieldEventTypes) {
		fields = append(fields, webhookendpoint.FieldEventTypes)
	}
	if m.FieldCleared(webhookendpoint.FieldDisabledAt) {
		fields = append(fields, webhookendpoint.FieldDisabledAt)
	}
	if m.FieldCleared(webhookendpoint.FieldDisabledReason) {
		fields = append(fields, webhookendpoint.FieldDisabledReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WebhookEndpointMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WebhookEndpointMutation) ClearField(name string) error {
	switch name {
	case webhookendpoint.FieldDescription:
		m.ClearDescription()
		return nil
	case webhookendpoint.FieldEventTypes:
		m.ClearEventTypes()
		return nil
	case webhookendpoint.FieldDisabledAt:
		m.ClearDisabledAt()
		return nil
	case webhookendpoint.FieldDisabledReason:
		m.ClearDisabledReason()
		return nil
	}
	return fmt.Errorf("unknown WebhookEndpoint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WebhookEndpointMutation) ResetField(name string) error {
	switch name {
	case webhookendpoint.FieldAccountID:
		m.ResetAccountID()
		return nil
	case webhookendpoint.FieldURL:
		m.ResetURL()
		return nil
	case webhookendpoint.FieldDescription:
		m.ResetDescription()
		return nil
	case webhookendpoint.FieldSigningSecret:
		m.ResetSigningSecret()
		return nil
	case webhookendpoint.FieldEventTypes:
		m.ResetEventTypes()
		return nil
	case webhookendpoint.FieldIsActive:
		m.ResetIsActive()
		return nil
	case webhookendpoint.FieldConsecutiveFailures:
		m.ResetConsecutiveFailures()
		return nil
	case webhookendpoint.FieldDisabledAt:
		m.ResetDisabledAt()
		return nil
	case webhookendpoint.FieldDisabledReason:
		m.ResetDisabledReason()
		return nil
	case webhookendpoint.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case webhookendpoint.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown WebhookEndpoint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WebhookEndpointMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.deliveries != nil {
		edges = append(edges, webhookendpoint.EdgeDeliveries)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WebhookEndpointMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case webhookendpoint.EdgeDeliveries:
		ids := make([]ent.Value, 0, len(m.deliveries))
		for id := range m.deliveries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WebhookEndpointMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removeddeliveries != nil {
		edges = append(edges, webhookendpoint.EdgeDeliveries)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WebhookEndpointMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case webhookendpoint.EdgeDeliveries:
		ids := make([]ent.Value, 0, len(m.removeddeliveries))
		for id := range m.removeddeliveries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WebhookEndpointMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddeliveries {
		edges = append(edges, webhookendpoint.EdgeDeliveries)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WebhookEndpointMutation) EdgeCleared(name string) bool {
	switch name {
	case webhookendpoint.EdgeDeliveries:
		return m.cleareddeliveries
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WebhookEndpointMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown WebhookEndpoint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WebhookEndpointMutation) ResetEdge(name string) error {
	switch name {
	case webhookendpoint.EdgeDeliveries:
		m.ResetDeliveries()
		return nil
	}
	return fmt.Errorf("unknown WebhookEndpoint edge %s", name)
}

// WebhookEventMutation represents an operation that mutates the WebhookEvent nodes in the graph.
type WebhookEventMutation struct {
	config
	op                Op
	typ               string
	id                *string
	account_id        *string
	event_type        *string
	data              *map[string]interface{}
	created_at        *time.Time
	clearedFields     map[string]struct{}
	deliveries        map[string]struct{}
	removeddeliveries map[string]struct{}
	cleareddeliveries bool
	done              bool
	oldValue          func(context.Context) (*WebhookEvent, error)
	predicates        []predicate.WebhookEvent
}

var _ ent.Mutation = (*WebhookEventMutation)(nil)

// webhookeventOption allows management of the mutation configuration using functional options.
type webhookeventOption func(*WebhookEventMutation)

// newWebhookEventMutation creates new mutation for the WebhookEvent entity.
func newWebhookEventMutation(c config, op Op, opts ...webhookeventOption) *WebhookEventMutation {
	m := &WebhookEventMutation{
		config:        c,
		op:            op,
		typ:           TypeWebhookEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWebhookEventID sets the ID field of the mutation.
func withWebhookEventID(id string) webhookeventOption {
	return func(m *WebhookEventMutation) {
		var (
			err   error
			once  sync.Once
			value *WebhookEvent
		)
		m.oldValue = func(ctx context.Context) (*WebhookEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WebhookEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWebhookEvent sets the old WebhookEvent of the mutation.
func withWebhookEvent(node *WebhookEvent) webhookeventOption {
	return func(m *WebhookEventMutation) {
		m.oldValue = func(context.Context) (*WebhookEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WebhookEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WebhookEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WebhookEvent entities.
func (m *WebhookEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WebhookEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WebhookEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WebhookEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAccountID sets the "account_id" field.
func (m *WebhookEventMutation) SetAccountID(s string) {
	m.account_id = &s
}

// AccountID returns the value of the "account_id" field in the mutation.
func (m *WebhookEventMutation) AccountID() (r string, exists bool) {
	v := m.account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountID returns the old "account_id" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldAccountID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountID: %w", err)
	}
	return oldValue.AccountID, nil
}

// ResetAccountID resets all changes to the "account_id" field.
func (m *WebhookEventMutation) ResetAccountID() {
	m.account_id = nil
}

// SetEventType sets the "event_type" field.
func (m *WebhookEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *WebhookEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *WebhookEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetData sets the "data" field.
func (m *WebhookEventMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *WebhookEventMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ClearData clears the value of the "data" field.
func (m *WebhookEventMutation) ClearData() {
	m.data = nil
	m.clearedFields[webhookevent.FieldData] = struct{}{}
}

// DataCleared returns if the "data" field was cleared in this mutation.
func (m *WebhookEventMutation) DataCleared() bool {
	_, ok := m.clearedFields[webhookevent.FieldData]
	return ok
}

// ResetData resets all changes to the "data" field.
func (m *WebhookEventMutation) ResetData() {
	m.data = nil
	delete(m.clearedFields, webhookevent.FieldData)
}

// SetCreatedAt sets the "created_at" field.
func (m *WebhookEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WebhookEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WebhookEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddDeliveryIDs adds the "deliveries" edge to the WebhookDelivery entity by ids.
func (m *WebhookEventMutation) AddDeliveryIDs(ids ...string) {
	if m.deliveries == nil {
		m.deliveries = make(map[string]struct{})
	}
	for i := range ids {
		m.deliveries[ids[i]] = struct{}{}
	}
}

// ClearDeliveries clears the "deliveries" edge to the WebhookDelivery entity.
func (m *WebhookEventMutation) ClearDeliveries() {
	m.cleareddeliveries = true
}

// DeliveriesCleared reports if the "deliveries" edge to the WebhookDelivery entity was cleared.
func (m *WebhookEventMutation) DeliveriesCleared() bool {
	return m.cleareddeliveries
}

// RemoveDeliveryIDs removes the "deliveries" edge to the WebhookDelivery entity by IDs.
func (m *WebhookEventMutation) RemoveDeliveryIDs(ids ...string) {
	if m.removeddeliveries == nil {
		m.removeddeliveries = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.deliveries, ids[i])
		m.removeddeliveries[ids[i]] = struct{}{}
	}
}

// RemovedDeliveries returns the removed IDs of the "deliveries" edge to the WebhookDelivery entity.
func (m *WebhookEventMutation) RemovedDeliveriesIDs() (ids []string) {
	for id := range m.removeddeliveries {
		ids = append(ids, id)
	}
	return
}

// DeliveriesIDs returns the "deliveries" edge IDs in the mutation.
func (m *WebhookEventMutation) DeliveriesIDs() (ids []string) {
	for id := range m.deliveries {
		ids = append(ids, id)
	}
	return
}

// ResetDeliveries resets all changes to the "deliveries" edge.
func (m *WebhookEventMutation) ResetDeliveries() {
	m.deliveries = nil
	m.cleareddeliveries = false
	m.removeddeliveries = nil
}

// Where appends a list predicates to the WebhookEventMutation builder.
func (m *WebhookEventMutation) Where(ps ...predicate.WebhookEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WebhookEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WebhookEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WebhookEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WebhookEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WebhookEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WebhookEvent).
func (m *WebhookEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WebhookEventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.account_id != nil {
		fields = append(fields, webhookevent.FieldAccountID)
	}
	if m.event_type != nil {
		fields = append(fields, webhookevent.FieldEventType)
	}
	if m.data != nil {
		fields = append(fields, webhookevent.FieldData)
	}
	if m.created_at != nil {
		fields = append(fields, webhookevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WebhookEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case webhookevent.FieldAccountID:
		return m.AccountID()
	case webhookevent.FieldEventType:
		return m.EventType()
	case webhookevent.FieldData:
		return m.Data()
	case webhookevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WebhookEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case webhookevent.FieldAccountID:
		return m.OldAccountID(ctx)
	case webhookevent.FieldEventType:
		return m.OldEventType(ctx)
	case webhookevent.FieldData:
		return m.OldData(ctx)
	case webhookevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WebhookEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case webhookevent.FieldAccountID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountID(v)
		return nil
	case webhookevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case webhookevent.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case webhookevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WebhookEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WebhookEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WebhookEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown WebhookEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WebhookEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(webhookevent.FieldData) {
		fields = append(fields, webhookevent.FieldData)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WebhookEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WebhookEventMutation) ClearField(name string) error {
	switch name {
	case webhookevent.FieldData:
		m.ClearData()
		return nil
	}
	return fmt.Errorf("unknown WebhookEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WebhookEventMutation) ResetField(name string) error {
	switch name {
	case webhookevent.FieldAccountID:
		m.ResetAccountID()
		return nil
	case webhookevent.FieldEventType:
		m.ResetEventType()
		return nil
	case webhookevent.FieldData:
		m.ResetData()
		return nil
	case webhookevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown WebhookEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WebhookEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.deliveries != nil {
		edges = append(edges, webhookevent.EdgeDeliveries)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WebhookEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case webhookevent.EdgeDeliveries:
		ids := make([]ent.Value, 0, len(m.deliveries))
		for id := range m.deliveries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WebhookEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removeddeliveries != nil {
		edges = append(edges, webhookevent.EdgeDeliveries)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WebhookEventMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case webhookevent.EdgeDeliveries:
		ids := make([]ent.Value, 0, len(m.removeddeliveries))
		for id := range m.removeddeliveries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WebhookEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddeliveries {
		edges = append(edges, webhookevent.EdgeDeliveries)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WebhookEventMutation) EdgeCleared(name string) bool {
	switch name {
	case webhookevent.EdgeDeliveries:
		return m.cleareddeliveries
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WebhookEventMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown WebhookEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WebhookEventMutation) ResetEdge(name string) error {
	switch name {
	case webhookevent.EdgeDeliveries:
		m.ResetDeliveries()
		return nil
	}
	return fmt.Errorf("unknown WebhookEvent edge %s", name)
}
