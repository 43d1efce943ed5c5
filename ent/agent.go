// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mnemom/smoltbot/ent/agent"
	"github.com/mnemom/smoltbot/ent/merkletree"
)

// Agent is the model entity for the Agent schema.
type Agent struct {
	config `json:"-"`
	// ID of the ent.
	// smolt-<hash8>
	ID string `json:"id,omitempty"`
	// First 16 hex chars of SHA-256(credential)
	AgentHash string `json:"agent_hash,omitempty"`
	// AccountID holds the value of the "account_id" field.
	AccountID string `json:"account_id,omitempty"`
	// EnforcementMode holds the value of the "enforcement_mode" field.
	EnforcementMode agent.EnforcementMode `json:"enforcement_mode,omitempty"`
	// ContainmentStatus holds the value of the "containment_status" field.
	ContainmentStatus agent.ContainmentStatus `json:"containment_status,omitempty"`
	// Consecutive boundary violations before auto-pause
	AutoContainmentThreshold *int `json:"auto_containment_threshold,omitempty"`
	// NudgeStrategy holds the value of the "nudge_strategy" field.
	NudgeStrategy agent.NudgeStrategy `json:"nudge_strategy,omitempty"`
	// Delivery probability percent for the sampling strategy
	NudgeRate int `json:"nudge_rate,omitempty"`
	// Session violations before delivery for the threshold strategy
	NudgeThreshold int `json:"nudge_threshold,omitempty"`
	// AipDisabled holds the value of the "aip_disabled" field.
	AipDisabled bool `json:"aip_disabled,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentQuery when eager-loading is set.
	Edges        AgentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentEdges holds the relations/edges for other nodes in the graph.
type AgentEdges struct {
	// Cards holds the value of the cards edge.
	Cards []*AlignmentCard `json:"cards,omitempty"`
	// Checkpoints holds the value of the checkpoints edge.
	Checkpoints []*IntegrityCheckpoint `json:"checkpoints,omitempty"`
	// MerkleTree holds the value of the merkle_tree edge.
	MerkleTree *MerkleTree `json:"merkle_tree,omitempty"`
	// Nudges holds the value of the nudges edge.
	Nudges []*Nudge `json:"nudges,omitempty"`
	// AuditLogs holds the value of the audit_logs edge.
	AuditLogs []*AuditLog `json:"audit_logs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// CardsOrErr returns the Cards value or an error if the edge
// was not loaded in eager-loading.
func (e AgentEdges) CardsOrErr() ([]*AlignmentCard, error) {
	if e.loadedTypes[0] {
		return e.Cards, nil
	}
	return nil, &NotLoadedError{edge: "cards"}
}

// CheckpointsOrErr returns the Checkpoints value or an error if the edge
// was not loaded in eager-loading.
func (e AgentEdges) CheckpointsOrErr() ([]*IntegrityCheckpoint, error) {
	if e.loadedTypes[1] {
		return e.Checkpoints, nil
	}
	return nil, &NotLoadedError{edge: "checkpoints"}
}

// MerkleTreeOrErr returns the MerkleTree value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentEdges) MerkleTreeOrErr() (*MerkleTree, error) {
	if e.MerkleTree != nil {
		return e.MerkleTree, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: merkletree.Label}
	}
	return nil, &NotLoadedError{edge: "merkle_tree"}
}

// NudgesOrErr returns the Nudges value or an error if the edge
// was not loaded in eager-loading.
func (e AgentEdges) NudgesOrErr() ([]*Nudge, error) {
	if e.loadedTypes[3] {
		return e.Nudges, nil
	}
	return nil, &NotLoadedError{edge: "nudges"}
}

// AuditLogsOrErr returns the AuditLogs value or an error if the edge
// was not loaded in eager-loading.
func (e AgentEdges) AuditLogsOrErr() ([]*AuditLog, error) {
	if e.loadedTypes[4] {
		return e.AuditLogs, nil
	}
	return nil, &NotLoadedError{edge: "audit_logs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Agent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agent.FieldAipDisabled:
			values[i] = new(sql.NullBool)
		case agent.FieldAutoContainmentThreshold, agent.FieldNudgeRate, agent.FieldNudgeThreshold:
			values[i] = new(sql.NullInt64)
		case agent.FieldID, agent.FieldAgentHash, agent.FieldAccountID, agent.FieldEnforcementMode, agent.FieldContainmentStatus, agent.FieldNudgeStrategy:
			values[i] = new(sql.NullString)
		case agent.FieldCreatedAt, agent.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Agent fields.
func (_m *Agent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agent.FieldAgentHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_hash", values[i])
			} else if value.Valid {
				_m.AgentHash = value.String
			}
		case agent.FieldAccountID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field account_id", values[i])
			} else if value.Valid {
				_m.AccountID = value.String
			}
		case agent.FieldEnforcementMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field enforcement_mode", values[i])
			} else if value.Valid {
				_m.EnforcementMode = agent.EnforcementMode(value.String)
			}
		case agent.FieldContainmentStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field containment_status", values[i])
			} else if value.Valid {
				_m.ContainmentStatus = agent.ContainmentStatus(value.String)
			}
		case agent.FieldAutoContainmentThreshold:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field auto_containment_threshold", values[i])
			} else if value.Valid {
				_m.AutoContainmentThreshold = new(int)
				*_m.AutoContainmentThreshold = int(value.Int64)
			}
		case agent.FieldNudgeStrategy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field nudge_strategy", values[i])
			} else if value.Valid {
				_m.NudgeStrategy = agent.NudgeStrategy(value.String)
			}
		case agent.FieldNudgeRate:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field nudge_rate", values[i])
			} else if value.Valid {
				_m.NudgeRate = int(value.Int64)
			}
		case agent.FieldNudgeThreshold:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field nudge_threshold", values[i])
			} else if value.Valid {
				_m.NudgeThreshold = int(value.Int64)
			}
		case agent.FieldAipDisabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field aip_disabled", values[i])
			} else if value.Valid {
				_m.AipDisabled = value.Bool
			}
		case agent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case agent.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Agent.
// This includes values selected through modifiers, order, etc.
func (_m *Agent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCards queries the "cards" edge of the Agent entity.
func (_m *Agent) QueryCards() *AlignmentCardQuery {
	return NewAgentClient(_m.config).QueryCards(_m)
}

// QueryCheckpoints queries the "checkpoints" edge of the Agent entity.
func (_m *Agent) QueryCheckpoints() *IntegrityCheckpointQuery {
	return NewAgentClient(_m.config).QueryCheckpoints(_m)
}

// QueryMerkleTree queries the "merkle_tree" edge of the Agent entity.
func (_m *Agent) QueryMerkleTree() *MerkleTreeQuery {
	return NewAgentClient(_m.config).QueryMerkleTree(_m)
}

// QueryNudges queries the "nudges" edge of the Agent entity.
func (_m *Agent) QueryNudges() *NudgeQuery {
	return NewAgentClient(_m.config).QueryNudges(_m)
}

// QueryAuditLogs queries the "audit_logs" edge of the Agent entity.
func (_m *Agent) QueryAuditLogs() *AuditLogQuery {
	return NewAgentClient(_m.config).QueryAuditLogs(_m)
}

// Update returns a builder for updating this Agent.
// Note that you need to call Agent.Unwrap() before calling this method if this Agent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Agent) Update() *AgentUpdateOne {
	return NewAgentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Agent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Agent) Unwrap() *Agent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Agent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Agent) String() string {
	var builder strings.Builder
	builder.WriteString("Agent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_hash=")
	builder.WriteString(_m.AgentHash)
	builder.WriteString(", ")
	builder.WriteString("account_id=")
	builder.WriteString(_m.AccountID)
	builder.WriteString(", ")
	builder.WriteString("enforcement_mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.EnforcementMode))
	builder.WriteString(", ")
	builder.WriteString("containment_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContainmentStatus))
	builder.WriteString(", ")
	if v := _m.AutoContainmentThreshold; v != nil {
		builder.WriteString("auto_containment_threshold=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("nudge_strategy=")
	builder.WriteString(fmt.Sprintf("%v", _m.NudgeStrategy))
	builder.WriteString(", ")
	builder.WriteString("nudge_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.NudgeRate))
	builder.WriteString(", ")
	builder.WriteString("nudge_threshold=")
	builder.WriteString(fmt.Sprintf("%v", _m.NudgeThreshold))
	builder.WriteString(", ")
	builder.WriteString("aip_disabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.AipDisabled))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Agents is a parsable slice of Agent.
type Agents []*Agent
