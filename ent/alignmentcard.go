// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mnemom/smoltbot/ent/agent"
	"github.com/mnemom/smoltbot/ent/alignmentcard"
)

// AlignmentCard is the model entity for the AlignmentCard schema.
type AlignmentCard struct {
	config `json:"-"`
	// ID of the ent.
	// ac-<suffix>
	ID string `json:"id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID string `json:"agent_id,omitempty"`
	// Principal holds the value of the "principal" field.
	Principal string `json:"principal,omitempty"`
	// Role holds the value of the "role" field.
	Role string `json:"role,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Ordered sequence of {name, priority?, description?}
	DeclaredValues []map[string]interface{} `json:"declared_values,omitempty"`
	// BoundedActions holds the value of the "bounded_actions" field.
	BoundedActions []string `json:"bounded_actions,omitempty"`
	// ForbiddenActions holds the value of the "forbidden_actions" field.
	ForbiddenActions []string `json:"forbidden_actions,omitempty"`
	// Ordered sequence of {condition, action, reason?}
	EscalationTriggers []map[string]interface{} `json:"escalation_triggers,omitempty"`
	// AuditCommitment holds the value of the "audit_commitment" field.
	AuditCommitment string `json:"audit_commitment,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AlignmentCardQuery when eager-loading is set.
	Edges        AlignmentCardEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AlignmentCardEdges holds the relations/edges for other nodes in the graph.
type AlignmentCardEdges struct {
	// Agent holds the value of the agent edge.
	Agent *Agent `json:"agent,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AgentOrErr returns the Agent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AlignmentCardEdges) AgentOrErr() (*Agent, error) {
	if e.Agent != nil {
		return e.Agent, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: agent.Label}
	}
	return nil, &NotLoadedError{edge: "agent"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AlignmentCard) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case alignmentcard.FieldDeclaredValues, alignmentcard.FieldBoundedActions, alignmentcard.FieldForbiddenActions, alignmentcard.FieldEscalationTriggers:
			values[i] = new([]byte)
		case alignmentcard.FieldIsActive:
			values[i] = new(sql.NullBool)
		case alignmentcard.FieldID, alignmentcard.FieldAgentID, alignmentcard.FieldPrincipal, alignmentcard.FieldRole, alignmentcard.FieldDescription, alignmentcard.FieldAuditCommitment:
			values[i] = new(sql.NullString)
		case alignmentcard.FieldCreatedAt, alignmentcard.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AlignmentCard fields.
func (_m *AlignmentCard) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case alignmentcard.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case alignmentcard.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case alignmentcard.FieldPrincipal:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field principal", values[i])
			} else if value.Valid {
				_m.Principal = value.String
			}
		case alignmentcard.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = value.String
			}
		case alignmentcard.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case alignmentcard.FieldDeclaredValues:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field declared_values", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DeclaredValues); err != nil {
					return fmt.Errorf("unmarshal field declared_values: %w", err)
				}
			}
		case alignmentcard.FieldBoundedActions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field bounded_actions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.BoundedActions); err != nil {
					return fmt.Errorf("unmarshal field bounded_actions: %w", err)
				}
			}
		case alignmentcard.FieldForbiddenActions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field forbidden_actions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ForbiddenActions); err != nil {
					return fmt.Errorf("unmarshal field forbidden_actions: %w", err)
				}
			}
		case alignmentcard.FieldEscalationTriggers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field escalation_triggers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EscalationTriggers); err != nil {
					return fmt.Errorf("unmarshal field escalation_triggers: %w", err)
				}
			}
		case alignmentcard.FieldAuditCommitment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field audit_commitment", values[i])
			} else if value.Valid {
				_m.AuditCommitment = value.String
			}
		case alignmentcard.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case alignmentcard.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case alignmentcard.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AlignmentCard.
// This includes values selected through modifiers, order, etc.
func (_m *AlignmentCard) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAgent queries the "agent" edge of the AlignmentCard entity.
func (_m *AlignmentCard) QueryAgent() *AgentQuery {
	return NewAlignmentCardClient(_m.config).QueryAgent(_m)
}

// Update returns a builder for updating this AlignmentCard.
// Note that you need to call AlignmentCard.Unwrap() before calling this method if this AlignmentCard
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AlignmentCard) Update() *AlignmentCardUpdateOne {
	return NewAlignmentCardClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AlignmentCard entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AlignmentCard) Unwrap() *AlignmentCard {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AlignmentCard is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AlignmentCard) String() string {
	var builder strings.Builder
	builder.WriteString("AlignmentCard(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	builder.WriteString("principal=")
	builder.WriteString(_m.Principal)
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(_m.Role)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("declared_values=")
	builder.WriteString(fmt.Sprintf("%v", _m.DeclaredValues))
	builder.WriteString(", ")
	builder.WriteString("bounded_actions=")
	builder.WriteString(fmt.Sprintf("%v", _m.BoundedActions))
	builder.WriteString(", ")
	builder.WriteString("forbidden_actions=")
	builder.WriteString(fmt.Sprintf("%v", _m.ForbiddenActions))
	builder.WriteString(", ")
	builder.WriteString("escalation_triggers=")
	builder.WriteString(fmt.Sprintf("%v", _m.EscalationTriggers))
	builder.WriteString(", ")
	builder.WriteString("audit_commitment=")
	builder.WriteString(_m.AuditCommitment)
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AlignmentCards is a parsable slice of AlignmentCard.
type AlignmentCards []*AlignmentCard
