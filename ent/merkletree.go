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
	"github.com/mnemom/smoltbot/ent/merkletree"
)

// MerkleTree is the model entity for the MerkleTree schema.
type MerkleTree struct {
	config `json:"-"`
	// ID of the ent.
	// mt-<rand8>
	ID string `json:"id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID string `json:"agent_id,omitempty"`
	// Hex root; empty string for a zero-leaf tree
	Root string `json:"root,omitempty"`
	// Depth holds the value of the "depth" field.
	Depth int `json:"depth,omitempty"`
	// LeafCount holds the value of the "leaf_count" field.
	LeafCount int `json:"leaf_count,omitempty"`
	// Ordered leaf hashes; the root is recomputable from these
	Leaves []string `json:"leaves,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MerkleTreeQuery when eager-loading is set.
	Edges        MerkleTreeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MerkleTreeEdges holds the relations/edges for other nodes in the graph.
type MerkleTreeEdges struct {
	// Agent holds the value of the agent edge.
	Agent *Agent `json:"agent,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AgentOrErr returns the Agent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MerkleTreeEdges) AgentOrErr() (*Agent, error) {
	if e.Agent != nil {
		return e.Agent, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: agent.Label}
	}
	return nil, &NotLoadedError{edge: "agent"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MerkleTree) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case merkletree.FieldLeaves:
			values[i] = new([]byte)
		case merkletree.FieldDepth, merkletree.FieldLeafCount:
			values[i] = new(sql.NullInt64)
		case merkletree.FieldID, merkletree.FieldAgentID, merkletree.FieldRoot:
			values[i] = new(sql.NullString)
		case merkletree.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MerkleTree fields.
func (_m *MerkleTree) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case merkletree.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case merkletree.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case merkletree.FieldRoot:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field root", values[i])
			} else if value.Valid {
				_m.Root = value.String
			}
		case merkletree.FieldDepth:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field depth", values[i])
			} else if value.Valid {
				_m.Depth = int(value.Int64)
			}
		case merkletree.FieldLeafCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field leaf_count", values[i])
			} else if value.Valid {
				_m.LeafCount = int(value.Int64)
			}
		case merkletree.FieldLeaves:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field leaves", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Leaves); err != nil {
					return fmt.Errorf("unmarshal field leaves: %w", err)
				}
			}
		case merkletree.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the MerkleTree.
// This includes values selected through modifiers, order, etc.
func (_m *MerkleTree) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAgent queries the "agent" edge of the MerkleTree entity.
func (_m *MerkleTree) QueryAgent() *AgentQuery {
	return NewMerkleTreeClient(_m.config).QueryAgent(_m)
}

// Update returns a builder for updating this MerkleTree.
// Note that you need to call MerkleTree.Unwrap() before calling this method if this MerkleTree
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MerkleTree) Update() *MerkleTreeUpdateOne {
	return NewMerkleTreeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MerkleTree entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MerkleTree) Unwrap() *MerkleTree {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MerkleTree is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MerkleTree) String() string {
	var builder strings.Builder
	builder.WriteString("MerkleTree(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	builder.WriteString("root=")
	builder.WriteString(_m.Root)
	builder.WriteString(", ")
	builder.WriteString("depth=")
	builder.WriteString(fmt.Sprintf("%v", _m.Depth))
	builder.WriteString(", ")
	builder.WriteString("leaf_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.LeafCount))
	builder.WriteString(", ")
	builder.WriteString("leaves=")
	builder.WriteString(fmt.Sprintf("%v", _m.Leaves))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MerkleTrees is a parsable slice of MerkleTree.
type MerkleTrees []*MerkleTree
