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
	"github.com/mnemom/smoltbot/ent/integritycheckpoint"
)

// IntegrityCheckpoint is the model entity for the IntegrityCheckpoint schema.
type IntegrityCheckpoint struct {
	config `json:"-"`
	// ID of the ent.
	// ic-<rand8>
	ID string `json:"id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID string `json:"agent_id,omitempty"`
	// CardID holds the value of the "card_id" field.
	CardID string `json:"card_id,omitempty"`
	// <agent_hash>-<hour bucket>
	SessionID string `json:"session_id,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Provider holds the value of the "provider" field.
	Provider integritycheckpoint.Provider `json:"provider,omitempty"`
	// Model holds the value of the "model" field.
	Model string `json:"model,omitempty"`
	// SHA-256 hex of the reasoning text; empty for synthetic checkpoints without thinking
	ThinkingBlockHash string `json:"thinking_block_hash,omitempty"`
	// Verdict holds the value of the "verdict" field.
	Verdict integritycheckpoint.Verdict `json:"verdict,omitempty"`
	// Concerns holds the value of the "concerns" field.
	Concerns []map[string]interface{} `json:"concerns,omitempty"`
	// ReasoningSummary holds the value of the "reasoning_summary" field.
	ReasoningSummary string `json:"reasoning_summary,omitempty"`
	// ConscienceContext holds the value of the "conscience_context" field.
	ConscienceContext map[string]interface{} `json:"conscience_context,omitempty"`
	// WindowPosition holds the value of the "window_position" field.
	WindowPosition map[string]interface{} `json:"window_position,omitempty"`
	// AnalysisMetadata holds the value of the "analysis_metadata" field.
	AnalysisMetadata map[string]interface{} `json:"analysis_metadata,omitempty"`
	// LinkedTraceID holds the value of the "linked_trace_id" field.
	LinkedTraceID *string `json:"linked_trace_id,omitempty"`
	// Source holds the value of the "source" field.
	Source integritycheckpoint.Source `json:"source,omitempty"`
	// Synthetic holds the value of the "synthetic" field.
	Synthetic bool `json:"synthetic,omitempty"`
	// InputCommitment holds the value of the "input_commitment" field.
	InputCommitment string `json:"input_commitment,omitempty"`
	// ChainHash holds the value of the "chain_hash" field.
	ChainHash string `json:"chain_hash,omitempty"`
	// PrevChainHash holds the value of the "prev_chain_hash" field.
	PrevChainHash string `json:"prev_chain_hash,omitempty"`
	// MerkleLeafIndex holds the value of the "merkle_leaf_index" field.
	MerkleLeafIndex *int `json:"merkle_leaf_index,omitempty"`
	// CertificateID holds the value of the "certificate_id" field.
	CertificateID string `json:"certificate_id,omitempty"`
	// Base64 Ed25519 signature over the canonical signed payload
	Signature string `json:"signature,omitempty"`
	// SigningKeyID holds the value of the "signing_key_id" field.
	SigningKeyID string `json:"signing_key_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the IntegrityCheckpointQuery when eager-loading is set.
	Edges        IntegrityCheckpointEdges `json:"edges"`
	selectValues sql.SelectValues
}

// IntegrityCheckpointEdges holds the relations/edges for other nodes in the graph.
type IntegrityCheckpointEdges struct {
	// Agent holds the value of the agent edge.
	Agent *Agent `json:"agent,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AgentOrErr returns the Agent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e IntegrityCheckpointEdges) AgentOrErr() (*Agent, error) {
	if e.Agent != nil {
		return e.Agent, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: agent.Label}
	}
	return nil, &NotLoadedError{edge: "agent"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*IntegrityCheckpoint) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case integritycheckpoint.FieldConcerns, integritycheckpoint.FieldConscienceContext, integritycheckpoint.FieldWindowPosition, integritycheckpoint.FieldAnalysisMetadata:
			values[i] = new([]byte)
		case integritycheckpoint.FieldSynthetic:
			values[i] = new(sql.NullBool)
		case integritycheckpoint.FieldMerkleLeafIndex:
			values[i] = new(sql.NullInt64)
		case integritycheckpoint.FieldID, integritycheckpoint.FieldAgentID, integritycheckpoint.FieldCardID, integritycheckpoint.FieldSessionID, integritycheckpoint.FieldProvider, integritycheckpoint.FieldModel, integritycheckpoint.FieldThinkingBlockHash, integritycheckpoint.FieldVerdict, integritycheckpoint.FieldReasoningSummary, integritycheckpoint.FieldLinkedTraceID, integritycheckpoint.FieldSource, integritycheckpoint.FieldInputCommitment, integritycheckpoint.FieldChainHash, integritycheckpoint.FieldPrevChainHash, integritycheckpoint.FieldCertificateID, integritycheckpoint.FieldSignature, integritycheckpoint.FieldSigningKeyID:
			values[i] = new(sql.NullString)
		case integritycheckpoint.FieldTimestamp, integritycheckpoint.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the IntegrityCheckpoint fields.
func (_m *IntegrityCheckpoint) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case integritycheckpoint.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case integritycheckpoint.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case integritycheckpoint.FieldCardID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field card_id", values[i])
			} else if value.Valid {
				_m.CardID = value.String
			}
		case integritycheckpoint.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case integritycheckpoint.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case integritycheckpoint.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = integritycheckpoint.Provider(value.String)
			}
		case integritycheckpoint.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case integritycheckpoint.FieldThinkingBlockHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field thinking_block_hash", values[i])
			} else if value.Valid {
				_m.ThinkingBlockHash = value.String
			}
		case integritycheckpoint.FieldVerdict:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field verdict", values[i])
			} else if value.Valid {
				_m.Verdict = integritycheckpoint.Verdict(value.String)
			}
		case integritycheckpoint.FieldConcerns:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field concerns", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Concerns); err != nil {
					return fmt.Errorf("unmarshal field concerns: %w", err)
				}
			}
		case integritycheckpoint.FieldReasoningSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning_summary", values[i])
			} else if value.Valid {
				_m.ReasoningSummary = value.String
			}
		case integritycheckpoint.FieldConscienceContext:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field conscience_context", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ConscienceContext); err != nil {
					return fmt.Errorf("unmarshal field conscience_context: %w", err)
				}
			}
		case integritycheckpoint.FieldWindowPosition:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field window_position", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.WindowPosition); err != nil {
					return fmt.Errorf("unmarshal field window_position: %w", err)
				}
			}
		case integritycheckpoint.FieldAnalysisMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field analysis_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AnalysisMetadata); err != nil {
					return fmt.Errorf("unmarshal field analysis_metadata: %w", err)
				}
			}
		case integritycheckpoint.FieldLinkedTraceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field linked_trace_id", values[i])
			} else if value.Valid {
				_m.LinkedTraceID = new(string)
				*_m.LinkedTraceID = value.String
			}
		case integritycheckpoint.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = integritycheckpoint.Source(value.String)
			}
		case integritycheckpoint.FieldSynthetic:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field synthetic", values[i])
			} else if value.Valid {
				_m.Synthetic = value.Bool
			}
		case integritycheckpoint.FieldInputCommitment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field input_commitment", values[i])
			} else if value.Valid {
				_m.InputCommitment = value.String
			}
		case integritycheckpoint.FieldChainHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chain_hash", values[i])
			} else if value.Valid {
				_m.ChainHash = value.String
			}
		case integritycheckpoint.FieldPrevChainHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prev_chain_hash", values[i])
			} else if value.Valid {
				_m.PrevChainHash = value.String
			}
		case integritycheckpoint.FieldMerkleLeafIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field merkle_leaf_index", values[i])
			} else if value.Valid {
				_m.MerkleLeafIndex = new(int)
				*_m.MerkleLeafIndex = int(value.Int64)
			}
		case integritycheckpoint.FieldCertificateID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field certificate_id", values[i])
			} else if value.Valid {
				_m.CertificateID = value.String
			}
		case integritycheckpoint.FieldSignature:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field signature", values[i])
			} else if value.Valid {
				_m.Signature = value.String
			}
		case integritycheckpoint.FieldSigningKeyID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field signing_key_id", values[i])
			} else if value.Valid {
				_m.SigningKeyID = value.String
			}
		case integritycheckpoint.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the IntegrityCheckpoint.
// This includes values selected through modifiers, order, etc.
func (_m *IntegrityCheckpoint) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAgent queries the "agent" edge of the IntegrityCheckpoint entity.
func (_m *IntegrityCheckpoint) QueryAgent() *AgentQuery {
	return NewIntegrityCheckpointClient(_m.config).QueryAgent(_m)
}

// Update returns a builder for updating this IntegrityCheckpoint.
// Note that you need to call IntegrityCheckpoint.Unwrap() before calling this method if this IntegrityCheckpoint
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *IntegrityCheckpoint) Update() *IntegrityCheckpointUpdateOne {
	return NewIntegrityCheckpointClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the IntegrityCheckpoint entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *IntegrityCheckpoint) Unwrap() *IntegrityCheckpoint {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: IntegrityCheckpoint is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *IntegrityCheckpoint) String() string {
	var builder strings.Builder
	builder.WriteString("IntegrityCheckpoint(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	builder.WriteString("card_id=")
	builder.WriteString(_m.CardID)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("provider=")
	builder.WriteString(fmt.Sprintf("%v", _m.Provider))
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("thinking_block_hash=")
	builder.WriteString(_m.ThinkingBlockHash)
	builder.WriteString(", ")
	builder.WriteString("verdict=")
	builder.WriteString(fmt.Sprintf("%v", _m.Verdict))
	builder.WriteString(", ")
	builder.WriteString("concerns=")
	builder.WriteString(fmt.Sprintf("%v", _m.Concerns))
	builder.WriteString(", ")
	builder.WriteString("reasoning_summary=")
	builder.WriteString(_m.ReasoningSummary)
	builder.WriteString(", ")
	builder.WriteString("conscience_context=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConscienceContext))
	builder.WriteString(", ")
	builder.WriteString("window_position=")
	builder.WriteString(fmt.Sprintf("%v", _m.WindowPosition))
	builder.WriteString(", ")
	builder.WriteString("analysis_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.AnalysisMetadata))
	builder.WriteString(", ")
	if v := _m.LinkedTraceID; v != nil {
		builder.WriteString("linked_trace_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(fmt.Sprintf("%v", _m.Source))
	builder.WriteString(", ")
	builder.WriteString("synthetic=")
	builder.WriteString(fmt.Sprintf("%v", _m.Synthetic))
	builder.WriteString(", ")
	builder.WriteString("input_commitment=")
	builder.WriteString(_m.InputCommitment)
	builder.WriteString(", ")
	builder.WriteString("chain_hash=")
	builder.WriteString(_m.ChainHash)
	builder.WriteString(", ")
	builder.WriteString("prev_chain_hash=")
	builder.WriteString(_m.PrevChainHash)
	builder.WriteString(", ")
	if v := _m.MerkleLeafIndex; v != nil {
		builder.WriteString("merkle_leaf_index=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("certificate_id=")
	builder.WriteString(_m.CertificateID)
	builder.WriteString(", ")
	builder.WriteString("signature=")
	builder.WriteString(_m.Signature)
	builder.WriteString(", ")
	builder.WriteString("signing_key_id=")
	builder.WriteString(_m.SigningKeyID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// IntegrityCheckpoints is a parsable slice of IntegrityCheckpoint.
type IntegrityCheckpoints []*IntegrityCheckpoint
