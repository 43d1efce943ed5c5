// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeString, Unique: true},
		{Name: "agent_hash", Type: field.TypeString, Unique: true},
		{Name: "account_id", Type: field.TypeString, Nullable: true},
		{Name: "enforcement_mode", Type: field.TypeEnum, Enums: []string{"observe", "nudge", "enforce"}, Default: "observe"},
		{Name: "containment_status", Type: field.TypeEnum, Enums: []string{"active", "paused", "killed"}, Default: "active"},
		{Name: "auto_containment_threshold", Type: field.TypeInt, Nullable: true},
		{Name: "nudge_strategy", Type: field.TypeEnum, Enums: []string{"always", "sampling", "threshold", "off"}, Default: "always"},
		{Name: "nudge_rate", Type: field.TypeInt, Default: 100},
		{Name: "nudge_threshold", Type: field.TypeInt, Default: 1},
		{Name: "aip_disabled", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agent_agent_hash",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[1]},
			},
			{
				Name:    "agent_account_id",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[2]},
			},
			{
				Name:    "agent_containment_status",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[4]},
			},
		},
	}
	// AlignmentCardsColumns holds the columns for the "alignment_cards" table.
	AlignmentCardsColumns = []*schema.Column{
		{Name: "card_id", Type: field.TypeString, Unique: true},
		{Name: "principal", Type: field.TypeString, Nullable: true},
		{Name: "role", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "declared_values", Type: field.TypeJSON},
		{Name: "bounded_actions", Type: field.TypeJSON, Nullable: true},
		{Name: "forbidden_actions", Type: field.TypeJSON, Nullable: true},
		{Name: "escalation_triggers", Type: field.TypeJSON, Nullable: true},
		{Name: "audit_commitment", Type: field.TypeString, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "agent_id", Type: field.TypeString},
	}
	// AlignmentCardsTable holds the schema information for the "alignment_cards" table.
	AlignmentCardsTable = &schema.Table{
		Name:       "alignment_cards",
		Columns:    AlignmentCardsColumns,
		PrimaryKey: []*schema.Column{AlignmentCardsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "alignment_cards_agents_cards",
				Columns:    []*schema.Column{AlignmentCardsColumns[12]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "alignmentcard_agent_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{AlignmentCardsColumns[12], AlignmentCardsColumns[9]},
			},
		},
	}
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "audit_id", Type: field.TypeString, Unique: true},
		{Name: "action", Type: field.TypeString},
		{Name: "actor", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString, Nullable: true},
		{Name: "previous_status", Type: field.TypeString, Nullable: true},
		{Name: "new_status", Type: field.TypeString, Nullable: true},
		{Name: "detail", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "agent_id", Type: field.TypeString},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "audit_logs_agents_audit_logs",
				Columns:    []*schema.Column{AuditLogsColumns[8]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_action",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1]},
			},
			{
				Name:    "auditlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[7]},
			},
		},
	}
	// IntegrityCheckpointsColumns holds the columns for the "integrity_checkpoints" table.
	IntegrityCheckpointsColumns = []*schema.Column{
		{Name: "checkpoint_id", Type: field.TypeString, Unique: true},
		{Name: "card_id", Type: field.TypeString, Nullable: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeEnum, Enums: []string{"anthropic", "openai", "gemini"}},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "thinking_block_hash", Type: field.TypeString, Nullable: true},
		{Name: "verdict", Type: field.TypeEnum, Enums: []string{"clear", "review_needed", "boundary_violation"}},
		{Name: "concerns", Type: field.TypeJSON, Nullable: true},
		{Name: "reasoning_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "conscience_context", Type: field.TypeJSON, Nullable: true},
		{Name: "window_position", Type: field.TypeJSON, Nullable: true},
		{Name: "analysis_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "linked_trace_id", Type: field.TypeString, Nullable: true},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"gateway", "observer", "hybrid"}, Default: "gateway"},
		{Name: "synthetic", Type: field.TypeBool, Default: false},
		{Name: "input_commitment", Type: field.TypeString, Nullable: true},
		{Name: "chain_hash", Type: field.TypeString, Nullable: true},
		{Name: "prev_chain_hash", Type: field.TypeString, Nullable: true},
		{Name: "merkle_leaf_index", Type: field.TypeInt, Nullable: true},
		{Name: "certificate_id", Type: field.TypeString, Nullable: true},
		{Name: "signature", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "signing_key_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "agent_id", Type: field.TypeString},
	}
	// IntegrityCheckpointsTable holds the schema information for the "integrity_checkpoints" table.
	IntegrityCheckpointsTable = &schema.Table{
		Name:       "integrity_checkpoints",
		Columns:    IntegrityCheckpointsColumns,
		PrimaryKey: []*schema.Column{IntegrityCheckpointsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "integrity_checkpoints_agents_checkpoints",
				Columns:    []*schema.Column{IntegrityCheckpointsColumns[24]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "integritycheckpoint_session_id",
				Unique:  false,
				Columns: []*schema.Column{IntegrityCheckpointsColumns[2]},
			},
			{
				Name:    "integritycheckpoint_verdict",
				Unique:  false,
				Columns: []*schema.Column{IntegrityCheckpointsColumns[7]},
			},
			{
				Name:    "integritycheckpoint_agent_id_session_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{IntegrityCheckpointsColumns[24], IntegrityCheckpointsColumns[2], IntegrityCheckpointsColumns[3]},
			},
			{
				Name:    "integritycheckpoint_chain_hash",
				Unique:  false,
				Columns: []*schema.Column{IntegrityCheckpointsColumns[17]},
				Annotation: &entsql.IndexAnnotation{
					Where: "chain_hash <> ''",
				},
			},
		},
	}
	// MerkleTreesColumns holds the columns for the "merkle_trees" table.
	MerkleTreesColumns = []*schema.Column{
		{Name: "tree_id", Type: field.TypeString, Unique: true},
		{Name: "root", Type: field.TypeString},
		{Name: "depth", Type: field.TypeInt, Default: 0},
		{Name: "leaf_count", Type: field.TypeInt, Default: 0},
		{Name: "leaves", Type: field.TypeJSON},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "agent_id", Type: field.TypeString, Unique: true},
	}
	// MerkleTreesTable holds the schema information for the "merkle_trees" table.
	MerkleTreesTable = &schema.Table{
		Name:       "merkle_trees",
		Columns:    MerkleTreesColumns,
		PrimaryKey: []*schema.Column{MerkleTreesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "merkle_trees_agents_merkle_tree",
				Columns:    []*schema.Column{MerkleTreesColumns[6]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// NudgesColumns holds the columns for the "nudges" table.
	NudgesColumns = []*schema.Column{
		{Name: "nudge_id", Type: field.TypeString, Unique: true},
		{Name: "checkpoint_id", Type: field.TypeString, Nullable: true},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "delivered", "expired"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "delivered_at", Type: field.TypeTime, Nullable: true},
		{Name: "agent_id", Type: field.TypeString},
	}
	// NudgesTable holds the schema information for the "nudges" table.
	NudgesTable = &schema.Table{
		Name:       "nudges",
		Columns:    NudgesColumns,
		PrimaryKey: []*schema.Column{NudgesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "nudges_agents_nudges",
				Columns:    []*schema.Column{NudgesColumns[7]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "nudge_status",
				Unique:  false,
				Columns: []*schema.Column{NudgesColumns[4]},
			},
			{
				Name:    "nudge_agent_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{NudgesColumns[7], NudgesColumns[4], NudgesColumns[5]},
			},
		},
	}
	// WebhookDeliveriesColumns holds the columns for the "webhook_deliveries" table.
	WebhookDeliveriesColumns = []*schema.Column{
		{Name: "delivery_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "delivering", "delivered", "failed", "retrying"}, Default: "pending"},
		{Name: "attempt_count", Type: field.TypeInt, Default: 0},
		{Name: "max_attempts", Type: field.TypeInt, Default: 6},
		{Name: "next_attempt_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_attempt_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_status_code", Type: field.TypeInt, Nullable: true},
		{Name: "last_response_body", Type: field.TypeString, Nullable: true},
		{Name: "latency_ms", Type: field.TypeInt, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "delivered_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "endpoint_id", Type: field.TypeString},
		{Name: "event_id", Type: field.TypeString},
	}
	// WebhookDeliveriesTable holds the schema information for the "webhook_deliveries" table.
	WebhookDeliveriesTable = &schema.Table{
		Name:       "webhook_deliveries",
		Columns:    WebhookDeliveriesColumns,
		PrimaryKey: []*schema.Column{WebhookDeliveriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "webhook_deliveries_webhook_endpoints_deliveries",
				Columns:    []*schema.Column{WebhookDeliveriesColumns[13]},
				RefColumns: []*schema.Column{WebhookEndpointsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "webhook_deliveries_webhook_events_deliveries",
				Columns:    []*schema.Column{WebhookDeliveriesColumns[14]},
				RefColumns: []*schema.Column{WebhookEventsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "webhookdelivery_status",
				Unique:  false,
				Columns: []*schema.Column{WebhookDeliveriesColumns[1]},
			},
			{
				Name:    "webhookdelivery_status_next_attempt_at",
				Unique:  false,
				Columns: []*schema.Column{WebhookDeliveriesColumns[1], WebhookDeliveriesColumns[4]},
			},
			{
				Name:    "webhookdelivery_event_id_endpoint_id",
				Unique:  false,
				Columns: []*schema.Column{WebhookDeliveriesColumns[14], WebhookDeliveriesColumns[13]},
			},
		},
	}
	// WebhookEndpointsColumns holds the columns for the "webhook_endpoints" table.
	WebhookEndpointsColumns = []*schema.Column{
		{Name: "endpoint_id", Type: field.TypeString, Unique: true},
		{Name: "account_id", Type: field.TypeString},
		{Name: "url", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "signing_secret", Type: field.TypeString},
		{Name: "event_types", Type: field.TypeJSON, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "consecutive_failures", Type: field.TypeInt, Default: 0},
		{Name: "disabled_at", Type: field.TypeTime, Nullable: true},
		{Name: "disabled_reason", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// WebhookEndpointsTable holds the schema information for the "webhook_endpoints" table.
	WebhookEndpointsTable = &schema.Table{
		Name:       "webhook_endpoints",
		Columns:    WebhookEndpointsColumns,
		PrimaryKey: []*schema.Column{WebhookEndpointsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "webhookendpoint_account_id",
				Unique:  false,
				Columns: []*schema.Column{WebhookEndpointsColumns[1]},
			},
			{
				Name:    "webhookendpoint_account_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{WebhookEndpointsColumns[1], WebhookEndpointsColumns[6]},
			},
		},
	}
	// WebhookEventsColumns holds the columns for the "webhook_events" table.
	WebhookEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "account_id", Type: field.TypeString},
		{Name: "event_type", Type: field.TypeString},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// WebhookEventsTable holds the schema information for the "webhook_events" table.
	WebhookEventsTable = &schema.Table{
		Name:       "webhook_events",
		Columns:    WebhookEventsColumns,
		PrimaryKey: []*schema.Column{WebhookEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "webhookevent_account_id",
				Unique:  false,
				Columns: []*schema.Column{WebhookEventsColumns[1]},
			},
			{
				Name:    "webhookevent_event_type",
				Unique:  false,
				Columns: []*schema.Column{WebhookEventsColumns[2]},
			},
			{
				Name:    "webhookevent_account_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{WebhookEventsColumns[1], WebhookEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentsTable,
		AlignmentCardsTable,
		AuditLogsTable,
		IntegrityCheckpointsTable,
		MerkleTreesTable,
		NudgesTable,
		WebhookDeliveriesTable,
		WebhookEndpointsTable,
		WebhookEventsTable,
	}
)

func init() {
	AlignmentCardsTable.ForeignKeys[0].RefTable = AgentsTable
	AuditLogsTable.ForeignKeys[0].RefTable = AgentsTable
	IntegrityCheckpointsTable.ForeignKeys[0].RefTable = AgentsTable
	MerkleTreesTable.ForeignKeys[0].RefTable = AgentsTable
	NudgesTable.ForeignKeys[0].RefTable = AgentsTable
	WebhookDeliveriesTable.ForeignKeys[0].RefTable = WebhookEndpointsTable
	WebhookDeliveriesTable.ForeignKeys[1].RefTable = WebhookEventsTable
}
