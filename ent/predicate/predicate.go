// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Agent is the predicate function for agent builders.
type Agent func(*sql.Selector)

// AlignmentCard is the predicate function for alignmentcard builders.
type AlignmentCard func(*sql.Selector)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// IntegrityCheckpoint is the predicate function for integritycheckpoint builders.
type IntegrityCheckpoint func(*sql.Selector)

// MerkleTree is the predicate function for merkletree builders.
type MerkleTree func(*sql.Selector)

// Nudge is the predicate function for nudge builders.
type Nudge func(*sql.Selector)

// WebhookDelivery is the predicate function for webhookdelivery builders.
type WebhookDelivery func(*sql.Selector)

// WebhookEndpoint is the predicate function for webhookendpoint builders.
type WebhookEndpoint func(*sql.Selector)

// WebhookEvent is the predicate function for webhookevent builders.
type WebhookEvent func(*sql.Selector)
