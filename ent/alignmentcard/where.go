// Code generated by ent, DO NOT EDIT.

package alignmentcard

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mnemom/smoltbot/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldContainsFold(FieldID, id))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldEQ(FieldAgentID, v))
}

// Principal applies equality check predicate on the "principal" field. It's identical to PrincipalEQ.
func Principal(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldEQ(FieldPrincipal, v))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldEQ(FieldRole, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldEQ(FieldDescription, v))
}

// AuditCommitment applies equality check predicate on the "audit_commitment" field. It's identical to AuditCommitmentEQ.
func AuditCommitment(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldEQ(FieldAuditCommitment, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldEQ(FieldUpdatedAt, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldContainsFold(FieldAgentID, v))
}

// PrincipalEQ applies the EQ predicate on the "principal" field.
func PrincipalEQ(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldEQ(FieldPrincipal, v))
}

// PrincipalNEQ applies the NEQ predicate on the "principal" field.
func PrincipalNEQ(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldNEQ(FieldPrincipal, v))
}

// PrincipalIn applies the In predicate on the "principal" field.
func PrincipalIn(vs ...string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldIn(FieldPrincipal, vs...))
}

// PrincipalNotIn applies the NotIn predicate on the "principal" field.
func PrincipalNotIn(vs ...string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldNotIn(FieldPrincipal, vs...))
}

// PrincipalGT applies the GT predicate on the "principal" field.
func PrincipalGT(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldGT(FieldPrincipal, v))
}

// PrincipalGTE applies the GTE predicate on the "principal" field.
func PrincipalGTE(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldGTE(FieldPrincipal, v))
}

// PrincipalLT applies the LT predicate on the "principal" field.
func PrincipalLT(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldLT(FieldPrincipal, v))
}

// PrincipalLTE applies the LTE predicate on the "principal" field.
func PrincipalLTE(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldLTE(FieldPrincipal, v))
}

// PrincipalContains applies the Contains predicate on the "principal" field.
func PrincipalContains(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldContains(FieldPrincipal, v))
}

// PrincipalHasPrefix applies the HasPrefix predicate on the "principal" field.
func PrincipalHasPrefix(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldHasPrefix(FieldPrincipal, v))
}

// PrincipalHasSuffix applies the HasSuffix predicate on the "principal" field.
func PrincipalHasSuffix(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldHasSuffix(FieldPrincipal, v))
}

// PrincipalIsNil applies the IsNil predicate on the "principal" field.
func PrincipalIsNil() predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldIsNull(FieldPrincipal))
}

// PrincipalNotNil applies the NotNil predicate on the "principal" field.
func PrincipalNotNil() predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldNotNull(FieldPrincipal))
}

// PrincipalEqualFold applies the EqualFold predicate on the "principal" field.
func PrincipalEqualFold(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldEqualFold(FieldPrincipal, v))
}

// PrincipalContainsFold applies the ContainsFold predicate on the "principal" field.
func PrincipalContainsFold(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldContainsFold(FieldPrincipal, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldHasSuffix(FieldRole, v))
}

// RoleIsNil applies the IsNil predicate on the "role" field.
func RoleIsNil() predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldIsNull(FieldRole))
}

// RoleNotNil applies the NotNil predicate on the "role" field.
func RoleNotNil() predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldNotNull(FieldRole))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldContainsFold(FieldRole, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldContainsFold(FieldDescription, v))
}

// BoundedActionsIsNil applies the IsNil predicate on the "bounded_actions" field.
func BoundedActionsIsNil() predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldIsNull(FieldBoundedActions))
}

// BoundedActionsNotNil applies the NotNil predicate on the "bounded_actions" field.
func BoundedActionsNotNil() predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldNotNull(FieldBoundedActions))
}

// ForbiddenActionsIsNil applies the IsNil predicate on the "forbidden_actions" field.
func ForbiddenActionsIsNil() predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldIsNull(FieldForbiddenActions))
}

// ForbiddenActionsNotNil applies the NotNil predicate on the "forbidden_actions" field.
func ForbiddenActionsNotNil() predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldNotNull(FieldForbiddenActions))
}

// EscalationTriggersIsNil applies the IsNil predicate on the "escalation_triggers" field.
func EscalationTriggersIsNil() predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldIsNull(FieldEscalationTriggers))
}

// EscalationTriggersNotNil applies the NotNil predicate on the "escalation_triggers" field.
func EscalationTriggersNotNil() predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldNotNull(FieldEscalationTriggers))
}

// AuditCommitmentEQ applies the EQ predicate on the "audit_commitment" field.
func AuditCommitmentEQ(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldEQ(FieldAuditCommitment, v))
}

// AuditCommitmentNEQ applies the NEQ predicate on the "audit_commitment" field.
func AuditCommitmentNEQ(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldNEQ(FieldAuditCommitment, v))
}

// AuditCommitmentIn applies the In predicate on the "audit_commitment" field.
func AuditCommitmentIn(vs ...string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldIn(FieldAuditCommitment, vs...))
}

// AuditCommitmentNotIn applies the NotIn predicate on the "audit_commitment" field.
func AuditCommitmentNotIn(vs ...string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldNotIn(FieldAuditCommitment, vs...))
}

// AuditCommitmentGT applies the GT predicate on the "audit_commitment" field.
func AuditCommitmentGT(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldGT(FieldAuditCommitment, v))
}

// AuditCommitmentGTE applies the GTE predicate on the "audit_commitment" field.
func AuditCommitmentGTE(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldGTE(FieldAuditCommitment, v))
}

// AuditCommitmentLT applies the LT predicate on the "audit_commitment" field.
func AuditCommitmentLT(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldLT(FieldAuditCommitment, v))
}

// AuditCommitmentLTE applies the LTE predicate on the "audit_commitment" field.
func AuditCommitmentLTE(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldLTE(FieldAuditCommitment, v))
}

// AuditCommitmentContains applies the Contains predicate on the "audit_commitment" field.
func AuditCommitmentContains(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldContains(FieldAuditCommitment, v))
}

// AuditCommitmentHasPrefix applies the HasPrefix predicate on the "audit_commitment" field.
func AuditCommitmentHasPrefix(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldHasPrefix(FieldAuditCommitment, v))
}

// AuditCommitmentHasSuffix applies the HasSuffix predicate on the "audit_commitment" field.
func AuditCommitmentHasSuffix(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldHasSuffix(FieldAuditCommitment, v))
}

// AuditCommitmentIsNil applies the IsNil predicate on the "audit_commitment" field.
func AuditCommitmentIsNil() predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldIsNull(FieldAuditCommitment))
}

// AuditCommitmentNotNil applies the NotNil predicate on the "audit_commitment" field.
func AuditCommitmentNotNil() predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldNotNull(FieldAuditCommitment))
}

// AuditCommitmentEqualFold applies the EqualFold predicate on the "audit_commitment" field.
func AuditCommitmentEqualFold(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldEqualFold(FieldAuditCommitment, v))
}

// AuditCommitmentContainsFold applies the ContainsFold predicate on the "audit_commitment" field.
func AuditCommitmentContainsFold(v string) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldContainsFold(FieldAuditCommitment, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldNEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasAgent applies the HasEdge predicate on the "agent" edge.
func HasAgent() predicate.AlignmentCard {
	return predicate.AlignmentCard(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AgentTable, AgentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentWith applies the HasEdge predicate on the "agent" edge with a given conditions (other predicates).
func HasAgentWith(preds ...predicate.Agent) predicate.AlignmentCard {
	return predicate.AlignmentCard(func(s *sql.Selector) {
		step := newAgentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AlignmentCard) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AlignmentCard) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AlignmentCard) predicate.AlignmentCard {
	return predicate.AlignmentCard(sql.NotPredicates(p))
}
