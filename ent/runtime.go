// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/mnemom/smoltbot/ent/agent"
	"github.com/mnemom/smoltbot/ent/alignmentcard"
	"github.com/mnemom/smoltbot/ent/auditlog"
	"github.com/mnemom/smoltbot/ent/integritycheckpoint"
	"github.com/mnemom/smoltbot/ent/merkletree"
	"github.com/mnemom/smoltbot/ent/nudge"
	"github.com/mnemom/smoltbot/ent/schema"
	"github.com/mnemom/smoltbot/ent/webhookdelivery"
	"github.com/mnemom/smoltbot/ent/webhookendpoint"
	"github.com/mnemom/smoltbot/ent/webhookevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentFields := schema.Agent{}.Fields()
	_ = agentFields
	// agentDescNudgeRate is the schema descriptor for nudge_rate field.
	agentDescNudgeRate := agentFields[7].Descriptor()
	// agent.DefaultNudgeRate holds the default value on creation for the nudge_rate field.
	agent.DefaultNudgeRate = agentDescNudgeRate.Default.(int)
	// agentDescNudgeThreshold is the schema descriptor for nudge_threshold field.
	agentDescNudgeThreshold := agentFields[8].Descriptor()
	// agent.DefaultNudgeThreshold holds the default value on creation for the nudge_threshold field.
	agent.DefaultNudgeThreshold = agentDescNudgeThreshold.Default.(int)
	// agentDescAipDisabled is the schema descriptor for aip_disabled field.
	agentDescAipDisabled := agentFields[9].Descriptor()
	// agent.DefaultAipDisabled holds the default value on creation for the aip_disabled field.
	agent.DefaultAipDisabled = agentDescAipDisabled.Default.(bool)
	// agentDescCreatedAt is the schema descriptor for created_at field.
	agentDescCreatedAt := agentFields[10].Descriptor()
	// agent.DefaultCreatedAt holds the default value on creation for the created_at field.
	agent.DefaultCreatedAt = agentDescCreatedAt.Default.(func() time.Time)
	// agentDescUpdatedAt is the schema descriptor for updated_at field.
	agentDescUpdatedAt := agentFields[11].Descriptor()
	// agent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agent.DefaultUpdatedAt = agentDescUpdatedAt.Default.(func() time.Time)
	// agent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agent.UpdateDefaultUpdatedAt = agentDescUpdatedAt.UpdateDefault.(func() time.Time)
	alignmentcardFields := schema.AlignmentCard{}.Fields()
	_ = alignmentcardFields
	// alignmentcardDescIsActive is the schema descriptor for is_active field.
	alignmentcardDescIsActive := alignmentcardFields[10].Descriptor()
	// alignmentcard.DefaultIsActive holds the default value on creation for the is_active field.
	alignmentcard.DefaultIsActive = alignmentcardDescIsActive.Default.(bool)
	// alignmentcardDescCreatedAt is the schema descriptor for created_at field.
	alignmentcardDescCreatedAt := alignmentcardFields[11].Descriptor()
	// alignmentcard.DefaultCreatedAt holds the default value on creation for the created_at field.
	alignmentcard.DefaultCreatedAt = alignmentcardDescCreatedAt.Default.(func() time.Time)
	// alignmentcardDescUpdatedAt is the schema descriptor for updated_at field.
	alignmentcardDescUpdatedAt := alignmentcardFields[12].Descriptor()
	// alignmentcard.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	alignmentcard.DefaultUpdatedAt = alignmentcardDescUpdatedAt.Default.(func() time.Time)
	// alignmentcard.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	alignmentcard.UpdateDefaultUpdatedAt = alignmentcardDescUpdatedAt.UpdateDefault.(func() time.Time)
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogFields[8].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	integritycheckpointFields := schema.IntegrityCheckpoint{}.Fields()
	_ = integritycheckpointFields
	// integritycheckpointDescSynthetic is the schema descriptor for synthetic field.
	integritycheckpointDescSynthetic := integritycheckpointFields[16].Descriptor()
	// integritycheckpoint.DefaultSynthetic holds the default value on creation for the synthetic field.
	integritycheckpoint.DefaultSynthetic = integritycheckpointDescSynthetic.Default.(bool)
	// integritycheckpointDescCreatedAt is the schema descriptor for created_at field.
	integritycheckpointDescCreatedAt := integritycheckpointFields[24].Descriptor()
	// integritycheckpoint.DefaultCreatedAt holds the default value on creation for the created_at field.
	integritycheckpoint.DefaultCreatedAt = integritycheckpointDescCreatedAt.Default.(func() time.Time)
	merkletreeFields := schema.MerkleTree{}.Fields()
	_ = merkletreeFields
	// merkletreeDescDepth is the schema descriptor for depth field.
	merkletreeDescDepth := merkletreeFields[3].Descriptor()
	// merkletree.DefaultDepth holds the default value on creation for the depth field.
	merkletree.DefaultDepth = merkletreeDescDepth.Default.(int)
	// merkletreeDescLeafCount is the schema descriptor for leaf_count field.
	merkletreeDescLeafCount := merkletreeFields[4].Descriptor()
	// merkletree.DefaultLeafCount holds the default value on creation for the leaf_count field.
	merkletree.DefaultLeafCount = merkletreeDescLeafCount.Default.(int)
	// merkletreeDescUpdatedAt is the schema descriptor for updated_at field.
	merkletreeDescUpdatedAt := merkletreeFields[6].Descriptor()
	// merkletree.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	merkletree.DefaultUpdatedAt = merkletreeDescUpdatedAt.Default.(func() time.Time)
	// merkletree.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	merkletree.UpdateDefaultUpdatedAt = merkletreeDescUpdatedAt.UpdateDefault.(func() time.Time)
	nudgeFields := schema.Nudge{}.Fields()
	_ = nudgeFields
	// nudgeDescCreatedAt is the schema descriptor for created_at field.
	nudgeDescCreatedAt := nudgeFields[6].Descriptor()
	// nudge.DefaultCreatedAt holds the default value on creation for the created_at field.
	nudge.DefaultCreatedAt = nudgeDescCreatedAt.Default.(func() time.Time)
	webhookdeliveryFields := schema.WebhookDelivery{}.Fields()
	_ = webhookdeliveryFields
	// webhookdeliveryDescAttemptCount is the schema descriptor for attempt_count field.
	webhookdeliveryDescAttemptCount := webhookdeliveryFields[4].Descriptor()
	// webhookdelivery.DefaultAttemptCount holds the default value on creation for the attempt_count field.
	webhookdelivery.DefaultAttemptCount = webhookdeliveryDescAttemptCount.Default.(int)
	// webhookdeliveryDescMaxAttempts is the schema descriptor for max_attempts field.
	webhookdeliveryDescMaxAttempts := webhookdeliveryFields[5].Descriptor()
	// webhookdelivery.DefaultMaxAttempts holds the default value on creation for the max_attempts field.
	webhookdelivery.DefaultMaxAttempts = webhookdeliveryDescMaxAttempts.Default.(int)
	// webhookdeliveryDescCreatedAt is the schema descriptor for created_at field.
	webhookdeliveryDescCreatedAt := webhookdeliveryFields[13].Descriptor()
	// webhookdelivery.DefaultCreatedAt holds the default value on creation for the created_at field.
	webhookdelivery.DefaultCreatedAt = webhookdeliveryDescCreatedAt.Default.(func() time.Time)
	// webhookdeliveryDescUpdatedAt is the schema descriptor for updated_at field.
	webhookdeliveryDescUpdatedAt := webhookdeliveryFields[14].Descriptor()
	// webhookdelivery.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	webhookdelivery.DefaultUpdatedAt = webhookdeliveryDescUpdatedAt.Default.(func() time.Time)
	// webhookdelivery.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	webhookdelivery.UpdateDefaultUpdatedAt = webhookdeliveryDescUpdatedAt.UpdateDefault.(func() time.Time)
	webhookendpointFields := schema.WebhookEndpoint{}.Fields()
	_ = webhookendpointFields
	// webhookendpointDescIsActive is the schema descriptor for is_active field.
	webhookendpointDescIsActive := webhookendpointFields[6].Descriptor()
	// webhookendpoint.DefaultIsActive holds the default value on creation for the is_active field.
	webhookendpoint.DefaultIsActive = webhookendpointDescIsActive.Default.(bool)
	// webhookendpointDescConsecutiveFailures is the schema descriptor for consecutive_failures field.
	webhookendpointDescConsecutiveFailures := webhookendpointFields[7].Descriptor()
	// webhookendpoint.DefaultConsecutiveFailures holds the default value on creation for the consecutive_failures field.
	webhookendpoint.DefaultConsecutiveFailures = webhookendpointDescConsecutiveFailures.Default.(int)
	// webhookendpointDescCreatedAt is the schema descriptor for created_at field.
	webhookendpointDescCreatedAt := webhookendpointFields[10].Descriptor()
	// webhookendpoint.DefaultCreatedAt holds the default value on creation for the created_at field.
	webhookendpoint.DefaultCreatedAt = webhookendpointDescCreatedAt.Default.(func() time.Time)
	// webhookendpointDescUpdatedAt is the schema descriptor for updated_at field.
	webhookendpointDescUpdatedAt := webhookendpointFields[11].Descriptor()
	// webhookendpoint.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	webhookendpoint.DefaultUpdatedAt = webhookendpointDescUpdatedAt.Default.(func() time.Time)
	// webhookendpoint.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	webhookendpoint.UpdateDefaultUpdatedAt = webhookendpointDescUpdatedAt.UpdateDefault.(func() time.Time)
	webhookeventFields := schema.WebhookEvent{}.Fields()
	_ = webhookeventFields
	// webhookeventDescCreatedAt is the schema descriptor for created_at field.
	webhookeventDescCreatedAt := webhookeventFields[4].Descriptor()
	// webhookevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	webhookevent.DefaultCreatedAt = webhookeventDescCreatedAt.Default.(func() time.Time)
}
