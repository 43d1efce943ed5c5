package models

import "time"

// Agent is the identity record derived from the provider API key.
// Created lazily on the first request bearing an unseen key; never deleted,
// but may be contained.
type Agent struct {
	ID                       string            `json:"id"`
	AgentHash                string            `json:"agent_hash"`
	EnforcementMode          EnforcementMode   `json:"enforcement_mode"`
	ContainmentStatus        ContainmentStatus `json:"containment_status"`
	AutoContainmentThreshold int               `json:"auto_containment_threshold,omitempty"`
	NudgeStrategy            NudgeStrategy     `json:"nudge_strategy,omitempty"`
	NudgeRate                int               `json:"nudge_rate,omitempty"`
	NudgeThreshold           int               `json:"nudge_threshold,omitempty"`
	AIPDisabled              bool              `json:"aip_disabled,omitempty"`
	CreatedAt                time.Time         `json:"created_at"`
}

// Nudge is a pending system-prompt correction for an agent.
type Nudge struct {
	NudgeID         string      `json:"nudge_id"`
	AgentID         string      `json:"agent_id"`
	CheckpointID    string      `json:"checkpoint_id"`
	SessionID       string      `json:"session_id"`
	Status          NudgeStatus `json:"status"`
	Content         string      `json:"content"`
	ConcernsSummary string      `json:"concerns_summary"`
	CreatedAt       time.Time   `json:"created_at"`
	DeliveredAt     *time.Time  `json:"delivered_at,omitempty"`
	ExpiredAt       *time.Time  `json:"expired_at,omitempty"`
}

// NudgeTTL is the maximum lifetime of a pending nudge.
const NudgeTTL = 4 * time.Hour

// MaxNudgesPerRequest caps how many pending nudges are injected at once.
const MaxNudgesPerRequest = 5

// AuditRecord captures a state transition performed on an agent.
type AuditRecord struct {
	AgentID        string    `json:"agent_id"`
	Action         string    `json:"action"`
	Actor          string    `json:"actor"`
	Reason         string    `json:"reason"`
	PreviousStatus string    `json:"previous_status"`
	NewStatus      string    `json:"new_status"`
	CreatedAt      time.Time `json:"created_at"`
}
