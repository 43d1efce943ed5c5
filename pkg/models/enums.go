package models

// Verdict is the conclusion of an integrity analysis.
type Verdict string

const (
	// VerdictClear indicates no medium-or-higher severity concerns.
	VerdictClear Verdict = "clear"
	// VerdictReviewNeeded indicates at least one medium+ concern below the boundary rules.
	VerdictReviewNeeded Verdict = "review_needed"
	// VerdictBoundaryViolation indicates a critical concern or a high-severity
	// concern in a boundary category.
	VerdictBoundaryViolation Verdict = "boundary_violation"
)

// IsValid checks if the verdict is a member of the closed set.
func (v Verdict) IsValid() bool {
	switch v {
	case VerdictClear, VerdictReviewNeeded, VerdictBoundaryViolation:
		return true
	default:
		return false
	}
}

// Severity grades a concern. Total ordering: low < medium < high < critical.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// IsValid checks if the severity is a member of the closed set.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	default:
		return false
	}
}

// Rank returns the ordinal for severity comparisons (low=0 … critical=3).
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 0
	case SeverityMedium:
		return 1
	case SeverityHigh:
		return 2
	case SeverityCritical:
		return 3
	default:
		return -1
	}
}

// ConcernCategory classifies an integrity concern.
type ConcernCategory string

const (
	ConcernPromptInjection     ConcernCategory = "prompt_injection"
	ConcernValueMisalignment   ConcernCategory = "value_misalignment"
	ConcernAutonomyViolation   ConcernCategory = "autonomy_violation"
	ConcernReasoningCorruption ConcernCategory = "reasoning_corruption"
	ConcernDeceptiveReasoning  ConcernCategory = "deceptive_reasoning"
	ConcernUndeclaredIntent    ConcernCategory = "undeclared_intent"
)

// IsValid checks if the concern category is a member of the closed set.
func (c ConcernCategory) IsValid() bool {
	switch c {
	case ConcernPromptInjection, ConcernValueMisalignment, ConcernAutonomyViolation,
		ConcernReasoningCorruption, ConcernDeceptiveReasoning, ConcernUndeclaredIntent:
		return true
	default:
		return false
	}
}

// Action is the recommended handling for a checkpoint.
type Action string

const (
	ActionContinue        Action = "continue"
	ActionLogAndContinue  Action = "log_and_continue"
	ActionWarnUser        Action = "warn_user"
	ActionDenyAndEscalate Action = "deny_and_escalate"
)

// IsValid checks if the action is a member of the closed set.
func (a Action) IsValid() bool {
	switch a {
	case ActionContinue, ActionLogAndContinue, ActionWarnUser, ActionDenyAndEscalate:
		return true
	default:
		return false
	}
}

// EnforcementMode controls how verdicts affect agent traffic.
type EnforcementMode string

const (
	// EnforcementObserve records checkpoints without intervening.
	EnforcementObserve EnforcementMode = "observe"
	// EnforcementNudge injects corrective system-prompt notices on later requests.
	EnforcementNudge EnforcementMode = "nudge"
	// EnforcementEnforce replaces violating responses with a 403 envelope.
	EnforcementEnforce EnforcementMode = "enforce"
)

// IsValid checks if the enforcement mode is valid.
func (m EnforcementMode) IsValid() bool {
	return m == EnforcementObserve || m == EnforcementNudge || m == EnforcementEnforce
}

// ContainmentStatus is the agent's admission state.
type ContainmentStatus string

const (
	ContainmentActive ContainmentStatus = "active"
	ContainmentPaused ContainmentStatus = "paused"
	ContainmentKilled ContainmentStatus = "killed"
)

// IsValid checks if the containment status is valid.
func (s ContainmentStatus) IsValid() bool {
	return s == ContainmentActive || s == ContainmentPaused || s == ContainmentKilled
}

// CheckpointSource identifies which pipeline produced a checkpoint.
type CheckpointSource string

const (
	// SourceGateway marks real-time checkpoints from the inline pipeline.
	SourceGateway CheckpointSource = "gateway"
	// SourceObserver marks checkpoints produced by post-hoc log processing.
	SourceObserver CheckpointSource = "observer"
	// SourceHybrid marks checkpoints from delegated analysis.
	SourceHybrid CheckpointSource = "hybrid"
)

// IsValid checks if the checkpoint source is valid.
func (s CheckpointSource) IsValid() bool {
	return s == SourceGateway || s == SourceObserver || s == SourceHybrid
}

// ConsultationDepth describes how thoroughly conscience values were consulted.
type ConsultationDepth string

const (
	DepthSurface  ConsultationDepth = "surface"
	DepthStandard ConsultationDepth = "standard"
	DepthDeep     ConsultationDepth = "deep"
)

// IsValid checks if the consultation depth is valid.
func (d ConsultationDepth) IsValid() bool {
	return d == DepthSurface || d == DepthStandard || d == DepthDeep
}

// Provider identifies an upstream LLM provider.
type Provider string

const (
	ProviderAnthropic Provider = "anthropic"
	ProviderOpenAI    Provider = "openai"
	ProviderGemini    Provider = "gemini"
)

// IsValid checks if the provider is supported.
func (p Provider) IsValid() bool {
	return p == ProviderAnthropic || p == ProviderOpenAI || p == ProviderGemini
}

// NudgeStatus is the lifecycle state of a nudge record.
type NudgeStatus string

const (
	NudgePending   NudgeStatus = "pending"
	NudgeDelivered NudgeStatus = "delivered"
	NudgeExpired   NudgeStatus = "expired"
)

// NudgeStrategy selects when violations produce nudges.
type NudgeStrategy string

const (
	// NudgeAlways creates a nudge on every qualifying violation (default).
	NudgeAlways NudgeStrategy = "always"
	// NudgeSampling creates a nudge with probability nudge_rate%.
	NudgeSampling NudgeStrategy = "sampling"
	// NudgeThreshold creates a nudge only after N violations in the session.
	NudgeThreshold NudgeStrategy = "threshold"
	// NudgeOff disables nudge creation.
	NudgeOff NudgeStrategy = "off"
)

// IsValid checks if the nudge strategy is valid.
func (s NudgeStrategy) IsValid() bool {
	return s == NudgeAlways || s == NudgeSampling || s == NudgeThreshold || s == NudgeOff
}

// DeliveryStatus is the lifecycle state of a webhook delivery.
type DeliveryStatus string

const (
	DeliveryPending    DeliveryStatus = "pending"
	DeliveryDelivering DeliveryStatus = "delivering"
	DeliveryDelivered  DeliveryStatus = "delivered"
	DeliveryFailed     DeliveryStatus = "failed"
	DeliveryRetrying   DeliveryStatus = "retrying"
)

// ValueLayerMode controls how org conscience values combine with the built-in list.
type ValueLayerMode string

const (
	// ValueLayerAugment appends org values to the built-in defaults.
	ValueLayerAugment ValueLayerMode = "augment"
	// ValueLayerReplace starts from an empty base list.
	ValueLayerReplace ValueLayerMode = "replace"
)

// Valid reports whether the mode is a defined value layer mode.
func (m ValueLayerMode) Valid() bool {
	return m == ValueLayerAugment || m == ValueLayerReplace
}
