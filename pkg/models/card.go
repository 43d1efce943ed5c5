package models

// DeclaredValue is a single value in an alignment card, in priority order.
type DeclaredValue struct {
	Name        string `json:"name" yaml:"name"`
	Priority    int    `json:"priority,omitempty" yaml:"priority,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// EscalationTrigger maps a detected condition to a required action.
type EscalationTrigger struct {
	Condition string `json:"condition" yaml:"condition"`
	Action    string `json:"action" yaml:"action"`
	Reason    string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// AlignmentCard declares an agent's values and autonomy envelope.
// Exactly one card is active per agent at any instant.
type AlignmentCard struct {
	CardID             string              `json:"card_id"`
	AgentID            string              `json:"agent_id"`
	Principal          string              `json:"principal,omitempty"`
	Role               string              `json:"role,omitempty"`
	Description        string              `json:"description,omitempty"`
	DeclaredValues     []DeclaredValue     `json:"declared_values"`
	BoundedActions     []string            `json:"bounded_actions"`
	ForbiddenActions   []string            `json:"forbidden_actions"`
	EscalationTriggers []EscalationTrigger `json:"escalation_triggers"`
	AuditCommitment    string              `json:"audit_commitment,omitempty"`
}

// DefaultAlignmentCard is the card minted for an agent seen for the first
// time, before its operator declares anything. Conservative on purpose: core
// values only and no bounded autonomy beyond responding.
func DefaultAlignmentCard(agentID string) *AlignmentCard {
	return &AlignmentCard{
		AgentID: agentID,
		Role:    "AI assistant",
		DeclaredValues: []DeclaredValue{
			{Name: "honesty", Priority: 1},
			{Name: "transparency", Priority: 2},
			{Name: "harm_avoidance", Priority: 3},
		},
		BoundedActions:   []string{"respond", "use_declared_tools"},
		ForbiddenActions: []string{"credential_exfiltration", "self_modification"},
	}
}

// MergeCards combines an organisation-level template with an agent-level card.
// Merge rule: union over declared values, union over forbidden actions, concat
// over escalation triggers (org first). The agent card wins for principal and
// audit commitment. Identity fields (card_id, agent_id) come from the agent card.
func MergeCards(org, agent *AlignmentCard) *AlignmentCard {
	if org == nil {
		return agent
	}
	if agent == nil {
		return org
	}

	merged := &AlignmentCard{
		CardID:          agent.CardID,
		AgentID:         agent.AgentID,
		Principal:       agent.Principal,
		Role:            agent.Role,
		Description:     agent.Description,
		AuditCommitment: agent.AuditCommitment,
	}
	if merged.Principal == "" {
		merged.Principal = org.Principal
	}
	if merged.AuditCommitment == "" {
		merged.AuditCommitment = org.AuditCommitment
	}

	merged.DeclaredValues = unionValues(org.DeclaredValues, agent.DeclaredValues)
	merged.BoundedActions = unionStrings(org.BoundedActions, agent.BoundedActions)
	merged.ForbiddenActions = unionStrings(org.ForbiddenActions, agent.ForbiddenActions)

	merged.EscalationTriggers = make([]EscalationTrigger, 0, len(org.EscalationTriggers)+len(agent.EscalationTriggers))
	merged.EscalationTriggers = append(merged.EscalationTriggers, org.EscalationTriggers...)
	merged.EscalationTriggers = append(merged.EscalationTriggers, agent.EscalationTriggers...)

	return merged
}

// ValueNames returns the declared value names in card order.
func (c *AlignmentCard) ValueNames() []string {
	names := make([]string, 0, len(c.DeclaredValues))
	for _, v := range c.DeclaredValues {
		names = append(names, v.Name)
	}
	return names
}

// HasValue reports whether name is among the card's declared values.
func (c *AlignmentCard) HasValue(name string) bool {
	for _, v := range c.DeclaredValues {
		if v.Name == name {
			return true
		}
	}
	return false
}

// unionValues keeps first-occurrence order: base entries first, then overlay
// entries whose names are not already present.
func unionValues(base, overlay []DeclaredValue) []DeclaredValue {
	seen := make(map[string]struct{}, len(base))
	out := make([]DeclaredValue, 0, len(base)+len(overlay))
	for _, v := range base {
		if _, ok := seen[v.Name]; ok {
			continue
		}
		seen[v.Name] = struct{}{}
		out = append(out, v)
	}
	for _, v := range overlay {
		if _, ok := seen[v.Name]; ok {
			continue
		}
		seen[v.Name] = struct{}{}
		out = append(out, v)
	}
	return out
}

func unionStrings(base, overlay []string) []string {
	seen := make(map[string]struct{}, len(base))
	out := make([]string, 0, len(base)+len(overlay))
	for _, s := range append(append([]string{}, base...), overlay...) {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
