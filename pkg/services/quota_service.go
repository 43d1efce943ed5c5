package services

import (
	"context"
	"fmt"

	"github.com/mnemom/smoltbot/ent"
	"github.com/mnemom/smoltbot/pkg/models"
)

// QuotaService resolves the quota context consumed by the gateway's
// admission decision. Billing fields (plan, counters, subscription state)
// belong to an external system of record; this resolver owns the containment
// and per-agent policy half and fills the rest with free-tier defaults.
// It satisfies quota.Resolver.
type QuotaService struct {
	client *ent.Client
}

// NewQuotaService creates a new QuotaService.
func NewQuotaService(client *ent.Client) *QuotaService {
	if client == nil {
		panic("NewQuotaService: client must not be nil")
	}
	return &QuotaService{client: client}
}

// ResolveQuotaContext builds the quota context for an agent. An unknown
// agent resolves to the free tier: admission must not fail on a race with
// lazy agent creation.
func (s *QuotaService) ResolveQuotaContext(ctx context.Context, agentID string) (*models.QuotaContext, error) {
	qc := models.FreeTierQuotaContext()

	ag, err := s.client.Agent.Get(ctx, agentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return qc, nil
		}
		return nil, fmt.Errorf("failed to resolve agent for quota: %w", err)
	}

	qc.AccountID = ag.AccountID
	qc.ContainmentStatus = models.ContainmentStatus(ag.ContainmentStatus)
	qc.AgentSettings = map[string]any{
		"enforcement_mode": string(ag.EnforcementMode),
		"nudge_strategy":   string(ag.NudgeStrategy),
		"nudge_rate":       ag.NudgeRate,
		"nudge_threshold":  ag.NudgeThreshold,
		"aip_disabled":     ag.AipDisabled,
	}
	if ag.AutoContainmentThreshold != nil {
		qc.AgentSettings["auto_containment_threshold"] = *ag.AutoContainmentThreshold
	}
	return qc, nil
}
