package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"time"

	"github.com/mnemom/smoltbot/ent"
	"github.com/mnemom/smoltbot/ent/nudge"
	"github.com/mnemom/smoltbot/pkg/ids"
	"github.com/mnemom/smoltbot/pkg/models"
)

// NudgeService manages the nudge lifecycle: created on a boundary violation,
// delivered on the agent's next request, expired by a periodic sweep after
// four hours.
type NudgeService struct {
	client      *ent.Client
	checkpoints *CheckpointService

	// intn is injectable for deterministic sampling tests.
	intn func(n int) int
	now  func() time.Time
}

// NewNudgeService creates a new NudgeService.
func NewNudgeService(client *ent.Client, checkpoints *CheckpointService) *NudgeService {
	if client == nil {
		panic("NewNudgeService: client must not be nil")
	}
	if checkpoints == nil {
		panic("NewNudgeService: checkpoints must not be nil")
	}
	return &NudgeService{
		client:      client,
		checkpoints: checkpoints,
		intn:        rand.IntN,
		now:         time.Now,
	}
}

// CreateForViolation creates a pending nudge for a boundary-violation
// checkpoint, subject to the agent's nudge strategy. Returns nil with no
// error when the strategy elects to skip this violation.
func (s *NudgeService) CreateForViolation(ctx context.Context, ag *ent.Agent, cp *models.IntegrityCheckpoint) (*ent.Nudge, error) {
	if ag == nil {
		return nil, NewValidationError("agent", "required")
	}
	if cp == nil || cp.Verdict != models.VerdictBoundaryViolation {
		return nil, NewValidationError("checkpoint", "boundary violation required")
	}

	create, err := s.strategyElects(ctx, ag, cp)
	if err != nil {
		return nil, err
	}
	if !create {
		return nil, nil
	}

	summary := concernsSummary(cp.Concerns)
	row, err := s.client.Nudge.Create().
		SetID(ids.NewNudgeID()).
		SetAgentID(ag.ID).
		SetCheckpointID(cp.CheckpointID).
		SetSessionID(cp.SessionID).
		SetMessage(renderNudge(summary)).
		SetStatus(nudge.StatusPending).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create nudge: %w", err)
	}
	return row, nil
}

// strategyElects applies the agent's nudge strategy at creation time.
func (s *NudgeService) strategyElects(ctx context.Context, ag *ent.Agent, cp *models.IntegrityCheckpoint) (bool, error) {
	switch models.NudgeStrategy(ag.NudgeStrategy) {
	case models.NudgeOff:
		return false, nil
	case models.NudgeSampling:
		return s.intn(100) < ag.NudgeRate, nil
	case models.NudgeThreshold:
		n, err := s.checkpoints.SessionViolationCount(ctx, ag.ID, cp.SessionID)
		if err != nil {
			return false, err
		}
		return n >= ag.NudgeThreshold, nil
	default:
		return true, nil
	}
}

// PendingForAgent returns up to models.MaxNudgesPerRequest pending nudges
// younger than the TTL, oldest first.
func (s *NudgeService) PendingForAgent(ctx context.Context, agentID string) ([]*ent.Nudge, error) {
	cutoff := s.now().Add(-models.NudgeTTL)
	rows, err := s.client.Nudge.Query().
		Where(
			nudge.AgentID(agentID),
			nudge.StatusEQ(nudge.StatusPending),
			nudge.CreatedAtGT(cutoff),
		).
		Order(ent.Asc(nudge.FieldCreatedAt)).
		Limit(models.MaxNudgesPerRequest).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending nudges: %w", err)
	}
	return rows, nil
}

// MarkDelivered transitions the given nudges to delivered. Called after the
// request carrying them was successfully forwarded upstream.
func (s *NudgeService) MarkDelivered(ctx context.Context, nudgeIDs []string) error {
	if len(nudgeIDs) == 0 {
		return nil
	}
	_, err := s.client.Nudge.Update().
		Where(
			nudge.IDIn(nudgeIDs...),
			nudge.StatusEQ(nudge.StatusPending),
		).
		SetStatus(nudge.StatusDelivered).
		SetDeliveredAt(s.now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark nudges delivered: %w", err)
	}
	return nil
}

// ExpireStale transitions pending nudges past the TTL to expired and returns
// the number swept.
func (s *NudgeService) ExpireStale(ctx context.Context) (int, error) {
	cutoff := s.now().Add(-models.NudgeTTL)
	n, err := s.client.Nudge.Update().
		Where(
			nudge.StatusEQ(nudge.StatusPending),
			nudge.CreatedAtLT(cutoff),
		).
		SetStatus(nudge.StatusExpired).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to expire stale nudges: %w", err)
	}
	return n, nil
}

// concernsSummary reduces concerns to their category names. Evidence and
// descriptions may quote user content, so they never reach nudge text.
func concernsSummary(concerns []models.Concern) string {
	seen := make(map[string]struct{}, len(concerns))
	categories := make([]string, 0, len(concerns))
	for _, c := range concerns {
		name := strings.ReplaceAll(string(c.Category), "_", " ")
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		categories = append(categories, name)
	}
	sort.Strings(categories)
	return strings.Join(categories, ", ")
}

// renderNudge builds the generic system-prompt notice.
func renderNudge(summary string) string {
	if summary == "" {
		return "A recent response crossed your declared autonomy boundaries. " +
			"Re-read your alignment card and stay within your declared values and bounded actions."
	}
	return fmt.Sprintf(
		"A recent response raised integrity concerns (%s). "+
			"Re-read your alignment card and stay within your declared values and bounded actions.",
		summary)
}
