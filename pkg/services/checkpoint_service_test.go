package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnemom/smoltbot/pkg/models"
)

func TestCheckpointService_StoreCheckpoint(t *testing.T) {
	client := newTestEnt(t)
	svc := NewCheckpointService(client)
	ctx := context.Background()
	ag := makeAgent(t, client, "sk-cp")
	now := time.Now().UTC().Truncate(time.Second)

	t.Run("stores and reads back", func(t *testing.T) {
		cp := makeCheckpoint(ag, models.VerdictReviewNeeded, now)
		cp.Concerns = []models.Concern{
			{Category: models.ConcernValueMisalignment, Severity: models.SeverityMedium, Description: "drifting from declared caution"},
		}
		cp.ReasoningSummary = "weighed skipping the backup step"

		require.NoError(t, svc.StoreCheckpoint(ctx, cp))

		row, err := svc.GetCheckpoint(ctx, cp.CheckpointID)
		require.NoError(t, err)
		assert.Equal(t, "review_needed", string(row.Verdict))
		assert.Equal(t, "anthropic", string(row.Provider))
		require.Len(t, row.Concerns, 1)
		assert.Equal(t, "value_misalignment", row.Concerns[0]["category"])
		assert.False(t, row.Synthetic)
	})

	t.Run("first write wins on duplicate id", func(t *testing.T) {
		cp := makeCheckpoint(ag, models.VerdictClear, now)
		require.NoError(t, svc.StoreCheckpoint(ctx, cp))

		dupe := *cp
		dupe.Verdict = models.VerdictBoundaryViolation
		require.NoError(t, svc.StoreCheckpoint(ctx, &dupe))

		row, err := svc.GetCheckpoint(ctx, cp.CheckpointID)
		require.NoError(t, err)
		assert.Equal(t, "clear", string(row.Verdict))
	})

	t.Run("rejects invalid verdict", func(t *testing.T) {
		cp := makeCheckpoint(ag, models.Verdict("suspicious"), now)
		err := svc.StoreCheckpoint(ctx, cp)
		assert.True(t, IsValidationError(err))
	})
}

func TestCheckpointService_RecentVerdicts(t *testing.T) {
	client := newTestEnt(t)
	svc := NewCheckpointService(client)
	ctx := context.Background()
	ag := makeAgent(t, client, "sk-recent")
	base := time.Now().UTC().Add(-time.Hour)

	sequence := []models.Verdict{
		models.VerdictClear,
		models.VerdictBoundaryViolation,
		models.VerdictBoundaryViolation,
		models.VerdictBoundaryViolation,
	}
	for i, v := range sequence {
		cp := makeCheckpoint(ag, v, base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, svc.StoreCheckpoint(ctx, cp))
	}

	verdicts, err := svc.RecentVerdicts(ctx, ag.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, []models.Verdict{
		models.VerdictBoundaryViolation,
		models.VerdictBoundaryViolation,
		models.VerdictBoundaryViolation,
	}, verdicts, "newest first")

	verdicts, err = svc.RecentVerdicts(ctx, ag.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, models.VerdictClear, verdicts[3])
}

func TestCheckpointService_SessionViolationCount(t *testing.T) {
	client := newTestEnt(t)
	svc := NewCheckpointService(client)
	ctx := context.Background()
	ag := makeAgent(t, client, "sk-count")
	now := time.Now().UTC()

	sessionID := ""
	for _, v := range []models.Verdict{models.VerdictBoundaryViolation, models.VerdictClear, models.VerdictBoundaryViolation} {
		cp := makeCheckpoint(ag, v, now)
		sessionID = cp.SessionID
		require.NoError(t, svc.StoreCheckpoint(ctx, cp))
	}

	n, err := svc.SessionViolationCount(ctx, ag.ID, sessionID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestCheckpointService_ExistsForTrace(t *testing.T) {
	client := newTestEnt(t)
	svc := NewCheckpointService(client)
	ctx := context.Background()
	ag := makeAgent(t, client, "sk-trace")

	cp := makeCheckpoint(ag, models.VerdictClear, time.Now().UTC())
	cp.LinkedTraceID = "tr-abc12345"
	require.NoError(t, svc.StoreCheckpoint(ctx, cp))

	exists, err := svc.ExistsForTrace(ctx, "tr-abc12345")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = svc.ExistsForTrace(ctx, "tr-unknown1")
	require.NoError(t, err)
	assert.False(t, exists)
}
