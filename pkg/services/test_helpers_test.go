package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mnemom/smoltbot/ent"
	"github.com/mnemom/smoltbot/pkg/ids"
	"github.com/mnemom/smoltbot/pkg/models"
	testdb "github.com/mnemom/smoltbot/test/database"
)

// newTestEnt returns a per-test database client.
func newTestEnt(t *testing.T) *ent.Client {
	return testdb.NewTestClient(t).Client
}

// makeAgent creates an agent row with default policy settings.
func makeAgent(t *testing.T, client *ent.Client, credential string) *ent.Agent {
	t.Helper()
	hash := ids.AgentHash(credential)
	ag, err := client.Agent.Create().
		SetID(ids.AgentID(hash)).
		SetAgentHash(hash).
		Save(context.Background())
	require.NoError(t, err)
	return ag
}

// makeCheckpoint builds a minimal stored checkpoint for the agent.
func makeCheckpoint(ag *ent.Agent, verdict models.Verdict, at time.Time) *models.IntegrityCheckpoint {
	return &models.IntegrityCheckpoint{
		CheckpointID:      ids.NewCheckpointID(),
		AgentID:           ag.ID,
		SessionID:         ids.SessionID(ag.AgentHash, at.Unix()),
		Timestamp:         at,
		Provider:          models.ProviderAnthropic,
		Model:             "claude-sonnet-4-5",
		ThinkingBlockHash: "ab12cd34",
		Verdict:           verdict,
		Conscience: models.ConscienceContext{
			ValuesChecked:     []string{"honesty", "transparency"},
			ConsultationDepth: models.DepthStandard,
		},
		Window: models.WindowPosition{Index: 0, WindowSize: 1},
		Analysis: models.AnalysisMetadata{
			AnalysisModel:        "claude-haiku-4-5-20251001",
			ExtractionConfidence: 1.0,
		},
		Source: models.SourceGateway,
	}
}
