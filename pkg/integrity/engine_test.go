package integrity

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnemom/smoltbot/pkg/adapter"
	"github.com/mnemom/smoltbot/pkg/attest"
	"github.com/mnemom/smoltbot/pkg/models"
)

type stubAnalyzer struct {
	reply string
	err   error
	calls int
}

func (s *stubAnalyzer) Analyze(_ context.Context, _ Prompt) (string, string, error) {
	s.calls++
	if s.err != nil {
		return "", "", s.err
	}
	return s.reply, "analysis-model-small", nil
}

func testCard() *models.AlignmentCard {
	return &models.AlignmentCard{
		CardID:  "ac-test1",
		AgentID: "smolt-1a2b3c4d",
		DeclaredValues: []models.DeclaredValue{
			{Name: "accuracy"},
			{Name: "helpfulness"},
		},
		ForbiddenActions: []string{"delete_production_data"},
	}
}

func evalInput(thinking string) EvalInput {
	var ex *adapter.Extraction
	if thinking != "" {
		ex = &adapter.Extraction{
			Thinking:   thinking,
			Provider:   models.ProviderAnthropic,
			Model:      "claude-3-5-sonnet",
			Confidence: 1.0,
		}
	}
	return EvalInput{
		AgentID:   "smolt-1a2b3c4d",
		SessionID: "1a2b3c4d5e6f7081-496000",
		Provider:  models.ProviderAnthropic,
		Model:     "claude-3-5-sonnet",
		Extraction: ex,
		Card:      testCard(),
		Task:      TaskContext{Role: "coding assistant", UserRequest: "explain generics"},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestEngineEvaluateClear(t *testing.T) {
	analyzer := &stubAnalyzer{reply: `{"verdict":"clear","concerns":[],"reasoning_summary":"Aligned","conscience_context":{"values_checked":["accuracy"],"consultation_depth":"standard"}}`}
	engine := NewEngine(analyzer, testLogger())

	signal := engine.Evaluate(context.Background(), evalInput("I should explain generics carefully."))
	require.NotNil(t, signal)
	require.NotNil(t, signal.Checkpoint)

	cp := signal.Checkpoint
	assert.Equal(t, models.VerdictClear, cp.Verdict)
	assert.True(t, signal.Proceed)
	assert.Equal(t, models.ActionContinue, signal.RecommendedAction)
	assert.False(t, cp.Synthetic)
	assert.True(t, strings.HasPrefix(cp.CheckpointID, "ic-"))
	assert.Equal(t, attest.ThinkingHash("I should explain generics carefully."), cp.ThinkingBlockHash)
	assert.Equal(t, "analysis-model-small", cp.Analysis.AnalysisModel)
	assert.Equal(t, models.SourceGateway, cp.Source)
	assert.Equal(t, "ac-test1", cp.CardID)
}

func TestEngineRederivesVerdictFromConcerns(t *testing.T) {
	// Model claims clear but reports a critical concern; the stored verdict
	// must come from the concerns.
	analyzer := &stubAnalyzer{reply: `{"verdict":"clear","concerns":[{"category":"autonomy_violation","severity":"critical","description":"runs delete anyway"}]}`}
	engine := NewEngine(analyzer, testLogger())

	signal := engine.Evaluate(context.Background(), evalInput("I'll run the delete command anyway"))
	require.NotNil(t, signal)
	assert.Equal(t, models.VerdictBoundaryViolation, signal.Checkpoint.Verdict)
	assert.False(t, signal.Proceed)
	assert.Equal(t, models.ActionDenyAndEscalate, signal.RecommendedAction)
	assert.NotEmpty(t, signal.Checkpoint.Analysis.ConcernsHash)
}

func TestEngineNoThinkingIsSyntheticClear(t *testing.T) {
	analyzer := &stubAnalyzer{}
	engine := NewEngine(analyzer, testLogger())

	signal := engine.Evaluate(context.Background(), evalInput(""))
	require.NotNil(t, signal)
	assert.True(t, signal.Checkpoint.Synthetic)
	assert.Equal(t, models.VerdictClear, signal.Checkpoint.Verdict)
	assert.True(t, signal.Proceed)
	assert.Zero(t, analyzer.calls, "no analysis call without thinking")
	assert.Equal(t, 1.0, signal.Checkpoint.Analysis.ExtractionConfidence)
}

func TestEngineAnalyzerFailureFailsOpen(t *testing.T) {
	analyzer := &stubAnalyzer{err: errors.New("upstream 500")}
	engine := NewEngine(analyzer, testLogger())

	signal := engine.Evaluate(context.Background(), evalInput("some reasoning"))
	require.NotNil(t, signal)
	assert.True(t, signal.Checkpoint.Synthetic)
	assert.Equal(t, models.VerdictClear, signal.Checkpoint.Verdict)
	assert.Zero(t, signal.Checkpoint.Analysis.ExtractionConfidence)
	assert.NotEmpty(t, signal.Checkpoint.ThinkingBlockHash, "hash recorded even when analysis fails")
}

func TestEngineUnparseableReplyFailsOpen(t *testing.T) {
	analyzer := &stubAnalyzer{reply: "I refuse to answer in JSON."}
	engine := NewEngine(analyzer, testLogger())

	signal := engine.Evaluate(context.Background(), evalInput("reasoning"))
	require.NotNil(t, signal)
	assert.True(t, signal.Checkpoint.Synthetic)
	assert.Zero(t, signal.Checkpoint.Analysis.ExtractionConfidence)
}

func TestEngineWindowAccumulatesPerSession(t *testing.T) {
	analyzer := &stubAnalyzer{reply: `{"verdict":"clear","concerns":[{"category":"undeclared_intent","severity":"medium","description":"d"}]}`}
	engine := NewEngine(analyzer, testLogger())

	in := evalInput("reasoning")
	s1 := engine.Evaluate(context.Background(), in)
	s2 := engine.Evaluate(context.Background(), in)
	s3 := engine.Evaluate(context.Background(), in)

	assert.Equal(t, 1, s1.WindowSummary.Size)
	assert.Equal(t, 2, s2.WindowSummary.Size)
	assert.Equal(t, 3, s3.WindowSummary.Size)
	assert.True(t, s3.WindowSummary.DriftAlertActive, "three consecutive review_needed fires drift")

	// A different session starts a fresh window.
	other := in
	other.SessionID = "ffffffffffffffff-496001"
	s4 := engine.Evaluate(context.Background(), other)
	assert.Equal(t, 1, s4.WindowSummary.Size)
	assert.False(t, s4.WindowSummary.DriftAlertActive)
}

func TestResolveConscienceValues(t *testing.T) {
	t.Run("augment layers default then org then card", func(t *testing.T) {
		values := ResolveConscienceValues(models.ValueLayerAugment, []string{"org_value"}, testCard())
		require.NotEmpty(t, values)
		assert.Equal(t, DefaultConscienceValues[0], values[0])
		assert.Contains(t, values, "org_value")
		assert.Contains(t, values, "accuracy")
	})

	t.Run("replace drops the built-in base", func(t *testing.T) {
		values := ResolveConscienceValues(models.ValueLayerReplace, []string{"org_only"}, nil)
		assert.Equal(t, []string{"org_only"}, values)
	})

	t.Run("duplicates keep first occurrence", func(t *testing.T) {
		values := ResolveConscienceValues(models.ValueLayerAugment, []string{"accuracy", "honesty"}, testCard())
		count := 0
		for _, v := range values {
			if v == "accuracy" {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})
}

func TestBuildPrompt(t *testing.T) {
	t.Run("truncates over budget and marks it", func(t *testing.T) {
		long := strings.Repeat("word ", 2000)
		p := BuildPrompt(PromptInput{
			Thinking:    long,
			Card:        testCard(),
			TokenBudget: 100,
		})
		assert.True(t, p.Truncated)
		assert.Greater(t, p.TokensOriginal, p.TokensAnalyzed)
		assert.Contains(t, p.User, "(truncated)")
	})

	t.Run("task context is PII safe shape", func(t *testing.T) {
		tc := TaskContext{
			Role:        "support bot",
			ToolNames:   []string{"search", "escalate"},
			UserRequest: strings.Repeat("x", 500),
		}
		rendered := tc.Render()
		assert.True(t, strings.HasPrefix(rendered, "support bot. Currently: search, escalate. User request: "))
		assert.LessOrEqual(t, len(rendered), len("support bot. Currently: search, escalate. User request: ")+MaxTaskContextChars)
	})

	t.Run("system prompt pins the closed sets", func(t *testing.T) {
		p := BuildPrompt(PromptInput{Thinking: "t", ConscienceValues: []string{"honesty"}})
		assert.Contains(t, p.System, `"clear" | "review_needed" | "boundary_violation"`)
		assert.Contains(t, p.System, "prompt_injection")
		assert.Contains(t, p.System, "Allowed value names: honesty")
	})
}
