package integrity

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mnemom/smoltbot/pkg/adapter"
	"github.com/mnemom/smoltbot/pkg/attest"
	"github.com/mnemom/smoltbot/pkg/ids"
	"github.com/mnemom/smoltbot/pkg/models"
)

// AnalysisTimeout bounds a single analysis model call, safely below any
// outer subrequest limit.
const AnalysisTimeout = 8 * time.Second

// Analyzer is the analysis model client. Implementations return the raw
// model reply text and the model identifier that produced it.
type Analyzer interface {
	Analyze(ctx context.Context, prompt Prompt) (reply string, model string, err error)
}

// EvalInput carries everything the engine needs for one checkpoint.
type EvalInput struct {
	AgentID    string
	SessionID  string
	Provider   models.Provider
	Model      string
	Extraction *adapter.Extraction
	Card       *models.AlignmentCard
	OrgMode    models.ValueLayerMode
	OrgValues  []string
	Task       TaskContext
	Source     models.CheckpointSource
}

// Engine produces integrity checkpoints and signals. Per-session windows
// live in memory; sessions roll hourly so stale windows are pruned on use.
type Engine struct {
	analyzer Analyzer
	logger   *slog.Logger

	mu      sync.Mutex
	windows map[string]*sessionWindow

	windowCfg   WindowConfig
	tokenBudget int
	now         func() time.Time
}

type sessionWindow struct {
	window  *Window
	touched time.Time
}

const sessionWindowTTL = 2 * time.Hour

// NewEngine builds an engine around the given analysis client.
func NewEngine(analyzer Analyzer, logger *slog.Logger) *Engine {
	return &Engine{
		analyzer:    analyzer,
		logger:      logger.With("component", "integrity.engine"),
		windows:     make(map[string]*sessionWindow),
		windowCfg:   DefaultWindowConfig(),
		tokenBudget: DefaultThinkingTokenBudget,
		now:         time.Now,
	}
}

// Evaluate runs the full analysis pipeline and never returns an error:
// any failure degrades to a synthetic clear checkpoint (fail-open).
func (e *Engine) Evaluate(ctx context.Context, in EvalInput) *models.IntegritySignal {
	window := e.sessionWindowFor(in.SessionID)

	if in.Extraction == nil || !in.Extraction.HasThinking() {
		return e.syntheticSignal(in, window, 1.0)
	}

	values := ResolveConscienceValues(in.OrgMode, in.OrgValues, in.Card)
	prompt := BuildPrompt(PromptInput{
		Thinking:         in.Extraction.Thinking,
		Card:             in.Card,
		ConscienceValues: values,
		Task:             in.Task,
		Window:           window.Summary(),
		TokenBudget:      e.tokenBudget,
	})

	analysisCtx, cancel := context.WithTimeout(ctx, AnalysisTimeout)
	defer cancel()

	started := e.now()
	reply, analysisModel, err := e.analyzer.Analyze(analysisCtx, prompt)
	duration := e.now().Sub(started)
	if err != nil {
		e.logger.WarnContext(ctx, "analysis call failed, falling back to synthetic clear",
			"agent_id", in.AgentID, "session_id", in.SessionID, "error", err)
		return e.syntheticSignal(in, window, 0)
	}

	resp, warnings := ParseAnalysis(reply)
	for _, w := range warnings {
		e.logger.WarnContext(ctx, "analysis parse warning",
			"agent_id", in.AgentID, "session_id", in.SessionID, "warning", w)
	}
	if resp == nil {
		return e.syntheticSignal(in, window, 0)
	}

	// The stated verdict is advisory; the stored verdict comes from the
	// concerns alone.
	verdict := DeriveVerdict(resp.Concerns)

	position := window.Push(verdict)
	summary := window.Summary()
	action := MapVerdictToAction(verdict, summary.DriftAlertActive)

	checkpoint := &models.IntegrityCheckpoint{
		CheckpointID:      ids.NewCheckpointID(),
		AgentID:           in.AgentID,
		CardID:            cardID(in.Card),
		SessionID:         in.SessionID,
		Timestamp:         e.now().UTC(),
		Provider:          in.Provider,
		Model:             modelName(in),
		ThinkingBlockHash: attest.ThinkingHash(in.Extraction.Thinking),
		Verdict:           verdict,
		Concerns:          resp.Concerns,
		ReasoningSummary:  resp.ReasoningSummary,
		Conscience:        resp.Conscience,
		Window:            position,
		Analysis: models.AnalysisMetadata{
			AnalysisModel:        analysisModel,
			AnalysisDurationMs:   duration.Milliseconds(),
			TokensOriginal:       prompt.TokensOriginal,
			TokensAnalyzed:       prompt.TokensAnalyzed,
			Truncated:            prompt.Truncated,
			ExtractionConfidence: in.Extraction.Confidence,
			ConcernsHash:         HashConcerns(resp.Concerns),
		},
		Source: source(in),
	}

	return &models.IntegritySignal{
		Checkpoint:        checkpoint,
		WindowSummary:     summary,
		Proceed:           Proceed(verdict),
		RecommendedAction: action,
	}
}

// syntheticSignal produces the fail-open clear checkpoint used when there is
// no thinking to analyze or the analysis itself failed.
func (e *Engine) syntheticSignal(in EvalInput, window *Window, confidence float64) *models.IntegritySignal {
	position := window.Push(models.VerdictClear)
	summary := window.Summary()

	checkpoint := &models.IntegrityCheckpoint{
		CheckpointID: ids.NewCheckpointID(),
		AgentID:      in.AgentID,
		CardID:       cardID(in.Card),
		SessionID:    in.SessionID,
		Timestamp:    e.now().UTC(),
		Provider:     in.Provider,
		Model:        modelName(in),
		Verdict:      models.VerdictClear,
		Concerns:     []models.Concern{},
		Conscience: models.ConscienceContext{
			ConsultationDepth: models.DepthSurface,
		},
		Window: position,
		Analysis: models.AnalysisMetadata{
			ExtractionConfidence: confidence,
		},
		Source:    source(in),
		Synthetic: true,
	}
	if in.Extraction != nil && in.Extraction.HasThinking() {
		checkpoint.ThinkingBlockHash = attest.ThinkingHash(in.Extraction.Thinking)
	}

	return &models.IntegritySignal{
		Checkpoint:        checkpoint,
		WindowSummary:     summary,
		Proceed:           true,
		RecommendedAction: models.ActionContinue,
	}
}

// sessionWindowFor returns the live window for a session, creating it on
// first use and pruning windows idle past their TTL.
func (e *Engine) sessionWindowFor(sessionID string) *Window {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	for id, sw := range e.windows {
		if now.Sub(sw.touched) > sessionWindowTTL {
			delete(e.windows, id)
		}
	}

	sw, ok := e.windows[sessionID]
	if !ok {
		sw = &sessionWindow{window: NewWindow(e.windowCfg)}
		e.windows[sessionID] = sw
	}
	sw.touched = now
	return sw.window
}

func cardID(card *models.AlignmentCard) string {
	if card == nil {
		return ""
	}
	return card.CardID
}

func modelName(in EvalInput) string {
	if in.Extraction != nil && in.Extraction.Model != "" {
		return in.Extraction.Model
	}
	return in.Model
}

func source(in EvalInput) models.CheckpointSource {
	if in.Source == "" {
		return models.SourceGateway
	}
	return in.Source
}
