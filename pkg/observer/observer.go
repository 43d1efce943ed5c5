// Package observer is the post-hoc integrity worker. It drains the upstream
// gateway's request logs on a timer, reconstructs what the gateway saw,
// summarises each decision into a trace, and fills checkpoint gaps the
// real-time pipeline missed. The gateway always wins: when a gateway
// checkpoint already covers the session, the observer only links its trace.
//
// Logs are ephemeral. Every processed entry is deleted, including entries
// skipped for missing metadata or failed upstream calls.
package observer

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/mnemom/smoltbot/pkg/adapter"
	"github.com/mnemom/smoltbot/pkg/attest"
	"github.com/mnemom/smoltbot/pkg/enforce"
	"github.com/mnemom/smoltbot/pkg/ids"
	"github.com/mnemom/smoltbot/pkg/integrity"
	"github.com/mnemom/smoltbot/pkg/masking"
	"github.com/mnemom/smoltbot/pkg/models"
	"github.com/mnemom/smoltbot/pkg/services"
)

const (
	defaultInterval = time.Minute
	defaultPageSize = 20
)

// Config controls the observer loop.
type Config struct {
	Interval  time.Duration
	PageSize  int
	OrgMode   models.ValueLayerMode
	OrgValues []string
}

// Deps carries the observer's collaborators. Attestations and Enforcer may
// be nil; the matching steps are skipped.
type Deps struct {
	Logs         *LogClient
	Agents       *services.AgentService
	Cards        *services.CardService
	Checkpoints  *services.CheckpointService
	Attestations *services.AttestationService
	Engine       *integrity.Engine
	TraceModel   integrity.Analyzer
	Enforcer     *enforce.Enforcer
	Masker       *masking.Service
}

// Observer runs the log-processing loop.
type Observer struct {
	cfg    Config
	deps   Deps
	logger *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// New builds an observer. Panics on missing core dependencies.
func New(cfg Config, deps Deps, logger *slog.Logger) *Observer {
	if deps.Logs == nil {
		panic("observer.New: log client must not be nil")
	}
	if deps.Agents == nil || deps.Cards == nil || deps.Checkpoints == nil {
		panic("observer.New: agent, card, and checkpoint services must not be nil")
	}
	if deps.Engine == nil || deps.TraceModel == nil {
		panic("observer.New: engine and trace model must not be nil")
	}
	if deps.Masker == nil {
		deps.Masker = masking.NewService()
	}
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Observer{
		cfg:    cfg,
		deps:   deps,
		logger: logger.With("component", "observer"),
	}
}

// Start launches the background processing loop.
func (o *Observer) Start(ctx context.Context) {
	if o.cancel != nil {
		return
	}
	ctx, o.cancel = context.WithCancel(ctx)
	o.done = make(chan struct{})

	go o.run(ctx)

	o.logger.Info("observer started", "interval", o.cfg.Interval)
}

// Stop signals the loop to exit and waits for it to finish.
func (o *Observer) Stop() {
	if o.cancel == nil {
		return
	}
	o.cancel()
	<-o.done
	o.logger.Info("observer stopped")
}

func (o *Observer) run(ctx context.Context) {
	defer close(o.done)

	ticker := time.NewTicker(o.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			o.Tick(ctx)
		}
	}
}

// Tick processes one page of pending log entries. Exported so tests and the
// startup path can drive the loop directly.
func (o *Observer) Tick(ctx context.Context) {
	entries, err := o.deps.Logs.List(ctx, o.cfg.PageSize)
	if err != nil {
		o.logger.Error("log list failed", "error", err)
		return
	}

	for _, entry := range entries {
		if ctx.Err() != nil {
			return
		}
		o.process(ctx, entry)
		if err := o.deps.Logs.Delete(ctx, entry.ID); err != nil {
			o.logger.Warn("log delete failed", "log_id", entry.ID, "error", err)
		}
	}
}

// logMetadata is the attribution the gateway stamped onto the upstream call.
type logMetadata struct {
	AgentID   string `json:"agent_id"`
	SessionID string `json:"session_id"`
}

// process handles a single log entry. Failures are logged and swallowed;
// the entry is deleted by the caller either way.
func (o *Observer) process(ctx context.Context, entry LogEntry) {
	var meta logMetadata
	if err := json.Unmarshal([]byte(entry.Metadata), &meta); err != nil ||
		meta.AgentID == "" || meta.SessionID == "" {
		o.logger.Debug("skipping log without attribution metadata", "log_id", entry.ID)
		return
	}

	if !entry.Success || entry.StatusCode < 200 || entry.StatusCode >= 300 {
		o.logger.Debug("skipping failed upstream call", "log_id", entry.ID, "status", entry.StatusCode)
		return
	}

	provider := models.Provider(entry.Provider)
	ad := adapter.ForProvider(provider)
	if ad == nil {
		o.logger.Debug("skipping log for unsupported provider", "log_id", entry.ID, "provider", entry.Provider)
		return
	}

	respBody, err := o.deps.Logs.ResponseBody(ctx, entry.ID)
	if err != nil {
		o.logger.Warn("response body fetch failed", "log_id", entry.ID, "error", err)
		return
	}

	var extraction *adapter.Extraction
	if sse, streamed := ReconstructSSE(respBody); streamed {
		extraction = ad.ExtractStream(sse)
	} else {
		extraction = ad.ExtractBuffered(respBody)
	}
	if !extraction.HasThinking() {
		// Nothing to analyze; the gateway's synthetic checkpoint covers it.
		return
	}

	userQuery := o.userQuery(ctx, provider, entry.ID)
	card := o.activeCard(ctx, meta.AgentID)

	traceID := ids.NewTraceID()
	trace, err := buildTrace(ctx, o.deps.TraceModel, traceID, meta.AgentID, meta.SessionID,
		extraction.Thinking, userQuery, card)
	if err != nil {
		o.logger.Warn("trace build failed, continuing without trace", "log_id", entry.ID, "error", err)
		trace = nil
	}

	if trace != nil {
		linked, err := o.deps.Checkpoints.LinkSessionTrace(ctx, meta.AgentID, meta.SessionID, traceID)
		if err != nil {
			o.logger.Warn("trace link failed", "log_id", entry.ID, "error", err)
		}
		if linked {
			o.logger.Debug("trace linked to gateway checkpoint",
				"agent_id", meta.AgentID, "session_id", meta.SessionID, "trace_id", traceID)
			return
		}
	} else if o.sessionCovered(ctx, meta.AgentID, meta.SessionID) {
		return
	}

	o.checkpoint(ctx, entry, meta, extraction, card, userQuery, trace)
}

// checkpoint runs the full integrity check for a log entry the gateway
// missed, with the same store/attest/enforce sequence as the inline path.
func (o *Observer) checkpoint(ctx context.Context, entry LogEntry, meta logMetadata, extraction *adapter.Extraction, card *models.AlignmentCard, userQuery string, trace *Trace) {
	task := integrity.TaskContext{
		ToolNames:   extraction.ToolNames(),
		UserRequest: userQuery,
	}
	if card != nil {
		task.Role = card.Role
	}

	signal := o.deps.Engine.Evaluate(ctx, integrity.EvalInput{
		AgentID:    meta.AgentID,
		SessionID:  meta.SessionID,
		Provider:   models.Provider(entry.Provider),
		Model:      entry.Model,
		Extraction: extraction,
		Card:       card,
		OrgMode:    o.cfg.OrgMode,
		OrgValues:  o.cfg.OrgValues,
		Task:       task,
		Source:     models.SourceObserver,
	})
	cp := signal.Checkpoint
	if trace != nil {
		cp.LinkedTraceID = trace.TraceID
	}

	if err := o.deps.Checkpoints.StoreCheckpoint(ctx, cp); err != nil {
		o.logger.Warn("observer checkpoint store failed",
			"checkpoint_id", cp.CheckpointID, "error", err)
		return
	}

	if o.deps.Attestations != nil {
		if _, err := o.deps.Attestations.Attest(ctx, cp, o.attestationInputs(card, signal)); err != nil {
			o.logger.Warn("observer attestation failed",
				"checkpoint_id", cp.CheckpointID, "error", err)
		}
	}

	if o.deps.Enforcer != nil {
		if ag, err := o.deps.Agents.GetAgent(ctx, meta.AgentID); err == nil {
			o.deps.Enforcer.Apply(ctx, ag, signal)
		}
	}

	o.logger.Info("observer checkpoint recorded",
		"checkpoint_id", cp.CheckpointID, "agent_id", meta.AgentID, "verdict", cp.Verdict)
}

func (o *Observer) attestationInputs(card *models.AlignmentCard, signal *models.IntegritySignal) attest.AnalysisInputs {
	cardJSON := json.RawMessage("null")
	if card != nil {
		if raw, err := json.Marshal(card); err == nil {
			cardJSON = raw
		}
	}
	windowJSON := json.RawMessage("null")
	if raw, err := json.Marshal(signal.WindowSummary); err == nil {
		windowJSON = raw
	}
	return attest.AnalysisInputs{
		CardCanonical:     cardJSON,
		ConscienceValues:  integrity.ResolveConscienceValues(o.cfg.OrgMode, o.cfg.OrgValues, card),
		WindowContext:     windowJSON,
		ModelVersion:      signal.Checkpoint.Analysis.AnalysisModel,
		PromptTemplateVer: integrity.PromptTemplateVersion,
	}
}

// activeCard fetches the agent's active card. Best-effort; nil means the
// engine analyzes without a card.
func (o *Observer) activeCard(ctx context.Context, agentID string) *models.AlignmentCard {
	card, err := o.deps.Cards.ActiveCard(ctx, agentID)
	if err != nil {
		if !errors.Is(err, services.ErrNotFound) {
			o.logger.Warn("card lookup failed", "agent_id", agentID, "error", err)
		}
		return nil
	}
	return card
}

// sessionCovered reports whether any checkpoint already exists for the
// session. Used as the dedup check when no trace could be built.
func (o *Observer) sessionCovered(ctx context.Context, agentID, sessionID string) bool {
	rows, err := o.deps.Checkpoints.ListSession(ctx, agentID, sessionID, 1)
	if err != nil {
		o.logger.Warn("session coverage check failed", "session_id", sessionID, "error", err)
		return false
	}
	return len(rows) > 0
}

// userQuery fetches the logged request body and pulls out the redacted user
// message. Best-effort; an empty query just weakens the trace prompt.
func (o *Observer) userQuery(ctx context.Context, provider models.Provider, logID string) string {
	body, err := o.deps.Logs.RequestBody(ctx, logID)
	if err != nil {
		o.logger.Debug("request body fetch failed", "log_id", logID, "error", err)
		return ""
	}
	return o.deps.Masker.Redact(lastUserText(provider, body))
}

// lastUserText extracts the most recent user message from a logged request
// body. Lenient by design: malformed bodies yield an empty string.
func lastUserText(provider models.Provider, body []byte) string {
	var obj map[string]any
	if err := json.Unmarshal(body, &obj); err != nil {
		return ""
	}

	messagesKey := "messages"
	if provider == models.ProviderGemini {
		messagesKey = "contents"
	}
	messages, _ := obj[messagesKey].([]any)
	for i := len(messages) - 1; i >= 0; i-- {
		msg, ok := messages[i].(map[string]any)
		if !ok {
			continue
		}
		if role, _ := msg["role"].(string); role != "" && role != "user" {
			continue
		}
		if text := messageText(msg); text != "" {
			return text
		}
	}
	return ""
}

func messageText(msg map[string]any) string {
	if s, ok := msg["content"].(string); ok {
		return s
	}
	for _, key := range []string{"content", "parts"} {
		blocks, ok := msg[key].([]any)
		if !ok {
			continue
		}
		for _, b := range blocks {
			block, ok := b.(map[string]any)
			if !ok {
				continue
			}
			if t, _ := block["type"].(string); t != "" && t != "text" {
				continue
			}
			if s, ok := block["text"].(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}
