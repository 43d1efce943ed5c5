package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/mnemom/smoltbot/pkg/adapter"
	"github.com/mnemom/smoltbot/pkg/attest"
	"github.com/mnemom/smoltbot/pkg/integrity"
	"github.com/mnemom/smoltbot/pkg/models"
)

// maxStreamCapture bounds how much of a teed stream is kept for background
// analysis. Past the cap the client keeps streaming but analysis sees a
// truncated transcript.
const maxStreamCapture = 20 << 20

// analysisFeature is the account feature flag gating attestation.
const analysisFeature = "cryptographic_attestation"

// analysisOutcome is what one inline pipeline run contributes to the response.
type analysisOutcome struct {
	headers  map[string]string
	denyBody []byte // non-nil means replace the upstream body with a 403
}

// respond routes the upstream response through the integrity pipeline.
func (s *Server) respond(c *echo.Context, pc *proxyContext, resp *http.Response) error {
	h := c.Response().Header()

	if pc.agent != nil {
		h.Set(HeaderAgent, pc.agent.ID)
		h.Set(HeaderEnforcement, string(pc.agent.EnforcementMode))
	}
	h.Set(HeaderSession, pc.sessionID)
	h.Set(HeaderNudgeCount, strconv.Itoa(len(pc.nudgeIDs)))

	switch {
	case !s.cfg.Server.AIPEnabled, pc.agent != nil && pc.agent.AipDisabled:
		return s.passThrough(c, resp, verdictDisabled)

	case pc.agent == nil:
		// Agent resolution failed earlier; the pipeline cannot attribute
		// a checkpoint, so this counts as a pipeline error.
		return s.passThrough(c, resp, verdictError)

	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return s.passThrough(c, resp, verdictSkipped)

	case pc.meta.Stream && isEventStream(resp):
		return s.teeStream(c, pc, resp)

	default:
		return s.respondBuffered(c, pc, resp)
	}
}

// passThrough forwards the upstream response unchanged with the given
// verdict header.
func (s *Server) passThrough(c *echo.Context, resp *http.Response, verdict string) error {
	w := c.Response()
	copyResponseHeaders(w.Header(), resp.Header)
	w.Header().Set(HeaderVerdict, verdict)
	w.WriteHeader(resp.StatusCode)
	_, err := io.Copy(w, resp.Body)
	return err
}

// respondBuffered reads the whole upstream body, runs the inline pipeline,
// and returns either the original body or the enforcement envelope.
func (s *Server) respondBuffered(c *echo.Context, pc *proxyContext, resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		s.logger.Warn("failed to read upstream body", "error", err)
		return s.passThrough(c, resp, verdictError)
	}

	outcome := s.analyzeInline(c.Request().Context(), pc, body)

	w := c.Response()
	copyResponseHeaders(w.Header(), resp.Header)
	if outcome == nil {
		w.Header().Set(HeaderVerdict, verdictError)
		setContentLength(w.Header(), len(body))
		w.WriteHeader(resp.StatusCode)
		_, err := w.Write(body)
		return err
	}

	mergeHeaders(w.Header(), outcome.headers)

	if outcome.denyBody != nil {
		w.Header().Set("Content-Type", "application/json")
		setContentLength(w.Header(), len(outcome.denyBody))
		w.WriteHeader(http.StatusForbidden)
		_, err := w.Write(outcome.denyBody)
		return err
	}

	setContentLength(w.Header(), len(body))
	w.WriteHeader(resp.StatusCode)
	_, err = w.Write(body)
	return err
}

// teeStream forwards the SSE body to the client as it arrives while
// capturing a copy for background analysis. A client disconnect stops the
// forward but not the capture: the checkpoint is still recorded.
func (s *Server) teeStream(c *echo.Context, pc *proxyContext, resp *http.Response) error {
	w := c.Response()
	copyResponseHeaders(w.Header(), resp.Header)
	w.Header().Set(HeaderVerdict, verdictPending)
	w.Header().Del("Content-Length")
	w.WriteHeader(resp.StatusCode)

	flusher, canFlush := http.ResponseWriter(w).(http.Flusher)

	var capture bytes.Buffer
	buf := make([]byte, 32*1024)
	clientGone := false

	for {
		n, err := resp.Body.Read(buf)
		if n > 0 {
			if capture.Len() < maxStreamCapture {
				capture.Write(buf[:n])
			}
			if !clientGone {
				if _, werr := w.Write(buf[:n]); werr != nil {
					clientGone = true
				} else if canFlush {
					flusher.Flush()
				}
			}
		}
		if err != nil {
			if err != io.EOF {
				s.logger.Warn("upstream stream ended with error", "error", err)
			}
			break
		}
	}

	sse := capture.String()
	s.deps.Runner.Go("stream-analysis", func(ctx context.Context) {
		s.analyzeStream(ctx, pc, sse)
	})
	return nil
}

func isEventStream(resp *http.Response) bool {
	return strings.HasPrefix(resp.Header.Get("Content-Type"), "text/event-stream")
}

// analyzeInline runs the full integrity pipeline for a buffered response.
// Returns nil on any unexpected failure so the caller falls back to
// verdict "error" and the untouched upstream body.
func (s *Server) analyzeInline(ctx context.Context, pc *proxyContext, body []byte) (outcome *analysisOutcome) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("inline analysis panicked", "panic", r)
			outcome = nil
		}
	}()

	ad := adapter.ForProvider(pc.provider)
	if ad == nil {
		return nil
	}
	signal := s.evaluate(ctx, pc, ad.ExtractBuffered(body))
	att := s.persist(ctx, pc, signal)

	outcome = &analysisOutcome{headers: signalHeaders(signal, att)}

	if models.EnforcementMode(pc.agent.EnforcementMode) == models.EnforcementEnforce &&
		signal.Checkpoint.Verdict == models.VerdictBoundaryViolation {
		envelope := violationEnvelope(signal.Checkpoint, signal.RecommendedAction)
		if raw, err := json.Marshal(envelope); err == nil {
			outcome.denyBody = raw
		}
	}
	return outcome
}

// analyzeStream runs the same pipeline for a captured stream transcript.
// The client has already been served, so every failure is swallowed.
func (s *Server) analyzeStream(ctx context.Context, pc *proxyContext, sse string) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("stream analysis panicked", "panic", r)
		}
	}()

	ad := adapter.ForProvider(pc.provider)
	if ad == nil {
		return
	}
	signal := s.evaluate(ctx, pc, ad.ExtractStream(sse))
	s.persist(ctx, pc, signal)
}

// evaluate runs the integrity engine for one extraction.
func (s *Server) evaluate(ctx context.Context, pc *proxyContext, extraction *adapter.Extraction) *models.IntegritySignal {
	task := integrity.TaskContext{
		ToolNames:   pc.meta.ToolNames,
		UserRequest: s.deps.Masker.Redact(pc.meta.UserText),
	}
	if pc.card != nil {
		task.Role = pc.card.Role
	}

	return s.deps.Engine.Evaluate(ctx, integrity.EvalInput{
		AgentID:    pc.agent.ID,
		SessionID:  pc.sessionID,
		Provider:   pc.provider,
		Model:      pc.meta.Model,
		Extraction: extraction,
		Card:       pc.card,
		OrgMode:    s.cfg.Values.Mode,
		OrgValues:  s.cfg.Values.OrgValues,
		Task:       task,
		Source:     models.SourceGateway,
	})
}

// persist stores the checkpoint, attests it when enabled, and applies
// enforcement. Returns the attestation when one was produced.
func (s *Server) persist(ctx context.Context, pc *proxyContext, signal *models.IntegritySignal) *models.Attestation {
	cp := signal.Checkpoint

	if err := s.deps.Checkpoints.StoreCheckpoint(ctx, cp); err != nil {
		s.logger.WarnContext(ctx, "checkpoint store failed",
			"checkpoint_id", cp.CheckpointID, "error", err)
		return nil
	}

	var att *models.Attestation
	if s.deps.Attestations != nil && pc.quotaCtx.FeatureEnabled(analysisFeature) {
		inputs := s.attestationInputs(pc, signal)
		stored, err := s.deps.Attestations.Attest(ctx, cp, inputs)
		if err != nil {
			s.logger.WarnContext(ctx, "attestation failed, checkpoint stands unattested",
				"checkpoint_id", cp.CheckpointID, "error", err)
		} else {
			att = stored
			cp.Attestation = stored
		}
	}

	if s.deps.Enforcer != nil {
		s.deps.Enforcer.Apply(ctx, pc.agent, signal)
	}
	return att
}

func (s *Server) attestationInputs(pc *proxyContext, signal *models.IntegritySignal) attest.AnalysisInputs {
	cardJSON := json.RawMessage("null")
	if pc.card != nil {
		if raw, err := json.Marshal(pc.card); err == nil {
			cardJSON = raw
		}
	}
	windowJSON := json.RawMessage("null")
	if raw, err := json.Marshal(signal.WindowSummary); err == nil {
		windowJSON = raw
	}

	return attest.AnalysisInputs{
		CardCanonical:     cardJSON,
		ConscienceValues:  integrity.ResolveConscienceValues(s.cfg.Values.Mode, s.cfg.Values.OrgValues, pc.card),
		WindowContext:     windowJSON,
		ModelVersion:      signal.Checkpoint.Analysis.AnalysisModel,
		PromptTemplateVer: integrity.PromptTemplateVersion,
	}
}

// signalHeaders builds the X-AIP header set for one inline analysis.
func signalHeaders(signal *models.IntegritySignal, att *models.Attestation) map[string]string {
	cp := signal.Checkpoint
	h := map[string]string{
		HeaderVerdict:      string(cp.Verdict),
		HeaderCheckpointID: cp.CheckpointID,
		HeaderAction:       string(signal.RecommendedAction),
		HeaderProceed:      strconv.FormatBool(signal.Proceed),
	}
	if cp.Synthetic {
		h[HeaderSynthetic] = "true"
	}
	if cp.Source == models.SourceHybrid {
		h[HeaderSource] = string(models.SourceHybrid)
	}
	if att != nil {
		h[HeaderCertificateID] = att.CertificateID
		h[HeaderChainHash] = att.ChainHash
	}
	return h
}
