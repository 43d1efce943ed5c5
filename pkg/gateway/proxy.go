package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/mnemom/smoltbot/ent"
	"github.com/mnemom/smoltbot/pkg/ids"
	"github.com/mnemom/smoltbot/pkg/models"
	"github.com/mnemom/smoltbot/pkg/quota"
	"github.com/mnemom/smoltbot/pkg/services"
)

// maxRequestBody bounds inbound bodies. LLM requests rarely exceed a few
// hundred KB even with long conversations.
const maxRequestBody = 10 << 20

// proxyContext carries everything the response pipeline needs about the
// request that produced the upstream response.
type proxyContext struct {
	provider  models.Provider
	agent     *ent.Agent
	card      *models.AlignmentCard
	quotaCtx  *models.QuotaContext
	sessionID string
	meta      requestMeta
	nudgeIDs  []string
}

// proxyHandler returns the handler for one provider's path prefix. It runs
// the admission and injection steps, forwards upstream, and hands the
// response to the integrity pipeline.
func (s *Server) proxyHandler(provider models.Provider) echo.HandlerFunc {
	prefix := "/" + string(provider) + "/"

	return func(c *echo.Context) error {
		req := c.Request()
		ctx := req.Context()

		credential, credHeader, ok := extractCredential(req.Header)
		if !ok {
			status, envelope := authenticationError()
			return c.JSON(status, envelope)
		}

		agentHash := ids.AgentHash(credential)
		pc := &proxyContext{
			provider:  provider,
			sessionID: ids.SessionID(agentHash, time.Now().Unix()),
		}

		// Identity and card resolution are fail-open: a database outage
		// must not block inference traffic.
		pc.agent = s.ensureAgent(ctx, credential)
		if pc.agent != nil {
			pc.card = s.ensureCard(ctx, pc.agent.ID)
		}

		if pc.agent != nil && s.deps.QuotaCache != nil {
			pc.quotaCtx = s.deps.QuotaCache.Get(ctx, pc.agent.ID)
		} else {
			pc.quotaCtx = models.FreeTierQuotaContext()
		}

		// The billing key is validated independently of the provider
		// credential: it binds the agent to an account and must keep
		// matching on later requests.
		if billingKey := req.Header.Get(headerBillingKey); billingKey != "" && pc.agent != nil {
			accountID, err := s.bindBillingIdentity(ctx, pc.agent.ID, billingKey)
			if err != nil {
				status, envelope := billingIdentityError()
				return c.JSON(status, envelope)
			}
			if accountID != "" {
				pc.quotaCtx.AccountID = accountID
			}
		}

		decision := s.admit(pc.quotaCtx)
		mergeHeaders(c.Response().Header(), decision.Headers)
		if decision.Kind == models.QuotaReject {
			status, envelope := admissionError(decision.Reason)
			return c.JSON(status, envelope)
		}

		body, err := io.ReadAll(io.LimitReader(req.Body, maxRequestBody))
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorEnvelope{
				Type:    "invalid_request_error",
				Message: "failed to read request body",
			})
		}
		defer req.Body.Close()

		rest := strings.TrimPrefix(req.URL.Path, prefix)
		body, pc.meta = s.prepareBody(ctx, pc, body, rest)

		resp, cancel, err := s.forward(ctx, req, provider, rest, body, credHeader, pc)
		defer cancel()
		if err != nil {
			s.logger.ErrorContext(ctx, "upstream request failed",
				"provider", provider, "error", err)
			return c.JSON(http.StatusBadGateway, errorEnvelope{
				Type:    "upstream_error",
				Message: "upstream request failed",
			})
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			s.markNudgesDelivered(pc.nudgeIDs)
		}

		return s.respond(c, pc, resp)
	}
}

// admit evaluates the quota decision for the resolved context.
func (s *Server) admit(qc *models.QuotaContext) models.QuotaDecision {
	return quota.Decide(qc, time.Now())
}

// bindBillingIdentity derives the account id from the billing key and binds
// it to the agent. A mismatch with an existing binding is a hard error; any
// infrastructure failure is fail-open (empty account id, no error).
func (s *Server) bindBillingIdentity(ctx context.Context, agentID, billingKey string) (string, error) {
	accountID := ids.AccountID(billingKey)
	err := s.deps.Agents.BindAccount(ctx, agentID, accountID)
	if err == nil {
		return accountID, nil
	}
	if services.IsValidationError(err) {
		return "", err
	}
	s.logger.WarnContext(ctx, "billing identity binding failed, continuing unbound",
		"agent_id", agentID, "error", err)
	return "", nil
}

// ensureAgent resolves or lazily creates the agent. Returns nil on failure;
// the pipeline degrades to anonymous pass-through analysis.
func (s *Server) ensureAgent(ctx context.Context, credential string) *ent.Agent {
	ag, err := s.deps.Agents.EnsureAgent(ctx, credential)
	if err != nil {
		s.logger.WarnContext(ctx, "agent resolution failed, continuing without agent", "error", err)
		return nil
	}
	return ag
}

// ensureCard returns the agent's active card, minting the default card on
// first sight. Nil on failure (the engine analyzes without a card).
func (s *Server) ensureCard(ctx context.Context, agentID string) *models.AlignmentCard {
	card, err := s.deps.Cards.ActiveCard(ctx, agentID)
	if err == nil {
		return card
	}
	if !errors.Is(err, services.ErrNotFound) {
		s.logger.WarnContext(ctx, "card lookup failed", "agent_id", agentID, "error", err)
		return nil
	}

	card, err = s.deps.Cards.PutCard(ctx, agentID, models.DefaultAlignmentCard(agentID))
	if err != nil {
		s.logger.WarnContext(ctx, "default card creation failed", "agent_id", agentID, "error", err)
		return nil
	}
	return card
}

// prepareBody parses the request body and, when it is valid JSON, injects
// the reasoning configuration and any pending nudges. Invalid JSON is
// forwarded untouched.
func (s *Server) prepareBody(ctx context.Context, pc *proxyContext, body []byte, path string) ([]byte, requestMeta) {
	obj, meta := parseRequest(pc.provider, body, path)
	if obj == nil {
		return body, meta
	}

	injectReasoning(pc.provider, meta.Model, obj)

	if pc.agent != nil {
		notices, nudgeIDs := s.pendingNudges(ctx, pc.agent.ID)
		if injectNudges(pc.provider, obj, notices) {
			pc.nudgeIDs = nudgeIDs
		}
	}

	out, err := json.Marshal(obj)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to re-encode injected body, forwarding original", "error", err)
		return body, meta
	}
	return out, meta
}

func (s *Server) pendingNudges(ctx context.Context, agentID string) (notices []string, nudgeIDs []string) {
	rows, err := s.deps.Nudges.PendingForAgent(ctx, agentID)
	if err != nil {
		s.logger.WarnContext(ctx, "pending nudge lookup failed", "agent_id", agentID, "error", err)
		return nil, nil
	}
	for _, row := range rows {
		notices = append(notices, row.Message)
		nudgeIDs = append(nudgeIDs, row.ID)
	}
	return notices, nudgeIDs
}

// forward builds and executes the upstream request. When an AI gateway front
// is configured the request is routed through it with attribution metadata;
// otherwise it goes straight to the provider.
//
// The upstream context is detached from the client connection so a client
// disconnect mid-stream does not abort the capture feeding background
// analysis. The returned cancel must be called once the body is consumed.
func (s *Server) forward(ctx context.Context, in *http.Request, provider models.Provider, rest string, body []byte, credHeader string, pc *proxyContext) (*http.Response, context.CancelFunc, error) {
	target := s.upstreamURL(provider, rest, in.URL.RawQuery)

	timeout := upstreamTimeout
	if pc.meta.Stream {
		timeout = streamTimeout
	}
	reqCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)

	out, err := http.NewRequestWithContext(reqCtx, in.Method, target, bytes.NewReader(body))
	if err != nil {
		cancel()
		return nil, func() {}, fmt.Errorf("build upstream request: %w", err)
	}

	copyProxyHeaders(out.Header, in.Header)
	out.Header.Set(credHeader, in.Header.Get(credHeader))
	out.ContentLength = int64(len(body))

	if s.cfg.Providers.AIG.BaseURL != "" {
		metadata := map[string]string{"session_id": pc.sessionID}
		if pc.agent != nil {
			metadata["agent_id"] = pc.agent.ID
		}
		if raw, err := json.Marshal(metadata); err == nil {
			out.Header.Set(headerAIGMetadata, string(raw))
		}
		if s.cfg.Providers.AIG.Authorization != "" {
			out.Header.Set(headerAIGAuth, s.cfg.Providers.AIG.Authorization)
		}
	}

	resp, err := s.client.Do(out)
	if err != nil {
		cancel()
		return nil, func() {}, err
	}
	return resp, cancel, nil
}

func (s *Server) upstreamURL(provider models.Provider, rest, rawQuery string) string {
	var base string
	if s.cfg.Providers.AIG.BaseURL != "" {
		base = strings.TrimSuffix(s.cfg.Providers.AIG.BaseURL, "/") + "/" + string(provider)
	} else {
		switch provider {
		case models.ProviderAnthropic:
			base = s.cfg.Providers.Anthropic.BaseURL
		case models.ProviderOpenAI:
			base = s.cfg.Providers.OpenAI.BaseURL
		default:
			base = s.cfg.Providers.Gemini.BaseURL
		}
		base = strings.TrimSuffix(base, "/")
	}

	target := base + "/" + rest
	if rawQuery != "" {
		target += "?" + rawQuery
	}
	return target
}

// markNudgesDelivered flips delivered nudges off the request path.
func (s *Server) markNudgesDelivered(nudgeIDs []string) {
	if len(nudgeIDs) == 0 {
		return
	}
	s.deps.Runner.Go("nudges-delivered", func(ctx context.Context) {
		if err := s.deps.Nudges.MarkDelivered(ctx, nudgeIDs); err != nil {
			s.logger.Warn("failed to mark nudges delivered", "error", err)
		}
	})
}

// hopByHopHeaders are stripped when proxying, per RFC 9110.
var hopByHopHeaders = map[string]struct{}{
	"Connection":          {},
	"Keep-Alive":          {},
	"Proxy-Authenticate":  {},
	"Proxy-Authorization": {},
	"Te":                  {},
	"Trailer":             {},
	"Transfer-Encoding":   {},
	"Upgrade":             {},
}

func copyProxyHeaders(dst, src http.Header) {
	for key, values := range src {
		if _, hop := hopByHopHeaders[http.CanonicalHeaderKey(key)]; hop {
			continue
		}
		switch http.CanonicalHeaderKey(key) {
		case "Host", "Content-Length", "Accept-Encoding":
			continue
		}
		for _, v := range values {
			dst.Add(key, v)
		}
	}
}

func copyResponseHeaders(dst, src http.Header) {
	for key, values := range src {
		if _, hop := hopByHopHeaders[http.CanonicalHeaderKey(key)]; hop {
			continue
		}
		for _, v := range values {
			dst.Add(key, v)
		}
	}
}

func mergeHeaders(dst http.Header, extra map[string]string) {
	for k, v := range extra {
		dst.Set(k, v)
	}
}

func setContentLength(h http.Header, n int) {
	h.Set("Content-Length", strconv.Itoa(n))
}
