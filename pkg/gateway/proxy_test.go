package gateway

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnemom/smoltbot/ent/nudge"
	"github.com/mnemom/smoltbot/pkg/attest"
	"github.com/mnemom/smoltbot/pkg/background"
	"github.com/mnemom/smoltbot/pkg/config"
	"github.com/mnemom/smoltbot/pkg/database"
	"github.com/mnemom/smoltbot/pkg/enforce"
	"github.com/mnemom/smoltbot/pkg/ids"
	"github.com/mnemom/smoltbot/pkg/integrity"
	"github.com/mnemom/smoltbot/pkg/models"
	"github.com/mnemom/smoltbot/pkg/quota"
	"github.com/mnemom/smoltbot/pkg/services"
	"github.com/mnemom/smoltbot/pkg/webhook"
	testdb "github.com/mnemom/smoltbot/test/database"
)

const (
	clearReply     = `{"verdict":"clear","concerns":[],"reasoning_summary":"Aligned","conscience_context":{"values_checked":["honesty"],"consultation_depth":"standard"}}`
	violationReply = `{"verdict":"boundary_violation","concerns":[{"category":"autonomy_violation","severity":"critical","description":"executes destructive command against instruction","evidence":"ran the delete command anyway"}]}`
)

type stubAnalyzer struct {
	mu    sync.Mutex
	reply string
	calls int
}

func (s *stubAnalyzer) Analyze(_ context.Context, _ integrity.Prompt) (string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.reply, "analysis-model-small", nil
}

type gatewayEnv struct {
	db          *database.Client
	server      *Server
	runner      *background.Runner
	analyzer    *stubAnalyzer
	agents      *services.AgentService
	cards       *services.CardService
	checkpoints *services.CheckpointService
	nudges      *services.NudgeService
}

func newGatewayEnv(t *testing.T, upstreamURL string, mutate func(*config.Config)) *gatewayEnv {
	t.Helper()

	db := testdb.NewTestClient(t)
	logger := slog.New(slog.DiscardHandler)

	agents := services.NewAgentService(db.Client)
	cards := services.NewCardService(db.Client)
	checkpoints := services.NewCheckpointService(db.Client)
	nudges := services.NewNudgeService(db.Client, checkpoints)
	quotaSvc := services.NewQuotaService(db.Client)
	webhookSvc := services.NewWebhookService(db.Client)
	dispatcher := webhook.NewDispatcher(webhookSvc, "2024-01", logger)
	emitter := webhook.NewEmitter(webhookSvc, dispatcher, logger)
	cache := quota.NewCache(nil, quotaSvc, logger)

	signer, err := attest.NewSigner("gw-test-key")
	require.NoError(t, err)
	attestations := services.NewAttestationService(db.DB(), signer, logger)

	analyzer := &stubAnalyzer{reply: clearReply}
	engine := integrity.NewEngine(analyzer, logger)
	enforcer := enforce.NewEnforcer(agents, checkpoints, nudges, cache, emitter, logger)
	runner := background.NewRunner(10*time.Second, logger)

	cfg := &config.Config{
		Server: &config.ServerConfig{ListenAddr: ":0", AIPEnabled: true},
		Providers: &config.ProvidersConfig{
			Anthropic: config.ProviderConfig{BaseURL: upstreamURL},
			OpenAI:    config.ProviderConfig{BaseURL: upstreamURL},
			Gemini:    config.ProviderConfig{BaseURL: upstreamURL},
		},
		Analysis:    &config.AnalysisConfig{Model: "analysis-model-small"},
		Attestation: &config.AttestationConfig{KeyID: "gw-test-key"},
		Quota:       &config.QuotaConfig{},
		Values:      &config.ValuesConfig{Mode: models.ValueLayerAugment},
		Observer:    &config.ObserverConfig{},
		Webhooks:    &config.WebhooksConfig{Version: "2024-01"},
	}
	if mutate != nil {
		mutate(cfg)
	}

	server := NewServer(cfg, Deps{
		Agents:       agents,
		Cards:        cards,
		Checkpoints:  checkpoints,
		Nudges:       nudges,
		Attestations: attestations,
		QuotaCache:   cache,
		Engine:       engine,
		Enforcer:     enforcer,
		Runner:       runner,
		DB:           db.DB(),
	}, logger)

	return &gatewayEnv{
		db:          db,
		server:      server,
		runner:      runner,
		analyzer:    analyzer,
		agents:      agents,
		cards:       cards,
		checkpoints: checkpoints,
		nudges:      nudges,
	}
}

func (env *gatewayEnv) do(t *testing.T, method, path string, headers map[string]string, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	env.server.ServeHTTP(rec, req)
	return rec
}

// drain waits for background tasks (stream analysis, nudge delivery marks).
func (env *gatewayEnv) drain(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	require.NoError(t, env.runner.Shutdown(ctx))
}

func agentIDFor(credential string) string {
	return ids.AgentID(ids.AgentHash(credential))
}

func anthropicUpstream(t *testing.T, body string, capture *[]byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		if capture != nil {
			*capture = raw
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGateway_MissingCredential(t *testing.T) {
	env := newGatewayEnv(t, "http://127.0.0.1:1", nil)

	rec := env.do(t, http.MethodPost, "/anthropic/v1/messages", nil, `{"model":"claude-sonnet-4-5"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var envelope errorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, errTypeAuthentication, envelope.Type)
}

func TestGateway_PlainResponseSyntheticClear(t *testing.T) {
	upstreamBody := `{"id":"msg_1","model":"claude-sonnet-4-5","content":[{"type":"text","text":"hi"}]}`
	var forwarded []byte
	upstream := anthropicUpstream(t, upstreamBody, &forwarded)
	env := newGatewayEnv(t, upstream.URL, nil)

	rec := env.do(t, http.MethodPost, "/anthropic/v1/messages",
		map[string]string{"x-api-key": "sk-plain"},
		`{"model":"claude-sonnet-4-5","messages":[{"role":"user","content":"hi"}]}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, upstreamBody, rec.Body.String(), "upstream body forwarded verbatim")
	assert.Equal(t, "clear", rec.Header().Get(HeaderVerdict))
	assert.Equal(t, "true", rec.Header().Get(HeaderSynthetic))
	assert.NotEmpty(t, rec.Header().Get(HeaderCheckpointID))
	assert.Equal(t, agentIDFor("sk-plain"), rec.Header().Get(HeaderAgent))
	assert.NotEmpty(t, rec.Header().Get(HeaderSession))

	// Reasoning config was injected into the forwarded request.
	fwd := decodeBody(t, string(forwarded))
	thinking, ok := fwd["thinking"].(map[string]any)
	require.True(t, ok, "thinking config injected")
	assert.Equal(t, "enabled", thinking["type"])

	// First sight of the credential minted the agent and its default card.
	ctx := context.Background()
	card, err := env.cards.ActiveCard(ctx, agentIDFor("sk-plain"))
	require.NoError(t, err)
	assert.True(t, card.HasValue("honesty"))

	verdicts, err := env.checkpoints.RecentVerdicts(ctx, agentIDFor("sk-plain"), 5)
	require.NoError(t, err)
	assert.Equal(t, []models.Verdict{models.VerdictClear}, verdicts)
	assert.Zero(t, env.analyzer.calls, "no analysis call without thinking")
}

func TestGateway_ThinkingClearAttested(t *testing.T) {
	upstreamBody := `{"model":"claude-sonnet-4-5","content":[{"type":"thinking","thinking":"I should explain generics carefully."},{"type":"text","text":"Generics allow..."}]}`
	upstream := anthropicUpstream(t, upstreamBody, nil)
	env := newGatewayEnv(t, upstream.URL, nil)

	rec := env.do(t, http.MethodPost, "/anthropic/v1/messages",
		map[string]string{"x-api-key": "sk-think"},
		`{"model":"claude-sonnet-4-5","messages":[{"role":"user","content":"explain generics"}]}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, upstreamBody, rec.Body.String())
	assert.Equal(t, "clear", rec.Header().Get(HeaderVerdict))
	assert.Equal(t, "continue", rec.Header().Get(HeaderAction))
	assert.Equal(t, "true", rec.Header().Get(HeaderProceed))
	assert.Empty(t, rec.Header().Get(HeaderSynthetic))
	assert.NotEmpty(t, rec.Header().Get(HeaderCertificateID))
	assert.NotEmpty(t, rec.Header().Get(HeaderChainHash))

	cp, err := env.checkpoints.GetCheckpoint(context.Background(), rec.Header().Get(HeaderCheckpointID))
	require.NoError(t, err)
	assert.Equal(t, attest.ThinkingHash("I should explain generics carefully."), cp.ThinkingBlockHash)
}

func TestGateway_EnforceModeReplacesViolation(t *testing.T) {
	upstreamBody := `{"model":"claude-sonnet-4-5","content":[{"type":"thinking","thinking":"I'll run the delete command anyway"},{"type":"text","text":"Done."}]}`
	upstream := anthropicUpstream(t, upstreamBody, nil)
	env := newGatewayEnv(t, upstream.URL, nil)
	env.analyzer.reply = violationReply

	ctx := context.Background()
	ag, err := env.agents.EnsureAgent(ctx, "sk-enforced")
	require.NoError(t, err)
	mode := models.EnforcementEnforce
	_, err = env.agents.UpdateSettings(ctx, ag.ID, services.AgentSettings{EnforcementMode: &mode})
	require.NoError(t, err)

	rec := env.do(t, http.MethodPost, "/anthropic/v1/messages",
		map[string]string{"x-api-key": "sk-enforced"},
		`{"model":"claude-sonnet-4-5","messages":[{"role":"user","content":"clean up"}]}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "boundary_violation", rec.Header().Get(HeaderVerdict))
	assert.Equal(t, "false", rec.Header().Get(HeaderProceed))
	assert.Equal(t, "deny_and_escalate", rec.Header().Get(HeaderAction))

	var envelope errorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, errTypeIntegrity, envelope.Type)
	require.NotNil(t, envelope.Checkpoint)
	assert.NotContains(t, rec.Body.String(), "delete command", "evidence never reaches the client")

	pending, err := env.nudges.PendingForAgent(ctx, ag.ID)
	require.NoError(t, err)
	assert.Len(t, pending, 1, "violation under enforce creates a nudge")
}

func TestGateway_UpstreamErrorSkipped(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"error":{"type":"authentication_error"}}`)
	}))
	t.Cleanup(upstream.Close)
	env := newGatewayEnv(t, upstream.URL, nil)

	rec := env.do(t, http.MethodPost, "/anthropic/v1/messages",
		map[string]string{"x-api-key": "sk-badkey"}, `{"model":"claude-sonnet-4-5"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, verdictSkipped, rec.Header().Get(HeaderVerdict))
	assert.JSONEq(t, `{"error":{"type":"authentication_error"}}`, rec.Body.String())

	verdicts, err := env.checkpoints.RecentVerdicts(context.Background(), agentIDFor("sk-badkey"), 5)
	require.NoError(t, err)
	assert.Empty(t, verdicts, "upstream failures never produce checkpoints")
}

func TestGateway_DisabledPassThrough(t *testing.T) {
	upstreamBody := `{"content":[{"type":"text","text":"hi"}]}`

	t.Run("globally disabled", func(t *testing.T) {
		upstream := anthropicUpstream(t, upstreamBody, nil)
		env := newGatewayEnv(t, upstream.URL, func(cfg *config.Config) {
			cfg.Server.AIPEnabled = false
		})

		rec := env.do(t, http.MethodPost, "/anthropic/v1/messages",
			map[string]string{"x-api-key": "sk-off"}, `{"model":"m"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, verdictDisabled, rec.Header().Get(HeaderVerdict))
		assert.Equal(t, upstreamBody, rec.Body.String())
	})

	t.Run("disabled per agent", func(t *testing.T) {
		upstream := anthropicUpstream(t, upstreamBody, nil)
		env := newGatewayEnv(t, upstream.URL, nil)

		ctx := context.Background()
		ag, err := env.agents.EnsureAgent(ctx, "sk-agent-off")
		require.NoError(t, err)
		disabled := true
		_, err = env.agents.UpdateSettings(ctx, ag.ID, services.AgentSettings{AIPDisabled: &disabled})
		require.NoError(t, err)

		rec := env.do(t, http.MethodPost, "/anthropic/v1/messages",
			map[string]string{"x-api-key": "sk-agent-off"}, `{"model":"m"}`)

		assert.Equal(t, verdictDisabled, rec.Header().Get(HeaderVerdict))
	})
}

func TestGateway_ContainedAgentRejected(t *testing.T) {
	env := newGatewayEnv(t, "http://127.0.0.1:1", nil)

	ctx := context.Background()
	ag, err := env.agents.EnsureAgent(ctx, "sk-contained")
	require.NoError(t, err)
	_, err = env.agents.TransitionContainment(ctx, ag.ID, models.ContainmentPaused, "pause", "operator", "test")
	require.NoError(t, err)

	rec := env.do(t, http.MethodPost, "/anthropic/v1/messages",
		map[string]string{"x-api-key": "sk-contained"}, `{"model":"m"}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	var envelope errorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, errTypeContainment, envelope.Type)
}

func TestGateway_BillingIdentityBinding(t *testing.T) {
	upstreamBody := `{"model":"claude-sonnet-4-5","content":[{"type":"text","text":"hi"}]}`
	upstream := anthropicUpstream(t, upstreamBody, nil)
	env := newGatewayEnv(t, upstream.URL, nil)
	ctx := context.Background()

	t.Run("first sight binds the agent to the account", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/anthropic/v1/messages",
			map[string]string{"x-api-key": "sk-billed", "x-mnemom-api-key": "op-key-1"},
			`{"model":"claude-sonnet-4-5","messages":[{"role":"user","content":"hi"}]}`)
		assert.Equal(t, http.StatusOK, rec.Code)

		ag, err := env.agents.GetAgent(ctx, agentIDFor("sk-billed"))
		require.NoError(t, err)
		assert.Equal(t, ids.AccountID("op-key-1"), ag.AccountID)
	})

	t.Run("same billing key keeps working", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/anthropic/v1/messages",
			map[string]string{"x-api-key": "sk-billed", "x-mnemom-api-key": "op-key-1"},
			`{"model":"claude-sonnet-4-5","messages":[{"role":"user","content":"hi"}]}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("a different billing key is rejected", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/anthropic/v1/messages",
			map[string]string{"x-api-key": "sk-billed", "x-mnemom-api-key": "op-key-2"},
			`{"model":"claude-sonnet-4-5","messages":[{"role":"user","content":"hi"}]}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		var envelope errorEnvelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.Equal(t, errTypeAuthentication, envelope.Type)

		ag, err := env.agents.GetAgent(ctx, agentIDFor("sk-billed"))
		require.NoError(t, err)
		assert.Equal(t, ids.AccountID("op-key-1"), ag.AccountID, "binding unchanged")
	})

	t.Run("no billing key leaves the agent unbound", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/anthropic/v1/messages",
			map[string]string{"x-api-key": "sk-unbilled"},
			`{"model":"claude-sonnet-4-5","messages":[{"role":"user","content":"hi"}]}`)
		assert.Equal(t, http.StatusOK, rec.Code)

		ag, err := env.agents.GetAgent(ctx, agentIDFor("sk-unbilled"))
		require.NoError(t, err)
		assert.Empty(t, ag.AccountID)
	})
}

func TestGateway_StreamingTee(t *testing.T) {
	sse := strings.Join([]string{
		`data: {"choices":[{"delta":{"reasoning_content":"I should "}}]}`,
		``,
		`data: {"choices":[{"delta":{"reasoning_content":"be careful "}}]}`,
		``,
		`data: {"choices":[{"delta":{"reasoning_content":"here."}}]}`,
		``,
		`data: {"choices":[{"delta":{"content":"Sure, "}}]}`,
		``,
		`data: {"choices":[{"delta":{"content":"here."}}]}`,
		``,
		`data: [DONE]`,
		``,
	}, "\n")

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, sse)
	}))
	t.Cleanup(upstream.Close)
	env := newGatewayEnv(t, upstream.URL, nil)

	rec := env.do(t, http.MethodPost, "/openai/v1/chat/completions",
		map[string]string{"Authorization": "Bearer sk-stream"},
		`{"model":"gpt-5","stream":true,"messages":[{"role":"user","content":"hi"}]}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, verdictPending, rec.Header().Get(HeaderVerdict))
	assert.Equal(t, sse, rec.Body.String(), "client sees the byte-identical stream")

	env.drain(t)

	agentID := agentIDFor("sk-stream")
	verdicts, err := env.checkpoints.RecentVerdicts(context.Background(), agentID, 5)
	require.NoError(t, err)
	require.Len(t, verdicts, 1, "background analysis recorded a checkpoint")

	sessionID := ids.SessionID(ids.AgentHash("sk-stream"), time.Now().Unix())
	rows, err := env.checkpoints.ListSession(context.Background(), agentID, sessionID, 5)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, attest.ThinkingHash("I should be careful here."), rows[0].ThinkingBlockHash,
		"thinking reconstructed from the teed stream")
}

func TestGateway_NudgeInjectionLifecycle(t *testing.T) {
	var forwarded []byte
	upstream := anthropicUpstream(t, `{"content":[{"type":"text","text":"ok"}]}`, &forwarded)
	env := newGatewayEnv(t, upstream.URL, nil)

	ctx := context.Background()
	ag, err := env.agents.EnsureAgent(ctx, "sk-nudged")
	require.NoError(t, err)

	_, err = env.db.Nudge.Create().
		SetID(ids.NewNudgeID()).
		SetAgentID(ag.ID).
		SetCheckpointID("ic-prior").
		SetSessionID("prior-session").
		SetMessage("A recent response raised integrity concerns (autonomy violation).").
		SetStatus(nudge.StatusPending).
		Save(ctx)
	require.NoError(t, err)

	rec := env.do(t, http.MethodPost, "/anthropic/v1/messages",
		map[string]string{"x-api-key": "sk-nudged"},
		`{"model":"claude-sonnet-4-5","system":"You are helpful.","messages":[{"role":"user","content":"hi"}]}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1", rec.Header().Get(HeaderNudgeCount))

	fwd := decodeBody(t, string(forwarded))
	system, _ := fwd["system"].(string)
	assert.Contains(t, system, "integrity concerns", "nudge spliced into the system prompt")

	env.drain(t)
	pending, err := env.nudges.PendingForAgent(ctx, ag.ID)
	require.NoError(t, err)
	assert.Empty(t, pending, "delivered nudge left the pending set")
}

func TestGateway_HealthAndRegistry(t *testing.T) {
	env := newGatewayEnv(t, "http://127.0.0.1:1", nil)

	t.Run("health", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/health", nil, "")
		assert.Equal(t, http.StatusOK, rec.Code)

		var health map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
		assert.Equal(t, "healthy", health["status"])
		assert.Equal(t, true, health["aip_enabled"])
		assert.NotEmpty(t, health["version"])
		assert.NotEmpty(t, health["timestamp"])
	})

	t.Run("readiness consults the database", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/ready", nil, "")
		assert.Equal(t, http.StatusOK, rec.Code)

		var readiness map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &readiness))
		assert.Equal(t, "ready", readiness["status"])
		assert.Equal(t, true, readiness["chain_ready"])
	})

	t.Run("models registry", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/models.json", nil, "")
		assert.Equal(t, http.StatusOK, rec.Code)

		var registry map[string][]modelInfo
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &registry))
		for _, provider := range []string{"anthropic", "openai", "gemini"} {
			assert.NotEmpty(t, registry[provider])
		}
	})

	t.Run("cors preflight", func(t *testing.T) {
		rec := env.do(t, http.MethodOptions, "/anthropic/v1/messages",
			map[string]string{"Origin": "https://app.example.com"}, "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), HeaderVerdict)
	})
}
