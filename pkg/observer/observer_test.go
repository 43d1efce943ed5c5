package observer

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnemom/smoltbot/pkg/ids"
	"github.com/mnemom/smoltbot/pkg/integrity"
	"github.com/mnemom/smoltbot/pkg/models"
	"github.com/mnemom/smoltbot/pkg/services"
	testdb "github.com/mnemom/smoltbot/test/database"
)

type fakeLogAPI struct {
	mu        sync.Mutex
	entries   []LogEntry
	requests  map[string]string
	responses map[string]string
	deleted   []string
}

func newFakeLogAPI() *fakeLogAPI {
	return &fakeLogAPI{
		requests:  make(map[string]string),
		responses: make(map[string]string),
	}
}

func (f *fakeLogAPI) add(entry LogEntry, request, response string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, entry)
	f.requests[entry.ID] = request
	f.responses[entry.ID] = response
}

func (f *fakeLogAPI) isDeleted(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, d := range f.deleted {
		if d == id {
			return true
		}
	}
	return false
}

func (f *fakeLogAPI) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/logs":
			pending := make([]LogEntry, 0, len(f.entries))
			for _, e := range f.entries {
				deleted := false
				for _, d := range f.deleted {
					if d == e.ID {
						deleted = true
					}
				}
				if !deleted {
					pending = append(pending, e)
				}
			}
			json.NewEncoder(w).Encode(listEnvelope{Success: true, Result: pending})

		case r.Method == http.MethodGet && strings.HasSuffix(r.URL.Path, "/request"):
			id := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/logs/"), "/request")
			w.Write([]byte(f.requests[id]))

		case r.Method == http.MethodGet && strings.HasSuffix(r.URL.Path, "/response"):
			id := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/logs/"), "/response")
			w.Write([]byte(f.responses[id]))

		case r.Method == http.MethodDelete:
			f.deleted = append(f.deleted, strings.TrimPrefix(r.URL.Path, "/logs/"))
			w.WriteHeader(http.StatusOK)

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

type scriptedAnalyzer struct {
	reply string
}

func (s *scriptedAnalyzer) Analyze(_ context.Context, _ integrity.Prompt) (string, string, error) {
	return s.reply, "analysis-model-small", nil
}

const (
	clearAnalysis = `{"verdict":"clear","concerns":[],"reasoning_summary":"Aligned","conscience_context":{"values_checked":["honesty"],"consultation_depth":"standard"}}`
	goodTrace     = `{"alternatives":["answer directly","ask for clarification"],"selection_reasoning":"The request was unambiguous.","values_applied":["honesty","invented_value"]}`
)

type observerEnv struct {
	api         *fakeLogAPI
	observer    *Observer
	agents      *services.AgentService
	cards       *services.CardService
	checkpoints *services.CheckpointService
}

func newObserverEnv(t *testing.T) *observerEnv {
	t.Helper()

	client := testdb.NewTestClient(t)
	logger := slog.New(slog.DiscardHandler)

	api := newFakeLogAPI()
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)

	agents := services.NewAgentService(client.Client)
	cards := services.NewCardService(client.Client)
	checkpoints := services.NewCheckpointService(client.Client)
	engine := integrity.NewEngine(&scriptedAnalyzer{reply: clearAnalysis}, logger)

	obs := New(Config{OrgMode: models.ValueLayerAugment}, Deps{
		Logs:        NewLogClient(srv.URL, "log-token"),
		Agents:      agents,
		Cards:       cards,
		Checkpoints: checkpoints,
		Engine:      engine,
		TraceModel:  &scriptedAnalyzer{reply: goodTrace},
	}, logger)

	return &observerEnv{
		api:         api,
		observer:    obs,
		agents:      agents,
		cards:       cards,
		checkpoints: checkpoints,
	}
}

// seedAgent creates the agent row plus its default card and returns
// (agentID, sessionID) for metadata stamping.
func (env *observerEnv) seedAgent(t *testing.T, credential string) (string, string) {
	t.Helper()
	ctx := context.Background()
	ag, err := env.agents.EnsureAgent(ctx, credential)
	require.NoError(t, err)
	_, err = env.cards.PutCard(ctx, ag.ID, models.DefaultAlignmentCard(ag.ID))
	require.NoError(t, err)
	return ag.ID, ids.SessionID(ids.AgentHash(credential), time.Now().Unix())
}

func metadataFor(agentID, sessionID string) string {
	raw, _ := json.Marshal(map[string]string{"agent_id": agentID, "session_id": sessionID})
	return string(raw)
}

func TestObserver_FillsCheckpointGap(t *testing.T) {
	env := newObserverEnv(t)
	agentID, sessionID := env.seedAgent(t, "sk-observed")

	env.api.add(LogEntry{
		ID:         "log-1",
		Provider:   "anthropic",
		Model:      "claude-sonnet-4-5",
		Success:    true,
		StatusCode: 200,
		Metadata:   metadataFor(agentID, sessionID),
	},
		`{"model":"claude-sonnet-4-5","messages":[{"role":"user","content":"summarize the report"}]}`,
		`{"model":"claude-sonnet-4-5","content":[{"type":"thinking","thinking":"The report has three sections, I will summarize each."},{"type":"text","text":"Summary..."}]}`)

	env.observer.Tick(context.Background())

	rows, err := env.checkpoints.ListSession(context.Background(), agentID, sessionID, 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "observer", string(rows[0].Source))
	assert.Equal(t, "clear", string(rows[0].Verdict))
	require.NotNil(t, rows[0].LinkedTraceID)
	assert.True(t, strings.HasPrefix(*rows[0].LinkedTraceID, "tr-"))
	assert.True(t, env.api.isDeleted("log-1"), "processed log is removed")
}

func TestObserver_GatewayCheckpointWins(t *testing.T) {
	env := newObserverEnv(t)
	agentID, sessionID := env.seedAgent(t, "sk-covered")

	ctx := context.Background()
	cp := &models.IntegrityCheckpoint{
		CheckpointID: ids.NewCheckpointID(),
		AgentID:      agentID,
		SessionID:    sessionID,
		Timestamp:    time.Now().UTC(),
		Provider:     models.ProviderAnthropic,
		Verdict:      models.VerdictClear,
		Source:       models.SourceGateway,
	}
	require.NoError(t, env.checkpoints.StoreCheckpoint(ctx, cp))

	env.api.add(LogEntry{
		ID:         "log-2",
		Provider:   "anthropic",
		Success:    true,
		StatusCode: 200,
		Metadata:   metadataFor(agentID, sessionID),
	},
		`{"messages":[{"role":"user","content":"hi"}]}`,
		`{"content":[{"type":"thinking","thinking":"Plenty of reasoning to trace here."}]}`)

	env.observer.Tick(ctx)

	rows, err := env.checkpoints.ListSession(ctx, agentID, sessionID, 10)
	require.NoError(t, err)
	require.Len(t, rows, 1, "no duplicate checkpoint")
	require.NotNil(t, rows[0].LinkedTraceID, "trace linked onto the gateway checkpoint")
	assert.True(t, env.api.isDeleted("log-2"))
}

func TestObserver_SkipsUnattributedAndFailedLogs(t *testing.T) {
	env := newObserverEnv(t)
	agentID, sessionID := env.seedAgent(t, "sk-skips")

	env.api.add(LogEntry{
		ID: "log-no-meta", Provider: "anthropic", Success: true, StatusCode: 200,
		Metadata: "{}",
	}, "{}", `{"content":[{"type":"thinking","thinking":"reasoning"}]}`)

	env.api.add(LogEntry{
		ID: "log-failed", Provider: "anthropic", Success: false, StatusCode: 529,
		Metadata: metadataFor(agentID, sessionID),
	}, "{}", `{"error":{"type":"overloaded_error"}}`)

	env.observer.Tick(context.Background())

	rows, err := env.checkpoints.ListSession(context.Background(), agentID, sessionID, 10)
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.True(t, env.api.isDeleted("log-no-meta"))
	assert.True(t, env.api.isDeleted("log-failed"))
}

func TestObserver_ReconstructsStreamedResponse(t *testing.T) {
	env := newObserverEnv(t)
	agentID, sessionID := env.seedAgent(t, "sk-streamed")

	streamed, _ := json.Marshal(map[string]any{
		"streamed_data": []json.RawMessage{
			json.RawMessage(`{"choices":[{"delta":{"reasoning_content":"Step one, "}}]}`),
			json.RawMessage(`{"choices":[{"delta":{"reasoning_content":"step two."}}]}`),
			json.RawMessage(`{"choices":[{"delta":{"content":"Answer."}}]}`),
		},
	})

	env.api.add(LogEntry{
		ID:         "log-3",
		Provider:   "openai",
		Model:      "gpt-5",
		Success:    true,
		StatusCode: 200,
		Metadata:   metadataFor(agentID, sessionID),
	},
		`{"model":"gpt-5","messages":[{"role":"user","content":"hi"}]}`,
		string(streamed))

	env.observer.Tick(context.Background())

	rows, err := env.checkpoints.ListSession(context.Background(), agentID, sessionID, 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.NotEmpty(t, rows[0].ThinkingBlockHash, "reasoning recovered from streamed_data")
}

func TestReconstructSSE(t *testing.T) {
	t.Run("streamed wrapper", func(t *testing.T) {
		sse, ok := ReconstructSSE([]byte(`{"streamed_data":[{"a":1},{"b":2}]}`))
		assert.True(t, ok)
		assert.Equal(t, "data: {\"a\":1}\n\ndata: {\"b\":2}\n\n", sse)
	})

	t.Run("plain body untouched", func(t *testing.T) {
		body := `{"content":[{"type":"text","text":"hi"}]}`
		out, ok := ReconstructSSE([]byte(body))
		assert.False(t, ok)
		assert.Equal(t, body, out)
	})
}

func TestValidValues(t *testing.T) {
	card := models.DefaultAlignmentCard("smolt-test")

	kept := validValues([]string{"honesty", "world_peace"}, card)
	assert.Equal(t, []string{"honesty"}, kept, "undeclared values are dropped")

	assert.Nil(t, validValues([]string{"honesty"}, nil))
}

func TestReasoningConfidence(t *testing.T) {
	assert.Equal(t, 0.3, reasoningConfidence("short"))
	assert.Equal(t, 0.5, reasoningConfidence(strings.Repeat("a", 500)))
	assert.Equal(t, 0.7, reasoningConfidence(strings.Repeat("a", 2000)))
	assert.Equal(t, 0.85, reasoningConfidence(strings.Repeat("a", 8000)))
}
