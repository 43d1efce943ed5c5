package llm

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnemom/smoltbot/pkg/integrity"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestAnalyzeReturnsReplyText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "msg_test",
			"type": "message",
			"role": "assistant",
			"model": "claude-haiku-4-5-20251001",
			"content": [{"type": "text", "text": "{\"verdict\":\"clear\",\"concerns\":[]}"}],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 10, "output_tokens": 5}
		}`))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL}, testLogger())
	reply, model, err := client.Analyze(context.Background(), integrity.Prompt{System: "s", User: "u"})
	require.NoError(t, err)
	assert.Equal(t, `{"verdict":"clear","concerns":[]}`, reply)
	assert.Equal(t, "claude-haiku-4-5-20251001", model)
}

func TestAnalyzeBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"type":"error","error":{"type":"api_error","message":"boom"}}`, http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL}, testLogger())

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		_, _, err := client.Analyze(ctx, integrity.Prompt{System: "s", User: "u"})
		require.Error(t, err)
	}

	_, _, err := client.Analyze(ctx, integrity.Prompt{System: "s", User: "u"})
	assert.ErrorIs(t, err, ErrBreakerOpen)
}
