package gateway

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnemom/smoltbot/pkg/models"
)

func TestExtractCredential(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		wantCred   string
		wantHeader string
		wantOK     bool
	}{
		{
			name:       "anthropic api key",
			headers:    map[string]string{"x-api-key": "sk-ant-123"},
			wantCred:   "sk-ant-123",
			wantHeader: "x-api-key",
			wantOK:     true,
		},
		{
			name:       "bearer token",
			headers:    map[string]string{"Authorization": "Bearer sk-openai-456"},
			wantCred:   "sk-openai-456",
			wantHeader: "Authorization",
			wantOK:     true,
		},
		{
			name:       "google api key",
			headers:    map[string]string{"x-goog-api-key": "AIzaSomething"},
			wantCred:   "AIzaSomething",
			wantHeader: "x-goog-api-key",
			wantOK:     true,
		},
		{
			name:    "basic auth is not a credential",
			headers: map[string]string{"Authorization": "Basic dXNlcjpwYXNz"},
			wantOK:  false,
		},
		{
			name:   "no credential",
			wantOK: false,
		},
		{
			name:       "api key wins over bearer",
			headers:    map[string]string{"x-api-key": "first", "Authorization": "Bearer second"},
			wantCred:   "first",
			wantHeader: "x-api-key",
			wantOK:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := http.Header{}
			for k, v := range tt.headers {
				h.Set(k, v)
			}
			cred, header, ok := extractCredential(h)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantCred, cred)
			assert.Equal(t, tt.wantHeader, header)
		})
	}
}

func decodeBody(t *testing.T, raw string) map[string]any {
	t.Helper()
	var obj map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &obj))
	return obj
}

func TestInjectReasoning(t *testing.T) {
	t.Run("anthropic enables thinking", func(t *testing.T) {
		body := decodeBody(t, `{"model":"claude-sonnet-4-5","messages":[]}`)
		injectReasoning(models.ProviderAnthropic, "claude-sonnet-4-5", body)

		thinking, ok := body["thinking"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "enabled", thinking["type"])
		assert.Equal(t, anthropicThinkingBudget, thinking["budget_tokens"])
	})

	t.Run("anthropic keeps operator thinking config", func(t *testing.T) {
		body := decodeBody(t, `{"thinking":{"type":"disabled"}}`)
		injectReasoning(models.ProviderAnthropic, "claude-sonnet-4-5", body)

		thinking := body["thinking"].(map[string]any)
		assert.Equal(t, "disabled", thinking["type"])
	})

	t.Run("openai gpt-5 gets reasoning effort", func(t *testing.T) {
		body := decodeBody(t, `{"model":"gpt-5-mini"}`)
		injectReasoning(models.ProviderOpenAI, "gpt-5-mini", body)
		assert.Equal(t, "medium", body["reasoning_effort"])
	})

	t.Run("openai non-reasoning model untouched", func(t *testing.T) {
		body := decodeBody(t, `{"model":"gpt-4o"}`)
		injectReasoning(models.ProviderOpenAI, "gpt-4o", body)
		_, ok := body["reasoning_effort"]
		assert.False(t, ok)
	})

	t.Run("gemini 2.5 gets thinking budget", func(t *testing.T) {
		body := decodeBody(t, `{}`)
		injectReasoning(models.ProviderGemini, "gemini-2.5-pro", body)

		gen := body["generationConfig"].(map[string]any)
		tc := gen["thinkingConfig"].(map[string]any)
		assert.Equal(t, geminiThinkingBudget, tc["thinkingBudget"])
		assert.Equal(t, true, tc["includeThoughts"])
	})

	t.Run("gemini 3 gets thinking level", func(t *testing.T) {
		body := decodeBody(t, `{"generationConfig":{"temperature":0.2}}`)
		injectReasoning(models.ProviderGemini, "gemini-3-pro-preview", body)

		gen := body["generationConfig"].(map[string]any)
		tc := gen["thinkingConfig"].(map[string]any)
		assert.Equal(t, "HIGH", tc["thinkingLevel"])
		assert.Equal(t, 0.2, gen["temperature"], "existing generationConfig preserved")
	})
}

func TestInjectNudges(t *testing.T) {
	notices := []string{"Stay within your declared bounded actions."}

	t.Run("anthropic appends to system string", func(t *testing.T) {
		body := decodeBody(t, `{"system":"You are helpful."}`)
		require.True(t, injectNudges(models.ProviderAnthropic, body, notices))
		assert.Equal(t, "You are helpful.\n\nStay within your declared bounded actions.", body["system"])
	})

	t.Run("anthropic appends text block", func(t *testing.T) {
		body := decodeBody(t, `{"system":[{"type":"text","text":"You are helpful."}]}`)
		require.True(t, injectNudges(models.ProviderAnthropic, body, notices))

		blocks := body["system"].([]any)
		require.Len(t, blocks, 2)
		added := blocks[1].(map[string]any)
		assert.Equal(t, "text", added["type"])
		assert.Equal(t, notices[0], added["text"])
	})

	t.Run("anthropic sets system when absent", func(t *testing.T) {
		body := decodeBody(t, `{}`)
		require.True(t, injectNudges(models.ProviderAnthropic, body, notices))
		assert.Equal(t, notices[0], body["system"])
	})

	t.Run("openai prepends system message", func(t *testing.T) {
		body := decodeBody(t, `{"messages":[{"role":"user","content":"hi"}]}`)
		require.True(t, injectNudges(models.ProviderOpenAI, body, notices))

		messages := body["messages"].([]any)
		require.Len(t, messages, 2)
		first := messages[0].(map[string]any)
		assert.Equal(t, "system", first["role"])
		assert.Equal(t, notices[0], first["content"])
	})

	t.Run("gemini skipped", func(t *testing.T) {
		body := decodeBody(t, `{"contents":[]}`)
		assert.False(t, injectNudges(models.ProviderGemini, body, notices))
	})

	t.Run("no notices is a no-op", func(t *testing.T) {
		body := decodeBody(t, `{"system":"s"}`)
		assert.False(t, injectNudges(models.ProviderAnthropic, body, nil))
		assert.Equal(t, "s", body["system"])
	})
}

func TestParseRequest(t *testing.T) {
	t.Run("anthropic", func(t *testing.T) {
		body := []byte(`{
			"model": "claude-sonnet-4-5",
			"stream": true,
			"tools": [{"name": "read_file"}, {"name": "run_tests"}],
			"messages": [
				{"role": "user", "content": "first"},
				{"role": "assistant", "content": "ok"},
				{"role": "user", "content": [{"type":"text","text":"explain generics"}]}
			]
		}`)
		obj, meta := parseRequest(models.ProviderAnthropic, body, "v1/messages")
		require.NotNil(t, obj)
		assert.Equal(t, "claude-sonnet-4-5", meta.Model)
		assert.True(t, meta.Stream)
		assert.Equal(t, []string{"read_file", "run_tests"}, meta.ToolNames)
		assert.Equal(t, "explain generics", meta.UserText)
	})

	t.Run("openai tool names from function wrapper", func(t *testing.T) {
		body := []byte(`{"model":"gpt-5","tools":[{"type":"function","function":{"name":"search"}}],"messages":[{"role":"user","content":"hi"}]}`)
		_, meta := parseRequest(models.ProviderOpenAI, body, "v1/chat/completions")
		assert.Equal(t, []string{"search"}, meta.ToolNames)
		assert.Equal(t, "hi", meta.UserText)
		assert.False(t, meta.Stream)
	})

	t.Run("gemini model and stream from path", func(t *testing.T) {
		body := []byte(`{"contents":[{"role":"user","parts":[{"text":"hello"}]}]}`)
		_, meta := parseRequest(models.ProviderGemini, body, "v1beta/models/gemini-2.5-pro:streamGenerateContent")
		assert.Equal(t, "gemini-2.5-pro", meta.Model)
		assert.True(t, meta.Stream)
		assert.Equal(t, "hello", meta.UserText)
	})

	t.Run("invalid json forwards raw", func(t *testing.T) {
		obj, meta := parseRequest(models.ProviderAnthropic, []byte("not json"), "v1/messages")
		assert.Nil(t, obj)
		assert.Empty(t, meta.Model)
	})
}

func TestAdmissionError(t *testing.T) {
	status, envelope := admissionError(models.QuotaReasonAgentPaused)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, errTypeContainment, envelope.Type)

	status, envelope = admissionError(models.QuotaReasonQuotaExceeded)
	assert.Equal(t, http.StatusPaymentRequired, status)
	assert.Equal(t, errTypeBilling, envelope.Type)
}
