package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiExtractBuffered(t *testing.T) {
	t.Run("thought part plus text part", func(t *testing.T) {
		body := `{
			"modelVersion": "gemini-2.5-pro",
			"candidates": [{"content": {"parts": [
				{"thought": true, "text": "Let me consider the constraints."},
				{"text": "Here is the plan."}
			]}}]
		}`
		ex := (&GeminiAdapter{}).ExtractBuffered([]byte(body))
		require.NotNil(t, ex)
		assert.Equal(t, "Let me consider the constraints.", ex.Thinking)
		assert.Equal(t, "Here is the plan.", ex.Text)
		assert.Equal(t, "gemini-2.5-pro", ex.Model)
	})

	t.Run("function call part", func(t *testing.T) {
		body := `{"candidates": [{"content": {"parts": [
			{"functionCall": {"name": "list_files", "args": {"dir": "/tmp"}}}
		]}}]}`
		ex := (&GeminiAdapter{}).ExtractBuffered([]byte(body))
		require.NotNil(t, ex)
		require.Len(t, ex.ToolCalls, 1)
		assert.Equal(t, "list_files", ex.ToolCalls[0].Name)
		assert.JSONEq(t, `{"dir":"/tmp"}`, ex.ToolCalls[0].Arguments)
	})

	t.Run("no candidates yields nil", func(t *testing.T) {
		assert.Nil(t, (&GeminiAdapter{}).ExtractBuffered([]byte(`{"candidates": []}`)))
	})
}

func TestGeminiExtractStream(t *testing.T) {
	sse := `data: {"modelVersion":"gemini-2.5-flash","candidates":[{"content":{"parts":[{"thought":true,"text":"first "}]}}]}` + "\n\n" +
		`data: {"candidates":[{"content":{"parts":[{"thought":true,"text":"second"}]}}]}` + "\n\n" +
		`data: {"candidates":[{"content":{"parts":[{"text":"visible text"}]}}]}` + "\n\n" +
		"data: [DONE]\n"

	ex := (&GeminiAdapter{}).ExtractStream(sse)
	require.NotNil(t, ex)
	assert.Equal(t, "first second", ex.Thinking)
	assert.Equal(t, "visible text", ex.Text)
	assert.Equal(t, "gemini-2.5-flash", ex.Model)
}

func TestGeminiStreamParity(t *testing.T) {
	buffered := `{"modelVersion":"g","candidates":[{"content":{"parts":[
		{"thought":true,"text":"reasoning"},
		{"text":"output"}
	]}}]}`
	sse := `data: {"modelVersion":"g","candidates":[{"content":{"parts":[{"thought":true,"text":"reasoning"}]}}]}` + "\n\n" +
		`data: {"candidates":[{"content":{"parts":[{"text":"output"}]}}]}` + "\n\n" +
		"data: [DONE]\n"

	a := &GeminiAdapter{}
	fromBuf := a.ExtractBuffered([]byte(buffered))
	fromSSE := a.ExtractStream(sse)
	require.NotNil(t, fromBuf)
	require.NotNil(t, fromSSE)
	assert.Equal(t, fromBuf.Thinking, fromSSE.Thinking)
	assert.Equal(t, fromBuf.Text, fromSSE.Text)
}

func TestForProvider(t *testing.T) {
	assert.NotNil(t, ForProvider("anthropic"))
	assert.NotNil(t, ForProvider("openai"))
	assert.NotNil(t, ForProvider("gemini"))
	assert.Nil(t, ForProvider("cohere"))
}
