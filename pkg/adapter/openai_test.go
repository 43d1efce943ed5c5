package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIExtractBuffered(t *testing.T) {
	t.Run("reasoning content and text", func(t *testing.T) {
		body := `{
			"model": "gpt-5",
			"choices": [{"message": {
				"content": "The answer is 4.",
				"reasoning_content": "2+2 is basic arithmetic."
			}}]
		}`
		ex := (&OpenAIAdapter{}).ExtractBuffered([]byte(body))
		require.NotNil(t, ex)
		assert.Equal(t, "2+2 is basic arithmetic.", ex.Thinking)
		assert.Equal(t, "The answer is 4.", ex.Text)
		assert.Equal(t, "gpt-5", ex.Model)
	})

	t.Run("tool calls", func(t *testing.T) {
		body := `{"choices": [{"message": {
			"tool_calls": [
				{"id": "call_1", "function": {"name": "lookup", "arguments": "{\"k\":1}"}}
			]
		}}]}`
		ex := (&OpenAIAdapter{}).ExtractBuffered([]byte(body))
		require.NotNil(t, ex)
		require.Len(t, ex.ToolCalls, 1)
		assert.Equal(t, "lookup", ex.ToolCalls[0].Name)
		assert.Equal(t, `{"k":1}`, ex.ToolCalls[0].Arguments)
	})

	t.Run("empty choices yields nil", func(t *testing.T) {
		assert.Nil(t, (&OpenAIAdapter{}).ExtractBuffered([]byte(`{"choices": []}`)))
	})
}

func TestOpenAIExtractStream(t *testing.T) {
	// Three reasoning chunks then two content chunks, per the streaming contract.
	sse := `data: {"model":"gpt-5","choices":[{"delta":{"reasoning_content":"think "}}]}` + "\n\n" +
		`data: {"choices":[{"delta":{"reasoning_content":"in "}}]}` + "\n\n" +
		`data: {"choices":[{"delta":{"reasoning_content":"parts"}}]}` + "\n\n" +
		`data: {"choices":[{"delta":{"content":"Hello "}}]}` + "\n\n" +
		`data: {"choices":[{"delta":{"content":"world"}}]}` + "\n\n" +
		"data: [DONE]\n"

	ex := (&OpenAIAdapter{}).ExtractStream(sse)
	require.NotNil(t, ex)
	assert.Equal(t, "think in parts", ex.Thinking)
	assert.Equal(t, "Hello world", ex.Text)
	assert.Equal(t, "gpt-5", ex.Model)
}

func TestOpenAIStreamToolCallAccumulation(t *testing.T) {
	sse := `data: {"choices":[{"delta":{"tool_calls":[{"index":0,"id":"call_7","function":{"name":"run_","arguments":""}}]}}]}` + "\n\n" +
		`data: {"choices":[{"delta":{"tool_calls":[{"index":0,"function":{"name":"query","arguments":"{\"sql\":"}}]}}]}` + "\n\n" +
		`data: {"choices":[{"delta":{"tool_calls":[{"index":0,"function":{"arguments":"\"select 1\"}"}}]}}]}` + "\n\n" +
		"data: [DONE]\n"

	ex := (&OpenAIAdapter{}).ExtractStream(sse)
	require.NotNil(t, ex)
	require.Len(t, ex.ToolCalls, 1)
	assert.Equal(t, "call_7", ex.ToolCalls[0].ID)
	assert.Equal(t, "run_query", ex.ToolCalls[0].Name)
	assert.Equal(t, `{"sql":"select 1"}`, ex.ToolCalls[0].Arguments)
}

func TestOpenAIStreamParity(t *testing.T) {
	buffered := `{"model":"gpt-5","choices":[{"message":{
		"content":"out",
		"reasoning_content":"why"
	}}]}`
	sse := `data: {"model":"gpt-5","choices":[{"delta":{"reasoning_content":"why"}}]}` + "\n\n" +
		`data: {"choices":[{"delta":{"content":"out"}}]}` + "\n\n" +
		"data: [DONE]\n"

	a := &OpenAIAdapter{}
	fromBuf := a.ExtractBuffered([]byte(buffered))
	fromSSE := a.ExtractStream(sse)
	require.NotNil(t, fromBuf)
	require.NotNil(t, fromSSE)
	assert.Equal(t, fromBuf.Thinking, fromSSE.Thinking)
	assert.Equal(t, fromBuf.Text, fromSSE.Text)
	assert.Equal(t, fromBuf.Model, fromSSE.Model)
}
