package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnthropicExtractBuffered(t *testing.T) {
	t.Run("thinking and text blocks", func(t *testing.T) {
		body := `{
			"model": "claude-3-5-sonnet",
			"content": [
				{"type": "thinking", "thinking": "I should explain generics carefully."},
				{"type": "text", "text": "Generics allow parameterized types."}
			]
		}`
		ex := (&AnthropicAdapter{}).ExtractBuffered([]byte(body))
		require.NotNil(t, ex)
		assert.Equal(t, "I should explain generics carefully.", ex.Thinking)
		assert.Equal(t, "Generics allow parameterized types.", ex.Text)
		assert.Equal(t, "claude-3-5-sonnet", ex.Model)
		assert.True(t, ex.HasThinking())
	})

	t.Run("multiple thinking blocks joined by separator", func(t *testing.T) {
		body := `{"content": [
			{"type": "thinking", "thinking": "first"},
			{"type": "text", "text": "mid"},
			{"type": "thinking", "thinking": "second"}
		]}`
		ex := (&AnthropicAdapter{}).ExtractBuffered([]byte(body))
		require.NotNil(t, ex)
		assert.Equal(t, "first\n\n---\n\nsecond", ex.Thinking)
	})

	t.Run("tool use block", func(t *testing.T) {
		body := `{"content": [
			{"type": "tool_use", "id": "tu_1", "name": "get_weather", "input": {"city": "Oslo"}}
		]}`
		ex := (&AnthropicAdapter{}).ExtractBuffered([]byte(body))
		require.NotNil(t, ex)
		require.Len(t, ex.ToolCalls, 1)
		assert.Equal(t, "get_weather", ex.ToolCalls[0].Name)
		assert.JSONEq(t, `{"city":"Oslo"}`, ex.ToolCalls[0].Arguments)
		assert.False(t, ex.HasThinking())
	})

	t.Run("text only has no thinking", func(t *testing.T) {
		body := `{"content": [{"type": "text", "text": "hi"}]}`
		ex := (&AnthropicAdapter{}).ExtractBuffered([]byte(body))
		require.NotNil(t, ex)
		assert.False(t, ex.HasThinking())
		assert.Equal(t, "hi", ex.Text)
	})

	t.Run("malformed json yields nil, not error", func(t *testing.T) {
		assert.Nil(t, (&AnthropicAdapter{}).ExtractBuffered([]byte(`{"content": [`)))
		assert.Nil(t, (&AnthropicAdapter{}).ExtractBuffered([]byte(`{}`)))
	})
}

func TestAnthropicExtractStream(t *testing.T) {
	sse := "event: message_start\n" +
		`data: {"type":"message_start","message":{"model":"claude-3-5-sonnet"}}` + "\n\n" +
		`data: {"type":"content_block_start","index":0,"content_block":{"type":"thinking"}}` + "\n\n" +
		`data: {"type":"content_block_delta","index":0,"delta":{"type":"thinking_delta","thinking":"step one, "}}` + "\n\n" +
		`data: {"type":"content_block_delta","index":0,"delta":{"type":"thinking_delta","thinking":"step two"}}` + "\n\n" +
		`data: {"type":"content_block_stop","index":0}` + "\n\n" +
		`data: {"type":"content_block_start","index":1,"content_block":{"type":"text"}}` + "\n\n" +
		`data: {"type":"content_block_delta","index":1,"delta":{"type":"text_delta","text":"Answer."}}` + "\n\n" +
		`data: {"type":"content_block_start","index":2,"content_block":{"type":"tool_use","id":"tu_9","name":"search"}}` + "\n\n" +
		`data: {"type":"content_block_delta","index":2,"delta":{"type":"input_json_delta","partial_json":"{\"q\":"}}` + "\n\n" +
		`data: {"type":"content_block_delta","index":2,"delta":{"type":"input_json_delta","partial_json":"\"go\"}"}}` + "\n\n" +
		`data: {"type":"content_block_stop","index":2}` + "\n\n" +
		"data: [DONE]\n"

	ex := (&AnthropicAdapter{}).ExtractStream(sse)
	require.NotNil(t, ex)
	assert.Equal(t, "step one, step two", ex.Thinking)
	assert.Equal(t, "Answer.", ex.Text)
	assert.Equal(t, "claude-3-5-sonnet", ex.Model)
	require.Len(t, ex.ToolCalls, 1)
	assert.Equal(t, "search", ex.ToolCalls[0].Name)
	assert.Equal(t, `{"q":"go"}`, ex.ToolCalls[0].Arguments)
}

func TestAnthropicStreamParity(t *testing.T) {
	// A response expressible both buffered and as SSE must extract identically.
	buffered := `{"model":"m","content":[
		{"type":"thinking","thinking":"reason here"},
		{"type":"text","text":"visible"}
	]}`
	sse := `data: {"type":"message_start","message":{"model":"m"}}` + "\n\n" +
		`data: {"type":"content_block_start","index":0,"content_block":{"type":"thinking"}}` + "\n\n" +
		`data: {"type":"content_block_delta","index":0,"delta":{"type":"thinking_delta","thinking":"reason here"}}` + "\n\n" +
		`data: {"type":"content_block_start","index":1,"content_block":{"type":"text"}}` + "\n\n" +
		`data: {"type":"content_block_delta","index":1,"delta":{"type":"text_delta","text":"visible"}}` + "\n\n" +
		"data: [DONE]\n"

	a := &AnthropicAdapter{}
	fromBuf := a.ExtractBuffered([]byte(buffered))
	fromSSE := a.ExtractStream(sse)
	require.NotNil(t, fromBuf)
	require.NotNil(t, fromSSE)
	assert.Equal(t, fromBuf.Thinking, fromSSE.Thinking)
	assert.Equal(t, fromBuf.Text, fromSSE.Text)
	assert.Equal(t, fromBuf.ToolCalls, fromSSE.ToolCalls)
}

func TestAnthropicStreamSkipsMalformedLines(t *testing.T) {
	sse := "data: not-json\n\n" +
		`data: {"type":"content_block_start","index":0,"content_block":{"type":"thinking"}}` + "\n\n" +
		`data: {"type":"content_block_delta","index":0,"delta":{"type":"thinking_delta","thinking":"ok"}}` + "\n\n" +
		"data: [DONE]\n"
	ex := (&AnthropicAdapter{}).ExtractStream(sse)
	require.NotNil(t, ex)
	assert.Equal(t, "ok", ex.Thinking)
}
