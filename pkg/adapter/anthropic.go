package adapter

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/mnemom/smoltbot/pkg/models"
)

// AnthropicAdapter parses Anthropic Messages API responses.
type AnthropicAdapter struct{}

// Provider identifies the upstream this adapter handles.
func (a *AnthropicAdapter) Provider() models.Provider { return models.ProviderAnthropic }

// anthropicResponse is the buffered Messages API response shape.
type anthropicResponse struct {
	Model   string `json:"model"`
	Content []struct {
		Type     string          `json:"type"`
		Text     string          `json:"text"`
		Thinking string          `json:"thinking"`
		ID       string          `json:"id"`
		Name     string          `json:"name"`
		Input    json.RawMessage `json:"input"`
	} `json:"content"`
}

// ExtractBuffered iterates content[], collecting thinking blocks (joined by
// the separator), text blocks, and tool_use blocks.
func (a *AnthropicAdapter) ExtractBuffered(body []byte) *Extraction {
	var resp anthropicResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil
	}

	var blocks []Block
	for _, block := range resp.Content {
		switch block.Type {
		case "thinking":
			blocks = append(blocks, &ThinkingBlock{Content: block.Thinking})
		case "text":
			blocks = append(blocks, &TextBlock{Content: block.Text})
		case "tool_use":
			blocks = append(blocks, &ToolUseBlock{
				ID:        block.ID,
				Name:      block.Name,
				Arguments: string(block.Input),
			})
		}
	}
	return collect(models.ProviderAnthropic, resp.Model, blocks)
}

// anthropicStreamEvent covers the SSE event types we accumulate.
type anthropicStreamEvent struct {
	Type    string `json:"type"`
	Index   int    `json:"index"`
	Message struct {
		Model string `json:"model"`
	} `json:"message"`
	ContentBlock struct {
		Type string `json:"type"`
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"content_block"`
	Delta struct {
		Type        string `json:"type"`
		Text        string `json:"text"`
		Thinking    string `json:"thinking"`
		PartialJSON string `json:"partial_json"`
	} `json:"delta"`
}

// anthropicBlockState accumulates one content block across SSE events.
type anthropicBlockState struct {
	blockType string
	toolID    string
	toolName  string
	buf       strings.Builder
}

// ExtractStream indexes content blocks by `index`: content_block_start
// registers (type, name?), content_block_delta appends thinking_delta /
// text_delta / input_json_delta, content_block_stop finalizes tool inputs.
func (a *AnthropicAdapter) ExtractStream(sse string) *Extraction {
	blocks := make(map[int]*anthropicBlockState)
	var order []int
	model := ""

	sseDataLines(sse, func(data string) bool {
		var ev anthropicStreamEvent
		if err := json.Unmarshal([]byte(data), &ev); err != nil {
			return true // resilient: skip malformed lines
		}

		switch ev.Type {
		case "message_start":
			if ev.Message.Model != "" {
				model = ev.Message.Model
			}
		case "content_block_start":
			blocks[ev.Index] = &anthropicBlockState{
				blockType: ev.ContentBlock.Type,
				toolID:    ev.ContentBlock.ID,
				toolName:  ev.ContentBlock.Name,
			}
			order = append(order, ev.Index)
		case "content_block_delta":
			st, ok := blocks[ev.Index]
			if !ok {
				return true
			}
			switch ev.Delta.Type {
			case "thinking_delta":
				st.buf.WriteString(ev.Delta.Thinking)
			case "text_delta":
				st.buf.WriteString(ev.Delta.Text)
			case "input_json_delta":
				st.buf.WriteString(ev.Delta.PartialJSON)
			}
		}
		return true
	})

	if len(blocks) == 0 {
		return nil
	}
	sort.Ints(order)

	var out []Block
	for _, idx := range order {
		st := blocks[idx]
		switch st.blockType {
		case "thinking":
			out = append(out, &ThinkingBlock{Content: st.buf.String()})
		case "text":
			out = append(out, &TextBlock{Content: st.buf.String()})
		case "tool_use":
			out = append(out, &ToolUseBlock{
				ID:        st.toolID,
				Name:      st.toolName,
				Arguments: st.buf.String(),
			})
		}
	}
	return collect(models.ProviderAnthropic, model, out)
}
