package adapter

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/mnemom/smoltbot/pkg/models"
)

// OpenAIAdapter parses OpenAI Chat Completions responses.
// Reasoning models surface thinking as message.reasoning_content.
type OpenAIAdapter struct{}

// Provider identifies the upstream this adapter handles.
func (a *OpenAIAdapter) Provider() models.Provider { return models.ProviderOpenAI }

type openAIToolCall struct {
	Index    int    `json:"index"`
	ID       string `json:"id"`
	Function struct {
		Name      string `json:"name"`
		Arguments string `json:"arguments"`
	} `json:"function"`
}

type openAIResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Content          string           `json:"content"`
			ReasoningContent string           `json:"reasoning_content"`
			ToolCalls        []openAIToolCall `json:"tool_calls"`
		} `json:"message"`
	} `json:"choices"`
}

// ExtractBuffered reads choices[0]: content is text, reasoning_content is
// thinking, tool_calls carry {function: {name, arguments}}.
func (a *OpenAIAdapter) ExtractBuffered(body []byte) *Extraction {
	var resp openAIResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil
	}
	if len(resp.Choices) == 0 {
		return nil
	}

	msg := resp.Choices[0].Message
	blocks := []Block{
		&ThinkingBlock{Content: msg.ReasoningContent},
		&TextBlock{Content: msg.Content},
	}
	for _, tc := range msg.ToolCalls {
		blocks = append(blocks, &ToolUseBlock{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: tc.Function.Arguments,
		})
	}
	return collect(models.ProviderOpenAI, resp.Model, blocks)
}

type openAIStreamChunk struct {
	Model   string `json:"model"`
	Choices []struct {
		Delta struct {
			Content          string           `json:"content"`
			ReasoningContent string           `json:"reasoning_content"`
			ToolCalls        []openAIToolCall `json:"tool_calls"`
		} `json:"delta"`
	} `json:"choices"`
}

// openAIToolState accumulates one streamed tool call keyed by index.
type openAIToolState struct {
	id   string
	name strings.Builder
	args strings.Builder
}

// ExtractStream accumulates choices[0].delta across SSE chunks:
// content → text, reasoning_content → thinking, tool_calls keyed by index
// with name/arguments fragments concatenated.
func (a *OpenAIAdapter) ExtractStream(sse string) *Extraction {
	var thinking, text strings.Builder
	toolStates := make(map[int]*openAIToolState)
	model := ""

	sseDataLines(sse, func(data string) bool {
		var chunk openAIStreamChunk
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			return true
		}
		if chunk.Model != "" {
			model = chunk.Model
		}
		if len(chunk.Choices) == 0 {
			return true
		}

		delta := chunk.Choices[0].Delta
		thinking.WriteString(delta.ReasoningContent)
		text.WriteString(delta.Content)
		for _, tc := range delta.ToolCalls {
			st, ok := toolStates[tc.Index]
			if !ok {
				st = &openAIToolState{}
				toolStates[tc.Index] = st
			}
			if tc.ID != "" {
				st.id = tc.ID
			}
			st.name.WriteString(tc.Function.Name)
			st.args.WriteString(tc.Function.Arguments)
		}
		return true
	})

	blocks := []Block{
		&ThinkingBlock{Content: thinking.String()},
		&TextBlock{Content: text.String()},
	}
	indexes := make([]int, 0, len(toolStates))
	for idx := range toolStates {
		indexes = append(indexes, idx)
	}
	sort.Ints(indexes)
	for _, idx := range indexes {
		st := toolStates[idx]
		blocks = append(blocks, &ToolUseBlock{
			ID:        st.id,
			Name:      st.name.String(),
			Arguments: st.args.String(),
		})
	}
	return collect(models.ProviderOpenAI, model, blocks)
}
