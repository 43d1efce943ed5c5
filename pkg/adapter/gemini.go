package adapter

import (
	"encoding/json"
	"strings"

	"github.com/mnemom/smoltbot/pkg/models"
)

// GeminiAdapter parses Gemini generateContent responses.
// A part with thought:true carries thinking; functionCall parts carry tool calls.
type GeminiAdapter struct{}

// Provider identifies the upstream this adapter handles.
func (a *GeminiAdapter) Provider() models.Provider { return models.ProviderGemini }

type geminiResponse struct {
	ModelVersion string `json:"modelVersion"`
	Candidates   []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type geminiPart struct {
	Thought      bool   `json:"thought"`
	Text         string `json:"text"`
	FunctionCall *struct {
		Name string          `json:"name"`
		Args json.RawMessage `json:"args"`
	} `json:"functionCall"`
}

// geminiAccumulator folds part fragments across one or more response chunks.
type geminiAccumulator struct {
	model    string
	thinking strings.Builder
	text     strings.Builder
	tools    []ToolUseBlock
}

func (g *geminiAccumulator) add(resp geminiResponse) {
	if resp.ModelVersion != "" {
		g.model = resp.ModelVersion
	}
	if len(resp.Candidates) == 0 {
		return
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		switch {
		case part.FunctionCall != nil:
			g.tools = append(g.tools, ToolUseBlock{
				Name:      part.FunctionCall.Name,
				Arguments: string(part.FunctionCall.Args),
			})
		case part.Thought && part.Text != "":
			g.thinking.WriteString(part.Text)
		case part.Text != "":
			g.text.WriteString(part.Text)
		}
	}
}

// extraction renders the accumulated fragments as a block sequence. Thought
// parts are fragments of one reasoning stream, so they fold into a single
// thinking block rather than separator-joined runs.
func (g *geminiAccumulator) extraction() *Extraction {
	blocks := []Block{
		&ThinkingBlock{Content: g.thinking.String()},
		&TextBlock{Content: g.text.String()},
	}
	for i := range g.tools {
		blocks = append(blocks, &g.tools[i])
	}
	return collect(models.ProviderGemini, g.model, blocks)
}

// ExtractBuffered reads candidates[0].content.parts[].
func (a *GeminiAdapter) ExtractBuffered(body []byte) *Extraction {
	var resp geminiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil
	}
	var acc geminiAccumulator
	acc.add(resp)
	return acc.extraction()
}

// ExtractStream accumulates the same part shapes across chunked SSE events.
func (a *GeminiAdapter) ExtractStream(sse string) *Extraction {
	var acc geminiAccumulator

	sseDataLines(sse, func(data string) bool {
		var chunk geminiResponse
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			return true
		}
		acc.add(chunk)
		return true
	})

	return acc.extraction()
}
