// Package adapter extracts thinking, text, and tool-call blocks from
// provider-native response formats (Anthropic, OpenAI, Gemini), both
// buffered JSON and server-sent-event streams.
//
// Adapters are resilient by contract: malformed JSON is skipped, never
// surfaced as an error. A parse failure yields "no thinking found" so the
// integrity pipeline stays fail-open.
package adapter

import (
	"strings"

	"github.com/mnemom/smoltbot/pkg/models"
)

// Block is the tagged variant for extracted response content.
type Block interface {
	blockType() BlockType
}

// BlockType identifies the kind of extracted block.
type BlockType string

// Block type constants.
const (
	BlockTypeThinking BlockType = "thinking"
	BlockTypeText     BlockType = "text"
	BlockTypeToolUse  BlockType = "tool_use"
)

// ThinkingBlock is a run of the model's internal reasoning.
type ThinkingBlock struct{ Content string }

// TextBlock is a run of the model's visible text output.
type TextBlock struct{ Content string }

// ToolUseBlock is a tool invocation requested by the model.
type ToolUseBlock struct {
	ID        string
	Name      string
	Arguments string // JSON
}

func (b *ThinkingBlock) blockType() BlockType { return BlockTypeThinking }
func (b *TextBlock) blockType() BlockType     { return BlockTypeText }
func (b *ToolUseBlock) blockType() BlockType  { return BlockTypeToolUse }

// ThinkingSeparator joins multiple thinking blocks from one response.
const ThinkingSeparator = "\n\n---\n\n"

// collect folds an ordered block sequence into an Extraction: thinking
// blocks join on the separator, text blocks concatenate, tool blocks keep
// call order. Returns nil when nothing was extracted. Every adapter funnels
// through here so the variant set stays closed in one place.
func collect(provider models.Provider, model string, blocks []Block) *Extraction {
	var thinking []string
	var text strings.Builder
	var tools []ToolUseBlock

	for _, b := range blocks {
		switch v := b.(type) {
		case *ThinkingBlock:
			if v.Content != "" {
				thinking = append(thinking, v.Content)
			}
		case *TextBlock:
			text.WriteString(v.Content)
		case *ToolUseBlock:
			tools = append(tools, *v)
		}
	}

	if len(thinking) == 0 && text.Len() == 0 && len(tools) == 0 {
		return nil
	}

	joined := strings.Join(thinking, ThinkingSeparator)
	return &Extraction{
		Thinking:       joined,
		Text:           text.String(),
		ToolCalls:      tools,
		Provider:       provider,
		Model:          model,
		Confidence:     1.0,
		OriginalTokens: estimateTokens(joined),
	}
}

// Extraction is the collected result of parsing one provider response.
type Extraction struct {
	Thinking   string
	Text       string
	ToolCalls  []ToolUseBlock
	Provider   models.Provider
	Model      string
	Confidence float64
	// OriginalTokens is a rough token estimate of the thinking content
	// before any truncation applied downstream.
	OriginalTokens int
}

// HasThinking reports whether any reasoning content was found.
func (e *Extraction) HasThinking() bool {
	return e != nil && strings.TrimSpace(e.Thinking) != ""
}

// ToolNames returns the distinct tool names in call order.
func (e *Extraction) ToolNames() []string {
	seen := make(map[string]struct{}, len(e.ToolCalls))
	names := make([]string, 0, len(e.ToolCalls))
	for _, tc := range e.ToolCalls {
		if _, ok := seen[tc.Name]; ok {
			continue
		}
		seen[tc.Name] = struct{}{}
		names = append(names, tc.Name)
	}
	return names
}

// Adapter extracts content from one provider's wire format.
type Adapter interface {
	// Provider identifies the upstream this adapter handles.
	Provider() models.Provider

	// ExtractBuffered parses a complete JSON response body.
	// A nil result means no thinking (and nothing else useful) was found.
	ExtractBuffered(body []byte) *Extraction

	// ExtractStream parses a complete SSE transcript, accumulating deltas
	// across events into the same Extraction shape as ExtractBuffered.
	ExtractStream(sse string) *Extraction
}

// ForProvider returns the adapter for a provider, or nil if unsupported.
func ForProvider(p models.Provider) Adapter {
	switch p {
	case models.ProviderAnthropic:
		return &AnthropicAdapter{}
	case models.ProviderOpenAI:
		return &OpenAIAdapter{}
	case models.ProviderGemini:
		return &GeminiAdapter{}
	default:
		return nil
	}
}

// estimateTokens approximates token count as ceil(len/4), the usual rule of
// thumb for English text. Only used for budget bookkeeping.
func estimateTokens(s string) int {
	if s == "" {
		return 0
	}
	return (len(s) + 3) / 4
}
