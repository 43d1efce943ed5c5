package gateway

import (
	"encoding/json"
	"strings"

	"github.com/mnemom/smoltbot/pkg/models"
)

// requestMeta is what the gateway learns from parsing the request body.
// Parsing is lenient: anything that does not decode is simply absent.
type requestMeta struct {
	Model     string
	Stream    bool
	ToolNames []string
	UserText  string
}

// parseRequest decodes the request body for injection and task context.
// Returns a nil map when the body is not a JSON object; the caller forwards
// the raw bytes unchanged in that case.
func parseRequest(provider models.Provider, body []byte, path string) (map[string]any, requestMeta) {
	var meta requestMeta

	if provider == models.ProviderGemini {
		meta.Model = geminiModelFromPath(path)
		meta.Stream = strings.Contains(path, ":streamGenerateContent")
	}

	if len(body) == 0 {
		return nil, meta
	}
	var obj map[string]any
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, meta
	}

	if m, ok := obj["model"].(string); ok {
		meta.Model = m
	}
	if s, ok := obj["stream"].(bool); ok && s {
		meta.Stream = true
	}

	switch provider {
	case models.ProviderAnthropic:
		meta.ToolNames = toolNames(obj["tools"], func(t map[string]any) string {
			name, _ := t["name"].(string)
			return name
		})
		meta.UserText = lastUserMessage(obj["messages"], "content")
	case models.ProviderOpenAI:
		meta.ToolNames = toolNames(obj["tools"], func(t map[string]any) string {
			fn, _ := t["function"].(map[string]any)
			name, _ := fn["name"].(string)
			return name
		})
		meta.UserText = lastUserMessage(obj["messages"], "content")
	case models.ProviderGemini:
		meta.ToolNames = geminiToolNames(obj["tools"])
		meta.UserText = geminiLastUserText(obj["contents"])
	}

	return obj, meta
}

// geminiModelFromPath extracts the model from paths like
// "v1beta/models/gemini-2.5-pro:generateContent".
func geminiModelFromPath(path string) string {
	idx := strings.Index(path, "models/")
	if idx < 0 {
		return ""
	}
	rest := path[idx+len("models/"):]
	if colon := strings.IndexByte(rest, ':'); colon >= 0 {
		rest = rest[:colon]
	}
	if slash := strings.IndexByte(rest, '/'); slash >= 0 {
		rest = rest[:slash]
	}
	return rest
}

func toolNames(raw any, extract func(map[string]any) string) []string {
	tools, ok := raw.([]any)
	if !ok {
		return nil
	}
	names := make([]string, 0, len(tools))
	for _, t := range tools {
		tm, ok := t.(map[string]any)
		if !ok {
			continue
		}
		if name := extract(tm); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func geminiToolNames(raw any) []string {
	tools, ok := raw.([]any)
	if !ok {
		return nil
	}
	var names []string
	for _, t := range tools {
		tm, ok := t.(map[string]any)
		if !ok {
			continue
		}
		decls, ok := tm["functionDeclarations"].([]any)
		if !ok {
			continue
		}
		for _, d := range decls {
			dm, ok := d.(map[string]any)
			if !ok {
				continue
			}
			if name, ok := dm["name"].(string); ok && name != "" {
				names = append(names, name)
			}
		}
	}
	return names
}

// lastUserMessage walks Anthropic/OpenAI-shaped messages backwards for the
// most recent user turn. Content is either a string or text blocks.
func lastUserMessage(raw any, contentKey string) string {
	messages, ok := raw.([]any)
	if !ok {
		return ""
	}
	for i := len(messages) - 1; i >= 0; i-- {
		m, ok := messages[i].(map[string]any)
		if !ok {
			continue
		}
		if role, _ := m["role"].(string); role != "user" {
			continue
		}
		return contentText(m[contentKey])
	}
	return ""
}

func geminiLastUserText(raw any) string {
	contents, ok := raw.([]any)
	if !ok {
		return ""
	}
	for i := len(contents) - 1; i >= 0; i-- {
		c, ok := contents[i].(map[string]any)
		if !ok {
			continue
		}
		// Gemini contents may omit role; treat missing as user.
		if role, _ := c["role"].(string); role != "" && role != "user" {
			continue
		}
		parts, ok := c["parts"].([]any)
		if !ok {
			continue
		}
		var sb strings.Builder
		for _, p := range parts {
			pm, ok := p.(map[string]any)
			if !ok {
				continue
			}
			if text, ok := pm["text"].(string); ok {
				sb.WriteString(text)
			}
		}
		return sb.String()
	}
	return ""
}

func contentText(raw any) string {
	switch v := raw.(type) {
	case string:
		return v
	case []any:
		var sb strings.Builder
		for _, b := range v {
			bm, ok := b.(map[string]any)
			if !ok {
				continue
			}
			if t, _ := bm["type"].(string); t == "text" {
				if text, ok := bm["text"].(string); ok {
					sb.WriteString(text)
				}
			}
		}
		return sb.String()
	default:
		return ""
	}
}
