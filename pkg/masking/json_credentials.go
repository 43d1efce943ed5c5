package masking

import (
	"encoding/json"
	"strings"
)

// sensitiveKeys are JSON object keys whose string values are always masked,
// regardless of what the value looks like.
var sensitiveKeys = []string{
	"api_key", "apikey", "authorization", "password", "secret",
	"signing_secret", "token", "access_token", "refresh_token", "credential",
}

// JSONCredentialMasker masks credential values inside JSON documents. Regex
// patterns catch well-known key shapes; this catches anything stored under a
// telling key name, whatever the value format.
type JSONCredentialMasker struct{}

// Name returns the unique identifier for this masker.
func (m *JSONCredentialMasker) Name() string { return "json_credentials" }

// AppliesTo checks for a sensitive key name before paying for a JSON parse.
func (m *JSONCredentialMasker) AppliesTo(data string) bool {
	lower := strings.ToLower(data)
	for _, key := range sensitiveKeys {
		if strings.Contains(lower, `"`+key+`"`) {
			return true
		}
	}
	return false
}

// Mask parses the document and replaces values under sensitive keys.
// Returns the original data when it is not valid JSON.
func (m *JSONCredentialMasker) Mask(data string) string {
	var doc interface{}
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return data
	}
	masked := maskValue(doc, false)
	out, err := json.Marshal(masked)
	if err != nil {
		return data
	}
	return string(out)
}

func maskValue(v interface{}, underSensitiveKey bool) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, inner := range val {
			out[k] = maskValue(inner, isSensitiveKey(k))
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, inner := range val {
			out[i] = maskValue(inner, underSensitiveKey)
		}
		return out
	case string:
		if underSensitiveKey {
			return "[MASKED]"
		}
		return val
	default:
		return val
	}
}

func isSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, k := range sensitiveKeys {
		if lower == k {
			return true
		}
	}
	return false
}
