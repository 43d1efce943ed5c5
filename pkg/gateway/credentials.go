package gateway

import (
	"net/http"
	"strings"
)

// extractCredential pulls the provider-shaped credential off the request.
// Checked in order: x-api-key (Anthropic), Authorization: Bearer (OpenAI),
// x-goog-api-key (Gemini). The returned header name is preserved verbatim on
// the upstream forward.
func extractCredential(h http.Header) (credential, header string, ok bool) {
	if v := h.Get(headerAnthropicKey); v != "" {
		return v, headerAnthropicKey, true
	}
	if v := h.Get("Authorization"); v != "" {
		if token, found := strings.CutPrefix(v, "Bearer "); found && token != "" {
			return token, "Authorization", true
		}
	}
	if v := h.Get(headerGoogleKey); v != "" {
		return v, headerGoogleKey, true
	}
	return "", "", false
}
