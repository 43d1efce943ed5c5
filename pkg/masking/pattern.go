package masking

import (
	"log/slog"
	"regexp"
)

// CompiledPattern holds a pre-compiled regex pattern with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
}

// builtinPattern is a pattern definition before compilation.
type builtinPattern struct {
	pattern     string
	replacement string
}

// Built-in redaction patterns. Credentials first (a leaked key is worse than
// a leaked email), then PII. Applied in the order listed so the bearer rule
// can consume a token before the generic key rule sees it.
var builtinPatterns = []struct {
	name string
	def  builtinPattern
}{
	{"private_key", builtinPattern{
		pattern:     `-----BEGIN [A-Z ]*PRIVATE KEY-----[\s\S]*?-----END [A-Z ]*PRIVATE KEY-----`,
		replacement: "[MASKED_PRIVATE_KEY]",
	}},
	{"bearer_token", builtinPattern{
		pattern:     `(?i)bearer\s+[A-Za-z0-9._~+/=-]{8,}`,
		replacement: "Bearer [MASKED_TOKEN]",
	}},
	{"api_key", builtinPattern{
		pattern:     `\b(?:sk|pk)-[A-Za-z0-9_-]{16,}\b`,
		replacement: "[MASKED_API_KEY]",
	}},
	{"google_api_key", builtinPattern{
		pattern:     `\bAIza[0-9A-Za-z_-]{35}\b`,
		replacement: "[MASKED_API_KEY]",
	}},
	{"aws_access_key", builtinPattern{
		pattern:     `\bAKIA[0-9A-Z]{16}\b`,
		replacement: "[MASKED_API_KEY]",
	}},
	{"email", builtinPattern{
		pattern:     `\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`,
		replacement: "[MASKED_EMAIL]",
	}},
	{"ssn", builtinPattern{
		pattern:     `\b\d{3}-\d{2}-\d{4}\b`,
		replacement: "[MASKED_SSN]",
	}},
	{"credit_card", builtinPattern{
		pattern:     `\b\d{4}[ -]\d{4}[ -]\d{4}[ -]\d{4}\b`,
		replacement: "[MASKED_CARD]",
	}},
}

// compileBuiltinPatterns compiles the built-in regex patterns.
// Invalid patterns are logged and skipped.
func (s *Service) compileBuiltinPatterns() {
	for _, entry := range builtinPatterns {
		compiled, err := regexp.Compile(entry.def.pattern)
		if err != nil {
			slog.Error("Failed to compile built-in masking pattern, skipping",
				"pattern", entry.name, "error", err)
			continue
		}
		s.patterns = append(s.patterns, &CompiledPattern{
			Name:        entry.name,
			Regex:       compiled,
			Replacement: entry.def.replacement,
		})
	}
}
