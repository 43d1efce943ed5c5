// Package masking redacts credentials and PII from text before it reaches an
// analysis model, a stored checkpoint, or a nudge message.
package masking

import "log/slog"

// Service applies data masking to task context and nudge content. Created
// once at application startup. Thread-safe and stateless aside from compiled
// patterns.
type Service struct {
	patterns    []*CompiledPattern
	codeMaskers []Masker
}

// NewService creates a masking service with compiled patterns and registered
// maskers. All patterns are compiled eagerly at creation time.
func NewService() *Service {
	s := &Service{}
	s.compileBuiltinPatterns()
	s.registerMasker(&JSONCredentialMasker{})

	slog.Info("Masking service initialized",
		"patterns", len(s.patterns),
		"code_maskers", len(s.codeMaskers))
	return s
}

// Redact applies code-based maskers then regex patterns to content. Regex
// substitution cannot fail, so the worst case is an unmatched secret shape
// passing through, never lost content.
func (s *Service) Redact(content string) string {
	if content == "" {
		return content
	}

	masked := content

	// Phase 1: structural maskers (more specific, key-aware)
	for _, masker := range s.codeMaskers {
		if masker.AppliesTo(masked) {
			masked = masker.Mask(masked)
		}
	}

	// Phase 2: regex patterns (general sweep)
	for _, pattern := range s.patterns {
		masked = pattern.Regex.ReplaceAllString(masked, pattern.Replacement)
	}

	return masked
}

func (s *Service) registerMasker(m Masker) {
	s.codeMaskers = append(s.codeMaskers, m)
}
