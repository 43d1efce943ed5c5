package integrity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mnemom/smoltbot/pkg/models"
)

func concern(cat models.ConcernCategory, sev models.Severity) models.Concern {
	return models.Concern{Category: cat, Severity: sev, Description: "test concern"}
}

func TestDeriveVerdict(t *testing.T) {
	tests := []struct {
		name     string
		concerns []models.Concern
		expected models.Verdict
	}{
		{
			name:     "no concerns",
			concerns: nil,
			expected: models.VerdictClear,
		},
		{
			name:     "low severity only",
			concerns: []models.Concern{concern(models.ConcernValueMisalignment, models.SeverityLow)},
			expected: models.VerdictClear,
		},
		{
			name:     "medium severity",
			concerns: []models.Concern{concern(models.ConcernValueMisalignment, models.SeverityMedium)},
			expected: models.VerdictReviewNeeded,
		},
		{
			name:     "critical always boundary",
			concerns: []models.Concern{concern(models.ConcernAutonomyViolation, models.SeverityCritical)},
			expected: models.VerdictBoundaryViolation,
		},
		{
			name:     "high prompt injection is boundary",
			concerns: []models.Concern{concern(models.ConcernPromptInjection, models.SeverityHigh)},
			expected: models.VerdictBoundaryViolation,
		},
		{
			name:     "high deceptive reasoning is boundary",
			concerns: []models.Concern{concern(models.ConcernDeceptiveReasoning, models.SeverityHigh)},
			expected: models.VerdictBoundaryViolation,
		},
		{
			name:     "high value misalignment is boundary",
			concerns: []models.Concern{concern(models.ConcernValueMisalignment, models.SeverityHigh)},
			expected: models.VerdictBoundaryViolation,
		},
		{
			name:     "high autonomy violation is review not boundary",
			concerns: []models.Concern{concern(models.ConcernAutonomyViolation, models.SeverityHigh)},
			expected: models.VerdictReviewNeeded,
		},
		{
			name: "boundary wins over medium",
			concerns: []models.Concern{
				concern(models.ConcernValueMisalignment, models.SeverityMedium),
				concern(models.ConcernPromptInjection, models.SeverityCritical),
			},
			expected: models.VerdictBoundaryViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveVerdict(tt.concerns))
		})
	}
}

func TestMapVerdictToAction(t *testing.T) {
	assert.Equal(t, models.ActionContinue, MapVerdictToAction(models.VerdictClear, false))
	assert.Equal(t, models.ActionLogAndContinue, MapVerdictToAction(models.VerdictReviewNeeded, false))
	assert.Equal(t, models.ActionWarnUser, MapVerdictToAction(models.VerdictReviewNeeded, true))
	assert.Equal(t, models.ActionDenyAndEscalate, MapVerdictToAction(models.VerdictBoundaryViolation, false))
	assert.Equal(t, models.ActionDenyAndEscalate, MapVerdictToAction(models.VerdictBoundaryViolation, true))
}

func TestProceed(t *testing.T) {
	assert.True(t, Proceed(models.VerdictClear))
	assert.True(t, Proceed(models.VerdictReviewNeeded))
	assert.False(t, Proceed(models.VerdictBoundaryViolation))
}

func TestHashConcerns(t *testing.T) {
	c1 := []models.Concern{concern(models.ConcernPromptInjection, models.SeverityHigh)}

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, HashConcerns(c1), HashConcerns(c1))
		assert.Len(t, HashConcerns(c1), 64)
	})

	t.Run("order sensitive", func(t *testing.T) {
		a := concern(models.ConcernPromptInjection, models.SeverityHigh)
		b := concern(models.ConcernUndeclaredIntent, models.SeverityLow)
		assert.NotEqual(t,
			HashConcerns([]models.Concern{a, b}),
			HashConcerns([]models.Concern{b, a}))
	})

	t.Run("evidence truncated before hashing", func(t *testing.T) {
		long := concern(models.ConcernPromptInjection, models.SeverityHigh)
		for len(long.Evidence) < models.MaxEvidenceLength+50 {
			long.Evidence += "x"
		}
		exact := long
		exact.Evidence = long.Evidence[:models.MaxEvidenceLength]
		assert.Equal(t,
			HashConcerns([]models.Concern{exact}),
			HashConcerns([]models.Concern{long}))
	})
}
