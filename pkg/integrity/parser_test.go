package integrity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnemom/smoltbot/pkg/models"
)

func TestParseAnalysis(t *testing.T) {
	t.Run("clean json object", func(t *testing.T) {
		reply := `{"verdict":"clear","concerns":[],"reasoning_summary":"Aligned","conscience_context":{"values_checked":["accuracy","helpfulness"],"conflicts":[],"supports":["accuracy"],"considerations":[],"consultation_depth":"standard"}}`
		resp, warnings := ParseAnalysis(reply)
		require.NotNil(t, resp)
		assert.Empty(t, warnings)
		assert.Equal(t, models.VerdictClear, resp.Verdict)
		assert.Equal(t, "Aligned", resp.ReasoningSummary)
		assert.Equal(t, []string{"accuracy", "helpfulness"}, resp.Conscience.ValuesChecked)
	})

	t.Run("json wrapped in prose and fences", func(t *testing.T) {
		reply := "Here is my analysis:\n```json\n" +
			`{"verdict":"review_needed","concerns":[{"category":"undeclared_intent","severity":"medium","description":"d"}]}` +
			"\n```\nLet me know if you need more."
		resp, _ := ParseAnalysis(reply)
		require.NotNil(t, resp)
		assert.Equal(t, models.VerdictReviewNeeded, resp.Verdict)
		require.Len(t, resp.Concerns, 1)
	})

	t.Run("unknown category dropped with warning", func(t *testing.T) {
		reply := `{"verdict":"clear","concerns":[
			{"category":"weather_complaint","severity":"high","description":"x"},
			{"category":"prompt_injection","severity":"low","description":"y"}
		]}`
		resp, warnings := ParseAnalysis(reply)
		require.NotNil(t, resp)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "weather_complaint")
		require.Len(t, resp.Concerns, 1)
		assert.Equal(t, models.ConcernPromptInjection, resp.Concerns[0].Category)
	})

	t.Run("unknown verdict warned and cleared", func(t *testing.T) {
		resp, warnings := ParseAnalysis(`{"verdict":"maybe","concerns":[]}`)
		require.NotNil(t, resp)
		require.NotEmpty(t, warnings)
		assert.Empty(t, string(resp.Verdict))
	})

	t.Run("evidence truncated on parse", func(t *testing.T) {
		long := strings.Repeat("e", models.MaxEvidenceLength+100)
		resp, _ := ParseAnalysis(`{"verdict":"clear","concerns":[{"category":"prompt_injection","severity":"low","description":"d","evidence":"` + long + `"}]}`)
		require.NotNil(t, resp)
		require.Len(t, resp.Concerns, 1)
		assert.Len(t, resp.Concerns[0].Evidence, models.MaxEvidenceLength)
	})

	t.Run("no json at all", func(t *testing.T) {
		resp, warnings := ParseAnalysis("I cannot analyze this.")
		assert.Nil(t, resp)
		assert.NotEmpty(t, warnings)
	})

	t.Run("unbalanced braces", func(t *testing.T) {
		resp, _ := ParseAnalysis(`{"verdict":"clear"`)
		assert.Nil(t, resp)
	})
}

func TestLargestJSONObject(t *testing.T) {
	t.Run("picks the largest of several", func(t *testing.T) {
		s := `{"a":1} and then {"b":{"nested":true},"c":2}`
		assert.Equal(t, `{"b":{"nested":true},"c":2}`, LargestJSONObject(s))
	})

	t.Run("braces inside strings do not confuse depth", func(t *testing.T) {
		s := `{"evidence":"he said {wait} and left"}`
		assert.Equal(t, s, LargestJSONObject(s))
	})

	t.Run("escaped quotes inside strings", func(t *testing.T) {
		s := `{"q":"she said \"{\" loudly"}`
		assert.Equal(t, s, LargestJSONObject(s))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, "", LargestJSONObject("no braces here"))
	})
}
