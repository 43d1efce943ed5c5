package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnemom/smoltbot/pkg/models"
)

func TestCollect(t *testing.T) {
	t.Run("thinking blocks join on the separator", func(t *testing.T) {
		ex := collect(models.ProviderAnthropic, "claude-sonnet-4", []Block{
			&ThinkingBlock{Content: "first pass"},
			&TextBlock{Content: "answer"},
			&ThinkingBlock{Content: "second pass"},
		})
		require.NotNil(t, ex)
		assert.Equal(t, "first pass"+ThinkingSeparator+"second pass", ex.Thinking)
		assert.Equal(t, "answer", ex.Text)
		assert.Equal(t, models.ProviderAnthropic, ex.Provider)
		assert.Equal(t, "claude-sonnet-4", ex.Model)
	})

	t.Run("empty thinking blocks are dropped, text concatenates", func(t *testing.T) {
		ex := collect(models.ProviderOpenAI, "gpt-4o", []Block{
			&ThinkingBlock{},
			&TextBlock{Content: "part one "},
			&TextBlock{Content: "part two"},
		})
		require.NotNil(t, ex)
		assert.Empty(t, ex.Thinking)
		assert.Equal(t, "part one part two", ex.Text)
	})

	t.Run("tool blocks keep call order", func(t *testing.T) {
		ex := collect(models.ProviderGemini, "g", []Block{
			&ToolUseBlock{ID: "a", Name: "read_file", Arguments: `{"path":"x"}`},
			&ToolUseBlock{ID: "b", Name: "write_file", Arguments: `{"path":"y"}`},
		})
		require.NotNil(t, ex)
		require.Len(t, ex.ToolCalls, 2)
		assert.Equal(t, "read_file", ex.ToolCalls[0].Name)
		assert.Equal(t, "write_file", ex.ToolCalls[1].Name)
	})

	t.Run("nothing extracted yields nil", func(t *testing.T) {
		assert.Nil(t, collect(models.ProviderAnthropic, "m", nil))
		assert.Nil(t, collect(models.ProviderAnthropic, "m", []Block{
			&ThinkingBlock{}, &TextBlock{},
		}))
	})
}
