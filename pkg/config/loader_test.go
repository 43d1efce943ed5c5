package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnemom/smoltbot/pkg/models"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "smoltbot.yaml"), []byte(content), 0o600))
	return dir
}

const minimalYAML = `
analysis:
  api_key: test-analysis-key
attestation:
  signing_key: test-signing-key
`

func TestInitialize_Minimal(t *testing.T) {
	dir := writeConfig(t, minimalYAML)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, DefaultListenAddr, cfg.Server.ListenAddr)
	assert.True(t, cfg.Server.AIPEnabled)
	assert.Equal(t, DefaultAnthropicBaseURL, cfg.Providers.Anthropic.BaseURL)
	assert.Equal(t, DefaultOpenAIBaseURL, cfg.Providers.OpenAI.BaseURL)
	assert.Equal(t, DefaultGeminiBaseURL, cfg.Providers.Gemini.BaseURL)
	assert.Equal(t, DefaultAnalysisModel, cfg.Analysis.Model)
	assert.Equal(t, int64(DefaultAnalysisMaxTokens), cfg.Analysis.MaxTokens)
	assert.Equal(t, DefaultSigningKeyID, cfg.Attestation.KeyID)
	assert.Equal(t, DefaultRedisAddr, cfg.Quota.RedisAddr)
	assert.Equal(t, models.ValueLayerAugment, cfg.Values.Mode)
	assert.True(t, cfg.Observer.Enabled)
	assert.Equal(t, DefaultObserverInterval, cfg.Observer.Interval)
	assert.Equal(t, DefaultWebhookVersion, cfg.Webhooks.Version)
	assert.False(t, cfg.ObserverUsable(), "no log source configured")
}

func TestInitialize_FullOverrides(t *testing.T) {
	dir := writeConfig(t, `
server:
  listen_addr: ":9000"
  cors_allowed_origins: ["https://app.example.com"]
providers:
  anthropic:
    base_url: "https://anthropic.internal"
  aig:
    base_url: "https://gateway.ai.cloudflare.com/v1/acct/smoltbot"
    authorization: "aig-token"
    log_api_base: "https://api.cloudflare.com/client/v4/accounts/acct/ai-gateway/gateways/smoltbot/logs"
analysis:
  model: "claude-haiku-4-5-20251001"
  api_key: test-analysis-key
  max_tokens: 2048
attestation:
  signing_key: test-signing-key
  key_id: "aip-signing-2"
quota:
  redis_addr: "redis.internal:6379"
  cache_ttl: "30s"
values:
  mode: replace
  org_values: ["data_stewardship", "least_privilege"]
observer:
  enabled: true
  interval: "2m"
  lookback: "15m"
webhooks:
  version: "2025-06"
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.ListenAddr)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "https://anthropic.internal", cfg.Providers.Anthropic.BaseURL)
	assert.Equal(t, "aig-token", cfg.Providers.AIG.Authorization)
	assert.Equal(t, int64(2048), cfg.Analysis.MaxTokens)
	assert.Equal(t, "aip-signing-2", cfg.Attestation.KeyID)
	assert.Equal(t, 30*time.Second, cfg.Quota.CacheTTL)
	assert.Equal(t, models.ValueLayerReplace, cfg.Values.Mode)
	assert.Equal(t, []string{"data_stewardship", "least_privilege"}, cfg.Values.OrgValues)
	assert.Equal(t, 2*time.Minute, cfg.Observer.Interval)
	assert.Equal(t, "2025-06", cfg.Webhooks.Version)
	assert.True(t, cfg.ObserverUsable())
}

func TestInitialize_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_ANALYSIS_KEY", "from-env")
	t.Setenv("TEST_SIGNING_KEY", "signer-from-env")

	dir := writeConfig(t, `
analysis:
  api_key: "{{.TEST_ANALYSIS_KEY}}"
attestation:
  signing_key: "{{.TEST_SIGNING_KEY}}"
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Analysis.APIKey)
	assert.Equal(t, "signer-from-env", cfg.Attestation.SigningKey)
}

func TestInitialize_ValidationFailures(t *testing.T) {
	tests := []struct {
		name        string
		yaml        string
		errContains string
	}{
		{
			name: "missing analysis api key",
			yaml: `
attestation:
  signing_key: k
`,
			errContains: "api_key",
		},
		{
			name: "missing signing key",
			yaml: `
analysis:
  api_key: k
`,
			errContains: "signing_key",
		},
		{
			name:        "invalid values mode",
			yaml:        minimalYAML + "values:\n  mode: blend\n",
			errContains: "mode",
		},
		{
			name:        "relative provider url",
			yaml:        minimalYAML + "providers:\n  openai:\n    base_url: \"api.openai.com\"\n",
			errContains: "base_url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeConfig(t, tt.yaml)
			_, err := Initialize(context.Background(), dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestInitialize_MissingFile(t *testing.T) {
	_, err := Initialize(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitialize_BadDurationFallsBack(t *testing.T) {
	dir := writeConfig(t, minimalYAML+"quota:\n  cache_ttl: \"not-a-duration\"\n")

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, DefaultQuotaCacheTTL, cfg.Quota.CacheTTL)
}
