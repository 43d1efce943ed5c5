package config

import "time"

// Built-in defaults applied when smoltbot.yaml leaves a field unset.
const (
	DefaultListenAddr       = ":8788"
	DefaultAnthropicBaseURL = "https://api.anthropic.com"
	DefaultOpenAIBaseURL    = "https://api.openai.com"
	DefaultGeminiBaseURL    = "https://generativelanguage.googleapis.com"

	DefaultAnalysisModel     = "claude-haiku-4-5-20251001"
	DefaultAnalysisMaxTokens = 1024

	DefaultSigningKeyID = "aip-signing-1"

	DefaultRedisAddr     = "localhost:6379"
	DefaultQuotaCacheTTL = time.Minute

	DefaultObserverInterval = time.Minute
	DefaultObserverLookback = 10 * time.Minute

	DefaultWebhookVersion = "2024-01"
)
