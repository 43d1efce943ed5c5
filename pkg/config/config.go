// Package config loads and validates smoltbot.yaml. Database settings come
// from the environment (pkg/database); everything else lives here.
package config

import (
	"time"

	"github.com/mnemom/smoltbot/pkg/models"
)

// Config is the umbrella configuration object returned by Initialize() and
// used throughout the application.
type Config struct {
	configDir string

	Server      *ServerConfig
	Providers   *ProvidersConfig
	Analysis    *AnalysisConfig
	Attestation *AttestationConfig
	Quota       *QuotaConfig
	Values      *ValuesConfig
	Observer    *ObserverConfig
	Webhooks    *WebhooksConfig
}

// ServerConfig holds the HTTP listener settings. AIPEnabled is the global
// integrity-pipeline switch: when false the gateway proxies everything with
// X-AIP-Verdict: disabled.
type ServerConfig struct {
	ListenAddr         string
	CORSAllowedOrigins []string
	AIPEnabled         bool
}

// ProviderConfig holds one upstream inference API target.
type ProviderConfig struct {
	BaseURL string
}

// AIGConfig fronts the upstream with an AI gateway when set. The log API is
// what the observer reads; requests are annotated with cf-aig-metadata so the
// observer can attribute logs back to agents.
type AIGConfig struct {
	BaseURL       string
	Authorization string
	LogAPIBase    string
}

// ProvidersConfig groups upstream targets per provider plus the optional
// gateway front.
type ProvidersConfig struct {
	Anthropic ProviderConfig
	OpenAI    ProviderConfig
	Gemini    ProviderConfig
	AIG       AIGConfig
}

// AnalysisConfig controls the integrity analysis model client.
type AnalysisConfig struct {
	Model     string
	APIKey    string
	MaxTokens int64
}

// AttestationConfig holds the checkpoint signing material.
type AttestationConfig struct {
	SigningKey string
	KeyID      string
}

// QuotaConfig holds quota cache settings.
type QuotaConfig struct {
	RedisAddr string
	CacheTTL  time.Duration
}

// ValuesConfig holds the organization conscience value layer.
type ValuesConfig struct {
	Mode      models.ValueLayerMode
	OrgValues []string
}

// ObserverConfig controls the post-hoc gateway log observer.
type ObserverConfig struct {
	Enabled  bool
	Interval time.Duration
	Lookback time.Duration
}

// WebhooksConfig holds outbound webhook settings.
type WebhooksConfig struct {
	Version string
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// ObserverUsable reports whether the observer has a log source to read.
func (c *Config) ObserverUsable() bool {
	return c.Observer.Enabled && c.Providers.AIG.LogAPIBase != ""
}
