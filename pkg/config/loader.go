package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mnemom/smoltbot/pkg/models"
)

// smoltbotYAMLConfig represents the complete smoltbot.yaml file structure.
// Durations are strings in the file and parsed during resolution.
type smoltbotYAMLConfig struct {
	Server      *serverYAML      `yaml:"server"`
	Providers   *providersYAML   `yaml:"providers"`
	Analysis    *analysisYAML    `yaml:"analysis"`
	Attestation *attestationYAML `yaml:"attestation"`
	Quota       *quotaYAML       `yaml:"quota"`
	Values      *valuesYAML      `yaml:"values"`
	Observer    *observerYAML    `yaml:"observer"`
	Webhooks    *webhooksYAML    `yaml:"webhooks"`
}

type serverYAML struct {
	ListenAddr         string   `yaml:"listen_addr,omitempty"`
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins,omitempty"`
	AIPEnabled         *bool    `yaml:"aip_enabled,omitempty"`
}

type providerYAML struct {
	BaseURL string `yaml:"base_url,omitempty"`
}

type aigYAML struct {
	BaseURL       string `yaml:"base_url,omitempty"`
	Authorization string `yaml:"authorization,omitempty"`
	LogAPIBase    string `yaml:"log_api_base,omitempty"`
}

type providersYAML struct {
	Anthropic *providerYAML `yaml:"anthropic,omitempty"`
	OpenAI    *providerYAML `yaml:"openai,omitempty"`
	Gemini    *providerYAML `yaml:"gemini,omitempty"`
	AIG       *aigYAML      `yaml:"aig,omitempty"`
}

type analysisYAML struct {
	Model     string `yaml:"model,omitempty"`
	APIKey    string `yaml:"api_key,omitempty"`
	MaxTokens int64  `yaml:"max_tokens,omitempty"`
}

type attestationYAML struct {
	SigningKey string `yaml:"signing_key,omitempty"`
	KeyID      string `yaml:"key_id,omitempty"`
}

type quotaYAML struct {
	RedisAddr string `yaml:"redis_addr,omitempty"`
	CacheTTL  string `yaml:"cache_ttl,omitempty"`
}

type valuesYAML struct {
	Mode      string   `yaml:"mode,omitempty"`
	OrgValues []string `yaml:"org_values,omitempty"`
}

type observerYAML struct {
	Enabled  *bool  `yaml:"enabled,omitempty"`
	Interval string `yaml:"interval,omitempty"`
	Lookback string `yaml:"lookback,omitempty"`
}

type webhooksYAML struct {
	Version string `yaml:"version,omitempty"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load smoltbot.yaml from configDir
//  2. Expand environment variables ({{.VAR}} template syntax)
//  3. Parse YAML into structs
//  4. Resolve defaults for unset fields
//  5. Validate the result
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"listen_addr", cfg.Server.ListenAddr,
		"analysis_model", cfg.Analysis.Model,
		"observer_enabled", cfg.Observer.Enabled,
		"aig_fronted", cfg.Providers.AIG.BaseURL != "")

	return cfg, nil
}

func load(_ context.Context, configDir string) (*Config, error) {
	var raw smoltbotYAMLConfig
	if err := loadYAML(configDir, "smoltbot.yaml", &raw); err != nil {
		return nil, NewLoadError("smoltbot.yaml", err)
	}

	return &Config{
		configDir:   configDir,
		Server:      resolveServer(raw.Server),
		Providers:   resolveProviders(raw.Providers),
		Analysis:    resolveAnalysis(raw.Analysis),
		Attestation: resolveAttestation(raw.Attestation),
		Quota:       resolveQuota(raw.Quota),
		Values:      resolveValues(raw.Values),
		Observer:    resolveObserver(raw.Observer),
		Webhooks:    resolveWebhooks(raw.Webhooks),
	}, nil
}

func loadYAML(configDir, filename string, target any) error {
	path := filepath.Join(configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax.
	// ExpandEnv passes through original data on parse/execution errors,
	// letting the YAML parser fail with a clearer message.
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func resolveServer(y *serverYAML) *ServerConfig {
	cfg := &ServerConfig{ListenAddr: DefaultListenAddr, AIPEnabled: true}
	if y == nil {
		return cfg
	}
	if y.ListenAddr != "" {
		cfg.ListenAddr = y.ListenAddr
	}
	if y.AIPEnabled != nil {
		cfg.AIPEnabled = *y.AIPEnabled
	}
	cfg.CORSAllowedOrigins = y.CORSAllowedOrigins
	return cfg
}

func resolveProviders(y *providersYAML) *ProvidersConfig {
	cfg := &ProvidersConfig{
		Anthropic: ProviderConfig{BaseURL: DefaultAnthropicBaseURL},
		OpenAI:    ProviderConfig{BaseURL: DefaultOpenAIBaseURL},
		Gemini:    ProviderConfig{BaseURL: DefaultGeminiBaseURL},
	}
	if y == nil {
		return cfg
	}
	if y.Anthropic != nil && y.Anthropic.BaseURL != "" {
		cfg.Anthropic.BaseURL = y.Anthropic.BaseURL
	}
	if y.OpenAI != nil && y.OpenAI.BaseURL != "" {
		cfg.OpenAI.BaseURL = y.OpenAI.BaseURL
	}
	if y.Gemini != nil && y.Gemini.BaseURL != "" {
		cfg.Gemini.BaseURL = y.Gemini.BaseURL
	}
	if y.AIG != nil {
		cfg.AIG = AIGConfig{
			BaseURL:       y.AIG.BaseURL,
			Authorization: y.AIG.Authorization,
			LogAPIBase:    y.AIG.LogAPIBase,
		}
	}
	return cfg
}

func resolveAnalysis(y *analysisYAML) *AnalysisConfig {
	cfg := &AnalysisConfig{
		Model:     DefaultAnalysisModel,
		MaxTokens: DefaultAnalysisMaxTokens,
	}
	if y == nil {
		return cfg
	}
	if y.Model != "" {
		cfg.Model = y.Model
	}
	if y.MaxTokens > 0 {
		cfg.MaxTokens = y.MaxTokens
	}
	cfg.APIKey = y.APIKey
	return cfg
}

func resolveAttestation(y *attestationYAML) *AttestationConfig {
	cfg := &AttestationConfig{KeyID: DefaultSigningKeyID}
	if y == nil {
		return cfg
	}
	if y.KeyID != "" {
		cfg.KeyID = y.KeyID
	}
	cfg.SigningKey = y.SigningKey
	return cfg
}

func resolveQuota(y *quotaYAML) *QuotaConfig {
	cfg := &QuotaConfig{
		RedisAddr: DefaultRedisAddr,
		CacheTTL:  DefaultQuotaCacheTTL,
	}
	if y == nil {
		return cfg
	}
	if y.RedisAddr != "" {
		cfg.RedisAddr = y.RedisAddr
	}
	cfg.CacheTTL = parseDuration("quota.cache_ttl", y.CacheTTL, cfg.CacheTTL)
	return cfg
}

func resolveValues(y *valuesYAML) *ValuesConfig {
	cfg := &ValuesConfig{Mode: models.ValueLayerAugment}
	if y == nil {
		return cfg
	}
	if y.Mode != "" {
		cfg.Mode = models.ValueLayerMode(y.Mode)
	}
	cfg.OrgValues = y.OrgValues
	return cfg
}

func resolveObserver(y *observerYAML) *ObserverConfig {
	cfg := &ObserverConfig{
		Enabled:  true,
		Interval: DefaultObserverInterval,
		Lookback: DefaultObserverLookback,
	}
	if y == nil {
		return cfg
	}
	if y.Enabled != nil {
		cfg.Enabled = *y.Enabled
	}
	cfg.Interval = parseDuration("observer.interval", y.Interval, cfg.Interval)
	cfg.Lookback = parseDuration("observer.lookback", y.Lookback, cfg.Lookback)
	return cfg
}

func resolveWebhooks(y *webhooksYAML) *WebhooksConfig {
	cfg := &WebhooksConfig{Version: DefaultWebhookVersion}
	if y != nil && y.Version != "" {
		cfg.Version = y.Version
	}
	return cfg
}

// parseDuration parses a duration string, falling back to the default and
// logging a warning on bad input.
func parseDuration(field, value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		slog.Warn("Invalid duration in config, using default",
			"field", field, "value", value, "default", fallback, "error", err)
		return fallback
	}
	return d
}
