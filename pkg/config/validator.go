package config

import (
	"fmt"
	"net/url"
)

// validate performs comprehensive validation on loaded configuration.
func validate(cfg *Config) error {
	if cfg.Server.ListenAddr == "" {
		return NewValidationError("server", "server", "listen_addr", ErrMissingRequiredField)
	}

	for name, baseURL := range map[string]string{
		"anthropic": cfg.Providers.Anthropic.BaseURL,
		"openai":    cfg.Providers.OpenAI.BaseURL,
		"gemini":    cfg.Providers.Gemini.BaseURL,
	} {
		if err := validateBaseURL(baseURL); err != nil {
			return NewValidationError("provider", name, "base_url", err)
		}
	}
	if cfg.Providers.AIG.BaseURL != "" {
		if err := validateBaseURL(cfg.Providers.AIG.BaseURL); err != nil {
			return NewValidationError("provider", "aig", "base_url", err)
		}
	}

	if cfg.Analysis.APIKey == "" {
		return NewValidationError("analysis", "analysis", "api_key", ErrMissingRequiredField)
	}
	if cfg.Attestation.SigningKey == "" {
		return NewValidationError("attestation", "attestation", "signing_key", ErrMissingRequiredField)
	}
	if !cfg.Values.Mode.Valid() {
		return NewValidationError("values", "values", "mode",
			fmt.Errorf("%w: %q", ErrInvalidValue, cfg.Values.Mode))
	}

	return nil
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("%w: %q is not an absolute http(s) URL", ErrInvalidValue, raw)
	}
	return nil
}
