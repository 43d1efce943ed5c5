// Package llm is the analysis-model client. One small model call per
// checkpoint, behind a circuit breaker so a degraded provider cannot stall
// the proxy path.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/sony/gobreaker/v2"

	"github.com/mnemom/smoltbot/pkg/integrity"
)

// DefaultAnalysisModel is the haiku-class model used for integrity analysis.
const DefaultAnalysisModel = "claude-haiku-4-5-20251001"

const defaultMaxTokens = 1024

// ErrBreakerOpen is returned while the circuit breaker is rejecting calls.
var ErrBreakerOpen = errors.New("llm: analysis circuit breaker open")

// Config controls the analysis client.
type Config struct {
	APIKey    string
	Model     string
	MaxTokens int64
	// BaseURL overrides the API endpoint, used by tests.
	BaseURL string
}

// Client calls the analysis model and implements integrity.Analyzer.
type Client struct {
	api     anthropic.Client
	model   string
	max     int64
	breaker *gobreaker.CircuitBreaker[*anthropic.Message]
	logger  *slog.Logger
}

// NewClient builds the analysis client. The breaker opens after repeated
// consecutive failures and probes again after a minute; while open, callers
// get ErrBreakerOpen immediately and fall back to synthetic checkpoints.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	model := cfg.Model
	if model == "" {
		model = DefaultAnalysisModel
	}
	max := cfg.MaxTokens
	if max <= 0 {
		max = defaultMaxTokens
	}

	// No SDK-level retries: the whole call must fit the 8 s analysis budget,
	// and the breaker handles sustained failure.
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey), option.WithMaxRetries(0)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	log := logger.With("component", "llm.client")
	breaker := gobreaker.NewCircuitBreaker[*anthropic.Message](gobreaker.Settings{
		Name:    "analysis-model",
		Timeout: time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("analysis breaker state change", "from", from.String(), "to", to.String())
		},
	})

	return &Client{
		api:     anthropic.NewClient(opts...),
		model:   model,
		max:     max,
		breaker: breaker,
		logger:  log,
	}
}

// Analyze sends the prompt to the analysis model and returns the raw reply
// text. The system prompt carries a cache-control marker so repeated analyses
// for the same card reuse the provider-side prompt cache.
func (c *Client) Analyze(ctx context.Context, prompt integrity.Prompt) (string, string, error) {
	msg, err := c.breaker.Execute(func() (*anthropic.Message, error) {
		return c.api.Messages.New(ctx, anthropic.MessageNewParams{
			Model:     anthropic.Model(c.model),
			MaxTokens: c.max,
			System: []anthropic.TextBlockParam{{
				Text:         prompt.System,
				CacheControl: anthropic.NewCacheControlEphemeralParam(),
			}},
			Messages: []anthropic.MessageParam{
				anthropic.NewUserMessage(anthropic.NewTextBlock(prompt.User)),
			},
		})
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", "", ErrBreakerOpen
		}
		return "", "", fmt.Errorf("analysis call: %w", err)
	}

	var reply strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			reply.WriteString(block.Text)
		}
	}
	return reply.String(), string(msg.Model), nil
}
