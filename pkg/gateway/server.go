// Package gateway is the transparent reverse proxy in front of the upstream
// LLM providers. It identifies agents from provider credentials, enforces
// quota and containment at admission, injects reasoning configuration and
// pending nudges into requests, and feeds upstream responses to the
// integrity pipeline (inline for buffered bodies, teed for streams).
//
// Everything past admission is fail-open: an integrity-pipeline failure
// never changes what the client receives from the upstream.
package gateway

import (
	"context"
	stdsql "database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"

	"github.com/mnemom/smoltbot/pkg/background"
	"github.com/mnemom/smoltbot/pkg/config"
	"github.com/mnemom/smoltbot/pkg/database"
	"github.com/mnemom/smoltbot/pkg/enforce"
	"github.com/mnemom/smoltbot/pkg/integrity"
	"github.com/mnemom/smoltbot/pkg/masking"
	"github.com/mnemom/smoltbot/pkg/models"
	"github.com/mnemom/smoltbot/pkg/quota"
	"github.com/mnemom/smoltbot/pkg/services"
	"github.com/mnemom/smoltbot/pkg/version"
)

// Upstream call deadlines. Streams get a longer leash because the analysis
// capture keeps reading even after the client goes away.
const (
	upstreamTimeout = 5 * time.Minute
	streamTimeout   = 10 * time.Minute
)

// Deps carries the wired pipeline components. Attestations, quota cache,
// and enforcer may be nil; the matching pipeline stages are skipped.
type Deps struct {
	Agents       *services.AgentService
	Cards        *services.CardService
	Checkpoints  *services.CheckpointService
	Nudges       *services.NudgeService
	Attestations *services.AttestationService
	QuotaCache   *quota.Cache
	Engine       *integrity.Engine
	Enforcer     *enforce.Enforcer
	Runner       *background.Runner
	Masker       *masking.Service

	// DB backs the readiness check. Optional; without it /ready reports
	// only process liveness.
	DB *stdsql.DB
}

// Server is the gateway HTTP surface.
type Server struct {
	echo   *echo.Echo
	http   *http.Server
	cfg    *config.Config
	deps   Deps
	client *http.Client
	logger *slog.Logger
}

// NewServer builds the gateway around the given dependencies.
func NewServer(cfg *config.Config, deps Deps, logger *slog.Logger) *Server {
	if cfg == nil {
		panic("NewServer: cfg must not be nil")
	}
	if deps.Agents == nil || deps.Cards == nil || deps.Checkpoints == nil || deps.Nudges == nil {
		panic("NewServer: agent, card, checkpoint, and nudge services must not be nil")
	}
	if deps.Engine == nil {
		panic("NewServer: engine must not be nil")
	}
	if deps.Runner == nil {
		panic("NewServer: runner must not be nil")
	}
	if deps.Masker == nil {
		deps.Masker = masking.NewService()
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		echo:   echo.New(),
		cfg:    cfg,
		deps:   deps,
		logger: logger.With("component", "gateway"),
		client: &http.Client{
			// Per-request deadlines come from the request context so
			// streams are not cut off mid-body.
			Timeout: 0,
		},
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	e := s.echo
	e.Use(requestID())
	e.Use(securityHeaders())
	e.Use(s.corsMiddleware())

	e.GET("/health", s.healthHandler)
	e.GET("/ready", s.readyHandler)
	e.GET("/models.json", s.modelsHandler)

	e.Any("/anthropic/*", s.proxyHandler(models.ProviderAnthropic))
	e.Any("/openai/*", s.proxyHandler(models.ProviderOpenAI))
	e.Any("/gemini/*", s.proxyHandler(models.ProviderGemini))
}

// Start begins serving on the configured listen address. Blocks until the
// listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:              s.cfg.Server.ListenAddr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("gateway listening", "addr", s.cfg.Server.ListenAddr)
	err := s.http.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops accepting connections and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// ServeHTTP exposes the router for tests.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// requestID tags every response with a correlation id, honoring one supplied
// by the caller.
func requestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			id := c.Request().Header.Get("X-Request-Id")
			if id == "" {
				id = uuid.NewString()
			}
			c.Response().Header().Set("X-Request-Id", id)
			return next(c)
		}
	}
}

// securityHeaders returns middleware that sets standard security response headers.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			return next(c)
		}
	}
}

// corsMiddleware answers preflights and exposes the integrity headers to
// browser callers. Allowed origins come from configuration; empty means any.
func (s *Server) corsMiddleware() echo.MiddlewareFunc {
	allowed := s.cfg.Server.CORSAllowedOrigins
	expose := strings.Join(exposedHeaders, ", ")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			origin := c.Request().Header.Get("Origin")
			h := c.Response().Header()

			if origin != "" && originAllowed(origin, allowed) {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Expose-Headers", expose)
				h.Set("Vary", "Origin")
			}

			if c.Request().Method == http.MethodOptions {
				h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				h.Set("Access-Control-Allow-Headers",
					"Content-Type, Authorization, x-api-key, x-goog-api-key, x-mnemom-api-key")
				h.Set("Access-Control-Max-Age", "600")
				return c.NoContent(http.StatusNoContent)
			}
			return next(c)
		}
	}
}

func originAllowed(origin string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if a == "*" || a == origin {
			return true
		}
	}
	return false
}

// healthHandler handles GET /health. Unauthenticated and dependency-free:
// the gateway is healthy as long as it can serve this.
func (s *Server) healthHandler(c *echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":      "healthy",
		"version":     version.GitCommit,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"aip_enabled": s.cfg.Server.AIPEnabled,
	})
}

// readyHandler handles GET /ready, the readiness check. Unlike /health it
// consults the database: a gateway that cannot persist checkpoints should be
// pulled from rotation even though it could still proxy.
func (s *Server) readyHandler(c *echo.Context) error {
	if s.deps.DB == nil {
		return c.JSON(http.StatusOK, map[string]any{"status": "ready"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	readiness, err := database.Readiness(ctx, s.deps.DB)
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, readiness)
	}
	return c.JSON(http.StatusOK, readiness)
}

// modelInfo describes one entry in the static model registry.
type modelInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Thinking bool   `json:"thinking"`
}

var modelRegistry = map[string][]modelInfo{
	"anthropic": {
		{ID: "claude-opus-4-5", Name: "Claude Opus 4.5", Thinking: true},
		{ID: "claude-sonnet-4-5", Name: "Claude Sonnet 4.5", Thinking: true},
		{ID: "claude-haiku-4-5", Name: "Claude Haiku 4.5", Thinking: true},
	},
	"openai": {
		{ID: "gpt-5", Name: "GPT-5", Thinking: true},
		{ID: "gpt-5-mini", Name: "GPT-5 mini", Thinking: true},
		{ID: "gpt-4o", Name: "GPT-4o", Thinking: false},
	},
	"gemini": {
		{ID: "gemini-3-pro-preview", Name: "Gemini 3 Pro", Thinking: true},
		{ID: "gemini-2.5-pro", Name: "Gemini 2.5 Pro", Thinking: true},
		{ID: "gemini-2.5-flash", Name: "Gemini 2.5 Flash", Thinking: true},
	},
}

// modelsHandler handles GET /models.json, the static provider registry.
func (s *Server) modelsHandler(c *echo.Context) error {
	return c.JSON(http.StatusOK, modelRegistry)
}
