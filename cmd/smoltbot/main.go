// smoltbot gateway server: transparent LLM proxy plus the integrity
// pipeline (analysis, attestation, enforcement, webhooks, observer).
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/mnemom/smoltbot/pkg/attest"
	"github.com/mnemom/smoltbot/pkg/background"
	"github.com/mnemom/smoltbot/pkg/config"
	"github.com/mnemom/smoltbot/pkg/database"
	"github.com/mnemom/smoltbot/pkg/enforce"
	"github.com/mnemom/smoltbot/pkg/gateway"
	"github.com/mnemom/smoltbot/pkg/integrity"
	"github.com/mnemom/smoltbot/pkg/llm"
	"github.com/mnemom/smoltbot/pkg/masking"
	"github.com/mnemom/smoltbot/pkg/observer"
	"github.com/mnemom/smoltbot/pkg/quota"
	"github.com/mnemom/smoltbot/pkg/services"
	"github.com/mnemom/smoltbot/pkg/version"
	"github.com/mnemom/smoltbot/pkg/webhook"
)

// backgroundTaskTimeout bounds each post-response task (stream analysis,
// nudge bookkeeping). Stream transcripts can be large, so this is generous.
const backgroundTaskTimeout = 2 * time.Minute

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	slog.Info("Starting smoltbot",
		"version", version.GitCommit,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database (migrations run inside NewClient)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	agents := services.NewAgentService(dbClient.Client)
	cards := services.NewCardService(dbClient.Client)
	checkpoints := services.NewCheckpointService(dbClient.Client)
	nudges := services.NewNudgeService(dbClient.Client, checkpoints)
	quotaSvc := services.NewQuotaService(dbClient.Client)
	webhookSvc := services.NewWebhookService(dbClient.Client)
	maskingService := masking.NewService()
	slog.Info("Services initialized")

	// 4. Quota cache. Without Redis the cache degrades to resolve-per-request.
	var rdb *redis.Client
	if cfg.Quota.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.Quota.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			slog.Warn("Redis unreachable, quota caching disabled", "addr", cfg.Quota.RedisAddr, "error", err)
			rdb = nil
		}
	}
	quotaCache := quota.NewCache(rdb, quotaSvc, slog.Default())

	// 5. Checkpoint signer. A configured seed gives durable signatures;
	// otherwise an ephemeral key keeps attestation working in dev setups.
	var signer *attest.Signer
	if cfg.Attestation.SigningKey != "" {
		signer, err = attest.NewSignerFromSeed(cfg.Attestation.SigningKey, cfg.Attestation.KeyID)
		if err != nil {
			slog.Error("Failed to load signing key", "error", err)
			os.Exit(1)
		}
	} else {
		signer, err = attest.NewSigner(cfg.Attestation.KeyID)
		if err != nil {
			slog.Error("Failed to generate signing key", "error", err)
			os.Exit(1)
		}
		slog.Warn("No signing key configured, using ephemeral key",
			"key_id", cfg.Attestation.KeyID)
	}
	attestations := services.NewAttestationService(dbClient.DB(), signer, slog.Default())

	// 6. Analysis model client and integrity engine
	analysisClient := llm.NewClient(llm.Config{
		APIKey:    cfg.Analysis.APIKey,
		Model:     cfg.Analysis.Model,
		MaxTokens: cfg.Analysis.MaxTokens,
	}, slog.Default())
	engine := integrity.NewEngine(analysisClient, slog.Default())

	// 7. Webhook delivery
	dispatcher := webhook.NewDispatcher(webhookSvc, cfg.Webhooks.Version, slog.Default())
	emitter := webhook.NewEmitter(webhookSvc, dispatcher, slog.Default())
	dispatcher.Start(ctx)
	defer dispatcher.Stop()

	// 8. Enforcement
	enforcer := enforce.NewEnforcer(agents, checkpoints, nudges, quotaCache, emitter, slog.Default())
	sweeper := enforce.NewSweeper(nudges, slog.Default())
	sweeper.Start(ctx)
	defer sweeper.Stop()

	// 9. Post-hoc observer, only when a gateway log source is configured
	if cfg.ObserverUsable() {
		obs := observer.New(observer.Config{
			Interval:  cfg.Observer.Interval,
			OrgMode:   cfg.Values.Mode,
			OrgValues: cfg.Values.OrgValues,
		}, observer.Deps{
			Logs:         observer.NewLogClient(cfg.Providers.AIG.LogAPIBase, cfg.Providers.AIG.Authorization),
			Agents:       agents,
			Cards:        cards,
			Checkpoints:  checkpoints,
			Attestations: attestations,
			Engine:       engine,
			TraceModel:   analysisClient,
			Enforcer:     enforcer,
			Masker:       maskingService,
		}, slog.Default())
		obs.Start(ctx)
		defer obs.Stop()
	} else {
		slog.Info("Observer disabled", "reason", "no gateway log source configured")
	}

	// 10. Background task runner for post-response work
	runner := background.NewRunner(backgroundTaskTimeout, slog.Default())

	// 11. Gateway server
	server := gateway.NewServer(cfg, gateway.Deps{
		Agents:       agents,
		Cards:        cards,
		Checkpoints:  checkpoints,
		Nudges:       nudges,
		Attestations: attestations,
		QuotaCache:   quotaCache,
		Engine:       engine,
		Enforcer:     enforcer,
		Runner:       runner,
		Masker:       maskingService,
		DB:           dbClient.DB(),
	}, slog.Default())

	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil {
			errCh <- err
		}
	}()
	slog.Info("smoltbot started", "addr", cfg.Server.ListenAddr)

	// 12. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 13. Graceful shutdown: stop accepting requests, then drain background
	// analysis so captured streams still produce checkpoints.
	httpCtx, httpCancel := context.WithTimeout(ctx, 10*time.Second)
	defer httpCancel()
	if err := server.Shutdown(httpCtx); err != nil {
		slog.Error("Gateway shutdown error", "error", err)
	}

	drainCtx, drainCancel := context.WithTimeout(ctx, 30*time.Second)
	defer drainCancel()
	if err := runner.Shutdown(drainCtx); err != nil {
		slog.Warn("Background tasks did not drain in time", "error", err)
	}

	// Inline webhook attempts run detached from their triggering request;
	// wait for them so the cron path is the only delivery left behind.
	emitter.Drain()

	if rdb != nil {
		if err := rdb.Close(); err != nil {
			slog.Error("Error closing Redis client", "error", err)
		}
	}

	slog.Info("Shutdown complete")
}
