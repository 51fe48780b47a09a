package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/SAP-F-2025/curriculum-interview/internal/cache"
	"github.com/SAP-F-2025/curriculum-interview/internal/config"
	"github.com/SAP-F-2025/curriculum-interview/internal/curriculum"
	"github.com/SAP-F-2025/curriculum-interview/internal/handlers"
	"github.com/SAP-F-2025/curriculum-interview/internal/llm"
	"github.com/SAP-F-2025/curriculum-interview/internal/repositories"
	"github.com/SAP-F-2025/curriculum-interview/internal/repositories/postgres"
	"github.com/SAP-F-2025/curriculum-interview/internal/services"
	"github.com/SAP-F-2025/curriculum-interview/internal/utils"
	"github.com/SAP-F-2025/curriculum-interview/internal/validator"
	"github.com/SAP-F-2025/curriculum-interview/pkg"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return serve(ctx, cmd, cfg, logger)
	},
}

func init() {
	serveCmd.Flags().Bool("migrate", false, "Run database migrations before serving")
}

func serve(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		return err
	}
	if migrate, _ := cmd.Flags().GetBool("migrate"); migrate {
		if err := pkg.AutoMigrate(db); err != nil {
			return err
		}
	}

	repo, closeCache := sessionRepository(ctx, cfg, postgres.NewSessionPostgreSQL(db), logger)
	defer closeCache()

	publisher, err := cfg.Events.CreateEventPublisher(logger)
	if err != nil {
		return fmt.Errorf("failed to create event publisher: %w", err)
	}
	defer publisher.Close()

	synthesizer := curriculum.NewSynthesizer(summaryProvider(ctx, cfg, logger), cfg.LLM.Timeout, logger)
	interviewService := services.NewInterviewService(repo, synthesizer, publisher, validator.New(), logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := handlers.NewHandlerManager(interviewService, utils.NewSlogLogger(logger)).NewRouter()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "addr", srv.Addr, "llm_enabled", synthesizer.Enabled())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// sessionRepository wraps the store with the redis cache when one is
// configured and reachable.
func sessionRepository(ctx context.Context, cfg *config.Config, store repositories.SessionRepository, logger *slog.Logger) (repositories.SessionRepository, func()) {
	sessionCache, closeCache := openCache(ctx, cfg, logger)
	if sessionCache == nil {
		return store, closeCache
	}
	return cache.NewCachedSessionRepository(store, sessionCache, cfg.CacheTTL, logger), closeCache
}

// summaryProvider returns nil when no text-generation provider is configured
// or it cannot be built; summaries then use the heuristic only.
func summaryProvider(ctx context.Context, cfg *config.Config, logger *slog.Logger) llm.Provider {
	provider, err := llm.NewProvider(ctx, cfg.LLM, logger)
	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		logger.Info("Summary enhancement disabled: no LLM provider configured")
		return nil
	case err != nil:
		logger.Warn("Summary enhancement disabled", "error", err)
		return nil
	}
	logger.Info("Summary enhancement enabled", "provider", cfg.LLM.Resolve(), "model", provider.ModelID())
	return provider
}
