package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/today-record-backend/internal/adapter/postgres"
	feedbackrepo "github.com/heartmarshall/today-record-backend/internal/adapter/postgres/feedback"
	recordrepo "github.com/heartmarshall/today-record-backend/internal/adapter/postgres/record"
	"github.com/heartmarshall/today-record-backend/internal/adapter/provider"
	"github.com/heartmarshall/today-record-backend/internal/auth"
	"github.com/heartmarshall/today-record-backend/internal/config"
	"github.com/heartmarshall/today-record-backend/internal/service/feedback"
	"github.com/heartmarshall/today-record-backend/internal/service/record"
	"github.com/heartmarshall/today-record-backend/internal/transport/middleware"
	"github.com/heartmarshall/today-record-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, builds services and serves HTTP until ctx is cancelled or
// the process receives SIGINT/SIGTERM.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("llm_provider", cfg.LLM.ProviderName()),
		slog.String("llm_model", cfg.LLM.ModelOrDefault()),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if _, err := postgres.Migrate(ctx, pool, postgres.MigrateUp); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied")
	}

	completer, err := provider.New(ctx, cfg.LLM, logger)
	if err != nil {
		return fmt.Errorf("completion provider: %w", err)
	}

	records := recordrepo.New(pool)
	feedbacks := feedbackrepo.New(pool)

	feedbackSvc := feedback.NewService(logger, records, feedbacks, completer, feedback.Options{
		AllowRegeneration: cfg.Feedback.AllowRegeneration,
		CompletionTimeout: cfg.LLM.Timeout,
	})
	recordSvc := record.NewService(logger, records, cfg.Journal.Location())

	trusted, err := cfg.Server.TrustedProxyPrefixes()
	if err != nil {
		return err
	}

	verifier := auth.NewTokenVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	var api middleware.Middleware
	if cfg.RateLimit.Enabled {
		rl := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, cfg.RateLimit.CleanupInterval)
		defer rl.Stop()
		api = rl.Limit()
	}

	router := rest.NewRouter(rest.Handlers{
		Feedback: rest.NewFeedbackHandler(feedbackSvc, logger),
		Records:  rest.NewRecordHandler(recordSvc, logger),
		Health:   rest.NewHealthHandler(pool, BuildVersion(), cfg.LLM.ProviderName()),
		Metrics:  promhttp.Handler(),
	}, api)

	// Auth runs before Logger so access logs carry user_id.
	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.ClientIP(trusted),
		middleware.CORS(cfg.CORS),
		middleware.Auth(verifier),
		middleware.Logger(logger),
	)(router)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}
