package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"rent-assist/config"
	"rent-assist/domain"
	"rent-assist/events"
	httpLayer "rent-assist/http"
	"rent-assist/metrics"
	"rent-assist/repository"
	"rent-assist/service"
)

func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if err := cfg.Validate(); err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

func serve(ctx context.Context, cfg config.Config) error {
	logger := cfg.NewLogger(os.Stdout)
	m := metrics.New()

	cache := newCache(ctx, cfg, logger)

	repos, err := newRepositories(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := repos.Close(); err != nil {
			logger.Error("error closing database", "error", err)
		}
	}()

	var forwarder events.Forwarder
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaForwarder := events.NewKafkaForwarder(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer kafkaForwarder.Close()
		forwarder = kafkaForwarder
		logger.Info("forwarding change events to kafka", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	}
	hub := events.NewHub(forwarder, logger)
	auditToken := hub.Subscribe(domain.TableApplications, events.Filter{}, func(e domain.ChangeEvent) {
		logger.Debug("application changed", "action", e.Action, "applicant_id", e.Key)
	})
	defer hub.Unsubscribe(auditToken)

	loanService := service.NewLoanService(repos.schedules, cache, hub, m, logger)
	loanService.SetCacheTTL(cfg.CacheTTL)
	feeService := service.NewFeeService(m)
	eligibilityService := service.NewEligibilityService(m)
	applicationService := service.NewApplicationService(repos.applications, hub, m, logger)
	termRecommendationService := service.NewTermRecommendationService(loanService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Window)
	defer rateLimiter.Stop()

	mux := httpLayer.NewRouter(httpLayer.Handlers{
		Loan:               httpLayer.NewLoanHandler(loanService),
		Fee:                httpLayer.NewFeeHandler(feeService),
		Eligibility:        httpLayer.NewEligibilityHandler(eligibilityService),
		Application:        httpLayer.NewApplicationHandler(applicationService),
		TermRecommendation: httpLayer.NewTermRecommendationHandler(termRecommendationService),
		Metrics:            m.Handler(),
	}, rateLimiter, m.ObserveRateLimited)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("API listening", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("start server: %w", err)
	case sig := <-quit:
		logger.Info("shutting down server", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err)
	}

	logger.Info("server exited")
	return nil
}

// newCache uses Redis when it is configured and reachable, and an in-process
// cache otherwise.
func newCache(ctx context.Context, cfg config.Config, logger *slog.Logger) repository.CacheRepository {
	if cfg.RedisAddr == "" {
		logger.Warn("REDIS_ADDR not set, using in-memory schedule cache")
		return repository.NewMemoryCache()
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	redisCache := repository.NewRedisCache(cfg.RedisAddr)
	if err := redisCache.Ping(pingCtx); err != nil {
		logger.Error("could not connect to redis, using in-memory schedule cache", "addr", cfg.RedisAddr, "error", err)
		_ = redisCache.Close()
		return repository.NewMemoryCache()
	}
	logger.Info("connected to redis", "addr", cfg.RedisAddr)
	return redisCache
}

type repositories struct {
	schedules    repository.ScheduleRepository
	applications repository.ApplicationRepository
	db           *gorm.DB
}

// Close releases the database pool, if there is one.
func (r repositories) Close() error {
	if r.db == nil {
		return nil
	}
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func newRepositories(cfg config.Config, logger *slog.Logger) (repositories, error) {
	if cfg.DB.Driver == "" {
		logger.Warn("DB_DRIVER not set, records are kept in memory")
		return repositories{
			schedules:    repository.NewScheduleRepositoryMemory(),
			applications: repository.NewApplicationRepositoryMemory(),
		}, nil
	}

	db, err := repository.OpenDatabase(cfg.DB.Driver, cfg.DB.DSN)
	if err != nil {
		return repositories{}, err
	}
	if err := repository.Migrate(db); err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
		return repositories{}, fmt.Errorf("migrate database: %w", err)
	}
	logger.Info("connected to database", "driver", cfg.DB.Driver)
	return repositories{
		schedules:    repository.NewScheduleRepositoryGorm(db),
		applications: repository.NewApplicationRepositoryGorm(db),
		db:           db,
	}, nil
}
