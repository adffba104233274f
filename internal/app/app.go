package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/affipay/affipay/internal/config"
	"github.com/affipay/affipay/internal/currency"
	"github.com/affipay/affipay/internal/database"
	"github.com/affipay/affipay/internal/handlers"
	"github.com/affipay/affipay/internal/lock"
	"github.com/affipay/affipay/internal/logger"
	"github.com/affipay/affipay/internal/notify"
	"github.com/affipay/affipay/internal/provider"
	"github.com/affipay/affipay/internal/repository"
	"github.com/affipay/affipay/internal/service"
)

const (
	lockTTL         = 10 * time.Second
	lockWaitTimeout = 5 * time.Second
	eventBufferSize = 256
)

type App struct {
	server     *http.Server
	db         *sql.DB
	redis      *redis.Client
	dispatcher *notify.Dispatcher
}

func NewApp(ctx context.Context) (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ParseFlags()

	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Error("Database connection failed", zap.Error(err))
		return nil, err
	}

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddress})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	locks := lock.NewRedisManager(redisClient, lockTTL, lockWaitTimeout)

	rates, err := currency.ParseRates(cfg.CurrencyRates)
	if err != nil {
		return nil, fmt.Errorf("failed to parse currency rates: %w", err)
	}
	normalizer, err := currency.NewNormalizer(rates, currency.UnknownPolicy(cfg.UnknownCurrencyPolicy))
	if err != nil {
		return nil, fmt.Errorf("failed to build currency normalizer: %w", err)
	}

	minPayout, err := decimal.NewFromString(cfg.MinPayoutUSD)
	if err != nil {
		return nil, fmt.Errorf("invalid minimum payout %q: %w", cfg.MinPayoutUSD, err)
	}

	endpoints, err := cfg.Providers()
	if err != nil {
		return nil, fmt.Errorf("failed to parse provider endpoints: %w", err)
	}
	registry := provider.NewRegistry()
	for name, baseURL := range endpoints {
		registry.Register(name, provider.NewHTTPAdapter(baseURL, cfg.ProviderTimeout))
	}

	var (
		emitter    notify.Emitter = notify.Noop{}
		dispatcher *notify.Dispatcher
	)
	if cfg.WebhookSinkURL != "" {
		dispatcher = notify.NewDispatcher(cfg.WebhookSinkURL, eventBufferSize)
		emitter = dispatcher
	}

	affiliateRepo := repository.NewAffiliateRepository(db)
	commissionRepo := repository.NewCommissionRepository(db)
	withdrawalRepo := repository.NewWithdrawalRepository(db)
	batchRepo := repository.NewBatchRepository(db)

	ledgerService := service.NewLedgerService(commissionRepo, withdrawalRepo, affiliateRepo, normalizer, locks, emitter)
	withdrawalService := service.NewWithdrawalService(withdrawalRepo, commissionRepo, affiliateRepo, locks, emitter, minPayout, cfg.MaxItemAttempts)
	batchService := service.NewBatchService(batchRepo, registry, locks, emitter, cfg.ProviderTimeout, cfg.MaxItemAttempts)

	handler := handlers.NewHandler(ledgerService, withdrawalService, batchService)
	router := handlers.NewRouter(handler, cfg.SecretKey)

	server := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: router,
	}

	return &App{
		server:     server,
		db:         db,
		redis:      redisClient,
		dispatcher: dispatcher,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	if a.dispatcher != nil {
		go a.dispatcher.Run(ctx)
	}

	go func() {
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("server failed to start", zap.Error(err))
		}
	}()
	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	logger.Log.Info("shutting down server...")
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("server shutdown failed", zap.Error(err))
		return err
	}

	logger.Log.Info("closing redis connection...")
	if err := a.redis.Close(); err != nil {
		logger.Log.Error("failed to close redis client", zap.Error(err))
	}

	logger.Log.Info("closing database connection...")
	if err := a.db.Close(); err != nil {
		logger.Log.Error("failed to close database", zap.Error(err))
		return err
	}

	return nil
}
