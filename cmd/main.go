package main

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

	"github.com/redis/go-redis/v9"

	httpadapter "mesa-ledger/internal/adapter/http"
	"mesa-ledger/internal/adapter/memory"
	"mesa-ledger/internal/adapter/postgres"
	redisadapter "mesa-ledger/internal/adapter/redis"
	sqlitestore "mesa-ledger/internal/adapter/sqlite"
	"mesa-ledger/internal/adapter/usecase"
	"mesa-ledger/internal/config"
	"mesa-ledger/internal/config/configs"
	"mesa-ledger/internal/core/domain"
	"mesa-ledger/internal/core/port"
	"mesa-ledger/internal/db"
)

// main is the entry point of the ledger service. It loads configuration,
// opens the configured state store, restores or bootstraps the ledger and
// serves the HTTP API until a termination signal arrives.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := cfg.Log.New(os.Stdout)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err = run(ctx, cfg, logger); err != nil {
		logger.Error("ledger stopped", slog.Any("error", err))
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	ids, err := cfg.Ledger.Identities()
	if err != nil {
		return err
	}
	settings, err := cfg.Ledger.Settings()
	if err != nil {
		return err
	}
	genesisBalances, err := cfg.Ledger.GenesisBalances()
	if err != nil {
		return err
	}

	repo, closeRepo, err := openStateRepository(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeRepo()

	// genesis funds only a fresh ledger; a restored snapshot replaces the
	// whole book
	value := memory.NewValueLedger(ids.Treasury)
	for addr, amount := range genesisBalances {
		value.Mint(addr, amount)
	}
	roles := memory.NewRoles()
	roles.Grant(domain.RoleAdmin, append(ids.Admins, ids.Owner)...)
	roles.Grant(domain.RoleCampaignCreator, ids.Creators...)
	creds := memory.NewCredentials()
	creds.Issue(ids.CredentialHolders...)

	events, closeEvents, err := openEventPublisher(ctx, cfg.Redis, logger)
	if err != nil {
		return err
	}
	defer closeEvents()

	svc, err := usecase.NewLedgerUseCase(ctx, domain.NewState(ids.Owner, settings), usecase.Deps{
		Repo:        repo,
		Value:       value,
		Credentials: creds,
		Access:      roles,
		Events:      events,
		Logger:      logger,
	}, usecase.Options{ApprovalRequired: cfg.Ledger.ApprovalRequired})
	if err != nil {
		return err
	}

	if cfg.Seed {
		deposit, err := domain.ParseTokens(cfg.SeedDeposit)
		if err != nil {
			return fmt.Errorf("SEED_DEPOSIT: %w", err)
		}
		roles.Grant(domain.RoleCampaignCreator, ids.Owner)
		if err = db.Seed(ctx, svc, ids.Owner, deposit, logger); err != nil {
			return err
		}
	}

	auth := httpadapter.NewAuthenticator(cfg.Auth.Secret, cfg.Auth.Issuer)
	if cfg.Env == "dev" {
		tok, err := auth.Issue(ids.Owner, time.Now().Add(24*time.Hour))
		if err != nil {
			return err
		}
		logger.Info("development token issued", slog.String("subject", ids.Owner.Hex()), slog.String("token", tok))
	}

	handler := httpadapter.NewHandler(svc, auth, logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)), slog.String("storage", cfg.Storage.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info("server gracefully stopped")
	return nil
}

// openStateRepository returns the store selected by STORAGE_DRIVER and a
// func releasing its resources.
func openStateRepository(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.StateRepository, func(), error) {
	switch cfg.Storage.Driver {
	case configs.DriverMemory:
		logger.Warn("ledger state and token balances are not persisted across restarts")
		return memory.NewStateStore(), func() {}, nil

	case configs.DriverPostgres:
		if cfg.Psql.RunMigrations {
			res, err := db.Migrate(cfg.Psql.Addr.String())
			if err != nil {
				return nil, nil, fmt.Errorf("migrate: %w", err)
			}
			logger.Info("schema ready",
				slog.Uint64("from_version", uint64(res.From)),
				slog.Uint64("version", uint64(res.To)),
				slog.Bool("applied", res.Applied()),
			)
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, nil, fmt.Errorf("database connection: %w", err)
		}
		return postgres.NewStateRepository(pool), pool.Close, nil

	case configs.DriverSQLite:
		gdb, err := db.NewSQLite(cfg.SQLite)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite: %w", err)
		}
		store, err := sqlitestore.NewStateStore(gdb, logger)
		if err != nil {
			return nil, nil, err
		}
		closer := func() {
			if sqlDB, err := gdb.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return store, closer, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// openEventPublisher streams events to Redis when enabled and otherwise
// keeps them in the process log.
func openEventPublisher(ctx context.Context, cfg configs.Redis, logger *slog.Logger) (port.EventPublisher, func(), error) {
	if !cfg.Enabled {
		return memory.NewEventLog(logger), func() {}, nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("redis: %w", err)
	}
	return redisadapter.NewEventPublisher(rdb, cfg.Stream, cfg.MaxLen, logger), func() { _ = rdb.Close() }, nil
}
