package initializer

import (
	"fmt"
	"log/slog"

	"github.com/amirasaad/banktransfer/infra"
	infra_repository "github.com/amirasaad/banktransfer/infra/repository"
	"github.com/amirasaad/banktransfer/internal/fixtures/accounts"
	"github.com/amirasaad/banktransfer/pkg/app"
	"github.com/amirasaad/banktransfer/pkg/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// InitializeDependencies initializes all the application dependencies.
// An empty DATABASE_URL selects the in-memory store.
func InitializeDependencies(cfg *config.App) (deps *app.Deps, err error) {
	logger := setupLogger(cfg.Log)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	deps = &app.Deps{
		Logger:   logger,
		Registry: registry,
	}

	if cfg.DB == nil || cfg.DB.Url == "" {
		if err := initializeMemoryStore(deps, cfg.Memory, logger); err != nil {
			return nil, err
		}
		return deps, nil
	}

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, err
	}
	if cfg.DB.AutoMigrate {
		if err := infra_repository.Migrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		logger.Info("Database migrated")
	}

	deps.Uow = infra_repository.NewUoW(db)
	deps.Accounts = infra_repository.NewAccountRepository(db)
	deps.Close = func() error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	logger.Info("Using Postgres account store")
	return deps, nil
}

func initializeMemoryStore(deps *app.Deps, cfg *config.Memory, logger *slog.Logger) error {
	var (
		seeds []accounts.Seed
		err   error
	)
	if cfg != nil && len(cfg.Accounts) > 0 {
		seeds, err = accounts.ParsePairs(cfg.Accounts)
	} else {
		seeds, err = accounts.LoadAccountsCSV("")
	}
	if err != nil {
		return fmt.Errorf("failed to seed memory store: %w", err)
	}

	store := accounts.NewStore(seeds...)
	deps.Uow = store
	deps.Accounts = store
	logger.Info("Using in-memory account store", "accounts", len(seeds))
	return nil
}
