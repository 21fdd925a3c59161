package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/banktransfer/pkg/config"
	"github.com/amirasaad/banktransfer/pkg/decorator"
	"github.com/amirasaad/banktransfer/pkg/policy"
	"github.com/amirasaad/banktransfer/pkg/repository"
	"github.com/amirasaad/banktransfer/pkg/service/transfer"
	"github.com/prometheus/client_golang/prometheus"
)

// Deps contains the infrastructure the application is assembled from.
type Deps struct {
	Uow      repository.UnitOfWork
	Accounts repository.AccountFinder
	Registry *prometheus.Registry
	Logger   *slog.Logger
	// Close releases the store. It may be nil.
	Close func() error
}

// App is the assembled application: its dependencies, its configuration and
// the instrumented transfer service the HTTP and CLI surfaces call.
type App struct {
	Deps            *Deps
	Config          *config.App
	TransferService *decorator.Instrumented
}

// New builds the transfer engine from cfg on top of deps.
func New(deps *Deps, cfg *config.App) (*App, error) {
	fees, err := FeePolicy(cfg.Fee)
	if err != nil {
		return nil, err
	}
	window, err := TimePolicy(cfg.ServiceWindow)
	if err != nil {
		return nil, err
	}

	var opts []transfer.Option
	if cfg.Transfer != nil {
		opts = append(opts, transfer.WithMinimumTransferAmount(cfg.Transfer.MinimumAmount))
	}
	engine := transfer.NewService(deps.Uow, fees, window, opts...)

	if deps.Registry == nil {
		deps.Registry = prometheus.NewRegistry()
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &App{
		Deps:   deps,
		Config: cfg,
		TransferService: decorator.NewInstrumented(
			engine,
			logger.With("service", "transfer"),
			decorator.NewMetrics(deps.Registry),
		),
	}, nil
}

// FeePolicy selects the fee policy named by cfg. A nil cfg means no fee.
func FeePolicy(cfg *config.Fee) (policy.FeePolicy, error) {
	if cfg == nil {
		return policy.ZeroFee{}, nil
	}
	fees, err := policy.NewFeePolicy(cfg.Strategy, cfg.FlatAmount, cfg.ServiceFeePercentage)
	if err != nil {
		return nil, fmt.Errorf("fee policy: %w", err)
	}
	return fees, nil
}

// TimePolicy builds the service window from cfg. A nil or disabled cfg means
// transfers are accepted at any time.
func TimePolicy(cfg *config.ServiceWindow) (policy.TimePolicy, error) {
	if cfg == nil || !cfg.Enabled {
		return policy.AlwaysOpen{}, nil
	}
	loc := time.Local
	if cfg.TimeZone != "" {
		l, err := time.LoadLocation(cfg.TimeZone)
		if err != nil {
			return nil, fmt.Errorf("service window: %w", err)
		}
		loc = l
	}
	window, err := policy.NewServiceWindow(cfg.Begin, cfg.End, loc)
	if err != nil {
		return nil, fmt.Errorf("service window: %w", err)
	}
	return window, nil
}
