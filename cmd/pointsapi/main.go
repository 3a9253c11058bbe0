package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fragpit/points/internal/api/router"
	"github.com/fragpit/points/internal/config"
	"github.com/fragpit/points/internal/metrics"
	"github.com/fragpit/points/internal/service/balance"
	"github.com/fragpit/points/internal/service/healthcheck"
	"github.com/fragpit/points/internal/service/history"
	"github.com/fragpit/points/internal/service/items"
	"github.com/fragpit/points/internal/service/redemption"
	"github.com/fragpit/points/internal/service/users"
	"github.com/fragpit/points/internal/storage/postgresql"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
	)
	defer cancel()

	cfg, err := config.NewConfig(os.Args[1:])
	if err != nil {
		slog.Error("failed to initialize config", slog.Any("error", err))
		os.Exit(1)
	}

	var logLevel slog.Level
	switch strings.ToUpper(cfg.LogLevel) {
	case slog.LevelDebug.String():
		logLevel = slog.LevelDebug
	case slog.LevelWarn.String():
		logLevel = slog.LevelWarn
	case slog.LevelError.String():
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	if logLevel == slog.LevelDebug {
		slog.Debug("running with config")
		fmt.Println(cfg.String())
	}

	slog.Info("starting app")

	pgStorage, err := postgresql.NewStorage(ctx, cfg.DatabaseURI)
	if err != nil {
		slog.Error("failed to initialize storage", slog.Any("error", err))
		os.Exit(1)
	}
	defer pgStorage.Close()

	m := metrics.New(prometheus.DefaultRegisterer)
	api := router.NewRouter(buildRouterDeps(cfg, pgStorage, m))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("starting api", slog.String("address", cfg.RunAddress))
		if err := api.Run(gctx, cfg.RunAddress); err != nil {
			return fmt.Errorf("api failed: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		slog.Error("app failed", slog.Any("error", err))
		pgStorage.Close()
		os.Exit(1)
	}

	slog.Info("app shut down successfully")
}

func buildRouterDeps(
	cfg *config.Config,
	st *postgresql.Repositories,
	m *metrics.Metrics,
) router.Deps {
	return router.Deps{
		HealthService:  healthcheck.NewHealthcheckService(st.Health),
		UsersService:   users.NewUsersService(st.Users),
		BalanceService: balance.NewBalanceService(st.Balance),
		HistoryService: history.NewHistoryService(st.History),
		ItemsService:   items.NewItemsService(st.Items),
		RedemptionService: redemption.NewRedemptionService(
			st.Redemptions,
			redemption.WithRecorder(m),
		),
		CORSOrigins:    cfg.CORSOrigins,
		Metrics:        m,
		MetricsHandler: promhttp.Handler(),
	}
}
