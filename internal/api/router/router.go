package router

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/fragpit/points/internal/api/handlers"
	"github.com/fragpit/points/internal/api/middleware"
)

const apiShutdownTimeout = 5 * time.Second

type Deps struct {
	HealthService     handlers.HealthService
	UsersService      handlers.UsersService
	BalanceService    handlers.BalanceService
	HistoryService    handlers.HistoryService
	ItemsService      handlers.ItemsService
	RedemptionService handlers.RedemptionService

	CORSOrigins    []string
	Metrics        middleware.RequestObserver
	MetricsHandler http.Handler
}

type Router struct {
	router http.Handler
}

func NewRouter(deps Deps) *Router {
	mux := http.NewServeMux()

	mux.Handle("GET /{$}", handlers.NewRootHandler())
	mux.Handle("GET /health", handlers.NewHealthHandler(deps.HealthService))
	if deps.MetricsHandler != nil {
		mux.Handle("GET /metrics", deps.MetricsHandler)
	}

	mux.Handle("GET /users", handlers.NewUsersListHandler(deps.UsersService))
	mux.Handle(
		"GET /users/{user_id}",
		handlers.NewUserGetHandler(deps.UsersService),
	)
	mux.Handle(
		"GET /users/{user_id}/balance",
		handlers.NewBalanceHandler(deps.BalanceService),
	)

	mux.Handle(
		"GET /users/{user_id}/points/history",
		handlers.NewLegacyHistoryHandler(deps.HistoryService),
	)
	mux.Handle(
		"GET /users/{user_id}/point-history",
		handlers.NewHistoryHandler(deps.HistoryService),
	)

	mux.Handle(
		"GET /redeemable-items",
		handlers.NewItemsHandler(deps.ItemsService),
	)

	mux.Handle(
		"POST /users/{user_id}/redeem/{item_id}",
		handlers.NewRedeemItemHandler(deps.RedemptionService),
	)
	mux.Handle(
		"POST /use-points",
		handlers.NewUsePointsHandler(deps.RedemptionService),
	)

	mws := []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.Log(),
		middleware.CORS(deps.CORSOrigins),
	}
	if deps.Metrics != nil {
		mws = append(mws, middleware.Metrics(deps.Metrics))
	}

	return &Router{
		router: middleware.Chain(mux, mws...),
	}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

func (r *Router) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           r.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("failed to start server", slog.Any("error", err))
			errChan <- err
			return
		}
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		ctx, cancel := context.WithTimeout(
			context.WithoutCancel(ctx),
			apiShutdownTimeout,
		)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			slog.Error(
				"failed to shutdown server gracefully",
				slog.Any("error", err),
			)
			return err
		}

		slog.Info("api shut down gracefully")
	}

	return nil
}
