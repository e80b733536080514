package gymaggregator

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/gym-aggregator/internal/config"
	"github.com/magabrotheeeer/gym-aggregator/internal/lib/jwt"
	"github.com/magabrotheeeer/gym-aggregator/internal/mockapi"
	"github.com/magabrotheeeer/gym-aggregator/internal/mockdata"
	authservice "github.com/magabrotheeeer/gym-aggregator/internal/services/auth"
	dashboardservice "github.com/magabrotheeeer/gym-aggregator/internal/services/dashboard"
	planservice "github.com/magabrotheeeer/gym-aggregator/internal/services/plan"
	reportservice "github.com/magabrotheeeer/gym-aggregator/internal/services/report"
	userservice "github.com/magabrotheeeer/gym-aggregator/internal/services/user"
	"github.com/magabrotheeeer/gym-aggregator/internal/storage/kv"
)

type App struct {
	server *http.Server
	logger *slog.Logger
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	seed := cfg.Mock.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	dataStore := mockdata.New(seed, time.Now())

	kvStore, err := kv.New(ctx, cfg)
	if err != nil {
		return nil, err
	}

	planService, err := planservice.New(ctx, kvStore, logger)
	if err != nil {
		return nil, err
	}
	userService, err := userservice.New(ctx, kvStore, dataStore.Users, logger)
	if err != nil {
		return nil, err
	}

	maker := jwt.NewMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	authService := authservice.New(dataStore, maker, logger)

	dashboardService := dashboardservice.New(dataStore, logger)
	reportService := reportservice.New(seed, logger)

	facade := mockapi.New(dashboardService, reportService, seed,
		cfg.Mock.LatencyMin, cfg.Mock.LatencyMax, logger)

	router := chi.NewRouter()

	RegisterRoutes(router, logger, facade, authService, planService, userService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		return a.server.Shutdown(timeoutCtx)
	}
}
