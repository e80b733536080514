// Package gymaggregator предоставляет маршруты для основного приложения.
package gymaggregator

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/gym-aggregator/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/gym-aggregator/internal/http/handlers/dashboard/charts"
	"github.com/magabrotheeeer/gym-aggregator/internal/http/handlers/dashboard/metrics"
	"github.com/magabrotheeeer/gym-aggregator/internal/http/handlers/health"
	plancreate "github.com/magabrotheeeer/gym-aggregator/internal/http/handlers/plan/create"
	planlist "github.com/magabrotheeeer/gym-aggregator/internal/http/handlers/plan/list"
	planremove "github.com/magabrotheeeer/gym-aggregator/internal/http/handlers/plan/remove"
	planupdate "github.com/magabrotheeeer/gym-aggregator/internal/http/handlers/plan/update"
	"github.com/magabrotheeeer/gym-aggregator/internal/http/handlers/report/financial"
	"github.com/magabrotheeeer/gym-aggregator/internal/http/handlers/report/usage"
	usercreate "github.com/magabrotheeeer/gym-aggregator/internal/http/handlers/user/create"
	userlist "github.com/magabrotheeeer/gym-aggregator/internal/http/handlers/user/list"
	userremove "github.com/magabrotheeeer/gym-aggregator/internal/http/handlers/user/remove"
	userupdate "github.com/magabrotheeeer/gym-aggregator/internal/http/handlers/user/update"
	"github.com/magabrotheeeer/gym-aggregator/internal/http/middlewarectx"
	"github.com/magabrotheeeer/gym-aggregator/internal/mockapi"
	authservice "github.com/magabrotheeeer/gym-aggregator/internal/services/auth"
	planservice "github.com/magabrotheeeer/gym-aggregator/internal/services/plan"
	userservice "github.com/magabrotheeeer/gym-aggregator/internal/services/user"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, facade *mockapi.Facade, authService *authservice.Service, planService *planservice.Service, userService *userservice.Service) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	limiter := rate.NewLimiter(rate.Limit(50), 100)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/login", login.New(logger, authService).ServeHTTP)

		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.RateLimitMiddleware(logger, limiter))

			r.Get("/dashboard/metrics", metrics.New(logger, facade).ServeHTTP)
			r.Get("/dashboard/charts", charts.New(logger, facade).ServeHTTP)

			r.Post("/reports/financial", financial.New(logger, facade).ServeHTTP)
			r.Post("/reports/usage", usage.New(logger, facade).ServeHTTP)

			r.Post("/plans", plancreate.New(logger, planService).ServeHTTP)
			r.Get("/plans", planlist.New(logger, planService).ServeHTTP)
			r.Put("/plans/{id}", planupdate.New(logger, planService).ServeHTTP)
			r.Delete("/plans/{id}", planremove.New(logger, planService).ServeHTTP)

			r.Post("/users", usercreate.New(logger, userService).ServeHTTP)
			r.Get("/users", userlist.New(logger, userService).ServeHTTP)
			r.Put("/users/{id}", userupdate.New(logger, userService).ServeHTTP)
			r.Delete("/users/{id}", userremove.New(logger, userService).ServeHTTP)
		})
	})

	r.Get("/health", health.New(logger).ServeHTTP)

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
