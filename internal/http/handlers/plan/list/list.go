// Package list реализует HTTP-обработчик списка тарифных планов.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/gym-aggregator/internal/http/response"
	"github.com/magabrotheeeer/gym-aggregator/internal/lib/sl"
	"github.com/magabrotheeeer/gym-aggregator/internal/models"
)

// Handler управляет HTTP-запросами на список тарифов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс CRUD тарифов.
type Service interface {
	List(ctx context.Context) ([]models.Plan, error)
}

// New создаёт Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Список тарифных планов
// @Tags Plans
// @Produce json
// @Success 200 {object} response.Response "Каталог тарифов"
// @Failure 500 {object} response.Response "Ошибка хранилища"
// @Router /plans [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.plan.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	plans, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list plans", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(response.CodeInternal, "could not list plans"))
		return
	}

	log.Info("plans listed", slog.Int("count", len(plans)))
	render.JSON(w, r, response.OK(map[string]any{
		"count": len(plans),
		"plans": plans,
	}, "plans retrieved"))
}
