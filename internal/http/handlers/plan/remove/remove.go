// Package remove реализует HTTP-обработчик удаления тарифного плана.
package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/gym-aggregator/internal/http/response"
	"github.com/magabrotheeeer/gym-aggregator/internal/lib/sl"
	planservice "github.com/magabrotheeeer/gym-aggregator/internal/services/plan"
)

// Handler управляет HTTP-запросами на удаление тарифов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс CRUD тарифов.
type Service interface {
	Remove(ctx context.Context, id string) error
}

// New создаёт Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Удалить тарифный план
// @Tags Plans
// @Produce json
// @Param id path string true "Идентификатор тарифа"
// @Success 200 {object} response.Response "Тариф удалён"
// @Failure 404 {object} response.Response "Тариф не найден"
// @Router /plans/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.plan.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	if err := h.service.Remove(r.Context(), id); err != nil {
		if errors.Is(err, planservice.ErrNotFound) {
			log.Error("plan not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(response.CodeNotFound, "plan not found"))
			return
		}
		log.Error("failed to remove plan", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(response.CodeInternal, "could not remove plan"))
		return
	}

	log.Info("removed plan", slog.String("id", id))
	render.JSON(w, r, response.OK(map[string]any{
		"id": id,
	}, "plan removed"))
}
