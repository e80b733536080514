// Package remove реализует HTTP-обработчик удаления пользователя.
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
	userservice "github.com/magabrotheeeer/gym-aggregator/internal/services/user"
)

// Handler управляет HTTP-запросами на удаление пользователей.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс удаления пользователя.
type Service interface {
	Remove(ctx context.Context, id string) error
}

// New создаёт Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить пользователя
// @Tags Users
// @Produce json
// @Param id path string true "Идентификатор пользователя"
// @Success 200 {object} response.Response "Пользователь удалён"
// @Failure 404 {object} response.Response "Пользователь не найден"
// @Router /users/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	if err := h.service.Remove(r.Context(), id); err != nil {
		if errors.Is(err, userservice.ErrNotFound) {
			log.Error("user not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(response.CodeNotFound, "user not found"))
			return
		}
		log.Error("failed to remove user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(response.CodeInternal, "could not remove user"))
		return
	}

	log.Info("removed user", slog.String("id", id))
	render.JSON(w, r, response.OK(map[string]any{
		"id": id,
	}, "user removed"))
}
