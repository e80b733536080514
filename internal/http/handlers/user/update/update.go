// Package update реализует HTTP-обработчик изменения пользователя.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/magabrotheeeer/gym-aggregator/internal/http/response"
	"github.com/magabrotheeeer/gym-aggregator/internal/lib/sl"
	"github.com/magabrotheeeer/gym-aggregator/internal/models"
	userservice "github.com/magabrotheeeer/gym-aggregator/internal/services/user"
)

// Handler управляет HTTP-запросами на изменение пользователей.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс CRUD пользователей.
type Service interface {
	Update(ctx context.Context, id string, req models.DummyUser) error
}

// New создаёт Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Изменить пользователя
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "Идентификатор пользователя"
// @Param request body models.DummyUser true "Новые данные пользователя"
// @Success 200 {object} response.Response "Пользователь обновлён"
// @Failure 400 {object} response.Response "Некорректный JSON"
// @Failure 404 {object} response.Response "Пользователь не найден"
// @Failure 409 {object} response.Response "Email занят другим пользователем"
// @Failure 422 {object} response.Response "Ошибка валидации"
// @Router /users/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	var req models.DummyUser
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error(response.CodeBadRequest, "invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	if err := h.service.Update(r.Context(), id, req); err != nil {
		switch {
		case errors.Is(err, userservice.ErrNotFound):
			log.Error("user not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(response.CodeNotFound, "user not found"))
		case errors.Is(err, userservice.ErrDuplicate):
			log.Error("duplicate email", slog.String("email", req.Email))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error(response.CodeConflict, "user with this email already exists"))
		default:
			log.Error("failed to update user", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(response.CodeInternal, "could not update user"))
		}
		return
	}

	log.Info("updated user", slog.String("id", id))
	render.JSON(w, r, response.OK(map[string]any{
		"id": id,
	}, "user updated"))
}
