// Package update реализует HTTP-обработчик изменения тарифного плана.
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
	planservice "github.com/magabrotheeeer/gym-aggregator/internal/services/plan"
)

// Handler управляет HTTP-запросами на изменение тарифов.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс CRUD тарифов.
type Service interface {
	Update(ctx context.Context, id string, req models.DummyPlan) error
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
// @Summary Изменить тарифный план
// @Tags Plans
// @Accept json
// @Produce json
// @Param id path string true "Идентификатор тарифа"
// @Param request body models.DummyPlan true "Новые данные тарифа"
// @Success 200 {object} response.Response "Тариф обновлён"
// @Failure 400 {object} response.Response "Некорректный JSON"
// @Failure 404 {object} response.Response "Тариф не найден"
// @Failure 409 {object} response.Response "Название занято другим тарифом"
// @Failure 422 {object} response.Response "Ошибка валидации"
// @Router /plans/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.plan.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	var req models.DummyPlan
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
		case errors.Is(err, planservice.ErrNotFound):
			log.Error("plan not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(response.CodeNotFound, "plan not found"))
		case errors.Is(err, planservice.ErrDuplicate):
			log.Error("duplicate plan name", slog.String("name", req.Name))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error(response.CodeConflict, "plan with this name already exists"))
		default:
			log.Error("failed to update plan", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(response.CodeInternal, "could not update plan"))
		}
		return
	}

	log.Info("updated plan", slog.String("id", id))
	render.JSON(w, r, response.OK(map[string]any{
		"id": id,
	}, "plan updated"))
}
