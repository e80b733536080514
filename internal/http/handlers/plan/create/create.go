// Package create реализует HTTP-обработчик добавления тарифного плана.
//
// Handler принимает JSON-запрос с данными тарифа, валидирует их,
// вызывает CRUD-сервис и возвращает идентификатор созданной записи.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/magabrotheeeer/gym-aggregator/internal/http/response"
	"github.com/magabrotheeeer/gym-aggregator/internal/lib/sl"
	"github.com/magabrotheeeer/gym-aggregator/internal/models"
	planservice "github.com/magabrotheeeer/gym-aggregator/internal/services/plan"
)

// Handler управляет HTTP-запросами на создание тарифов.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс CRUD тарифов.
type Service interface {
	Create(ctx context.Context, req models.DummyPlan) (string, error)
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
// @Summary Создать тарифный план
// @Description Добавляет тариф в каталог. Название уникально.
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body models.DummyPlan true "Данные нового тарифа"
// @Success 200 {object} response.Response "Идентификатор созданного тарифа"
// @Failure 400 {object} response.Response "Некорректный JSON"
// @Failure 409 {object} response.Response "Тариф с таким названием уже есть"
// @Failure 422 {object} response.Response "Ошибка валидации"
// @Router /plans [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.plan.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

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

	id, err := h.service.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, planservice.ErrDuplicate) {
			log.Error("duplicate plan name", slog.String("name", req.Name))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error(response.CodeConflict, "plan with this name already exists"))
			return
		}
		log.Error("failed to create plan", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(response.CodeInternal, "could not create plan"))
		return
	}

	log.Info("created plan", slog.String("id", id))
	render.JSON(w, r, response.OK(map[string]any{
		"id": id,
	}, "plan created"))
}
