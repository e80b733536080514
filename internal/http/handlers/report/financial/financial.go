// Package financial реализует HTTP-обработчик генерации финансового
// отчёта за явный диапазон дат.
//
// Handler принимает JSON-запрос с диапазоном, валидирует его и передаёт
// моковому фасаду; ошибки диапазона возвращаются конвертом фасада.
package financial

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/magabrotheeeer/gym-aggregator/internal/http/response"
	"github.com/magabrotheeeer/gym-aggregator/internal/lib/sl"
	"github.com/magabrotheeeer/gym-aggregator/internal/mockapi"
	"github.com/magabrotheeeer/gym-aggregator/internal/models"
)

// Handler управляет HTTP-запросами на финансовый отчёт.
type Handler struct {
	log      *slog.Logger
	facade   Facade
	validate *validator.Validate
}

// Facade описывает нужную часть мокового фасада.
type Facade interface {
	GenerateFinancialReport(startDate, endDate string) mockapi.Result
}

// New создаёт Handler с переданным логгером и фасадом.
func New(log *slog.Logger, facade Facade) *Handler {
	return &Handler{
		log:      log,
		facade:   facade,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Финансовый отчёт
// @Description Генерирует финансовый отчёт по дням диапазона.
// @Tags Reports
// @Accept json
// @Produce json
// @Param request body models.DummyReportFilter true "Диапазон дат отчёта"
// @Success 200 {object} mockapi.Result "Финансовый отчёт"
// @Failure 400 {object} response.Response "Некорректный JSON или диапазон"
// @Failure 422 {object} response.Response "Ошибка валидации"
// @Router /reports/financial [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.report.financial"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyReportFilter
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

	res := h.facade.GenerateFinancialReport(req.StartDate, req.EndDate)
	if !res.Success {
		log.Error("facade returned error", slog.String("error", res.Error))
		w.WriteHeader(res.Code)
		render.JSON(w, r, res)
		return
	}

	log.Info("financial report generated",
		slog.String("start", req.StartDate), slog.String("end", req.EndDate))
	render.JSON(w, r, res)
}
