// Package charts реализует HTTP-обработчик серий графиков дашборда:
// тренда посещаемости, долей залов, помесячной выручки и почасовой
// гистограммы входов.
package charts

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/gym-aggregator/internal/mockapi"
)

// Handler управляет HTTP-запросами на данные графиков.
type Handler struct {
	log    *slog.Logger
	facade Facade
}

// Facade описывает нужную часть мокового фасада.
type Facade interface {
	GetUsageChartData(period string) mockapi.Result
}

// New создаёт Handler с переданным логгером и фасадом.
func New(log *slog.Logger, facade Facade) *Handler {
	return &Handler{log: log, facade: facade}
}

// ServeHTTP godoc
// @Summary Данные графиков дашборда
// @Description Возвращает четыре серии графиков за именованный период. Период без данных даёт пустые массивы, не null.
// @Tags Dashboard
// @Produce json
// @Param period query string false "today | week | month | last30days"
// @Success 200 {object} mockapi.Result "Серии графиков"
// @Router /dashboard/charts [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.dashboard.charts"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	period := r.URL.Query().Get("period")
	res := h.facade.GetUsageChartData(period)
	if !res.Success {
		log.Error("facade returned error", slog.String("error", res.Error))
		w.WriteHeader(res.Code)
		render.JSON(w, r, res)
		return
	}

	log.Info("chart data retrieved", slog.String("period", period))
	render.JSON(w, r, res)
}
