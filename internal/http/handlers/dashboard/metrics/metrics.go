// Package metrics реализует HTTP-обработчик сводки показателей
// дашборда. Обработчик читает имя диапазона из query-параметра и
// отдаёт конверт мокового фасада как есть: фасад сам имитирует
// сетевую задержку и никогда не выпускает исключений наружу.
package metrics

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/gym-aggregator/internal/mockapi"
)

// Handler управляет HTTP-запросами на сводку показателей.
type Handler struct {
	log    *slog.Logger
	facade Facade
}

// Facade описывает нужную часть мокового фасада.
type Facade interface {
	GetDashboardMetrics(timeRange string) mockapi.Result
}

// New создаёт Handler с переданным логгером и фасадом.
func New(log *slog.Logger, facade Facade) *Handler {
	return &Handler{log: log, facade: facade}
}

// ServeHTTP godoc
// @Summary Сводка показателей дашборда
// @Description Возвращает выручку, бронирования, регистрации и посещаемость за именованный диапазон. Нераспознанный диапазон трактуется как month.
// @Tags Dashboard
// @Produce json
// @Param range query string false "today | week | month | last30days"
// @Success 200 {object} mockapi.Result "Сводка показателей"
// @Router /dashboard/metrics [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.dashboard.metrics"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	timeRange := r.URL.Query().Get("range")
	res := h.facade.GetDashboardMetrics(timeRange)
	if !res.Success {
		log.Error("facade returned error", slog.String("error", res.Error))
		w.WriteHeader(res.Code)
		render.JSON(w, r, res)
		return
	}

	log.Info("metrics retrieved", slog.String("range", timeRange))
	render.JSON(w, r, res)
}
