// Package mockapi реализует моковый сервисный фасад: асинхронно
// выглядящую обёртку над агрегатором и генератором отчётов, имитирующую
// REST-клиент. Каждый вызов спит случайную задержку в заданных границах
// и возвращает конверт Result — успех с данными либо ошибку с кодом.
//
// Задержка не отменяется досрочно: вызывающий ждёт полный интервал, как
// ждал таймер в исходном приложении. Внутренние паники перехватываются
// и превращаются в ошибочный конверт — наружу фасад исключений не
// выпускает.
package mockapi

import (
	"log/slog"
	"sync"
	"time"

	"github.com/magabrotheeeer/gym-aggregator/internal/lib/daterange"
	"github.com/magabrotheeeer/gym-aggregator/internal/lib/seq"
	"github.com/magabrotheeeer/gym-aggregator/internal/lib/sl"
	"github.com/magabrotheeeer/gym-aggregator/internal/services/dashboard"
	"github.com/magabrotheeeer/gym-aggregator/internal/services/report"
)

// Коды ошибок конверта.
const (
	CodeBadRequest = 400
	CodeInternal   = 500
)

// Result — конверт ответа фасада: Ok(data, message) либо Err(code, error).
type Result struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    int    `json:"code,omitempty"`
}

// Ok строит успешный конверт.
func Ok(data any, message string) Result {
	return Result{Success: true, Data: data, Message: message}
}

// Err строит ошибочный конверт.
func Err(code int, message string) Result {
	return Result{Success: false, Error: message, Code: code}
}

// Facade объединяет агрегатор и отчёты за общим слоем задержек.
type Facade struct {
	dashboard *dashboard.Service
	reports   *report.Service
	log       *slog.Logger

	latencyMin time.Duration
	latencyMax time.Duration

	mu    sync.Mutex
	delay *seq.Generator
}

// New создаёт Facade. Границы задержки берутся из конфига; min > max
// приводится к порядку.
func New(dash *dashboard.Service, reports *report.Service, seed int64, latencyMin, latencyMax time.Duration, log *slog.Logger) *Facade {
	if latencyMin > latencyMax {
		latencyMin, latencyMax = latencyMax, latencyMin
	}
	return &Facade{
		dashboard:  dash,
		reports:    reports,
		log:        log,
		latencyMin: latencyMin,
		latencyMax: latencyMax,
		delay:      seq.New(seed),
	}
}

// simulateLatency спит случайный интервал в границах конфига.
func (f *Facade) simulateLatency() {
	f.mu.Lock()
	span := f.latencyMax - f.latencyMin
	d := f.latencyMin
	if span > 0 {
		d += time.Duration(f.delay.Float64() * float64(span))
	}
	f.mu.Unlock()
	time.Sleep(d)
}

// call выполняет op под защитой от паник после искусственной задержки.
func (f *Facade) call(name string, op func() Result) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			f.log.Error("facade call panicked", slog.String("call", name), slog.Any("panic", r))
			res = Err(CodeInternal, "internal error")
		}
	}()
	f.simulateLatency()
	return op()
}

// GetDashboardMetrics возвращает сводку показателей для именованного
// диапазона today/week/month/last30days. Нераспознанное имя трактуется
// как month.
func (f *Facade) GetDashboardMetrics(timeRange string) Result {
	return f.call("GetDashboardMetrics", func() Result {
		r := daterange.Resolve(timeRange, f.dashboard.Now())
		snapshot := f.dashboard.MetricsForRange(r)
		return Ok(snapshot, "metrics retrieved")
	})
}

// GetUsageChartData возвращает четыре серии графиков за именованный
// период. Период без данных даёт пустые срезы, не null.
func (f *Facade) GetUsageChartData(period string) Result {
	return f.call("GetUsageChartData", func() Result {
		r := daterange.Resolve(period, f.dashboard.Now())
		return Ok(f.dashboard.ChartData(r), "chart data retrieved")
	})
}

// GenerateFinancialReport строит финансовый отчёт за явный диапазон дат.
func (f *Facade) GenerateFinancialReport(startDate, endDate string) Result {
	return f.call("GenerateFinancialReport", func() Result {
		rep, err := f.reports.Financial(startDate, endDate)
		if err != nil {
			f.log.Error("failed to generate financial report", sl.Err(err))
			return Err(CodeBadRequest, "invalid report range")
		}
		return Ok(rep, "financial report generated")
	})
}

// GenerateUsageReport строит отчёт загрузки залов за явный диапазон дат.
func (f *Facade) GenerateUsageReport(startDate, endDate string) Result {
	return f.call("GenerateUsageReport", func() Result {
		rep, err := f.reports.Usage(startDate, endDate)
		if err != nil {
			f.log.Error("failed to generate usage report", sl.Err(err))
			return Err(CodeBadRequest, "invalid report range")
		}
		return Ok(rep, "usage report generated")
	})
}
