// Package report генерирует финансовые отчёты и отчёты использования
// залов за явный диапазон дат.
//
// Отчёты сознательно синтезируют числа собственным генератором, а не
// переиспользуют агрегатор дашборда — так вёл себя исходный бэкенд,
// имитируя отдельный источник данных. Расхождение между отчётом и
// дашбордом является частью наблюдаемого поведения.
package report

import (
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/gym-aggregator/internal/lib/daterange"
	"github.com/magabrotheeeer/gym-aggregator/internal/lib/seq"
	"github.com/magabrotheeeer/gym-aggregator/internal/mockdata"
	"github.com/magabrotheeeer/gym-aggregator/internal/models"
)

// maxReportDays ограничивает размер отчёта разумным окном.
const maxReportDays = 366

// Service генерирует отчёты. baseSeed смешивается с началом периода,
// чтобы повторный запрос того же диапазона давал тот же отчёт в
// пределах процесса.
type Service struct {
	baseSeed int64
	log      *slog.Logger
}

// New создаёт Service с базовым сидом генератора отчётов.
func New(baseSeed int64, log *slog.Logger) *Service {
	return &Service{baseSeed: baseSeed, log: log}
}

func (s *Service) generator(r daterange.Range) *seq.Generator {
	return seq.New(s.baseSeed ^ r.Start.Unix() ^ (r.End.Unix() << 1))
}

// Financial строит финансовый отчёт по дням диапазона.
func (s *Service) Financial(startDate, endDate string) (*models.FinancialReport, error) {
	const op = "report.Financial"
	r, err := parseRange(startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	g := s.generator(r)
	plans := mockdata.DefaultPlans()

	rep := &models.FinancialReport{
		StartDate: startDate,
		EndDate:   endDate,
		Days:      make([]models.ReportDay, 0, r.Days()),
	}
	for d := daterange.Day(r.Start); !d.After(daterange.Day(r.End)); d = d.AddDate(0, 0, 1) {
		pagos := paymentsPerDay(g, d.Day())
		var ingresos float64
		for p := 0; p < pagos; p++ {
			ingresos += seq.Pick(g, plans).Price
		}
		rep.Days = append(rep.Days, models.ReportDay{
			Date:     d.Format(daterange.Layout),
			Ingresos: ingresos,
			Pagos:    pagos,
		})
		rep.TotalIngresos += ingresos
		rep.TotalPagos += pagos
	}
	if days := len(rep.Days); days > 0 {
		rep.AverageDaily = rep.TotalIngresos / float64(days)
	}

	s.log.Info("generated financial report",
		slog.String("start", startDate), slog.String("end", endDate),
		slog.Int("days", len(rep.Days)))
	return rep, nil
}

// Usage строит отчёт загрузки залов за диапазон.
func (s *Service) Usage(startDate, endDate string) (*models.UsageReport, error) {
	const op = "report.Usage"
	r, err := parseRange(startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	g := s.generator(r)
	days := r.Days()

	rep := &models.UsageReport{
		StartDate: startDate,
		EndDate:   endDate,
		Rooms:     make([]models.UsageReportRow, 0, len(mockdata.Rooms)),
	}
	for _, room := range mockdata.Rooms {
		reservas := g.IntBetween(2, 6) * days
		rep.Rooms = append(rep.Rooms, models.UsageReportRow{
			Room:      room,
			Reservas:  reservas,
			Ocupacion: g.IntBetween(25, 95),
		})
		rep.TotalReservas += reservas
	}

	s.log.Info("generated usage report",
		slog.String("start", startDate), slog.String("end", endDate))
	return rep, nil
}

// paymentsPerDay повторяет профиль кластеризации платежей около начала
// месяца из генератора данных.
func paymentsPerDay(g *seq.Generator, dayOfMonth int) int {
	switch {
	case dayOfMonth <= 2:
		return g.IntBetween(3, 8)
	case dayOfMonth <= 5:
		return g.IntBetween(1, 4)
	case dayOfMonth <= 15:
		return g.IntBetween(0, 3)
	default:
		return g.IntBetween(0, 2)
	}
}

func parseRange(startDate, endDate string) (daterange.Range, error) {
	start := daterange.Parse(startDate)
	end := daterange.Parse(endDate)
	if start.IsZero() || end.IsZero() {
		return daterange.Range{}, fmt.Errorf("invalid date range %q..%q", startDate, endDate)
	}
	if end.Before(start) {
		return daterange.Range{}, fmt.Errorf("end date %q before start date %q", endDate, startDate)
	}
	r := daterange.Range{Start: start, End: end}
	if r.Days() > maxReportDays {
		return daterange.Range{}, fmt.Errorf("range too wide: %d days", r.Days())
	}
	return r, nil
}
