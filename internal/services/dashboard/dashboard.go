// Package dashboard реализует агрегатор метрик дашборда: сводку
// показателей за период и четыре готовых к отрисовке серии графиков.
// Все операции — чистые чтения над построенным mockdata.Store и
// безопасны для конкурентных вызовов.
package dashboard

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/magabrotheeeer/gym-aggregator/internal/lib/daterange"
	"github.com/magabrotheeeer/gym-aggregator/internal/mockdata"
	"github.com/magabrotheeeer/gym-aggregator/internal/models"
)

// trendWindowDays — глубина тренда посещаемости.
const trendWindowDays = 30

// Service считает метрики и серии графиков по данным Store.
type Service struct {
	store *mockdata.Store
	log   *slog.Logger
}

// New создаёт Service над готовым Store.
func New(store *mockdata.Store, log *slog.Logger) *Service {
	return &Service{store: store, log: log}
}

// Now возвращает опорный момент генерации данных. Именованные
// диапазоны фасада разрешаются относительно него, а не wall-clock,
// чтобы дашборд был согласован с данными.
func (s *Service) Now() time.Time {
	return s.store.Now
}

// MetricsForRange возвращает сводку показателей за период: выручку,
// бронирования, новые регистрации и входы. Каждая метрика несёт
// процент изменения к предыдущему периоду той же длины. Пустой
// период даёт нули, а не ошибку.
func (s *Service) MetricsForRange(r daterange.Range) models.MetricsSnapshot {
	cur := s.totals(r)
	prev := s.totals(r.Previous())
	return models.MetricsSnapshot{
		Ingresos:        metric(cur.revenue, prev.revenue),
		Reservas:        metric(float64(cur.bookings), float64(prev.bookings)),
		NuevosRegistros: metric(float64(cur.signups), float64(prev.signups)),
		Asistencia:      metric(float64(cur.entries), float64(prev.entries)),
	}
}

type totals struct {
	revenue  float64
	bookings int
	signups  int
	entries  int
}

func (s *Service) totals(r daterange.Range) totals {
	var t totals
	for _, p := range s.store.Payments {
		if r.Contains(p.Date) {
			t.revenue += p.Amount
		}
	}
	for _, b := range s.store.Bookings {
		if r.Contains(b.Date) {
			t.bookings++
		}
	}
	for _, u := range s.store.Users {
		if r.Contains(u.CreatedAt) {
			t.signups++
		}
	}
	for _, a := range s.store.Attendance {
		if a.Action == models.ActionEntry && r.Contains(a.Timestamp) {
			t.entries++
		}
	}
	return t
}

func metric(cur, prev float64) models.Metric {
	m := models.Metric{Value: cur}
	if prev != 0 {
		m.Change = (cur - prev) / prev * 100
	}
	return m
}

// ChartData собирает все четыре серии за период. Периоды без данных
// дают пустые срезы, не nil.
func (s *Service) ChartData(r daterange.Range) models.ChartData {
	return models.ChartData{
		AttendanceTrend:  s.AttendanceTrend(r),
		UsageByCategory:  s.UsageByCategory(r),
		MonthlyRevenue:   s.MonthlyRevenue(r),
		AttendanceByHour: s.AttendanceByHour(r),
	}
}

// AttendanceTrend возвращает количество входов по дням за последние
// 30 дней, от старых к новым, с короткими метками дат. Дни вне
// запрошенного периода опускаются.
func (s *Service) AttendanceTrend(r daterange.Range) []models.TrendPoint {
	points := make([]models.TrendPoint, 0, trendWindowDays)
	for i := trendWindowDays - 1; i >= 0; i-- {
		day := daterange.Day(s.store.Now.AddDate(0, 0, -i))
		if !r.Contains(day) {
			continue
		}
		count := 0
		for _, a := range s.store.Attendance {
			if a.Action == models.ActionEntry && daterange.Day(a.Timestamp).Equal(day) {
				count++
			}
		}
		points = append(points, models.TrendPoint{
			Date:  day.Format("02/01"),
			Count: count,
		})
	}
	return points
}

// UsageByCategory группирует бронирования периода по залам и считает
// долю каждого зала. Проценты округляются независимо, их сумма может
// отличаться от 100 — документированное приближение, не дефект.
func (s *Service) UsageByCategory(r daterange.Range) []models.CategoryUsage {
	counts := make(map[string]int)
	total := 0
	for _, b := range s.store.Bookings {
		if r.Contains(b.Date) {
			counts[b.Room]++
			total++
		}
	}
	out := make([]models.CategoryUsage, 0, len(counts))
	if total == 0 {
		return out
	}
	for _, room := range mockdata.Rooms {
		count, ok := counts[room]
		if !ok {
			continue
		}
		out = append(out, models.CategoryUsage{
			Category:   room,
			Count:      count,
			Percentage: int(float64(count)/float64(total)*100 + 0.5),
		})
	}
	return out
}

// MonthlyRevenue группирует платежи периода по календарным месяцам,
// сортируя ключи год-месяц по возрастанию.
func (s *Service) MonthlyRevenue(r daterange.Range) []models.MonthRevenue {
	sums := make(map[string]float64)
	for _, p := range s.store.Payments {
		if r.Contains(p.Date) {
			sums[p.Date.Format("2006-01")] += p.Amount
		}
	}
	keys := make([]string, 0, len(sums))
	for k := range sums {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]models.MonthRevenue, 0, len(keys))
	for _, k := range keys {
		label := k
		if t, err := time.Parse("2006-01", k); err == nil {
			label = t.Format("Jan 2006")
		}
		out = append(out, models.MonthRevenue{Key: k, Label: label, Total: sums[k]})
	}
	return out
}

// AttendanceByHour строит 24-корзинную гистограмму входов периода с
// метками часов с ведущим нулём. Период без входов даёт пустой срез.
func (s *Service) AttendanceByHour(r daterange.Range) []models.HourBucket {
	var counts [24]int
	total := 0
	for _, a := range s.store.Attendance {
		if a.Action == models.ActionEntry && r.Contains(a.Timestamp) {
			counts[a.Timestamp.Hour()]++
			total++
		}
	}
	out := make([]models.HourBucket, 0, 24)
	if total == 0 {
		return out
	}
	for h := 0; h < 24; h++ {
		out = append(out, models.HourBucket{
			Hour:  fmt.Sprintf("%02d", h),
			Count: counts[h],
		})
	}
	return out
}
