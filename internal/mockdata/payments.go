package mockdata

import (
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/gym-aggregator/internal/lib/seq"
	"github.com/magabrotheeeer/gym-aggregator/internal/models"
)

// paymentsWindowDays — глубина окна генерации платежей.
const paymentsWindowDays = 180

// generatePayments наполняет платежи за последние 180 дней.
// Количество платежей в день смещено к началу месяца: продления
// подписок кластеризуются около первого числа.
func (s *Store) generatePayments(g *seq.Generator) {
	clients := s.clients()
	if len(clients) == 0 || len(s.Plans) == 0 {
		return
	}

	for i := paymentsWindowDays - 1; i >= 0; i-- {
		day := s.Now.AddDate(0, 0, -i)
		count := paymentsPerDay(g, day.Day())
		for p := 0; p < count; p++ {
			client := seq.Pick(g, clients)
			plan := seq.Pick(g, s.Plans)
			ts := time.Date(day.Year(), day.Month(), day.Day(),
				g.IntBetween(8, 21), g.IntBetween(0, 59), 0, 0, day.Location())
			s.Payments = append(s.Payments, models.Payment{
				ID:     uuid.NewString(),
				UserID: client.ID,
				PlanID: plan.ID,
				Amount: plan.Price,
				Method: seq.Pick(g, PaymentMethods),
				Date:   ts,
				Status: models.PaymentCompleted,
			})
		}
	}
}

// paymentsPerDay возвращает количество платежей для дня месяца.
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
