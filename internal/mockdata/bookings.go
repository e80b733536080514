package mockdata

import (
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/gym-aggregator/internal/lib/seq"
	"github.com/magabrotheeeer/gym-aggregator/internal/models"
)

// bookingsWindowDays — глубина окна генерации бронирований.
const bookingsWindowDays = 30

// generateBookings наполняет бронирования за последние 30 дней.
// По выходным залы загружены слабее, чем в будни.
func (s *Store) generateBookings(g *seq.Generator) {
	clients := s.clients()
	if len(clients) == 0 {
		return
	}

	for i := bookingsWindowDays - 1; i >= 0; i-- {
		day := s.Now.AddDate(0, 0, -i)
		date := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())

		var count int
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			count = g.IntBetween(8, 15)
		} else {
			count = g.IntBetween(15, 25)
		}

		for b := 0; b < count; b++ {
			client := seq.Pick(g, clients)
			s.Bookings = append(s.Bookings, models.Booking{
				ID:      uuid.NewString(),
				UserID:  client.ID,
				Date:    date,
				Slot:    seq.Pick(g, TimeSlots),
				Room:    seq.Pick(g, Rooms),
				Trainer: seq.Pick(g, Trainers),
				Status:  models.BookingConfirmed,
			})
		}
	}
}
