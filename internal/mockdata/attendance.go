package mockdata

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/gym-aggregator/internal/lib/seq"
	"github.com/magabrotheeeer/gym-aggregator/internal/models"
)

const (
	// bookingShowUpProbability — доля бронирований, по которым клиент
	// реально пришёл и породил пару entry/exit.
	bookingShowUpProbability = 0.85
	// walkinWindowDays — глубина окна walk-in посещений.
	walkinWindowDays = 15
)

// generateAttendance выводит посещаемость из бронирований и добавляет
// walk-in пары, не связанные ни с каким бронированием.
//
// Для бронирования вход случается за 5-15 минут до начала слота,
// выход — через 45-90 минут после входа. Walk-in пары распределены по
// часам 6-21 с сессией 30-120 минут.
func (s *Store) generateAttendance(g *seq.Generator) {
	for _, b := range s.Bookings {
		if !g.Chance(bookingShowUpProbability) {
			continue
		}
		slot := slotTime(b.Date, b.Slot)
		entry := slot.Add(-time.Duration(g.IntBetween(5, 15)) * time.Minute)
		exit := entry.Add(time.Duration(g.IntBetween(45, 90)) * time.Minute)
		s.appendPair(b.UserID, b.Room, entry, exit)
	}

	clients := s.clients()
	if len(clients) == 0 {
		return
	}
	for i := walkinWindowDays - 1; i >= 0; i-- {
		day := s.Now.AddDate(0, 0, -i)
		pairs := g.IntBetween(5, 12)
		for p := 0; p < pairs; p++ {
			client := seq.Pick(g, clients)
			entry := time.Date(day.Year(), day.Month(), day.Day(),
				g.IntBetween(6, 21), g.IntBetween(0, 59), 0, 0, day.Location())
			exit := entry.Add(time.Duration(g.IntBetween(30, 120)) * time.Minute)
			s.appendPair(client.ID, seq.Pick(g, Areas), entry, exit)
		}
	}
}

func (s *Store) appendPair(userID, area string, entry, exit time.Time) {
	s.Attendance = append(s.Attendance,
		models.AttendanceRecord{
			ID:        uuid.NewString(),
			UserID:    userID,
			Action:    models.ActionEntry,
			Area:      area,
			Timestamp: entry,
		},
		models.AttendanceRecord{
			ID:        uuid.NewString(),
			UserID:    userID,
			Action:    models.ActionExit,
			Area:      area,
			Timestamp: exit,
		})
}

// slotTime собирает момент начала слота "07:00" в рамках дня бронирования.
// Некорректный слот даёт полночь этого дня.
func slotTime(date time.Time, slot string) time.Time {
	parts := strings.SplitN(slot, ":", 2)
	hour := 0
	if len(parts) == 2 {
		if h, err := strconv.Atoi(parts[0]); err == nil {
			hour = h
		}
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, date.Location())
}
