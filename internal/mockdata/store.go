// Package mockdata генерирует синтетические данные фитнес-клуба:
// пользователей, платежи, бронирования и посещаемость. Все коллекции
// создаются один раз при построении Store в фиксированном порядке
// (Users → Payments → Bookings → Attendance), чтобы каждая ссылка
// разрешалась, и после этого не изменяются.
package mockdata

import (
	"time"

	"github.com/magabrotheeeer/gym-aggregator/internal/lib/seq"
	"github.com/magabrotheeeer/gym-aggregator/internal/models"
)

// Store — неизменяемый после построения набор синтетических коллекций.
// Агрегатор и фасад читают его конкурентно без блокировок.
type Store struct {
	Users      []models.User
	Plans      []models.Plan
	Payments   []models.Payment
	Bookings   []models.Booking
	Attendance []models.AttendanceRecord

	Now time.Time // Опорный момент генерации
}

// New строит Store с заданным сидом генератора относительно момента now.
// Сид 0 даёт невоспроизводимую последовательность от текущего времени,
// как в исходном приложении; тесты передают фиксированный сид.
func New(seed int64, now time.Time) *Store {
	g := seq.New(seed)
	s := &Store{
		Plans: DefaultPlans(),
		Now:   now,
	}
	s.generateUsers()
	s.generatePayments(g)
	s.generateBookings(g)
	s.generateAttendance(g)
	return s
}

// clients возвращает активный список клиентов. Пустой результат
// заставляет зависимые генераторы молча пропустить свой этап.
func (s *Store) clients() []models.User {
	var out []models.User
	for _, u := range s.Users {
		if u.Role == models.RoleClient {
			out = append(out, u)
		}
	}
	return out
}

// PlanByID возвращает тариф по идентификатору, nil если не найден.
func (s *Store) PlanByID(id string) *models.Plan {
	for i := range s.Plans {
		if s.Plans[i].ID == id {
			return &s.Plans[i]
		}
	}
	return nil
}
