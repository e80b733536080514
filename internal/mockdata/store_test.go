package mockdata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/gym-aggregator/internal/lib/seq"
	"github.com/magabrotheeeer/gym-aggregator/internal/models"
)

var testNow = time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

func testStore(t *testing.T) *Store {
	t.Helper()
	return New(12345, testNow)
}

func TestGenerationOrderResolvesReferences(t *testing.T) {
	s := testStore(t)

	require.NotEmpty(t, s.Users)
	require.NotEmpty(t, s.Payments)
	require.NotEmpty(t, s.Bookings)
	require.NotEmpty(t, s.Attendance)

	usersByID := make(map[string]models.User, len(s.Users))
	for _, u := range s.Users {
		usersByID[u.ID] = u
	}

	for _, p := range s.Payments {
		_, ok := usersByID[p.UserID]
		require.True(t, ok, "payment references unknown user %s", p.UserID)
	}
	for _, a := range s.Attendance {
		_, ok := usersByID[a.UserID]
		require.True(t, ok, "attendance references unknown user %s", a.UserID)
	}
}

func TestUserIdentifiersUnique(t *testing.T) {
	s := testStore(t)
	seen := make(map[string]bool)
	for _, u := range s.Users {
		require.False(t, seen[u.ID])
		seen[u.ID] = true
		assert.Contains(t, []string{models.RoleClient, models.RoleTrainer, models.RoleAdmin}, u.Role)
	}
}

func TestPaymentAmountMatchesPlanPrice(t *testing.T) {
	s := testStore(t)
	for _, p := range s.Payments {
		plan := s.PlanByID(p.PlanID)
		require.NotNil(t, plan, "payment references unknown plan %s", p.PlanID)
		assert.Equal(t, plan.Price, p.Amount)
		assert.Positive(t, p.Amount)
		assert.Equal(t, models.PaymentCompleted, p.Status)
		assert.Contains(t, PaymentMethods, p.Method)
	}
}

func TestBookingsReferenceClients(t *testing.T) {
	s := testStore(t)
	roleByID := make(map[string]string)
	for _, u := range s.Users {
		roleByID[u.ID] = u.Role
	}
	for _, b := range s.Bookings {
		assert.Equal(t, models.RoleClient, roleByID[b.UserID])
		assert.Contains(t, Rooms, b.Room)
		assert.Contains(t, TimeSlots, b.Slot)
		assert.Equal(t, models.BookingConfirmed, b.Status)
	}
}

func TestBookingCountsPerDay(t *testing.T) {
	s := testStore(t)
	perDay := make(map[string]int)
	for _, b := range s.Bookings {
		perDay[b.Date.Format("2006-01-02")] += 1
	}
	require.Len(t, perDay, bookingsWindowDays)
	for day, count := range perDay {
		d, err := time.Parse("2006-01-02", day)
		require.NoError(t, err)
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			assert.GreaterOrEqual(t, count, 8, "weekend %s", day)
			assert.LessOrEqual(t, count, 15, "weekend %s", day)
		} else {
			assert.GreaterOrEqual(t, count, 15, "weekday %s", day)
			assert.LessOrEqual(t, count, 25, "weekday %s", day)
		}
	}
}

// Записи посещаемости добавляются строго парами entry/exit.
func TestAttendancePairs(t *testing.T) {
	s := testStore(t)
	require.True(t, len(s.Attendance)%2 == 0)

	rooms := make(map[string]bool)
	for _, r := range Rooms {
		rooms[r] = true
	}

	for i := 0; i < len(s.Attendance); i += 2 {
		entry, exit := s.Attendance[i], s.Attendance[i+1]
		require.Equal(t, models.ActionEntry, entry.Action)
		require.Equal(t, models.ActionExit, exit.Action)
		require.Equal(t, entry.UserID, exit.UserID)
		require.True(t, entry.Timestamp.Before(exit.Timestamp))

		session := exit.Timestamp.Sub(entry.Timestamp)
		if rooms[entry.Area] {
			// Пара по бронированию: вход за 5-15 минут до начала
			// часового слота, сессия 45-90 минут.
			slot := entry.Timestamp.Truncate(time.Hour).Add(time.Hour)
			lead := slot.Sub(entry.Timestamp)
			assert.GreaterOrEqual(t, lead, 5*time.Minute)
			assert.LessOrEqual(t, lead, 15*time.Minute)
			assert.GreaterOrEqual(t, session, 45*time.Minute)
			assert.LessOrEqual(t, session, 90*time.Minute)
		} else {
			// Walk-in: вход в часы 6-21, сессия 30-120 минут.
			assert.Contains(t, Areas, entry.Area)
			assert.GreaterOrEqual(t, entry.Timestamp.Hour(), 6)
			assert.LessOrEqual(t, entry.Timestamp.Hour(), 21)
			assert.GreaterOrEqual(t, session, 30*time.Minute)
			assert.LessOrEqual(t, session, 120*time.Minute)
		}
	}
}

func TestWalkinsPresentEveryDay(t *testing.T) {
	s := testStore(t)
	rooms := make(map[string]bool)
	for _, r := range Rooms {
		rooms[r] = true
	}
	walkinsPerDay := make(map[string]int)
	for i := 0; i < len(s.Attendance); i += 2 {
		entry := s.Attendance[i]
		if !rooms[entry.Area] {
			walkinsPerDay[entry.Timestamp.Format("2006-01-02")]++
		}
	}
	require.Len(t, walkinsPerDay, walkinWindowDays)
	for day, count := range walkinsPerDay {
		assert.GreaterOrEqual(t, count, 5, day)
		assert.LessOrEqual(t, count, 12, day)
	}
}

// Один и тот же сид даёт одинаковые данные с точностью до
// идентификаторов (uuid не зависит от сида).
func TestSeedReproducibility(t *testing.T) {
	a := New(777, testNow)
	b := New(777, testNow)

	require.Equal(t, len(a.Payments), len(b.Payments))
	for i := range a.Payments {
		assert.Equal(t, a.Payments[i].Amount, b.Payments[i].Amount)
		assert.Equal(t, a.Payments[i].Method, b.Payments[i].Method)
		assert.Equal(t, a.Payments[i].Date, b.Payments[i].Date)
	}
	require.Equal(t, len(a.Bookings), len(b.Bookings))
	for i := range a.Bookings {
		assert.Equal(t, a.Bookings[i].Room, b.Bookings[i].Room)
		assert.Equal(t, a.Bookings[i].Slot, b.Bookings[i].Slot)
		assert.Equal(t, a.Bookings[i].Date, b.Bookings[i].Date)
	}
	require.Equal(t, len(a.Attendance), len(b.Attendance))
}

// Генераторы без клиентов молча пропускают свой этап.
func TestGeneratorsNoOpWithoutClients(t *testing.T) {
	s := &Store{Plans: DefaultPlans(), Now: testNow}
	g := seq.New(1)

	s.generatePayments(g)
	s.generateBookings(g)
	s.generateAttendance(g)

	assert.Empty(t, s.Payments)
	assert.Empty(t, s.Bookings)
	assert.Empty(t, s.Attendance)
}
