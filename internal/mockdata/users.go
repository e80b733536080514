package mockdata

import (
	"github.com/google/uuid"

	"github.com/magabrotheeeer/gym-aggregator/internal/lib/password"
	"github.com/magabrotheeeer/gym-aggregator/internal/models"
)

// DemoPassword — общий пароль демо-аккаунтов для мокового входа.
const DemoPassword = "gimnasio123"

type seedUser struct {
	name       string
	email      string
	role       string
	active     bool
	daysOffset int // Сколько дней назад зарегистрирован, 0-200
}

// Фиксированный список демо-пользователей. Смещения дат регистрации
// разнесены по всему окну в 200 дней, чтобы фильтры по периодам
// находили и новых, и давних пользователей.
var seedUsers = []seedUser{
	{name: "Admin Demo", email: "admin@gymapp.local", role: models.RoleAdmin, active: true, daysOffset: 200},
	{name: "Carlos Ruiz", email: "carlos.ruiz@gymapp.local", role: models.RoleTrainer, active: true, daysOffset: 180},
	{name: "Lucía Fernández", email: "lucia.fernandez@gymapp.local", role: models.RoleTrainer, active: true, daysOffset: 150},
	{name: "Ana García", email: "ana.garcia@gymapp.local", role: models.RoleClient, active: true, daysOffset: 195},
	{name: "Pedro Martínez", email: "pedro.martinez@gymapp.local", role: models.RoleClient, active: true, daysOffset: 160},
	{name: "María López", email: "maria.lopez@gymapp.local", role: models.RoleClient, active: true, daysOffset: 120},
	{name: "Javier Sánchez", email: "javier.sanchez@gymapp.local", role: models.RoleClient, active: true, daysOffset: 95},
	{name: "Carmen Díaz", email: "carmen.diaz@gymapp.local", role: models.RoleClient, active: false, daysOffset: 80},
	{name: "David Romero", email: "david.romero@gymapp.local", role: models.RoleClient, active: true, daysOffset: 60},
	{name: "Laura Navarro", email: "laura.navarro@gymapp.local", role: models.RoleClient, active: true, daysOffset: 45},
	{name: "Sergio Molina", email: "sergio.molina@gymapp.local", role: models.RoleClient, active: true, daysOffset: 30},
	{name: "Elena Ortiz", email: "elena.ortiz@gymapp.local", role: models.RoleClient, active: true, daysOffset: 14},
	{name: "Raúl Castro", email: "raul.castro@gymapp.local", role: models.RoleClient, active: true, daysOffset: 7},
	{name: "Isabel Rubio", email: "isabel.rubio@gymapp.local", role: models.RoleClient, active: true, daysOffset: 2},
	{name: "Hugo Delgado", email: "hugo.delgado@gymapp.local", role: models.RoleClient, active: true, daysOffset: 0},
}

// generateUsers наполняет коллекцию пользователей фиксированным
// списком. Хэш демо-пароля считается один раз и разделяется между
// аккаунтами: bcrypt дорог, а пароль у всех демо-аккаунтов общий.
func (s *Store) generateUsers() {
	hash, err := password.GetHash(DemoPassword)
	if err != nil {
		hash = ""
	}
	for _, su := range seedUsers {
		created := s.Now.AddDate(0, 0, -su.daysOffset)
		s.Users = append(s.Users, models.User{
			ID:           uuid.NewString(),
			Name:         su.name,
			Email:        su.email,
			Role:         su.role,
			Active:       su.active,
			PasswordHash: hash,
			CreatedAt:    created,
		})
	}
}
