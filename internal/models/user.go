// Package models содержит доменные структуры фитнес-клуба: пользователей,
// тарифные планы, платежи, бронирования и записи посещаемости, а также
// вспомогательные типы для приёма данных из JSON-запросов.
package models

import "time"

// Роли пользователей; закрытый перечень.
const (
	RoleClient  = "client"
	RoleTrainer = "trainer"
	RoleAdmin   = "admin"
)

// User представляет пользователя клуба.
type User struct {
	ID           string    `json:"id"`            // Уникальный идентификатор
	Name         string    `json:"name"`          // Отображаемое имя
	Email        string    `json:"email"`         // Электронная почта (уникальная)
	Role         string    `json:"role"`          // client, trainer или admin
	Active       bool      `json:"active"`        // Флаг активности
	PasswordHash string    `json:"-"`             // bcrypt-хэш демо-пароля, только для моковой авторизации
	CreatedAt    time.Time `json:"created_at"`    // Дата регистрации
}

// DummyUser используется для приёма данных пользователя из JSON-запроса
// до валидации.
type DummyUser struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Role   string `json:"role" validate:"required,oneof=client trainer admin"`
	Active *bool  `json:"active,omitempty"`
}
