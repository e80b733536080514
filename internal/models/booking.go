package models

import "time"

// BookingConfirmed — единственный статус бронирования в симуляции.
const BookingConfirmed = "confirmed"

// Booking представляет бронирование зала на часовой слот.
// UserID всегда ссылается на пользователя с ролью client.
type Booking struct {
	ID      string    `json:"id"`      // Уникальный идентификатор
	UserID  string    `json:"user_id"` // Клиент, сделавший бронирование
	Date    time.Time `json:"date"`    // Календарный день без часового пояса
	Slot    string    `json:"slot"`    // Часовой слот из фиксированного каталога, "07:00"
	Room    string    `json:"room"`    // Зал из фиксированного каталога
	Trainer string    `json:"trainer"` // Метка назначенного тренера
	Status  string    `json:"status"`  // Всегда "confirmed"
}
