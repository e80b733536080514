package models

import "time"

// Действия в записях посещаемости.
const (
	ActionEntry = "entry"
	ActionExit  = "exit"
)

// AttendanceRecord представляет отметку входа или выхода.
// Каждое бронирование с вероятностью 85% порождает пару entry/exit;
// кроме того существуют walk-in пары, не связанные с бронированием.
type AttendanceRecord struct {
	ID        string    `json:"id"`        // Уникальный идентификатор
	UserID    string    `json:"user_id"`   // Ссылка на пользователя
	Action    string    `json:"action"`    // entry или exit
	Area      string    `json:"area"`      // Зона клуба
	Timestamp time.Time `json:"timestamp"` // Момент отметки
}
