package models

// Plan представляет тарифный план клуба из небольшого закрытого каталога.
type Plan struct {
	ID       string  `json:"id"`       // Уникальный идентификатор
	Name     string  `json:"name"`     // Название тарифа
	Price    float64 `json:"price"`    // Цена за месяц
	Duration int     `json:"duration"` // Длительность в месяцах
	Active   bool    `json:"active"`   // Доступен ли тариф для покупки
}

// DummyPlan используется для приёма данных тарифа из JSON-запроса.
type DummyPlan struct {
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"required,gt=0"`
	Duration int     `json:"duration" validate:"required,gt=0"`
	Active   *bool   `json:"active,omitempty"`
}
