package mockdata

import "github.com/magabrotheeeer/gym-aggregator/internal/models"

// Закрытые каталоги симуляции. Генераторы и CRUD-сервисы используют
// одни и те же наборы, чтобы ссылки между сущностями сходились.

// DefaultPlans возвращает каталог тарифных планов клуба.
func DefaultPlans() []models.Plan {
	return []models.Plan{
		{ID: "plan-basic", Name: "Básico", Price: 30, Duration: 1, Active: true},
		{ID: "plan-premium", Name: "Premium", Price: 50, Duration: 1, Active: true},
		{ID: "plan-familiar", Name: "Familiar", Price: 80, Duration: 1, Active: true},
		{ID: "plan-anual", Name: "Anual", Price: 330, Duration: 12, Active: true},
	}
}

// Rooms — залы клуба, категории для отчётов использования.
var Rooms = []string{
	"Sala Cardio",
	"Sala Pesas",
	"Sala Yoga",
	"Sala Spinning",
	"Piscina",
}

// TimeSlots — часовые слоты бронирований.
var TimeSlots = []string{
	"06:00", "07:00", "08:00", "09:00", "10:00", "11:00",
	"12:00", "13:00", "14:00", "15:00", "16:00", "17:00",
	"18:00", "19:00", "20:00", "21:00",
}

// Trainers — метки тренеров, назначаемых на бронирования.
var Trainers = []string{
	"Carlos Ruiz",
	"Lucía Fernández",
	"Miguel Ángel Torres",
	"Sara Jiménez",
}

// Areas — зоны контроля доступа для walk-in посещений.
// Набор не пересекается с Rooms: по зоне можно отличить walk-in от
// посещения по бронированию.
var Areas = []string{
	"Recepción",
	"Zona Cardio",
	"Zona Pesas",
	"Vestuarios",
	"Zona Piscina",
}

// PaymentMethods — способы оплаты платежей.
var PaymentMethods = []string{
	models.MethodCard,
	models.MethodCash,
	models.MethodTransfer,
	models.MethodPaypal,
}
