package models

import "time"

// Способы оплаты; закрытый перечень.
const (
	MethodCard     = "card"
	MethodCash     = "cash"
	MethodTransfer = "transfer"
	MethodPaypal   = "paypal"
)

// PaymentCompleted — единственный статус платежа в симуляции.
const PaymentCompleted = "completed"

// Payment представляет платёж за тарифный план.
// Amount всегда равен цене плана PlanID на момент генерации.
type Payment struct {
	ID     string    `json:"id"`      // Уникальный идентификатор
	UserID string    `json:"user_id"` // Ссылка на существующего пользователя
	PlanID string    `json:"plan_id"` // Тариф из закрытого каталога
	Amount float64   `json:"amount"`  // Сумма платежа, > 0
	Method string    `json:"method"`  // card, cash, transfer или paypal
	Date   time.Time `json:"date"`    // Момент платежа
	Status string    `json:"status"`  // Всегда "completed"
}
