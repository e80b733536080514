package models

// DummyReportFilter используется для приёма диапазона дат отчёта
// из JSON-запроса до валидации. Даты приходят строками в формате
// 2006-01-02.
type DummyReportFilter struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

// ReportDay — синтетическая строка отчёта за один день.
type ReportDay struct {
	Date     string  `json:"date"`     // День в формате 2006-01-02
	Ingresos float64 `json:"ingresos"` // Выручка за день
	Pagos    int     `json:"pagos"`    // Количество платежей
}

// FinancialReport — финансовый отчёт за явный диапазон дат.
// Числа синтезируются собственным генератором отчётов и не обязаны
// совпадать с данными агрегатора.
type FinancialReport struct {
	StartDate     string      `json:"start_date"`
	EndDate       string      `json:"end_date"`
	TotalIngresos float64     `json:"total_ingresos"` // Сумма по дням
	TotalPagos    int         `json:"total_pagos"`    // Платежей всего
	AverageDaily  float64     `json:"average_daily"`  // Средняя выручка в день
	Days          []ReportDay `json:"days"`
}

// UsageReportRow — загрузка одного зала в отчёте использования.
type UsageReportRow struct {
	Room      string `json:"room"`      // Зал
	Reservas  int    `json:"reservas"`  // Бронирований за период
	Ocupacion int    `json:"ocupacion"` // Процент загрузки, 0-100
}

// UsageReport — отчёт использования залов за явный диапазон дат.
type UsageReport struct {
	StartDate     string           `json:"start_date"`
	EndDate       string           `json:"end_date"`
	TotalReservas int              `json:"total_reservas"`
	Rooms         []UsageReportRow `json:"rooms"`
}
