package models

// Metric — одно значение дашборда с процентом изменения к предыдущему
// периоду той же длины.
type Metric struct {
	Value  float64 `json:"value"`  // Значение за период
	Change float64 `json:"change"` // Изменение в процентах к предыдущему периоду
}

// MetricsSnapshot — сводка показателей за период. Ключи повторяют
// исходный дашборд клуба.
type MetricsSnapshot struct {
	Ingresos        Metric `json:"ingresos"`        // Суммарная выручка
	Reservas        Metric `json:"reservas"`        // Количество бронирований
	NuevosRegistros Metric `json:"nuevosRegistros"` // Новые регистрации
	Asistencia      Metric `json:"asistencia"`      // Количество входов
}

// TrendPoint — точка тренда посещаемости за день.
type TrendPoint struct {
	Date  string `json:"date"`  // Короткая метка дня, "20/08"
	Count int    `json:"count"` // Количество входов за день
}

// CategoryUsage — доля зала в общем числе бронирований.
// Проценты округляются независимо по категориям, их сумма может
// отличаться от 100 — это документированное поведение.
type CategoryUsage struct {
	Category   string `json:"category"`   // Название зала
	Count      int    `json:"count"`      // Бронирований по залу
	Percentage int    `json:"percentage"` // round(100 * count / total)
}

// MonthRevenue — выручка за календарный месяц.
type MonthRevenue struct {
	Key   string  `json:"key"`   // Ключ год-месяц, "2026-08"
	Label string  `json:"label"` // Человекочитаемая метка, "Aug 2026"
	Total float64 `json:"total"` // Сумма платежей за месяц
}

// HourBucket — корзина почасовой гистограммы входов.
type HourBucket struct {
	Hour  string `json:"hour"`  // Час с ведущим нулём, "06"
	Count int    `json:"count"` // Входов в этот час
}

// ChartData — четыре готовых к отрисовке серии дашборда.
// Пустые данные дают пустые срезы, не nil.
type ChartData struct {
	AttendanceTrend  []TrendPoint    `json:"attendanceTrend"`
	UsageByCategory  []CategoryUsage `json:"usageByCategory"`
	MonthlyRevenue   []MonthRevenue  `json:"monthlyRevenue"`
	AttendanceByHour []HourBucket    `json:"attendanceByHour"`
}
