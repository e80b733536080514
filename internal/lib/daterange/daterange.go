// Package daterange содержит вспомогательные функции для работы с
// календарными периодами дашборда: разбор именованных диапазонов
// (today, week, month, last30days) и защитный парсинг дат.
package daterange

import "time"

// ISO-формат дат, приходящих из запросов отчётов.
const Layout = "2006-01-02"

// Range описывает включительный период по календарным дням.
type Range struct {
	Start time.Time
	End   time.Time
}

// Resolve переводит именованный диапазон в конкретные даты относительно
// now. Неизвестное имя трактуется как "month" — так вёл себя исходный
// дашборд.
func Resolve(name string, now time.Time) Range {
	end := Day(now)
	switch name {
	case "today":
		return Range{Start: end, End: end}
	case "week":
		return Range{Start: end.AddDate(0, 0, -6), End: end}
	case "last30days":
		return Range{Start: end.AddDate(0, 0, -29), End: end}
	case "month":
		return Range{Start: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), End: end}
	default:
		return Resolve("month", now)
	}
}

// Parse разбирает дату в формате Layout. Некорректная строка даёт
// нулевое time.Time: сравнение с ним в фильтрах ничего не находит,
// ошибки наружу не поднимаются.
func Parse(s string) time.Time {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Day усекает момент времени до начала календарного дня.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Contains проверяет попадание момента ts в период r включительно по
// календарным дням. Нулевые границы не совпадают ни с чем.
func (r Range) Contains(ts time.Time) bool {
	if r.Start.IsZero() || r.End.IsZero() || ts.IsZero() {
		return false
	}
	d := Day(ts)
	return !d.Before(Day(r.Start)) && !d.After(Day(r.End))
}

// Days возвращает количество календарных дней в периоде.
func (r Range) Days() int {
	if r.Start.IsZero() || r.End.IsZero() {
		return 0
	}
	return int(Day(r.End).Sub(Day(r.Start)).Hours()/24) + 1
}

// Previous возвращает предшествующий период той же длины, примыкающий
// к началу r. Используется для расчёта изменения метрик.
func (r Range) Previous() Range {
	days := r.Days()
	if days == 0 {
		return Range{}
	}
	end := Day(r.Start).AddDate(0, 0, -1)
	return Range{Start: end.AddDate(0, 0, -(days - 1)), End: end}
}
