// Package seq реализует детерминированный генератор псевдослучайных
// последовательностей на основе линейного конгруэнтного метода.
//
// Генератор создаётся с явным сидом, что позволяет воспроизводить
// одну и ту же последовательность в тестах. Сид 0 означает
// инициализацию от текущего времени — поведение исходного приложения,
// сохранённое как вариант по умолчанию.
package seq

import "time"

// Параметры LCG из Numerical Recipes, период 2^32.
const (
	multiplier = 1664525
	increment  = 1013904223
	modulus    = 1 << 32
)

// Generator хранит состояние последовательности. Не потокобезопасен:
// каждый владелец создаёт свой экземпляр.
type Generator struct {
	state int64
}

// New создаёт генератор с заданным сидом. При seed == 0 сид берётся
// от текущего времени, и последовательность не воспроизводится между
// запусками.
func New(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{state: seed % modulus}
}

// Float64 продвигает состояние и возвращает число в диапазоне [0, 1).
func (g *Generator) Float64() float64 {
	g.state = (g.state*multiplier + increment) % modulus
	if g.state < 0 {
		g.state += modulus
	}
	return float64(g.state) / float64(modulus)
}

// IntBetween возвращает целое в диапазоне [min, max] включительно.
// При min > max границы меняются местами.
func (g *Generator) IntBetween(min, max int) int {
	if min > max {
		min, max = max, min
	}
	return min + int(g.Float64()*float64(max-min+1))
}

// Chance возвращает true с вероятностью p (0..1).
func (g *Generator) Chance(p float64) bool {
	return g.Float64() < p
}

// Pick возвращает случайный элемент среза. Для пустого среза
// возвращается нулевое значение типа.
func Pick[T any](g *Generator, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[g.IntBetween(0, len(items)-1)]
}
