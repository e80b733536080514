// Package kv реализует key-value хранилище CRUD-сервисов, повторяющее
// семантику исходного фасада над browser storage: значения хранятся
// JSON-документами под строковыми ключами, последняя запись побеждает,
// транзакций нет.
//
// Бэкенд memory — значение по умолчанию, данные живут в рамках
// процесса. Бэкенд redis переносит те же ключи во внешний Redis.
package kv

import (
	"context"
	"fmt"
)

// Бэкенды хранилища, выбираются конфигом storage.backend.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Store описывает контракт хранилища. Отсутствующий ключ — не ошибка:
// List оставляет out пустым, GetObject возвращает found=false.
type Store interface {
	// List декодирует сохранённый под ключом JSON-массив в out.
	List(ctx context.Context, key string, out any) error
	// Save сохраняет items под ключом, затирая прежнее значение.
	Save(ctx context.Context, key string, items any) error
	// GetObject декодирует одиночный объект, found=false если ключа нет.
	GetObject(ctx context.Context, key string, out any) (bool, error)
	// SetObject сохраняет одиночный объект под ключом.
	SetObject(ctx context.Context, key string, obj any) error
}

// ErrUnknownBackend возвращается фабрикой для нераспознанного бэкенда.
type ErrUnknownBackend struct {
	Backend string
}

func (e *ErrUnknownBackend) Error() string {
	return fmt.Sprintf("unknown storage backend %q", e.Backend)
}
