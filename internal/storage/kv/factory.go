package kv

import (
	"context"

	"github.com/magabrotheeeer/gym-aggregator/internal/config"
)

// New выбирает бэкенд хранилища по конфигу. Пустое имя бэкенда
// трактуется как memory.
func New(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.Storage.Backend {
	case BackendMemory, "":
		return NewMemory(), nil
	case BackendRedis:
		return NewRedis(ctx, cfg.RedisConnection)
	default:
		return nil, &ErrUnknownBackend{Backend: cfg.Storage.Backend}
	}
}
