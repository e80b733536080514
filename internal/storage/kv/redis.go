package kv

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/magabrotheeeer/gym-aggregator/internal/config"
)

// Redis хранит те же JSON-документы во внешнем Redis. Значения живут
// без TTL: хранилище переживает перезапуск процесса, но гарантий
// долговечности по-прежнему не даёт.
type Redis struct {
	Db *redis.Client
}

// NewRedis подключается к Redis и проверяет соединение.
func NewRedis(ctx context.Context, cfg config.RedisConnection) (*Redis, error) {
	const op = "kv.NewRedis"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.AddressRedis,
		Password:     cfg.Password,
		Username:     cfg.User,
		DB:           cfg.DB,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.TimeoutRedis,
		WriteTimeout: cfg.TimeoutRedis,
	})
	if err := db.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Redis{Db: db}, nil
}

// List декодирует сохранённый массив в out; отсутствующий ключ
// оставляет out без изменений.
func (r *Redis) List(ctx context.Context, key string, out any) error {
	const op = "kv.Redis.List"
	val, err := r.Db.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := json.Unmarshal([]byte(val), out); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Save сохраняет items под ключом.
func (r *Redis) Save(ctx context.Context, key string, items any) error {
	const op = "kv.Redis.Save"
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return r.Db.Set(ctx, key, raw, 0).Err()
}

// GetObject декодирует одиночный объект, found=false если ключа нет.
func (r *Redis) GetObject(ctx context.Context, key string, out any) (bool, error) {
	const op = "kv.Redis.GetObject"
	val, err := r.Db.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	if err := json.Unmarshal([]byte(val), out); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return true, nil
}

// SetObject сохраняет одиночный объект под ключом.
func (r *Redis) SetObject(ctx context.Context, key string, obj any) error {
	const op = "kv.Redis.SetObject"
	raw, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return r.Db.Set(ctx, key, raw, 0).Err()
}
