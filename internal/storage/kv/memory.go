package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Memory — потокобезопасное хранилище в памяти процесса, бэкенд по
// умолчанию. HTTP-сервер вносит реальную конкуренцию, которой не было
// в браузерном оригинале, поэтому карта закрыта RWMutex.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory создаёт пустое хранилище в памяти.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// List декодирует сохранённый массив в out; отсутствующий ключ
// оставляет out без изменений.
func (m *Memory) List(_ context.Context, key string, out any) error {
	const op = "kv.Memory.List"
	m.mu.RLock()
	raw, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Save сохраняет items под ключом.
func (m *Memory) Save(_ context.Context, key string, items any) error {
	const op = "kv.Memory.Save"
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	m.mu.Lock()
	m.data[key] = raw
	m.mu.Unlock()
	return nil
}

// GetObject декодирует одиночный объект, found=false если ключа нет.
func (m *Memory) GetObject(_ context.Context, key string, out any) (bool, error) {
	const op = "kv.Memory.GetObject"
	m.mu.RLock()
	raw, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return true, nil
}

// SetObject сохраняет одиночный объект под ключом.
func (m *Memory) SetObject(_ context.Context, key string, obj any) error {
	const op = "kv.Memory.SetObject"
	raw, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	m.mu.Lock()
	m.data[key] = raw
	m.mu.Unlock()
	return nil
}
