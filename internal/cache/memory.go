package cache

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// Memory реализует Cache в памяти процесса. Используется, когда адрес redis
// не задан в конфиге: сессии живут до перезапуска сервиса.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time // нулевое значение = без срока
}

// NewMemory создаёт пустой кеш в памяти.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]memoryEntry)}
}

// Get пытается получить значение из кеша по ключу.
func (c *Memory) Get(key string, result any) (bool, error) {
	const op = "cache.memory.Get"
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return false, nil
	}
	if err := json.Unmarshal(entry.data, result); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return true, nil
}

// Set сохраняет значение в кеш с временем жизни.
func (c *Memory) Set(key string, value any, expiration time.Duration) error {
	const op = "cache.memory.Set"
	jsonData, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	entry := memoryEntry{data: jsonData}
	if expiration > 0 {
		entry.expiresAt = time.Now().Add(expiration)
	}
	c.mu.Lock()
	c.entries[key] = entry
	c.mu.Unlock()
	return nil
}

// Invalidate удаляет значение из кеша по ключу.
func (c *Memory) Invalidate(key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return nil
}
