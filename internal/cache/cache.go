// Package cache предоставляет key-value хранилище для данных сессий.
// Основная реализация работает поверх redis, для локального запуска без
// внешних зависимостей есть реализация в памяти процесса.
package cache

import "time"

// Cache описывает методы key-value хранилища сессий.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}
