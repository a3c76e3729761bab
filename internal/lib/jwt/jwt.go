// Package jwt реализует генерацию и парсинг токенов сессии с пользовательскими claim полями.
//
// Maker определяет интерфейс для создания и проверки токенов с username, role
// и идентификатором сессии. MakerImpl — конкретная реализация с использованием
// секретного ключа и срока жизни токена.
package jwt

import (
	"time"
)

// Maker описывает интерфейс для генерации и парсинга токенов сессии.
//
// Методы позволяют создавать токен с указанием username, роли и идентификатора
// сессии, а также разбирать токен и извлекать из него кастомные данные.
type Maker interface {
	// GenerateToken создает токен для username с ролью role и идентификатором сессии sessionID
	GenerateToken(username, role, sessionID string) (string, error)
	// ParseToken возвращает *CustomClaims с username, role и идентификатором сессии
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токена (TTL).
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration // Время жизни токена.
}

// NewMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
