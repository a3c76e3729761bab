// Package session реализует вход и выход пользователей портала.
// Вход демонстрационный: пароль не проверяется, достаточно существующей
// активной учётной записи. Успешный вход выдаёт JWT с идентификатором
// сессии и кладёт данные пользователя в кеш, выход инвалидирует запись.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bounceboom/training-portal/internal/cache"
	"github.com/bounceboom/training-portal/internal/lib/jwt"
	"github.com/bounceboom/training-portal/internal/models"
)

// CacheKeyPrefix — префикс ключей сессий в кеше.
const CacheKeyPrefix = "currentUser:"

// ErrInactiveUser возвращается при попытке входа деактивированной
// учётной записи.
var ErrInactiveUser = errors.New("user account is inactive")

// Entry — данные сессии, которые хранятся в кеше по идентификатору сессии.
type Entry struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Repository определяет методы хранилища, необходимые сервису сессий.
type Repository interface {
	// GetUserByUsername возвращает пользователя по логину.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	// TouchLastLogin обновляет отметку последнего входа.
	TouchLastLogin(ctx context.Context, id int, at time.Time) error
}

// Service реализует вход и выход пользователей.
type Service struct {
	repo     Repository
	tokens   jwt.Maker
	sessions cache.Cache
	tokenTTL time.Duration
	log      *slog.Logger
}

// New создает новый Service сессий.
func New(repo Repository, tokens jwt.Maker, sessions cache.Cache, tokenTTL time.Duration, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		tokens:   tokens,
		sessions: sessions,
		tokenTTL: tokenTTL,
		log:      log,
	}
}

// Login выполняет вход по логину. Учётная запись должна существовать и быть
// активной. Возвращает подписанный токен и данные пользователя.
func (s *Service) Login(ctx context.Context, username string) (string, *models.User, error) {
	const op = "session.Login"

	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	if user.Status != models.StatusActive {
		return "", nil, fmt.Errorf("%s: %w", op, ErrInactiveUser)
	}

	sessionID := uuid.NewString()
	token, err := s.tokens.GenerateToken(user.Username, user.Role, sessionID)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	entry := Entry{Username: user.Username, Role: user.Role}
	if err := s.sessions.Set(CacheKeyPrefix+sessionID, entry, s.tokenTTL); err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.TouchLastLogin(ctx, user.ID, time.Now()); err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("user logged in",
		slog.String("username", user.Username),
		slog.String("role", user.Role))
	return token, user, nil
}

// Logout завершает сессию с идентификатором sessionID.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	const op = "session.Logout"

	if err := s.sessions.Invalidate(CacheKeyPrefix + sessionID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("user logged out", slog.String("session_id", sessionID))
	return nil
}

// Lookup проверяет, жива ли сессия sessionID, и возвращает её данные.
func (s *Service) Lookup(ctx context.Context, sessionID string) (*Entry, bool, error) {
	const op = "session.Lookup"

	var entry Entry
	found, err := s.sessions.Get(CacheKeyPrefix+sessionID, &entry)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}
	if !found {
		return nil, false, nil
	}
	return &entry, true, nil
}
