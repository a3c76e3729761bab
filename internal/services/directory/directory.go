// Package directory содержит бизнес-логику управления учётными записями:
// создание, частичное обновление, удаление и выборки для административного
// списка. Сервис поддерживает инвариант: срок действия установлен тогда и
// только тогда, когда роль пользователя temporary.
package directory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/bounceboom/training-portal/internal/models"
	"github.com/bounceboom/training-portal/internal/services/query"
)

// DateLayout задаёт формат дат, приходящих в запросах.
const DateLayout = "2006-01-02"

// ErrInvalidUsername возвращается, когда логин содержит символы,
// кроме букв, цифр и подчёркивания.
var ErrInvalidUsername = errors.New("username may contain only letters, numbers and underscores")

var usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Repository определяет методы хранилища, необходимые сервису.
type Repository interface {
	// CreateUser добавляет пользователя и возвращает запись с присвоенным ID.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// GetUser возвращает пользователя по идентификатору.
	GetUser(ctx context.Context, id int) (*models.User, error)
	// ListUsers возвращает снимок коллекции пользователей.
	ListUsers(ctx context.Context) ([]models.User, error)
	// UpdateUser заменяет запись пользователя.
	UpdateUser(ctx context.Context, id int, user models.User) (*models.User, error)
	// DeleteUser удаляет пользователя и возвращает удалённую запись.
	DeleteUser(ctx context.Context, id int) (*models.User, error)
}

// Service реализует операции над справочником пользователей.
type Service struct {
	repo              Repository
	log               *slog.Logger
	defaultAccessDays int
}

// New создает новый Service. defaultAccessDays — срок временного доступа
// в днях, если в запросе на создание он не указан.
func New(repo Repository, log *slog.Logger, defaultAccessDays int) *Service {
	return &Service{
		repo:              repo,
		log:               log,
		defaultAccessDays: defaultAccessDays,
	}
}

// Create добавляет нового пользователя. Учётная запись создаётся активной,
// с датой создания "сейчас" и без даты последнего входа. Временная роль
// получает срок действия: сейчас плюс access_duration дней (по умолчанию
// значение defaultAccessDays), для остальных ролей срок не устанавливается.
func (s *Service) Create(ctx context.Context, req models.DummyUser) (*models.User, error) {
	const op = "directory.Create"

	if !usernameRe.MatchString(req.Username) {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidUsername)
	}

	user := models.User{
		Name:      req.Name,
		Email:     req.Email,
		Username:  req.Username,
		Role:      req.Role,
		Status:    models.StatusActive,
		CreatedAt: time.Now(),
		Notes:     req.Notes,
	}
	if req.Role == models.RoleTemporary {
		days := req.AccessDuration
		if days <= 0 {
			days = s.defaultAccessDays
		}
		expiresAt := time.Now().AddDate(0, 0, days)
		user.ExpiresAt = &expiresAt
	}

	created, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("created new user",
		slog.Int("id", created.ID),
		slog.String("role", created.Role))
	return &created, nil
}

// Get возвращает пользователя по идентификатору.
func (s *Service) Get(ctx context.Context, id int) (*models.User, error) {
	const op = "directory.Get"

	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}

// List возвращает отфильтрованный и отсортированный список пользователей.
// Пустые search и role, а также role = "all", отключают соответствующие
// фильтры. Пустые sortField и sortOrder дают сортировку по имени по
// возрастанию.
func (s *Service) List(ctx context.Context, search, role, sortField, sortOrder string) ([]models.User, error) {
	const op = "directory.List"

	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if sortField == "" {
		sortField = query.SortByName
	}
	if sortOrder == "" {
		sortOrder = query.OrderAsc
	}

	filtered := query.FilterUsers(users, search, role)
	sorted, err := query.SortUsers(filtered, sortField, sortOrder)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return sorted, nil
}

// Update применяет частичный патч к пользователю: незаполненные поля патча
// не меняют запись. Смена роли поддерживает инвариант срока действия:
// роль temporary без явной даты получает срок по умолчанию, у остальных
// ролей срок очищается.
func (s *Service) Update(ctx context.Context, id int, patch models.UserPatch) (*models.User, error) {
	const op = "directory.Update"

	current, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user := *current
	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Username != nil {
		if !usernameRe.MatchString(*patch.Username) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidUsername)
		}
		user.Username = *patch.Username
	}
	if patch.Role != nil {
		user.Role = *patch.Role
	}
	if patch.Status != nil {
		user.Status = *patch.Status
	}
	if patch.Notes != nil {
		user.Notes = *patch.Notes
	}

	if user.Role == models.RoleTemporary {
		if patch.ExpiresAt != nil {
			expiresAt, err := time.Parse(DateLayout, *patch.ExpiresAt)
			if err != nil {
				return nil, fmt.Errorf("%s: invalid expires_at: %w", op, err)
			}
			user.ExpiresAt = &expiresAt
		} else if user.ExpiresAt == nil {
			expiresAt := time.Now().AddDate(0, 0, s.defaultAccessDays)
			user.ExpiresAt = &expiresAt
		}
	} else {
		user.ExpiresAt = nil
	}

	updated, err := s.repo.UpdateUser(ctx, id, user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("updated user", slog.Int("id", id))
	return updated, nil
}

// Delete удаляет пользователя и возвращает удалённую запись.
func (s *Service) Delete(ctx context.Context, id int) (*models.User, error) {
	const op = "directory.Delete"

	removed, err := s.repo.DeleteUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("deleted user", slog.Int("id", id))
	return removed, nil
}
