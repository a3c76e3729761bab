// Package memstore реализует хранилище данных портала в памяти процесса.
// Хранилище владеет коллекциями пользователей, видео, категорий, комментариев,
// кураторским списком видео для временного доступа и настройками платформы.
// Идентификаторы выдаются монотонными счётчиками и не переиспользуются
// после удаления записей.
//
// Логически у хранилища один писатель (административные операции), мьютекс
// нужен только потому, что HTTP-сервер обслуживает запросы конкурентно.
package memstore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bounceboom/training-portal/internal/models"
)

// Ошибки хранилища. Обработчики сопоставляют их с HTTP-статусами.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrVideoNotFound    = errors.New("video not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrUsernameTaken    = errors.New("username already taken")
)

// Store инкапсулирует все коллекции портала и выдачу идентификаторов.
type Store struct {
	mu sync.RWMutex

	users      []models.User
	videos     []models.Video
	categories []models.Category
	comments   []models.Comment

	// Идентификаторы видео, доступных временным пользователям.
	// Порядок не значим, принадлежность проверяется по значению.
	tempSelection []int

	settings models.Settings

	nextUserID    int
	nextVideoID   int
	nextCommentID int
}

// New создаёт пустое хранилище с настройками платформы по умолчанию.
func New() *Store {
	return &Store{
		settings:      DefaultSettings(),
		nextUserID:    1,
		nextVideoID:   1,
		nextCommentID: 1,
	}
}

func ctxErr(ctx context.Context, op string) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
		return nil
	}
}

// CreateUser добавляет пользователя, присваивает ему следующий идентификатор
// и возвращает созданную запись.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	const op = "memstore.CreateUser"
	if err := ctxErr(ctx, op); err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == user.Username {
			return models.User{}, fmt.Errorf("%s: %w", op, ErrUsernameTaken)
		}
	}

	user.ID = s.nextUserID
	s.nextUserID++
	s.users = append(s.users, user)
	return user, nil
}

// GetUser возвращает пользователя по идентификатору.
func (s *Store) GetUser(ctx context.Context, id int) (*models.User, error) {
	const op = "memstore.GetUser"
	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			res := u
			return &res, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
}

// GetUserByUsername возвращает пользователя по логину.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "memstore.GetUserByUsername"
	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			res := u
			return &res, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
}

// ListUsers возвращает снимок коллекции пользователей в порядке добавления.
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	const op = "memstore.ListUsers"
	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]models.User, len(s.users))
	copy(res, s.users)
	return res, nil
}

// UpdateUser заменяет запись пользователя с идентификатором id.
// Слияние частичного патча с существующей записью выполняет сервис.
func (s *Store) UpdateUser(ctx context.Context, id int, user models.User) (*models.User, error) {
	const op = "memstore.UpdateUser"
	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == user.Username && u.ID != id {
			return nil, fmt.Errorf("%s: %w", op, ErrUsernameTaken)
		}
	}

	for i, u := range s.users {
		if u.ID == id {
			user.ID = id
			s.users[i] = user
			res := user
			return &res, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
}

// DeleteUser удаляет пользователя и возвращает удалённую запись.
func (s *Store) DeleteUser(ctx context.Context, id int) (*models.User, error) {
	const op = "memstore.DeleteUser"
	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, u := range s.users {
		if u.ID == id {
			removed := u
			s.users = append(s.users[:i], s.users[i+1:]...)
			return &removed, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
}

// TouchLastLogin обновляет дату последнего входа пользователя.
func (s *Store) TouchLastLogin(ctx context.Context, id int, at time.Time) error {
	const op = "memstore.TouchLastLogin"
	if err := ctxErr(ctx, op); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			t := at
			s.users[i].LastLogin = &t
			return nil
		}
	}
	return fmt.Errorf("%s: %w", op, ErrUserNotFound)
}
