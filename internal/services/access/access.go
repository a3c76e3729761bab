// Package access реализует движок прав доступа портала: вычисление
// эффективного каталога для пользователя по его роли, проверку истечения
// временного доступа, ведение кураторского списка видео с жёстким лимитом
// и продление срока временных учётных записей.
package access

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bounceboom/training-portal/internal/models"
)

// MaxTempVideos задаёт лимит кураторского списка: временной учётной записи
// положено не больше пяти видео независимо от размера каталога.
const MaxTempVideos = 5

// Ошибки движка доступа.
var (
	// ErrSelectionLimit возвращается при попытке расширить кураторский список
	// сверх лимита. Текущий список при этом не меняется.
	ErrSelectionLimit = errors.New("temporary access selection is full")
	// ErrNotTemporary возвращается при попытке продлить доступ пользователю,
	// у которого нет срока действия.
	ErrNotTemporary = errors.New("user role has no access expiration")
)

// Repository определяет методы хранилища, необходимые движку доступа.
type Repository interface {
	// ListVideos возвращает снимок каталога видео.
	ListVideos(ctx context.Context) ([]models.Video, error)
	// TempSelection возвращает кураторский список видео для временного доступа.
	TempSelection(ctx context.Context) ([]int, error)
	// ReplaceTempSelection целиком заменяет кураторский список.
	ReplaceTempSelection(ctx context.Context, ids []int) error
	// GetUser возвращает пользователя по идентификатору.
	GetUser(ctx context.Context, id int) (*models.User, error)
	// GetUserByUsername возвращает пользователя по логину.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	// UpdateUser заменяет запись пользователя.
	UpdateUser(ctx context.Context, id int, user models.User) (*models.User, error)
}

// Service реализует операции движка доступа поверх хранилища.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// New создает новый Service с переданными хранилищем и логгером.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// IsExpired сообщает, истёк ли временный доступ пользователя на момент now.
// Для ролей без срока действия всегда false. Чистая функция без побочных эффектов.
func IsExpired(user models.User, now time.Time) bool {
	if user.Role != models.RoleTemporary || user.ExpiresAt == nil {
		return false
	}
	return user.ExpiresAt.Before(now)
}

// Статусы доступа, возвращаемые GetAccessStatus.
const (
	StatusActive  = "active"
	StatusExpired = "expired"
)

// GetAccessStatus возвращает статус доступа пользователя по логину:
// "expired" для временной учётной записи с истёкшим сроком, иначе "active".
func (s *Service) GetAccessStatus(ctx context.Context, username string) (string, error) {
	const op = "access.GetAccessStatus"

	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if IsExpired(*user, time.Now()) {
		return StatusExpired, nil
	}
	return StatusActive, nil
}

// EffectiveCatalog возвращает каталог, видимый пользователю user, с учётом
// фильтра по категории (пустая строка или "all" — без фильтра).
//
// Сотрудники и администраторы видят весь каталог. Временные пользователи видят
// только видео из кураторского списка, не более MaxTempVideos записей, в порядке
// каталога. Пустой результат — нормальная ситуация, а не ошибка.
func (s *Service) EffectiveCatalog(ctx context.Context, user models.User, category string) ([]models.Video, error) {
	const op = "access.EffectiveCatalog"

	videos, err := s.repo.ListVideos(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if user.Role != models.RoleTemporary {
		return filterByCategory(videos, category), nil
	}

	selection, err := s.repo.TempSelection(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	selected := make(map[int]struct{}, len(selection))
	for _, id := range selection {
		selected[id] = struct{}{}
	}

	result := make([]models.Video, 0, MaxTempVideos)
	for _, v := range filterByCategory(videos, category) {
		if _, ok := selected[v.ID]; !ok {
			continue
		}
		result = append(result, v)
		if len(result) == MaxTempVideos {
			break
		}
	}
	return result, nil
}

// Selection возвращает текущий кураторский список.
func (s *Service) Selection(ctx context.Context) ([]int, error) {
	const op = "access.Selection"

	selection, err := s.repo.TempSelection(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return selection, nil
}

// Toggle добавляет видео в кураторский список или убирает его оттуда.
// Добавление сверх лимита отклоняется с ErrSelectionLimit, список остаётся
// прежним. Удаление разрешено всегда, в том числе последнего видео.
func (s *Service) Toggle(ctx context.Context, videoID int, add bool) ([]int, error) {
	const op = "access.Toggle"

	selection, err := s.repo.TempSelection(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := apply(selection, videoID, add)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.ReplaceTempSelection(ctx, updated); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("temporary access selection changed",
		slog.Int("video_id", videoID),
		slog.Bool("added", add),
		slog.Int("size", len(updated)))
	return updated, nil
}

// Replace целиком заменяет кураторский список. Список длиннее лимита и
// повторяющиеся идентификаторы отклоняются, текущий список не меняется.
func (s *Service) Replace(ctx context.Context, ids []int) ([]int, error) {
	const op = "access.Replace"

	seen := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return nil, fmt.Errorf("%s: duplicate video id %d", op, id)
		}
		seen[id] = struct{}{}
	}
	if len(ids) > MaxTempVideos {
		return nil, fmt.Errorf("%s: %w", op, ErrSelectionLimit)
	}

	if err := s.repo.ReplaceTempSelection(ctx, ids); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("temporary access selection replaced", slog.Int("size", len(ids)))
	return ids, nil
}

// Extend продлевает временный доступ пользователя: новый срок считается
// от текущего момента плюс days дней. Для остальных ролей возвращает
// ErrNotTemporary.
func (s *Service) Extend(ctx context.Context, userID, days int) (*models.User, error) {
	const op = "access.Extend"

	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if user.Role != models.RoleTemporary {
		return nil, fmt.Errorf("%s: %w", op, ErrNotTemporary)
	}

	expiresAt := time.Now().AddDate(0, 0, days)
	user.ExpiresAt = &expiresAt

	updated, err := s.repo.UpdateUser(ctx, userID, *user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("temporary access extended",
		slog.Int("user_id", userID),
		slog.Int("days", days))
	return updated, nil
}

// apply применяет одно изменение к списку. Чистая функция, исходный
// срез не модифицируется.
func apply(selection []int, videoID int, add bool) ([]int, error) {
	if add {
		for _, id := range selection {
			if id == videoID {
				res := make([]int, len(selection))
				copy(res, selection)
				return res, nil
			}
		}
		if len(selection) >= MaxTempVideos {
			return nil, ErrSelectionLimit
		}
		res := make([]int, 0, len(selection)+1)
		res = append(res, selection...)
		return append(res, videoID), nil
	}

	res := make([]int, 0, len(selection))
	for _, id := range selection {
		if id != videoID {
			res = append(res, id)
		}
	}
	return res, nil
}

func filterByCategory(videos []models.Video, category string) []models.Video {
	if category == "" || strings.EqualFold(category, "all") {
		return videos
	}
	res := make([]models.Video, 0, len(videos))
	for _, v := range videos {
		if strings.EqualFold(v.Category, category) {
			res = append(res, v)
		}
	}
	return res
}
