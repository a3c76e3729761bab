// Package query содержит чистые функции фильтрации и сортировки списков
// пользователей и видео для административных экранов. Функции работают
// со снимком коллекции и никогда не изменяют входные данные.
package query

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bounceboom/training-portal/internal/models"
)

// Поля сортировки списка пользователей.
const (
	SortByName      = "name"
	SortByRole      = "role"
	SortByCreatedAt = "created_at"
	SortByLastLogin = "last_login"
)

// Направления сортировки.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// FilterUsers возвращает пользователей, подходящих под поисковую строку и роль.
// Поиск регистронезависимый, по подстроке имени, почты или логина. Фильтр роли
// точный, значение "all" или пустая строка отключают его. Оба условия
// объединяются по И, порядок входной последовательности сохраняется.
func FilterUsers(users []models.User, search, role string) []models.User {
	needle := strings.ToLower(strings.TrimSpace(search))
	filterRole := role != "" && !strings.EqualFold(role, "all")

	res := make([]models.User, 0, len(users))
	for _, u := range users {
		if filterRole && u.Role != role {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(u.Name), needle) &&
			!strings.Contains(strings.ToLower(u.Email), needle) &&
			!strings.Contains(strings.ToLower(u.Username), needle) {
			continue
		}
		res = append(res, u)
	}
	return res
}

// SortUsers возвращает копию последовательности, отсортированную по полю field
// в направлении order. Датовые поля сравниваются по времени, прочие — как
// строки с учётом регистра. Сортировка устойчивая: равные элементы сохраняют
// исходный порядок. Пользователи, ни разу не входившие, при сортировке по
// last_login считаются самыми ранними.
func SortUsers(users []models.User, field, order string) ([]models.User, error) {
	const op = "query.SortUsers"

	if order != OrderAsc && order != OrderDesc {
		return nil, fmt.Errorf("%s: unknown order %q", op, order)
	}

	var less func(a, b models.User) bool
	switch field {
	case SortByName:
		less = func(a, b models.User) bool { return a.Name < b.Name }
	case SortByRole:
		less = func(a, b models.User) bool { return a.Role < b.Role }
	case SortByCreatedAt:
		less = func(a, b models.User) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case SortByLastLogin:
		less = func(a, b models.User) bool {
			return lastLoginTime(a).Before(lastLoginTime(b))
		}
	default:
		return nil, fmt.Errorf("%s: unknown field %q", op, field)
	}

	res := make([]models.User, len(users))
	copy(res, users)

	sort.SliceStable(res, func(i, j int) bool {
		if order == OrderDesc {
			return less(res[j], res[i])
		}
		return less(res[i], res[j])
	})
	return res, nil
}

// FilterVideos возвращает видео, подходящие под поисковую строку и категорию.
// Поиск регистронезависимый, по подстроке заголовка или описания. Фильтр
// категории точный, значение "all" или пустая строка отключают его.
func FilterVideos(videos []models.Video, search, category string) []models.Video {
	needle := strings.ToLower(strings.TrimSpace(search))
	filterCategory := category != "" && !strings.EqualFold(category, "all")

	res := make([]models.Video, 0, len(videos))
	for _, v := range videos {
		if filterCategory && !strings.EqualFold(v.Category, category) {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(v.Title), needle) &&
			!strings.Contains(strings.ToLower(v.Description), needle) {
			continue
		}
		res = append(res, v)
	}
	return res
}

func lastLoginTime(u models.User) time.Time {
	if u.LastLogin != nil {
		return *u.LastLogin
	}
	return time.Time{}
}
