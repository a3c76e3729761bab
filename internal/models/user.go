// Package models содержит доменные структуры портала обучающих видео:
// пользователей, видео, категории, комментарии и настройки платформы,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

import "time"

// Роли пользователей портала. Закрытый набор значений, любое другое
// значение отклоняется валидацией.
const (
	RoleEmployee      = "employee"      // Полный доступ ко всем видео
	RoleTemporary     = "temporary"     // Ограниченный по времени и набору видео доступ
	RoleAdministrator = "administrator" // Полный доступ плюс администрирование
)

// Статусы учётной записи.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// User представляет учётную запись пользователя портала.
// Инвариант: ExpiresAt установлен тогда и только тогда, когда Role = temporary.
// LastLogin равен nil, пока пользователь ни разу не входил.
type User struct {
	ID        int        `json:"id"`                   // Уникальный числовой идентификатор
	Name      string     `json:"name"`                 // Отображаемое имя
	Email     string     `json:"email"`                // Электронная почта
	Username  string     `json:"username"`             // Логин, уникальный, буквы/цифры/подчёркивание
	Role      string     `json:"role"`                 // employee, temporary или administrator
	Status    string     `json:"status"`               // active или inactive
	CreatedAt time.Time  `json:"created_at"`           // Дата создания учётной записи
	LastLogin *time.Time `json:"last_login,omitempty"` // Дата последнего входа, nil = никогда
	ExpiresAt *time.Time `json:"expires_at,omitempty"` // Дата истечения доступа (только temporary)
	Notes     string     `json:"notes,omitempty"`      // Произвольная заметка администратора
}

// DummyUser используется для приёма данных о новом пользователе из JSON-запроса
// до их валидации и преобразования в User.
type DummyUser struct {
	Name           string `json:"name" validate:"required,min=2"`                                  // Имя, минимум 2 символа
	Email          string `json:"email" validate:"required,email"`                                 // Электронная почта
	Username       string `json:"username" validate:"required,min=3"`                              // Логин, дополнительно проверяется на допустимые символы
	Role           string `json:"role" validate:"required,oneof=employee temporary administrator"` // Роль
	AccessDuration int    `json:"access_duration,omitempty" validate:"omitempty,gt=0"`             // Срок доступа в днях (только temporary)
	Notes          string `json:"notes,omitempty"`                                                 // Заметка (опционально)
}

// UserPatch описывает частичное обновление пользователя. Поля со значением nil
// не изменяются, незаполненные поля существующей записи сохраняются.
type UserPatch struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=2"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Username  *string `json:"username,omitempty" validate:"omitempty,min=3"`
	Role      *string `json:"role,omitempty" validate:"omitempty,oneof=employee temporary administrator"`
	Status    *string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
	ExpiresAt *string `json:"expires_at,omitempty"` // Дата в формате 2006-01-02
	Notes     *string `json:"notes,omitempty"`
}
