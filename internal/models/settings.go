package models

// Settings описывает настройки платформы, редактируемые администратором.
// Поле VideoAccessLimit информационное: фактический лимит видео для
// временных пользователей задаётся движком доступа.
type Settings struct {
	PlatformName              string `json:"platform_name"`               // Название платформы
	AdminEmail                string `json:"admin_email"`                 // Почта администратора
	SupportEmail              string `json:"support_email"`               // Почта поддержки
	TempAccessDuration        int    `json:"temp_access_duration"`        // Срок временного доступа по умолчанию, дней
	VideoAccessLimit          int    `json:"video_access_limit"`          // Лимит видео для временных пользователей
	AutoExpireEnabled         bool   `json:"auto_expire_enabled"`         // Автоматически деактивировать истёкшие учётки
	EmailNotificationsEnabled bool   `json:"email_notifications_enabled"` // Почтовые уведомления
	MaintenanceMode           bool   `json:"maintenance_mode"`            // Режим обслуживания
	AllowSelfRegistration     bool   `json:"allow_self_registration"`     // Разрешить самостоятельную регистрацию
	DefaultRole               string `json:"default_role"`                // Роль по умолчанию: employee или temporary
}

// DummySettings используется для приёма настроек из JSON-запроса.
type DummySettings struct {
	PlatformName              string `json:"platform_name" validate:"required,min=2"`
	AdminEmail                string `json:"admin_email" validate:"required,email"`
	SupportEmail              string `json:"support_email" validate:"required,email"`
	TempAccessDuration        int    `json:"temp_access_duration" validate:"required,gt=0"`
	VideoAccessLimit          int    `json:"video_access_limit" validate:"required,eq=5"`
	AutoExpireEnabled         bool   `json:"auto_expire_enabled"`
	EmailNotificationsEnabled bool   `json:"email_notifications_enabled"`
	MaintenanceMode           bool   `json:"maintenance_mode"`
	AllowSelfRegistration     bool   `json:"allow_self_registration"`
	DefaultRole               string `json:"default_role" validate:"required,oneof=employee temporary"`
}

// Stats агрегирует показатели платформы для панели администратора.
// Все значения вычисляются по актуальным коллекциям.
type Stats struct {
	TotalUsers       int `json:"total_users"`        // Всего пользователей
	ActiveUsers      int `json:"active_users"`       // Активных пользователей
	TemporaryUsers   int `json:"temporary_users"`    // Пользователей с временным доступом
	TotalVideos      int `json:"total_videos"`       // Всего видео
	TempAccessVideos int `json:"temp_access_videos"` // Видео, доступных временным пользователям
	TotalViews       int `json:"total_views"`        // Суммарное количество просмотров
}
