package models

import "time"

// Video представляет обучающее видео каталога.
// Счётчик Views монотонно растёт, Likes не опускается ниже нуля.
// TempAccess — производный признак: видео входит в кураторский список
// для временных пользователей.
type Video struct {
	ID          int       `json:"id"`          // Уникальный числовой идентификатор
	Title       string    `json:"title"`       // Заголовок
	Description string    `json:"description"` // Описание
	Category    string    `json:"category"`    // Идентификатор категории
	Duration    string    `json:"duration"`    // Длительность в формате mm:ss
	SourceURL   string    `json:"source_url"`  // Ссылка на видео
	UploadDate  time.Time `json:"upload_date"` // Дата загрузки
	Views       int       `json:"views"`       // Количество просмотров
	Likes       int       `json:"likes"`       // Количество лайков
	Featured    bool      `json:"featured"`    // Признак рекомендованного видео
	TempAccess  bool      `json:"temp_access"` // Доступно временным пользователям
}

// DummyVideo используется для приёма данных о новом видео из JSON-запроса.
type DummyVideo struct {
	Title       string `json:"title" validate:"required,min=2"`    // Заголовок
	Description string `json:"description" validate:"required"`    // Описание
	Category    string `json:"category" validate:"required"`       // Идентификатор существующей категории
	Duration    string `json:"duration" validate:"required"`       // Длительность
	SourceURL   string `json:"source_url" validate:"required,url"` // Ссылка на видео
	Featured    bool   `json:"featured"`                           // Признак рекомендованного видео
}

// VideoPatch описывает частичное обновление видео.
type VideoPatch struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=2"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	Duration    *string `json:"duration,omitempty"`
	SourceURL   *string `json:"source_url,omitempty" validate:"omitempty,url"`
	Featured    *bool   `json:"featured,omitempty"`
}
