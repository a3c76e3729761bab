package models

import "time"

// Comment представляет комментарий пользователя под видео.
// Комментарии только добавляются, редактирование и удаление
// конечным пользователям недоступны.
type Comment struct {
	ID        int       `json:"id"`        // Уникальный числовой идентификатор
	VideoID   int       `json:"video_id"`  // Идентификатор видео
	UserID    int       `json:"user_id"`   // Идентификатор автора
	UserName  string    `json:"user_name"` // Имя автора на момент публикации
	Text      string    `json:"text"`      // Текст комментария
	Timestamp time.Time `json:"timestamp"` // Время публикации
}

// DummyComment используется для приёма текста комментария из JSON-запроса.
// Текст дополнительно проверяется на непустоту после обрезки пробелов.
type DummyComment struct {
	Text string `json:"text" validate:"required"` // Текст комментария
}
