package models

// Category описывает тематическую категорию каталога видео.
// VideoCount всегда вычисляется по актуальному каталогу и не хранится,
// поэтому не может разойтись с реальным количеством видео.
type Category struct {
	ID          string `json:"id"`          // Строковый идентификатор, например "technique"
	Name        string `json:"name"`        // Название
	Description string `json:"description"` // Описание
	VideoCount  int    `json:"video_count"` // Количество видео в категории (производное)
}
