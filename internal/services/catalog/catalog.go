// Package catalog содержит бизнес-логику каталога обучающих видео:
// административный CRUD, счётчики просмотров и лайков, комментарии,
// категории с производным количеством видео и сводную статистику платформы.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bounceboom/training-portal/internal/models"
	"github.com/bounceboom/training-portal/internal/services/query"
)

// ErrEmptyComment возвращается, когда текст комментария пуст после
// обрезки пробелов.
var ErrEmptyComment = errors.New("comment text is empty")

// Repository определяет методы хранилища, необходимые сервису каталога.
type Repository interface {
	// CreateVideo добавляет видео и возвращает запись с присвоенным ID.
	CreateVideo(ctx context.Context, video models.Video) (models.Video, error)
	// GetVideo возвращает видео по идентификатору.
	GetVideo(ctx context.Context, id int) (*models.Video, error)
	// ListVideos возвращает снимок каталога.
	ListVideos(ctx context.Context) ([]models.Video, error)
	// UpdateVideo заменяет запись видео.
	UpdateVideo(ctx context.Context, id int, video models.Video) (*models.Video, error)
	// DeleteVideo удаляет видео и возвращает удалённую запись.
	DeleteVideo(ctx context.Context, id int) (*models.Video, error)
	// IncrementViews увеличивает счётчик просмотров на единицу.
	IncrementViews(ctx context.Context, id int) (*models.Video, error)
	// AdjustLikes изменяет счётчик лайков, не опуская его ниже нуля.
	AdjustLikes(ctx context.Context, id int, delta int) (*models.Video, error)
	// ListCategories возвращает категории с производным количеством видео.
	ListCategories(ctx context.Context) ([]models.Category, error)
	// CreateComment добавляет комментарий к существующему видео.
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	// ListCommentsByVideo возвращает комментарии видео в порядке публикации.
	ListCommentsByVideo(ctx context.Context, videoID int) ([]models.Comment, error)
	// ListUsers возвращает снимок коллекции пользователей (для статистики).
	ListUsers(ctx context.Context) ([]models.User, error)
	// TempSelection возвращает кураторский список видео.
	TempSelection(ctx context.Context) ([]int, error)
}

// Service реализует операции над каталогом видео.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// New создает новый Service с переданными хранилищем и логгером.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Create добавляет новое видео: дата загрузки "сейчас", счётчики на нуле.
func (s *Service) Create(ctx context.Context, req models.DummyVideo) (*models.Video, error) {
	const op = "catalog.Create"

	video := models.Video{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Duration:    req.Duration,
		SourceURL:   req.SourceURL,
		UploadDate:  time.Now(),
		Featured:    req.Featured,
	}

	created, err := s.repo.CreateVideo(ctx, video)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("created new video", slog.Int("id", created.ID))
	return &created, nil
}

// Get возвращает видео по идентификатору.
func (s *Service) Get(ctx context.Context, id int) (*models.Video, error) {
	const op = "catalog.Get"

	video, err := s.repo.GetVideo(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return video, nil
}

// List возвращает каталог, отфильтрованный по поисковой строке и категории.
func (s *Service) List(ctx context.Context, search, category string) ([]models.Video, error) {
	const op = "catalog.List"

	videos, err := s.repo.ListVideos(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return query.FilterVideos(videos, search, category), nil
}

// Update применяет частичный патч к видео, незаполненные поля сохраняются.
func (s *Service) Update(ctx context.Context, id int, patch models.VideoPatch) (*models.Video, error) {
	const op = "catalog.Update"

	current, err := s.repo.GetVideo(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	video := *current
	if patch.Title != nil {
		video.Title = *patch.Title
	}
	if patch.Description != nil {
		video.Description = *patch.Description
	}
	if patch.Category != nil {
		video.Category = *patch.Category
	}
	if patch.Duration != nil {
		video.Duration = *patch.Duration
	}
	if patch.SourceURL != nil {
		video.SourceURL = *patch.SourceURL
	}
	if patch.Featured != nil {
		video.Featured = *patch.Featured
	}

	updated, err := s.repo.UpdateVideo(ctx, id, video)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("updated video", slog.Int("id", id))
	return updated, nil
}

// Delete удаляет видео и возвращает удалённую запись.
func (s *Service) Delete(ctx context.Context, id int) (*models.Video, error) {
	const op = "catalog.Delete"

	removed, err := s.repo.DeleteVideo(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("deleted video", slog.Int("id", id))
	return removed, nil
}

// RegisterView засчитывает один просмотр видео.
func (s *Service) RegisterView(ctx context.Context, id int) (*models.Video, error) {
	const op = "catalog.RegisterView"

	video, err := s.repo.IncrementViews(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return video, nil
}

// SetLike ставит или снимает лайк. Счётчик не опускается ниже нуля.
func (s *Service) SetLike(ctx context.Context, id int, like bool) (*models.Video, error) {
	const op = "catalog.SetLike"

	delta := 1
	if !like {
		delta = -1
	}
	video, err := s.repo.AdjustLikes(ctx, id, delta)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return video, nil
}

// Categories возвращает список категорий с количеством видео,
// вычисленным по актуальному каталогу.
func (s *Service) Categories(ctx context.Context) ([]models.Category, error) {
	const op = "catalog.Categories"

	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return categories, nil
}

// AddComment публикует комментарий от имени author под видео videoID.
// Пустой после обрезки пробелов текст отклоняется.
func (s *Service) AddComment(ctx context.Context, videoID int, author models.User, text string) (*models.Comment, error) {
	const op = "catalog.AddComment"

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyComment)
	}

	comment, err := s.repo.CreateComment(ctx, models.Comment{
		VideoID:   videoID,
		UserID:    author.ID,
		UserName:  author.Name,
		Text:      trimmed,
		Timestamp: time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("added comment",
		slog.Int("video_id", videoID),
		slog.Int("user_id", author.ID))
	return &comment, nil
}

// Comments возвращает комментарии видео в порядке публикации.
func (s *Service) Comments(ctx context.Context, videoID int) ([]models.Comment, error) {
	const op = "catalog.Comments"

	comments, err := s.repo.ListCommentsByVideo(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return comments, nil
}

// Stats собирает сводные показатели платформы по актуальным коллекциям.
func (s *Service) Stats(ctx context.Context) (*models.Stats, error) {
	const op = "catalog.Stats"

	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	videos, err := s.repo.ListVideos(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	selection, err := s.repo.TempSelection(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	stats := models.Stats{
		TotalUsers:       len(users),
		TotalVideos:      len(videos),
		TempAccessVideos: len(selection),
	}
	for _, u := range users {
		if u.Status == models.StatusActive {
			stats.ActiveUsers++
		}
		if u.Role == models.RoleTemporary {
			stats.TemporaryUsers++
		}
	}
	for _, v := range videos {
		stats.TotalViews += v.Views
	}
	return &stats, nil
}
