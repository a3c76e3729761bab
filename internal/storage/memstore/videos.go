package memstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/bounceboom/training-portal/internal/models"
)

// CreateVideo добавляет видео, присваивает ему следующий идентификатор
// и возвращает созданную запись. Категория должна существовать.
func (s *Store) CreateVideo(ctx context.Context, video models.Video) (models.Video, error) {
	const op = "memstore.CreateVideo"
	if err := ctxErr(ctx, op); err != nil {
		return models.Video{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.categoryExistsLocked(video.Category) {
		return models.Video{}, fmt.Errorf("%s: %w", op, ErrCategoryNotFound)
	}

	video.ID = s.nextVideoID
	s.nextVideoID++
	s.videos = append(s.videos, video)
	return s.withTempAccessLocked(video), nil
}

// GetVideo возвращает видео по идентификатору.
func (s *Store) GetVideo(ctx context.Context, id int) (*models.Video, error) {
	const op = "memstore.GetVideo"
	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, v := range s.videos {
		if v.ID == id {
			res := s.withTempAccessLocked(v)
			return &res, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", op, ErrVideoNotFound)
}

// ListVideos возвращает снимок каталога в порядке добавления.
// Признак TempAccess у каждой записи вычисляется по кураторскому списку.
func (s *Store) ListVideos(ctx context.Context) ([]models.Video, error) {
	const op = "memstore.ListVideos"
	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]models.Video, 0, len(s.videos))
	for _, v := range s.videos {
		res = append(res, s.withTempAccessLocked(v))
	}
	return res, nil
}

// UpdateVideo заменяет запись видео с идентификатором id.
func (s *Store) UpdateVideo(ctx context.Context, id int, video models.Video) (*models.Video, error) {
	const op = "memstore.UpdateVideo"
	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.categoryExistsLocked(video.Category) {
		return nil, fmt.Errorf("%s: %w", op, ErrCategoryNotFound)
	}

	for i, v := range s.videos {
		if v.ID == id {
			video.ID = id
			s.videos[i] = video
			res := s.withTempAccessLocked(video)
			return &res, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", op, ErrVideoNotFound)
}

// DeleteVideo удаляет видео вместе с его комментариями и членством
// в кураторском списке, возвращает удалённую запись.
func (s *Store) DeleteVideo(ctx context.Context, id int) (*models.Video, error) {
	const op = "memstore.DeleteVideo"
	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, v := range s.videos {
		if v.ID == id {
			removed := s.withTempAccessLocked(v)
			s.videos = append(s.videos[:i], s.videos[i+1:]...)

			for j, selected := range s.tempSelection {
				if selected == id {
					s.tempSelection = append(s.tempSelection[:j], s.tempSelection[j+1:]...)
					break
				}
			}

			kept := s.comments[:0]
			for _, c := range s.comments {
				if c.VideoID != id {
					kept = append(kept, c)
				}
			}
			s.comments = kept

			return &removed, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", op, ErrVideoNotFound)
}

// IncrementViews увеличивает счётчик просмотров на единицу.
func (s *Store) IncrementViews(ctx context.Context, id int) (*models.Video, error) {
	const op = "memstore.IncrementViews"
	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.videos {
		if s.videos[i].ID == id {
			s.videos[i].Views++
			res := s.withTempAccessLocked(s.videos[i])
			return &res, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", op, ErrVideoNotFound)
}

// AdjustLikes изменяет счётчик лайков на delta, не опуская его ниже нуля.
func (s *Store) AdjustLikes(ctx context.Context, id int, delta int) (*models.Video, error) {
	const op = "memstore.AdjustLikes"
	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.videos {
		if s.videos[i].ID == id {
			s.videos[i].Likes += delta
			if s.videos[i].Likes < 0 {
				s.videos[i].Likes = 0
			}
			res := s.withTempAccessLocked(s.videos[i])
			return &res, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", op, ErrVideoNotFound)
}

// ListCategories возвращает категории с количеством видео,
// вычисленным по актуальному каталогу.
func (s *Store) ListCategories(ctx context.Context) ([]models.Category, error) {
	const op = "memstore.ListCategories"
	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int, len(s.categories))
	for _, v := range s.videos {
		counts[v.Category]++
	}

	res := make([]models.Category, 0, len(s.categories))
	for _, c := range s.categories {
		c.VideoCount = counts[c.ID]
		res = append(res, c)
	}
	return res, nil
}

// CreateComment добавляет комментарий к существующему видео.
func (s *Store) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	const op = "memstore.CreateComment"
	if err := ctxErr(ctx, op); err != nil {
		return models.Comment{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.videoExistsLocked(comment.VideoID) {
		return models.Comment{}, fmt.Errorf("%s: %w", op, ErrVideoNotFound)
	}

	comment.ID = s.nextCommentID
	s.nextCommentID++
	s.comments = append(s.comments, comment)
	return comment, nil
}

// ListCommentsByVideo возвращает комментарии видео в порядке публикации.
func (s *Store) ListCommentsByVideo(ctx context.Context, videoID int) ([]models.Comment, error) {
	const op = "memstore.ListCommentsByVideo"
	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.videoExistsLocked(videoID) {
		return nil, fmt.Errorf("%s: %w", op, ErrVideoNotFound)
	}

	var res []models.Comment
	for _, c := range s.comments {
		if c.VideoID == videoID {
			res = append(res, c)
		}
	}
	return res, nil
}

func (s *Store) categoryExistsLocked(id string) bool {
	for _, c := range s.categories {
		if strings.EqualFold(c.ID, id) {
			return true
		}
	}
	return false
}

func (s *Store) videoExistsLocked(id int) bool {
	for _, v := range s.videos {
		if v.ID == id {
			return true
		}
	}
	return false
}

func (s *Store) withTempAccessLocked(v models.Video) models.Video {
	v.TempAccess = false
	for _, id := range s.tempSelection {
		if id == v.ID {
			v.TempAccess = true
			break
		}
	}
	return v
}
