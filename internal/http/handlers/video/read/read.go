// Package read реализует HTTP-обработчик карточки видео: сама запись
// плюс комментарии в порядке публикации.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/bounceboom/training-portal/internal/http/response"
	"github.com/bounceboom/training-portal/internal/lib/sl"
	"github.com/bounceboom/training-portal/internal/models"
	"github.com/bounceboom/training-portal/internal/storage/memstore"
)

// Handler обрабатывает HTTP-запросы карточки видео.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения видео и его комментариев.
type Service interface {
	Get(ctx context.Context, id int) (*models.Video, error)
	Comments(ctx context.Context, videoID int) ([]models.Comment, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Карточка видео
// @Description Возвращает видео и его комментарии в порядке публикации.
// @Tags Videos
// @Produce  json
// @Security BearerAuth
// @Param id path int true "Идентификатор видео"
// @Success 200 {object} map[string]any "Видео с комментариями"
// @Failure 400 {object} response.ErrorResponse "Некорректный идентификатор"
// @Failure 404 {object} response.ErrorResponse "Видео не найдено"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /videos/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.video.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		log.Error("invalid id format", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid id"))
		return
	}

	video, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, memstore.ErrVideoNotFound) {
			log.Error("video not found", sl.Err(err))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("video not found"))
			return
		}
		log.Error("failed to read video", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to read video"))
		return
	}

	comments, err := h.service.Comments(r.Context(), id)
	if err != nil {
		log.Error("failed to list comments", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list comments"))
		return
	}

	log.Info("read video", slog.Any("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"video":    video,
		"comments": comments,
	}))
}
