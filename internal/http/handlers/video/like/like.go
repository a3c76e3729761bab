// Package like реализует HTTP-обработчик лайков видео.
//
// Handler принимает флаг like: true ставит лайк, false снимает. Счётчик
// не опускается ниже нуля.
package like

import (
	"context"
	"encoding/json"
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

// Request — структура входных данных для лайка.
type Request struct {
	Like bool `json:"like"`
}

// Handler обрабатывает HTTP-запросы лайков.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики лайков.
type Service interface {
	SetLike(ctx context.Context, id int, like bool) (*models.Video, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Поставить или снять лайк
// @Description Изменяет счётчик лайков видео. Счётчик не опускается ниже нуля.
// @Tags Videos
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path int true "Идентификатор видео"
// @Param request body Request true "Флаг лайка"
// @Success 200 {object} map[string]any "Видео с обновлённым счётчиком"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или идентификатор"
// @Failure 404 {object} response.ErrorResponse "Видео не найдено"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /videos/{id}/like [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.video.like"

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

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	video, err := h.service.SetLike(r.Context(), id, req.Like)
	if err != nil {
		if errors.Is(err, memstore.ErrVideoNotFound) {
			log.Error("video not found", sl.Err(err))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("video not found"))
			return
		}
		log.Error("failed to set like", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to set like"))
		return
	}

	log.Info("like updated", slog.Any("id", id), slog.Any("likes", video.Likes))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"video": video,
	}))
}
