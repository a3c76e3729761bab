// Package commentadd реализует HTTP-обработчик публикации комментария к видео.
//
// Автор комментария определяется по имени пользователя из контекста запроса,
// подпись комментария фиксируется на момент публикации.
package commentadd

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
	"github.com/go-playground/validator"

	"github.com/bounceboom/training-portal/internal/http/middlewarectx"
	"github.com/bounceboom/training-portal/internal/http/response"
	"github.com/bounceboom/training-portal/internal/lib/sl"
	"github.com/bounceboom/training-portal/internal/models"
	"github.com/bounceboom/training-portal/internal/services/catalog"
	"github.com/bounceboom/training-portal/internal/storage/memstore"
)

// Request — структура входных данных для комментария.
type Request struct {
	Text string `json:"text" validate:"required"`
}

// Handler обрабатывает HTTP-запросы публикации комментариев.
type Handler struct {
	log      *slog.Logger
	service  Service
	users    UserProvider
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики комментариев.
type Service interface {
	AddComment(ctx context.Context, videoID int, author models.User, text string) (*models.Comment, error)
}

// UserProvider описывает получение автора комментария по логину.
type UserProvider interface {
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// New создает новый Handler с переданными логгером, сервисом и справочником.
func New(log *slog.Logger, service Service, users UserProvider) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		users:    users,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Опубликовать комментарий
// @Description Публикует комментарий текущего пользователя под видео. Пустой текст отклоняется.
// @Tags Videos
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path int true "Идентификатор видео"
// @Param request body Request true "Текст комментария"
// @Success 200 {object} map[string]any "Опубликованный комментарий"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или идентификатор"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Видео не найдено"
// @Failure 422 {object} response.ErrorResponse "Пустой текст комментария"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /videos/{id}/comments [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.video.commentadd"

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

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	username, ok := r.Context().Value(middlewarectx.User).(string)
	if !ok || username == "" {
		log.Error("username not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	author, err := h.users.GetUserByUsername(r.Context(), username)
	if err != nil {
		log.Error("failed to resolve author", sl.Err(err))
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	comment, err := h.service.AddComment(r.Context(), id, *author, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, memstore.ErrVideoNotFound):
			log.Error("video not found", sl.Err(err))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("video not found"))
		case errors.Is(err, catalog.ErrEmptyComment):
			log.Error("empty comment text", sl.Err(err))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("comment text is empty"))
		default:
			log.Error("failed to add comment", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not add comment"))
		}
		return
	}

	log.Info("comment added", slog.Any("video_id", id), slog.Any("comment_id", comment.ID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"comment": comment,
	}))
}
