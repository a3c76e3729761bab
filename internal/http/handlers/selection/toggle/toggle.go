// Package toggle реализует HTTP-обработчик точечного изменения кураторского
// списка: добавить видео или убрать его.
//
// Добавление сверх лимита отклоняется, список при этом не меняется.
// Удаление разрешено всегда, в том числе последнего видео.
package toggle

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
	"github.com/bounceboom/training-portal/internal/services/access"
	"github.com/bounceboom/training-portal/internal/storage/memstore"
)

// Request — структура входных данных для изменения списка.
type Request struct {
	Add bool `json:"add"`
}

// Handler обрабатывает HTTP-запросы изменения кураторского списка.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс движка доступа.
type Service interface {
	Toggle(ctx context.Context, videoID int, add bool) ([]int, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Изменить кураторский список
// @Description Добавляет видео в список для временного доступа или убирает его. Добавление сверх лимита отклоняется.
// @Tags Selection
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path int true "Идентификатор видео"
// @Param request body Request true "Добавить или убрать"
// @Success 200 {object} map[string]any "Обновлённый список"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или идентификатор"
// @Failure 404 {object} response.ErrorResponse "Видео не найдено"
// @Failure 409 {object} response.ErrorResponse "Превышен лимит списка"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /selection/{id} [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.selection.toggle"

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

	res, err := h.service.Toggle(r.Context(), id, req.Add)
	if err != nil {
		switch {
		case errors.Is(err, access.ErrSelectionLimit):
			log.Error("selection limit exceeded", sl.Err(err))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("selection limit exceeded"))
		case errors.Is(err, memstore.ErrVideoNotFound):
			log.Error("video not found", sl.Err(err))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("video not found"))
		default:
			log.Error("failed to toggle selection", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to toggle selection"))
		}
		return
	}

	log.Info("selection toggled", slog.Any("video_id", id), slog.Any("added", req.Add))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"video_ids": res,
	}))
}
