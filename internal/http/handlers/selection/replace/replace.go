// Package replace реализует HTTP-обработчик полной замены кураторского списка.
//
// Список длиннее лимита, повторяющиеся и несуществующие идентификаторы
// отклоняются, текущий список при этом не меняется.
package replace

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/bounceboom/training-portal/internal/http/response"
	"github.com/bounceboom/training-portal/internal/lib/sl"
	"github.com/bounceboom/training-portal/internal/services/access"
	"github.com/bounceboom/training-portal/internal/storage/memstore"
)

// Request — структура входных данных для замены списка.
type Request struct {
	VideoIDs []int `json:"video_ids"`
}

// Handler обрабатывает HTTP-запросы замены кураторского списка.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс движка доступа.
type Service interface {
	Replace(ctx context.Context, ids []int) ([]int, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Заменить кураторский список
// @Description Целиком заменяет набор видео, доступных временным пользователям. Не больше пяти видео.
// @Tags Selection
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body Request true "Идентификаторы видео"
// @Success 200 {object} map[string]any "Новый список"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 404 {object} response.ErrorResponse "Видео не найдено"
// @Failure 409 {object} response.ErrorResponse "Превышен лимит списка"
// @Failure 422 {object} response.ErrorResponse "Повторяющиеся идентификаторы"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /selection [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.selection.replace"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	res, err := h.service.Replace(r.Context(), req.VideoIDs)
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
			log.Error("failed to replace selection", sl.Err(err))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("failed to replace selection"))
		}
		return
	}

	log.Info("selection replaced", "size", len(res))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"video_ids": res,
	}))
}
