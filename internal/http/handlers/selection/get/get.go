// Package get реализует HTTP-обработчик чтения кураторского списка видео
// для временного доступа.
package get

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/bounceboom/training-portal/internal/http/response"
	"github.com/bounceboom/training-portal/internal/lib/sl"
)

// Handler обрабатывает HTTP-запросы чтения кураторского списка.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс движка доступа.
type Service interface {
	Selection(ctx context.Context) ([]int, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Кураторский список
// @Description Возвращает идентификаторы видео, доступных временным пользователям.
// @Tags Selection
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Идентификаторы видео"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /selection [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.selection.get"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	res, err := h.service.Selection(r.Context())
	if err != nil {
		log.Error("failed to read selection", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to read selection"))
		return
	}

	log.Info("selection read", "size", len(res))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"video_ids": res,
	}))
}
