// Package settingsget реализует HTTP-обработчик чтения настроек платформы.
package settingsget

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/bounceboom/training-portal/internal/http/response"
	"github.com/bounceboom/training-portal/internal/lib/sl"
	"github.com/bounceboom/training-portal/internal/models"
)

// Handler обрабатывает HTTP-запросы чтения настроек.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс чтения настроек платформы.
type Service interface {
	GetSettings(ctx context.Context) (models.Settings, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Настройки платформы
// @Description Возвращает текущие настройки платформы.
// @Tags Admin
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Настройки платформы"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /admin/settings [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.settingsget"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	res, err := h.service.GetSettings(r.Context())
	if err != nil {
		log.Error("failed to read settings", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to read settings"))
		return
	}

	log.Info("settings read")
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"settings": res,
	}))
}
