// Package settingsreset реализует HTTP-обработчик сброса настроек платформы
// к значениям по умолчанию.
package settingsreset

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

// Handler обрабатывает HTTP-запросы сброса настроек.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс сброса настроек платформы.
type Service interface {
	ResetSettings(ctx context.Context) (models.Settings, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Сбросить настройки платформы
// @Description Возвращает настройки к значениям по умолчанию.
// @Tags Admin
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Настройки по умолчанию"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /admin/settings/reset [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.settingsreset"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	res, err := h.service.ResetSettings(r.Context())
	if err != nil {
		log.Error("failed to reset settings", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to reset settings"))
		return
	}

	log.Info("settings reset")
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"settings": res,
	}))
}
