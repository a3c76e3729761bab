// Package settingsupdate реализует HTTP-обработчик сохранения настроек платформы.
//
// Лимит видео для временных пользователей фиксирован, попытка изменить его
// отклоняется валидацией.
package settingsupdate

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/bounceboom/training-portal/internal/http/response"
	"github.com/bounceboom/training-portal/internal/lib/sl"
	"github.com/bounceboom/training-portal/internal/models"
)

// Handler обрабатывает HTTP-запросы сохранения настроек.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс сохранения настроек платформы.
type Service interface {
	UpdateSettings(ctx context.Context, settings models.Settings) error
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Сохранить настройки платформы
// @Description Заменяет настройки платформы. Лимит видео для временного доступа изменить нельзя.
// @Tags Admin
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.DummySettings true "Новые настройки"
// @Success 200 {object} map[string]any "Сохранённые настройки"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /admin/settings [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.settingsupdate"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummySettings
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	settings := models.Settings{
		PlatformName:              req.PlatformName,
		AdminEmail:                req.AdminEmail,
		SupportEmail:              req.SupportEmail,
		TempAccessDuration:        req.TempAccessDuration,
		VideoAccessLimit:          req.VideoAccessLimit,
		AutoExpireEnabled:         req.AutoExpireEnabled,
		EmailNotificationsEnabled: req.EmailNotificationsEnabled,
		MaintenanceMode:           req.MaintenanceMode,
		AllowSelfRegistration:     req.AllowSelfRegistration,
		DefaultRole:               req.DefaultRole,
	}

	if err := h.service.UpdateSettings(r.Context(), settings); err != nil {
		log.Error("failed to save settings", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to save settings"))
		return
	}

	log.Info("settings saved")
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"settings": settings,
	}))
}
