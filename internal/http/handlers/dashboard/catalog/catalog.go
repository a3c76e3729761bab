// Package catalog реализует HTTP-обработчик витрины видео для текущего
// пользователя. Состав витрины зависит от роли: сотрудники и администраторы
// видят весь каталог, временные пользователи видят только кураторский список.
package catalog

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/bounceboom/training-portal/internal/http/middlewarectx"
	"github.com/bounceboom/training-portal/internal/http/response"
	"github.com/bounceboom/training-portal/internal/lib/sl"
	"github.com/bounceboom/training-portal/internal/models"
)

// Handler обрабатывает HTTP-запросы витрины видео.
type Handler struct {
	log     *slog.Logger
	service Service
	users   UserProvider
}

// Service описывает интерфейс движка доступа.
type Service interface {
	EffectiveCatalog(ctx context.Context, user models.User, category string) ([]models.Video, error)
}

// UserProvider описывает получение текущего пользователя по логину.
type UserProvider interface {
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// New создает новый Handler с переданными логгером, сервисом и справочником.
func New(log *slog.Logger, service Service, users UserProvider) *Handler {
	return &Handler{
		log:     log,
		service: service,
		users:   users,
	}
}

// ServeHTTP godoc
// @Summary Витрина видео
// @Description Возвращает видео, доступные текущему пользователю, с фильтром по категории. Пустая витрина — нормальная ситуация.
// @Tags Dashboard
// @Produce  json
// @Security BearerAuth
// @Param category query string false "Фильтр по категории, all = без фильтра"
// @Success 200 {object} map[string]any "Доступные видео"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /dashboard/videos [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.dashboard.catalog"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	username, ok := r.Context().Value(middlewarectx.User).(string)
	if !ok || username == "" {
		log.Error("username not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	user, err := h.users.GetUserByUsername(r.Context(), username)
	if err != nil {
		log.Error("failed to resolve user", sl.Err(err))
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	category := r.URL.Query().Get("category")

	res, err := h.service.EffectiveCatalog(r.Context(), *user, category)
	if err != nil {
		log.Error("failed to build catalog", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to build catalog"))
		return
	}

	log.Info("catalog built", "count", len(res), slog.String("role", user.Role))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"list_count": len(res),
		"videos":     res,
	}))
}
