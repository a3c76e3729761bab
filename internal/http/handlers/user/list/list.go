// Package list реализует HTTP-обработчик административного списка пользователей
// с поиском, фильтром по роли и сортировкой.
package list

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

// Handler обрабатывает HTTP-запросы списка пользователей.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики выборки пользователей.
type Service interface {
	List(ctx context.Context, search, role, sortField, sortOrder string) ([]models.User, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список пользователей
// @Description Возвращает пользователей с поиском по имени, почте и логину, фильтром по роли и сортировкой.
// @Tags Users
// @Produce  json
// @Security BearerAuth
// @Param search query string false "Подстрока поиска"
// @Param role query string false "Фильтр по роли, all = без фильтра"
// @Param sort query string false "Поле сортировки: name, role, created_at, last_login"
// @Param order query string false "Направление сортировки: asc или desc"
// @Success 200 {object} map[string]any "Список пользователей"
// @Failure 422 {object} response.ErrorResponse "Неизвестное поле или направление сортировки"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /users [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	q := r.URL.Query()
	search := q.Get("search")
	role := q.Get("role")
	sortField := q.Get("sort")
	sortOrder := q.Get("order")

	res, err := h.service.List(r.Context(), search, role, sortField, sortOrder)
	if err != nil {
		log.Error("failed to list users", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error("failed to list users"))
		return
	}

	log.Info("list users", "count", len(res))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"list_count": len(res),
		"users":      res,
	}))
}
