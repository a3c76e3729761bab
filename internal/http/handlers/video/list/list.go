// Package list реализует HTTP-обработчик административного списка видео
// с поиском и фильтром по категории.
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

// Handler обрабатывает HTTP-запросы списка видео.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики выборки видео.
type Service interface {
	List(ctx context.Context, search, category string) ([]models.Video, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список видео
// @Description Возвращает видео каталога с поиском по заголовку и описанию и фильтром по категории.
// @Tags Videos
// @Produce  json
// @Security BearerAuth
// @Param search query string false "Подстрока поиска"
// @Param category query string false "Фильтр по категории, all = без фильтра"
// @Success 200 {object} map[string]any "Список видео"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /videos [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.video.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	q := r.URL.Query()
	search := q.Get("search")
	category := q.Get("category")

	res, err := h.service.List(r.Context(), search, category)
	if err != nil {
		log.Error("failed to list videos", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list videos"))
		return
	}

	log.Info("list videos", "count", len(res))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"list_count": len(res),
		"videos":     res,
	}))
}
