package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/bounceboom/training-portal/internal/http/response"
	"github.com/bounceboom/training-portal/internal/lib/sl"
	"github.com/bounceboom/training-portal/internal/services/access"
)

// AccessServiceInterface определяет интерфейс для проверки статуса доступа
type AccessServiceInterface interface {
	GetAccessStatus(ctx context.Context, username string) (string, error)
}

// AccessStatusMiddleware создает middleware для проверки статуса временного
// доступа пользователя. Истёкшая временная учётная запись получает 403.
func AccessStatusMiddleware(log *slog.Logger, accessService AccessServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, ok := r.Context().Value(User).(string)
			if !ok || username == "" {
				log.Error("user identification missing")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("user identification missing"))
				return
			}

			status, err := accessService.GetAccessStatus(r.Context(), username)
			if err != nil {
				log.Error("failed to get access status", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("internal service error"))
				return
			}

			if status == access.StatusExpired {
				log.Error("temporary access expired, access denied",
					slog.String("username", username))
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("temporary access expired, access denied"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
