// Package middlewarectx содержит HTTP middleware для обработки и проверки JWT токенов.
//
// JWTMiddleware проверяет наличие и валидность JWT токена в заголовке Authorization,
// сверяет идентификатор сессии с кешем, и в случае успеха добавляет в контекст
// имя пользователя, роль и идентификатор сессии для дальнейшего использования
// в обработчиках.
//
// В случае ошибки проверки возвращает HTTP 401 Unauthorized с сообщением об ошибке.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/bounceboom/training-portal/internal/http/response"
	"github.com/bounceboom/training-portal/internal/lib/jwt"
	"github.com/bounceboom/training-portal/internal/lib/sl"
	"github.com/bounceboom/training-portal/internal/services/session"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// User — ключ для имени пользователя в контексте
	User Key = "username"
	// Role — ключ для роли пользователя в контексте
	Role Key = "role"
	// SessionID — ключ для идентификатора сессии в контексте
	SessionID Key = "session_id"
)

// SessionLookup описывает интерфейс проверки живости сессии.
type SessionLookup interface {
	Lookup(ctx context.Context, sessionID string) (*session.Entry, bool, error)
}

// JWTMiddleware возвращает HTTP middleware, который проверяет JWT в заголовке Authorization.
//
// Если токен валиден и сессия жива, добавляет имя пользователя, роль и
// идентификатор сессии в контекст запроса, иначе возвращает ошибку
// с HTTP статусом 401 Unauthorized.
func JWTMiddleware(tokens jwt.Maker, sessions SessionLookup, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			const op = "auth.Jwtmiddleware"

			log = log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing or invalid authorization header"))
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := tokens.ParseToken(tokenStr)
			if err != nil {
				log.Error("invalid or expired token", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}

			entry, found, err := sessions.Lookup(r.Context(), claims.ID)
			if err != nil {
				log.Error("failed to check session", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("internal service error"))
				return
			}
			if !found {
				log.Error("session is not active")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("session is not active"))
				return
			}

			ctx := context.WithValue(r.Context(), User, entry.Username)
			ctx = context.WithValue(ctx, Role, entry.Role)
			ctx = context.WithValue(ctx, SessionID, claims.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
