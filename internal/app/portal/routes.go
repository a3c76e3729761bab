// Package portal предоставляет маршруты для основного приложения.
package portal

import (
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/bounceboom/training-portal/internal/http/handlers/admin/settingsget"
	"github.com/bounceboom/training-portal/internal/http/handlers/admin/settingsreset"
	"github.com/bounceboom/training-portal/internal/http/handlers/admin/settingsupdate"
	"github.com/bounceboom/training-portal/internal/http/handlers/admin/stats"
	"github.com/bounceboom/training-portal/internal/http/handlers/auth/login"
	"github.com/bounceboom/training-portal/internal/http/handlers/auth/logout"
	categorylist "github.com/bounceboom/training-portal/internal/http/handlers/category/list"
	dashboardcatalog "github.com/bounceboom/training-portal/internal/http/handlers/dashboard/catalog"
	"github.com/bounceboom/training-portal/internal/http/handlers/health"
	selectionget "github.com/bounceboom/training-portal/internal/http/handlers/selection/get"
	selectionreplace "github.com/bounceboom/training-portal/internal/http/handlers/selection/replace"
	selectiontoggle "github.com/bounceboom/training-portal/internal/http/handlers/selection/toggle"
	usercreate "github.com/bounceboom/training-portal/internal/http/handlers/user/create"
	userextend "github.com/bounceboom/training-portal/internal/http/handlers/user/extend"
	userlist "github.com/bounceboom/training-portal/internal/http/handlers/user/list"
	userremove "github.com/bounceboom/training-portal/internal/http/handlers/user/remove"
	userupdate "github.com/bounceboom/training-portal/internal/http/handlers/user/update"
	videocommentadd "github.com/bounceboom/training-portal/internal/http/handlers/video/commentadd"
	videocreate "github.com/bounceboom/training-portal/internal/http/handlers/video/create"
	videolike "github.com/bounceboom/training-portal/internal/http/handlers/video/like"
	videolist "github.com/bounceboom/training-portal/internal/http/handlers/video/list"
	videoread "github.com/bounceboom/training-portal/internal/http/handlers/video/read"
	videoremove "github.com/bounceboom/training-portal/internal/http/handlers/video/remove"
	videoupdate "github.com/bounceboom/training-portal/internal/http/handlers/video/update"
	videoview "github.com/bounceboom/training-portal/internal/http/handlers/video/view"
	"github.com/bounceboom/training-portal/internal/http/middlewarectx"
	"github.com/bounceboom/training-portal/internal/lib/jwt"
	accessservice "github.com/bounceboom/training-portal/internal/services/access"
	catalogservice "github.com/bounceboom/training-portal/internal/services/catalog"
	directoryservice "github.com/bounceboom/training-portal/internal/services/directory"
	sessionservice "github.com/bounceboom/training-portal/internal/services/session"
	"github.com/bounceboom/training-portal/internal/storage/memstore"

	"log/slog"
)

// Services собирает зависимости маршрутов приложения.
type Services struct {
	Session   *sessionservice.Service
	Directory *directoryservice.Service
	Catalog   *catalogservice.Service
	Access    *accessservice.Service
	Store     *memstore.Store
	Tokens    jwt.Maker
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, svc Services) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/login", login.New(logger, svc.Session).ServeHTTP)
		r.Get("/health", health.New(logger).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(svc.Tokens, svc.Session, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))

			r.Post("/logout", logout.New(logger, svc.Session).ServeHTTP)

			// Витрина: истёкший временный доступ блокируется
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.AccessStatusMiddleware(logger, svc.Access))
				r.Get("/dashboard/videos", dashboardcatalog.New(logger, svc.Access, svc.Store).ServeHTTP)
				r.Get("/videos/{id}", videoread.New(logger, svc.Catalog).ServeHTTP)
				r.Post("/videos/{id}/view", videoview.New(logger, svc.Catalog).ServeHTTP)
				r.Post("/videos/{id}/like", videolike.New(logger, svc.Catalog).ServeHTTP)
				r.Post("/videos/{id}/comments", videocommentadd.New(logger, svc.Catalog, svc.Store).ServeHTTP)
				r.Get("/categories", categorylist.New(logger, svc.Catalog).ServeHTTP)
			})

			// Административная группа
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.AdminOnlyMiddleware(logger))

				r.Post("/users", usercreate.New(logger, svc.Directory).ServeHTTP)
				r.Get("/users", userlist.New(logger, svc.Directory).ServeHTTP)
				r.Put("/users/{id}", userupdate.New(logger, svc.Directory).ServeHTTP)
				r.Delete("/users/{id}", userremove.New(logger, svc.Directory).ServeHTTP)
				r.Post("/users/{id}/extend", userextend.New(logger, svc.Access).ServeHTTP)

				r.Post("/videos", videocreate.New(logger, svc.Catalog).ServeHTTP)
				r.Get("/videos", videolist.New(logger, svc.Catalog).ServeHTTP)
				r.Put("/videos/{id}", videoupdate.New(logger, svc.Catalog).ServeHTTP)
				r.Delete("/videos/{id}", videoremove.New(logger, svc.Catalog).ServeHTTP)

				r.Get("/selection", selectionget.New(logger, svc.Access).ServeHTTP)
				r.Put("/selection", selectionreplace.New(logger, svc.Access).ServeHTTP)
				r.Post("/selection/{id}", selectiontoggle.New(logger, svc.Access).ServeHTTP)

				r.Get("/admin/stats", stats.New(logger, svc.Catalog).ServeHTTP)
				r.Get("/admin/settings", settingsget.New(logger, svc.Store).ServeHTTP)
				r.Put("/admin/settings", settingsupdate.New(logger, svc.Store).ServeHTTP)
				r.Post("/admin/settings/reset", settingsreset.New(logger, svc.Store).ServeHTTP)
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
