// Package portal собирает приложение портала обучающих видео: хранилище
// с демонстрационными данными, кеш сессий, сервисы и HTTP-сервер.
package portal

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/bounceboom/training-portal/internal/cache"
	"github.com/bounceboom/training-portal/internal/config"
	"github.com/bounceboom/training-portal/internal/lib/jwt"
	accessservice "github.com/bounceboom/training-portal/internal/services/access"
	catalogservice "github.com/bounceboom/training-portal/internal/services/catalog"
	directoryservice "github.com/bounceboom/training-portal/internal/services/directory"
	sessionservice "github.com/bounceboom/training-portal/internal/services/session"
	"github.com/bounceboom/training-portal/internal/storage/memstore"
)

// App хранит собранный HTTP-сервер и его зависимости.
type App struct {
	server *http.Server
	logger *slog.Logger
	store  *memstore.Store
	cache  cache.Cache
}

// New создает приложение: хранилище с демонстрационными данными, кеш сессий
// (redis, если задан адрес, иначе память процесса), сервисы и маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	store := memstore.NewSeeded()

	var sessionCache cache.Cache
	if cfg.AddressRedis != "" {
		redisCache, err := cache.InitServer(ctx, cfg.RedisConnection)
		if err != nil {
			return nil, err
		}
		sessionCache = redisCache
	} else {
		logger.Info("redis address is empty, using in-process session cache")
		sessionCache = cache.NewMemory()
	}

	tokenMaker := jwt.NewMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	sessionService := sessionservice.New(store, tokenMaker, sessionCache, cfg.TokenTTL, logger)
	directoryService := directoryservice.New(store, logger, cfg.DefaultAccessDays)
	catalogService := catalogservice.New(store, logger)
	accessService := accessservice.New(store, logger)

	router := chi.NewRouter()

	RegisterRoutes(router, logger, Services{
		Session:   sessionService,
		Directory: directoryService,
		Catalog:   catalogService,
		Access:    accessService,
		Store:     store,
		Tokens:    tokenMaker,
	})

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		store:  store,
		cache:  sessionCache,
	}, nil
}

// Run запускает HTTP-сервер и блокируется до остановки контекста
// или ошибки сервера. Остановка контекста запускает graceful shutdown.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		return a.server.Shutdown(timeoutCtx)
	}
}
