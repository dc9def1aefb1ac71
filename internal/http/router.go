// Package http собирает HTTP-слой reels-service: роутер chi, middleware
// и регистрацию REST-эндпойнтов ленты.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/go-reels-service/internal/config"
	"github.com/pribylovaa/go-reels-service/internal/http/handlers"
	"github.com/pribylovaa/go-reels-service/internal/http/middleware"
	"github.com/pribylovaa/go-reels-service/internal/service"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Auth     config.AuthConfig
	Timeout  time.Duration
	BasePath string // например, "/api"; если пустой — роуты регистрируются на корне.
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
		middleware.Auth(opts.Auth),      // валидируем Bearer токен, кладём viewer id в контекст
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	// Зависимости хендлеров.
	h := handlers.New(svc)

	// Регистрация маршрутов.
	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// лента
	r.Get("/reels", h.Feed)

	// вовлечённость
	r.Post("/reels/{id}/events", h.AppendEvent)
	r.Post("/reels/{id}/like", h.ToggleLike)
	r.Post("/reels/{id}/save", h.ToggleSave)
	r.Post("/creators/{id}/follow", h.ToggleFollow)

	// комментарии
	r.Post("/reels/{id}/comments", h.CreateComment)
	r.Get("/reels/{id}/comments", h.ListRootComments)
	r.Get("/comments/{id}/replies", h.ListReplies)

	// медиа
	r.Post("/media/presign", h.MediaPresign)
	r.Post("/media/confirm", h.MediaConfirm)
}
