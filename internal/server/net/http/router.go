// Package http реализует маршрутизацию HTTP-слоя сервера закладок.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - подключение request id, access-лога и recover;
//   - проверку JWT access-токенов на защищённых путях.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/api"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/middleware"
)

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Публичные пути: /auth/*, /swagger/*. Всё остальное требует Bearer-токен.
func NewRouter(h *api.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware(h.Log))
	// паника в хендлере -> 500, сервер живёт дальше
	r.Use(chimw.Recoverer)

	// добавляем swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	// Публичные пути
	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", h.Signup)
		r.Post("/signin", h.Signin)
	})
	// защищённые пути
	r.Group(func(r chi.Router) {
		// проверка access токена
		r.Use(h.Verifier.AuthMiddleware())

		r.Get("/users/me", h.GetMe)
		r.Patch("/users", h.EditMe)

		r.Route("/bookmarks", func(r chi.Router) {
			r.Post("/", h.CreateBookmark)
			r.Get("/", h.ListBookmarks)
			r.Get("/{id}", h.GetBookmark)
			r.Patch("/{id}", h.EditBookmark)
			r.Delete("/{id}", h.DeleteBookmark)
		})
	})

	return r
}
