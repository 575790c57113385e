package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Routes builds the chi router. Register, login, the root message, and the
// search-engine catalog are public; everything else requires a bearer token.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{s.corsOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", s.handleRoot)
	r.Get("/api/search-engines", s.handleSearchEngines)
	r.Post("/api/register", s.handleRegister)
	r.Post("/api/login", s.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(s.authMiddleware)
		r.Get("/api/user", s.handleGetUser)
		r.Put("/api/user/preferences", s.handleUpdatePreferences)
		r.Get("/api/bookmarks", s.handleListBookmarks)
		r.Post("/api/bookmarks", s.handleCreateBookmark)
		r.Delete("/api/bookmarks/{id}", s.handleDeleteBookmark)
	})

	return r
}
