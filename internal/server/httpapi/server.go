// Package httpapi exposes the homeboard HTTP surface: registration, login,
// the authenticated user/bookmark/preference endpoints, and the public
// search-engine catalog.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/homeboard/internal/logging"
	"github.com/dmitrijs2005/homeboard/internal/server/models"
)

// Users is the slice of UserService the HTTP layer depends on.
type Users interface {
	Register(ctx context.Context, email, password, name string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (string, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)
	UpdatePreferences(ctx context.Context, userID string, prefs models.Preferences) error
}

// Bookmarks is the slice of BookmarkService the HTTP layer depends on.
type Bookmarks interface {
	List(ctx context.Context, userID string) ([]*models.Bookmark, error)
	Create(ctx context.Context, userID, title, url, icon, category string) (*models.Bookmark, error)
	Delete(ctx context.Context, userID, bookmarkID string) error
}

type Server struct {
	address    string
	logger     logging.Logger
	users      Users
	bookmarks  Bookmarks
	corsOrigin string
}

func NewServer(a string, l logging.Logger, us Users, bs Bookmarks, corsOrigin string) (*Server, error) {
	return &Server{
		address:    a,
		logger:     l.With("module", "httpapi"),
		users:      us,
		bookmarks:  bs,
		corsOrigin: corsOrigin,
	}, nil
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Routes(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
