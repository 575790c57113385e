package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/homeboard/internal/common"
	"github.com/dmitrijs2005/homeboard/internal/server/models"
)

type ctxKey string

const userKey ctxKey = "user"

// UserFromContext returns the authenticated user stored by authMiddleware.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok
}

// authMiddleware extracts the bearer token from the Authorization header,
// resolves it to a user, and stores the user in the request context. The
// request is rejected before reaching the handler on any failure; expired
// tokens, bad signatures, and vanished users all get the same 401.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
			writeAuthError(w)
			return
		}

		user, err := s.users.Authenticate(r.Context(), token)
		if err != nil {
			if errors.Is(err, common.ErrorInternal) {
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			writeAuthError(w)
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeAuthError(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeError(w, http.StatusUnauthorized, "Could not validate credentials")
}
