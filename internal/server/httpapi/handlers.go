package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/homeboard/internal/common"
	"github.com/dmitrijs2005/homeboard/internal/server/models"
	"github.com/dmitrijs2005/homeboard/internal/server/search"
	"github.com/go-chi/chi/v5"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createBookmarkRequest struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Icon     string `json:"icon"`
	Category string `json:"category"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, messageResponse{Message: "Browser Homepage API is running"})
}

func (s *Server) handleSearchEngines(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, search.Engines())
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	_, token, err := s.users.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, common.ErrorEmailTaken) {
			writeError(w, http.StatusBadRequest, "Email already registered")
			return
		}
		s.logger.Error(r.Context(), "registration failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	s.logger.Info(r.Context(), "user registered", "email", req.Email)
	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeError(w, http.StatusUnauthorized, "Incorrect email or password")
			return
		}
		s.logger.Error(r.Context(), "login failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeAuthError(w)
		return
	}
	// models.User hides password_hash and last_login via struct tags
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleUpdatePreferences(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeAuthError(w)
		return
	}

	// Absent keys fall back to the account defaults, not empty strings.
	prefs := models.DefaultPreferences()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&prefs); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.users.UpdatePreferences(r.Context(), user.ID, prefs); err != nil {
		s.logger.Error(r.Context(), "preferences update failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Preferences updated successfully"})
}

func (s *Server) handleListBookmarks(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeAuthError(w)
		return
	}

	list, err := s.bookmarks.List(r.Context(), user.ID)
	if err != nil {
		s.logger.Error(r.Context(), "bookmark listing failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleCreateBookmark(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeAuthError(w)
		return
	}

	var req createBookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" || req.URL == "" {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	bookmark, err := s.bookmarks.Create(r.Context(), user.ID, req.Title, req.URL, req.Icon, req.Category)
	if err != nil {
		s.logger.Error(r.Context(), "bookmark creation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, bookmark)
}

func (s *Server) handleDeleteBookmark(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeAuthError(w)
		return
	}

	bookmarkID := chi.URLParam(r, "id")

	if err := s.bookmarks.Delete(r.Context(), user.ID, bookmarkID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "Bookmark not found")
			return
		}
		s.logger.Error(r.Context(), "bookmark deletion failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Bookmark deleted successfully"})
}
