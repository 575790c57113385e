package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/homeboard/internal/common"
	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	h := newTestServer(t, &fakeUsers{authUser: authedUser()}, &fakeBookmarks{})

	rec := doRequest(t, h, http.MethodGet, "/api/user", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
	assert.JSONEq(t, `{"detail":"Could not validate credentials"}`, rec.Body.String())
}

func TestAuthMiddleware_WrongScheme(t *testing.T) {
	h := newTestServer(t, &fakeUsers{authUser: authedUser()}, &fakeBookmarks{})

	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwdw==")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	h := newTestServer(t, &fakeUsers{authErr: common.ErrTokenExpired}, &fakeBookmarks{})

	rec := doRequest(t, h, http.MethodGet, "/api/bookmarks", "", "stale-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"detail":"Could not validate credentials"}`, rec.Body.String())
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	h := newTestServer(t, &fakeUsers{authErr: common.ErrInvalidToken}, &fakeBookmarks{})

	rec := doRequest(t, h, http.MethodGet, "/api/bookmarks", "", "garbage")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_StoreFailure(t *testing.T) {
	h := newTestServer(t, &fakeUsers{authErr: common.ErrorInternal}, &fakeBookmarks{})

	rec := doRequest(t, h, http.MethodGet, "/api/bookmarks", "", "tok")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func newCORSTestServer(t *testing.T, origin string) http.Handler {
	t.Helper()
	s, err := NewServer(":0", nopLogger{}, &fakeUsers{}, &fakeBookmarks{}, origin)
	if err != nil {
		t.Fatalf("NewServer error: %v", err)
	}
	return s.Routes()
}

func TestCORS_Preflight(t *testing.T) {
	h := newCORSTestServer(t, "http://localhost:3000")

	req := httptest.NewRequest(http.MethodOptions, "/api/login", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "PUT")
	req.Header.Set("Access-Control-Request-Headers", "Authorization")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "PUT", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_HeadersOnNormalRequest(t *testing.T) {
	h := newCORSTestServer(t, "http://localhost:3000")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	h := newCORSTestServer(t, "http://localhost:3000")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
