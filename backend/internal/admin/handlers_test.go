package admin

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type noopInvalidator struct{ calls int }

func (n *noopInvalidator) Invalidate() { n.calls++ }

func newTestRouter(t *testing.T) (*gin.Engine, *Auth) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	auth := NewAuth("hunter2")
	h := NewHandlers(nil, &noopInvalidator{}, auth)

	router := gin.New()
	h.Register(router.Group("/api/admin"))
	return router, auth
}

func TestLogin_SetsSessionCookie(t *testing.T) {
	router, _ := newTestRouter(t)

	body, _ := json.Marshal(gin.H{"password": "hunter2"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/admin/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var sessionCookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == SessionCookie {
			sessionCookie = c
		}
	}
	if assert.NotNil(t, sessionCookie, "login did not set the session cookie") {
		assert.True(t, sessionCookie.HttpOnly)
		assert.NotEmpty(t, sessionCookie.Value)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	router, _ := newTestRouter(t)

	body, _ := json.Marshal(gin.H{"password": "guess"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/admin/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestLogin_MissingPassword(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/admin/login", bytes.NewBufferString("{}"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMiddleware_RejectsWithoutCookie(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/admin/stats", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddleware_RejectsForgedCookie(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/admin/stats", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "Zm9yZ2VkOmZvcmdlZA=="})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogout_AlwaysSucceeds(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/admin/logout", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	for _, c := range w.Result().Cookies() {
		if c.Name == SessionCookie {
			assert.Less(t, c.MaxAge, 0, "logout should expire the cookie")
		}
	}
}
