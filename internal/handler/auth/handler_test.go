package auth

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medlight/clinic-api/internal/handler"
	"github.com/medlight/clinic-api/internal/repository/memory"
	authsvc "github.com/medlight/clinic-api/internal/service/auth"
	"github.com/medlight/clinic-api/pkg/security"
	"github.com/medlight/clinic-api/pkg/session"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	sessions := session.NewMemoryStore(time.Hour)
	svc := authsvc.NewService(memory.NewUserRepository(), sessions, security.NewBcryptHasher(4))
	h := NewHandler(svc, time.Hour)

	router := gin.New()
	h.RegisterRoutes(router.Group(handler.APIPrefix))
	return router
}

func do(router *gin.Engine, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, handler.APIPrefix+path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

func TestSignupLoginLogout(t *testing.T) {
	router := newTestRouter()

	w := do(router, http.MethodPost, "/signup", `{"username":"carol","password":"s3cret-pass"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(router, http.MethodPost, "/login", `{"username":"carol","password":"s3cret-pass"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	cookie := sessionCookie(t, w)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)

	w = do(router, http.MethodGet, "/logout", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)

	cleared := sessionCookie(t, w)
	assert.Empty(t, cleared.Value)
}

func TestLoginBadCredentials(t *testing.T) {
	router := newTestRouter()

	w := do(router, http.MethodPost, "/signup", `{"username":"carol","password":"s3cret-pass"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(router, http.MethodPost, "/login", `{"username":"carol","password":"wrong"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies(), "failed login must not set a cookie")
}

func TestSignupMissingPassword(t *testing.T) {
	router := newTestRouter()

	w := do(router, http.MethodPost, "/signup", `{"username":"carol"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogoutWithoutSession(t *testing.T) {
	router := newTestRouter()

	w := do(router, http.MethodGet, "/logout", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
