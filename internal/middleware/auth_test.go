package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medlight/clinic-api/pkg/session"
)

func newGatedRouter(store session.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)

	mw := NewSessionMiddleware(store)
	router := gin.New()
	router.POST("/guarded", mw.RequireSession(), func(c *gin.Context) {
		userID := c.MustGet(ContextUserID).(uuid.UUID)
		c.JSON(http.StatusOK, gin.H{"user": userID.String()})
	})
	return router
}

func doPost(router *gin.Engine, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireSessionNoCookie(t *testing.T) {
	router := newGatedRouter(session.NewMemoryStore(time.Hour))

	w := doPost(router, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireSessionUnknownToken(t *testing.T) {
	router := newGatedRouter(session.NewMemoryStore(time.Hour))

	w := doPost(router, &http.Cookie{Name: session.CookieName, Value: uuid.New().String()})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireSessionValidToken(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	router := newGatedRouter(store)

	userID := uuid.New()
	token, err := store.Create(context.Background(), userID)
	require.NoError(t, err)

	w := doPost(router, &http.Cookie{Name: session.CookieName, Value: token})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
}

func TestRequireSessionAfterDestroy(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	router := newGatedRouter(store)

	token, err := store.Create(context.Background(), uuid.New())
	require.NoError(t, err)
	require.NoError(t, store.Destroy(context.Background(), token))

	w := doPost(router, &http.Cookie{Name: session.CookieName, Value: token})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
