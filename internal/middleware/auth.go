package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/medlight/clinic-api/internal/handler"
	apperr "github.com/medlight/clinic-api/pkg/errors"
	"github.com/medlight/clinic-api/pkg/session"
)

// ContextUserID is the context key under which the authenticated user's
// id is stored.
const ContextUserID = "user_id"

// SessionMiddleware gates mutating routes on a live session.
type SessionMiddleware struct {
	store session.Store
}

func NewSessionMiddleware(store session.Store) *SessionMiddleware {
	return &SessionMiddleware{store: store}
}

// RequireSession rejects callers without a valid session cookie before
// any validation or storage work runs.
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err != nil || token == "" {
			handler.RespondError(c, apperr.NewUnauthorized("authentication required"))
			return
		}

		userID, err := m.store.Get(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, session.ErrNotFound) {
				handler.RespondError(c, apperr.NewUnauthorized("session expired or invalid"))
				return
			}
			handler.RespondError(c, apperr.NewStorage("load session", err))
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}
