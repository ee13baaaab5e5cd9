package controllers

import (
	"errors"
	"net/http"
	"strings"

	dbpkg "testdesk/db"
	"testdesk/models"
	"testdesk/tools"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const ctxSessionKey = "auth_session"

// AuthRequired loads the session named by the cookie (or a Bearer header)
// and forwards its backend token on every backend call of the request.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessions := dbpkg.Sessions(c)
		deps := DepsInstance(c)
		if sessions == nil || deps == nil {
			RespondError(c, "session store not configured", http.StatusInternalServerError)
			c.Abort()
			return
		}

		session, err := sessions.Lookup(sessionToken(c, deps.Config.Auth.CookieName))
		if errors.Is(err, models.ErrSessionExpired) {
			deps.Views.Forget(session.ID)
			RespondError(c, "session expired", http.StatusUnauthorized)
			c.Abort()
			return
		}
		if errors.Is(err, models.ErrNotFound) {
			RespondError(c, "unauthorized", http.StatusUnauthorized)
			c.Abort()
			return
		}
		if err != nil {
			deps.Logger.Error("session lookup failed", zap.Error(err))
			RespondError(c, "session lookup failed", http.StatusInternalServerError)
			c.Abort()
			return
		}

		c.Set(ctxSessionKey, session)
		c.Request = c.Request.WithContext(tools.WithBackendToken(c.Request.Context(), session.BackendToken))
		c.Next()
	}
}

// GetSessionLogged returns the session loaded by AuthRequired.
func GetSessionLogged(c *gin.Context) (models.Session, bool) {
	v, ok := c.Get(ctxSessionKey)
	if !ok {
		return models.Session{}, false
	}
	session, ok := v.(models.Session)
	return session, ok
}

func sessionToken(c *gin.Context, cookieName string) string {
	if v, err := c.Cookie(cookieName); err == nil && v != "" {
		return v
	}
	h := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(h), "bearer ") {
		return strings.TrimSpace(h[len("Bearer "):])
	}
	return ""
}
