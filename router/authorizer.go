package router

import (
	"net/http"

	"testdesk/controllers"
	"testdesk/models"

	"github.com/gin-gonic/gin"
)

// Authorizer blocks /app routes without a session and keeps viewers read-only.
func Authorizer() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := controllers.GetSessionLogged(c)
		if !ok {
			controllers.RespondError(c, "unauthorized", http.StatusUnauthorized)
			c.Abort()
			return
		}

		if session.Role == models.USER_ROLE_VIEWER && isWrite(c) {
			controllers.RespondError(c, "read-only access", http.StatusForbidden)
			c.Abort()
			return
		}

		c.Next()
	}
}

// isWrite reports whether the request reaches the backend with a mutation.
// Dialog and pagination toggles only touch view state and stay allowed.
func isWrite(c *gin.Context) bool {
	switch c.FullPath() {
	case "/app/executions/execute",
		"/app/modules/dialog/submit",
		"/app/modules/delete/confirm",
		"/app/releases/dialog/submit",
		"/app/releases/delete/confirm",
		"/app/issues/save",
		"/app/issues/delete":
		return true
	}
	return false
}
