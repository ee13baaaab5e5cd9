package controllers

import (
	"errors"
	"net/http"
	"strconv"

	dbpkg "testdesk/db"
	"testdesk/models"
	"testdesk/pages"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func ParamID(c *gin.Context, name string) (int64, bool) {
	v := c.Param(name)
	if v == "" {
		RespondError(c, name+" is required", http.StatusBadRequest)
		return 0, false
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, "invalid "+name, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// bindOrReject binds the request body (JSON or form) and answers 400 on failure.
func bindOrReject(c *gin.Context, obj any) bool {
	if err := c.ShouldBind(obj); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// pageContext returns what every page action needs. The caller must unlock
// the returned views.
func pageContext(c *gin.Context) (*Deps, models.Session, *pages.SessionViews, bool) {
	deps := DepsInstance(c)
	session, ok := GetSessionLogged(c)
	if !ok || deps == nil {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return nil, models.Session{}, nil, false
	}
	views := deps.Views.Get(session.ID)
	views.Lock()
	return deps, session, views, true
}

// pushNotice queues n as a toast for the session. Failures are only logged.
func pushNotice(c *gin.Context, sessionID int64, n pages.Notice) {
	if n.Message == "" {
		return
	}
	toasts := dbpkg.Toasts(c)
	if toasts == nil {
		return
	}
	if _, err := toasts.Push(sessionID, n.Severity, n.Message); err != nil {
		DepsInstance(c).Logger.Error("push toast failed", zap.Error(err))
	}
}

// logLoad logs a page fetch failure; validation errors are never logged.
func logLoad(deps *Deps, page string, err error) {
	if err == nil || errors.Is(err, pages.ErrValidation) {
		return
	}
	deps.Logger.Warn("page load failed", zap.String("page", page), zap.Error(err))
}
