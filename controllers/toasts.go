package controllers

import (
	"net/http"

	dbpkg "testdesk/db"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GET /app/toasts
// Returns the pending toasts of the session; each toast is returned once.
func GetToasts(c *gin.Context) {
	deps := DepsInstance(c)
	session, ok := GetSessionLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}
	toasts, err := dbpkg.Toasts(c).Drain(session.ID)
	if err != nil {
		deps.Logger.Error("drain toasts failed", zap.Error(err))
		RespondError(c, "could not read notifications", http.StatusInternalServerError)
		return
	}
	RespondSuccess(c, gin.H{"toasts": toasts})
}
