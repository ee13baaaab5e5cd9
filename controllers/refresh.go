package controllers

import (
	"net/http"
	"time"

	dbpkg "testdesk/db"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RefreshResponse struct {
	Token        string `json:"token"`
	ExpiresAt    int64  `json:"expires_at"`     // unix seconds
	ExpiresAtISO string `json:"expires_at_iso"` // RFC3339
}

// POST /auth/refresh
// Rotates the session token and pushes the expiry forward. The old token
// stops working immediately.
func Refresh(c *gin.Context) {
	deps := DepsInstance(c)
	session, ok := GetSessionLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	token, rotated, err := dbpkg.Sessions(c).Rotate(session.ID)
	if err != nil {
		deps.Logger.Error("rotate session failed", zap.Int64("session_id", session.ID), zap.Error(err))
		RespondError(c, "could not refresh session", http.StatusInternalServerError)
		return
	}

	setSessionCookie(c, token, int(deps.Config.SessionTTL().Seconds()))
	resp := RefreshResponse{Token: token}
	if rotated.ExpiresAt != nil {
		resp.ExpiresAt = rotated.ExpiresAt.Unix()
		resp.ExpiresAtISO = rotated.ExpiresAt.UTC().Format(time.RFC3339)
	}
	RespondSuccess(c, resp)
}
