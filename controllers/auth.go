package controllers

import (
	"net/http"
	"strings"

	dbpkg "testdesk/db"
	"testdesk/models"
	"testdesk/tools"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// POST /auth/login
// Credentials are checked by the backend; on success a local session is
// opened and its token set as an http-only cookie.
func Login(c *gin.Context) {
	deps := DepsInstance(c)
	sessions := dbpkg.Sessions(c)

	var req models.LoginRequest
	if !bindOrReject(c, &req) {
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		RespondError(c, "email and password are required", http.StatusBadRequest)
		return
	}
	if !tools.ValidateEmail(req.Email) {
		RespondError(c, "invalid email", http.StatusBadRequest)
		return
	}

	resp, err := deps.Auth.Login(c.Request.Context(), req)
	if err != nil {
		if tools.IsStatus(err, http.StatusUnauthorized) || tools.IsStatus(err, http.StatusBadRequest) {
			RespondError(c, "invalid email or password", http.StatusUnauthorized)
			return
		}
		if tools.IsStatus(err, http.StatusForbidden) {
			RespondError(c, tools.ErrorMessage(err), http.StatusForbidden)
			return
		}
		deps.Logger.Error("backend login failed", zap.Error(err))
		RespondError(c, "login failed: "+tools.ErrorMessage(err), http.StatusBadGateway)
		return
	}

	if resp.User.Email == "" {
		resp.User.Email = req.Email
	}
	token, session, err := sessions.Create(resp.User, resp.AccessToken)
	if err != nil {
		deps.Logger.Error("create session failed", zap.Error(err))
		RespondError(c, "could not open session", http.StatusInternalServerError)
		return
	}

	setSessionCookie(c, token, int(deps.Config.SessionTTL().Seconds()))
	deps.Logger.Info("user logged in", zap.Int64("session_id", session.ID), zap.String("email", session.Email))
	RespondSuccess(c, gin.H{"user": session.User(), "token": token})
}

// POST /auth/logout
func Logout(c *gin.Context) {
	deps := DepsInstance(c)
	sessions := dbpkg.Sessions(c)

	if session, ok := GetSessionLogged(c); ok {
		if err := sessions.DeleteByID(session.ID); err != nil {
			deps.Logger.Error("delete session failed", zap.Error(err))
			RespondError(c, "logout failed", http.StatusInternalServerError)
			return
		}
		deps.Views.Forget(session.ID)
	}
	setSessionCookie(c, "", -1)
	RespondSuccess(c, true)
}

func setSessionCookie(c *gin.Context, token string, maxAge int) {
	deps := DepsInstance(c)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(deps.Config.Auth.CookieName, token, maxAge, "/", "", deps.Config.Auth.CookieSecure, true)
}
