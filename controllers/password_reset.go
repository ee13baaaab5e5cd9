package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"testdesk/models"
	"testdesk/pages"
	"testdesk/tools"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// POST /auth/forgot-password
// Always answers true, whether or not the account exists.
func ForgotPassword(c *gin.Context) {
	deps := DepsInstance(c)

	var req models.ForgotPasswordRequest
	if err := c.ShouldBind(&req); err != nil || !tools.ValidateEmail(strings.TrimSpace(req.Email)) {
		RespondSuccess(c, true)
		return
	}
	if err := deps.Auth.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		deps.Logger.Warn("forgot password failed", zap.Error(err))
	}
	RespondSuccess(c, true)
}

// GET /auth/reset-password?token=...
func GetResetPasswordPage(c *gin.Context) {
	snap := pages.ResetForm(c.Query("token"))
	RespondSuccess(c, snap)
}

// POST /auth/reset-password?token=...
func ResetPassword(c *gin.Context) {
	deps := DepsInstance(c)

	var form models.ResetPasswordForm
	if !bindOrReject(c, &form) {
		return
	}

	snap, err := pages.ResetPassword(c.Request.Context(), deps.Auth, c.Query("token"), form)
	if err != nil && !errors.Is(err, pages.ErrValidation) {
		deps.Logger.Warn("password reset failed", zap.Error(err))
	}
	if err == nil {
		c.Header("Refresh", fmt.Sprintf("%d; url=%s", pages.ResetRedirectDelayMs/1000, snap.Redirect))
		c.JSON(http.StatusOK, snap)
		return
	}
	RespondPage(c, snap, err)
}
