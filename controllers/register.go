package controllers

import (
	"errors"

	"testdesk/models"
	"testdesk/pages"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GET /auth/register
func GetRegisterPage(c *gin.Context) {
	deps := DepsInstance(c)
	RespondSuccess(c, pages.RegisterSnapshot{AllowedDomain: deps.Config.Auth.AllowedEmailDomain})
}

// POST /auth/register
// A successful registration does not open a session; the user must verify
// the e-mail first.
func Register(c *gin.Context) {
	deps := DepsInstance(c)

	var form models.RegisterForm
	if !bindOrReject(c, &form) {
		return
	}

	snap, err := pages.Register(c.Request.Context(), deps.Auth, form, deps.Config.Auth.AllowedEmailDomain)
	if err != nil && !errors.Is(err, pages.ErrValidation) {
		deps.Logger.Warn("registration failed", zap.String("email", form.Email), zap.Error(err))
	}
	RespondPage(c, snap, err)
}
