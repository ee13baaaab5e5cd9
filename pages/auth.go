package pages

import (
	"context"
	"fmt"
	"strings"

	"testdesk/models"
	"testdesk/services"
	"testdesk/tools"
)

// ResetRedirectDelayMs is how long the reset page waits before going to /login.
const ResetRedirectDelayMs = 3000

const LoginRoute = "/login"

// ValidateRegistration checks, in order: email domain, password length,
// password confirmation. The first failure is returned.
func ValidateRegistration(form models.RegisterForm, allowedDomain string) string {
	if !tools.HasEmailDomain(form.Email, allowedDomain) {
		return fmt.Sprintf("Email must be from @%s domain", allowedDomain)
	}
	if msg := tools.CheckPassword(form.Password); msg != "" {
		return msg
	}
	if form.Password != form.ConfirmPassword {
		return "Passwords do not match"
	}
	return ""
}

// ValidateReset checks the URL token first, then the password pair.
func ValidateReset(token string, form models.ResetPasswordForm) string {
	if strings.TrimSpace(token) == "" {
		return "Invalid or missing reset token"
	}
	if msg := tools.CheckPassword(form.Password); msg != "" {
		return msg
	}
	if form.Password != form.ConfirmPassword {
		return "Passwords do not match"
	}
	return ""
}

type RegisterSnapshot struct {
	AllowedDomain string `json:"allowed_domain"`
	Error         string `json:"error,omitempty"`
	Success       string `json:"success,omitempty"`
	// Submitted hides the form once the verification notice is shown.
	Submitted bool `json:"submitted"`
}

// Register validates and forwards the registration. A successful
// registration does not sign the user in.
func Register(ctx context.Context, api services.AuthService, form models.RegisterForm, allowedDomain string) (RegisterSnapshot, error) {
	snap := RegisterSnapshot{AllowedDomain: allowedDomain}
	if msg := ValidateRegistration(form, allowedDomain); msg != "" {
		snap.Error = msg
		return snap, ErrValidation
	}
	if err := api.Register(ctx, form); err != nil {
		snap.Error = "Registration failed: " + tools.ErrorMessage(err)
		return snap, err
	}
	snap.Success = "Registration successful! Please check your email to verify your account."
	snap.Submitted = true
	return snap, nil
}

type ResetSnapshot struct {
	Token           bool   `json:"token_present"`
	FormDisabled    bool   `json:"form_disabled"`
	Error           string `json:"error,omitempty"`
	Success         string `json:"success,omitempty"`
	Redirect        string `json:"redirect,omitempty"`
	RedirectAfterMs int    `json:"redirect_after_ms,omitempty"`
}

// ResetForm is what the page shows before anything is submitted.
func ResetForm(token string) ResetSnapshot {
	if strings.TrimSpace(token) == "" {
		return ResetSnapshot{FormDisabled: true, Error: "Invalid or missing reset token"}
	}
	return ResetSnapshot{Token: true}
}

func ResetPassword(ctx context.Context, api services.AuthService, token string, form models.ResetPasswordForm) (ResetSnapshot, error) {
	snap := ResetForm(token)
	if snap.FormDisabled {
		return snap, ErrValidation
	}
	if msg := ValidateReset(token, form); msg != "" {
		snap.Error = msg
		return snap, ErrValidation
	}
	if err := api.ResetPassword(ctx, strings.TrimSpace(token), form.Password); err != nil {
		snap.Error = "Failed to reset password: " + tools.ErrorMessage(err)
		return snap, err
	}
	snap.FormDisabled = true
	snap.Success = "Password reset successful! Redirecting to login..."
	snap.Redirect = LoginRoute
	snap.RedirectAfterMs = ResetRedirectDelayMs
	return snap, nil
}
