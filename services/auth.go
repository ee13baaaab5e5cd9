package services

import (
	"context"
	"net/url"
	"strings"

	"testdesk/models"
)

type AuthService interface {
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)
	Register(ctx context.Context, form models.RegisterForm) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type authService struct {
	backend Backend
}

func NewAuthService(backend Backend) AuthService {
	return &authService{backend: backend}
}

func (s *authService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var out models.LoginResponse
	req.Email = strings.TrimSpace(req.Email)
	err := s.backend.Post(ctx, "/auth/login", nil, req, &out)
	return out, err
}

// Register never sends confirm_password; it is checked before the call.
func (s *authService) Register(ctx context.Context, form models.RegisterForm) error {
	body := map[string]string{
		"email":     strings.TrimSpace(form.Email),
		"password":  form.Password,
		"full_name": strings.TrimSpace(form.FullName),
	}
	return s.backend.Post(ctx, "/auth/register", nil, body, nil)
}

func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	body := models.ForgotPasswordRequest{Email: strings.TrimSpace(email)}
	return s.backend.Post(ctx, "/auth/forgot-password", nil, body, nil)
}

// ResetPassword passes token and new_password as query parameters, which is
// what the backend endpoint reads.
func (s *authService) ResetPassword(ctx context.Context, token, newPassword string) error {
	query := url.Values{"token": {token}, "new_password": {newPassword}}
	return s.backend.Post(ctx, "/auth/reset-password", query, nil, nil)
}
