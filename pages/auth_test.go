package pages

import (
	"context"
	"errors"
	"testing"

	"testdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRegistration_Order(t *testing.T) {
	const domain = "centime.com"
	cases := []struct {
		name string
		form models.RegisterForm
		want string
	}{
		{"domain first", models.RegisterForm{Email: "a@gmail.com", Password: "x", ConfirmPassword: "y"}, "Email must be from @centime.com domain"},
		{"length", models.RegisterForm{Email: "a@centime.com", Password: "short", ConfirmPassword: "other"}, "Password must be at least 8 characters long"},
		{"match", models.RegisterForm{Email: "a@centime.com", Password: "longenough", ConfirmPassword: "longenougH"}, "Passwords do not match"},
		{"ok", models.RegisterForm{Email: "A@Centime.com", Password: "longenough", ConfirmPassword: "longenough"}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidateRegistration(tc.form, domain))
		})
	}
}

func TestRegister(t *testing.T) {
	api := &mockAuth{}
	snap, err := Register(context.Background(), api, models.RegisterForm{Email: "a@gmail.com"}, "centime.com")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, api.calls)
	assert.False(t, snap.Submitted)

	form := models.RegisterForm{FullName: "Ana", Email: "ana@centime.com", Password: "12345678", ConfirmPassword: "12345678"}
	snap, err = Register(context.Background(), api, form, "centime.com")
	require.NoError(t, err)
	assert.True(t, snap.Submitted)
	assert.Contains(t, snap.Success, "verify")
	assert.Equal(t, 1, api.calls)

	api.registerFunc = func(models.RegisterForm) error { return errors.New("email taken") }
	snap, err = Register(context.Background(), api, form, "centime.com")
	require.Error(t, err)
	assert.Equal(t, "Registration failed: email taken", snap.Error)
}

func TestResetPassword_MissingToken(t *testing.T) {
	api := &mockAuth{}
	assert.Equal(t, ResetSnapshot{FormDisabled: true, Error: "Invalid or missing reset token"}, ResetForm(""))

	snap, err := ResetPassword(context.Background(), api, " ", models.ResetPasswordForm{Password: "12345678", ConfirmPassword: "12345678"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.True(t, snap.FormDisabled)
	assert.Zero(t, api.calls)
}

func TestResetPassword_ValidatesAndRedirects(t *testing.T) {
	var gotToken, gotPassword string
	api := &mockAuth{resetFunc: func(token, password string) error {
		gotToken, gotPassword = token, password
		return nil
	}}
	ctx := context.Background()

	snap, err := ResetPassword(ctx, api, "tok", models.ResetPasswordForm{Password: "12345678", ConfirmPassword: "87654321"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Passwords do not match", snap.Error)
	assert.False(t, snap.FormDisabled)

	snap, err = ResetPassword(ctx, api, "tok", models.ResetPasswordForm{Password: "12345678", ConfirmPassword: "12345678"})
	require.NoError(t, err)
	assert.Equal(t, "tok", gotToken)
	assert.Equal(t, "12345678", gotPassword)
	assert.Equal(t, "/login", snap.Redirect)
	assert.Equal(t, 3000, snap.RedirectAfterMs)
}

func TestViewStore(t *testing.T) {
	s := NewViewStore()
	a := s.Get(1)
	assert.Same(t, a, s.Get(1))
	assert.NotSame(t, a, s.Get(2))
	assert.False(t, a.Mounted("modules"))
	assert.True(t, a.Mounted("modules"))

	s.Forget(1, 2)
	assert.Zero(t, s.Len())
	assert.NotSame(t, a, s.Get(1))
}
