package models

// RegisterForm is the registration dialog. ConfirmPassword never leaves the BFF.
type RegisterForm struct {
	FullName        string `json:"full_name" form:"full_name"`
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

// ResetPasswordForm is the reset dialog. The token comes from the URL query string.
type ResetPasswordForm struct {
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" form:"email"`
}
