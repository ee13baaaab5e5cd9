package models

import "time"

// Session binds a browser cookie to a backend access token.
// Only the hash of the cookie token is stored.
type Session struct {
	ID           int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	TokenHash    string     `gorm:"not null;unique_index" json:"-"`
	UserID       int64      `gorm:"not null;index" json:"user_id"`
	Email        string     `gorm:"not null" json:"email"`
	FullName     string     `json:"full_name"`
	Role         string     `json:"role"`
	BackendToken string     `gorm:"type:text" json:"-"`
	ExpiresAt    *time.Time `gorm:"index" json:"expires_at"`
	CreatedAt    *time.Time `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

func (s Session) IsExpired(now time.Time) bool {
	if s.ExpiresAt == nil {
		return false
	}
	return now.After(*s.ExpiresAt)
}

func (s Session) User() User {
	return User{ID: s.UserID, Email: s.Email, FullName: s.FullName, Role: s.Role, IsVerified: true}
}
