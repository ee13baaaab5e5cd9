package tools

import (
	"regexp"
	"strings"
)

const MinPasswordLength = 8

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func ValidateEmail(email string) bool {
	return emailRe.MatchString(email)
}

// HasEmailDomain checks the "@domain" suffix, case-insensitive.
func HasEmailDomain(email, domain string) bool {
	domain = strings.TrimPrefix(strings.TrimSpace(domain), "@")
	if domain == "" {
		return true
	}
	return strings.HasSuffix(strings.ToLower(strings.TrimSpace(email)), "@"+strings.ToLower(domain))
}

// CheckPassword returns a message when the password is too short, "" otherwise.
func CheckPassword(password string) string {
	if len(password) < MinPasswordLength {
		return "Password must be at least 8 characters long"
	}
	return ""
}
