package models

import "errors"

var (
	ErrLegacyEntity   = errors.New("legacy entity has no id")
	ErrNotFound       = errors.New("resource not found")
	ErrSessionExpired = errors.New("session expired")
)
