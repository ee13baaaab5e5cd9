package tools

import (
	"crypto/sha512"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

func EncryptTextSHA512(text string) string {
	sum := sha512.Sum512([]byte(text))
	return hex.EncodeToString(sum[:])
}

// RandomToken returns an opaque 64 hex chars token (two random UUIDs).
func RandomToken() string {
	return strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
}
