package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// HashToken computes a SHA-256 hash of the token string.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// DeriveUserID maps a bearer token to a stable pseudo user id of the form
// "user_<n>". The same token always yields the same id. This is not an
// identity check; the token is never verified against anything.
func DeriveUserID(token string) string {
	var h int32
	for _, r := range token {
		h = h*31 + int32(r)
	}
	if h < 0 {
		h = -h
	}
	return fmt.Sprintf("user_%d", h)
}

// FallbackUserID returns a time-based pseudo user id for requests that carry
// neither a token nor an explicit user id.
func FallbackUserID() string {
	return fmt.Sprintf("user_%d", time.Now().UnixMilli())
}

// BearerToken extracts the token from an Authorization header value.
// It returns an empty string when the header is absent or not a Bearer scheme.
func BearerToken(authHeader string) string {
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}
