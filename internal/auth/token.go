package auth

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateRandomToken returns a 64-character hex token for email
// verification and password reset links.
func GenerateRandomToken() string {
	b := make([]byte, 32)
	// rand.Read only fails when the OS entropy source is broken
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
