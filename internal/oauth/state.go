package oauth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateState produces a cryptographically secure state parameter for
// CSRF protection. A fresh value is generated for every login flow and
// never reused.
func GenerateState() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate state parameter: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
