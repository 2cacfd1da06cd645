package lib

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"path/filepath"
)

// GenerateRandomToken generates a cryptographically secure random token
func GenerateRandomToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}

// RandomObjectName generates a random basename for an uploaded file while
// preserving the original extension exactly as supplied (including case).
// Collision avoidance relies on randomness alone.
func RandomObjectName(originalName string) (string, error) {
	ext := filepath.Ext(originalName)

	bytes := make([]byte, 12)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate object name: %w", err)
	}

	return hex.EncodeToString(bytes) + ext, nil
}
