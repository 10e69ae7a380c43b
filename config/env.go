package config

import (
	"fmt"
	"strings"
)

// RequireEnv returns value, or an error naming key when value is blank.
func RequireEnv(value, key string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", fmt.Errorf("Missing required environment variable: %s", key) //nolint:staticcheck // user-facing text
	}
	return value, nil
}
