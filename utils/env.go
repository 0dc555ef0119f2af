package utils

import (
	"os"
	"strings"
)

// EnvOrDefault returns the trimmed value of key, or def when it is unset or blank.
func EnvOrDefault(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}
