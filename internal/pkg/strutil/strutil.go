// Package strutil converts query string values.
package strutil

import (
	"fmt"
	"strconv"
	"strings"
)

// ConvertToInt parses s as a base 10 integer
func ConvertToInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", s, err)
	}
	return n, nil
}

// IntOr parses s, returning fallback when s is empty or malformed
func IntOr(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n, err := ConvertToInt(s)
	if err != nil {
		return fallback
	}
	return n
}

// ParseBool accepts the usual truthy spellings of form checkboxes
func ParseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
