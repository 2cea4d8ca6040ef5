// Package util provides utility functions for the backend.
//
//revive:disable-next-line:var-naming
package util

import (
	"strings"
)

// IsEmpty checks if a string is empty or contains only whitespace
func IsEmpty(s string) bool {
	return len(strings.TrimSpace(s)) == 0
}
