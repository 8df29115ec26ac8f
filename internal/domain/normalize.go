package domain

import (
	"strings"
)

// CollapseSpaces trims s and replaces every run of whitespace with a
// single space. Case and punctuation are preserved.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeText prepares free text for comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses whitespace runs into one space
func NormalizeText(text string) string {
	return strings.ToLower(CollapseSpaces(text))
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
