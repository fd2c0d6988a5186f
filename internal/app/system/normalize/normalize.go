// Package normalize provides canonical forms for user-supplied fields so
// comparisons and duplicate checks behave consistently across the app.
package normalize

import "strings"

// Email trims whitespace and lowercases. The empty string stays empty so
// missing emails never compare equal to each other in duplicate checks.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Mobile strips spaces and dashes from a phone number.
func Mobile(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "")
	return strings.ReplaceAll(s, "-", "")
}

// Enrollment uppercases an enrollment or faculty number and trims spaces.
func Enrollment(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
