// Package validation holds the pure predicates shared by every entity's
// validation rules.
package validation

import (
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// ISBN-13, either grouped (XXX-X-XX-XXXXXX-X) or a bare 13-digit string.
	isbnRegex = regexp.MustCompile(`^(?:\d{3}-\d-\d{2}-\d{6}-\d|\d{13})$`)
)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func IsValidISBN(isbn string) bool {
	return isbnRegex.MatchString(isbn)
}

// NotEmpty reports whether s, after trimming, has at least minLength characters.
func NotEmpty(s string, minLength int) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) >= minLength
}

func IsInList(value string, allowed []string) bool {
	return slices.Contains(allowed, value)
}
