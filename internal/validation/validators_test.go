package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"simple address", "alice@example.com", true},
		{"subdomain", "bob@mail.example.co.uk", true},
		{"plus tag", "carol+library@example.com", true},
		{"missing at", "alice.example.com", false},
		{"missing domain dot", "alice@example", false},
		{"contains space", "alice smith@example.com", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.email))
		})
	}
}

func TestIsValidISBN(t *testing.T) {
	tests := []struct {
		name string
		isbn string
		want bool
	}{
		{"grouped format", "978-0-45-152493-5", true},
		{"bare 13 digits", "9780451524935", true},
		{"wrong grouping", "978-045-152493-5", false},
		{"too short", "978045152493", false},
		{"too long", "97804515249355", false},
		{"letters", "978-0-45-15249X-5", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidISBN(tt.isbn))
		})
	}
}

func TestNotEmpty(t *testing.T) {
	assert.True(t, NotEmpty("ok", 1))
	assert.True(t, NotEmpty("ab", 2))
	assert.True(t, NotEmpty("  ab  ", 2), "surrounding whitespace is trimmed")
	assert.False(t, NotEmpty("a", 2))
	assert.False(t, NotEmpty("   ", 1))
	assert.False(t, NotEmpty("", 1))
}

func TestIsInList(t *testing.T) {
	allowed := []string{"active", "inactive", "suspended"}

	assert.True(t, IsInList("active", allowed))
	assert.True(t, IsInList("suspended", allowed))
	assert.False(t, IsInList("Active", allowed), "values are case-sensitive")
	assert.False(t, IsInList("banned", allowed))
	assert.False(t, IsInList("", allowed))
}
