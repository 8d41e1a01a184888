package validator

import (
	"regexp"
	"strings"
	"unicode"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPasswordLen = 8

func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func ValidatePassword(password string) bool {
	return len(password) >= minPasswordLen
}

// DotKey turns a service name into a calendar dot key: lowercase, every
// whitespace rune replaced by an underscore.
func DotKey(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, strings.ToLower(name))
}

// OrganisationSlug lowercases the business name and replaces spaces with dashes.
func OrganisationSlug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

// IsBlank reports whether s has no visible content.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
