package utils

import "regexp"

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidarEmail reports whether the given string looks like a valid
// email address. Format validation happens at the caller boundary,
// before any entity is constructed.
func ValidarEmail(email string) bool {
	return emailPattern.MatchString(email)
}
