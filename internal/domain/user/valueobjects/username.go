package valueobjects

import (
	"fmt"
	"regexp"
	"strings"
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9@.+_-]+$`)

// ValidateUsername accepts 3 to 150 characters of letters, digits and @.+-_
func ValidateUsername(value string) (string, error) {
	v := strings.TrimSpace(value)
	if len(v) < 3 {
		return "", fmt.Errorf("username must be at least 3 characters long")
	}
	if len(v) > 150 {
		return "", fmt.Errorf("username cannot exceed 150 characters")
	}
	if !usernameRegex.MatchString(v) {
		return "", fmt.Errorf("username may only contain letters, digits and @.+-_")
	}
	return v, nil
}
