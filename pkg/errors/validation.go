package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateName validates a scene or section name for display and storage.
//
//   - No control characters
//   - Maximum length of 256 characters
//
// Empty names are allowed; callers substitute their own defaults.
func ValidateName(name string) error {
	if len(name) > 256 {
		return New(ErrCodeInvalidScene, "name too long (max 256 characters)")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidScene, "name contains invalid control characters")
		}
	}
	return nil
}

// ValidatePath validates a relative output path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	return nil
}

// layoutIDRegex matches the canonical textual form of a UUID.
var layoutIDRegex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// ValidateLayoutID validates the identifier of a stored layout document.
func ValidateLayoutID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "layout id cannot be empty")
	}
	if !layoutIDRegex.MatchString(id) {
		return New(ErrCodeInvalidInput, "invalid layout id: %q", id)
	}
	return nil
}
