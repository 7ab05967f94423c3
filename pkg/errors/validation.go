package errors

import (
	"strings"
	"unicode"
)

// maxNameLength bounds model names, which become output file names.
const maxNameLength = 200

// ValidateModelName validates a model name before it is used as an output
// file name. Names must be plain basenames:
//   - No empty or whitespace-only names
//   - No control characters or null bytes
//   - No path separators or traversal sequences
//   - Maximum length of 200 characters
func ValidateModelName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidName, "model name cannot be empty")
	}

	if len(name) > maxNameLength {
		return New(ErrCodeInvalidName, "model name too long (max %d characters)", maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "model name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidName, "model name cannot contain path separators: %q", name)
	}

	if name == "." || strings.Contains(name, "..") {
		return New(ErrCodeInvalidName, "model name cannot contain path traversal sequences: %q", name)
	}

	return nil
}

// ValidateShapeName validates a shape registry key.
// Shape names are identifiers: letters, digits, dash and underscore.
func ValidateShapeName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "shape name cannot be empty")
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' {
			return New(ErrCodeInvalidInput, "shape name %q contains invalid character %q", name, r)
		}
	}
	return nil
}
