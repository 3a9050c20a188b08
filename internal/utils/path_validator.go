package utils

import (
	"fmt"
	"strings"
)

const (
	MaxPathLength = 500
)

// ValidateSourcePath validates the relative, slash-separated path of a source
// file inside an import root or archive
func ValidateSourcePath(path string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}

	if len(path) > MaxPathLength {
		return fmt.Errorf("path exceeds maximum length of %d characters", MaxPathLength)
	}

	// Check for leading slashes and drive letters
	if strings.HasPrefix(path, "/") || strings.Contains(path, ":") || strings.Contains(path, `\`) {
		return fmt.Errorf("path must be relative and slash-separated")
	}

	// Check for double slashes
	if strings.Contains(path, "//") {
		return fmt.Errorf("path cannot contain consecutive slashes")
	}

	// Check each segment
	for _, segment := range strings.Split(path, "/") {
		if strings.TrimSpace(segment) == "" {
			return fmt.Errorf("path cannot contain empty segments")
		}
		if segment == ".." || segment == "." {
			return fmt.Errorf("path cannot contain relative segments")
		}
	}

	return nil
}
