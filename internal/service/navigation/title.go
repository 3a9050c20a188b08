package navigation

import (
	"regexp"
	"strings"

	"github.com/iancoleman/strcase"
)

var (
	// indexSegment matches `index` with an optional ordering prefix (`0.index`, `3.index`)
	indexSegment = regexp.MustCompile(`^(\d+\.)?index$`)

	titleSeparator = regexp.MustCompile(`[\s-]`)
)

// GenerateTitle turns a path segment into a display title:
// "getting-started" → "Getting Started".
func GenerateTitle(segment string) string {
	parts := titleSeparator.Split(segment, -1)
	for i, part := range parts {
		parts[i] = strcase.ToCamel(part)
	}
	return strings.Join(parts, " ")
}

// isIndexStem reports whether the last stem segment names a directory index page
func isIndexStem(stemSegments []string) bool {
	if len(stemSegments) == 0 {
		return false
	}
	return indexSegment.MatchString(stemSegments[len(stemSegments)-1])
}

// pathSegments splits a record path into segments, dropping the leading
// character the way the path is always expected to start with "/".
// Malformed paths are not validated.
func pathSegments(path string) []string {
	if path != "" {
		path = path[1:]
	}
	return strings.Split(path, "/")
}

// configKey returns the directory a `.navigation` record configures:
// the parent of its own path, or "/" at the top level.
func configKey(path string) string {
	segments := strings.Split(path, "/")
	key := strings.Join(segments[:len(segments)-1], "/")
	if key == "" {
		return "/"
	}
	return key
}
