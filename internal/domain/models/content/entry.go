package content

import (
	"strings"
	"time"
)

// Entry is the write-side form of a record as produced by the importer
type Entry struct {
	ID          string         `json:"id" db:"id"`
	Path        string         `json:"path" db:"path"`
	Stem        string         `json:"stem" db:"stem"`
	Extension   string         `json:"extension" db:"extension"`
	Title       string         `json:"title" db:"title"`
	Description string         `json:"description" db:"description"`
	Navigation  any            `json:"navigation" db:"navigation"` // Stored as JSON text
	Body        string         `json:"body" db:"body"`             // Markdown body
	Meta        map[string]any `json:"meta" db:"meta"`             // Remaining frontmatter, stored as JSON text
	UpdatedAt   time.Time      `json:"updated_at" db:"updated_at"`
}

// IsDirectoryConfig reports whether the entry is a `.navigation` marker
func (e *Entry) IsDirectoryConfig() bool {
	return lastSegment(e.Stem) == MarkerSegment
}

func lastSegment(stem string) string {
	return stem[strings.LastIndex(stem, "/")+1:]
}
