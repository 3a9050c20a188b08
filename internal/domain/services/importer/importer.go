package importer

import (
	"context"
	"io"
)

// ParsedContent is a source file decoded into the fields of a content entry
type ParsedContent struct {
	Title       string
	Description string
	// Navigation is the raw `navigation` value, nil when the file does not set it
	Navigation any
	// Body is the markdown body; empty for data files
	Body string
	// Meta holds every remaining frontmatter or data key
	Meta map[string]any
}

// ContentConverter parses one kind of source file.
// Implementations should be stateless and thread-safe.
type ContentConverter interface {
	// Parse decodes input into entry fields.
	// Returns an error if the file is malformed.
	Parse(ctx context.Context, input []byte) (*ParsedContent, error)

	// SupportedExtensions returns file extensions this converter handles.
	// Extensions should include the leading dot (e.g., [".html", ".htm"]).
	SupportedExtensions() []string

	// Name returns a human-readable converter name for logging/debugging.
	Name() string
}

// ImportService loads source files into a collection table
type ImportService interface {
	// ImportDir replaces the collection's entries with the files under dir
	ImportDir(ctx context.Context, collection, dir string) (*ImportResult, error)

	// ImportZip replaces the collection's entries with the files in a zip archive
	ImportZip(ctx context.Context, collection string, archive io.Reader) (*ImportResult, error)
}

// ImportResult represents the result of a bulk import operation
type ImportResult struct {
	Summary ImportSummary   `json:"summary"`
	Errors  []ImportError   `json:"errors"`
	Entries []ImportedEntry `json:"entries"`
}

// ImportSummary contains aggregate statistics for an import operation
type ImportSummary struct {
	Created    int `json:"created"`
	Skipped    int `json:"skipped"`
	Failed     int `json:"failed"`
	TotalFiles int `json:"total_files"`
}

// ImportError represents an error that occurred during import
type ImportError struct {
	File  string `json:"file"`
	Error string `json:"error"`
}

// ImportedEntry represents a stored entry
type ImportedEntry struct {
	ID   string `json:"id"`
	Path string `json:"path"`
	Stem string `json:"stem"`
}
