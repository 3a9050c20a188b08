package converter

import (
	"context"

	importSvc "contentnav/internal/domain/services/importer"
)

// textConverter imports plain text files as markdown bodies.
// Since plain text is valid markdown, this is effectively a passthrough.
type textConverter struct{}

// NewTextConverter creates a new text converter.
func NewTextConverter() importSvc.ContentConverter {
	return &textConverter{}
}

// Parse returns the input as the body.
func (c *textConverter) Parse(ctx context.Context, input []byte) (*importSvc.ParsedContent, error) {
	return &importSvc.ParsedContent{Body: string(input)}, nil
}

// SupportedExtensions returns text file extensions.
func (c *textConverter) SupportedExtensions() []string {
	return []string{".txt", ".text"}
}

// Name returns the converter name for logging.
func (c *textConverter) Name() string {
	return "plaintext"
}
