package converter

import (
	"bufio"
	"context"
	"strings"

	importSvc "contentnav/internal/domain/services/importer"
	"contentnav/internal/utils"
)

// markdownConverter parses markdown files with optional YAML frontmatter.
type markdownConverter struct{}

// NewMarkdownConverter creates a new markdown converter.
func NewMarkdownConverter() importSvc.ContentConverter {
	return &markdownConverter{}
}

// Parse splits frontmatter from the body. Without a frontmatter title the
// first level-one heading is used.
func (c *markdownConverter) Parse(ctx context.Context, input []byte) (*importSvc.ParsedContent, error) {
	metadata, body, err := utils.ParseFrontmatter(input)
	if err != nil {
		return nil, err
	}

	parsed := fromMetadata(metadata, body)
	if parsed.Title == "" {
		parsed.Title = firstHeading(body)
	}
	return parsed, nil
}

// SupportedExtensions returns markdown file extensions.
func (c *markdownConverter) SupportedExtensions() []string {
	return []string{".md", ".markdown"}
}

// Name returns the converter name for logging.
func (c *markdownConverter) Name() string {
	return "markdown"
}

// firstHeading returns the text of the first `# ` heading outside code fences
func firstHeading(body string) string {
	inFence := false
	scanner := bufio.NewScanner(strings.NewReader(body))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "```") {
			inFence = !inFence
			continue
		}
		if !inFence && strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(line[2:])
		}
	}
	return ""
}
