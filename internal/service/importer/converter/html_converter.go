package converter

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"golang.org/x/net/html"

	importSvc "contentnav/internal/domain/services/importer"
	"contentnav/internal/service/importer/converter/sanitizer"
)

// htmlConverter converts HTML pages to markdown entries.
// Implements a two-stage process:
// 1. Sanitize HTML to remove dangerous elements (XSS prevention)
// 2. Convert sanitized HTML to markdown
//
// The page title is read as plain text from <title> before sanitizing.
type htmlConverter struct {
	sanitizer *sanitizer.HTMLSanitizer
	converter *md.Converter
}

// NewHTMLConverter creates a new HTML to markdown converter.
func NewHTMLConverter() importSvc.ContentConverter {
	return &htmlConverter{
		sanitizer: sanitizer.NewHTMLSanitizer(),
		converter: md.NewConverter("", true, nil),
	}
}

// Parse extracts the title and converts the body to markdown.
func (c *htmlConverter) Parse(ctx context.Context, input []byte) (*importSvc.ParsedContent, error) {
	title, err := documentTitle(input)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	// Stage 1: Sanitize HTML (remove dangerous tags/attributes)
	sanitized := c.sanitizer.Sanitize(string(input))

	// Stage 2: Convert sanitized HTML to Markdown
	markdown, err := c.converter.ConvertString(sanitized)
	if err != nil {
		return nil, fmt.Errorf("failed to convert HTML to markdown: %w", err)
	}

	parsed := &importSvc.ParsedContent{
		Title: strings.TrimSpace(title),
		Body:  markdown,
	}
	if parsed.Title == "" {
		parsed.Title = firstHeading(markdown)
	}
	return parsed, nil
}

// SupportedExtensions returns HTML file extensions.
func (c *htmlConverter) SupportedExtensions() []string {
	return []string{".html", ".htm"}
}

// Name returns the converter name for logging.
func (c *htmlConverter) Name() string {
	return "html"
}

// documentTitle returns the text of the first <title> element
func documentTitle(input []byte) (string, error) {
	doc, err := html.Parse(bytes.NewReader(input))
	if err != nil {
		return "", err
	}

	var find func(n *html.Node) string
	find = func(n *html.Node) string {
		if n.Type == html.ElementNode && n.Data == "title" {
			var b strings.Builder
			for child := n.FirstChild; child != nil; child = child.NextSibling {
				if child.Type == html.TextNode {
					b.WriteString(child.Data)
				}
			}
			return b.String()
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			if title := find(child); title != "" {
				return title
			}
		}
		return ""
	}
	return find(doc), nil
}
