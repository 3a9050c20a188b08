package utils

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseFrontmatter splits YAML frontmatter from the markdown body of a file.
// Files without frontmatter return a nil map and the whole content as body.
// Expected format:
// ---
// title: Installation
// navigation:
//
//	icon: i-download
//
// ---
// # Markdown content here
func ParseFrontmatter(content []byte) (map[string]any, string, error) {
	// Check for frontmatter delimiters
	if !bytes.HasPrefix(content, []byte("---\n")) && !bytes.HasPrefix(content, []byte("---\r\n")) {
		return nil, string(content), nil
	}

	// Find the closing delimiter
	var closingDelim int
	lines := bytes.Split(content, []byte("\n"))

	// Skip the opening "---" line
	for i := 1; i < len(lines); i++ {
		line := bytes.TrimSpace(lines[i])
		if bytes.Equal(line, []byte("---")) {
			closingDelim = i
			break
		}
	}

	if closingDelim == 0 {
		return nil, "", errors.New("missing closing frontmatter delimiter '---'")
	}

	// Extract YAML content (between the delimiters)
	yamlContent := bytes.Join(lines[1:closingDelim], []byte("\n"))

	var metadata map[string]any
	if err := yaml.Unmarshal(yamlContent, &metadata); err != nil {
		return nil, "", fmt.Errorf("failed to parse YAML frontmatter: %w", err)
	}

	// Extract markdown content (everything after closing delimiter)
	markdownLines := lines[closingDelim+1:]
	markdownContent := string(bytes.Join(markdownLines, []byte("\n")))

	return metadata, markdownContent, nil
}
