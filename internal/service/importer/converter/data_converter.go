package converter

import (
	"context"
	"encoding/json"
	"fmt"

	importSvc "contentnav/internal/domain/services/importer"

	"gopkg.in/yaml.v3"
)

// yamlConverter parses YAML data files such as `.navigation.yml`.
type yamlConverter struct{}

// NewYAMLConverter creates a new YAML data converter.
func NewYAMLConverter() importSvc.ContentConverter {
	return &yamlConverter{}
}

// Parse decodes a YAML mapping into entry fields.
func (c *yamlConverter) Parse(ctx context.Context, input []byte) (*importSvc.ParsedContent, error) {
	var data map[string]any
	if err := yaml.Unmarshal(input, &data); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return fromMetadata(data, ""), nil
}

// SupportedExtensions returns YAML file extensions.
func (c *yamlConverter) SupportedExtensions() []string {
	return []string{".yml", ".yaml"}
}

// Name returns the converter name for logging.
func (c *yamlConverter) Name() string {
	return "yaml"
}

// jsonConverter parses JSON data files.
type jsonConverter struct{}

// NewJSONConverter creates a new JSON data converter.
func NewJSONConverter() importSvc.ContentConverter {
	return &jsonConverter{}
}

// Parse decodes a JSON object into entry fields.
func (c *jsonConverter) Parse(ctx context.Context, input []byte) (*importSvc.ParsedContent, error) {
	var data map[string]any
	if err := json.Unmarshal(input, &data); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return fromMetadata(data, ""), nil
}

// SupportedExtensions returns JSON file extensions.
func (c *jsonConverter) SupportedExtensions() []string {
	return []string{".json"}
}

// Name returns the converter name for logging.
func (c *jsonConverter) Name() string {
	return "json"
}
