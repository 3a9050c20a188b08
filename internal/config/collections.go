package config

import (
	"fmt"
	"os"
	"regexp"

	models "contentnav/internal/domain/models/content"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

var (
	collectionNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
	tableNamePattern      = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// ContentConfig is the root of the collections YAML file:
//
//	collections:
//	  - name: docs
//	    source: content/docs
//	    type: page
//	    fields: [icon, description]
type ContentConfig struct {
	Collections []models.Collection `yaml:"collections"`
}

// LoadCollections reads and validates the collections file and assigns
// each collection its prefixed table name.
func LoadCollections(path, tablePrefix string) ([]models.Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content config: %w", err)
	}
	return ParseCollections(data, tablePrefix)
}

// ParseCollections parses collection definitions from YAML
func ParseCollections(data []byte, tablePrefix string) ([]models.Collection, error) {
	var cfg ContentConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse content config: %w", err)
	}

	seen := make(map[string]bool, len(cfg.Collections))
	for i := range cfg.Collections {
		c := &cfg.Collections[i]
		if c.Type == "" {
			c.Type = models.CollectionTypePage
		}
		if err := validateCollection(c); err != nil {
			return nil, fmt.Errorf("collection %d: %w", i, err)
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("collection %q defined twice", c.Name)
		}
		seen[c.Name] = true
		c.Table = TableName(tablePrefix, c.Name)
		if !tableNamePattern.MatchString(c.Table) {
			return nil, fmt.Errorf("collection %q: invalid table name %q", c.Name, c.Table)
		}
	}
	return cfg.Collections, nil
}

// TableName returns the backing table of a collection
func TableName(prefix, collection string) string {
	return fmt.Sprintf("%scontent_%s", prefix, collection)
}

func validateCollection(c *models.Collection) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Name, validation.Required, validation.Length(1, 48), validation.Match(collectionNamePattern)),
		validation.Field(&c.Type, validation.In(models.CollectionTypePage, models.CollectionTypeData)),
		validation.Field(&c.Fields, validation.Length(0, MaxExtraFields)),
	)
}
