package content

// CollectionType distinguishes page collections (navigable) from data collections
type CollectionType string

const (
	CollectionTypePage CollectionType = "page"
	CollectionTypeData CollectionType = "data"
)

// DefaultJSONFields are the columns stored as JSON text in every collection table
var DefaultJSONFields = []string{"navigation", "meta"}

// Collection describes one content collection and its backing table
type Collection struct {
	Name   string         `yaml:"name" json:"name"`
	Source string         `yaml:"source" json:"source"`
	Type   CollectionType `yaml:"type" json:"type"`
	// Fields lists meta keys callers may project into navigation items
	Fields     []string `yaml:"fields" json:"fields,omitempty"`
	JSONFields []string `yaml:"json_fields" json:"json_fields,omitempty"`
	Table      string   `yaml:"-" json:"-"`
}

// IsJSONField reports whether the named column holds JSON text
func (c *Collection) IsJSONField(name string) bool {
	fields := c.JSONFields
	if len(fields) == 0 {
		fields = DefaultJSONFields
	}
	for _, f := range fields {
		if f == name {
			return true
		}
	}
	return false
}
