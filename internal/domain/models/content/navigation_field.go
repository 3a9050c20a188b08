package content

import (
	"encoding/json"
	"maps"
)

// NavigationState is the resolved form of a record's `navigation` value
type NavigationState int

const (
	// NavigationAbsent means the field was not set (visible by default)
	NavigationAbsent NavigationState = iota
	// NavigationDisabled means an explicitly falsy value: false, 0 or ""
	NavigationDisabled
	// NavigationEnabled means an explicitly truthy scalar
	NavigationEnabled
	// NavigationOverride means a mapping of fields merged into the generated node
	NavigationOverride
)

// NavigationField is the three-state navigation flag of a record.
// It is resolved once when a record is decoded.
type NavigationField struct {
	State     NavigationState
	Overrides map[string]any
	raw       any
}

// ParseNavigationField resolves a decoded JSON/YAML value using JavaScript
// truthiness rules: false, 0 and "" disable; mappings override; nil is absent.
func ParseNavigationField(v any) NavigationField {
	switch val := v.(type) {
	case nil:
		return NavigationField{State: NavigationAbsent}
	case bool:
		if !val {
			return NavigationField{State: NavigationDisabled, raw: val}
		}
	case string:
		if val == "" {
			return NavigationField{State: NavigationDisabled, raw: val}
		}
	case float64:
		if val == 0 {
			return NavigationField{State: NavigationDisabled, raw: val}
		}
	case int:
		if val == 0 {
			return NavigationField{State: NavigationDisabled, raw: val}
		}
	case int64:
		if val == 0 {
			return NavigationField{State: NavigationDisabled, raw: val}
		}
	case map[string]any:
		return NavigationField{State: NavigationOverride, Overrides: maps.Clone(val), raw: val}
	}
	return NavigationField{State: NavigationEnabled, raw: v}
}

// IsDisabled reports whether the value was explicitly falsy.
// An absent value never disables.
func (n NavigationField) IsDisabled() bool {
	return n.State == NavigationDisabled
}

// Raw returns the value the field was parsed from
func (n NavigationField) Raw() any {
	return n.raw
}

// MarshalJSON writes the original value back out
func (n NavigationField) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.raw)
}

// UnmarshalJSON decodes any JSON value and resolves its state
func (n *NavigationField) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = ParseNavigationField(v)
	return nil
}
