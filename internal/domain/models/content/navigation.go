package content

import "encoding/json"

// NavigationItem is one node of the navigation tree
type NavigationItem struct {
	Title    string            `json:"title"`
	Path     string            `json:"path"`
	Stem     string            `json:"stem"`
	Children []*NavigationItem `json:"children,omitempty"`
	// Page is nil for nodes backed by a real record and false for synthetic containers
	Page *bool `json:"page,omitempty"`
	// Fields holds projected and override fields, serialized at the top level
	Fields map[string]any `json:"-"`
}

// IsContainer reports whether the node is a synthetic directory container
func (n *NavigationItem) IsContainer() bool {
	return n.Page != nil && !*n.Page
}

// MarshalJSON flattens Fields into the object, same as the rest of the node's keys.
// Field values win over the typed members, matching merge order at build time.
func (n NavigationItem) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(n.Fields)+5)
	m["title"] = n.Title
	m["path"] = n.Path
	m["stem"] = n.Stem
	if n.Children != nil {
		m["children"] = n.Children
	}
	if n.Page != nil {
		m["page"] = *n.Page
	}
	for k, v := range n.Fields {
		switch k {
		case "children", "page":
			continue
		}
		m[k] = v
	}
	return json.Marshal(m)
}

// UnmarshalJSON reads the flattened form written by MarshalJSON
func (n *NavigationItem) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var item NavigationItem
	for k, v := range raw {
		var err error
		switch k {
		case "title":
			err = json.Unmarshal(v, &item.Title)
		case "path":
			err = json.Unmarshal(v, &item.Path)
		case "stem":
			err = json.Unmarshal(v, &item.Stem)
		case "children":
			err = json.Unmarshal(v, &item.Children)
		case "page":
			err = json.Unmarshal(v, &item.Page)
		default:
			var val any
			if err = json.Unmarshal(v, &val); err == nil {
				if item.Fields == nil {
					item.Fields = make(map[string]any)
				}
				item.Fields[k] = val
			}
		}
		if err != nil {
			return err
		}
	}
	*n = item
	return nil
}
