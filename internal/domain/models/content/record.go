package content

// MarkerSegment is the reserved last stem segment identifying a directory config record
const MarkerSegment = ".navigation"

// Record is one content unit as returned by the query layer.
// Records are read-only snapshots; nothing downstream mutates them.
type Record struct {
	ID         string          `json:"id,omitempty"`
	Path       string          `json:"path"`
	Stem       string          `json:"stem"`
	Title      string          `json:"title,omitempty"`
	Navigation NavigationField `json:"navigation"`
	// Fields holds every other selected column or meta key, keyed by field name
	Fields map[string]any `json:"fields,omitempty"`
}

// Value returns a field of the record by name. Typed members are addressed
// by their column names; everything else is looked up in Fields.
// An empty title counts as undefined.
func (r Record) Value(key string) (any, bool) {
	switch key {
	case "title":
		if r.Title == "" {
			return nil, false
		}
		return r.Title, true
	case "path":
		return r.Path, r.Path != ""
	case "stem":
		return r.Stem, r.Stem != ""
	case "navigation":
		if r.Navigation.State == NavigationAbsent {
			return nil, false
		}
		return r.Navigation.Raw(), true
	}
	v, ok := r.Fields[key]
	return v, ok
}
