package navigation

import (
	"maps"

	models "contentnav/internal/domain/models/content"
)

// PickFields projects the given keys from a record into a new map.
// Undefined values are dropped.
func PickFields(record models.Record, keys []string) map[string]any {
	picked := make(map[string]any, len(keys))
	for _, key := range keys {
		if v, ok := record.Value(key); ok {
			picked[key] = v
		}
	}
	return picked
}

// navigationFields returns the fields a record contributes to its node:
// the title and requested extra fields, overridden by the record's own
// `navigation` mapping when it has one.
func navigationFields(record models.Record, extraFields []string) map[string]any {
	keys := make([]string, 0, len(extraFields)+1)
	keys = append(keys, "title")
	keys = append(keys, extraFields...)
	return mergeFields(PickFields(record, keys), record.Navigation.Overrides)
}

// mergeFields applies sources left to right into a new map; later sources win
func mergeFields(sources ...map[string]any) map[string]any {
	merged := make(map[string]any)
	for _, src := range sources {
		maps.Copy(merged, src)
	}
	return merged
}

// newItem builds a node from its defaults and a merged field set.
// String title/path/stem fields replace the defaults; `children` is reserved.
func newItem(title, path, stem string, fields map[string]any) *models.NavigationItem {
	item := &models.NavigationItem{
		Title:    title,
		Path:     path,
		Stem:     stem,
		Children: []*models.NavigationItem{},
	}
	rest := make(map[string]any, len(fields))
	for k, v := range fields {
		switch k {
		case "title":
			if s, ok := v.(string); ok {
				item.Title = s
				continue
			}
		case "path":
			if s, ok := v.(string); ok {
				item.Path = s
				continue
			}
		case "stem":
			if s, ok := v.(string); ok {
				item.Stem = s
				continue
			}
		case "page":
			if b, ok := v.(bool); ok {
				item.Page = &b
				continue
			}
		case "children":
			continue
		}
		rest[k] = v
	}
	if len(rest) > 0 {
		item.Fields = rest
	}
	return item
}
