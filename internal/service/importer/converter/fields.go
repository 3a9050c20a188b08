package converter

import (
	"maps"

	importSvc "contentnav/internal/domain/services/importer"
)

// fromMetadata moves the well-known keys of a frontmatter or data map onto
// parsed content; everything else stays in Meta.
func fromMetadata(metadata map[string]any, body string) *importSvc.ParsedContent {
	parsed := &importSvc.ParsedContent{Body: body}
	meta := maps.Clone(metadata)
	if meta == nil {
		meta = make(map[string]any)
	}

	if title, ok := meta["title"].(string); ok {
		parsed.Title = title
		delete(meta, "title")
	}
	if description, ok := meta["description"].(string); ok {
		parsed.Description = description
		delete(meta, "description")
	}
	if navigation, ok := meta["navigation"]; ok {
		parsed.Navigation = navigation
		delete(meta, "navigation")
	}

	if len(meta) > 0 {
		parsed.Meta = meta
	}
	return parsed
}
