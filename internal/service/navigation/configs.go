package navigation

import (
	"maps"
	"strings"

	models "contentnav/internal/domain/models/content"
)

// Partition separates page records from directory config records
type Partition struct {
	// Configs maps a directory path to its `.navigation` record
	Configs map[string]models.Record
	// Contents holds page records in input order
	Contents []models.Record
}

// Config returns the directory config for path, if any
func (p Partition) Config(path string) (models.Record, bool) {
	conf, ok := p.Configs[path]
	return conf, ok
}

// disabled reports whether the directory at path is hidden by its config
func (p Partition) disabled(path string) bool {
	conf, ok := p.Configs[path]
	return ok && conf.Navigation.IsDisabled()
}

// PartitionRecords splits records into directory configs and page contents.
// A later config for the same directory replaces an earlier one.
func PartitionRecords(records []models.Record) Partition {
	p := Partition{
		Configs:  make(map[string]models.Record),
		Contents: make([]models.Record, 0, len(records)),
	}
	for _, rec := range records {
		if !isDirectoryConfig(rec) {
			p.Contents = append(p.Contents, rec)
			continue
		}
		p.Configs[configKey(rec.Path)] = resolveConfig(rec)
	}
	return p
}

func isDirectoryConfig(rec models.Record) bool {
	segments := strings.Split(rec.Stem, "/")
	return segments[len(segments)-1] == models.MarkerSegment
}

// resolveConfig returns a copy of a marker record with its default title
// cleared and its body fields spread over the record.
func resolveConfig(rec models.Record) models.Record {
	conf := rec
	if strings.ToLower(conf.Title) == "navigation" {
		conf.Title = ""
	}

	body, ok := rec.Fields["body"].(map[string]any)
	if !ok {
		return conf
	}
	conf.Fields = maps.Clone(rec.Fields)
	for k, v := range body {
		switch k {
		case "title":
			if s, ok := v.(string); ok {
				conf.Title = s
				continue
			}
		case "navigation":
			conf.Navigation = models.ParseNavigationField(v)
			continue
		}
		conf.Fields[k] = v
	}
	return conf
}
