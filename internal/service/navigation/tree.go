package navigation

import (
	"strings"

	models "contentnav/internal/domain/models/content"
)

// GenerateNavigationTree builds the sorted, pruned navigation forest for a
// set of records ordered by stem.
func GenerateNavigationTree(records []models.Record, extraFields []string) []*models.NavigationItem {
	return SortAndPrune(BuildTree(records, extraFields))
}

// BuildTree folds page records and directory configs into an unsorted forest.
// Records under a hidden directory are dropped without leaving containers behind.
func BuildTree(records []models.Record, extraFields []string) []*models.NavigationItem {
	p := PartitionRecords(records)
	forest := make([]*models.NavigationItem, 0, len(p.Contents))
	for _, rec := range p.Contents {
		forest = placeRecord(forest, rec, p, extraFields)
	}
	return forest
}

// placeRecord adds one page record to the forest and returns the new forest
func placeRecord(forest []*models.NavigationItem, rec models.Record, p Partition, extraFields []string) []*models.NavigationItem {
	parts := pathSegments(rec.Path)
	stemParts := strings.Split(rec.Stem, "/")

	item, ok := recordItem(rec, stemParts, p, extraFields)
	if !ok {
		return forest
	}

	if len(parts) == 1 {
		return insertItem(forest, item)
	}

	dirs := parts[:len(parts)-1]
	for i := range dirs {
		if p.disabled(partialPath(dirs, i)) {
			return forest
		}
	}
	return placeItem(forest, dirs, 0, item, strings.Join(stemParts, "/"), p, extraFields)
}

// recordItem builds the node for a page record. Index pages pick up their
// directory config and carry a duplicate of themselves as first child.
// It reports false when the record's directory is hidden.
func recordItem(rec models.Record, stemParts []string, p Partition, extraFields []string) (*models.NavigationItem, bool) {
	fields := navigationFields(rec, extraFields)
	if !isIndexStem(stemParts) {
		return newItem(rec.Title, rec.Path, rec.Stem, fields), true
	}

	base := newItem(rec.Title, rec.Path, rec.Stem, fields)
	conf, hasConf := p.Config(base.Path)
	if hasConf && conf.Navigation.IsDisabled() {
		return nil, false
	}

	item := base
	if hasConf {
		item = newItem(rec.Title, rec.Path, rec.Stem, mergeFields(fields, navigationFields(conf, extraFields)))
	}
	if rec.Path != "/" {
		item.Children = append(item.Children, newItem(rec.Title, rec.Path, rec.Stem, fields))
	}
	return item, true
}

// placeItem walks dirs from depth downward through level, reusing or
// synthesizing a container per directory, and appends item to the deepest one.
func placeItem(
	level []*models.NavigationItem,
	dirs []string,
	depth int,
	item *models.NavigationItem,
	stem string,
	p Partition,
	extraFields []string,
) []*models.NavigationItem {
	current := partialPath(dirs, depth)

	parent := findByPath(level, current)
	if parent == nil {
		parent = newContainer(dirs[depth], current, stem, p, extraFields)
		level = append(level, parent)
	} else if parent.IsContainer() && stemBefore(stem, parent.Stem) {
		// containers keep the lowest stem of their records in sibling order
		parent.Stem = stem
	}

	if depth == len(dirs)-1 {
		parent.Children = insertItem(parent.Children, item)
	} else {
		parent.Children = placeItem(parent.Children, dirs, depth+1, item, stem, p, extraFields)
	}
	return level
}

// stemBefore reports whether a sorts before b under the sibling collator
func stemBefore(a, b string) bool {
	return newCollator().CompareString(a, b) < 0
}

// newContainer synthesizes a directory node that has no page of its own
func newContainer(segment, path, stem string, p Partition, extraFields []string) *models.NavigationItem {
	var fields map[string]any
	if conf, ok := p.Config(path); ok {
		fields = navigationFields(conf, extraFields)
	}
	container := newItem(GenerateTitle(segment), path, stem, fields)
	if container.Page == nil {
		page := false
		container.Page = &page
	}
	return container
}

// insertItem appends item to level. A synthetic container already standing
// in for the item's path is replaced by the item, which adopts its children,
// so the result does not depend on whether the index page came first.
func insertItem(level []*models.NavigationItem, item *models.NavigationItem) []*models.NavigationItem {
	for i, existing := range level {
		if existing.Path == item.Path && existing.IsContainer() && !item.IsContainer() {
			item.Children = append(item.Children, existing.Children...)
			level[i] = item
			return level
		}
	}
	return append(level, item)
}

func findByPath(level []*models.NavigationItem, path string) *models.NavigationItem {
	for _, n := range level {
		if n.Path == path {
			return n
		}
	}
	return nil
}

func partialPath(dirs []string, depth int) string {
	return "/" + strings.Join(dirs[:depth+1], "/")
}
