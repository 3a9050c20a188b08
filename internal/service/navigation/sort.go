package navigation

import (
	"slices"

	models "contentnav/internal/domain/models/content"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// newCollator returns a numeric-aware collator that ignores case and accents.
// Collators are not safe for concurrent use; build one per call.
func newCollator() *collate.Collator {
	return collate.New(language.Und, collate.Numeric, collate.Loose)
}

// SortAndPrune sorts every level of the forest by stem and removes empty
// children lists. It returns new nodes and leaves its input untouched,
// so applying it twice yields the same forest.
func SortAndPrune(items []*models.NavigationItem) []*models.NavigationItem {
	return sortLevel(items, newCollator())
}

func sortLevel(items []*models.NavigationItem, c *collate.Collator) []*models.NavigationItem {
	sorted := make([]*models.NavigationItem, len(items))
	for i, item := range items {
		node := *item
		if len(node.Children) > 0 {
			node.Children = sortLevel(node.Children, c)
		} else {
			node.Children = nil
		}
		sorted[i] = &node
	}
	slices.SortStableFunc(sorted, func(a, b *models.NavigationItem) int {
		return c.CompareString(a.Stem, b.Stem)
	})
	return sorted
}
