package navigation

import models "contentnav/internal/domain/models/content"

// Flatten lists the visible nodes of a forest in depth-first pre-order.
// Synthetic containers are skipped but their children are kept; emitted
// nodes are copies without children.
func Flatten(items []*models.NavigationItem) []*models.NavigationItem {
	var flat []*models.NavigationItem
	for _, item := range items {
		if !item.IsContainer() {
			leaf := *item
			leaf.Children = nil
			flat = append(flat, &leaf)
		}
		if len(item.Children) > 0 {
			flat = append(flat, Flatten(item.Children)...)
		}
	}
	return flat
}
