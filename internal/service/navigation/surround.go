package navigation

import models "contentnav/internal/domain/models/content"

// Surround returns the `before` nodes preceding path and the `after` nodes
// following it in the flattened sequence. The result always has
// before+after entries; missing neighbors are nil at the far edges.
//
// An unknown path is treated as index -1, which yields a window built from
// the end and the start of the sequence rather than an error. A known path
// near the start keeps every real predecessor it has.
func Surround(flat []*models.NavigationItem, path string, before, after int) []*models.NavigationItem {
	before = max(before, 0)
	after = max(after, 0)

	index := -1
	for i, item := range flat {
		if item.Path == path {
			index = i
			break
		}
	}

	start := index - before
	if index >= 0 {
		start = max(start, 0)
	}
	lo, hi := sliceBounds(len(flat), start, index)
	beforeItems := flat[lo:hi]
	lo, hi = sliceBounds(len(flat), index+1, index+after+1)
	afterItems := flat[lo:hi]

	window := make([]*models.NavigationItem, before+after)
	// right-align the preceding items so padding sits at the far (left) edge
	copy(window[before-min(len(beforeItems), before):before], beforeItems[max(len(beforeItems)-before, 0):])
	copy(window[before:], afterItems[:min(len(afterItems), after)])
	return window
}

// sliceBounds resolves start/end the way Array.prototype.slice does:
// negative offsets count from the end and bounds are clamped.
func sliceBounds(length, start, end int) (int, int) {
	lo, hi := clampIndex(length, start), clampIndex(length, end)
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

func clampIndex(length, i int) int {
	if i < 0 {
		return max(length+i, 0)
	}
	return min(i, length)
}
