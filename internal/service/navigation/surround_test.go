package navigation

import (
	"testing"

	models "contentnav/internal/domain/models/content"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatItems(paths ...string) []*models.NavigationItem {
	items := make([]*models.NavigationItem, len(paths))
	for i, p := range paths {
		items[i] = &models.NavigationItem{Path: p, Stem: p[1:], Title: p[1:]}
	}
	return items
}

func windowPaths(window []*models.NavigationItem) []string {
	out := make([]string, len(window))
	for i, item := range window {
		if item != nil {
			out[i] = item.Path
		}
	}
	return out
}

func TestFlatten(t *testing.T) {
	tree := GenerateNavigationTree([]models.Record{
		page("/guide", "1.guide/index", "Guide"),
		page("/guide/install", "1.guide/2.install", "Install"),
		page("/api/auth", "2.api/1.auth", "Auth"),
		page("/api/users", "2.api/2.users", "Users"),
	}, nil)

	flat := Flatten(tree)

	assert.Equal(t, []string{"/guide", "/guide/install", "/guide", "/api/auth", "/api/users"}, windowPaths(flat))
	for _, item := range flat {
		assert.False(t, item.IsContainer(), "container %s emitted", item.Path)
		assert.Nil(t, item.Children)
	}
	// tree nodes keep their children
	assert.Len(t, tree[0].Children, 2)
}

func TestSurround(t *testing.T) {
	flat := flatItems("/a", "/b", "/c", "/d", "/e")

	tests := []struct {
		name   string
		path   string
		before int
		after  int
		want   []string
	}{
		{name: "middle", path: "/c", before: 1, after: 1, want: []string{"/b", "/d"}},
		{name: "first item", path: "/a", before: 1, after: 1, want: []string{"", "/b"}},
		{name: "last item", path: "/e", before: 1, after: 1, want: []string{"/d", ""}},
		{name: "wider than available before", path: "/b", before: 3, after: 0, want: []string{"", "", "/a"}},
		{name: "wider than available after", path: "/d", before: 0, after: 3, want: []string{"/e", "", ""}},
		{name: "wide both sides", path: "/c", before: 2, after: 2, want: []string{"/a", "/b", "/d", "/e"}},
		{name: "empty window", path: "/c", before: 0, after: 0, want: []string{}},
		{name: "negative counts clamp to zero", path: "/c", before: -2, after: 1, want: []string{"/d"}},
		{name: "unknown path acts as index -1", path: "/missing", before: 1, after: 1, want: []string{"/d", "/a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, windowPaths(Surround(flat, tt.path, tt.before, tt.after)))
		})
	}
}

func TestSurround_FirstItemOfTree(t *testing.T) {
	flat := Flatten(GenerateNavigationTree(guideRecords(), nil))

	window := Surround(flat, "/guide", 1, 1)

	require.Len(t, window, 2)
	assert.Nil(t, window[0])
	require.NotNil(t, window[1])
	assert.Equal(t, "/guide/install", window[1].Path)
}

func TestSurround_WindowShape(t *testing.T) {
	paths := []string{"/a", "/b", "/c", "/d", "/e"}
	flat := flatItems(paths...)
	targets := append(paths, "/missing")

	for _, target := range targets {
		for before := 0; before <= 6; before++ {
			for after := 0; after <= 6; after++ {
				window := Surround(flat, target, before, after)
				require.Len(t, window, before+after, "path=%s before=%d after=%d", target, before, after)

				// nils only at the far edges
				seen := false
				for _, item := range window[:before] {
					if item != nil {
						seen = true
					} else {
						assert.False(t, seen, "nil after real entry on before side: path=%s before=%d", target, before)
					}
				}
				gap := false
				for _, item := range window[before:] {
					if item == nil {
						gap = true
					} else {
						assert.False(t, gap, "real entry after nil on after side: path=%s after=%d", target, after)
					}
				}
			}
		}
	}
}

func TestSurround_Empty(t *testing.T) {
	window := Surround(nil, "/a", 1, 1)
	assert.Equal(t, []*models.NavigationItem{nil, nil}, window)
}
