package content

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigationItem_MarshalJSON(t *testing.T) {
	page := false
	item := NavigationItem{
		Title: "Guide",
		Path:  "/guide",
		Stem:  "1.guide",
		Page:  &page,
		Children: []*NavigationItem{
			{Title: "Install", Path: "/guide/install", Stem: "1.guide/1.install", Fields: map[string]any{"icon": "i-download"}},
		},
		Fields: map[string]any{"badge": "new", "page": true},
	}

	out, err := json.Marshal(item)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"title": "Guide",
		"path": "/guide",
		"stem": "1.guide",
		"page": false,
		"badge": "new",
		"children": [
			{"title": "Install", "path": "/guide/install", "stem": "1.guide/1.install", "icon": "i-download"}
		]
	}`, string(out))
}

func TestNavigationItem_UnmarshalJSON(t *testing.T) {
	var item NavigationItem
	err := json.Unmarshal([]byte(`{"title":"Guide","path":"/guide","stem":"1.guide","page":false,"badge":"new","children":[{"title":"A","path":"/a","stem":"a"}]}`), &item)
	require.NoError(t, err)

	assert.Equal(t, "Guide", item.Title)
	assert.True(t, item.IsContainer())
	assert.Equal(t, map[string]any{"badge": "new"}, item.Fields)
	require.Len(t, item.Children, 1)
	assert.Equal(t, "/a", item.Children[0].Path)
	assert.Nil(t, item.Children[0].Fields)
}

func TestSurroundWindowJSON(t *testing.T) {
	window := []*NavigationItem{nil, {Title: "Next", Path: "/next", Stem: "next"}}

	out, err := json.Marshal(window)
	require.NoError(t, err)
	assert.JSONEq(t, `[null, {"title":"Next","path":"/next","stem":"next"}]`, string(out))
}
