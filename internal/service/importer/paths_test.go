package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentPath(t *testing.T) {
	tests := []struct {
		stem string
		want string
	}{
		{"index", "/"},
		{"1.index", "/"},
		{"about", "/about"},
		{"1.guide/index", "/guide"},
		{"1.guide/2.install", "/guide/install"},
		{"1.guide/.navigation", "/guide/.navigation"},
		{".navigation", "/.navigation"},
		{"Getting Started/First Steps", "/getting-started/first-steps"},
		{"café/crème", "/cafe/creme"},
		{"guide/index/extra", "/guide/index/extra"},
		{"10.changelog", "/changelog"},
	}
	for _, tt := range tests {
		t.Run(tt.stem, func(t *testing.T) {
			assert.Equal(t, tt.want, ContentPath(tt.stem))
		})
	}
}

func TestStemAndExtension(t *testing.T) {
	assert.Equal(t, "1.guide/2.install", Stem("1.guide/2.install.md"))
	assert.Equal(t, "1.guide/.navigation", Stem("1.guide/.navigation.yml"))
	assert.Equal(t, "md", Extension("a/B.MD"))
	assert.Equal(t, "", Extension("README"))
}

func TestIsHidden(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"guide/install.md", false},
		{"guide/.navigation.yml", false},
		{".navigation.yaml", false},
		{".DS_Store", true},
		{".git/config", true},
		{"guide/.drafts/wip.md", true},
		{".navigation/page.md", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, isHidden(tt.path))
		})
	}
}
