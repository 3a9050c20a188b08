package converter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_GetConverter(t *testing.T) {
	registry := NewConverterRegistry()

	tests := []struct {
		ext  string
		want string
	}{
		{".md", "markdown"},
		{".MD", "markdown"},
		{".markdown", "markdown"},
		{".txt", "plaintext"},
		{".html", "html"},
		{".htm", "html"},
		{".yml", "yaml"},
		{".yaml", "yaml"},
		{".json", "json"},
	}
	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			c := registry.GetConverter(tt.ext)
			require.NotNil(t, c)
			assert.Equal(t, tt.want, c.Name())
		})
	}

	assert.Nil(t, registry.GetConverter(".pdf"))
	assert.Len(t, registry.SupportedExtensions(), 9)
}

func TestRegistry_ParseUnsupported(t *testing.T) {
	_, err := NewConverterRegistry().Parse(context.Background(), "doc.pdf", []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestMarkdownConverter(t *testing.T) {
	ctx := context.Background()
	c := NewMarkdownConverter()

	t.Run("frontmatter fields", func(t *testing.T) {
		input := "---\ntitle: Install\ndescription: Getting set up\nicon: i-download\nnavigation:\n  badge: new\n---\n# Heading\n\nBody"
		parsed, err := c.Parse(ctx, []byte(input))
		require.NoError(t, err)
		assert.Equal(t, "Install", parsed.Title)
		assert.Equal(t, "Getting set up", parsed.Description)
		assert.Equal(t, map[string]any{"badge": "new"}, parsed.Navigation)
		assert.Equal(t, map[string]any{"icon": "i-download"}, parsed.Meta)
		assert.Contains(t, parsed.Body, "# Heading")
	})

	t.Run("navigation false", func(t *testing.T) {
		parsed, err := c.Parse(ctx, []byte("---\nnavigation: false\n---\ntext"))
		require.NoError(t, err)
		assert.Equal(t, false, parsed.Navigation)
		assert.Nil(t, parsed.Meta)
	})

	t.Run("title from first heading", func(t *testing.T) {
		input := "```\n# not a heading\n```\n\n## Sub\n# Real Title\n"
		parsed, err := c.Parse(ctx, []byte(input))
		require.NoError(t, err)
		assert.Equal(t, "Real Title", parsed.Title)
		assert.Nil(t, parsed.Navigation)
	})

	t.Run("no title", func(t *testing.T) {
		parsed, err := c.Parse(ctx, []byte("just text"))
		require.NoError(t, err)
		assert.Empty(t, parsed.Title)
		assert.Equal(t, "just text", parsed.Body)
	})
}

func TestHTMLConverter(t *testing.T) {
	input := `<html><head><title>My &amp; Page</title></head>
<body><h1>Hello</h1><p onclick="steal()">World</p><script>alert(1)</script></body></html>`

	parsed, err := NewHTMLConverter().Parse(context.Background(), []byte(input))
	require.NoError(t, err)

	assert.Equal(t, "My & Page", parsed.Title)
	assert.Contains(t, parsed.Body, "# Hello")
	assert.Contains(t, parsed.Body, "World")
	assert.NotContains(t, parsed.Body, "alert")
	assert.NotContains(t, parsed.Body, "steal")
	assert.NotContains(t, parsed.Body, "My")
}

func TestHTMLConverter_HeadingFallback(t *testing.T) {
	parsed, err := NewHTMLConverter().Parse(context.Background(), []byte("<h1>Only Heading</h1>"))
	require.NoError(t, err)
	assert.Equal(t, "Only Heading", parsed.Title)
}

func TestDataConverters(t *testing.T) {
	ctx := context.Background()

	yml, err := NewYAMLConverter().Parse(ctx, []byte("title: API\nnavigation:\n  icon: i-code\norder: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, "API", yml.Title)
	assert.Equal(t, map[string]any{"icon": "i-code"}, yml.Navigation)
	assert.Equal(t, map[string]any{"order": 2}, yml.Meta)
	assert.Empty(t, yml.Body)

	js, err := NewJSONConverter().Parse(ctx, []byte(`{"title":"API","navigation":false,"order":2}`))
	require.NoError(t, err)
	assert.Equal(t, "API", js.Title)
	assert.Equal(t, false, js.Navigation)
	assert.Equal(t, map[string]any{"order": float64(2)}, js.Meta)

	_, err = NewYAMLConverter().Parse(ctx, []byte("title: [unclosed"))
	assert.Error(t, err)
	_, err = NewJSONConverter().Parse(ctx, []byte(`{"title":`))
	assert.Error(t, err)
}
