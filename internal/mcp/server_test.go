package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	models "contentnav/internal/domain/models/content"
	navSvc "contentnav/internal/domain/services/navigation"
)

type fakeNavService struct {
	surroundReq *navSvc.SurroundRequest
	err         error
}

func (f *fakeNavService) GetNavigation(_ context.Context, req *navSvc.NavigationRequest) ([]*models.NavigationItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []*models.NavigationItem{{Title: "Guide", Path: "/guide", Stem: "1.guide/index"}}, nil
}

func (f *fakeNavService) GetSurround(_ context.Context, req *navSvc.SurroundRequest) ([]*models.NavigationItem, error) {
	f.surroundReq = req
	if f.err != nil {
		return nil, f.err
	}
	return make([]*models.NavigationItem, req.Before+req.After), nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestNewServer(t *testing.T) {
	s := NewServer(&fakeNavService{}, testLogger())
	require.NotNil(t, s)
	assert.NotNil(t, NewHTTPServer(s))
}

func TestNavigationHandler(t *testing.T) {
	handler := navigationHandler(&fakeNavService{}, testLogger())

	result, err := handler(context.Background(), mcp.CallToolRequest{}, NavigationArgs{Collection: "docs"})
	require.NoError(t, err)
	assert.False(t, result.IsError)

	var tree []map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &tree))
	require.Len(t, tree, 1)
	assert.Equal(t, "/guide", tree[0]["path"])
}

func TestSurroundHandler(t *testing.T) {
	nav := &fakeNavService{}
	handler := surroundHandler(nav, testLogger())
	two := 2

	result, err := handler(context.Background(), mcp.CallToolRequest{}, SurroundArgs{Collection: "docs", Path: "/guide", After: &two})
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, 1, nav.surroundReq.Before)
	assert.Equal(t, 2, nav.surroundReq.After)
	assert.JSONEq(t, "[null,null,null]", resultText(t, result))
}

func TestHandlerValidation(t *testing.T) {
	ctx := context.Background()
	nav := &fakeNavService{}

	tests := []struct {
		name string
		call func() (*mcp.CallToolResult, error)
		want string
	}{
		{
			name: "navigation without collection",
			call: func() (*mcp.CallToolResult, error) {
				return navigationHandler(nav, testLogger())(ctx, mcp.CallToolRequest{}, NavigationArgs{})
			},
			want: "collection is required",
		},
		{
			name: "surround without path",
			call: func() (*mcp.CallToolResult, error) {
				return surroundHandler(nav, testLogger())(ctx, mcp.CallToolRequest{}, SurroundArgs{Collection: "docs"})
			},
			want: "path is required",
		},
		{
			name: "service error",
			call: func() (*mcp.CallToolResult, error) {
				failing := &fakeNavService{err: errors.New("collection blog not found")}
				return navigationHandler(failing, testLogger())(ctx, mcp.CallToolRequest{}, NavigationArgs{Collection: "blog"})
			},
			want: "collection blog not found",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.call()
			require.NoError(t, err)
			assert.True(t, result.IsError)
			assert.Contains(t, resultText(t, result), tt.want)
		})
	}
}
