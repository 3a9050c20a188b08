package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	models "contentnav/internal/domain/models/content"
	navSvc "contentnav/internal/domain/services/navigation"
)

const (
	Version = "0.1.0"
	// EndpointPath is where the streamable HTTP transport is mounted
	EndpointPath = "/mcp"
)

type NavigationArgs struct {
	Collection string   `json:"collection"`       // The collection to build the tree for
	Fields     []string `json:"fields,omitempty"` // Extra fields copied onto each node
}

type SurroundArgs struct {
	Collection string   `json:"collection"`
	Path       string   `json:"path"`
	Before     *int     `json:"before,omitempty"` // Defaults to 1
	After      *int     `json:"after,omitempty"`  // Defaults to 1
	Fields     []string `json:"fields,omitempty"`
}

// NewServer creates an MCP server exposing the navigation and surround tools
func NewServer(navService navSvc.NavigationService, logger *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer(
		"Content Navigation MCP",
		Version,
		server.WithToolCapabilities(false),
	)

	navigationTool := mcp.NewTool("navigation",
		mcp.WithDescription("Get the navigation tree of a content collection"),
		mcp.WithString("collection",
			mcp.Required(),
			mcp.Description("The collection name, e.g. 'docs'"),
		),
		mcp.WithArray("fields",
			mcp.Description("Extra fields to copy onto each navigation node"),
			mcp.Items(map[string]any{"type": "string"}),
		),
	)
	s.AddTool(navigationTool, mcp.NewTypedToolHandler(navigationHandler(navService, logger)))

	surroundTool := mcp.NewTool("surround",
		mcp.WithDescription("Get the pages before and after a path in reading order; missing neighbors are null"),
		mcp.WithString("collection",
			mcp.Required(),
			mcp.Description("The collection name, e.g. 'docs'"),
		),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("The page path, e.g. '/guide/install'"),
		),
		mcp.WithNumber("before",
			mcp.Description("How many preceding pages to return (default 1)"),
		),
		mcp.WithNumber("after",
			mcp.Description("How many following pages to return (default 1)"),
		),
		mcp.WithArray("fields",
			mcp.Description("Extra fields to copy onto each page"),
			mcp.Items(map[string]any{"type": "string"}),
		),
	)
	s.AddTool(surroundTool, mcp.NewTypedToolHandler(surroundHandler(navService, logger)))

	return s
}

// NewHTTPServer wraps the MCP server in the streamable HTTP transport
func NewHTTPServer(s *server.MCPServer) *server.StreamableHTTPServer {
	return server.NewStreamableHTTPServer(s, server.WithEndpointPath(EndpointPath))
}

func navigationHandler(navService navSvc.NavigationService, logger *slog.Logger) func(ctx context.Context, request mcp.CallToolRequest, args NavigationArgs) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args NavigationArgs) (*mcp.CallToolResult, error) {
		if args.Collection == "" {
			return mcp.NewToolResultError("collection is required"), nil
		}

		tree, err := navService.GetNavigation(ctx, &navSvc.NavigationRequest{
			Collection: args.Collection,
			Fields:     args.Fields,
		})
		if err != nil {
			logger.Warn("navigation tool failed", "collection", args.Collection, "error", err)
			return mcp.NewToolResultError(fmt.Sprintf("failed to build navigation: %v", err)), nil
		}
		if tree == nil {
			tree = []*models.NavigationItem{}
		}

		return jsonResult(tree)
	}
}

func surroundHandler(navService navSvc.NavigationService, logger *slog.Logger) func(ctx context.Context, request mcp.CallToolRequest, args SurroundArgs) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args SurroundArgs) (*mcp.CallToolResult, error) {
		if args.Collection == "" {
			return mcp.NewToolResultError("collection is required"), nil
		}
		if args.Path == "" {
			return mcp.NewToolResultError("path is required"), nil
		}

		opts := models.DefaultSurroundOptions()
		if args.Before != nil {
			opts.Before = *args.Before
		}
		if args.After != nil {
			opts.After = *args.After
		}

		window, err := navService.GetSurround(ctx, &navSvc.SurroundRequest{
			Collection: args.Collection,
			Path:       args.Path,
			Before:     opts.Before,
			After:      opts.After,
			Fields:     args.Fields,
		})
		if err != nil {
			logger.Warn("surround tool failed", "collection", args.Collection, "path", args.Path, "error", err)
			return mcp.NewToolResultError(fmt.Sprintf("failed to get surround: %v", err)), nil
		}

		return jsonResult(window)
	}
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	responseBytes, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseBytes)), nil
}
