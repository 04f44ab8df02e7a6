package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for quickfind resources.
const uriScheme = "quickfind://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "workspaces",
		Name:        "workspaces",
		Description: "Workspaces the session can search",
		MIMEType:    "application/json",
	}, s.handleWorkspacesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "workspaces/{workspaceId}/last-search",
		Name:        "last-search",
		Description: "The cached last search of a workspace",
		MIMEType:    "application/json",
	}, s.handleLastSearchResource)
}

// handleWorkspacesResource lists the searchable workspaces.
func (s *Server) handleWorkspacesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	workspaces, err := s.ports.Search.Workspaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing workspaces: %w", err)
	}
	return jsonResource(req.Params.URI, workspaces)
}

// handleLastSearchResource returns a workspace's cached last search.
func (s *Server) handleLastSearchResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	workspaceID := extractWorkspaceID(req.Params.URI)
	if workspaceID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	cache, err := s.ports.Search.LastSearch(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("reading last search: %w", err)
	}
	if cache == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	return jsonResource(req.Params.URI, cache)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractWorkspaceID extracts the id from quickfind://workspaces/{workspaceId}/last-search.
func extractWorkspaceID(uri string) string {
	const prefix = uriScheme + "workspaces/"
	const suffix = "/last-search"

	if !strings.HasPrefix(uri, prefix) || !strings.HasSuffix(uri, suffix) {
		return ""
	}
	id := strings.TrimSuffix(strings.TrimPrefix(uri, prefix), suffix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
