package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/quickfind/internal/core/domain"
)

// SearchInput is the input schema for the search_workspace tool.
type SearchInput struct {
	Query       string `json:"query" jsonschema:"the search query; empty lists recently created pages"`
	Sort        string `json:"sort,omitempty" jsonschema:"relevance, last_edited or created"`
	OnlyTitles  bool   `json:"only_titles,omitempty" jsonschema:"match page titles only"`
	WorkspaceID string `json:"workspace_id,omitempty" jsonschema:"workspace to search; defaults to the configured one"`
}

// SearchOutput is the output schema for the search_workspace tool.
type SearchOutput struct {
	Items []ItemOutput `json:"items"`
	Count int          `json:"count"`
	Total int          `json:"total"`
}

// ItemOutput is one search result. Title and text keep the highlight tags.
type ItemOutput struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Text       string `json:"text,omitempty"`
	Breadcrumb string `json:"breadcrumb,omitempty"`
	URL        string `json:"url"`
	Kind       string `json:"kind"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_workspace",
		Description: "Search pages and blocks in the Notion workspace",
	}, s.handleSearch)
}

// handleSearch handles the search_workspace tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	settings, err := s.ports.Settings.Get()
	if err != nil {
		return nil, SearchOutput{}, fmt.Errorf("loading settings: %w", err)
	}

	opts := settings.SearchOptions()
	// Tool calls must not replace the user's cached interactive search.
	opts.SaveToCache = false
	if input.WorkspaceID != "" {
		opts.WorkspaceID = input.WorkspaceID
	}
	if opts.WorkspaceID == "" {
		return nil, SearchOutput{}, ErrNoWorkspace
	}
	if input.Sort != "" {
		sortBy := domain.SortBy(input.Sort)
		if !sortBy.IsValid() {
			return nil, SearchOutput{}, fmt.Errorf("%w: unknown sort %q", domain.ErrInvalidInput, input.Sort)
		}
		opts.Sort = sortBy
	}
	if input.OnlyTitles {
		opts.OnlyTitles = true
	}

	result, err := s.ports.Search.Search(ctx, input.Query, opts)
	if err != nil {
		return nil, SearchOutput{}, fmt.Errorf("%s: %w", domain.UserMessage(err), err)
	}

	output := SearchOutput{Items: []ItemOutput{}}
	if result != nil {
		output.Total = result.Total
		output.Items = make([]ItemOutput, len(result.Items))
		for i := range result.Items {
			output.Items[i] = toItemOutput(&result.Items[i])
		}
	}
	output.Count = len(output.Items)

	return nil, output, nil
}

func toItemOutput(item *domain.Item) ItemOutput {
	return ItemOutput{
		ID:         item.Record.ID,
		Title:      item.Title,
		Text:       item.Text,
		Breadcrumb: strings.Join(item.Path(), " / "),
		URL:        item.URL,
		Kind:       string(item.Record.Kind),
	}
}
