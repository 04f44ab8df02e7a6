package driven

import (
	"context"

	"github.com/custodia-labs/quickfind/internal/core/domain"
)

// SearchTransport talks to the workspace backend.
// Backed by the Notion quick-find HTTP API.
type SearchTransport interface {
	// Search posts a query and returns the raw response.
	// Connectivity failures wrap domain.ErrNetwork.
	Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error)

	// ListWorkspaces returns the workspaces the session can search.
	ListWorkspaces(ctx context.Context) ([]domain.Workspace, error)
}
