package driving

import (
	"context"

	"github.com/custodia-labs/quickfind/internal/core/domain"
)

// SearchService provides search capabilities to external actors.
type SearchService interface {
	// Search queries the workspace and resolves the hits into display items.
	Search(ctx context.Context, query string, opts domain.SearchOptions) (*domain.SearchResult, error)

	// LastSearch returns the cached last search of a workspace, or nil.
	LastSearch(ctx context.Context, workspaceID string) (*domain.SearchResultCache, error)

	// RememberSearch stores query and result as the last search of a
	// workspace. A blank query clears it instead.
	RememberSearch(ctx context.Context, workspaceID, query string, result *domain.SearchResult) error

	// ClearLastSearch drops the cached last search of a workspace.
	ClearLastSearch(ctx context.Context, workspaceID string) error

	// Workspaces lists the workspaces the session can search.
	Workspaces(ctx context.Context) ([]domain.Workspace, error)
}
