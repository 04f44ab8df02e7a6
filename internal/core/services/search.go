package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/custodia-labs/quickfind/internal/core/domain"
	"github.com/custodia-labs/quickfind/internal/core/ports/driven"
	"github.com/custodia-labs/quickfind/internal/core/ports/driving"
	"github.com/custodia-labs/quickfind/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService queries the backend and resolves the response.
type SearchService struct {
	mu        sync.RWMutex
	transport driven.SearchTransport
	resolver  *Resolver
	cache     *LastSearchCache
}

// NewSearchService creates a new search service.
// The store parameter is optional (can be nil); without it nothing is cached.
func NewSearchService(
	transport driven.SearchTransport,
	resolver *Resolver,
	store driven.KVStore,
) *SearchService {
	s := &SearchService{
		transport: transport,
		resolver:  resolver,
	}
	if store != nil {
		s.cache = NewLastSearchCache(store)
	}
	return s
}

// Reconfigure swaps the transport and resolver, e.g. after the
// configuration changed. Searches already running keep the old pair.
func (s *SearchService) Reconfigure(transport driven.SearchTransport, resolver *Resolver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transport = transport
	s.resolver = resolver
}

func (s *SearchService) current() (driven.SearchTransport, *Resolver) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.transport, s.resolver
}

// Search posts the query and resolves the hits into display items.
//
// A blank query browses the workspace: relevance ordering is replaced by
// creation order. With opts.SaveToCache the call goes through
// RememberSearch, so a blank query then also clears the last search.
// Transport failures are returned as-is, wrapped with context.
func (s *SearchService) Search(
	ctx context.Context, query string, opts domain.SearchOptions,
) (*domain.SearchResult, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	transport, resolver := s.current()
	if transport == nil {
		return nil, domain.ErrSearchUnavailable
	}
	if opts.WorkspaceID == "" {
		return nil, fmt.Errorf("%w: workspace id is empty", domain.ErrInvalidInput)
	}

	req, err := buildRequest(query, opts)
	if err != nil {
		return nil, err
	}
	logger.Debug("Sort: %s, only titles: %t, limit: %d", req.Sort, req.OnlyTitles, req.Limit)

	resp, err := transport.Search(ctx, req)
	if err != nil {
		logger.Warn("Search request failed: %v", err)
		return nil, fmt.Errorf("search: %w", err)
	}

	result := resolver.Resolve(resp, req.Query)
	if opts.SaveToCache {
		if err := s.RememberSearch(ctx, opts.WorkspaceID, query, result); err != nil {
			logger.ErrorWith(err, logger.Fields{"workspace_id": opts.WorkspaceID})
		}
	}

	return result, nil
}

func buildRequest(query string, opts domain.SearchOptions) (domain.SearchRequest, error) {
	sortBy := opts.Sort
	if sortBy == "" {
		sortBy = domain.SortRelevance
	}
	if !sortBy.IsValid() {
		return domain.SearchRequest{}, fmt.Errorf("%w: unknown sort %q", domain.ErrInvalidInput, sortBy)
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = domain.DefaultSearchLimit
	}

	trimmed := strings.TrimSpace(query)
	if trimmed == "" && sortBy == domain.SortRelevance {
		sortBy = domain.SortCreated
	}

	return domain.SearchRequest{
		Query:       trimmed,
		WorkspaceID: opts.WorkspaceID,
		Sort:        sortBy,
		OnlyTitles:  opts.OnlyTitles,
		Limit:       limit,
	}, nil
}

// RememberSearch records query and result as the workspace's last search.
// A blank query forgets the last search instead.
func (s *SearchService) RememberSearch(
	ctx context.Context, workspaceID, query string, result *domain.SearchResult,
) error {
	if s.cache == nil {
		return nil
	}
	if strings.TrimSpace(query) == "" {
		return s.cache.Clear(ctx, workspaceID)
	}
	if result == nil {
		result = &domain.SearchResult{}
	}
	return s.cache.Put(ctx, workspaceID, query, result)
}

// LastSearch returns the workspace's cached last search, or nil.
func (s *SearchService) LastSearch(ctx context.Context, workspaceID string) (*domain.SearchResultCache, error) {
	if s.cache == nil {
		return nil, nil
	}
	return s.cache.Get(ctx, workspaceID)
}

// ClearLastSearch drops the workspace's cached last search.
func (s *SearchService) ClearLastSearch(ctx context.Context, workspaceID string) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Clear(ctx, workspaceID)
}

// Workspaces lists the workspaces the session can search.
func (s *SearchService) Workspaces(ctx context.Context) ([]domain.Workspace, error) {
	transport, _ := s.current()
	if transport == nil {
		return nil, domain.ErrSearchUnavailable
	}

	workspaces, err := transport.ListWorkspaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("list workspaces: %w", err)
	}
	return workspaces, nil
}
