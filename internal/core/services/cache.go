package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/custodia-labs/quickfind/internal/core/domain"
	"github.com/custodia-labs/quickfind/internal/core/ports/driven"
)

// lastSearchedSuffix names the per-workspace last search key.
const lastSearchedSuffix = "last_searched"

// LastSearchKey returns the cache key for a workspace's last search.
func LastSearchKey(workspaceID string) string {
	return workspaceID + "-" + lastSearchedSuffix
}

// LastSearchCache persists the last search of each workspace.
type LastSearchCache struct {
	store driven.KVStore
}

// NewLastSearchCache creates a cache over store.
func NewLastSearchCache(store driven.KVStore) *LastSearchCache {
	return &LastSearchCache{store: store}
}

// Get returns the cached search of a workspace, or nil if there is none.
func (c *LastSearchCache) Get(ctx context.Context, workspaceID string) (*domain.SearchResultCache, error) {
	data, ok, err := c.store.Get(ctx, LastSearchKey(workspaceID))
	if err != nil {
		return nil, fmt.Errorf("read last search: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var cached domain.SearchResultCache
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, fmt.Errorf("decode last search: %w", err)
	}
	return &cached, nil
}

// Put stores query and result as the workspace's last search.
func (c *LastSearchCache) Put(ctx context.Context, workspaceID, query string, result *domain.SearchResult) error {
	data, err := json.Marshal(domain.SearchResultCache{Query: query, SearchResult: *result})
	if err != nil {
		return fmt.Errorf("encode last search: %w", err)
	}
	if err := c.store.Set(ctx, LastSearchKey(workspaceID), data); err != nil {
		return fmt.Errorf("write last search: %w", err)
	}
	return nil
}

// Clear removes the workspace's last search.
func (c *LastSearchCache) Clear(ctx context.Context, workspaceID string) error {
	if err := c.store.Remove(ctx, LastSearchKey(workspaceID)); err != nil {
		return fmt.Errorf("clear last search: %w", err)
	}
	return nil
}
