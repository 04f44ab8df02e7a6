package mcp

import (
	"context"

	"github.com/custodia-labs/quickfind/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	result     *domain.SearchResult
	last       *domain.SearchResultCache
	workspaces []domain.Workspace
	err        error

	lastQuery string
	lastOpts  domain.SearchOptions
}

func (m *mockSearchService) Search(
	_ context.Context,
	query string,
	opts domain.SearchOptions,
) (*domain.SearchResult, error) {
	m.lastQuery = query
	m.lastOpts = opts
	return m.result, m.err
}

func (m *mockSearchService) LastSearch(_ context.Context, _ string) (*domain.SearchResultCache, error) {
	return m.last, m.err
}

func (m *mockSearchService) RememberSearch(_ context.Context, _, _ string, _ *domain.SearchResult) error {
	return m.err
}

func (m *mockSearchService) ClearLastSearch(_ context.Context, _ string) error {
	return m.err
}

func (m *mockSearchService) Workspaces(_ context.Context) ([]domain.Workspace, error) {
	return m.workspaces, m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings domain.Settings
	err      error
}

func newMockSettings(workspaceID string) *mockSettingsService {
	s := domain.DefaultSettings()
	s.Notion.WorkspaceID = workspaceID
	return &mockSettingsService{settings: s}
}

func (m *mockSettingsService) Get() (*domain.Settings, error) {
	if m.err != nil {
		return nil, m.err
	}
	s := m.settings
	return &s, nil
}

func (m *mockSettingsService) Set(_, _ string) error { return m.err }

func (m *mockSettingsService) SetToken(_ string) error { return m.err }

func (m *mockSettingsService) SetWorkspace(_ string) error { return m.err }

func (m *mockSettingsService) Keys() []string { return nil }
