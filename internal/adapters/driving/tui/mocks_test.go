package tui

import (
	"context"

	"github.com/custodia-labs/quickfind/internal/core/domain"
)

// MockSearchService implements driving.SearchService for testing.
type MockSearchService struct {
	SearchFunc func(ctx context.Context, query string, opts domain.SearchOptions) (*domain.SearchResult, error)
	Last       *domain.SearchResultCache
	List       []domain.Workspace
}

func (m *MockSearchService) Search(
	ctx context.Context, query string, opts domain.SearchOptions,
) (*domain.SearchResult, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, opts)
	}
	return &domain.SearchResult{Items: []domain.Item{}}, nil
}

func (m *MockSearchService) LastSearch(_ context.Context, _ string) (*domain.SearchResultCache, error) {
	return m.Last, nil
}

func (m *MockSearchService) RememberSearch(_ context.Context, _, _ string, _ *domain.SearchResult) error {
	return nil
}

func (m *MockSearchService) ClearLastSearch(_ context.Context, _ string) error {
	return nil
}

func (m *MockSearchService) Workspaces(_ context.Context) ([]domain.Workspace, error) {
	return m.List, nil
}

// MockSettingsService implements driving.SettingsService for testing.
type MockSettingsService struct {
	Settings    domain.Settings
	GetErr      error
	WorkspaceID string
}

func (m *MockSettingsService) Get() (*domain.Settings, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	s := m.Settings
	return &s, nil
}

func (m *MockSettingsService) Set(_, _ string) error { return nil }

func (m *MockSettingsService) SetToken(_ string) error { return nil }

func (m *MockSettingsService) SetWorkspace(id string) error {
	m.WorkspaceID = id
	m.Settings.Notion.WorkspaceID = id
	return nil
}

func (m *MockSettingsService) Keys() []string { return nil }

func newMockSettings(workspaceID string) *MockSettingsService {
	s := domain.DefaultSettings()
	s.Notion.WorkspaceID = workspaceID
	return &MockSettingsService{Settings: s}
}
