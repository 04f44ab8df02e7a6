// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/quickfind/internal/core/domain"
)

// SearchRequested fires when the debounce delay for a query has elapsed.
// Seq identifies the keystroke that scheduled it.
type SearchRequested struct {
	Seq   uint64
	Query string
}

// SearchCompleted carries a resolved search back to the model.
// Only the completion whose Seq is still current is applied.
type SearchCompleted struct {
	Seq    uint64
	Query  string
	Result *domain.SearchResult
	Err    error
}

// LastSearchLoaded carries the cached last search of a workspace.
// Cache is nil when nothing was cached.
type LastSearchLoaded struct {
	WorkspaceID string
	Cache       *domain.SearchResultCache
	Err         error
}

// ResultSelected is sent when the user picks a result.
type ResultSelected struct {
	Item domain.Item
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewSearch is the search input and results view.
	ViewSearch ViewType = iota
	// ViewWorkspaces lists the workspaces to search in.
	ViewWorkspaces
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewSearch:
		return "search"
	case ViewWorkspaces:
		return "workspaces"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// WorkspacesLoaded carries the workspaces the session can search.
type WorkspacesLoaded struct {
	Workspaces []domain.Workspace
	Err        error
}

// WorkspaceSelected signals the default workspace was changed.
type WorkspaceSelected struct {
	Workspace domain.Workspace
	Err       error
}
