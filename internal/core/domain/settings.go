package domain

import (
	"fmt"
	"strings"
	"time"
)

// Defaults used when a setting is not configured.
const (
	DefaultHost             = "https://www.notion.so"
	DefaultSearchLimit      = 50
	DefaultDebounce         = 150 * time.Millisecond
	DefaultIconWidth        = 40
	DefaultBackendHighlight = "gzkNfoUU"
	DefaultHighlightTag     = "mark"
)

// NotionSettings configures the backend connection.
type NotionSettings struct {
	// Host is the backend base URL, without trailing slash.
	Host string

	// WorkspaceID is the workspace searched by default.
	WorkspaceID string

	// Token is the session token (token_v2 cookie).
	Token string
}

// SearchSettings configures search requests.
type SearchSettings struct {
	Sort       SortBy
	OnlyTitles bool
	Limit      int

	// Cache enables the last-search cache.
	Cache bool

	// Debounce delays interactive searches while the user is typing.
	Debounce time.Duration
}

// DisplaySettings configures result rendering.
type DisplaySettings struct {
	// IconWidth is the pixel width requested for image icons.
	IconWidth int
}

// HighlightSettings configures match marking.
type HighlightSettings struct {
	// BackendTag is the tag the backend wraps matches in. It is stripped.
	BackendTag string

	// Tag is the tag quickfind wraps matches in.
	Tag string
}

// Settings holds all user configuration.
type Settings struct {
	Notion    NotionSettings
	Search    SearchSettings
	Display   DisplaySettings
	Highlight HighlightSettings
}

// DefaultSettings returns the built-in configuration.
func DefaultSettings() Settings {
	return Settings{
		Notion: NotionSettings{
			Host: DefaultHost,
		},
		Search: SearchSettings{
			Sort:     SortRelevance,
			Limit:    DefaultSearchLimit,
			Cache:    true,
			Debounce: DefaultDebounce,
		},
		Display: DisplaySettings{
			IconWidth: DefaultIconWidth,
		},
		Highlight: HighlightSettings{
			BackendTag: DefaultBackendHighlight,
			Tag:        DefaultHighlightTag,
		},
	}
}

// Validate checks the settings are usable for searching.
func (s *Settings) Validate() error {
	if !strings.HasPrefix(s.Notion.Host, "http://") && !strings.HasPrefix(s.Notion.Host, "https://") {
		return fmt.Errorf("%w: host must be an http(s) URL: %q", ErrInvalidInput, s.Notion.Host)
	}
	if !s.Search.Sort.IsValid() {
		return fmt.Errorf("%w: unknown sort %q", ErrInvalidInput, s.Search.Sort)
	}
	if s.Search.Limit <= 0 {
		return fmt.Errorf("%w: limit must be positive", ErrInvalidInput)
	}
	if s.Display.IconWidth <= 0 {
		return fmt.Errorf("%w: icon width must be positive", ErrInvalidInput)
	}
	if s.Highlight.Tag == "" {
		return fmt.Errorf("%w: highlight tag must not be empty", ErrInvalidInput)
	}
	return nil
}

// HasSession reports whether a session token is configured.
func (s *Settings) HasSession() bool {
	return s.Notion.Token != ""
}

// SearchOptions builds search options from the configured defaults.
func (s *Settings) SearchOptions() SearchOptions {
	return SearchOptions{
		WorkspaceID: s.Notion.WorkspaceID,
		Sort:        s.Search.Sort,
		OnlyTitles:  s.Search.OnlyTitles,
		Limit:       s.Search.Limit,
		SaveToCache: s.Search.Cache,
	}
}
