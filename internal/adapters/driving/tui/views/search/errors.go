package search

import "errors"

// Error definitions for the search view.
var (
	// ErrNoSearchService indicates that no search service was provided.
	ErrNoSearchService = errors.New("search service is required")

	// ErrNoWorkspace indicates no workspace is selected.
	ErrNoWorkspace = errors.New("no workspace selected, press ctrl+w")
)
