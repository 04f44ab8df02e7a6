package tui

import "errors"

// Port validation errors.
var (
	ErrInvalidPorts           = errors.New("tui: ports are incomplete")
	ErrMissingSearchService   = errors.New("tui: no search service")
	ErrMissingSettingsService = errors.New("tui: no settings service")
)
