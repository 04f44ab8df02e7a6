package mcp

import (
	"github.com/custodia-labs/quickfind/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
type Ports struct {
	// Search runs searches and reads the last-search cache.
	Search driving.SearchService

	// Settings supplies the default workspace and search options.
	Settings driving.SettingsService
}

// NewPorts creates Ports from the given services.
func NewPorts(search driving.SearchService, settings driving.SettingsService) *Ports {
	return &Ports{Search: search, Settings: settings}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Settings == nil {
		return ErrMissingSettingsService
	}
	return nil
}
