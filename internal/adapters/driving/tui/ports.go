// Package tui provides the interactive search interface for quickfind.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"fmt"

	"github.com/custodia-labs/quickfind/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Search runs queries and reads the last-search cache.
	Search driving.SearchService

	// Settings provides the search defaults and stores the chosen workspace.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(search driving.SearchService, settings driving.SettingsService) *Ports {
	return &Ports{
		Search:   search,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Search == nil {
		return fmt.Errorf("%w: %w", ErrInvalidPorts, ErrMissingSearchService)
	}
	if p.Settings == nil {
		return fmt.Errorf("%w: %w", ErrInvalidPorts, ErrMissingSettingsService)
	}
	return nil
}
