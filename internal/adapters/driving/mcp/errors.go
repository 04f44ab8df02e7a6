// Package mcp provides an MCP (Model Context Protocol) server adapter for quickfind.
// It lets AI assistants search the configured workspace.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")

// ErrMissingSettingsService is returned when the settings service is not provided.
var ErrMissingSettingsService = errors.New("mcp: settings service is required")

// ErrNoWorkspace is returned when a search names no workspace and none is configured.
var ErrNoWorkspace = errors.New("no workspace given and no default workspace configured")
