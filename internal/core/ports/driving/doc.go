// Package driving defines the interfaces the CLI, TUI and MCP adapters
// call into: searching a workspace, reading the last-search cache and
// managing settings.
//
// Implementations live in internal/core/services.
package driving
