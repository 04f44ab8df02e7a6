package driving

import "github.com/custodia-labs/quickfind/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.Settings, error)

	// Set updates a single setting by its config key.
	Set(key, value string) error

	// SetToken stores the session token.
	SetToken(token string) error

	// SetWorkspace stores the default workspace id.
	SetWorkspace(workspaceID string) error

	// Keys lists the settable config keys.
	Keys() []string
}
