package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/quickfind/internal/core/domain"
	"github.com/custodia-labs/quickfind/internal/core/ports/driven"
	"github.com/custodia-labs/quickfind/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	KeyHost             = "notion.host"
	KeyWorkspaceID      = "notion.workspace_id"
	KeyToken            = "notion.token"
	KeySearchSort       = "search.sort"
	KeySearchOnlyTitles = "search.only_titles"
	KeySearchLimit      = "search.limit"
	KeySearchCache      = "search.cache"
	KeySearchDebounceMS = "search.debounce_ms"
	KeyIconWidth        = "display.icon_width"
	KeyBackendTag       = "highlight.backend_tag"
	KeyHighlightTag     = "highlight.tag"
)

type keyKind int

const (
	kindString keyKind = iota
	kindInt
	kindBool
)

var settingKeys = map[string]keyKind{
	KeyHost:             kindString,
	KeyWorkspaceID:      kindString,
	KeyToken:            kindString,
	KeySearchSort:       kindString,
	KeySearchOnlyTitles: kindBool,
	KeySearchLimit:      kindInt,
	KeySearchCache:      kindBool,
	KeySearchDebounceMS: kindInt,
	KeyIconWidth:        kindInt,
	KeyBackendTag:       kindString,
	KeyHighlightTag:     kindString,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings, filling unset keys with
// defaults.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := &domain.Settings{
		Notion: domain.NotionSettings{
			Host:        strings.TrimRight(s.getString(KeyHost, defaults.Notion.Host), "/"),
			WorkspaceID: s.configStore.GetString(KeyWorkspaceID),
			Token:       s.configStore.GetString(KeyToken),
		},
		Search: domain.SearchSettings{
			Sort:       s.getSort(defaults.Search.Sort),
			OnlyTitles: s.getBool(KeySearchOnlyTitles, defaults.Search.OnlyTitles),
			Limit:      s.getInt(KeySearchLimit, defaults.Search.Limit),
			Cache:      s.getBool(KeySearchCache, defaults.Search.Cache),
			Debounce: time.Duration(
				s.getInt(KeySearchDebounceMS, int(defaults.Search.Debounce/time.Millisecond)),
			) * time.Millisecond,
		},
		Display: domain.DisplaySettings{
			IconWidth: s.getInt(KeyIconWidth, defaults.Display.IconWidth),
		},
		Highlight: domain.HighlightSettings{
			BackendTag: s.getString(KeyBackendTag, defaults.Highlight.BackendTag),
			Tag:        s.getString(KeyHighlightTag, defaults.Highlight.Tag),
		},
	}

	return settings, nil
}

// Set parses value according to the key's type and stores it.
// An empty value removes the key so its default applies again.
func (s *SettingsService) Set(key, value string) error {
	kind, ok := settingKeys[key]
	if !ok {
		return fmt.Errorf("%w: unknown config key %q", domain.ErrInvalidInput, key)
	}

	value = strings.TrimSpace(value)
	if value == "" {
		if err := s.configStore.Delete(key); err != nil {
			return fmt.Errorf("unset %s: %w", key, err)
		}
		return nil
	}

	var parsed any
	switch kind {
	case kindInt:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: %s must be a positive integer", domain.ErrInvalidInput, key)
		}
		parsed = n
	case kindBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
		parsed = b
	default:
		parsed = value
	}

	if err := validateSetting(key, parsed); err != nil {
		return err
	}
	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func validateSetting(key string, value any) error {
	switch key {
	case KeySearchSort:
		if sortBy := domain.SortBy(value.(string)); !sortBy.IsValid() {
			return fmt.Errorf("%w: unknown sort %q", domain.ErrInvalidInput, sortBy)
		}
	case KeyHost:
		host := value.(string)
		if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
			return fmt.Errorf("%w: host must be an http(s) URL", domain.ErrInvalidInput)
		}
	}
	return nil
}

// SetToken stores the session token.
func (s *SettingsService) SetToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("%w: token is empty", domain.ErrInvalidInput)
	}
	return s.Set(KeyToken, token)
}

// SetWorkspace stores the default workspace id.
func (s *SettingsService) SetWorkspace(workspaceID string) error {
	workspaceID = strings.TrimSpace(workspaceID)
	if workspaceID == "" {
		return fmt.Errorf("%w: workspace id is empty", domain.ErrInvalidInput)
	}
	return s.Set(KeyWorkspaceID, workspaceID)
}

// Keys lists the settable config keys in sorted order.
func (s *SettingsService) Keys() []string {
	keys := make([]string, 0, len(settingKeys))
	for k := range settingKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getSort(defaultVal domain.SortBy) domain.SortBy {
	val := s.configStore.GetString(KeySearchSort)
	if val == "" {
		return defaultVal
	}
	sortBy := domain.SortBy(val)
	if !sortBy.IsValid() {
		return defaultVal
	}
	return sortBy
}
