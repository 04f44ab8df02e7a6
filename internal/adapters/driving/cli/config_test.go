package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigShow(t *testing.T) {
	_, _, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "config", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "Host: https://www.notion.so")
	assert.Contains(t, out, "Workspace: ws-1")
	assert.Contains(t, out, "Token: ********alue")
	assert.NotContains(t, out, "secret-token-value")
	assert.Contains(t, out, "Sort: Best matches")
	assert.Contains(t, out, "Configuration is valid.")
}

func TestConfigShow_NotLoggedIn(t *testing.T) {
	_, settings, cleanup := setupTestServices()
	defer cleanup()
	settings.settings.Notion.Token = ""

	out, err := execute(t, "config")

	require.NoError(t, err)
	assert.Contains(t, out, "Token: (not set)")
	assert.Contains(t, out, "Not logged in.")
}

func TestConfigShow_InvalidSettings(t *testing.T) {
	_, settings, cleanup := setupTestServices()
	defer cleanup()
	settings.settings.Search.Limit = 0

	out, err := execute(t, "config", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "Warning:")
}

func TestConfigSet(t *testing.T) {
	_, settings, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "config", "set", "search.sort", "created")

	require.NoError(t, err)
	assert.Contains(t, out, "Set search.sort = created")
	assert.Equal(t, "created", settings.set["search.sort"])
}

func TestConfigSet_EmptyResets(t *testing.T) {
	_, settings, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "config", "set", "search.sort", "")

	require.NoError(t, err)
	assert.Contains(t, out, "Reset search.sort to default")
	assert.Equal(t, "", settings.set["search.sort"])
}

func TestConfigSet_Error(t *testing.T) {
	_, settings, cleanup := setupTestServices()
	defer cleanup()
	settings.setErr = errors.New("unknown config key")

	_, err := execute(t, "config", "set", "nope", "1")

	assert.ErrorContains(t, err, "unknown config key")
}

func TestConfigSet_RequiresTwoArgs(t *testing.T) {
	_, _, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "config", "set", "search.sort")

	assert.ErrorContains(t, err, "accepts 2 arg(s)")
}

func TestConfigKeys(t *testing.T) {
	_, _, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "config", "keys")

	require.NoError(t, err)
	assert.Equal(t, "notion.host\nsearch.sort\n", out)
}

func TestMaskToken(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"", "(not set)"},
		{"short", "*****"},
		{"abcdefghijkl", "********ijkl"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, maskToken(tt.token))
	}
}
