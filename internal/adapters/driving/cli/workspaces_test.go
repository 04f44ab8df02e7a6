package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/quickfind/internal/core/domain"
)

func TestWorkspacesList(t *testing.T) {
	search, _, cleanup := setupTestServices()
	defer cleanup()
	search.list = []domain.Workspace{{ID: "ws-1", Name: "Acme"}, {ID: "ws-2", Name: "Home"}}

	out, err := execute(t, "workspaces")

	require.NoError(t, err)
	assert.Contains(t, out, "* ws-1  Acme")
	assert.Contains(t, out, "  ws-2  Home")
}

func TestWorkspacesList_Empty(t *testing.T) {
	_, _, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "ws")

	require.NoError(t, err)
	assert.Contains(t, out, "No workspaces found.")
}

func TestWorkspacesList_Error(t *testing.T) {
	search, _, cleanup := setupTestServices()
	defer cleanup()
	search.err = domain.ErrAuthRequired

	_, err := execute(t, "workspaces")

	assert.ErrorIs(t, err, domain.ErrAuthRequired)
}

func TestWorkspacesSelect(t *testing.T) {
	_, settings, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "workspaces", "select", "ws-2")

	require.NoError(t, err)
	assert.Contains(t, out, "Default workspace set to ws-2")
	assert.Equal(t, "ws-2", settings.settings.Notion.WorkspaceID)
}
