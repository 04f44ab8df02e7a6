package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/quickfind/internal/core/domain"
)

func TestCacheShow(t *testing.T) {
	search, _, cleanup := setupTestServices()
	defer cleanup()
	search.last = &domain.SearchResultCache{Query: "grade", SearchResult: *sampleResult()}

	out, err := execute(t, "cache", "show")

	require.NoError(t, err)
	assert.Contains(t, out, `Last search: "grade"`)
	assert.Contains(t, out, "Grade Calculator")
}

func TestCacheShow_Empty(t *testing.T) {
	_, _, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "cache", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "No cached search.")
}

func TestCacheShow_EmptyQuery(t *testing.T) {
	search, _, cleanup := setupTestServices()
	defer cleanup()
	search.last = &domain.SearchResultCache{SearchResult: domain.SearchResult{}}

	out, err := execute(t, "cache", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "(recent pages)")
}

func TestCacheClear(t *testing.T) {
	search, _, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "cache", "clear", "--workspace", "ws-9")

	require.NoError(t, err)
	assert.Contains(t, out, "Cache cleared.")
	assert.Equal(t, []string{"ws-9"}, search.cleared)
}

func TestCacheClear_Error(t *testing.T) {
	search, _, cleanup := setupTestServices()
	defer cleanup()
	search.err = errors.New("disk full")

	_, err := execute(t, "cache", "clear")

	assert.ErrorContains(t, err, "disk full")
}

func TestCache_NoWorkspace(t *testing.T) {
	_, settings, cleanup := setupTestServices()
	defer cleanup()
	settings.settings.Notion.WorkspaceID = ""

	_, err := execute(t, "cache", "show")

	assert.ErrorIs(t, err, errNoWorkspace)
}
