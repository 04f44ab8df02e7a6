package search

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/quickfind/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/quickfind/internal/core/domain"
)

// MockSearchService implements driving.SearchService for testing.
type MockSearchService struct {
	mu         sync.Mutex
	SearchFunc func(ctx context.Context, query string, opts domain.SearchOptions) (*domain.SearchResult, error)
	Last       *domain.SearchResultCache
	LastErr    error
	Calls      []domain.SearchOptions
	Remembered []string
}

func (m *MockSearchService) Search(
	ctx context.Context, query string, opts domain.SearchOptions,
) (*domain.SearchResult, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, opts)
	m.mu.Unlock()
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, opts)
	}
	return &domain.SearchResult{Items: []domain.Item{}}, nil
}

func (m *MockSearchService) LastSearch(_ context.Context, _ string) (*domain.SearchResultCache, error) {
	return m.Last, m.LastErr
}

func (m *MockSearchService) RememberSearch(_ context.Context, _, query string, _ *domain.SearchResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Remembered = append(m.Remembered, query)
	return nil
}

func (m *MockSearchService) ClearLastSearch(_ context.Context, _ string) error {
	return nil
}

func (m *MockSearchService) Workspaces(_ context.Context) ([]domain.Workspace, error) {
	return nil, nil
}

func testSettings() domain.Settings {
	settings := domain.DefaultSettings()
	settings.Notion.WorkspaceID = "ws-1"
	settings.Search.Debounce = time.Millisecond
	return settings
}

func itemsFor(titles ...string) *domain.SearchResult {
	items := make([]domain.Item, len(titles))
	for i, title := range titles {
		items[i] = domain.Item{Title: title, URL: "https://www.notion.so/" + title}
	}
	return &domain.SearchResult{Items: items, Total: len(items)}
}

func newTestView(svc *MockSearchService) *View {
	v := NewView(nil, nil, svc, testSettings())
	v.SetDimensions(100, 30)
	return v
}

func typeText(v *View, text string) []tea.Cmd {
	var cmds []tea.Cmd
	for _, r := range text {
		_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		cmds = append(cmds, cmd)
	}
	return cmds
}

// collect runs cmd and flattens batches into their messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func findMsg[T any](msgs []tea.Msg) (T, bool) {
	for _, m := range msgs {
		if typed, ok := m.(T); ok {
			return typed, true
		}
	}
	var zero T
	return zero, false
}

func TestNewView_Defaults(t *testing.T) {
	v := NewView(nil, nil, nil, testSettings())

	require.NotNil(t, v)
	assert.False(t, v.Ready())
	assert.Equal(t, "", v.Query())
	assert.Equal(t, "ws-1", v.Options().WorkspaceID)
	assert.Equal(t, domain.SortRelevance, v.Options().Sort)
	assert.True(t, v.Options().SaveToCache)
}

func TestView_WithContext(t *testing.T) {
	v := NewView(nil, nil, nil, testSettings())
	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("k"), "v")

	assert.Same(t, v, v.WithContext(ctx))
	assert.Equal(t, ctx, v.ctx)
}

func TestView_Update_WindowSize(t *testing.T) {
	v := NewView(nil, nil, nil, testSettings())

	_, cmd := v.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Nil(t, cmd)
	assert.True(t, v.Ready())
	assert.Contains(t, v.View(), "quickfind")
}

func TestView_View_NotReady(t *testing.T) {
	v := NewView(nil, nil, nil, testSettings())

	assert.Equal(t, "Initialising...", v.View())
}

func TestView_Typing_SchedulesDebouncedSearch(t *testing.T) {
	svc := &MockSearchService{}
	v := newTestView(svc)

	cmds := typeText(v, "gr")

	assert.Equal(t, "gr", v.Query())
	assert.Equal(t, uint64(2), v.Seq())
	msgs := collect(cmds[1])
	req, ok := findMsg[messages.SearchRequested](msgs)
	require.True(t, ok)
	assert.Equal(t, messages.SearchRequested{Seq: 2, Query: "gr"}, req)
	assert.Empty(t, svc.Calls, "nothing is searched before the tick is handled")
}

func TestView_StaleRequestIsDropped(t *testing.T) {
	svc := &MockSearchService{}
	v := newTestView(svc)
	typeText(v, "gr")

	_, cmd := v.Update(messages.SearchRequested{Seq: 1, Query: "g"})

	assert.Nil(t, cmd)
	assert.Empty(t, svc.Calls)
}

func TestView_CurrentRequestSearches(t *testing.T) {
	svc := &MockSearchService{
		SearchFunc: func(_ context.Context, query string, _ domain.SearchOptions) (*domain.SearchResult, error) {
			return itemsFor("<mark>Gr</mark>ade", "Group"), nil
		},
	}
	v := newTestView(svc)
	typeText(v, "gr")

	_, cmd := v.Update(messages.SearchRequested{Seq: 2, Query: "gr"})
	require.NotNil(t, cmd)
	msg := cmd()
	done, ok := msg.(messages.SearchCompleted)
	require.True(t, ok)
	assert.Equal(t, uint64(2), done.Seq)

	v.Update(done)

	require.Len(t, v.Items(), 2)
	assert.NoError(t, v.Err())
	assert.Contains(t, v.View(), "Grade")
	require.Len(t, svc.Calls, 1)
	assert.Equal(t, "ws-1", svc.Calls[0].WorkspaceID)
}

func TestView_LastWriteWins(t *testing.T) {
	v := newTestView(&MockSearchService{})
	typeText(v, "gra")

	// the older completion arrives after the newer one
	v.Update(messages.SearchCompleted{Seq: 3, Query: "gra", Result: itemsFor("Grade")})
	v.Update(messages.SearchCompleted{Seq: 2, Query: "gr", Result: itemsFor("Group", "Grocery")})

	require.Len(t, v.Items(), 1)
	assert.Equal(t, "Grade", v.Items()[0].Title)
}

func TestView_SearchDoesNotCacheInService(t *testing.T) {
	svc := &MockSearchService{}
	v := newTestView(svc)
	typeText(v, "g")

	_, cmd := v.Update(messages.SearchRequested{Seq: 1, Query: "g"})
	require.NotNil(t, cmd)
	cmd()

	require.Len(t, svc.Calls, 1)
	assert.False(t, svc.Calls[0].SaveToCache)
	assert.True(t, v.Options().SaveToCache)
}

func TestView_OnlyLatestSearchIsRemembered(t *testing.T) {
	svc := &MockSearchService{}
	v := newTestView(svc)
	typeText(v, "gra")

	_, cmd := v.Update(messages.SearchCompleted{Seq: 3, Query: "gra", Result: itemsFor("Grade")})
	require.NotNil(t, cmd)
	assert.Nil(t, cmd())

	_, cmd = v.Update(messages.SearchCompleted{Seq: 2, Query: "gr", Result: itemsFor("Group")})
	assert.Nil(t, cmd)

	assert.Equal(t, []string{"gra"}, svc.Remembered)
}

func TestView_FailedSearchIsNotRemembered(t *testing.T) {
	svc := &MockSearchService{}
	v := newTestView(svc)
	typeText(v, "g")

	_, cmd := v.Update(messages.SearchCompleted{Seq: 1, Query: "g", Err: domain.ErrNetwork})

	assert.Nil(t, cmd)
	assert.Empty(t, svc.Remembered)
}

func TestView_CachingDisabled(t *testing.T) {
	settings := testSettings()
	settings.Search.Cache = false
	svc := &MockSearchService{}
	v := NewView(nil, nil, svc, settings)
	v.SetDimensions(100, 30)
	typeText(v, "g")

	_, cmd := v.Update(messages.SearchCompleted{Seq: 1, Query: "g", Result: itemsFor("Grade")})

	assert.Nil(t, cmd)
	assert.Empty(t, svc.Remembered)
}

func TestView_SearchError(t *testing.T) {
	v := newTestView(&MockSearchService{})
	typeText(v, "g")

	v.Update(messages.SearchCompleted{Seq: 1, Query: "g", Err: domain.ErrNetwork})

	assert.ErrorIs(t, v.Err(), domain.ErrNetwork)
	assert.Contains(t, v.View(), "could not reach Notion")
}

func TestView_Select_EmitsResult(t *testing.T) {
	v := newTestView(&MockSearchService{})
	v.Update(messages.SearchCompleted{Seq: 0, Result: itemsFor("one", "two")})

	v.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	selected, ok := cmd().(messages.ResultSelected)
	require.True(t, ok)
	assert.Equal(t, "two", selected.Item.Title)

	v.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "one", v.SelectedItem().Title)
}

func TestView_Select_NoResults(t *testing.T) {
	v := newTestView(&MockSearchService{})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
}

func TestView_Esc(t *testing.T) {
	v := newTestView(&MockSearchService{})
	typeText(v, "x")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "", v.Query())
	_, ok := findMsg[messages.SearchRequested](collect(cmd))
	assert.True(t, ok, "clearing the query searches again")

	_, cmd = v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, messages.Quit{}, cmd())
}

func TestView_SortCyclesAndSearchesNow(t *testing.T) {
	svc := &MockSearchService{}
	v := newTestView(svc)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	cmd()

	assert.Equal(t, domain.SortLastEdited, v.Options().Sort)
	require.Len(t, svc.Calls, 1)
	assert.Equal(t, domain.SortLastEdited, svc.Calls[0].Sort)
	assert.Contains(t, v.View(), "Last edited")

	v.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Equal(t, domain.SortCreated, v.Options().Sort)
	v.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Equal(t, domain.SortRelevance, v.Options().Sort)
}

func TestView_TitlesOnlyToggle(t *testing.T) {
	v := newTestView(&MockSearchService{})

	v.Update(tea.KeyMsg{Type: tea.KeyCtrlT})

	assert.True(t, v.Options().OnlyTitles)
	assert.Contains(t, v.View(), "titles only")
}

func TestView_NoWorkspace(t *testing.T) {
	settings := testSettings()
	settings.Notion.WorkspaceID = ""
	svc := &MockSearchService{}
	v := NewView(nil, nil, svc, settings)
	v.SetDimensions(100, 30)

	_, cmd := v.Update(messages.SearchRequested{Seq: 0, Query: ""})

	assert.Nil(t, cmd)
	assert.ErrorIs(t, v.Err(), ErrNoWorkspace)
	assert.Empty(t, svc.Calls)
}

func TestView_NoService(t *testing.T) {
	v := NewView(nil, nil, nil, testSettings())

	msgs := collect(v.loadLastSearch())

	errMsg, ok := findMsg[messages.ErrorOccurred](msgs)
	require.True(t, ok)
	v.Update(errMsg)
	assert.ErrorIs(t, v.Err(), ErrNoSearchService)
}

func TestView_Init_RestoresLastSearch(t *testing.T) {
	svc := &MockSearchService{Last: &domain.SearchResultCache{
		Query:        "grade",
		SearchResult: *itemsFor("Grade Calculator"),
	}}
	v := newTestView(svc)

	loaded, ok := findMsg[messages.LastSearchLoaded](collect(v.loadLastSearch()))
	require.True(t, ok)
	_, cmd := v.Update(loaded)

	assert.Nil(t, cmd)
	assert.Equal(t, "grade", v.Query())
	require.Len(t, v.Items(), 1)
	assert.Empty(t, svc.Calls)
}

func TestView_Init_BrowsesWithoutCache(t *testing.T) {
	svc := &MockSearchService{LastErr: errors.New("disk gone")}
	v := newTestView(svc)

	_, cmd := v.Update(messages.LastSearchLoaded{WorkspaceID: "ws-1"})
	require.NotNil(t, cmd)
	done, ok := cmd().(messages.SearchCompleted)
	require.True(t, ok)

	assert.Equal(t, "", done.Query)
	assert.Len(t, svc.Calls, 1)
}

func TestView_LastSearchForOtherWorkspaceIgnored(t *testing.T) {
	v := newTestView(&MockSearchService{})

	_, cmd := v.Update(messages.LastSearchLoaded{
		WorkspaceID: "ws-old",
		Cache:       &domain.SearchResultCache{Query: "stale"},
	})

	assert.Nil(t, cmd)
	assert.Equal(t, "", v.Query())
}

func TestView_SetWorkspace(t *testing.T) {
	v := newTestView(&MockSearchService{})
	typeText(v, "abc")
	before := v.Seq()

	cmd := v.SetWorkspace("ws-2")

	assert.Equal(t, "ws-2", v.Options().WorkspaceID)
	assert.Equal(t, "", v.Query())
	assert.Greater(t, v.Seq(), before)
	loaded, ok := findMsg[messages.LastSearchLoaded](collect(cmd))
	require.True(t, ok)
	assert.Equal(t, "ws-2", loaded.WorkspaceID)
}

func TestNextSort(t *testing.T) {
	assert.Equal(t, domain.SortLastEdited, nextSort(domain.SortRelevance))
	assert.Equal(t, domain.SortCreated, nextSort(domain.SortLastEdited))
	assert.Equal(t, domain.SortRelevance, nextSort(domain.SortCreated))
	assert.Equal(t, domain.SortLastEdited, nextSort(""))
}
