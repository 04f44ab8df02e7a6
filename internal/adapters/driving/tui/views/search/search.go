// Package search provides the search-as-you-type view for the TUI.
package search

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/quickfind/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/quickfind/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/quickfind/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/quickfind/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/quickfind/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/quickfind/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/quickfind/internal/core/domain"
	"github.com/custodia-labs/quickfind/internal/core/ports/driving"
	"github.com/custodia-labs/quickfind/internal/logger"
)

// sortCycle is the order ctrl+s steps through.
var sortCycle = []domain.SortBy{domain.SortRelevance, domain.SortLastEdited, domain.SortCreated}

// View is the search view: query input, result list and status bar.
//
// Every edit of the query bumps seq and schedules a SearchRequested after
// the debounce delay. Requests and completions carrying an older seq are
// dropped, so the newest query always wins.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	list      *list.ResultList
	statusbar *status.Bar

	searchService driving.SearchService
	ctx           context.Context

	opts     domain.SearchOptions
	debounce time.Duration
	seq      uint64

	width  int
	height int
	ready  bool
	err    error
}

// NewView creates a new search view configured from settings.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	searchService driving.SearchService,
	settings domain.Settings,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:        s,
		keymap:        km,
		input:         input.NewSearchInput(s),
		list:          list.NewResultList(s, settings.Highlight.Tag),
		statusbar:     status.NewBar(s, km),
		searchService: searchService,
		ctx:           context.Background(),
		opts:          settings.SearchOptions(),
		debounce:      settings.Search.Debounce,
		width:         80,
		height:        24,
	}
	v.input.SetTitlesOnly(v.opts.OnlyTitles)
	v.list.SetBackendTag(settings.Highlight.BackendTag)
	v.updateMode()
	return v
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init starts the cursor blink and restores the workspace's last search.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.input.Init(), v.loadLastSearch())
}

// SetWorkspace switches the searched workspace and reloads its last search.
func (v *View) SetWorkspace(workspaceID string) tea.Cmd {
	v.opts.WorkspaceID = workspaceID
	v.seq++
	v.input.SetValue("")
	v.list.SetItems(nil, 0)
	v.err = nil
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("")
	v.statusbar.SetResults(0, 0)
	return v.loadLastSearch()
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.LastSearchLoaded:
		return v, v.handleLastSearch(msg)

	case messages.SearchRequested:
		if msg.Seq != v.seq {
			return v, nil
		}
		return v, v.search(msg.Seq, msg.Query)

	case messages.SearchCompleted:
		return v, v.handleSearchCompleted(msg)

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	// Cursor blink and other input housekeeping
	var cmd tea.Cmd
	v.input, cmd, _ = v.input.Update(msg)
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()

	switch {
	case keymap.Matches(key, v.keymap.Back):
		if v.input.Value() == "" {
			return v, func() tea.Msg { return messages.Quit{} }
		}
		v.input.SetValue("")
		return v, v.queryChanged()

	case keymap.Matches(key, v.keymap.Up):
		v.list.MoveUp()
		return v, nil

	case keymap.Matches(key, v.keymap.Down):
		v.list.MoveDown()
		return v, nil

	case keymap.Matches(key, v.keymap.Select):
		item := v.list.SelectedItem()
		if item == nil {
			return v, nil
		}
		selected := *item
		return v, func() tea.Msg { return messages.ResultSelected{Item: selected} }

	case keymap.Matches(key, v.keymap.Sort):
		v.opts.Sort = nextSort(v.opts.Sort)
		v.updateMode()
		return v, v.searchNow()

	case keymap.Matches(key, v.keymap.TitlesOnly):
		v.opts.OnlyTitles = !v.opts.OnlyTitles
		v.input.SetTitlesOnly(v.opts.OnlyTitles)
		v.updateMode()
		return v, v.searchNow()
	}

	var cmd tea.Cmd
	var changed bool
	v.input, cmd, changed = v.input.Update(msg)
	if !changed {
		return v, cmd
	}
	return v, tea.Batch(cmd, v.queryChanged())
}

// queryChanged schedules a debounced search for the current query.
func (v *View) queryChanged() tea.Cmd {
	v.seq++
	seq, query := v.seq, v.input.Value()
	return tea.Tick(v.debounce, func(time.Time) tea.Msg {
		return messages.SearchRequested{Seq: seq, Query: query}
	})
}

// searchNow supersedes pending searches and runs the current query at once.
func (v *View) searchNow() tea.Cmd {
	v.seq++
	return v.search(v.seq, v.input.Value())
}

// search runs the query for seq in the background.
func (v *View) search(seq uint64, query string) tea.Cmd {
	if v.searchService == nil {
		v.setError(ErrNoSearchService)
		return nil
	}
	if v.opts.WorkspaceID == "" {
		v.setError(ErrNoWorkspace)
		return nil
	}

	v.statusbar.SetState(status.StateSearching)
	svc, ctx, opts := v.searchService, v.ctx, v.opts
	// Caching waits for the completion; see remember.
	opts.SaveToCache = false
	return func() tea.Msg {
		result, err := svc.Search(ctx, query, opts)
		return messages.SearchCompleted{Seq: seq, Query: query, Result: result, Err: err}
	}
}

func (v *View) handleSearchCompleted(msg messages.SearchCompleted) tea.Cmd {
	if msg.Seq != v.seq {
		logger.Debug("Dropping superseded search %d for %q", msg.Seq, msg.Query)
		return nil
	}
	if msg.Err != nil {
		v.setError(msg.Err)
		return nil
	}

	v.err = nil
	var items []domain.Item
	var total int
	if msg.Result != nil {
		items, total = msg.Result.Items, msg.Result.Total
	}
	v.list.SetItems(items, total)
	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetMessage("")
	v.statusbar.SetResults(len(items), total)
	return v.remember(msg)
}

// remember stores a current search as the workspace's last search.
func (v *View) remember(msg messages.SearchCompleted) tea.Cmd {
	if !v.opts.SaveToCache || v.searchService == nil || v.opts.WorkspaceID == "" {
		return nil
	}
	svc, ctx, workspaceID := v.searchService, v.ctx, v.opts.WorkspaceID
	return func() tea.Msg {
		if err := svc.RememberSearch(ctx, workspaceID, msg.Query, msg.Result); err != nil {
			logger.ErrorWith(err, logger.Fields{"workspace_id": workspaceID})
		}
		return nil
	}
}

// loadLastSearch fetches the cached last search of the current workspace.
func (v *View) loadLastSearch() tea.Cmd {
	if v.searchService == nil {
		return func() tea.Msg { return messages.ErrorOccurred{Err: ErrNoSearchService} }
	}
	workspaceID := v.opts.WorkspaceID
	if workspaceID == "" {
		v.statusbar.SetMessage(ErrNoWorkspace.Error())
		return nil
	}

	svc, ctx := v.searchService, v.ctx
	return func() tea.Msg {
		cache, err := svc.LastSearch(ctx, workspaceID)
		return messages.LastSearchLoaded{WorkspaceID: workspaceID, Cache: cache, Err: err}
	}
}

// handleLastSearch shows the cached search, or browses the workspace when
// nothing was cached.
func (v *View) handleLastSearch(msg messages.LastSearchLoaded) tea.Cmd {
	if msg.WorkspaceID != v.opts.WorkspaceID {
		return nil
	}
	if msg.Err != nil {
		logger.Warn("Loading last search failed: %v", msg.Err)
	}

	if msg.Cache != nil && v.input.Value() == "" {
		v.input.SetValue(msg.Cache.Query)
		items := msg.Cache.SearchResult.Items
		v.list.SetItems(items, msg.Cache.SearchResult.Total)
		v.statusbar.SetState(status.StateResults)
		v.statusbar.SetResults(len(items), msg.Cache.SearchResult.Total)
		return nil
	}
	return v.searchNow()
}

func (v *View) setError(err error) {
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(domain.UserMessage(err))
}

func (v *View) updateMode() {
	sortBy := v.opts.Sort
	if sortBy == "" {
		sortBy = domain.SortRelevance
	}
	mode := sortBy.Description()
	if v.opts.OnlyTitles {
		mode += ", titles only"
	}
	v.statusbar.SetMode(mode)
}

func nextSort(current domain.SortBy) domain.SortBy {
	for i, s := range sortCycle {
		if s == current {
			return sortCycle[(i+1)%len(sortCycle)]
		}
	}
	return sortCycle[1]
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		v.styles.Title.Render("quickfind"),
		"",
		v.input.View(),
		"",
		v.list.View(),
		"",
		v.statusbar.View(),
	)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-8) // header, input box and status bar
	v.statusbar.SetWidth(width)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the current search query.
func (v *View) Query() string {
	return v.input.Value()
}

// Options returns the options the next search will use.
func (v *View) Options() domain.SearchOptions {
	return v.opts
}

// Items returns the displayed items.
func (v *View) Items() []domain.Item {
	return v.list.Items()
}

// SelectedItem returns the highlighted item, or nil.
func (v *View) SelectedItem() *domain.Item {
	return v.list.SelectedItem()
}

// Seq returns the sequence number of the latest scheduled search.
func (v *View) Seq() uint64 {
	return v.seq
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}
