package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/quickfind/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/quickfind/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/quickfind/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/quickfind/internal/adapters/driving/tui/views/search"
	"github.com/custodia-labs/quickfind/internal/adapters/driving/tui/views/workspaces"
	"github.com/custodia-labs/quickfind/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	searchView     *search.View
	workspacesView *workspaces.View
	currentView    messages.ViewType

	// selected is the result the user opened, set when the app quits.
	selected *domain.Item

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	settings, err := ports.Settings.Get()
	if err != nil {
		return nil, fmt.Errorf("creating app: loading settings: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:          ports,
		ctx:            context.Background(),
		styles:         s,
		keymap:         km,
		searchView:     search.NewView(s, km, ports.Search, *settings),
		workspacesView: workspaces.NewView(s, ports.Search, ports.Settings, settings.Notion.WorkspaceID),
		currentView:    messages.ViewSearch,
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.searchView.WithContext(ctx)
	a.workspacesView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("quickfind"),
		a.searchView.Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if keymap.Matches(msg.String(), a.keymap.Quit) {
			return a, tea.Quit
		}
		if a.currentView == messages.ViewSearch && keymap.Matches(msg.String(), a.keymap.Workspaces) {
			return a.switchTo(messages.ViewWorkspaces)
		}
		return a, a.forward(msg)

	case messages.ViewChanged:
		return a.switchTo(msg.View)

	case messages.ResultSelected:
		item := msg.Item
		a.selected = &item
		return a, tea.Quit

	case messages.WorkspacesLoaded:
		a.workspacesView, cmd = a.workspacesView.Update(msg)
		return a, cmd

	case messages.WorkspaceSelected:
		a.workspacesView, cmd = a.workspacesView.Update(msg)
		if msg.Err != nil {
			return a, cmd
		}
		a.currentView = messages.ViewSearch
		return a, a.searchView.SetWorkspace(msg.Workspace.ID)

	// Search traffic belongs to the search view even while another view is shown.
	case messages.SearchRequested, messages.SearchCompleted, messages.LastSearchLoaded:
		a.searchView, cmd = a.searchView.Update(msg)
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	return a, a.forward(msg)
}

// forward passes msg to the active view.
func (a *App) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewWorkspaces:
		a.workspacesView, cmd = a.workspacesView.Update(msg)
	default:
		a.searchView, cmd = a.searchView.Update(msg)
	}
	return cmd
}

func (a *App) switchTo(view messages.ViewType) (tea.Model, tea.Cmd) {
	a.currentView = view
	if view == messages.ViewWorkspaces {
		return a, a.workspacesView.Init()
	}
	return a, nil
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewWorkspaces:
		return a.workspacesView.View()
	default:
		return a.searchView.View()
	}
}

// Run starts the TUI application and returns the result the user opened,
// or nil if they quit without choosing.
func (a *App) Run() (*domain.Item, error) {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	if _, err := p.Run(); err != nil {
		return nil, err
	}
	return a.selected, nil
}

// Selected returns the result the user opened, or nil.
func (a *App) Selected() *domain.Item {
	return a.selected
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// SearchView returns the search view.
func (a *App) SearchView() *search.View {
	return a.searchView
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on the app and every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.searchView.SetDimensions(width, height)
	a.workspacesView.SetDimensions(width, height)
}
