// Package workspaces provides the workspace picker view for the TUI.
package workspaces

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/quickfind/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/quickfind/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/quickfind/internal/core/domain"
	"github.com/custodia-labs/quickfind/internal/core/ports/driving"
)

// ErrNoServices indicates the view cannot list or store workspaces.
var ErrNoServices = errors.New("workspace services are required")

// View lists the workspaces of the session and stores the chosen one as
// the default.
type View struct {
	styles          *styles.Styles
	searchService   driving.SearchService
	settingsService driving.SettingsService
	ctx             context.Context

	workspaces []domain.Workspace
	current    string
	selected   int
	loading    bool
	err        error
	width      int
	height     int
	ready      bool
}

// NewView creates a new workspace picker. current is the selected workspace id.
func NewView(
	s *styles.Styles,
	searchService driving.SearchService,
	settingsService driving.SettingsService,
	current string,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:          s,
		searchService:   searchService,
		settingsService: settingsService,
		ctx:             context.Background(),
		current:         current,
		width:           80,
		height:          24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the workspace list.
func (v *View) Init() tea.Cmd {
	if v.searchService == nil || v.settingsService == nil {
		v.err = ErrNoServices
		return nil
	}
	v.loading = true
	v.err = nil
	svc, ctx := v.searchService, v.ctx
	return func() tea.Msg {
		workspaces, err := svc.Workspaces(ctx)
		return messages.WorkspacesLoaded{Workspaces: workspaces, Err: err}
	}
}

// Update handles messages for the workspace picker.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.WorkspacesLoaded:
		v.loading = false
		v.err = msg.Err
		v.workspaces = msg.Workspaces
		v.selected = 0
		for i, ws := range v.workspaces {
			if ws.ID == v.current {
				v.selected = i
			}
		}
		return v, nil

	case messages.WorkspaceSelected:
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.current = msg.Workspace.ID
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}
	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k", "ctrl+p":
		if v.selected > 0 {
			v.selected--
		}
	case "down", "j", "ctrl+n":
		if v.selected < len(v.workspaces)-1 {
			v.selected++
		}
	case "enter":
		return v, v.choose()
	case "esc", "q":
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewSearch} }
	}
	return v, nil
}

// choose stores the highlighted workspace as the default.
func (v *View) choose() tea.Cmd {
	if v.loading || len(v.workspaces) == 0 || v.settingsService == nil {
		return nil
	}
	ws := v.workspaces[v.selected]
	settings := v.settingsService
	return func() tea.Msg {
		err := settings.SetWorkspace(ws.ID)
		return messages.WorkspaceSelected{Workspace: ws, Err: err}
	}
}

// View renders the picker.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Workspaces"))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading workspaces..."))
		b.WriteString("\n")
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + domain.UserMessage(v.err)))
		b.WriteString("\n")
	case len(v.workspaces) == 0:
		b.WriteString(v.styles.Muted.Render("No workspaces found"))
		b.WriteString("\n")
	}

	if !v.loading {
		for i, ws := range v.workspaces {
			marker := "  "
			if ws.ID == v.current {
				marker = "● "
			}
			line := marker + ws.Name
			if i == v.selected {
				b.WriteString(v.styles.Selected.Render("> " + line))
			} else {
				b.WriteString(v.styles.Normal.Render("  " + line))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[↑/↓] Navigate  [Enter] Select  [Esc] Back"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Workspaces returns the loaded workspaces.
func (v *View) Workspaces() []domain.Workspace {
	return v.workspaces
}

// Selected returns the highlighted index.
func (v *View) Selected() int {
	return v.selected
}

// Current returns the id of the default workspace.
func (v *View) Current() string {
	return v.current
}

// Err returns the last error, if any.
func (v *View) Err() error {
	return v.err
}
