// Package list provides the result list component for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/custodia-labs/quickfind/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/quickfind/internal/core/domain"
)

// Glyphs stand in for image icons, which a terminal cannot show.
const (
	GlyphPage  = "▤"
	GlyphImage = "▣"
)

// UntitledLabel is shown for results with an empty title.
const UntitledLabel = "Untitled"

// linesPerItem is the height of one rendered item: title, path and text.
const linesPerItem = 3

// ResultList displays resolved search items in a navigable list.
type ResultList struct {
	items    []domain.Item
	total    int
	selected int
	tag      string
	backend  string
	styles   *styles.Styles
	width    int
	height   int
}

// NewResultList creates a new result list. tag is the match tag used in
// item titles and text.
func NewResultList(s *styles.Styles, tag string) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if tag == "" {
		tag = domain.DefaultHighlightTag
	}

	return &ResultList{
		styles: s,
		tag:    tag,
		width:  80,
		height: 10,
	}
}

// SetBackendTag sets the backend match tag, whose spans are shown like
// match spans.
func (r *ResultList) SetBackendTag(tag string) {
	r.backend = tag
}

// Init initialises the result list.
func (r *ResultList) Init() tea.Cmd {
	return nil
}

// View renders the result list.
func (r *ResultList) View() string {
	if len(r.items) == 0 {
		return r.styles.Muted.Render("No results")
	}

	header := fmt.Sprintf("Results (%d)", len(r.items))
	if r.total > len(r.items) {
		header = fmt.Sprintf("Results (%d of %d)", len(r.items), r.total)
	}
	lines := []string{r.styles.Subtitle.Render(header), ""}

	visible := (r.height - 2) / linesPerItem
	if visible < 1 {
		visible = 1
	}
	start := 0
	if r.selected >= visible {
		start = r.selected - visible + 1
	}
	end := min(start+visible, len(r.items))

	for i := start; i < end; i++ {
		lines = append(lines, r.renderItem(i, &r.items[i]))
	}

	return strings.Join(lines, "\n")
}

// renderItem formats one item as icon and title, breadcrumb, then text.
func (r *ResultList) renderItem(index int, item *domain.Item) string {
	indicator := "  "
	base, match := r.styles.Normal, r.styles.Match
	if index == r.selected {
		indicator = "> "
		base = r.styles.Selected
		match = r.styles.Selected.Underline(true)
	}

	title := styles.Retag(item.Title, r.backend, r.tag)
	if styles.StripMarked(title, r.tag) == "" {
		title = UntitledLabel
	}
	titleLine := base.Render(indicator+IconGlyph(item.Icon)+" ") +
		styles.RenderMarked(singleLine(title), r.tag, base, match)

	var path string
	if crumbs := item.Path(); len(crumbs) > 0 {
		path = r.styles.Breadcrumb.Render("    " + strings.Join(crumbs, " / "))
	}

	snippet := singleLine(styles.Retag(item.Text, r.backend, r.tag))
	text := "    " + styles.RenderMarked(snippet, r.tag, r.styles.Muted, r.styles.Match)

	width := max(r.width-2, 20)
	return ansi.Truncate(titleLine, width, "…") + "\n" +
		ansi.Truncate(path, width, "…") + "\n" +
		ansi.Truncate(text, width, "…")
}

// IconGlyph returns a terminal stand-in for an icon.
func IconGlyph(icon domain.Icon) string {
	switch icon.Type {
	case domain.IconEmoji:
		if icon.Value != "" {
			return icon.Value
		}
		return GlyphPage
	case domain.IconImage:
		if icon.IsSVG() {
			return GlyphPage
		}
		return GlyphImage
	default:
		return GlyphPage
	}
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SetItems replaces the list contents and resets the selection.
func (r *ResultList) SetItems(items []domain.Item, total int) {
	r.items = items
	r.total = total
	r.selected = 0
}

// Items returns the current items.
func (r *ResultList) Items() []domain.Item {
	return r.items
}

// Total returns the backend's total hit count.
func (r *ResultList) Total() int {
	return r.total
}

// Selected returns the index of the selected item.
func (r *ResultList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *ResultList) SetSelected(index int) {
	if index >= 0 && index < len(r.items) {
		r.selected = index
	}
}

// SelectedItem returns the currently selected item, or nil if none.
func (r *ResultList) SelectedItem() *domain.Item {
	if len(r.items) == 0 || r.selected < 0 || r.selected >= len(r.items) {
		return nil
	}
	return &r.items[r.selected]
}

// MoveUp moves selection up.
func (r *ResultList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *ResultList) MoveDown() {
	if r.selected < len(r.items)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Count returns the number of items.
func (r *ResultList) Count() int {
	return len(r.items)
}

// IsEmpty returns whether the list is empty.
func (r *ResultList) IsEmpty() bool {
	return len(r.items) == 0
}
