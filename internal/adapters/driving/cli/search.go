package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/quickfind/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/quickfind/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/quickfind/internal/core/domain"
)

var (
	searchSort       string
	searchOnlyTitles bool
	searchLimit      int
	searchWorkspace  string
	searchJSON       bool
	searchYAML       bool
	searchNoCache    bool
)

var errNoWorkspace = errors.New("no workspace selected: run 'quickfind workspaces select <id>'")

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the workspace",
	Long: `Runs a quick-find search and prints the matching pages and blocks with
their breadcrumb path and page URL.

An empty query lists recently created pages. Matches are shown in bold
when writing to a terminal.

Examples:
  quickfind search grade calculator
  quickfind search --sort last_edited --only-titles roadmap
  quickfind search --json budget | jq '.items[].url'`,
	Args: cobra.ArbitraryArgs,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchSort, "sort", "",
		"sort order: relevance, last_edited or created (default from config)")
	searchCmd.Flags().BoolVar(&searchOnlyTitles, "only-titles", false, "match page titles only")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of results (default from config)")
	searchCmd.Flags().StringVarP(&searchWorkspace, "workspace", "w", "", "workspace id (default from config)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().BoolVar(&searchYAML, "yaml", false, "output results as YAML")
	searchCmd.Flags().BoolVar(&searchNoCache, "no-cache", false, "do not store this search as the last search")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errSearchNotConfigured
	}
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	opts, err := searchOptions(settings)
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	result, err := searchService.Search(cmd.Context(), query, opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	switch {
	case searchJSON:
		return outputSearchJSON(cmd.OutOrStdout(), result)
	case searchYAML:
		return outputSearchYAML(cmd.OutOrStdout(), result)
	default:
		outputSearchText(cmd.OutOrStdout(), result, settings.Highlight)
		return nil
	}
}

// searchOptions applies the command flags on top of the configured defaults.
func searchOptions(settings *domain.Settings) (domain.SearchOptions, error) {
	opts := settings.SearchOptions()

	if searchWorkspace != "" {
		opts.WorkspaceID = searchWorkspace
	}
	if opts.WorkspaceID == "" {
		return opts, errNoWorkspace
	}
	if searchSort != "" {
		sortBy := domain.SortBy(searchSort)
		if !sortBy.IsValid() {
			return opts, fmt.Errorf("%w: unknown sort %q", domain.ErrInvalidInput, searchSort)
		}
		opts.Sort = sortBy
	}
	if searchOnlyTitles {
		opts.OnlyTitles = true
	}
	if searchLimit < 0 {
		return opts, fmt.Errorf("%w: limit must be positive", domain.ErrInvalidInput)
	}
	if searchLimit > 0 {
		opts.Limit = searchLimit
	}
	if searchNoCache {
		opts.SaveToCache = false
	}
	return opts, nil
}

func outputSearchJSON(w io.Writer, result *domain.SearchResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func outputSearchYAML(w io.Writer, result *domain.SearchResult) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	return enc.Close()
}

func outputSearchText(w io.Writer, result *domain.SearchResult, highlight domain.HighlightSettings) {
	if result == nil || len(result.Items) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	marked := markRenderer(w, highlight)
	for i := range result.Items {
		item := &result.Items[i]

		title := item.Title
		if title == "" {
			title = list.UntitledLabel
		}
		fmt.Fprintf(w, "%3d. %s %s\n", i+1, list.IconGlyph(item.Icon), marked(title))
		if path := item.Path(); len(path) > 0 {
			fmt.Fprintf(w, "     %s\n", strings.Join(path, " / "))
		}
		if item.Text != "" {
			fmt.Fprintf(w, "     %s\n", marked(item.Text))
		}
		if item.URL != "" {
			fmt.Fprintf(w, "     %s\n", item.URL)
		}
		fmt.Fprintln(w)
	}

	if result.Total > len(result.Items) {
		fmt.Fprintf(w, "Showing %d of %d results.\n", len(result.Items), result.Total)
	}
}

// markRenderer returns a function that renders highlight tags as bold on a
// terminal and strips them everywhere else. Backend tags are treated as
// highlight tags.
func markRenderer(w io.Writer, highlight domain.HighlightSettings) func(string) string {
	tag := highlight.Tag
	if tag == "" {
		tag = domain.DefaultHighlightTag
	}
	if !isTerminal(w) {
		return func(s string) string {
			return styles.StripMarked(styles.Retag(s, highlight.BackendTag, tag), tag)
		}
	}
	base := lipgloss.NewStyle()
	match := lipgloss.NewStyle().Bold(true)
	return func(s string) string {
		return styles.RenderMarked(styles.Retag(s, highlight.BackendTag, tag), tag, base, match)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
