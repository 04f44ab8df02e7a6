package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/quickfind/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive search UI",
	Long: `Launch the interactive search UI. This is also what runs when quickfind
is started without a subcommand.

Results update as you type. The URL of the chosen result is printed on exit.

Controls:
  ↑/ctrl+p, ↓/ctrl+n - Navigate results
  Enter              - Open result
  ctrl+s             - Cycle sort order
  ctrl+t             - Toggle titles only
  ctrl+w             - Switch workspace
  Esc                - Clear query / Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app, err := tui.NewApp(tui.NewPorts(searchService, settingsService))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	item, err := app.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	if item != nil && item.URL != "" {
		cmd.Println(item.URL)
	}
	return nil
}
