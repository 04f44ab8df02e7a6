// Package cli provides the cobra command tree for quickfind.
package cli

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/quickfind/internal/core/ports/driving"
	"github.com/custodia-labs/quickfind/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	searchService   driving.SearchService
	settingsService driving.SettingsService
)

var verbose bool

var (
	errSearchNotConfigured   = errors.New("search service not configured")
	errSettingsNotConfigured = errors.New("settings service not configured")
)

var rootCmd = &cobra.Command{
	Use:   "quickfind",
	Short: "Search a Notion workspace from the terminal",
	Long: `quickfind runs Notion's quick-find search and prints each hit with its
title, breadcrumb path, highlighted snippet and page URL.

Run without a subcommand for the interactive search UI.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// SetServices injects the driving ports the commands run against.
func SetServices(search driving.SearchService, settings driving.SettingsService) {
	searchService = search
	settingsService = settings
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx, which is cancelled on
// interrupt by the caller.
func ExecuteContext(ctx context.Context) error {
	rootCmd.SetOut(os.Stdout)
	return rootCmd.ExecuteContext(ctx)
}
