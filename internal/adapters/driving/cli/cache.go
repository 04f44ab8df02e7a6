package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/quickfind/internal/core/domain"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the last-search cache",
	Long: `The last search of each workspace is cached so the interactive UI can
show it again on startup.`,
}

var cacheShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the cached last search",
	Args:  cobra.NoArgs,
	RunE:  runCacheShow,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the cached last search",
	Args:  cobra.NoArgs,
	RunE:  runCacheClear,
}

func init() {
	cacheCmd.PersistentFlags().StringVarP(&searchWorkspace, "workspace", "w", "", "workspace id (default from config)")
	cacheCmd.AddCommand(cacheShowCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}

// cacheWorkspace resolves the workspace the cache commands act on.
func cacheWorkspace() (workspaceID string, highlight domain.HighlightSettings, err error) {
	if searchService == nil {
		return "", highlight, errSearchNotConfigured
	}
	if settingsService == nil {
		return "", highlight, errSettingsNotConfigured
	}
	settings, err := settingsService.Get()
	if err != nil {
		return "", highlight, fmt.Errorf("failed to load settings: %w", err)
	}
	workspaceID = settings.Notion.WorkspaceID
	if searchWorkspace != "" {
		workspaceID = searchWorkspace
	}
	if workspaceID == "" {
		return "", highlight, errNoWorkspace
	}
	return workspaceID, settings.Highlight, nil
}

func runCacheShow(cmd *cobra.Command, _ []string) error {
	workspaceID, highlight, err := cacheWorkspace()
	if err != nil {
		return err
	}

	cache, err := searchService.LastSearch(cmd.Context(), workspaceID)
	if err != nil {
		return fmt.Errorf("failed to read cache: %w", err)
	}
	if cache == nil {
		cmd.Println("No cached search.")
		return nil
	}

	if cache.Query == "" {
		cmd.Println("Last search: (recent pages)")
	} else {
		cmd.Printf("Last search: %q\n", cache.Query)
	}
	cmd.Println()
	outputSearchText(cmd.OutOrStdout(), &cache.SearchResult, highlight)
	return nil
}

func runCacheClear(cmd *cobra.Command, _ []string) error {
	workspaceID, _, err := cacheWorkspace()
	if err != nil {
		return err
	}

	if err := searchService.ClearLastSearch(cmd.Context(), workspaceID); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	cmd.Println("Cache cleared.")
	return nil
}
