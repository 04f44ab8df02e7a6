package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and change configuration",
	Long: `View and change quickfind configuration.

Settings are stored in ~/.quickfind/config.toml. Changes made to the file
while the interactive UI is running are picked up immediately.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Set a configuration value. An empty value restores the default.

Examples:
  quickfind config set search.sort last_edited
  quickfind config set search.limit 20
  quickfind config set highlight.tag em`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List configuration keys",
	Args:  cobra.NoArgs,
	RunE:  runConfigKeys,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configKeysCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("[Notion]")
	cmd.Printf("  Host: %s\n", settings.Notion.Host)
	cmd.Printf("  Workspace: %s\n", valueOrUnset(settings.Notion.WorkspaceID))
	cmd.Printf("  Token: %s\n", maskToken(settings.Notion.Token))
	cmd.Println()

	cmd.Println("[Search]")
	cmd.Printf("  Sort: %s\n", settings.Search.Sort.Description())
	cmd.Printf("  Only titles: %t\n", settings.Search.OnlyTitles)
	cmd.Printf("  Limit: %d\n", settings.Search.Limit)
	cmd.Printf("  Cache: %t\n", settings.Search.Cache)
	cmd.Printf("  Debounce: %s\n", settings.Search.Debounce)
	cmd.Println()

	cmd.Println("[Display]")
	cmd.Printf("  Icon width: %d\n", settings.Display.IconWidth)
	cmd.Println()

	cmd.Println("[Highlight]")
	cmd.Printf("  Tag: %s\n", settings.Highlight.Tag)
	cmd.Println()

	if err := settings.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	} else if !settings.HasSession() {
		cmd.Println("Not logged in. Run 'quickfind auth login'.")
	} else {
		cmd.Println("Configuration is valid.")
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	if value == "" {
		cmd.Printf("Reset %s to default\n", key)
	} else {
		cmd.Printf("Set %s = %s\n", key, value)
	}
	return nil
}

func runConfigKeys(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}
	cmd.Println(strings.Join(settingsService.Keys(), "\n"))
	return nil
}

func valueOrUnset(v string) string {
	if v == "" {
		return "(not set)"
	}
	return v
}

// maskToken shows only the last four characters of a session token.
func maskToken(token string) string {
	if token == "" {
		return "(not set)"
	}
	if len(token) <= 8 {
		return strings.Repeat("*", len(token))
	}
	return strings.Repeat("*", 8) + token[len(token)-4:]
}

