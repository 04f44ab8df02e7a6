package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var workspacesCmd = &cobra.Command{
	Use:     "workspaces",
	Aliases: []string{"ws"},
	Short:   "List the workspaces the session can search",
	Long: `List the workspaces the session can search. The default workspace is
marked with an asterisk.`,
	Args: cobra.NoArgs,
	RunE: runWorkspacesList,
}

var workspacesSelectCmd = &cobra.Command{
	Use:   "select [workspace-id]",
	Short: "Set the default workspace",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorkspacesSelect,
}

func init() {
	workspacesCmd.AddCommand(workspacesSelectCmd)
	rootCmd.AddCommand(workspacesCmd)
}

func runWorkspacesList(cmd *cobra.Command, _ []string) error {
	if searchService == nil {
		return errSearchNotConfigured
	}
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	workspaces, err := searchService.Workspaces(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list workspaces: %w", err)
	}
	if len(workspaces) == 0 {
		cmd.Println("No workspaces found.")
		return nil
	}

	for _, ws := range workspaces {
		marker := " "
		if ws.ID == settings.Notion.WorkspaceID {
			marker = "*"
		}
		cmd.Printf("%s %s  %s\n", marker, ws.ID, ws.Name)
	}
	return nil
}

func runWorkspacesSelect(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}
	if err := settingsService.SetWorkspace(args[0]); err != nil {
		return fmt.Errorf("failed to set workspace: %w", err)
	}
	cmd.Printf("Default workspace set to %s\n", args[0])
	return nil
}
