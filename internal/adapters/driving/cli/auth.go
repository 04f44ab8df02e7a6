package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

//nolint:gosec // G101: config key name, not a credential.
const tokenKey = "notion.token"

var authToken string

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the Notion session",
	Long: `quickfind authenticates with the token_v2 cookie of a logged-in Notion
browser session. Copy it from your browser's developer tools.`,
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store a session token",
	Long: `Store the token_v2 session cookie.

The token is read from --token, or prompted for without echo. When stdin is
not a terminal the first line of stdin is used.

Examples:
  quickfind auth login
  pbpaste | quickfind auth login`,
	Args: cobra.NoArgs,
	RunE: runAuthLogin,
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored session token",
	Args:  cobra.NoArgs,
	RunE:  runAuthLogout,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether a session token is stored",
	Args:  cobra.NoArgs,
	RunE:  runAuthStatus,
}

// authInput is where login reads the token from when --token is not given.
var authInput io.Reader = os.Stdin

func init() {
	authLoginCmd.Flags().StringVar(&authToken, "token", "", "session token (prompted if omitted)")
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authStatusCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthLogin(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	token := authToken
	if token == "" {
		var err error
		token, err = readToken(cmd)
		if err != nil {
			return err
		}
	}

	if err := settingsService.SetToken(token); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}
	cmd.Println("Logged in.")

	settings, err := settingsService.Get()
	if err == nil && settings.Notion.WorkspaceID == "" {
		cmd.Println("Run 'quickfind workspaces' to pick a workspace.")
	}
	return nil
}

// readToken prompts for the token without echo on a terminal, or reads a
// line from piped input.
func readToken(cmd *cobra.Command) (string, error) {
	if f, ok := authInput.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		cmd.Print("Session token (token_v2): ")
		b, err := term.ReadPassword(int(f.Fd()))
		cmd.Println()
		if err != nil {
			return "", fmt.Errorf("failed to read token: %w", err)
		}
		return strings.TrimSpace(string(b)), nil
	}

	line, err := bufio.NewReader(authInput).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func runAuthLogout(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}
	if err := settingsService.Set(tokenKey, ""); err != nil {
		return fmt.Errorf("failed to remove token: %w", err)
	}
	cmd.Println("Logged out.")
	return nil
}

func runAuthStatus(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if settings.HasSession() {
		cmd.Printf("Logged in (token %s)\n", maskToken(settings.Notion.Token))
	} else {
		cmd.Println("Not logged in.")
	}
	return nil
}
