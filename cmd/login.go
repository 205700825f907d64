package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcnews-project/newsctl/internal/output"
)

var loginCmd = &cobra.Command{
	Use:   "login [LOGIN]",
	Short: "Authenticate and start a session",
	Long: `Authenticate against the service and persist the issued session token.

The token is attached to every subsequent request until 'newsctl logout'.

Examples:
  newsctl login alice                  # Prompt for the password
  newsctl login alice --password s3cr  # Non-interactive (scripting only)`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	Long:  `Discard the stored session token. Subsequent requests are sent unauthenticated.`,
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)

	loginCmd.Flags().String("password", "", "password (prompted when omitted)")
}

func runLogin(cmd *cobra.Command, args []string) error {
	printer := newPrinter()

	login := ""
	if len(args) > 0 {
		login = args[0]
	}
	if login == "" {
		var err error
		login, err = promptLine("Login: ")
		if err != nil {
			return err
		}
	}
	if login == "" {
		return &output.CLIError{
			Summary:  "no login supplied",
			ExitCode: output.ExitUsageError,
		}
	}

	password, _ := cmd.Flags().GetString("password")
	if password == "" {
		var err error
		password, err = promptLine("Password: ")
		if err != nil {
			return err
		}
	}

	token, err := authRepo().Login(cmd.Context(), login, password)
	if err != nil {
		return output.FromAPIError("login failed", err)
	}

	if err := store.Save(token, login); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}

	logger.Debug("session started", "login", login)
	printer.Success("Logged in as %s", printer.Bold(login))
	printer.PrintHints("login")
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	printer := newPrinter()

	if !store.Active() {
		printer.Warning("No active session")
		return nil
	}

	login, _ := store.Login()
	if err := store.Clear(); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}

	printer.Success("Logged out %s", login)
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	printer := newPrinter()

	if !store.Active() {
		printer.Warning("Not logged in")
		return nil
	}

	user, err := authRepo().CurrentUser(cmd.Context())
	if err != nil {
		return output.FromAPIError("fetching current user failed", err)
	}

	printer.Print("%s (%s)", printer.Bold(user.FullName()), user.Login)
	return nil
}

// promptLine reads a single trimmed line from stdin.
func promptLine(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
