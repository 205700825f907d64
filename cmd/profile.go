package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcnews-project/newsctl/internal/output"
	"github.com/mcnews-project/newsctl/internal/repo"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Inspect and manage your profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile",
	RunE:  runProfileShow,
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update profile fields",
	Long: `Update profile fields. Only the supplied flags are transmitted; omitted
fields keep their server-side values.

Examples:
  newsctl profile update --email new@example.com
  newsctl profile update --first-name Alice --photo me.jpg`,
	RunE: runProfileUpdate,
}

var profilePasswdCmd = &cobra.Command{
	Use:   "passwd",
	Short: "Change your password",
	RunE:  runProfilePasswd,
}

var profilePDFCmd = &cobra.Command{
	Use:   "pdf",
	Short: "Export your profile as PDF",
	RunE:  runProfilePDF,
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileUpdateCmd)
	profileCmd.AddCommand(profilePasswdCmd)
	profileCmd.AddCommand(profilePDFCmd)

	profileShowCmd.Flags().Bool("json", false, "output as JSON")

	profileUpdateCmd.Flags().String("first-name", "", "first name")
	profileUpdateCmd.Flags().String("last-name", "", "last name")
	profileUpdateCmd.Flags().String("middle-name", "", "middle name")
	profileUpdateCmd.Flags().String("email", "", "email address")
	profileUpdateCmd.Flags().String("photo", "", "JPEG file to use as profile photo")

	profilePasswdCmd.Flags().String("old", "", "current password (prompted when omitted)")
	profilePasswdCmd.Flags().String("new", "", "new password (prompted when omitted)")

	profilePDFCmd.Flags().StringP("output", "o", "profile.pdf", "output file")
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	printer := newPrinter()

	user, err := authRepo().CurrentUser(cmd.Context())
	if err != nil {
		return output.FromAPIError("fetching profile failed", err)
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(user)
	}

	printer.Header(user.FullName())
	printer.Print("Login:      %s", user.Login)
	printer.Print("Email:      %s", user.Email)
	if user.MiddleName != "" {
		printer.Print("Middle:     %s", user.MiddleName)
	}
	printer.Print("Born:       %s", user.BirthDate)
	printer.Print("Member for: since %s", user.CreatedAt)
	if user.Photo != "" {
		printer.Print("Photo:      set (%d bytes base64)", len(user.Photo))
	}
	printer.PrintHints("profile show")
	return nil
}

func runProfileUpdate(cmd *cobra.Command, args []string) error {
	printer := newPrinter()

	form := repo.ProfileUpdate{}
	changed := false

	setIfChanged := func(flag string, dst **string) {
		if cmd.Flags().Changed(flag) {
			v, _ := cmd.Flags().GetString(flag)
			*dst = &v
			changed = true
		}
	}
	setIfChanged("first-name", &form.FirstName)
	setIfChanged("last-name", &form.LastName)
	setIfChanged("middle-name", &form.MiddleName)
	setIfChanged("email", &form.Email)

	if cmd.Flags().Changed("photo") {
		path, _ := cmd.Flags().GetString("photo")
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading photo file: %w", err)
		}
		form.Photo = data
		changed = true
	}

	if !changed {
		return &output.CLIError{
			Summary:    "nothing to update",
			Suggestion: "Pass at least one of --first-name, --last-name, --middle-name, --email, --photo",
			ExitCode:   output.ExitUsageError,
		}
	}

	user, err := authRepo().UpdateProfile(cmd.Context(), form)
	if err != nil {
		return output.FromAPIError("updating profile failed", err)
	}

	printer.Success("Profile updated for %s", printer.Bold(user.Login))
	printer.PrintHints("profile update")
	return nil
}

func runProfilePasswd(cmd *cobra.Command, args []string) error {
	printer := newPrinter()

	oldPassword, _ := cmd.Flags().GetString("old")
	if oldPassword == "" {
		var err error
		oldPassword, err = promptLine("Current password: ")
		if err != nil {
			return err
		}
	}
	newPassword, _ := cmd.Flags().GetString("new")
	if newPassword == "" {
		var err error
		newPassword, err = promptLine("New password: ")
		if err != nil {
			return err
		}
	}

	if err := authRepo().ChangePassword(cmd.Context(), oldPassword, newPassword); err != nil {
		return output.FromAPIError("changing password failed", err)
	}

	printer.Success("Password changed")
	printer.PrintHints("profile passwd")
	return nil
}

func runProfilePDF(cmd *cobra.Command, args []string) error {
	printer := newPrinter()

	data, err := authRepo().ExportProfilePDF(cmd.Context())
	if err != nil {
		return output.FromAPIError("exporting profile failed", err)
	}

	path, _ := cmd.Flags().GetString("output")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	printer.Success("Wrote %s (%d bytes)", path, len(data))
	return nil
}
