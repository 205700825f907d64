package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcnews-project/newsctl/internal/domain"
	"github.com/mcnews-project/newsctl/internal/output"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and log in",
	Long: `Register a new user account and start a session with it.

Examples:
  newsctl register --login alice --email alice@example.com \
    --first-name Alice --last-name Liddell \
    --birth-date 1999-04-01 --gender 2`,
	RunE: runRegister,
}

func init() {
	rootCmd.AddCommand(registerCmd)

	registerCmd.Flags().String("login", "", "login name (required)")
	registerCmd.Flags().String("password", "", "password (prompted when omitted)")
	registerCmd.Flags().String("email", "", "email address (required)")
	registerCmd.Flags().String("first-name", "", "first name (required)")
	registerCmd.Flags().String("last-name", "", "last name (required)")
	registerCmd.Flags().String("middle-name", "", "middle name")
	registerCmd.Flags().String("birth-date", "", "birth date, YYYY-MM-DD (required)")
	registerCmd.Flags().Int("gender", 0, "gender id (required)")

	_ = registerCmd.MarkFlagRequired("login")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("first-name")
	_ = registerCmd.MarkFlagRequired("last-name")
	_ = registerCmd.MarkFlagRequired("birth-date")
	_ = registerCmd.MarkFlagRequired("gender")
}

func runRegister(cmd *cobra.Command, args []string) error {
	printer := newPrinter()

	login, _ := cmd.Flags().GetString("login")
	email, _ := cmd.Flags().GetString("email")
	firstName, _ := cmd.Flags().GetString("first-name")
	lastName, _ := cmd.Flags().GetString("last-name")
	middleName, _ := cmd.Flags().GetString("middle-name")
	birthDate, _ := cmd.Flags().GetString("birth-date")
	genderID, _ := cmd.Flags().GetInt("gender")

	password, _ := cmd.Flags().GetString("password")
	if password == "" {
		var err error
		password, err = promptLine("Password: ")
		if err != nil {
			return err
		}
	}

	user := domain.User{
		FirstName:  firstName,
		LastName:   lastName,
		MiddleName: middleName,
		BirthDate:  birthDate,
		GenderID:   genderID,
		Email:      email,
		Login:      login,
	}

	auth := authRepo()
	registered, err := auth.Register(cmd.Context(), user, password)
	if err != nil {
		return output.FromAPIError("registration failed", err)
	}
	printer.Success("Registered %s (id %d)", printer.Bold(registered.Login), registered.UserID)

	// Registration is followed by an automatic login with the fresh
	// credentials.
	token, err := auth.Login(cmd.Context(), login, password)
	if err != nil {
		return output.FromAPIError("registered, but the automatic login failed", err)
	}
	if err := store.Save(token, login); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}

	printer.Success("Logged in as %s", printer.Bold(login))
	printer.PrintHints("register")
	return nil
}
