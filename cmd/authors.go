package cmd

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mcnews-project/newsctl/internal/output"
)

var authorsCmd = &cobra.Command{
	Use:   "authors",
	Short: "Browse the author directory",
}

var authorsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List authors",
	RunE:    runAuthorsList,
}

func init() {
	rootCmd.AddCommand(authorsCmd)
	authorsCmd.AddCommand(authorsListCmd)

	authorsListCmd.Flags().Bool("json", false, "output as JSON")
}

func runAuthorsList(cmd *cobra.Command, args []string) error {
	printer := newPrinter()

	authors, err := articleRepo().GetAuthors(cmd.Context())
	if err != nil {
		return output.FromAPIError("listing authors failed", err)
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(authors)
	}

	if len(authors) == 0 {
		printer.Warning("No authors found")
		return nil
	}

	table := output.NewTable([]string{"ID", "NAME", "LOGIN", "EMAIL", "SINCE"})
	for _, a := range authors {
		table.AddRow([]string{
			strconv.Itoa(a.UserID),
			a.FullName(),
			a.Login,
			a.Email,
			a.CreatedAt,
		})
	}
	table.Render()

	printer.Info("Total: %d author(s)", len(authors))
	return nil
}
