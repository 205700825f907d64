package cmd

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mcnews-project/newsctl/internal/output"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Browse and manage tags",
}

var tagsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tags",
	RunE:    runTagsList,
}

var tagsCreateCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create a tag",
	Args:  cobra.ExactArgs(1),
	RunE:  runTagsCreate,
}

func init() {
	rootCmd.AddCommand(tagsCmd)
	tagsCmd.AddCommand(tagsListCmd)
	tagsCmd.AddCommand(tagsCreateCmd)

	tagsListCmd.Flags().Bool("json", false, "output as JSON")
}

func runTagsList(cmd *cobra.Command, args []string) error {
	printer := newPrinter()

	tags, err := articleRepo().GetTags(cmd.Context())
	if err != nil {
		return output.FromAPIError("listing tags failed", err)
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(tags)
	}

	if len(tags) == 0 {
		printer.Warning("No tags defined")
		return nil
	}

	table := output.NewTable([]string{"ID", "NAME"})
	for _, t := range tags {
		table.AddRow([]string{strconv.Itoa(t.ID), t.Name})
	}
	table.Render()

	printer.PrintHints("tags list")
	return nil
}

func runTagsCreate(cmd *cobra.Command, args []string) error {
	printer := newPrinter()

	tag, err := articleRepo().CreateTag(cmd.Context(), args[0])
	if err != nil {
		return output.FromAPIError("creating tag failed", err)
	}

	printer.Success("Created tag %d: %s", tag.ID, printer.Bold(tag.Name))
	return nil
}
