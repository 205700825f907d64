package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcnews-project/newsctl/internal/api"
	"github.com/mcnews-project/newsctl/internal/domain"
	"github.com/mcnews-project/newsctl/internal/output"
	"github.com/mcnews-project/newsctl/internal/repo"
)

var articlesCmd = &cobra.Command{
	Use:     "articles",
	Aliases: []string{"a"},
	Short:   "Browse and manage articles",
}

var articlesListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List articles",
	Long: `List articles, optionally filtered by status, tag or search text.

Examples:
  newsctl articles list                        # First page of articles
  newsctl articles list --status published     # Only published
  newsctl articles list --search golang        # Full-text search
  newsctl articles list --tag 3 --limit 20     # By tag, smaller page
  newsctl articles list --mine                 # Your own articles
  newsctl articles list --json                 # Machine-readable output`,
	RunE: runArticlesList,
}

var articlesGetCmd = &cobra.Command{
	Use:   "get ID",
	Short: "Show a single article",
	Args:  cobra.ExactArgs(1),
	RunE:  runArticlesGet,
}

var articlesDeleteCmd = &cobra.Command{
	Use:     "delete ID",
	Aliases: []string{"rm"},
	Short:   "Delete an article",
	Args:    cobra.ExactArgs(1),
	RunE:    runArticlesDelete,
}

func init() {
	rootCmd.AddCommand(articlesCmd)
	articlesCmd.AddCommand(articlesListCmd)
	articlesCmd.AddCommand(articlesGetCmd)
	articlesCmd.AddCommand(articlesDeleteCmd)

	articlesListCmd.Flags().Int("skip", 0, "number of articles to skip")
	articlesListCmd.Flags().Int("limit", api.DefaultPageLimit, "page size")
	articlesListCmd.Flags().String("status", "", "filter by status (draft, moderation, rejected, published, or id)")
	articlesListCmd.Flags().String("search", "", "filter by search text")
	articlesListCmd.Flags().Int("tag", 0, "filter by tag id")
	articlesListCmd.Flags().Bool("mine", false, "only the logged-in user's articles")
	articlesListCmd.Flags().Bool("json", false, "output as JSON")

	articlesGetCmd.Flags().Bool("json", false, "output as JSON")
	articlesGetCmd.Flags().Bool("body", false, "print the full body")
}

// parseStatus accepts a status name or numeric id.
func parseStatus(s string) (int, error) {
	switch strings.ToLower(s) {
	case "draft":
		return domain.StatusDraft, nil
	case "moderation":
		return domain.StatusModeration, nil
	case "rejected":
		return domain.StatusRejected, nil
	case "published":
		return domain.StatusPublished, nil
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unknown status %q", s)
	}
	return id, nil
}

func runArticlesList(cmd *cobra.Command, args []string) error {
	printer := newPrinter()

	skip, _ := cmd.Flags().GetInt("skip")
	limit, _ := cmd.Flags().GetInt("limit")
	statusArg, _ := cmd.Flags().GetString("status")
	search, _ := cmd.Flags().GetString("search")
	tagID, _ := cmd.Flags().GetInt("tag")
	mine, _ := cmd.Flags().GetBool("mine")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	opts := repo.ListOptions{
		Skip:   skip,
		Limit:  limit,
		Search: strings.TrimSpace(search),
	}
	if statusArg != "" {
		statusID, err := parseStatus(statusArg)
		if err != nil {
			return &output.CLIError{
				Summary:    err.Error(),
				Suggestion: "Use draft, moderation, rejected or published",
				ExitCode:   output.ExitUsageError,
			}
		}
		opts.Status = &statusID
	}
	if cmd.Flags().Changed("tag") {
		opts.TagID = &tagID
	}

	articles, err := articleRepo().GetArticles(cmd.Context(), opts)
	if err != nil {
		return output.FromAPIError("listing articles failed", err)
	}

	if mine {
		articles = filterByCurrentUser(cmd, articles)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(articles)
	}

	if len(articles) == 0 {
		printer.Warning("No articles found")
		return nil
	}

	table := output.NewTable([]string{"ID", "TITLE", "AUTHOR", "STATUS", "TAGS", "CREATED"})
	for _, a := range articles {
		table.AddRow([]string{
			strconv.Itoa(a.ID),
			truncate(a.Title, 48),
			a.AuthorName,
			printer.StatusBadge(a.StatusID),
			tagNames(a.Tags),
			a.CreatedAt,
		})
	}
	table.Render()

	printer.Info("Total: %d article(s)", len(articles))
	return nil
}

// filterByCurrentUser keeps only the logged-in user's articles. The server
// has no owner filter, so the page is narrowed client-side.
func filterByCurrentUser(cmd *cobra.Command, articles []domain.Article) []domain.Article {
	user, err := authRepo().CurrentUser(cmd.Context())
	if err != nil {
		logger.Debug("could not resolve current user for --mine", "error", err)
		return nil
	}

	var own []domain.Article
	for _, a := range articles {
		if a.AuthorID == user.UserID {
			own = append(own, a)
		}
	}
	return own
}

func runArticlesGet(cmd *cobra.Command, args []string) error {
	printer := newPrinter()

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return &output.CLIError{
			Summary:  fmt.Sprintf("invalid article id %q", args[0]),
			ExitCode: output.ExitUsageError,
		}
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	fullBody, _ := cmd.Flags().GetBool("body")

	article, err := articleRepo().GetArticle(cmd.Context(), id)
	if err != nil {
		return output.FromAPIError("fetching article failed", err)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(article)
	}

	printer.Header(article.Title)
	printer.Print("Author:  %s", article.AuthorName)
	printer.Print("Status:  %s", printer.StatusBadge(article.StatusID))
	printer.Print("Tags:    %s", tagNames(article.Tags))
	printer.Print("Created: %s", article.CreatedAt)
	if article.Image != "" {
		printer.Print("Image:   attached (%d bytes base64)", len(article.Image))
	}
	printer.Print("")
	if fullBody {
		printer.Print("%s", article.Body)
	} else {
		printer.Print("%s", truncate(article.Body, 400))
	}
	return nil
}

func runArticlesDelete(cmd *cobra.Command, args []string) error {
	printer := newPrinter()

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return &output.CLIError{
			Summary:  fmt.Sprintf("invalid article id %q", args[0]),
			ExitCode: output.ExitUsageError,
		}
	}

	if err := articleRepo().DeleteArticle(cmd.Context(), id); err != nil {
		return output.FromAPIError("deleting article failed", err)
	}

	printer.Success("Deleted article %d", id)
	return nil
}

func tagNames(tags []domain.Tag) string {
	if len(tags) == 0 {
		return "-"
	}
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}
	return strings.Join(names, ", ")
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
