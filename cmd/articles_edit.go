package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mcnews-project/newsctl/internal/api"
	"github.com/mcnews-project/newsctl/internal/domain"
	"github.com/mcnews-project/newsctl/internal/output"
)

var articlesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Submit a new article",
	Long: `Create an article. The author is the logged-in user.

With --image the submission switches to a multipart upload carrying the
attachment; otherwise a plain JSON payload is sent.

Examples:
  newsctl articles create --title "Hello" --body "First post."
  newsctl articles create --title "Hello" --body-file post.txt \
    --status moderation --tags 1,3 --image cover.jpg`,
	RunE: runArticlesCreate,
}

var articlesUpdateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Update an existing article",
	Long: `Update an article. Only the supplied flags are transmitted; omitted
fields keep their server-side values.

Examples:
  newsctl articles update 7 --title "New title"
  newsctl articles update 7 --status published
  newsctl articles update 7 --tags 2,5 --image cover.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runArticlesUpdate,
}

func init() {
	articlesCmd.AddCommand(articlesCreateCmd)
	articlesCmd.AddCommand(articlesUpdateCmd)

	for _, c := range []*cobra.Command{articlesCreateCmd, articlesUpdateCmd} {
		c.Flags().String("title", "", "article title")
		c.Flags().String("body", "", "article body text")
		c.Flags().String("body-file", "", "read the body from a file")
		c.Flags().String("status", "draft", "article status")
		c.Flags().IntSlice("tags", nil, "tag ids")
		c.Flags().String("image", "", "JPEG file to attach")
	}
}

// readBody resolves the body from --body or --body-file.
func readBody(cmd *cobra.Command) (string, bool, error) {
	if cmd.Flags().Changed("body-file") {
		path, _ := cmd.Flags().GetString("body-file")
		data, err := os.ReadFile(path)
		if err != nil {
			return "", false, fmt.Errorf("reading body file: %w", err)
		}
		return string(data), true, nil
	}
	body, _ := cmd.Flags().GetString("body")
	return body, cmd.Flags().Changed("body"), nil
}

// readImage loads the attachment when --image was given.
func readImage(cmd *cobra.Command) ([]byte, error) {
	if !cmd.Flags().Changed("image") {
		return nil, nil
	}
	path, _ := cmd.Flags().GetString("image")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading image file: %w", err)
	}
	return data, nil
}

func runArticlesCreate(cmd *cobra.Command, args []string) error {
	printer := newPrinter()
	ctx := cmd.Context()

	title, _ := cmd.Flags().GetString("title")
	body, _, err := readBody(cmd)
	if err != nil {
		return err
	}
	if title == "" || body == "" {
		return &output.CLIError{
			Summary:    "an article needs both a title and a body",
			Suggestion: "Pass --title and --body (or --body-file)",
			ExitCode:   output.ExitUsageError,
		}
	}

	statusArg, _ := cmd.Flags().GetString("status")
	statusID, err := parseStatus(statusArg)
	if err != nil {
		return &output.CLIError{Summary: err.Error(), ExitCode: output.ExitUsageError}
	}

	tagIDs, _ := cmd.Flags().GetIntSlice("tags")
	image, err := readImage(cmd)
	if err != nil {
		return err
	}

	// The author id and the tag catalog come from two independent
	// endpoints; fetch them concurrently.
	var (
		user      domain.User
		knownTags []domain.Tag
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = authRepo().CurrentUser(gctx)
		return err
	})
	if len(tagIDs) > 0 {
		g.Go(func() error {
			var err error
			knownTags, err = articleRepo().GetTags(gctx)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return output.FromAPIError("resolving author failed", err)
	}

	if len(tagIDs) > 0 {
		if err := checkTagIDs(tagIDs, knownTags); err != nil {
			return &output.CLIError{
				Summary:    err.Error(),
				Suggestion: "Run 'newsctl tags list' to see known tags",
				ExitCode:   output.ExitUsageError,
			}
		}
	}

	var created *api.ArticleDTO
	if image != nil || len(tagIDs) > 0 {
		created, err = client.CreateArticleMultipart(ctx, api.CreateArticleForm{
			Title:    title,
			Body:     body,
			AuthorID: user.UserID,
			StatusID: statusID,
			TagIDs:   tagIDs,
			Image:    image,
		})
	} else {
		created, err = client.CreateArticle(ctx, api.ArticleCreateDTO{
			AuthorID: user.UserID,
			Title:    title,
			Body:     body,
			StatusID: statusID,
		})
	}
	if err != nil {
		return output.FromAPIError("creating article failed", err)
	}

	printer.Success("Created article %d: %s", created.ArticleID, printer.Bold(created.Title))
	printer.PrintHints("articles create")
	return nil
}

func runArticlesUpdate(cmd *cobra.Command, args []string) error {
	printer := newPrinter()
	ctx := cmd.Context()

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return &output.CLIError{
			Summary:  fmt.Sprintf("invalid article id %q", args[0]),
			ExitCode: output.ExitUsageError,
		}
	}

	form := api.UpdateArticleForm{}
	changed := false

	if cmd.Flags().Changed("title") {
		title, _ := cmd.Flags().GetString("title")
		form.Title = &title
		changed = true
	}
	if body, ok, err := readBody(cmd); err != nil {
		return err
	} else if ok {
		form.Body = &body
		changed = true
	}
	if cmd.Flags().Changed("status") {
		statusArg, _ := cmd.Flags().GetString("status")
		statusID, err := parseStatus(statusArg)
		if err != nil {
			return &output.CLIError{Summary: err.Error(), ExitCode: output.ExitUsageError}
		}
		form.StatusID = &statusID
		changed = true
	}
	if cmd.Flags().Changed("tags") {
		tagIDs, _ := cmd.Flags().GetIntSlice("tags")
		if tagIDs == nil {
			tagIDs = []int{}
		}
		form.TagIDs = tagIDs
		changed = true
	}
	if image, err := readImage(cmd); err != nil {
		return err
	} else if image != nil {
		form.Image = image
		changed = true
	}

	if !changed {
		return &output.CLIError{
			Summary:    "nothing to update",
			Suggestion: "Pass at least one of --title, --body, --status, --tags, --image",
			ExitCode:   output.ExitUsageError,
		}
	}

	updated, err := client.UpdateArticleMultipart(ctx, id, form)
	if err != nil {
		return output.FromAPIError("updating article failed", err)
	}

	printer.Success("Updated article %d: %s", updated.ArticleID, printer.Bold(updated.Title))
	printer.PrintHints("articles update")
	return nil
}

// checkTagIDs verifies every requested tag id against the server's tag
// catalog before submitting.
func checkTagIDs(ids []int, known []domain.Tag) error {
	valid := make(map[int]bool, len(known))
	for _, t := range known {
		valid[t.ID] = true
	}
	for _, id := range ids {
		if !valid[id] {
			return fmt.Errorf("unknown tag id %d", id)
		}
	}
	return nil
}
