package cmd

import (
	"bufio"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mcnews-project/newsctl/internal/domain"
	"github.com/mcnews-project/newsctl/internal/output"
	"github.com/mcnews-project/newsctl/internal/repo"
	"github.com/mcnews-project/newsctl/internal/search"
)

var articlesSearchCmd = &cobra.Command{
	Use:   "search [TEXT]",
	Short: "Search articles",
	Long: `Search articles by text.

With TEXT the search runs once. With --interactive, query lines are read
from stdin: each line reschedules a debounced search, an empty line
submits the previous text immediately, and results from superseded
queries are discarded.

Examples:
  newsctl articles search golang
  newsctl articles search --interactive`,
	Args: cobra.MaximumNArgs(1),
	RunE: runArticlesSearch,
}

func init() {
	articlesCmd.AddCommand(articlesSearchCmd)

	articlesSearchCmd.Flags().BoolP("interactive", "i", false, "read queries from stdin with debouncing")
	articlesSearchCmd.Flags().Duration("quiet-window", search.DefaultQuiet, "debounce quiet interval")
}

func runArticlesSearch(cmd *cobra.Command, args []string) error {
	printer := newPrinter()
	interactive, _ := cmd.Flags().GetBool("interactive")

	if !interactive {
		if len(args) == 0 {
			return &output.CLIError{
				Summary:    "no search text supplied",
				Suggestion: "Pass the text as an argument or use --interactive",
				ExitCode:   output.ExitUsageError,
			}
		}
		return searchOnce(cmd, printer, args[0])
	}

	quiet, _ := cmd.Flags().GetDuration("quiet-window")
	return interactiveSearch(cmd, printer, quiet)
}

func searchOnce(cmd *cobra.Command, printer *output.Printer, text string) error {
	articles, err := articleRepo().GetArticles(cmd.Context(), repo.ListOptions{
		Search: strings.TrimSpace(text),
	})
	if err != nil {
		return output.FromAPIError("search failed", err)
	}

	renderSearchResults(printer, text, articles)
	return nil
}

// interactiveSearch drives the debounced coordinator from stdin lines.
// Completions are applied only while their sequence number is still the
// latest; stale results are dropped, never merged.
func interactiveSearch(cmd *cobra.Command, printer *output.Printer, quiet time.Duration) error {
	ctx := cmd.Context()
	repository := articleRepo()

	done := make(chan struct{})
	var deb *search.Debouncer
	deb = search.NewDebouncer(quiet, func(seq uint64, query string) {
		articles, err := repository.GetArticles(ctx, repo.ListOptions{Search: query})

		// The query may have moved on while this request was in flight.
		if !deb.IsCurrent(seq) {
			logger.Debug("discarding superseded search result", "seq", seq, "query", query)
			return
		}
		if err != nil {
			printer.Error("search failed: %v", err)
			return
		}
		renderSearchResults(printer, query, articles)
		select {
		case done <- struct{}{}:
		default:
		}
	})
	defer deb.Stop()

	printer.Info("Type to search; empty line submits immediately, Ctrl-D exits")

	lastText := ""
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			deb.Flush(lastText)
			continue
		}
		lastText = line
		deb.Update(line)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	// Give a trailing debounced dispatch a chance to complete before the
	// process exits.
	select {
	case <-done:
	case <-time.After(quiet + 5*time.Second):
	}
	return nil
}

func renderSearchResults(printer *output.Printer, query string, articles []domain.Article) {
	if len(articles) == 0 {
		printer.Warning("No articles match %q", query)
		return
	}

	printer.Header("Results for " + strconv.Quote(query))
	table := output.NewTable([]string{"ID", "TITLE", "AUTHOR", "STATUS"})
	for _, a := range articles {
		table.AddRow([]string{
			strconv.Itoa(a.ID),
			truncate(a.Title, 48),
			a.AuthorName,
			printer.StatusBadge(a.StatusID),
		})
	}
	table.Render()
}
