package output

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/mcnews-project/newsctl/internal/api"
)

// Exit code constants
const (
	ExitSuccess     = 0
	ExitGeneral     = 1
	ExitUsageError  = 2
	ExitAPIError    = 3
	ExitConfigError = 4
	ExitAuthError   = 5
)

// CLIError is a structured error with user-facing context
type CLIError struct {
	Summary    string
	Detail     string
	Suggestion string
	ExitCode   int
}

// Error implements the error interface, returning the summary
func (e *CLIError) Error() string {
	return e.Summary
}

// FromAPIError converts a normalized API failure into a CLIError with a
// next-step suggestion matching its kind.
func FromAPIError(summary string, err error) *CLIError {
	apiErr, ok := err.(*api.Error)
	if !ok {
		return &CLIError{Summary: summary, Detail: err.Error(), ExitCode: ExitGeneral}
	}

	cliErr := &CLIError{
		Summary:  summary,
		Detail:   apiErr.Message,
		ExitCode: ExitAPIError,
	}

	switch apiErr.Kind {
	case api.KindUnauthorized:
		cliErr.Suggestion = "Run 'newsctl login' to start a session"
		cliErr.ExitCode = ExitAuthError
	case api.KindNotFound:
		cliErr.Suggestion = "Run 'newsctl articles list' to see what exists"
	case api.KindValidation:
		cliErr.Suggestion = "Check the supplied flags and values"
	case api.KindNetwork:
		cliErr.Suggestion = "Check your connection and the api.base_url setting"
	case api.KindServer:
		cliErr.Suggestion = "The service is having trouble; try again later"
	}

	return cliErr
}

// FormatError prints a structured error message to stderr
func (p *Printer) FormatError(e *CLIError) {
	if p.useColors {
		color.New(color.FgRed, color.Bold).Fprintf(p.err, "Error: %s\n", e.Summary)
		if e.Detail != "" {
			fmt.Fprintf(p.err, "  Cause: %s\n", e.Detail)
		}
		if e.Suggestion != "" {
			color.New(color.FgCyan).Fprintf(p.err, "  Suggestion: %s\n", e.Suggestion)
		}
	} else {
		fmt.Fprintf(p.err, "[ERROR] %s\n", e.Summary)
		if e.Detail != "" {
			fmt.Fprintf(p.err, "  Cause: %s\n", e.Detail)
		}
		if e.Suggestion != "" {
			fmt.Fprintf(p.err, "  Suggestion: %s\n", e.Suggestion)
		}
	}
}
