package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/mcnews-project/newsctl/internal/api"
)

func TestCLIError_Error(t *testing.T) {
	err := &CLIError{
		Summary:    "something failed",
		Detail:     "because of reasons",
		Suggestion: "try again",
		ExitCode:   ExitGeneral,
	}

	if err.Error() != "something failed" {
		t.Errorf("Error() = %q, want %q", err.Error(), "something failed")
	}
}

func TestFormatError_AllFields(t *testing.T) {
	var stderr bytes.Buffer
	p := NewPrinterWithOptions(PrinterOptions{
		ColorMode:    ColorNever,
		ConfigColors: false,
	})
	p.err = &stderr

	cliErr := &CLIError{
		Summary:    "fetching article failed",
		Detail:     "not found",
		Suggestion: "Run 'newsctl articles list' to see what exists",
		ExitCode:   ExitAPIError,
	}

	p.FormatError(cliErr)

	out := stderr.String()
	if !strings.Contains(out, "fetching article failed") {
		t.Errorf("missing summary in output: %q", out)
	}
	if !strings.Contains(out, "not found") {
		t.Errorf("missing detail in output: %q", out)
	}
	if !strings.Contains(out, "newsctl articles list") {
		t.Errorf("missing suggestion in output: %q", out)
	}
}

func TestFormatError_NoDetail(t *testing.T) {
	var stderr bytes.Buffer
	p := NewPrinterWithOptions(PrinterOptions{
		ColorMode:    ColorNever,
		ConfigColors: false,
	})
	p.err = &stderr

	cliErr := &CLIError{
		Summary:    "config file not found",
		Suggestion: "Check .newsctl.yaml syntax or use --config flag",
		ExitCode:   ExitConfigError,
	}

	p.FormatError(cliErr)

	out := stderr.String()
	if !strings.Contains(out, "config file not found") {
		t.Errorf("missing summary in output: %q", out)
	}
	if strings.Contains(out, "Cause:") {
		t.Errorf("should not contain Cause line when Detail is empty: %q", out)
	}
}

func TestFromAPIError_Unauthorized(t *testing.T) {
	apiErr := &api.Error{Kind: api.KindUnauthorized, StatusCode: 401, Message: "not authorized, please log in"}

	cliErr := FromAPIError("listing articles failed", apiErr)

	if cliErr.ExitCode != ExitAuthError {
		t.Errorf("ExitCode = %d, want %d", cliErr.ExitCode, ExitAuthError)
	}
	if !strings.Contains(cliErr.Suggestion, "newsctl login") {
		t.Errorf("expected login suggestion, got %q", cliErr.Suggestion)
	}
}

func TestFromAPIError_Network(t *testing.T) {
	apiErr := &api.Error{Kind: api.KindNetwork, Message: "network error, check your connection"}

	cliErr := FromAPIError("listing articles failed", apiErr)

	if cliErr.ExitCode != ExitAPIError {
		t.Errorf("ExitCode = %d, want %d", cliErr.ExitCode, ExitAPIError)
	}
	if !strings.Contains(cliErr.Suggestion, "api.base_url") {
		t.Errorf("expected base_url suggestion, got %q", cliErr.Suggestion)
	}
}

func TestFromAPIError_PlainError(t *testing.T) {
	cliErr := FromAPIError("something failed", errors.New("boom"))

	if cliErr.ExitCode != ExitGeneral {
		t.Errorf("ExitCode = %d, want %d", cliErr.ExitCode, ExitGeneral)
	}
	if cliErr.Detail != "boom" {
		t.Errorf("Detail = %q, want %q", cliErr.Detail, "boom")
	}
}

func TestExitCodes(t *testing.T) {
	// Verify exit code constants have expected values
	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess = %d, want 0", ExitSuccess)
	}
	if ExitGeneral != 1 {
		t.Errorf("ExitGeneral = %d, want 1", ExitGeneral)
	}
	if ExitUsageError != 2 {
		t.Errorf("ExitUsageError = %d, want 2", ExitUsageError)
	}
}
