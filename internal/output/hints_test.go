package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintHints_KnownCommand(t *testing.T) {
	var stdout bytes.Buffer
	p := NewPrinterWithOptions(PrinterOptions{
		ColorMode:    ColorNever,
		ConfigColors: false,
	})
	p.out = &stdout

	p.PrintHints("login")

	out := stdout.String()
	if !strings.Contains(out, "See also") {
		t.Errorf("expected 'See also' in output, got: %q", out)
	}
	if !strings.Contains(out, "whoami") {
		t.Errorf("expected 'whoami' hint for 'login' command, got: %q", out)
	}
}

func TestPrintHints_UnknownCommand(t *testing.T) {
	var stdout bytes.Buffer
	p := NewPrinterWithOptions(PrinterOptions{
		ColorMode:    ColorNever,
		ConfigColors: false,
	})
	p.out = &stdout

	p.PrintHints("nonexistent")

	if stdout.Len() != 0 {
		t.Errorf("expected no output for unknown command, got: %q", stdout.String())
	}
}

func TestPrintHints_Quiet(t *testing.T) {
	var stdout bytes.Buffer
	p := NewPrinterWithOptions(PrinterOptions{
		ColorMode:    ColorNever,
		ConfigColors: false,
		Quiet:        true,
	})
	p.out = &stdout

	p.PrintHints("login")

	if stdout.Len() != 0 {
		t.Errorf("expected no output in quiet mode, got: %q", stdout.String())
	}
}
