package output

import (
	"fmt"
	"strings"
)

// CommandHints maps command names to related commands users might want to run next
var CommandHints = map[string][]string{
	"login":           {"whoami", "articles list"},
	"logout":          {"login"},
	"register":        {"whoami", "profile show"},
	"articles list":   {"articles get <id>", "articles search"},
	"articles create": {"articles list", "tags list"},
	"articles update": {"articles get <id>"},
	"articles delete": {"articles list"},
	"tags list":       {"articles list --tag <id>", "tags create <name>"},
	"authors list":    {"articles list"},
	"profile show":    {"profile update", "profile pdf"},
	"profile update":  {"profile show"},
	"profile passwd":  {"login"},
}

// PrintHints prints "See also" hints for a command. No-op in quiet mode or if command has no hints.
func (p *Printer) PrintHints(command string) {
	if p.quiet {
		return
	}
	hints, ok := CommandHints[command]
	if !ok || len(hints) == 0 {
		return
	}

	cmds := make([]string, len(hints))
	for i, h := range hints {
		cmds[i] = "newsctl " + h
	}
	fmt.Fprintf(p.out, "\nSee also: %s\n", strings.Join(cmds, ", "))
}
