package doctor

import (
	"context"
	"os"

	"github.com/rileyhilliard/sherry/internal/ui"
)

// TerminalCheck reports whether the dashboard will get a live terminal or
// fall back to plain output.
type TerminalCheck struct {
	// interactive is swapped in tests.
	interactive func() bool
}

func (c *TerminalCheck) Name() string     { return "terminal" }
func (c *TerminalCheck) Category() string { return CategoryTerminal }

func (c *TerminalCheck) Run(_ context.Context) CheckResult {
	interactive := c.interactive
	if interactive == nil {
		interactive = func() bool { return ui.Interactive(os.Stdin, os.Stdout) }
	}

	if !interactive() {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "No interactive terminal; the dashboard will print plain frames",
			Suggestion: "Run sherry directly in a terminal with TERM set for key commands",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: "Interactive terminal (TERM=" + os.Getenv("TERM") + ")",
	}
}
