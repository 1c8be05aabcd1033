package ui

import (
	"os"

	"golang.org/x/term"
)

// Interactive reports whether the dashboard can take over the terminal:
// both streams must be terminals and TERM must name a usable one.
func Interactive(in, out *os.File) bool {
	return interactive(os.Getenv("TERM"),
		term.IsTerminal(int(in.Fd())),
		term.IsTerminal(int(out.Fd())))
}

func interactive(termName string, inTTY, outTTY bool) bool {
	if termName == "" || termName == "dumb" {
		return false
	}
	return inTTY && outTTY
}
