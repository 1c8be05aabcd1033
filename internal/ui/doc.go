// Package ui holds sherry's terminal presentation: colors, the host table
// renderer, prompts and the two display surfaces the dashboard draws on.
//
// # Surfaces
//
//	TerminalSurface - raw mode on the alternate screen with non-blocking keys
//	ConsoleSurface  - plain frames on stdout for pipes and dumb terminals
//
// Interactive decides which one a run gets.
//
// TerminalSurface reads keys on a background goroutine through a
// cancelreader so that prompts can take the input stream over. Confirm and
// ReadLine stop the reader, put the terminal back into cooked mode, run a
// huh form and then resume raw reads.
//
// # Tables
//
// RenderTable renders a lipgloss table with a header rule and no frame.
// Numeric columns set AlignRight.
package ui
