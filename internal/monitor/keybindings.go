package monitor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// SortKey defines which column the host table is sorted by (always descending).
type SortKey int

const (
	SortByRate SortKey = iota
	SortByTotal
	SortByIP
)

// String returns the label used in the header and in config files.
func (s SortKey) String() string {
	switch s {
	case SortByTotal:
		return "total"
	case SortByIP:
		return "ip"
	default:
		return "current"
	}
}

// ParseSortKey converts a config/flag value into a SortKey.
func ParseSortKey(s string) (SortKey, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "current", "rate", "":
		return SortByRate, true
	case "total":
		return SortByTotal, true
	case "ip":
		return SortByIP, true
	default:
		return SortByRate, false
	}
}

// Command is a single-key dashboard action.
type Command int

const (
	CmdNone Command = iota
	CmdQuit
	CmdSortRate
	CmdSortTotal
	CmdSortIP
	CmdToggleSummary
	CmdReset
	CmdRefreshHostnames
	CmdChangeUnit
)

// KeyMap holds the dashboard key bindings. Bindings list both letter cases.
type KeyMap struct {
	Quit       key.Binding
	SortTotal  key.Binding
	SortRate   key.Binding
	SortIP     key.Binding
	Reset      key.Binding
	Hostnames  key.Binding
	ToggleMAC  key.Binding
	ChangeUnit key.Binding
}

// DefaultKeyMap returns the standard dashboard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		SortTotal: key.NewBinding(
			key.WithKeys("t", "T"),
			key.WithHelp("t", "sort total"),
		),
		SortRate: key.NewBinding(
			key.WithKeys("c", "C"),
			key.WithHelp("c", "sort current"),
		),
		SortIP: key.NewBinding(
			key.WithKeys("i", "I"),
			key.WithHelp("i", "sort IP"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "reset totals"),
		),
		Hostnames: key.NewBinding(
			key.WithKeys("h", "H"),
			key.WithHelp("h", "reset hostnames"),
		),
		ToggleMAC: key.NewBinding(
			key.WithKeys("m", "M"),
			key.WithHelp("m", "toggle MAC"),
		),
		ChangeUnit: key.NewBinding(
			key.WithKeys("u", "U"),
			key.WithHelp("u", "change unit"),
		),
	}
}

// ShortHelp returns the bindings shown in summary mode, where the table
// is meant to fit a narrow terminal.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleMAC, k.Quit}
}

// FullHelp returns all bindings grouped by purpose.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Quit},
		{k.SortTotal, k.SortRate, k.SortIP},
		{k.Reset, k.Hostnames, k.ToggleMAC, k.ChangeUnit},
	}
}

// Match maps a pressed key to its command. Unbound keys return CmdNone.
func (k KeyMap) Match(pressed string) Command {
	if pressed == "" {
		return CmdNone
	}
	pairs := []struct {
		binding key.Binding
		cmd     Command
	}{
		{k.Quit, CmdQuit},
		{k.SortRate, CmdSortRate},
		{k.SortTotal, CmdSortTotal},
		{k.SortIP, CmdSortIP},
		{k.ToggleMAC, CmdToggleSummary},
		{k.Reset, CmdReset},
		{k.Hostnames, CmdRefreshHostnames},
		{k.ChangeUnit, CmdChangeUnit},
	}
	for _, p := range pairs {
		if !p.binding.Enabled() {
			continue
		}
		for _, bound := range p.binding.Keys() {
			if bound == pressed {
				return p.cmd
			}
		}
	}
	return CmdNone
}
