package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/rileyhilliard/sherry/internal/ui"
)

// Prompts shown by the blocking commands.
const (
	ResetPrompt = "Are you sure you want to reset data?"
	UnitPrompt  = "Enter unit"
)

// Dashboard renders snapshots and turns key presses into ViewState changes.
type Dashboard struct {
	surface Surface
	keys    KeyMap
	help    help.Model
	address string
	notice  string
	last    *Snapshot
}

// NewDashboard creates a dashboard drawing on surface. The address is only
// used for the header line.
func NewDashboard(surface Surface, address string) *Dashboard {
	h := help.New()
	h.ShortSeparator = "  "

	return &Dashboard{
		surface: surface,
		keys:    DefaultKeyMap(),
		help:    h,
		address: address,
	}
}

// SetNotice sets a one-line warning shown under the table. Empty clears it.
func (d *Dashboard) SetNotice(msg string) {
	d.notice = msg
}

// Notice returns the current warning line.
func (d *Dashboard) Notice() string {
	return d.notice
}

// Cycle renders snap and handles at most one pending key press.
// A nil snap re-renders the last snapshot that was shown.
func (d *Dashboard) Cycle(sess *Session, snap *Snapshot) Command {
	d.Render(sess, snap)
	return d.HandleInput(&sess.View)
}

// Render draws the host table for the current view state.
func (d *Dashboard) Render(sess *Session, snap *Snapshot) {
	if snap != nil {
		d.last = snap
	}
	v := sess.View
	unit, _ := ResolveUnit(v.Unit)

	records := SortRecords(d.last.Records(), v.SortKey)
	tbl := BuildTable(records, sess.Hostnames, v.Unit, v.Summary)

	var b strings.Builder
	b.WriteString(d.renderHeader(v, unit, len(records)))
	b.WriteString("\n\n")
	b.WriteString(ui.RenderTable(tbl.Columns, tbl.Rows))
	if d.notice != "" {
		b.WriteString("\n")
		b.WriteString(NoticeStyle.Render(ui.SymbolFail + " " + d.notice))
	}

	d.surface.Clear()
	d.surface.Render(b.String(), d.HelpLine(v.Summary))
}

// renderHeader renders the title line with the device and view summary.
func (d *Dashboard) renderHeader(v ViewState, unit string, hosts int) string {
	title := TitleStyle.Render("sherry")

	mode := "full"
	if v.Summary {
		mode = "summary"
	}
	stats := HeaderStatsStyle.Render(fmt.Sprintf(" | %s | %d hosts | sort %s | unit %s | %s",
		d.address, hosts, v.SortKey, unit, mode))

	return HeaderStyle.Render(title + stats)
}

// HelpLine returns the command hints for the current mode.
func (d *Dashboard) HelpLine(summary bool) string {
	if summary {
		return d.help.ShortHelpView(d.keys.ShortHelp())
	}
	var all []key.Binding
	for _, group := range d.keys.FullHelp() {
		all = append(all, group...)
	}
	return d.help.ShortHelpView(all)
}

// HandleInput reads one key without blocking and applies it to v.
// Read errors count as no key.
func (d *Dashboard) HandleInput(v *ViewState) Command {
	pressed, err := d.surface.ReadKey()
	if err != nil {
		return CmdNone
	}
	cmd := d.keys.Match(pressed)
	d.Apply(cmd, v)
	return cmd
}

// Apply performs cmd against v. Reset and unit changes block on a prompt;
// a failed or cancelled prompt leaves v unchanged.
func (d *Dashboard) Apply(cmd Command, v *ViewState) {
	switch cmd {
	case CmdQuit:
		v.Running = false

	case CmdSortRate:
		v.SortKey = SortByRate

	case CmdSortTotal:
		v.SortKey = SortByTotal

	case CmdSortIP:
		v.SortKey = SortByIP

	case CmdToggleSummary:
		v.Summary = !v.Summary

	case CmdReset:
		ok, err := d.surface.Confirm(ResetPrompt)
		if err == nil && ok {
			v.PendingReset = true
		}

	case CmdRefreshHostnames:
		v.PendingHostnames = true

	case CmdChangeUnit:
		// Stored as typed; unknown units fall back to kB at render time.
		unit, err := d.surface.ReadLine(UnitPrompt)
		if err == nil {
			v.Unit = unit
		}
	}
}
