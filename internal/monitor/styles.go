package monitor

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/sherry/internal/ui"
)

// Dashboard styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ui.ColorInfo).
			Bold(true)

	HeaderStatsStyle = lipgloss.NewStyle().
				Foreground(ui.ColorMuted)

	NoticeStyle = lipgloss.NewStyle().
			Foreground(ui.ColorWarning).
			Padding(0, 1)
)
