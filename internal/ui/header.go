package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BannerInfo contains information to display in the banner.
type BannerInfo struct {
	Version string // Version string (e.g., "v0.4.0")
	Tagline string // Optional tagline
	Address string // Optional device address
}

// BannerWidth is the default width of the banner divider
const BannerWidth = 50

// RenderBanner renders the program banner followed by a divider.
func RenderBanner(info BannerInfo) string {
	titleStyle := lipgloss.NewStyle().
		Foreground(ColorInfo).
		Bold(true)
	versionStyle := lipgloss.NewStyle().Foreground(ColorSecondary)
	mutedStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	var b strings.Builder

	b.WriteString(titleStyle.Render("sherry"))
	if info.Version != "" {
		b.WriteString(" ")
		b.WriteString(versionStyle.Render(info.Version))
	}
	b.WriteString("\n")

	if info.Tagline != "" {
		b.WriteString(info.Tagline)
		b.WriteString("\n")
	}

	if info.Address != "" {
		b.WriteString(mutedStyle.Render("device " + info.Address))
		b.WriteString("\n")
	}

	b.WriteString(mutedStyle.Render(strings.Repeat("━", BannerWidth)))
	b.WriteString("\n")

	return b.String()
}
