package ui

import (
	"github.com/charmbracelet/lipgloss"

	"helium/internal/media"
)

var (
	TitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	HintStyle     = lipgloss.NewStyle().Faint(true)
	PlatformStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5F87"))
	URLStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#00AFFF"))
)

// FormatTarget renders a resolved target for display. Plain output is the
// bare URL so it can be piped; styled output also names the platform and
// the original input.
func FormatTarget(t media.Target, styled bool) string {
	if !styled {
		return t.URL
	}
	if !t.Rewritten {
		return HintStyle.Render("unchanged") + " " + URLStyle.Render(t.URL)
	}
	return PlatformStyle.Render(t.Platform) + " " +
		HintStyle.Render(t.Input+" →") + " " +
		URLStyle.Render(t.URL)
}
