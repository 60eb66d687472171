package iostreams

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorSuccess = lipgloss.Color("#04B575")
	colorWarning = lipgloss.Color("#FFCC00")
	colorError   = lipgloss.Color("#FF5F87")
	colorInfo    = lipgloss.Color("#87CEEB")

	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
	infoStyle    = lipgloss.NewStyle().Foreground(colorInfo)
)

// ColorScheme formats status text. When colors are disabled, methods fall
// back to bracketed plain-text prefixes.
type ColorScheme struct {
	enabled bool
}

// NewColorScheme creates a new ColorScheme.
func NewColorScheme(enabled bool) *ColorScheme {
	return &ColorScheme{enabled: enabled}
}

func (cs *ColorScheme) render(style lipgloss.Style, s string) string {
	if !cs.enabled {
		return s
	}
	return style.Render(s)
}

// SuccessIconWithColor returns "✓ text" in green, or "[ok] text".
func (cs *ColorScheme) SuccessIconWithColor(text string) string {
	if cs.enabled {
		return cs.render(successStyle, "✓ "+text)
	}
	return "[ok] " + text
}

// WarningIconWithColor returns "! text" in yellow, or "[warn] text".
func (cs *ColorScheme) WarningIconWithColor(text string) string {
	if cs.enabled {
		return cs.render(warningStyle, "! "+text)
	}
	return "[warn] " + text
}

// FailureIconWithColor returns "✗ text" in red, or "[error] text".
func (cs *ColorScheme) FailureIconWithColor(text string) string {
	if cs.enabled {
		return cs.render(errorStyle, "✗ "+text)
	}
	return "[error] " + text
}

// InfoIconWithColor returns "ℹ text" in blue, or "[info] text".
func (cs *ColorScheme) InfoIconWithColor(text string) string {
	if cs.enabled {
		return cs.render(infoStyle, "ℹ "+text)
	}
	return "[info] " + text
}
