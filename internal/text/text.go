// Package text cleans raw terminal output into single log messages.
// This is a leaf package with zero internal imports.
package text

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Ellipsis marks a truncated message.
const Ellipsis = "..."

// StripANSI removes escape sequences (SGR colours, cursor movement, OSC
// hyperlinks) from s.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// StripControl drops C0 control characters and DEL, keeping tabs.
// Runs after StripANSI, otherwise the ESC of a sequence is removed and the
// rest is left behind as text.
func StripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\t' {
			return r
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}

// Truncate shortens s to width terminal cells, ending it with Ellipsis.
// A width <= 0 means unlimited. ANSI-aware: escape sequences take no width.
func Truncate(s string, width int) string {
	if width <= 0 || ansi.StringWidth(s) <= width {
		return s
	}
	if width <= len(Ellipsis) {
		return ansi.Truncate(s, width, "")
	}
	return ansi.Truncate(s, width, Ellipsis)
}

// IsBlank reports whether s has no visible characters.
func IsBlank(s string) bool {
	return strings.TrimSpace(ansi.Strip(s)) == ""
}
