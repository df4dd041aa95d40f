// Package overlay draws one rendered view on top of another.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Compose overlays content on top of a base view.
// Non-space characters in overlay replace the base at the same position.
// This function is ANSI-aware and handles styled text correctly.
func Compose(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	for i, overlayLine := range overlayLines {
		if i >= len(baseLines) {
			break
		}

		plainOverlay := ansi.Strip(overlayLine)
		if strings.TrimSpace(plainOverlay) == "" {
			continue
		}

		// Visible bounds in display columns
		startCol := 0
		for _, r := range plainOverlay {
			if r != ' ' {
				break
			}
			startCol++
		}
		trimmed := strings.TrimRight(plainOverlay, " ")
		endCol := startCol + ansi.StringWidth(trimmed[startCol:])

		overlayContent := ansi.Cut(overlayLine, startCol, endCol)

		baseLine := baseLines[i]
		if baseWidth := ansi.StringWidth(baseLine); baseWidth < width {
			baseLine += strings.Repeat(" ", width-baseWidth)
		}

		result := ansi.Cut(baseLine, 0, startCol) + overlayContent
		if endCol < width {
			result += ansi.Cut(baseLine, endCol, width)
		}
		baseLines[i] = result
	}

	return strings.Join(baseLines, "\n")
}

// Center composes content in the middle of a width x height base view.
func Center(base, content string, width, height int) string {
	placed := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
	return Compose(base, placed, width)
}
