package playerbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/scrubber/internal/ui/styles"
)

const (
	playSymbol   = "▶"
	pauseSymbol  = "‖"
	exitSymbol   = "✕"
	knobSymbol   = "●"
	filledSymbol = "━"
	emptySymbol  = "─"
)

func titleStyle() lipgloss.Style {
	return styles.T().S().Title
}

func buttonStyle() lipgloss.Style {
	return styles.T().S().Button
}

func disabledStyle() lipgloss.Style {
	return styles.T().S().Subtle
}

func knobStyle() lipgloss.Style {
	return styles.T().S().Knob
}

func emptyStyle() lipgloss.Style {
	return styles.T().S().Subtle
}

func timeStyle() lipgloss.Style {
	return styles.T().S().Muted
}

func errorStyle() lipgloss.Style {
	return styles.T().S().Error
}
