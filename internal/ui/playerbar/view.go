package playerbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/scrubber/internal/surface"
	"github.com/llehouerou/scrubber/internal/ui/render"
	"github.com/llehouerou/scrubber/internal/ui/styles"
)

// Info is what the bar shows besides the controller-driven elements.
type Info struct {
	Title      string
	Position   time.Duration
	Duration   time.Duration
	Frame      int64
	FrameCount int64
	Spinner    string // current spinner frame, shown while loading
	Status     string // shown when neither loading nor failed
}

// View renders the bar. A destroyed bar renders nothing.
func (b *Bar) View(info Info) string {
	if b.destroyed || !b.laidOut {
		return ""
	}
	return strings.Join([]string{
		b.viewControls(info),
		b.viewTrack(info),
		b.viewStatus(info),
	}, "\n")
}

func (b *Bar) viewControls(info Info) string {
	var button string
	switch {
	case b.visible[surface.ElementPlay]:
		button = buttonStyle().Render("[" + playSymbol + "]")
	case b.visible[surface.ElementPause]:
		button = buttonStyle().Render("[" + pauseSymbol + "]")
	default:
		button = disabledStyle().Render("[ ]")
	}
	exit := buttonStyle().Render("[" + exitSymbol + "]")

	titleWidth := b.width - 2*buttonWidth - 3
	title := titleStyle().Render(render.TruncateEllipsis(info.Title, titleWidth))

	return button + " " + exit + "  " + title
}

func (b *Bar) viewTrack(info Info) string {
	elapsed := timeStyle().Render(render.PadLeft(formatDuration(info.Position), labelWidth))
	total := timeStyle().Render(render.Pad(formatDuration(info.Duration), labelWidth))
	return elapsed + " " + b.renderTrack() + " " + total
}

// renderTrack draws the fill up to the knob, the knob and the empty rest.
func (b *Bar) renderTrack() string {
	if b.trackW <= 0 {
		return ""
	}
	knob := b.knobCell()
	filled := min(b.fillCells(), knob)

	var sb strings.Builder
	sb.WriteString(styles.GradientSpan(strings.Repeat(filledSymbol, filled), b.trackW, styles.T().FillFrom, styles.T().FillTo))
	sb.WriteString(emptyStyle().Render(strings.Repeat(emptySymbol, knob-filled)))
	sb.WriteString(knobStyle().Render(knobSymbol))
	sb.WriteString(emptyStyle().Render(strings.Repeat(emptySymbol, b.trackW-knob-1)))
	return sb.String()
}

func (b *Bar) viewStatus(info Info) string {
	counter := timeStyle().Render(formatFrames(info.Frame, info.FrameCount))
	room := max(b.width-len(formatFrames(info.Frame, info.FrameCount))-1, 0)

	var left string
	switch {
	case b.visible[surface.ElementLoading]:
		left = info.Spinner + " " + timeStyle().Render("Loading…")
	case b.visible[surface.ElementMessage] && b.message != "":
		left = errorStyle().Render(render.Truncate(b.message, room))
	default:
		left = timeStyle().Render(render.Truncate(info.Status, room))
	}
	return render.Row(left, counter, b.width)
}

// formatFrames renders "frame / count" with thousands separators.
func formatFrames(frame, count int64) string {
	return humanize.Comma(frame) + " / " + humanize.Comma(count)
}

func formatDuration(d time.Duration) string {
	d = max(d, 0)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
