package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/scrubber/internal/mpris"
)

// TickCmd returns a command that sends TickMsg after one frame at the given
// rate.
func TickCmd(frameRate int) tea.Cmd {
	return tea.Tick(frameInterval(frameRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func frameInterval(frameRate int) time.Duration {
	return time.Second / time.Duration(max(frameRate, 1))
}

// RemoteDispatcher returns a function that forwards media-remote requests
// to the program. It is safe to call from any goroutine.
func RemoteDispatcher(p *tea.Program) func(mpris.Command) {
	return func(c mpris.Command) {
		p.Send(RemoteMsg(c))
	}
}
