// Package keymap defines key bindings for the application.
package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global" or "playback"
}

// All contains all key bindings.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},

	// Playback
	{ActionPlayPause, []string{" ", "space"}, "Play/pause", "playback"},
	{ActionPlay, []string{"p"}, "Play", "playback"},
	{ActionPause, []string{"P"}, "Pause", "playback"},
	{ActionReload, []string{"r"}, "Reload media", "playback"},
	{ActionStop, []string{"s", "esc"}, "Stop (rewind and pause)", "playback"},
	{ActionSeekBack, []string{"left", "h"}, "Seek back", "playback"},
	{ActionSeekForward, []string{"right", "l"}, "Seek forward", "playback"},
	{ActionSeekBackLong, []string{"shift+left", "H"}, "Seek back (long)", "playback"},
	{ActionSeekForwardLong, []string{"shift+right", "L"}, "Seek forward (long)", "playback"},
	{ActionJumpStart, []string{"home", "g", "0"}, "Jump to start", "playback"},
	{ActionJumpEnd, []string{"end", "G"}, "Jump to end", "playback"},
	{ActionToggleAutoPlay, []string{"a"}, "Toggle auto-play", "playback"},
	{ActionToggleLoop, []string{"o"}, "Toggle loop", "playback"},
	{ActionToggleFit, []string{"f"}, "Toggle fit mode", "playback"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
