// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Playback actions
	ActionPlayPause       Action = "play_pause"
	ActionPlay            Action = "play"
	ActionPause           Action = "pause"
	ActionReload          Action = "reload" // retry after an error
	ActionStop            Action = "stop"   // exit playback
	ActionSeekForward     Action = "seek_forward"
	ActionSeekBack        Action = "seek_back"
	ActionSeekForwardLong Action = "seek_forward_long"
	ActionSeekBackLong    Action = "seek_back_long"
	ActionJumpStart       Action = "jump_start"
	ActionJumpEnd         Action = "jump_end"
	ActionToggleAutoPlay  Action = "toggle_autoplay"
	ActionToggleLoop      Action = "toggle_loop"
	ActionToggleFit       Action = "toggle_fit"
)
