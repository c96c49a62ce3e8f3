// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Playback actions
	ActionPlayPause           Action = "play_pause"
	ActionNext                Action = "next_episode"
	ActionPrevious            Action = "previous_episode"
	ActionToggleLoop          Action = "toggle_loop"
	ActionToggleShuffle       Action = "toggle_shuffle"
	ActionClear               Action = "clear"
	ActionTogglePlayerDisplay Action = "toggle_player_display"

	// Episode list actions
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionPlayFrom  Action = "play_from"   // enter - play list from cursor
	ActionPlayOnly  Action = "play_only"   // o - play just this episode
	ActionJumpToNow Action = "jump_to_now" // . - cursor to current episode
)
