// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit       Action = "quit"
	ActionSwitchView Action = "switch_view"
	ActionHelp       Action = "help"

	// Gallery navigation
	ActionMoveUp       Action = "move_up"
	ActionMoveDown     Action = "move_down"
	ActionMoveLeft     Action = "move_left"
	ActionMoveRight    Action = "move_right"
	ActionOpen         Action = "open"          // enter - open lightbox
	ActionNextCategory Action = "next_category" // ]
	ActionPrevCategory Action = "prev_category" // [

	// Lightbox actions
	ActionLightboxPrev  Action = "lightbox_prev"
	ActionLightboxNext  Action = "lightbox_next"
	ActionLightboxClose Action = "lightbox_close"

	// Playback actions
	ActionPlayPause     Action = "play_pause"
	ActionStop          Action = "stop"
	ActionNextTrack     Action = "next_track"
	ActionPrevTrack     Action = "prev_track"
	ActionToggleLoop    Action = "toggle_loop"
	ActionToggleShuffle Action = "toggle_shuffle"
	ActionVolumeUp      Action = "volume_up"
	ActionVolumeDown    Action = "volume_down"
	ActionSeekForward   Action = "seek_forward"
	ActionSeekBack      Action = "seek_back"

	// Track list
	ActionCursorUp   Action = "cursor_up"
	ActionCursorDown Action = "cursor_down"
	ActionSelect     Action = "select" // enter - play track under cursor
	ActionPrevPage   Action = "prev_page"
	ActionNextPage   Action = "next_page"
)
