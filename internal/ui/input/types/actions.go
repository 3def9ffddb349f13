package types

import "onepage/internal/gesture"

// Navigation actions
type NavigateAction struct {
	Key gesture.Key
}

func (a NavigateAction) Type() string { return "navigate" }

// JumpAction moves straight to a section by position
type JumpAction struct {
	Index int
}

func (a JumpAction) Type() string { return "jump" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Command actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type OpenPagerAction struct{}

func (a OpenPagerAction) Type() string { return "open_pager" }

type CopyLinkAction struct{}

func (a CopyLinkAction) Type() string { return "copy_link" }

type ToggleScrollingAction struct{}

func (a ToggleScrollingAction) Type() string { return "toggle_scrolling" }

type ToggleMenuAction struct{}

func (a ToggleMenuAction) Type() string { return "toggle_menu" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
