// Package tui implements the terminal user interface using Bubble Tea.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wctsmart/closingportal/internal/portal"
)

// ============================================================================
// Intent Messages
// ============================================================================

// IntentMsg asks the app to apply a user intent to the session.
type IntentMsg struct {
	Action portal.Action
}

// Intent returns a command that emits IntentMsg for a.
func Intent(a portal.Action) tea.Cmd {
	return func() tea.Msg {
		return IntentMsg{Action: a}
	}
}

// StateChangedMsg is broadcast to the active view after every handled intent.
type StateChangedMsg struct {
	Session  portal.Session
	Revision int
}

// IntentRejectedMsg reports a control that was not offered in the current state.
type IntentRejectedMsg struct {
	Action portal.Action
	Err    error
}

// ============================================================================
// Chat Messages
// ============================================================================

// ChatSubmitMsg carries a question typed into the chat widget.
type ChatSubmitMsg struct {
	Question string
}

// ChatReplyMsg carries the canned answer for a question.
type ChatReplyMsg struct {
	Answer string
}

// CloseChatMsg hides the chat widget.
type CloseChatMsg struct{}

// ============================================================================
// Utility Messages
// ============================================================================

// CtrlCResetMsg clears the pending Ctrl+C confirmation.
type CtrlCResetMsg struct{}
