package ui

import tea "charm.land/bubbletea/v2"

// Content is whatever a dialog displays above its dismiss button.
type Content interface {
	Update(msg tea.Msg) (Content, tea.Cmd)
	View() string
}

// TabStops is implemented by content that has its own focus order. The
// dialog interleaves it with the dismiss button.
type TabStops interface {
	// EnterFocus places focus on the first stop (forward) or the last stop.
	EnterFocus(forward bool) tea.Cmd
	// CycleFocus moves focus one stop. It reports false, with nothing
	// focused, when focus would leave the content.
	CycleFocus(forward bool) (inside bool, cmd tea.Cmd)
	// Blur removes focus from every stop.
	Blur()
}

// DismissMsg submits the dialog form of the topmost open dialog, closing it.
type DismissMsg struct {
	ReturnValue string
}

// Dismiss returns a command that closes the topmost open dialog the same way
// its built-in dismiss button does.
func Dismiss() tea.Cmd {
	return func() tea.Msg {
		return DismissMsg{}
	}
}
