package ui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/planboard/internal/keys"
)

type dialogFocus int

const (
	focusContent dialogFocus = iota
	focusDismiss
)

// Dialog is a modal surface: a bordered box with content and a dismiss
// button. While open it sits in the document's top layer, which blocks input
// to everything beneath it.
//
// A dialog closes natively on esc, on a click outside its bounds, when its
// dismiss button is activated and on DismissMsg.
type Dialog struct {
	doc     *Document
	caption string
	content Content
	width   int

	open        bool
	focus       dialogFocus
	returnValue string

	// Screen bounds from the last paint.
	x, y, w, h int

	// Dismiss button position relative to the box.
	buttonRow, buttonCol, buttonWidth int
}

func newDialog(doc *Document, caption string, content Content, width int) *Dialog {
	if caption == "" {
		caption = DefaultDismissCaption
	}
	if width <= 0 {
		width = ModalWidth
	}
	return &Dialog{
		doc:     doc,
		caption: caption,
		content: content,
		width:   width,
	}
}

// Open reports whether the dialog is showing.
func (d *Dialog) Open() bool {
	return d.open
}

// ReturnValue is the value passed to the most recent Close.
func (d *Dialog) ReturnValue() string {
	return d.returnValue
}

// Caption returns the dismiss button's label.
func (d *Dialog) Caption() string {
	return d.caption
}

// Content returns what the dialog displays.
func (d *Dialog) Content() Content {
	return d.content
}

// ShowModal opens the dialog in the top layer and focuses the first stop of
// its content. It does nothing if the dialog is already open.
func (d *Dialog) ShowModal() {
	if d.open {
		return
	}
	d.open = true
	d.returnValue = ""
	d.focus = focusContent
	d.doc.promote(d)
	if ts, ok := d.content.(TabStops); ok {
		ts.EnterFocus(true)
	}
}

// Close hides the dialog and records returnValue. Closing a closed dialog
// does nothing.
func (d *Dialog) Close(returnValue string) {
	if !d.open {
		return
	}
	d.open = false
	d.returnValue = returnValue
	if ts, ok := d.content.(TabStops); ok {
		ts.Blur()
	}
	d.doc.demote(d)
	d.x, d.y, d.w, d.h = 0, 0, 0, 0
}

// Update handles a message while the dialog is open. Messages the dialog
// does not consume are passed to its content.
func (d *Dialog) Update(msg tea.Msg) tea.Cmd {
	if !d.open {
		return nil
	}

	switch msg := msg.(type) {
	case DismissMsg:
		d.Close(msg.ReturnValue)
		return nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case keys.Escape:
			d.Close("")
			return nil
		case keys.Tab:
			return d.cycleFocus(true)
		case keys.ShiftTab:
			return d.cycleFocus(false)
		case keys.Enter, keys.Space:
			if d.focus == focusDismiss {
				d.Close("")
				return nil
			}
		}
		if d.focus == focusDismiss {
			return nil
		}

	case tea.MouseClickMsg:
		if msg.Button != tea.MouseLeft {
			return nil
		}
		switch {
		case d.w > 0 && !d.contains(msg.X, msg.Y):
			d.Close("")
			return nil
		case d.onButton(msg.X, msg.Y):
			d.Close("")
			return nil
		}
	}

	var cmd tea.Cmd
	d.content, cmd = d.content.Update(msg)
	return cmd
}

func (d *Dialog) cycleFocus(forward bool) tea.Cmd {
	ts, ok := d.content.(TabStops)

	if d.focus == focusContent {
		if ok {
			if inside, cmd := ts.CycleFocus(forward); inside {
				return cmd
			}
		}
		d.focus = focusDismiss
		return nil
	}

	d.focus = focusContent
	if ok {
		return ts.EnterFocus(forward)
	}
	return nil
}

// DismissFocused reports whether the dismiss button holds focus.
func (d *Dialog) DismissFocused() bool {
	return d.focus == focusDismiss
}

// View renders the dialog box, or "" while closed.
func (d *Dialog) View() string {
	if !d.open {
		return ""
	}

	button := RenderButton(d.caption, d.focus == focusDismiss)
	inner := lipgloss.JoinVertical(lipgloss.Left,
		d.content.View(),
		"",
		button,
	)
	box := ModalStyle.Width(d.width).Render(inner)

	// border + bottom padding below the button row, border + left padding before it
	d.buttonRow = lipgloss.Height(box) - 3
	d.buttonCol = 3
	d.buttonWidth = lipgloss.Width(button)

	return box
}

func (d *Dialog) place(x, y, w, h int) {
	d.x, d.y, d.w, d.h = x, y, w, h
}

func (d *Dialog) contains(x, y int) bool {
	return x >= d.x && x < d.x+d.w && y >= d.y && y < d.y+d.h
}

func (d *Dialog) onButton(x, y int) bool {
	if d.w == 0 {
		return false
	}
	row := d.y + d.buttonRow
	col := d.x + d.buttonCol
	return y == row && x >= col && x < col+d.buttonWidth
}
