package forms

import (
	"strings"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/planboard/internal/ui"
)

// Kind selects the editor an Input wraps.
type Kind int

const (
	// KindText is a single-line field.
	KindText Kind = iota
	// KindTextArea is a multi-line field.
	KindTextArea
	// KindDate is a single-line field for YYYY-MM-DD dates.
	KindDate
)

// DateCharLimit fits exactly one YYYY-MM-DD date.
const DateCharLimit = 10

// Input is a labelled form field. The value is free text for every kind;
// KindDate only adds a format hint and a length limit.
type Input struct {
	label string
	kind  Kind
	text  textinput.Model
	area  textarea.Model
}

// NewInput creates a blurred, empty field.
func NewInput(label string, kind Kind) *Input {
	in := &Input{label: label, kind: kind}

	if kind == KindTextArea {
		ta := textarea.New()
		ta.ShowLineNumbers = false
		ta.Prompt = ""
		ta.SetWidth(ui.ModalInputWidth)
		ta.SetHeight(ui.ModalTextareaHeight)
		applyTextareaStyles(&ta)
		ta.Blur()
		in.area = ta
		return in
	}

	ti := textinput.New()
	ti.CharLimit = ui.ModalInputCharLimit
	ti.SetWidth(ui.ModalInputWidth)
	if kind == KindDate {
		ti.Placeholder = "YYYY-MM-DD"
		ti.CharLimit = DateCharLimit
	}
	in.text = ti
	return in
}

// Label returns the field's label.
func (in *Input) Label() string {
	return in.label
}

// Kind returns the field's kind.
func (in *Input) Kind() Kind {
	return in.kind
}

// Value returns the current text, untrimmed.
func (in *Input) Value() string {
	if in.kind == KindTextArea {
		return in.area.Value()
	}
	return in.text.Value()
}

// SetValue replaces the current text.
func (in *Input) SetValue(s string) {
	if in.kind == KindTextArea {
		in.area.SetValue(s)
		return
	}
	in.text.SetValue(s)
}

// Reset clears the text.
func (in *Input) Reset() {
	if in.kind == KindTextArea {
		in.area.Reset()
		return
	}
	in.text.Reset()
}

// Focus gives the field keyboard focus.
func (in *Input) Focus() tea.Cmd {
	if in.kind == KindTextArea {
		return in.area.Focus()
	}
	return in.text.Focus()
}

// Blur removes keyboard focus.
func (in *Input) Blur() {
	if in.kind == KindTextArea {
		in.area.Blur()
		return
	}
	in.text.Blur()
}

// Focused reports whether the field has keyboard focus.
func (in *Input) Focused() bool {
	if in.kind == KindTextArea {
		return in.area.Focused()
	}
	return in.text.Focused()
}

// Update forwards msg to the wrapped editor.
func (in *Input) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if in.kind == KindTextArea {
		in.area, cmd = in.area.Update(msg)
	} else {
		in.text, cmd = in.text.Update(msg)
	}
	return cmd
}

// View renders the uppercase label above the field.
func (in *Input) View() string {
	label := ui.LabelStyle.Render(strings.ToUpper(in.label))
	field := in.text.View()
	if in.kind == KindTextArea {
		field = in.area.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, label, fieldStyle(in.Focused()).Render(field))
}
