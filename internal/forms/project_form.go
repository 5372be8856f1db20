package forms

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/planboard/internal/keys"
	"github.com/zhubert/planboard/internal/project"
	"github.com/zhubert/planboard/internal/ui"
)

// SaveFunc receives the draft captured at save time. The returned command
// runs afterwards, so the caller can close the dialog or clear the form.
type SaveFunc func(project.Draft) tea.Cmd

// Focus stops, in tab order.
const (
	stopCancel = iota
	stopSave
	stopTitle
	stopDescription
	stopDueDate
	stopCount
)

const noFocus = -1

// ProjectForm captures a new project: a Cancel/Save menu above the Title,
// Description and Due Date fields.
//
// Save hands the current field values to the SaveFunc exactly once and
// leaves the fields untouched. Cancel dismisses the enclosing dialog.
type ProjectForm struct {
	// Validate, when set, runs before the SaveFunc. A non-nil error is shown
	// in the form and the save is dropped.
	Validate project.Validator

	onAdd       SaveFunc
	title       *Input
	description *Input
	dueDate     *Input
	focus       int
	err         string
}

// NewProjectForm creates an empty form that reports saves to onAdd.
func NewProjectForm(onAdd SaveFunc) *ProjectForm {
	return &ProjectForm{
		onAdd:       onAdd,
		title:       NewInput("Title", KindText),
		description: NewInput("Description", KindTextArea),
		dueDate:     NewInput("Due Date", KindDate),
		focus:       noFocus,
	}
}

// Title returns the title field.
func (f *ProjectForm) Title() *Input { return f.title }

// Description returns the description field.
func (f *ProjectForm) Description() *Input { return f.description }

// DueDate returns the due date field.
func (f *ProjectForm) DueDate() *Input { return f.dueDate }

// Draft reads the three fields as they are now.
func (f *ProjectForm) Draft() project.Draft {
	return project.Draft{
		Title:       f.title.Value(),
		Description: f.description.Value(),
		DueDate:     f.dueDate.Value(),
	}
}

// Err returns the message from the last failed validation.
func (f *ProjectForm) Err() string {
	return f.err
}

// Reset clears every field, the error and focus.
func (f *ProjectForm) Reset() {
	for _, in := range f.inputs() {
		in.Reset()
	}
	f.err = ""
	f.Blur()
}

func (f *ProjectForm) inputs() []*Input {
	return []*Input{f.title, f.description, f.dueDate}
}

func (f *ProjectForm) inputAt(stop int) *Input {
	switch stop {
	case stopTitle:
		return f.title
	case stopDescription:
		return f.description
	case stopDueDate:
		return f.dueDate
	}
	return nil
}

func (f *ProjectForm) setFocus(stop int) tea.Cmd {
	f.focus = stop
	for _, in := range f.inputs() {
		in.Blur()
	}
	if in := f.inputAt(stop); in != nil {
		return in.Focus()
	}
	return nil
}

// EnterFocus focuses the first stop (Cancel) or, going backwards, the last
// (Due Date).
func (f *ProjectForm) EnterFocus(forward bool) tea.Cmd {
	if forward {
		return f.setFocus(stopCancel)
	}
	return f.setFocus(stopDueDate)
}

// CycleFocus moves to the next or previous stop and reports false when
// focus leaves the form.
func (f *ProjectForm) CycleFocus(forward bool) (bool, tea.Cmd) {
	next := f.focus + 1
	if !forward {
		next = f.focus - 1
	}
	if next < 0 || next >= stopCount {
		f.Blur()
		return false, nil
	}
	return true, f.setFocus(next)
}

// Blur removes focus from every stop.
func (f *ProjectForm) Blur() {
	f.focus = noFocus
	for _, in := range f.inputs() {
		in.Blur()
	}
}

// Update handles a message routed by the dialog.
func (f *ProjectForm) Update(msg tea.Msg) (ui.Content, tea.Cmd) {
	if msg, ok := msg.(tea.KeyPressMsg); ok {
		switch msg.String() {
		case keys.CtrlS:
			return f, f.save()
		case keys.Enter, keys.Space:
			switch f.focus {
			case stopCancel:
				return f, ui.Dismiss()
			case stopSave:
				return f, f.save()
			}
		}
	}

	if in := f.inputAt(f.focus); in != nil {
		return f, in.Update(msg)
	}
	return f, nil
}

func (f *ProjectForm) save() tea.Cmd {
	draft := f.Draft()

	if f.Validate != nil {
		if err := f.Validate(draft); err != nil {
			f.err = err.Error()
			return nil
		}
	}
	f.err = ""

	if f.onAdd == nil {
		return nil
	}
	return f.onAdd(draft)
}

// View renders the form.
func (f *ProjectForm) View() string {
	menu := lipgloss.JoinHorizontal(lipgloss.Top,
		ui.RenderButton("Cancel", f.focus == stopCancel),
		" ",
		ui.RenderButton("Save", f.focus == stopSave),
	)

	parts := []string{
		formTitleStyle().Render("New Project"),
		menu,
		"",
		f.title.View(),
		"",
		f.description.View(),
		"",
		f.dueDate.View(),
	}
	if f.err != "" {
		parts = append(parts, "", errorStyle().Render(f.err))
	}
	parts = append(parts, "", ui.ModalHelpStyle.Render("tab: next  ctrl+s: save  esc: close"))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
