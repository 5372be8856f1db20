package forms

import (
	huh "charm.land/huh/v2"

	"github.com/zhubert/planboard/internal/project"
	"github.com/zhubert/planboard/internal/ui"
)

// NewDraftForm builds a standalone form bound to d with the same three
// fields as ProjectForm. Values already in d are used as defaults.
func NewDraftForm(d *project.Draft) *huh.Form {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				CharLimit(ui.ModalInputCharLimit).
				Value(&d.Title),
			huh.NewText().
				Title("Description").
				Lines(ui.ModalTextareaHeight).
				Value(&d.Description),
			huh.NewInput().
				Title("Due Date").
				Placeholder("YYYY-MM-DD").
				CharLimit(DateCharLimit).
				Value(&d.DueDate),
		).Title("New Project"),
	).
		WithTheme(ModalTheme()).
		WithWidth(ui.ModalWidth).
		WithLayout(huh.LayoutStack)

	form.Init()
	return form
}

// PromptDraft asks for a draft on the terminal, filling d in place.
func PromptDraft(d *project.Draft) error {
	return NewDraftForm(d).Run()
}
