package forms

import (
	"charm.land/bubbles/v2/help"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/planboard/internal/ui"
)

// ModalTheme returns a huh theme matching the dialog color palette.
func ModalTheme() huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		// Focused field: left border indicator
		t.Focused.Base = fieldFocusedStyle()
		t.Focused.Card = t.Focused.Base
		t.Focused.Title = lipgloss.NewStyle().Foreground(ui.ColorText).Bold(true)
		t.Focused.Description = lipgloss.NewStyle().Foreground(ui.ColorTextMuted).Italic(true)
		t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(ui.ColorWarning).SetString(" *")
		t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(ui.ColorWarning)

		t.Focused.FocusedButton = ui.ButtonFocusedStyle.MarginRight(1)
		t.Focused.BlurredButton = ui.ButtonStyle.MarginRight(1)

		t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(ui.ColorPrimary)
		t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(ui.ColorTextMuted)
		t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(ui.ColorPrimary)
		t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(ui.ColorText)

		t.Blurred = t.Focused
		t.Blurred.Base = fieldBlurredStyle()
		t.Blurred.Card = t.Blurred.Base
		t.Blurred.NextIndicator = lipgloss.NewStyle()
		t.Blurred.PrevIndicator = lipgloss.NewStyle()

		t.Group.Title = formTitleStyle()
		t.Group.Description = lipgloss.NewStyle().Foreground(ui.ColorTextMuted)

		t.FieldSeparator = lipgloss.NewStyle().SetString("\n")

		t.Help = help.New().Styles

		return t
	})
}
