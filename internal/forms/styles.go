package forms

import (
	"charm.land/bubbles/v2/textarea"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/planboard/internal/ui"
)

// Styles are built on use so they follow the active ui theme.

func formTitleStyle() lipgloss.Style {
	return ui.ModalTitleStyle
}

func errorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ui.ColorError)
}

func fieldFocusedStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(ui.ColorPrimary).
		PaddingLeft(1)
}

func fieldBlurredStyle() lipgloss.Style {
	return lipgloss.NewStyle().PaddingLeft(2)
}

func fieldStyle(focused bool) lipgloss.Style {
	if focused {
		return fieldFocusedStyle()
	}
	return fieldBlurredStyle()
}

// applyTextareaStyles configures a textarea with transparent background styles
// so it matches the terminal background instead of the default black.
func applyTextareaStyles(ta *textarea.Model) {
	styles := ta.Styles()

	baseStyle := lipgloss.NewStyle()
	textStyle := lipgloss.NewStyle().Foreground(ui.ColorText)
	placeholderStyle := lipgloss.NewStyle().Foreground(ui.ColorTextMuted)

	styles.Focused.Base = baseStyle
	styles.Focused.Text = textStyle
	styles.Focused.Placeholder = placeholderStyle
	styles.Focused.CursorLine = textStyle
	styles.Focused.Prompt = textStyle

	styles.Blurred.Base = baseStyle
	styles.Blurred.Text = textStyle
	styles.Blurred.Placeholder = placeholderStyle
	styles.Blurred.CursorLine = textStyle
	styles.Blurred.Prompt = textStyle

	ta.SetStyles(styles)
}
