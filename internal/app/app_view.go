package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// View implements tea.Model
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.SetContent(m.render())
	return v
}

func (m *Model) render() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	panels := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.list.View(),
		m.detail.View(),
	)

	page := lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		panels,
		// The modal renders through the document, so this adds nothing
		m.footer.View()+m.modal.View(),
	)

	return m.doc.Render(page, m.width, m.height)
}

// RenderToString renders the current frame as a string
func (m *Model) RenderToString() string {
	return m.render()
}
