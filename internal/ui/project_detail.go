package ui

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/zhubert/planboard/internal/project"
)

// ProjectDetail is the right pane showing the selected project.
type ProjectDetail struct {
	width   int
	height  int
	project *project.Project
}

// NewProjectDetail creates an empty detail pane
func NewProjectDetail() *ProjectDetail {
	return &ProjectDetail{}
}

// SetSize sets the panel size including borders
func (d *ProjectDetail) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// SetProject sets the project to show; nil shows the empty state
func (d *ProjectDetail) SetProject(p *project.Project) {
	d.project = p
}

// FormatDue renders a due date for display. Dates that do not parse as
// YYYY-MM-DD are shown as entered.
func FormatDue(d project.Draft) string {
	if d.DueDate == "" {
		return "No due date"
	}
	if t, ok := d.Due(); ok {
		return "Due " + t.Format("Mon, Jan 2 2006")
	}
	return "Due " + d.DueDate
}

// View renders the detail panel
func (d *ProjectDetail) View() string {
	innerWidth := max(0, d.width-BorderSize)
	innerHeight := max(0, d.height-BorderSize)

	var content string
	if d.project == nil {
		content = lipgloss.Place(innerWidth, innerHeight, lipgloss.Center, lipgloss.Center,
			EmptyStateStyle.Render("No Project Selected"))
	} else {
		p := d.project
		title := p.Title
		if title == "" {
			title = "Untitled"
		}
		parts := []string{
			PanelTitleStyle.Render(TruncateString(title, max(1, innerWidth-2))),
			LabelStyle.PaddingLeft(1).Render(FormatDue(p.Draft)),
			"",
		}
		if desc := RenderMarkdown(p.Description, innerWidth-2); desc != "" {
			parts = append(parts, desc)
		} else {
			parts = append(parts, EmptyStateStyle.PaddingLeft(1).Render("No description."))
		}

		lines := strings.Split(strings.Join(parts, "\n"), "\n")
		if innerHeight > 0 && len(lines) > innerHeight {
			lines = lines[:innerHeight]
		}
		content = strings.Join(lines, "\n")
	}

	return PanelStyle.Width(d.width).Height(d.height).Render(content)
}
