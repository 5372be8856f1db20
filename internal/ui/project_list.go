package ui

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/planboard/internal/keys"
	"github.com/zhubert/planboard/internal/project"
)

// ProjectList is the left pane: every project in insertion order with one
// selected.
type ProjectList struct {
	width        int
	height       int
	projects     []project.Project
	selectedIdx  int
	scrollOffset int
}

// NewProjectList creates an empty list
func NewProjectList() *ProjectList {
	return &ProjectList{}
}

// SetSize sets the panel size including borders
func (l *ProjectList) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// SetProjects replaces the listed projects, keeping the selection in range
func (l *ProjectList) SetProjects(projects []project.Project) {
	l.projects = projects
	if l.selectedIdx >= len(projects) {
		l.selectedIdx = max(0, len(projects)-1)
	}
}

// Select moves the selection to the project with the given id
func (l *ProjectList) Select(id string) {
	for i, p := range l.projects {
		if p.ID == id {
			l.selectedIdx = i
			return
		}
	}
}

// Selected returns the selected project
func (l *ProjectList) Selected() (project.Project, bool) {
	if len(l.projects) == 0 {
		return project.Project{}, false
	}
	return l.projects[l.selectedIdx], true
}

// Update handles selection keys
func (l *ProjectList) Update(msg tea.Msg) (*ProjectList, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok || len(l.projects) == 0 {
		return l, nil
	}

	switch key.String() {
	case keys.Up, "k":
		if l.selectedIdx > 0 {
			l.selectedIdx--
		}
	case keys.Down, "j":
		if l.selectedIdx < len(l.projects)-1 {
			l.selectedIdx++
		}
	}
	return l, nil
}

// View renders the list panel
func (l *ProjectList) View() string {
	innerWidth := max(0, l.width-BorderSize)
	innerHeight := max(0, l.height-BorderSize)

	title := PanelTitleStyle.Render("Projects")
	visible := max(0, innerHeight-1)

	var lines []string
	if len(l.projects) == 0 {
		lines = append(lines, EmptyStateStyle.Render(" Press a to add one."))
	} else {
		// Keep the selection in view
		if l.selectedIdx < l.scrollOffset {
			l.scrollOffset = l.selectedIdx
		} else if visible > 0 && l.selectedIdx >= l.scrollOffset+visible {
			l.scrollOffset = l.selectedIdx - visible + 1
		}

		end := min(len(l.projects), l.scrollOffset+visible)
		for i := l.scrollOffset; i < end; i++ {
			name := l.projects[i].Title
			if name == "" {
				name = "Untitled"
			}
			style := ListItemStyle
			prefix := "  "
			if i == l.selectedIdx {
				style = ListSelectedStyle
				prefix = "> "
			}
			name = TruncateString(prefix+name, max(1, innerWidth-2))
			lines = append(lines, style.Width(innerWidth).Render(name))
		}
	}

	content := title + "\n" + strings.Join(lines, "\n")
	// In lipgloss v2, Width/Height include borders, so pass full panel size
	return PanelStyle.Width(l.width).Height(l.height).Render(content)
}
