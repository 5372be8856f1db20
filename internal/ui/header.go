package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Header represents the top header bar
type Header struct {
	width        int
	projectCount int
	selected     string
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetProjectCount sets the number of projects shown on the right
func (h *Header) SetProjectCount(n int) {
	h.projectCount = n
}

// SetSelected sets the title of the selected project
func (h *Header) SetSelected(title string) {
	h.selected = title
}

// View renders the header
func (h *Header) View() string {
	title := HeaderStyle.Render("planboard")

	var meta string
	switch h.projectCount {
	case 0:
		meta = "no projects"
	case 1:
		meta = "1 project"
	default:
		meta = fmt.Sprintf("%d projects", h.projectCount)
	}
	if h.selected != "" {
		meta = h.selected + " · " + meta
	}
	meta = HeaderMetaStyle.Render(" " + meta + " ")

	padding := h.width - lipgloss.Width(title) - lipgloss.Width(meta)
	if padding < 0 {
		// Narrow terminal: keep the title, clip the rest
		return ansi.Truncate(title+meta, max(h.width, 0), "")
	}

	fill := lipgloss.NewStyle().Background(ColorPrimary).Render(strings.Repeat(" ", padding))
	return title + fill + meta
}
