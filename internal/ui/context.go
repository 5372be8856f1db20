package ui

import (
	"log/slog"

	"github.com/zhubert/planboard/internal/logger"
)

// ViewContext holds the layout calculations for the main screen.
// All size calculations should go through this to avoid duplication.
type ViewContext struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Calculated dimensions
	HeaderHeight  int
	FooterHeight  int
	ContentHeight int
	ListWidth     int
	DetailWidth   int

	log *slog.Logger
}

// NewViewContext creates a view context with fixed header and footer heights.
func NewViewContext() *ViewContext {
	return &ViewContext{
		HeaderHeight: HeaderHeight,
		FooterHeight: FooterHeight,
		log:          logger.ComponentLogger("ui"),
	}
}

// UpdateTerminalSize recalculates all dimensions when the terminal is resized.
// Dimensions below MinTerminalWidth and MinTerminalHeight are clamped.
func (v *ViewContext) UpdateTerminalSize(width, height int) {
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}

	v.TerminalWidth = width
	v.TerminalHeight = height

	// Content area is everything between header and footer
	v.ContentHeight = height - v.HeaderHeight - v.FooterHeight

	v.ListWidth = width / ListWidthRatio
	v.DetailWidth = width - v.ListWidth

	v.log.Debug("Terminal size updated",
		"width", width,
		"height", height,
		"contentHeight", v.ContentHeight,
		"listWidth", v.ListWidth,
		"detailWidth", v.DetailWidth,
	)
}

// InnerWidth returns the usable width inside a panel with borders
func (v *ViewContext) InnerWidth(panelWidth int) int {
	return max(0, panelWidth-BorderSize)
}

// InnerHeight returns the usable height inside a panel with borders
func (v *ViewContext) InnerHeight(panelHeight int) int {
	return max(0, panelHeight-BorderSize)
}
