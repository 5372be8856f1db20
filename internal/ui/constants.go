package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// ListWidthRatio is the denominator for the project list width (1/3 of total width)
	ListWidthRatio = 3
)

// Modal dimensions
const (
	// ModalWidth is the default outer width of dialogs
	ModalWidth = 60

	// MinModalWidth is the narrowest dialog that still fits its form
	MinModalWidth = 30

	// ModalInputCharLimit is the character limit for modal text inputs
	ModalInputCharLimit = 256

	// ModalInputWidth is the width of modal text inputs
	ModalInputWidth = 50

	// ModalTextareaHeight is the number of lines for multi-line modal inputs
	ModalTextareaHeight = 4
)

// ModalRootID identifies the document attachment point that dialogs render into.
const ModalRootID = "modal-root"

// DefaultDismissCaption labels a dialog's built-in dismiss button.
const DefaultDismissCaption = "Close"

// Terminal limits
const (
	// MinTerminalWidth is the narrowest terminal the layout is computed for
	MinTerminalWidth = 40

	// MinTerminalHeight is the shortest terminal the layout is computed for
	MinTerminalHeight = 10
)
