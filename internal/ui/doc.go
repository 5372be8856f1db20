// Package ui provides the user interface components for the planboard TUI.
//
// # Overview
//
// The ui package implements the visual components of planboard using the
// Bubble Tea framework and Lipgloss styling library. It follows the
// Model-Update-View pattern established by Bubble Tea.
//
// # Layout System
//
// The page is organized as follows:
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	├─────────────────┬───────────────────────────────────┤
//	│                 │                                   │
//	│  Project list   │         Project detail            │
//	│   (1/3 width)   │         (2/3 width)               │
//	│                 │                                   │
//	├─────────────────┴───────────────────────────────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// Dialogs are not part of the page. They live in the Document's "modal-root"
// mount target and are painted over the dimmed page by Document.Render.
//
// # Components
//
// ViewContext: Layout calculations for the current terminal size.
//
// Header: The application title, project count and selected project.
//
// Footer: Key hints, replaced for a few seconds by a flash message.
//
// ProjectList: Projects in insertion order with j/k or arrow selection.
//
// ProjectDetail: The selected project's title, due date and markdown
// description.
//
// # Modal dialogs
//
// Document owns the mount targets and the top layer of open dialogs. While a
// dialog is open, Document.Update delivers input only to it.
//
// Dialog is the modal surface itself: a bordered box with Content and a
// dismiss button. It closes on esc, a click outside its bounds, its dismiss
// button, or a DismissMsg sent by the content.
//
// Modal is what an owner declares. It mounts a Dialog into the document and
// publishes a Handle through a HandleRef; calling Open on the handle shows
// the dialog. The Modal's own View is always empty.
//
// # Styles
//
// Styles are defined in styles.go and regenerated from the active Theme by
// SetTheme. See theme.go for the built-in palettes.
package ui
