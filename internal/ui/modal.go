package ui

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/zhubert/planboard/internal/logger"
)

// Modal renders its content inside a Dialog that lives in the document's
// "modal-root" mount target rather than in the page's own view tree.
//
// A Modal contributes nothing to the view of the component that owns it.
// Opening is imperative: the owner passes a HandleRef and calls Open on it.
// Closing is left to the dialog's native behaviors (esc, backdrop click,
// the dismiss button, or a DismissMsg from the content).
type Modal struct {
	key     string
	content Content
	caption string
	width   int
	ref     *HandleRef

	doc    *Document
	target *MountTarget
	dialog *Dialog
	handle *Handle

	log *slog.Logger
}

// ModalOption configures a Modal.
type ModalOption func(*Modal)

// WithDismissCaption sets the label of the dialog's dismiss button.
func WithDismissCaption(caption string) ModalOption {
	return func(m *Modal) {
		if caption != "" {
			m.caption = caption
		}
	}
}

// WithHandle asks the modal to publish its handle into ref once mounted.
func WithHandle(ref *HandleRef) ModalOption {
	return func(m *Modal) {
		m.ref = ref
	}
}

// WithWidth sets the dialog's outer width.
func WithWidth(width int) ModalOption {
	return func(m *Modal) {
		if width > 0 {
			m.width = max(width, MinModalWidth)
		}
	}
}

// NewModal creates an unmounted modal around content.
func NewModal(content Content, opts ...ModalOption) *Modal {
	m := &Modal{
		key:     "modal-" + uuid.NewString(),
		content: content,
		caption: DefaultDismissCaption,
		width:   ModalWidth,
		log:     logger.ComponentLogger("Modal"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Key identifies the modal's node within the mount target.
func (m *Modal) Key() string {
	return m.key
}

// Mounted reports whether the modal is attached to a document.
func (m *Modal) Mounted() bool {
	return m.dialog != nil
}

// Dialog returns the mounted dialog, or nil when unmounted.
func (m *Modal) Dialog() *Dialog {
	return m.dialog
}

// Mount creates the modal's dialog in doc's modal root and publishes a fresh
// handle. Mounting an already mounted modal does nothing.
func (m *Modal) Mount(doc *Document) error {
	if m.dialog != nil {
		return nil
	}

	target, err := doc.MountTarget(ModalRootID)
	if err != nil {
		m.log.Error("mount failed", "modal", m.key, "error", err)
		return err
	}

	m.doc = doc
	m.target = target
	m.dialog = doc.CreateDialog(m.caption, m.content, m.width)
	target.attach(m.key, m.dialog)

	m.handle = &Handle{modal: m}
	if m.ref != nil {
		m.ref.current = m.handle
	}

	m.log.Debug("modal mounted", "modal", m.key, "target", target.ID())
	return nil
}

// Unmount closes and removes the dialog. The published handle stops working
// and the ref is cleared.
func (m *Modal) Unmount() {
	if m.dialog == nil {
		return
	}

	m.dialog.Close("")
	m.target.detach(m.key)

	m.handle.modal = nil
	if m.ref != nil && m.ref.current == m.handle {
		m.ref.current = nil
	}

	m.doc, m.target, m.dialog, m.handle = nil, nil, nil, nil
	m.log.Debug("modal unmounted", "modal", m.key)
}

// View is always empty: the dialog is painted by Document.Render.
func (m *Modal) View() string {
	return ""
}

// Handle is the imperative interface a Modal publishes to its owner.
type Handle struct {
	modal *Modal
}

// Open shows the dialog modally. It does nothing while the dialog is already
// open, and is ignored once the modal has been unmounted.
func (h *Handle) Open() {
	if h == nil || h.modal == nil || h.modal.dialog == nil {
		logger.ComponentLogger("Modal").Debug("open ignored: modal is not mounted")
		return
	}
	h.modal.dialog.ShowModal()
	h.modal.log.Debug("modal opened", "modal", h.modal.key)
}

// HandleRef is a slot the owner creates before the modal mounts. The modal
// fills it on Mount and clears it on Unmount.
type HandleRef struct {
	current *Handle
}

// Current returns the published handle, or nil before mount and after unmount.
func (r *HandleRef) Current() *Handle {
	if r == nil {
		return nil
	}
	return r.current
}

// Open forwards to the current handle.
func (r *HandleRef) Open() {
	r.Current().Open()
}
