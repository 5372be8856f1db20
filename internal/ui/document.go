package ui

import (
	"slices"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/zhubert/planboard/internal/errors"
)

// Document is the composed terminal frame. It owns the attachment points
// that relocated content renders into and the top layer of open dialogs.
//
// The page renders its own view as usual and hands it to Render, which paints
// every mount target's open nodes over it. Input reaches the page only when
// no dialog is open; see Update.
type Document struct {
	targets  []*MountTarget
	topLayer []*Dialog
}

// NewDocument creates a document with the given mount targets, in paint order.
func NewDocument(targetIDs ...string) *Document {
	d := &Document{}
	for _, id := range targetIDs {
		d.targets = append(d.targets, &MountTarget{id: id})
	}
	return d
}

// MountTarget returns the attachment point with the given id.
func (d *Document) MountTarget(id string) (*MountTarget, error) {
	for _, t := range d.targets {
		if t.id == id {
			return t, nil
		}
	}
	return nil, errors.MountTargetMissing(id)
}

// Require fails when any of the given mount targets is absent. Call it at
// startup, before anything renders.
func (d *Document) Require(ids ...string) error {
	for _, id := range ids {
		if _, err := d.MountTarget(id); err != nil {
			return err
		}
	}
	return nil
}

// CreateDialog creates a closed dialog owned by the caller. It is not
// painted until it is attached to a mount target and shown.
func (d *Document) CreateDialog(caption string, content Content, width int) *Dialog {
	return newDialog(d, caption, content, width)
}

func (d *Document) top() *Dialog {
	if len(d.topLayer) == 0 {
		return nil
	}
	return d.topLayer[len(d.topLayer)-1]
}

func (d *Document) promote(dlg *Dialog) {
	if !slices.Contains(d.topLayer, dlg) {
		d.topLayer = append(d.topLayer, dlg)
	}
}

func (d *Document) demote(dlg *Dialog) {
	d.topLayer = slices.DeleteFunc(d.topLayer, func(x *Dialog) bool { return x == dlg })
}

// Update routes a message through the top layer. While a dialog is open,
// input is delivered only to it and reported handled, which blocks the rest
// of the page. Other messages reach the dialog too but are left for the page.
func (d *Document) Update(msg tea.Msg) (tea.Cmd, bool) {
	top := d.top()

	switch msg.(type) {
	case DismissMsg:
		if top == nil {
			return nil, true
		}
		return top.Update(msg), true
	case tea.KeyPressMsg, tea.MouseClickMsg, tea.MouseReleaseMsg,
		tea.MouseMotionMsg, tea.MouseWheelMsg, tea.PasteMsg:
		if top == nil {
			return nil, false
		}
		return top.Update(msg), true
	}

	if top == nil {
		return nil, false
	}
	return top.Update(msg), false
}

// Render paints the page view and then, centered and in paint order, every
// open node of every mount target. The page is dimmed behind open dialogs.
func (d *Document) Render(base string, width, height int) string {
	if width <= 0 || height <= 0 {
		return base
	}

	var layers []*Dialog
	for _, t := range d.targets {
		for _, n := range t.nodes {
			if n.dialog.Open() {
				layers = append(layers, n.dialog)
			}
		}
	}
	if len(layers) == 0 {
		return base
	}

	area := uv.Rect(0, 0, width, height)
	scr := uv.NewScreenBuffer(area.Dx(), area.Dy())
	uv.NewStyledString(base).Draw(scr, area)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cell := scr.CellAt(x, y)
			if cell == nil {
				continue
			}
			cell = cell.Clone()
			cell.Style.Fg = ColorBackdrop
			cell.Style.Bg = nil
			scr.SetCell(x, y, cell)
		}
	}

	for _, dlg := range layers {
		view := dlg.View()
		w, h := lipgloss.Width(view), lipgloss.Height(view)
		x := max(0, (width-w)/2)
		y := max(0, (height-h)/2)
		dlg.place(x, y, w, h)
		uv.NewStyledString(view).Draw(scr, uv.Rect(x, y, w, h))
	}

	return scr.Render()
}

// MountTarget is a named attachment point outside the normal view tree.
// Nodes are keyed by owner; attaching the same key again replaces in place.
type MountTarget struct {
	id    string
	nodes []mountNode
}

type mountNode struct {
	key    string
	dialog *Dialog
}

// ID returns the target's identifier.
func (t *MountTarget) ID() string {
	return t.id
}

// Keys returns the keys of attached nodes in insertion order.
func (t *MountTarget) Keys() []string {
	keys := make([]string, len(t.nodes))
	for i, n := range t.nodes {
		keys[i] = n.key
	}
	return keys
}

// Contains reports whether a node with the given key is attached.
func (t *MountTarget) Contains(key string) bool {
	return slices.ContainsFunc(t.nodes, func(n mountNode) bool { return n.key == key })
}

func (t *MountTarget) attach(key string, dlg *Dialog) {
	for i := range t.nodes {
		if t.nodes[i].key == key {
			t.nodes[i].dialog = dlg
			return
		}
	}
	t.nodes = append(t.nodes, mountNode{key: key, dialog: dlg})
}

func (t *MountTarget) detach(key string) {
	t.nodes = slices.DeleteFunc(t.nodes, func(n mountNode) bool { return n.key == key })
}
