package app

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/planboard/internal/clipboard"
	"github.com/zhubert/planboard/internal/config"
	"github.com/zhubert/planboard/internal/forms"
	"github.com/zhubert/planboard/internal/keys"
	"github.com/zhubert/planboard/internal/logger"
	"github.com/zhubert/planboard/internal/notification"
	"github.com/zhubert/planboard/internal/project"
	"github.com/zhubert/planboard/internal/ui"
)

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string
	header  *ui.Header
	footer  *ui.Footer
	list    *ui.ProjectList
	detail  *ui.ProjectDetail
	ctx     *ui.ViewContext

	// The document owns the modal root; the new-project dialog lives there,
	// not in the page tree.
	doc        *ui.Document
	form       *forms.ProjectForm
	modal      *ui.Modal
	newProject *ui.HandleRef

	store *project.Store

	width  int
	height int

	copyText func(string) error
	notify   func(title string) error

	log *slog.Logger
}

// clipboardResultMsg reports the outcome of copying a project
type clipboardResultMsg struct {
	title string
	err   error
}

// notificationResultMsg reports the outcome of a desktop notification
type notificationResultMsg struct {
	err error
}

// New creates a new app model. It fails when the document has no modal root.
func New(cfg *config.Config, version string) (*Model, error) {
	return newModel(cfg, version, ui.NewDocument(ui.ModalRootID))
}

func newModel(cfg *config.Config, version string, doc *ui.Document) (*Model, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	m := &Model{
		config:     cfg,
		version:    version,
		header:     ui.NewHeader(),
		footer:     ui.NewFooter(),
		list:       ui.NewProjectList(),
		detail:     ui.NewProjectDetail(),
		ctx:        ui.NewViewContext(),
		doc:        doc,
		newProject: &ui.HandleRef{},
		store:      project.NewStore(),
		copyText:   clipboard.WriteText,
		notify:     notification.ProjectAdded,
		log:        logger.ComponentLogger("App"),
	}

	if err := doc.Require(ui.ModalRootID); err != nil {
		m.log.Error("document is missing a mount target", "error", err)
		return nil, err
	}

	m.form = forms.NewProjectForm(m.handleAddProject)
	m.modal = ui.NewModal(m.form,
		ui.WithHandle(m.newProject),
		ui.WithDismissCaption(cfg.Modal.DismissCaption),
		ui.WithWidth(cfg.Modal.Width),
	)
	if err := m.modal.Mount(doc); err != nil {
		return nil, err
	}

	m.syncSelection()
	m.log.Info("app started", "version", version)
	return m, nil
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()

	case tea.KeyPressMsg:
		// Quit works even while a dialog is open
		if msg.String() == keys.CtrlC {
			return m, tea.Quit
		}

	case ui.FlashTickMsg:
		if m.footer.ClearIfExpired() {
			return m, nil
		}
		if m.footer.HasFlash() {
			return m, ui.FlashTick()
		}
		return m, nil

	case clipboardResultMsg:
		if msg.err != nil {
			m.log.Warn("copy failed", "error", msg.err)
			return m, m.ShowFlashError("Failed to copy to clipboard")
		}
		return m, m.ShowFlashInfo("Copied " + displayTitle(msg.title))

	case notificationResultMsg:
		if msg.err != nil {
			m.log.Warn("notification failed", "error", msg.err)
		}
		return m, nil
	}

	// Open dialogs see every message first and swallow input
	cmd, handled := m.doc.Update(msg)
	if handled {
		return m, cmd
	}
	cmds = append(cmds, cmd)

	if key, ok := msg.(tea.KeyPressMsg); ok {
		cmds = append(cmds, m.handleKey(key))
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(key tea.KeyPressMsg) tea.Cmd {
	switch key.String() {
	case "q":
		return tea.Quit
	case "a", "n":
		m.newProject.Open()
		return nil
	case "y":
		return m.copySelected()
	}

	m.list.Update(key)
	m.syncSelection()
	return nil
}

// handleAddProject is the form's save callback
func (m *Model) handleAddProject(d project.Draft) tea.Cmd {
	p := m.store.Add(d)
	m.log.Info("project added", "id", p.ID, "title", p.Title)

	m.list.SetProjects(m.store.List())
	m.list.Select(p.ID)
	m.syncSelection()
	m.form.Reset()

	cmds := []tea.Cmd{
		ui.Dismiss(),
		m.ShowFlashSuccess("Added " + displayTitle(p.Title)),
	}
	if m.config.Notifications.Enabled {
		notify := m.notify
		cmds = append(cmds, func() tea.Msg {
			return notificationResultMsg{err: notify(p.Title)}
		})
	}
	return tea.Batch(cmds...)
}

func (m *Model) copySelected() tea.Cmd {
	p, ok := m.list.Selected()
	if !ok {
		return nil
	}
	text := clipboardText(p)
	copyText := m.copyText
	return func() tea.Msg {
		return clipboardResultMsg{title: p.Title, err: copyText(text)}
	}
}

// clipboardText is the plain-text form of a project
func clipboardText(p project.Project) string {
	text := displayTitle(p.Title) + "\n" + ui.FormatDue(p.Draft)
	if p.Description != "" {
		text += "\n\n" + p.Description
	}
	return text
}

func displayTitle(title string) string {
	if title == "" {
		return "Untitled"
	}
	return title
}

func (m *Model) syncSelection() {
	p, ok := m.list.Selected()
	m.header.SetProjectCount(m.store.Len())
	m.footer.SetHasProject(ok)
	if !ok {
		m.header.SetSelected("")
		m.detail.SetProject(nil)
		return
	}
	m.header.SetSelected(displayTitle(p.Title))
	m.detail.SetProject(&p)
}

func (m *Model) updateSizes() {
	m.ctx.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(m.ctx.TerminalWidth)
	m.footer.SetWidth(m.ctx.TerminalWidth)
	m.list.SetSize(m.ctx.ListWidth, m.ctx.ContentHeight)
	m.detail.SetSize(m.ctx.DetailWidth, m.ctx.ContentHeight)
}

// Projects returns the projects added so far
func (m *Model) Projects() []project.Project {
	return m.store.List()
}

// SetClipboardWriter replaces the clipboard write used by the copy key
func (m *Model) SetClipboardWriter(fn func(string) error) {
	m.copyText = fn
}

// SetNotifier replaces the desktop notification sent when a project is added
func (m *Model) SetNotifier(fn func(title string) error) {
	m.notify = fn
}

// SeedProjects adds drafts without going through the dialog, selecting the
// last one added
func (m *Model) SeedProjects(drafts ...project.Draft) {
	var last project.Project
	for _, d := range drafts {
		last = m.store.Add(d)
	}
	if len(drafts) == 0 {
		return
	}
	m.list.SetProjects(m.store.List())
	m.list.Select(last.ID)
	m.syncSelection()
}

// DialogOpen reports whether the new-project dialog is showing
func (m *Model) DialogOpen() bool {
	return m.modal.Dialog().Open()
}
