package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"

	"github.com/zhubert/planboard/internal/errors"
	"github.com/zhubert/planboard/internal/keys"
	"github.com/zhubert/planboard/internal/project"
	"github.com/zhubert/planboard/internal/ui"
)

// plainView renders the model without styling.
func plainView(m *Model) string {
	return ansi.Strip(m.render())
}

// openForm opens the new-project dialog and tabs to the title field.
func openForm(t *testing.T, m *Model) *Model {
	t.Helper()
	m = sendKey(m, "a")
	if !m.modal.Dialog().Open() {
		t.Fatal("expected dialog to open on 'a'")
	}
	// Cancel -> Save -> Title
	m = sendKey(m, keys.Tab)
	m = sendKey(m, keys.Tab)
	return m
}

// addProject fills every field and saves with ctrl+s.
func addProject(t *testing.T, m *Model, d project.Draft) *Model {
	t.Helper()
	m = openForm(t, m)
	m = typeText(m, d.Title)
	m = sendKey(m, keys.Tab)
	m = typeText(m, d.Description)
	m = sendKey(m, keys.Tab)
	m = typeText(m, d.DueDate)
	return sendKeyCmd(m, keys.CtrlS)
}

func TestNew(t *testing.T) {
	m := testModel(t, testConfig())

	if m.modal == nil || !m.modal.Mounted() {
		t.Fatal("expected the new-project modal to be mounted")
	}
	if m.newProject.Current() == nil {
		t.Error("expected the modal handle to be published")
	}
	if m.modal.Dialog().Open() {
		t.Error("dialog should start closed")
	}
	if len(m.Projects()) != 0 {
		t.Errorf("expected no projects, got %d", len(m.Projects()))
	}
}

func TestNew_NilConfig(t *testing.T) {
	m, err := New(nil, "0.0.0-test")
	if err != nil {
		t.Fatalf("New(nil) error = %v", err)
	}
	if m.config == nil {
		t.Error("expected default config")
	}
}

func TestNew_MissingModalRoot(t *testing.T) {
	m, err := newModel(testConfig(), "0.0.0-test", ui.NewDocument("other-root"))
	if err == nil {
		t.Fatal("expected error when the document has no modal root")
	}
	if m != nil {
		t.Error("expected nil model on error")
	}
	if !errors.Is(err, errors.KindConfig) {
		t.Errorf("expected KindConfig, got %v", errors.GetKind(err))
	}
	if !strings.Contains(err.Error(), ui.ModalRootID) {
		t.Errorf("error %q should name %q", err, ui.ModalRootID)
	}
}

func TestNew_AppliesModalConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Modal.DismissCaption = "Done"
	cfg.Modal.Width = 50
	m := testModel(t, cfg)

	if got := m.modal.Dialog().Caption(); got != "Done" {
		t.Errorf("Caption() = %q, want %q", got, "Done")
	}
}

func TestView_Loading(t *testing.T) {
	m := testModel(t, testConfig())
	if got := m.render(); got != "Loading..." {
		t.Errorf("render() before size = %q, want Loading...", got)
	}
}

func TestView_Layout(t *testing.T) {
	m := testModelWithSize(t, testConfig(), 120, 40)
	view := plainView(m)

	for _, want := range []string{"planboard", "Projects", "No Project Selected", "add project"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(view, "New Project") {
		t.Error("dialog should not render while closed")
	}

	v := m.View()
	if !v.AltScreen {
		t.Error("expected alt screen")
	}
}

func TestOpenNewProject(t *testing.T) {
	for _, key := range []string{"a", "n"} {
		t.Run(key, func(t *testing.T) {
			m := testModelWithSize(t, testConfig(), 120, 40)
			m = sendKey(m, key)

			if !m.modal.Dialog().Open() {
				t.Fatalf("expected dialog open after %q", key)
			}
			view := plainView(m)
			if !strings.Contains(view, "New Project") {
				t.Error("expected the form in the view")
			}
			if !strings.Contains(view, ui.DefaultDismissCaption) {
				t.Error("expected the dismiss button in the view")
			}
		})
	}
}

func TestOpenNewProject_Twice(t *testing.T) {
	m := testModelWithSize(t, testConfig(), 120, 40)
	m = sendKey(m, "a")
	m = sendKey(m, keys.Tab)
	m.newProject.Open()

	// Reopening an open dialog keeps its focus
	if got := m.form.Title().Focused(); got {
		t.Error("title should not be focused yet")
	}
	if !m.modal.Dialog().Open() {
		t.Error("dialog should still be open")
	}
}

func TestDialogBlocksPageInput(t *testing.T) {
	m := testModelWithSize(t, testConfig(), 120, 40)
	m = sendKey(m, "a")

	_, cmd := m.Update(keyPress("q"))
	if isQuit(cmd) {
		t.Error("q should not quit while the dialog is open")
	}
	if !m.modal.Dialog().Open() {
		t.Error("dialog should remain open")
	}
}

func TestCtrlCQuitsWithDialogOpen(t *testing.T) {
	m := testModelWithSize(t, testConfig(), 120, 40)
	m = sendKey(m, "a")

	_, cmd := m.Update(keyPress(keys.CtrlC))
	if !isQuit(cmd) {
		t.Error("ctrl+c should quit")
	}
}

func TestQuit(t *testing.T) {
	m := testModelWithSize(t, testConfig(), 120, 40)
	_, cmd := m.Update(keyPress("q"))
	if !isQuit(cmd) {
		t.Error("q should quit when no dialog is open")
	}
}

func TestAddProject(t *testing.T) {
	m := testModelWithSize(t, testConfig(), 120, 40)
	draft := project.Draft{Title: "Launch", Description: "Prepare release", DueDate: "2024-12-01"}

	m = addProject(t, m, draft)

	if m.modal.Dialog().Open() {
		t.Error("dialog should close after save")
	}
	projects := m.Projects()
	if len(projects) != 1 {
		t.Fatalf("expected 1 project, got %d", len(projects))
	}
	if diff := cmp.Diff(draft, projects[0].Draft); diff != "" {
		t.Errorf("saved draft mismatch (-want +got):\n%s", diff)
	}

	sel, ok := m.list.Selected()
	if !ok || sel.ID != projects[0].ID {
		t.Error("expected the new project to be selected")
	}
	if !m.footer.HasFlash() {
		t.Error("expected a flash after saving")
	}

	view := plainView(m)
	for _, want := range []string{"Launch", "Due Sun, Dec 1 2024", "Added Launch"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestAddProject_ResetsForm(t *testing.T) {
	m := testModelWithSize(t, testConfig(), 120, 40)
	m = addProject(t, m, project.Draft{Title: "Launch"})

	if diff := cmp.Diff(project.Draft{}, m.form.Draft()); diff != "" {
		t.Errorf("form not cleared (-want +got):\n%s", diff)
	}

	m = sendKey(m, "a")
	if !m.modal.Dialog().Open() {
		t.Error("dialog should reopen after a save")
	}
}

func TestAddProject_Multiple(t *testing.T) {
	m := testModelWithSize(t, testConfig(), 120, 40)
	m = addProject(t, m, project.Draft{Title: "One"})
	m = addProject(t, m, project.Draft{Title: "Two"})

	var titles []string
	for _, p := range m.Projects() {
		titles = append(titles, p.Title)
	}
	if diff := cmp.Diff([]string{"One", "Two"}, titles); diff != "" {
		t.Errorf("titles mismatch (-want +got):\n%s", diff)
	}

	sel, _ := m.list.Selected()
	if sel.Title != "Two" {
		t.Errorf("selected %q, want Two", sel.Title)
	}

	m = sendKey(m, keys.Up)
	sel, _ = m.list.Selected()
	if sel.Title != "One" {
		t.Errorf("after up selected %q, want One", sel.Title)
	}
	if !strings.Contains(plainView(m), "One") {
		t.Error("detail should show the selected project")
	}
}

func TestAddProject_Empty(t *testing.T) {
	m := testModelWithSize(t, testConfig(), 120, 40)
	m = sendKey(m, "a")
	m = sendKeyCmd(m, keys.CtrlS)

	projects := m.Projects()
	if len(projects) != 1 {
		t.Fatalf("expected an empty draft to be saved, got %d projects", len(projects))
	}
	if !projects[0].IsEmpty() {
		t.Errorf("expected empty draft, got %+v", projects[0].Draft)
	}
	if !strings.Contains(plainView(m), "Untitled") {
		t.Error("expected untitled placeholder")
	}
}

func TestCancelDoesNotSave(t *testing.T) {
	m := testModelWithSize(t, testConfig(), 120, 40)
	m = openForm(t, m)
	m = typeText(m, "Draft")

	// Back to Cancel
	m = sendKey(m, keys.ShiftTab)
	m = sendKey(m, keys.ShiftTab)
	m = sendKeyCmd(m, keys.Enter)

	if m.modal.Dialog().Open() {
		t.Error("cancel should close the dialog")
	}
	if len(m.Projects()) != 0 {
		t.Error("cancel should not add a project")
	}
	// The form keeps what was typed until the next save
	if got := m.form.Title().Value(); got != "Draft" {
		t.Errorf("title = %q, want Draft", got)
	}
}

func TestCloseWays(t *testing.T) {
	tests := []struct {
		name  string
		close func(m *Model)
	}{
		{"escape", func(m *Model) { sendKey(m, keys.Escape) }},
		{"dismiss button", func(m *Model) {
			// Cancel -> Save -> Title -> Description -> Due Date -> Close
			for range 5 {
				sendKey(m, keys.Tab)
			}
			sendKey(m, keys.Enter)
		}},
		{"backdrop click", func(m *Model) {
			m.Update(tea.MouseClickMsg{X: 0, Y: 0, Button: tea.MouseLeft})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testModelWithSize(t, testConfig(), 120, 40)
			m = sendKey(m, "a")
			m.render()

			tt.close(m)

			if m.modal.Dialog().Open() {
				t.Error("expected dialog closed")
			}
			if len(m.Projects()) != 0 {
				t.Error("closing should not add a project")
			}
			if strings.Contains(plainView(m), "New Project") {
				t.Error("form should no longer render")
			}
		})
	}
}

func TestCopySelected(t *testing.T) {
	m := testModelWithSize(t, testConfig(), 120, 40)
	var copied string
	m.copyText = func(s string) error {
		copied = s
		return nil
	}

	_, cmd := m.Update(keyPress("y"))
	if cmd != nil && len(collect(cmd)) != 0 {
		t.Error("copy with no project should do nothing")
	}

	m = addProject(t, m, project.Draft{Title: "Launch", Description: "Prepare release"})
	m = sendKeyCmd(m, "y")

	want := "Launch\nNo due date\n\nPrepare release"
	if copied != want {
		t.Errorf("copied %q, want %q", copied, want)
	}
	if !strings.Contains(plainView(m), "Copied Launch") {
		t.Error("expected copy flash")
	}
}

func TestCopySelected_Error(t *testing.T) {
	m := testModelWithSize(t, testConfig(), 120, 40)
	m = addProject(t, m, project.Draft{Title: "Launch"})
	m.copyText = func(string) error {
		return errors.ClipboardUnavailable(nil)
	}

	m = sendKeyCmd(m, "y")
	if !strings.Contains(plainView(m), "Failed to copy") {
		t.Error("expected error flash")
	}
}

func TestNotifyOnAdd(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		want    []string
	}{
		{"enabled", true, []string{"Launch"}},
		{"disabled", false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Notifications.Enabled = tt.enabled
			m := testModelWithSize(t, cfg, 120, 40)

			var got []string
			m.notify = func(title string) error {
				got = append(got, title)
				return nil
			}

			addProject(t, m, project.Draft{Title: "Launch"})

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("notifications mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWindowResize(t *testing.T) {
	m := testModelWithSize(t, testConfig(), 120, 40)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	if m.ctx.TerminalWidth != 80 || m.ctx.TerminalHeight != 24 {
		t.Errorf("context size = %dx%d, want 80x24", m.ctx.TerminalWidth, m.ctx.TerminalHeight)
	}
	if m.ctx.ListWidth+m.ctx.DetailWidth != 80 {
		t.Errorf("panels %d+%d should fill 80 columns", m.ctx.ListWidth, m.ctx.DetailWidth)
	}
}

func TestClipboardText(t *testing.T) {
	tests := []struct {
		name string
		p    project.Project
		want string
	}{
		{"title only", project.Project{Draft: project.Draft{Title: "A"}}, "A\nNo due date"},
		{"untitled", project.Project{}, "Untitled\nNo due date"},
		{"all fields", project.Project{Draft: project.Draft{Title: "A", Description: "B", DueDate: "2024-12-01"}},
			"A\nDue Sun, Dec 1 2024\n\nB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clipboardText(tt.p); got != tt.want {
				t.Errorf("clipboardText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSeedProjects(t *testing.T) {
	m := testModelWithSize(t, testConfig(), 120, 40)
	m.SeedProjects()
	if len(m.Projects()) != 0 {
		t.Fatal("seeding nothing should add nothing")
	}

	m.SeedProjects(project.Draft{Title: "One"}, project.Draft{Title: "Two"})

	if len(m.Projects()) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(m.Projects()))
	}
	sel, ok := m.list.Selected()
	if !ok || sel.Title != "Two" {
		t.Errorf("expected Two selected, got %q", sel.Title)
	}
	if m.footer.HasFlash() {
		t.Error("seeding should not flash")
	}
	if m.DialogOpen() {
		t.Error("seeding should not open the dialog")
	}
}

func TestSetters(t *testing.T) {
	m := testModelWithSize(t, testConfig(), 120, 40)
	m.SeedProjects(project.Draft{Title: "Launch"})

	var copied string
	m.SetClipboardWriter(func(s string) error {
		copied = s
		return nil
	})
	sendKeyCmd(m, "y")
	if copied == "" {
		t.Error("expected the injected clipboard writer to be used")
	}

	m.config.Notifications.Enabled = true
	var notified string
	m.SetNotifier(func(title string) error {
		notified = title
		return nil
	})
	addProject(t, m, project.Draft{Title: "Two"})
	if notified != "Two" {
		t.Errorf("notified %q, want Two", notified)
	}
}

func TestRenderToString(t *testing.T) {
	m := testModelWithSize(t, testConfig(), 80, 24)
	if got, want := m.RenderToString(), m.render(); got != want {
		t.Error("RenderToString should match the program view")
	}
}
