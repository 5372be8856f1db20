package demo

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/planboard/internal/project"
)

func TestExecutorDefaultConfig(t *testing.T) {
	cfg := DefaultExecutorConfig()

	if cfg.CaptureEveryStep {
		t.Error("CaptureEveryStep should be false by default")
	}
	if cfg.TypeDelay != 50*time.Millisecond {
		t.Errorf("TypeDelay = %v, want 50ms", cfg.TypeDelay)
	}
	if cfg.KeyDelay != 100*time.Millisecond {
		t.Errorf("KeyDelay = %v, want 100ms", cfg.KeyDelay)
	}
}

func TestExecutorRun(t *testing.T) {
	scenario := &Scenario{
		Name:   "test",
		Width:  80,
		Height: 24,
		Steps: []Step{
			Wait(100 * time.Millisecond),
			Key("a"),
			Wait(100 * time.Millisecond),
		},
	}

	cfg := DefaultExecutorConfig()
	cfg.CaptureEveryStep = true

	frames, err := NewExecutor(cfg).Run(scenario)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// Initial frame + wait + key + wait
	if len(frames) != 4 {
		t.Errorf("expected 4 frames, got %d", len(frames))
	}
	if frames[0].Delay != 500*time.Millisecond {
		t.Errorf("First frame delay = %v, want 500ms", frames[0].Delay)
	}
	if !strings.Contains(ansi.Strip(frames[len(frames)-1].Content), "New Project") {
		t.Error("last frame should show the open dialog")
	}
}

func TestExecutorRun_InvalidScenario(t *testing.T) {
	_, err := NewExecutor(DefaultExecutorConfig()).Run(&Scenario{})
	if err == nil {
		t.Fatal("expected error for a scenario without a name")
	}
}

func TestExecutorRun_BadStep(t *testing.T) {
	scenario := &Scenario{
		Name:  "test",
		Steps: []Step{{Type: StepKey}},
	}
	_, err := NewExecutor(DefaultExecutorConfig()).Run(scenario)
	if err == nil || !strings.Contains(err.Error(), "step 0") {
		t.Errorf("Run() error = %v, want step 0 failure", err)
	}
}

func TestExecutorRun_SavesProject(t *testing.T) {
	scenario := &Scenario{
		Name: "save",
		Setup: &ScenarioSetup{
			Projects: []project.Draft{{Title: "Existing"}},
		},
		Steps: []Step{
			Key("a"),
			Key("tab"),
			Key("tab"),
			Type("Launch"),
			Key("ctrl+s"),
			Capture(),
		},
	}

	e := NewExecutor(DefaultExecutorConfig())
	frames, err := e.Run(scenario)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if e.model.DialogOpen() {
		t.Error("dialog should close after save")
	}
	if got := len(e.model.Projects()); got != 2 {
		t.Errorf("expected 2 projects, got %d", got)
	}

	last := ansi.Strip(frames[len(frames)-1].Content)
	for _, want := range []string{"Existing", "Launch"} {
		if !strings.Contains(last, want) {
			t.Errorf("final frame missing %q", want)
		}
	}
}

func TestExecutorRun_ClickDismisses(t *testing.T) {
	scenario := &Scenario{
		Name: "click",
		Steps: []Step{
			Key("a"),
			Capture(), // paints the dialog so it has bounds
			Click(0, 0),
		},
	}

	e := NewExecutor(DefaultExecutorConfig())
	if _, err := e.Run(scenario); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if e.model.DialogOpen() {
		t.Error("backdrop click should close the dialog")
	}
}

func TestExecutorRun_QuitKeyIgnored(t *testing.T) {
	scenario := &Scenario{
		Name:  "quit",
		Steps: []Step{Key("q"), Key("a")},
	}

	e := NewExecutor(DefaultExecutorConfig())
	if _, err := e.Run(scenario); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !e.model.DialogOpen() {
		t.Error("steps after q should still run")
	}
}

func TestAnnotation(t *testing.T) {
	scenario := &Scenario{
		Name:  "annotate",
		Steps: []Step{Annotate("hello"), Capture(), Capture()},
	}

	frames, err := NewExecutor(DefaultExecutorConfig()).Run(scenario)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if frames[1].Annotation != "hello" {
		t.Errorf("annotation = %q, want hello", frames[1].Annotation)
	}
	if frames[2].Annotation != "" {
		t.Error("annotation should apply to one frame only")
	}
}

func TestKeyPress(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"enter", "enter"},
		{"tab", "tab"},
		{"shift+tab", "shift+tab"},
		{"esc", "esc"},
		{"ctrl+s", "ctrl+s"},
		{"a", "a"},
		{"é", "é"},
	}
	for _, tt := range tests {
		if got := keyPress(tt.key).String(); got != tt.want {
			t.Errorf("keyPress(%q).String() = %q, want %q", tt.key, got, tt.want)
		}
	}
}
