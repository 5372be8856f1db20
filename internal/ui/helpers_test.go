package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		expected string
	}{
		{"fits", "Launch", 10, "Launch"},
		{"exact", "Launch", 6, "Launch"},
		{"cut", "Prepare release", 8, "Prepare…"},
		{"wide runes", "日本語テキスト", 7, "日本語…"},
		{"zero", "Launch", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateString(tt.input, tt.maxWidth); got != tt.expected {
				t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.expected)
			}
		})
	}
}

func TestRenderMarkdown(t *testing.T) {
	if got := RenderMarkdown("   ", 40); got != "" {
		t.Errorf("blank markdown should render empty, got %q", got)
	}

	out := ansi.Strip(RenderMarkdown("Ship **v2** today", 40))
	if !strings.Contains(out, "Ship") || !strings.Contains(out, "v2") {
		t.Errorf("rendered markdown lost text: %q", out)
	}
	if strings.Contains(out, "**") {
		t.Errorf("emphasis markers should be rendered, got %q", out)
	}
}
