package demo

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestGenerateASCIICast(t *testing.T) {
	frames := []Frame{
		{Content: "one\ntwo", Delay: 500 * time.Millisecond},
		{Content: "three", Delay: 250 * time.Millisecond, Annotation: "note"},
	}

	var buf bytes.Buffer
	if err := GenerateASCIICast(&buf, frames, 80, 24, "demo"); err != nil {
		t.Fatalf("GenerateASCIICast() error = %v", err)
	}

	scanner := bufio.NewScanner(&buf)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 events, got %d lines", len(lines))
	}

	var header castHeader
	if err := json.Unmarshal([]byte(lines[0]), &header); err != nil {
		t.Fatalf("bad header: %v", err)
	}
	wantHeader := castHeader{Version: 2, Width: 80, Height: 24, Title: "demo", Env: map[string]string{"TERM": "xterm-256color"}}
	if diff := cmp.Diff(wantHeader, header); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}

	tests := []struct {
		line     string
		wantTime float64
		wantData string
	}{
		{lines[1], 0.5, clearScreen + "one\r\ntwo"},
		{lines[2], 0.75, clearScreen + "three\r\nnote"},
	}
	for _, tt := range tests {
		var event []any
		if err := json.Unmarshal([]byte(tt.line), &event); err != nil {
			t.Fatalf("bad event %q: %v", tt.line, err)
		}
		if len(event) != 3 || event[1] != "o" {
			t.Fatalf("unexpected event shape: %v", event)
		}
		if event[0] != tt.wantTime {
			t.Errorf("time = %v, want %v", event[0], tt.wantTime)
		}
		if event[2] != tt.wantData {
			t.Errorf("data = %q, want %q", event[2], tt.wantData)
		}
	}
}

func TestGenerateASCIICast_NoFrames(t *testing.T) {
	var buf bytes.Buffer
	if err := GenerateASCIICast(&buf, nil, 80, 24, ""); err != nil {
		t.Fatalf("GenerateASCIICast() error = %v", err)
	}
	if n := strings.Count(buf.String(), "\n"); n != 1 {
		t.Errorf("expected only the header line, got %d lines", n)
	}
}
