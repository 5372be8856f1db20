package ui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

var (
	mdRendererMu sync.Mutex
	// Renderers are cached per wrap width. The style comes from the theme
	// rather than auto-detection, which queries the terminal background.
	mdRenderers = map[int]*glamour.TermRenderer{}
)

func resetMarkdownRenderers() {
	mdRendererMu.Lock()
	defer mdRendererMu.Unlock()
	mdRenderers = map[int]*glamour.TermRenderer{}
}

// RenderMarkdown renders md wrapped to width. It falls back to the raw text
// when rendering fails.
func RenderMarkdown(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	width = max(width, 10)

	mdRendererMu.Lock()
	r := mdRenderers[width]
	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(currentTheme.MarkdownStyle),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			mdRendererMu.Unlock()
			return md
		}
		mdRenderers[width] = rr
		r = rr
	}
	mdRendererMu.Unlock()

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}
