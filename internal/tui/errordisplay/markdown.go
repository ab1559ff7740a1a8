package errordisplay

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/opserr/internal/attempt"
)

// Cache Glamour renderers by width to avoid expensive re-creation
var (
	rendererCache sync.Map // map[int]*glamour.TermRenderer
)

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	// Check cache first
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	// Create new renderer
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	// Store in cache
	rendererCache.Store(width, renderer)
	return renderer, nil
}

// MarkdownDisplay returns a DisplayFunc that renders error messages as
// markdown wrapped at width. Messages fall back to plain text if rendering
// fails.
func MarkdownDisplay(width int) DisplayFunc {
	return func(a attempt.Attempt[error]) string {
		err, ok := a.Get()
		if !ok {
			return ""
		}
		message := err.Error()

		renderer, rerr := getRenderer(width)
		if rerr != nil {
			slog.Warn("failed to create markdown renderer", "width", width, "error", rerr)
			return message
		}
		rendered, rerr := renderer.Render(message)
		if rerr != nil {
			slog.Warn("failed to render error message", "error", rerr)
			return message
		}
		return strings.TrimSpace(rendered)
	}
}
