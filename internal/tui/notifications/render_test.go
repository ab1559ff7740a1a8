package notifications

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/opserr/internal/tui/state"
)

func TestRender(t *testing.T) {
	out := Render(state.Notification{
		Title:   "sync failed",
		Detail:  "operation 5f1c",
		Message: "attempt 3",
	})

	assert.Contains(t, out, "✕ sync failed")
	assert.Contains(t, out, "operation 5f1c")
	assert.Contains(t, out, "attempt 3")
	// border + title + detail + message + border
	assert.Equal(t, 5, lipgloss.Height(out))
}

func TestRender_SkipsEmptyLines(t *testing.T) {
	out := Render(state.Notification{Title: "Operation failed"})

	assert.Contains(t, out, "Operation failed")
	assert.Equal(t, 3, lipgloss.Height(out))
}

func TestRender_WidthFollowsLongestLine(t *testing.T) {
	long := strings.Repeat("x", 60)
	out := Render(state.Notification{Title: "save failed", Message: long})

	// 2 border columns + 2 padding columns
	assert.Equal(t, 64, lipgloss.Width(out))
}
