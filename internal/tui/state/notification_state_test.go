package state

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotificationState_AddRemove(t *testing.T) {
	s := NewNotificationState()
	assert.False(t, s.HasAny())

	first := s.Add(Notification{ID: 99, Title: "sync failed"})
	second := s.Add(Notification{Title: "save failed"})
	assert.Equal(t, 1, first, "caller supplied ids are replaced")
	assert.Equal(t, 2, second)
	assert.Len(t, s.All(), 2)

	s.Remove(first)
	if assert.Len(t, s.All(), 1) {
		assert.Equal(t, "save failed", s.All()[0].Title)
	}

	// Removing twice is harmless
	s.Remove(first)
	assert.Len(t, s.All(), 1)

	s.Remove(second)
	assert.False(t, s.HasAny())
}

func TestNotificationState_GetLayers(t *testing.T) {
	render := func(n Notification) string {
		return strings.Repeat("#", 10) + "\n" + n.Title
	}

	s := NewNotificationState()
	s.Add(Notification{Title: "one"})
	s.Add(Notification{Title: "two"})
	s.Add(Notification{Title: "three"})

	// Without a window size nothing can be positioned
	assert.Empty(t, s.GetLayers(render))

	s.SetWindowSize(80, 24)
	assert.Len(t, s.GetLayers(render), 3)

	// Each notification takes two rows plus one for spacing, so only the
	// first one fits in four rows
	s.SetWindowSize(80, 4)
	assert.Len(t, s.GetLayers(render), 1)
}
