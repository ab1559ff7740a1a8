package state

import "charm.land/lipgloss/v2"

// Notification is a toast describing one failed operation.
type Notification struct {
	ID      int
	Title   string
	Detail  string
	Message string
}

// NotificationState manages the toasts on screen.
// Toasts are displayed in the order they were added.
type NotificationState struct {
	// notifications contains the list of current notifications to display
	notifications []Notification
	// nextID is handed to the next added notification
	nextID int
	// windowWidth tracks the current window width for positioning
	windowWidth int
	// windowHeight tracks the current window height for positioning
	windowHeight int
}

// NewNotificationState creates a new NotificationState with no notifications.
func NewNotificationState() *NotificationState {
	return &NotificationState{
		notifications: []Notification{},
		nextID:        1,
	}
}

// Add appends n, replacing its ID with a fresh one.
//
// Returns:
//   - the id to pass to Remove once the toast expires
func (s *NotificationState) Add(n Notification) int {
	n.ID = s.nextID
	s.nextID++
	s.notifications = append(s.notifications, n)
	return n.ID
}

// Remove removes the notification with the given id.
// Unknown ids are ignored, so a late expiry is harmless.
func (s *NotificationState) Remove(id int) {
	filtered := []Notification{}
	for _, n := range s.notifications {
		if n.ID != id {
			filtered = append(filtered, n)
		}
	}
	s.notifications = filtered
}

// All returns all current notifications.
func (s *NotificationState) All() []Notification {
	return s.notifications
}

// HasAny returns true if there are any notifications.
func (s *NotificationState) HasAny() bool {
	return len(s.notifications) > 0
}

// SetWindowSize updates the window dimensions for positioning calculations.
func (s *NotificationState) SetWindowSize(width, height int) {
	s.windowWidth = width
	s.windowHeight = height
}

// GetLayers creates floating layers for all active notifications.
// Notifications are stacked vertically in the top-right corner of the screen.
func (s *NotificationState) GetLayers(renderFunc func(Notification) string) []*lipgloss.Layer {
	layers := []*lipgloss.Layer{}

	// If window dimensions not set, can't position properly
	if s.windowWidth == 0 {
		return layers
	}

	row := 0
	for _, notification := range s.notifications {
		notificationView := renderFunc(notification)
		notifWidth := lipgloss.Width(notificationView)
		notifHeight := lipgloss.Height(notificationView)

		col := max(s.windowWidth-notifWidth-1, 0) // 1 char padding from right edge

		if row+notifHeight >= s.windowHeight {
			// Don't render notifications that would go off screen
			break
		}

		layers = append(layers,
			lipgloss.NewLayer(notificationView).X(col).Y(row))
		row += notifHeight + 1 // +1 for spacing
	}

	return layers
}
