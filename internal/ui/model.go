// Package ui renders short-lived notification toasts inside the TUI.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jellytv/jellytv/snackbar"
)

// ToastLifetime is how long a toast stays on screen.
const ToastLifetime = 4 * time.Second

// NotificationMsg carries a snackbar message into the bubbletea loop.
type NotificationMsg snackbar.Message

// ClearNotificationMsg removes the toast shown at the given time.
type ClearNotificationMsg struct {
	shownAt time.Time
}

// Model is the toast currently on screen, if any.
type Model struct {
	message *snackbar.Message
	shownAt time.Time
}

// Notify returns a command that shows m as a toast.
func Notify(m snackbar.Message) tea.Cmd {
	return func() tea.Msg {
		return NotificationMsg(m)
	}
}

func clearAfter(shownAt time.Time) tea.Cmd {
	return tea.Tick(ToastLifetime, func(time.Time) tea.Msg {
		return ClearNotificationMsg{shownAt: shownAt}
	})
}

// Update shows new toasts and clears expired ones.
// A clear scheduled for an older toast leaves a newer one alone.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NotificationMsg:
		message := snackbar.Message(msg)
		m.message = &message
		m.shownAt = time.Now()
		return clearAfter(m.shownAt)
	case ClearNotificationMsg:
		if msg.shownAt.Equal(m.shownAt) {
			m.message = nil
		}
	}
	return nil
}

// Visible reports whether a toast is on screen.
func (m *Model) Visible() bool {
	return m.message != nil
}

// View appends the toast below mainContent.
func (m *Model) View(mainContent string) string {
	if m.message == nil {
		return mainContent
	}
	return strings.TrimRight(mainContent, "\n") + "\n\n" + snackbar.Render(*m.message)
}
