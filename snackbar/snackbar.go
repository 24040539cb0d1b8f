// Package snackbar carries short user-facing notifications from background work to whatever UI is attached.
package snackbar

import (
	"sync"

	"github.com/jellytv/jellytv/log"
)

// Color is the severity a message is rendered with.
type Color string

const (
	ColorError   Color = "error"
	ColorWarning Color = "warning"
	ColorInfo    Color = "info"
	ColorSuccess Color = "success"
)

// Message is a single notification.
type Message struct {
	Text  string `json:"message"`
	Color Color  `json:"color"`
}

// Error builds an error-colored message.
func Error(text string) Message {
	return Message{Text: text, Color: ColorError}
}

// Notifier receives notifications. Implementations must be safe for concurrent use.
type Notifier interface {
	Push(Message)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Message)

func (f NotifierFunc) Push(m Message) {
	f(m)
}

// Queue buffers messages until a UI drains them.
type Queue struct {
	mu       sync.Mutex
	messages []Message
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) Push(m Message) {
	if m.Color == ColorError {
		log.Errorf("notification: %s", m.Text)
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	q.messages = append(q.messages, m)
}

// Messages returns a copy of the buffered messages.
func (q *Queue) Messages() []Message {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]Message(nil), q.messages...)
}

// Drain returns the buffered messages and empties the queue.
func (q *Queue) Drain() []Message {
	q.mu.Lock()
	defer q.mu.Unlock()
	drained := q.messages
	q.messages = nil
	return drained
}

// Len returns the number of buffered messages.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.messages)
}

// Tee forwards every message to each notifier in order.
func Tee(notifiers ...Notifier) Notifier {
	return NotifierFunc(func(m Message) {
		for _, n := range notifiers {
			n.Push(m)
		}
	})
}
