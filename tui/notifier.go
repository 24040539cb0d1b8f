package tui

import (
	"context"
	"sync"

	"github.com/jellytv/jellytv/snackbar"
)

// Notifier hands loader notifications over to the bubbletea loop.
// Push never blocks and never drops; messages wait until the program reads them.
type Notifier struct {
	mu      sync.Mutex
	pending []snackbar.Message
	ready   chan struct{}
}

// NewNotifier returns an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{ready: make(chan struct{}, 1)}
}

func (n *Notifier) Push(m snackbar.Message) {
	n.mu.Lock()
	n.pending = append(n.pending, m)
	n.mu.Unlock()

	select {
	case n.ready <- struct{}{}:
	default:
	}
}

// next blocks until a message is pending or ctx is done.
func (n *Notifier) next(ctx context.Context) (snackbar.Message, bool) {
	for {
		n.mu.Lock()
		if len(n.pending) > 0 {
			m := n.pending[0]
			n.pending = n.pending[1:]
			n.mu.Unlock()
			return m, true
		}
		n.mu.Unlock()

		select {
		case <-n.ready:
		case <-ctx.Done():
			return snackbar.Message{}, false
		}
	}
}
