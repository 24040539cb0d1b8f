package snackbar

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/jellytv/jellytv/color"
	"github.com/jellytv/jellytv/icon"
	"github.com/jellytv/jellytv/style"
)

// Printer writes each message as one line on w.
type Printer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) Push(m Message) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintln(p.w, Render(m))
}

// Render formats m with its icon and color.
func Render(m Message) string {
	ic, c := decoration(m.Color)
	return fmt.Sprintf("%s %s", style.Fg(c)(ic), m.Text)
}

func decoration(c Color) (string, lipgloss.Color) {
	switch c {
	case ColorError:
		return icon.Get(icon.Fail), color.Red
	case ColorWarning:
		return icon.Get(icon.Warn), color.Yellow
	case ColorSuccess:
		return icon.Get(icon.Success), color.Green
	default:
		return icon.Get(icon.Info), color.Blue
	}
}
