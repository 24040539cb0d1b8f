// Package tui is the interactive browser over the seasons and episodes of a series.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jellytv/jellytv/jellyfin"
	"github.com/jellytv/jellytv/tvshows"
)

// Options configures a browsing session.
type Options struct {
	// Series is the item whose seasons are browsed.
	Series jellyfin.BaseItemDto

	// Loader must push its notifications to Notifier.
	Loader   *tvshows.Loader
	Notifier *Notifier

	// WebURL returns the web client page of an item. Opening pages is disabled when nil.
	WebURL func(itemID string) string
}

// Run starts the program and blocks until the user quits.
func Run(ctx context.Context, options *Options) error {
	bubble := newBubble(ctx, options)
	defer bubble.close()

	_, err := tea.NewProgram(bubble, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
