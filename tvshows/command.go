package tvshows

import (
	"context"
	"fmt"

	"github.com/jellytv/jellytv/jellyfin"
)

// Command is one of LoadSeasons, LoadEpisodes or ClearSeasons.
type Command interface {
	command()
}

// LoadSeasons asks for the seasons of Item, and their episodes.
type LoadSeasons struct {
	Item jellyfin.BaseItemDto
}

// LoadEpisodes asks for the episodes of Season.
type LoadEpisodes struct {
	Season jellyfin.BaseItemDto
}

// ClearSeasons empties the season list.
type ClearSeasons struct{}

func (LoadSeasons) command()  {}
func (LoadEpisodes) command() {}
func (ClearSeasons) command() {}

// Dispatch runs cmd on the loader.
func (l *Loader) Dispatch(ctx context.Context, cmd Command) {
	switch c := cmd.(type) {
	case LoadSeasons:
		l.LoadSeasons(ctx, c.Item)
	case LoadEpisodes:
		l.LoadSeasonEpisodes(ctx, c.Season)
	case ClearSeasons:
		l.ClearSeasons()
	default:
		panic(fmt.Sprintf("tvshows: unknown command %T", cmd))
	}
}
