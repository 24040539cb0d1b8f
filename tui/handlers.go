package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jellytv/jellytv/internal/ui"
	"github.com/jellytv/jellytv/jellyfin"
	"github.com/jellytv/jellytv/log"
	"github.com/jellytv/jellytv/open"
	"github.com/jellytv/jellytv/snackbar"
	"github.com/jellytv/jellytv/tvshows"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

type (
	seasonsLoadedMsg struct{}
	stateChangedMsg  struct{}
)

// loadSeasons blocks on the seasons request only; episode fetches report through the state subscription.
func (b *statefulBubble) loadSeasons() tea.Cmd {
	series := b.options.Series
	return func() tea.Msg {
		log.Info("browsing seasons of " + series.Id)
		b.loader.Dispatch(b.ctx, tvshows.LoadSeasons{Item: series})
		return seasonsLoadedMsg{}
	}
}

func (b *statefulBubble) loadEpisodes(s jellyfin.BaseItemDto) tea.Cmd {
	return func() tea.Msg {
		b.loader.Dispatch(b.ctx, tvshows.LoadEpisodes{Season: s})
		return nil
	}
}

func (b *statefulBubble) waitForChange() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-b.changes:
			return stateChangedMsg{}
		case <-b.ctx.Done():
			return nil
		}
	}
}

func (b *statefulBubble) waitForNotification() tea.Cmd {
	if b.options.Notifier == nil {
		return nil
	}

	return func() tea.Msg {
		m, ok := b.options.Notifier.next(b.ctx)
		if !ok {
			return nil
		}
		return ui.NotificationMsg(m)
	}
}

func (b *statefulBubble) openURL(itemID string) tea.Cmd {
	if b.options.WebURL == nil || itemID == "" {
		return nil
	}

	url := b.options.WebURL(itemID)
	return func() tea.Msg {
		if err := open.Start(url); err != nil {
			log.Error(err)
			return ui.NotificationMsg(snackbar.Error(fmt.Sprintf("could not open %s", url)))
		}
		return nil
	}
}

// refresh rebuilds both lists from the loader state.
func (b *statefulBubble) refresh() tea.Cmd {
	state := b.loader.State()
	loaded := state.Seasons()

	if b.options.Series.Name == "" && len(loaded) > 0 && loaded[0].SeriesName != "" {
		b.seasonsC.Title = loaded[0].SeriesName
	}

	seasons := lo.Map(loaded, func(s jellyfin.BaseItemDto, _ int) list.Item {
		entry := &season{BaseItemDto: s}
		if group, ok := state.EpisodesOf(s.Id).Get(); ok {
			entry.episodes = mo.Some(len(group))
		}
		return &listItem{internal: entry}
	})

	cmds := []tea.Cmd{b.seasonsC.SetItems(seasons)}

	if b.selectedSeason != nil {
		group := state.EpisodesOf(b.selectedSeason.Id).OrEmpty()
		episodes := lo.Map(group, func(e jellyfin.BaseItemDto, _ int) list.Item {
			return &listItem{internal: &episode{BaseItemDto: e}}
		})
		cmds = append(cmds, b.episodesC.SetItems(episodes))
	}

	if state.EpisodesInFlight() > 0 {
		cmds = append(cmds, b.seasonsC.StartSpinner(), b.episodesC.StartSpinner())
	} else {
		b.seasonsC.StopSpinner()
		b.episodesC.StopSpinner()
	}

	return tea.Batch(cmds...)
}

func selectedID(l *list.Model) string {
	item, ok := l.SelectedItem().(*listItem)
	if !ok {
		return ""
	}
	return item.id()
}
