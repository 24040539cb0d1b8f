package tui

import (
	"fmt"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jellytv/jellytv/internal/ui"
	"github.com/jellytv/jellytv/snackbar"
	"github.com/jellytv/jellytv/tvshows"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{b.notifier.Update(msg)}

	switch msg := msg.(type) {
	case ui.NotificationMsg:
		cmds = append(cmds, b.waitForNotification())
	case stateChangedMsg:
		cmds = append(cmds, b.refresh(), b.waitForChange())
	case seasonsLoadedMsg:
		if b.loader.State().SeasonsStatus() == tvshows.StatusFailed {
			b.raiseError(fmt.Errorf("could not load the seasons of %s", b.seriesLabel()))
		} else {
			b.setState(seasonsState)
		}
		cmds = append(cmds, b.refresh())
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}
	}

	var (
		model tea.Model
		cmd   tea.Cmd
	)
	switch b.state {
	case loadingState:
		model, cmd = b.updateLoading(msg)
	case seasonsState:
		model, cmd = b.updateSeasons(msg)
	case episodesState:
		model, cmd = b.updateEpisodes(msg)
	case errorState:
		model, cmd = b.updateError(msg)
	default:
		model = b
	}

	return model, tea.Batch(append(cmds, cmd)...)
}

func (b *statefulBubble) updateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	b.spinnerC, cmd = b.spinnerC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateSeasons(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok && b.seasonsC.FilterState() != list.Filtering {
		switch {
		case bubblesKey.Matches(keyMsg, b.keymap.confirm):
			item, ok := b.seasonsC.SelectedItem().(*listItem)
			if !ok {
				return b, nil
			}

			b.selectedSeason = item.internal.(*season)
			b.episodesC.Title = b.selectedSeason.Name
			b.episodesC.ResetSelected()
			b.episodesC.ResetFilter()
			b.setState(episodesState)

			cmds := []tea.Cmd{b.refresh()}
			state := b.loader.State()
			if state.EpisodesOf(b.selectedSeason.Id).IsAbsent() && state.EpisodesInFlight() == 0 {
				cmds = append(cmds, b.episodesC.StartSpinner(), b.loadEpisodes(b.selectedSeason.BaseItemDto))
			}
			return b, tea.Batch(cmds...)
		case bubblesKey.Matches(keyMsg, b.keymap.reload):
			return b, b.reload()
		case bubblesKey.Matches(keyMsg, b.keymap.clear):
			b.loader.Dispatch(b.ctx, tvshows.ClearSeasons{})
			return b, ui.Notify(snackbar.Message{Text: "Seasons cleared", Color: snackbar.ColorInfo})
		case bubblesKey.Matches(keyMsg, b.keymap.openURL):
			return b, b.openURL(selectedID(&b.seasonsC))
		}
	}

	b.seasonsC, cmd = b.seasonsC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateEpisodes(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok && b.episodesC.FilterState() == list.Unfiltered {
		switch {
		case bubblesKey.Matches(keyMsg, b.keymap.back):
			b.selectedSeason = nil
			b.setState(seasonsState)
			return b, nil
		case bubblesKey.Matches(keyMsg, b.keymap.openURL):
			return b, b.openURL(selectedID(&b.episodesC))
		}
	}

	b.episodesC, cmd = b.episodesC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(keyMsg, b.keymap.quit):
			return b, tea.Quit
		case bubblesKey.Matches(keyMsg, b.keymap.reload):
			return b, b.reload()
		}
	}
	return b, nil
}

// reload empties the season list and requests it again. Episode groups stay; the newest group of a season wins.
func (b *statefulBubble) reload() tea.Cmd {
	b.loader.Dispatch(b.ctx, tvshows.ClearSeasons{})
	b.selectedSeason = nil
	b.lastError = nil
	b.setState(loadingState)
	return tea.Batch(b.spinnerC.Tick, b.loadSeasons())
}

func (b *statefulBubble) seriesLabel() string {
	if b.options.Series.Name != "" {
		return b.options.Series.Name
	}
	if b.options.Series.Id != "" {
		return b.options.Series.Id
	}
	return "this series"
}
