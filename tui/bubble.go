package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/jellytv/jellytv/color"
	"github.com/jellytv/jellytv/internal/ui"
	"github.com/jellytv/jellytv/key"
	"github.com/jellytv/jellytv/tvshows"
	"github.com/spf13/viper"
)

type statefulBubble struct {
	state  state
	keymap *statefulKeymap

	// components
	spinnerC  spinner.Model
	seasonsC  list.Model
	episodesC list.Model
	helpC     help.Model

	ctx     context.Context
	loader  *tvshows.Loader
	changes <-chan struct{}
	close   func()

	selectedSeason *season
	lastError      error

	width, height int
	notifier      *ui.Model

	options *Options
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.setState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	listWidth := width - xx
	listHeight := height - yy

	b.seasonsC.SetSize(listWidth, listHeight)
	b.seasonsC.Help.Width = listWidth

	episodesHeight := listHeight
	if viper.GetBool(key.EpisodesShowOverview) {
		episodesHeight -= overviewLines + 1
	}
	b.episodesC.SetSize(listWidth, episodesHeight)
	b.episodesC.Help.Width = listWidth

	b.width = width - x
	b.height = height - y
	b.helpC.Width = listWidth
}

func newBubble(ctx context.Context, options *Options) *statefulBubble {
	keymap := newStatefulKeymap()
	changes, unsubscribe := options.Loader.State().Subscribe()

	bubble := statefulBubble{
		keymap:   keymap,
		ctx:      ctx,
		loader:   options.Loader,
		changes:  changes,
		close:    unsubscribe,
		notifier: &ui.Model{},
		options:  options,
	}

	makeList := func(title string, titleColor lipgloss.Color) list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
		delegate.Styles.SelectedTitle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(color.Accent).
			Foreground(color.Accent).
			Padding(0, 0, 0, 1)
		delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

		listC := list.New([]list.Item{}, delegate, 0, 0)
		listC.KeyMap = keymap.forList()
		listC.AdditionalShortHelpKeys = keymap.ShortHelp
		listC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
			return keymap.FullHelp()[0]
		}
		listC.Title = title
		listC.Styles.Title = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(titleColor).Padding(0, 1)
		listC.Styles.NoItems = paddingStyle
		listC.StatusMessageLifetime = time.Hour * 999
		listC.SetShowPagination(false)

		return listC
	}

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(color.Accent)

	title := "Seasons"
	if options.Series.Name != "" {
		title = options.Series.Name
	}
	bubble.seasonsC = makeList(title, color.Accent)
	bubble.seasonsC.SetStatusBarItemName("season", "seasons")

	bubble.episodesC = makeList("Episodes", color.Purple)
	bubble.episodesC.SetStatusBarItemName("episode", "episodes")

	bubble.setState(loadingState)
	return &bubble
}
