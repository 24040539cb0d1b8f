package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jellytv/jellytv/color"
	"github.com/jellytv/jellytv/icon"
	"github.com/jellytv/jellytv/key"
	"github.com/jellytv/jellytv/style"
	"github.com/jellytv/jellytv/util"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"github.com/spf13/viper"
)

// overviewLines is the height reserved under the episode list for the selected overview.
const overviewLines = 4

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
	overviewStyle         = lipgloss.NewStyle().Padding(0, 2).Foreground(color.Gray)
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case loadingState:
		output = b.viewLoading()
	case seasonsState:
		output = b.viewSeasons()
	case episodesState:
		output = b.viewEpisodes()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(
		true,
		[]string{
			style.Title("Loading"),
			"",
			fmt.Sprintf("%s Fetching the seasons of %s", b.spinnerC.View(), style.Fg(color.Accent)(b.seriesLabel())),
		},
	)
}

func (b *statefulBubble) viewSeasons() string {
	return listExtraPaddingStyle.Render(b.seasonsC.View())
}

func (b *statefulBubble) viewEpisodes() string {
	view := listExtraPaddingStyle.Render(b.episodesC.View())
	if !viper.GetBool(key.EpisodesShowOverview) {
		return view
	}
	return view + "\n" + overviewStyle.Render(b.selectedOverview())
}

// selectedOverview wraps the overview of the highlighted episode into the reserved lines.
func (b *statefulBubble) selectedOverview() string {
	item, ok := b.episodesC.SelectedItem().(*listItem)
	if !ok {
		return ""
	}

	e, ok := item.internal.(*episode)
	if !ok || e.Overview == "" {
		return ""
	}

	width := util.Max(b.width-4, 20)
	lines := strings.Split(wordwrap.String(e.Overview, width), "\n")
	if len(lines) > overviewLines {
		lines = lines[:overviewLines]
		lines[overviewLines-1] = truncate.StringWithTail(lines[overviewLines-1], uint(width-1), "…")
	}
	return strings.Join(lines, "\n")
}

func (b *statefulBubble) viewError() string {
	var errorMsg string
	if b.lastError != nil {
		errorMsg = wrap.String(style.Fg(color.Red)(b.lastError.Error()), b.width)
	}

	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " Something went wrong:",
			"",
			errorMsg,
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
