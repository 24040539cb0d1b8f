package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jellytv/jellytv/color"
	"github.com/jellytv/jellytv/icon"
	"github.com/jellytv/jellytv/jellyfin"
	"github.com/jellytv/jellytv/key"
	"github.com/jellytv/jellytv/style"
	"github.com/jellytv/jellytv/tvshows"
	"github.com/jellytv/jellytv/util"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/viper"
)

const (
	episodeIndent  = 4
	overviewIndent = 6
)

// overviewWidth is episodes.overview_width, or the terminal width when that is 0.
func overviewWidth() int {
	if width := viper.GetInt(key.EpisodesOverviewWidth); width > 0 {
		return width
	}

	if width, _, err := util.TerminalSize(); err == nil && width > overviewIndent {
		return width - overviewIndent
	}
	return 80
}

// printSeasons writes every season followed by the latest episode group fetched for it.
func printSeasons(w io.Writer, state *tvshows.State) {
	seasons := state.Seasons()
	if len(seasons) == 0 {
		_, _ = fmt.Fprintln(w, style.Faint("No seasons"))
		return
	}

	for i, season := range seasons {
		if i > 0 {
			_, _ = fmt.Fprintln(w)
		}

		header := fmt.Sprintf("%s %s", icon.Get(icon.Season), style.Bold(season.Name))
		if season.ProductionYear != nil {
			header += " " + style.Faint(fmt.Sprintf("(%d)", *season.ProductionYear))
		}
		_, _ = fmt.Fprintln(w, header)

		episodes, ok := state.EpisodesOf(season.Id).Get()
		if !ok {
			_, _ = fmt.Fprintln(w, indent.String(style.Faint("no episodes"), episodeIndent))
			continue
		}
		printEpisodes(w, episodes)
	}
}

// printEpisodes writes one line per episode, followed by its wrapped overview when enabled.
func printEpisodes(w io.Writer, episodes []jellyfin.BaseItemDto) {
	showOverview := viper.GetBool(key.EpisodesShowOverview)
	width := overviewWidth()

	for _, episode := range episodes {
		_, _ = fmt.Fprintln(w, indent.String(episodeLine(episode), episodeIndent))

		if showOverview && episode.Overview != "" {
			overview := wordwrap.String(strings.TrimSpace(episode.Overview), width)
			_, _ = fmt.Fprintln(w, indent.String(style.Faint(overview), overviewIndent))
		}
	}
}

func episodeLine(episode jellyfin.BaseItemDto) string {
	var sb strings.Builder

	if code := episode.Code(); code != "" {
		sb.WriteString(style.Fg(color.Accent)(code))
		sb.WriteString(" ")
	}
	sb.WriteString(episode.Name)

	if d := util.Duration(episode.Runtime()); d != "" {
		sb.WriteString(" ")
		sb.WriteString(style.Faint(d))
	}

	if episode.Played() {
		sb.WriteString(" ")
		sb.WriteString(style.Fg(color.Green)(icon.Get(icon.Played)))
	}

	return sb.String()
}
