package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jellytv/jellytv/color"
	"github.com/jellytv/jellytv/icon"
	"github.com/jellytv/jellytv/jellyfin"
	"github.com/jellytv/jellytv/style"
	"github.com/jellytv/jellytv/util"
	"github.com/samber/mo"
)

type season struct {
	jellyfin.BaseItemDto

	// episodes is the size of the latest group loaded for this season.
	episodes mo.Option[int]
}

type episode struct {
	jellyfin.BaseItemDto
}

// listItem wraps a season or an episode for the bubbles list.
type listItem struct {
	internal any
}

func (t *listItem) Title() (title string) {
	switch e := t.internal.(type) {
	case *season:
		title = e.Name
	case *episode:
		var sb strings.Builder
		if code := e.Code(); code != "" {
			sb.WriteString(style.Fg(color.Accent)(code))
			sb.WriteString(" ")
		}
		sb.WriteString(e.Name)
		if e.Played() {
			sb.WriteString(" ")
			sb.WriteString(style.Faint(icon.Get(icon.Played)))
		}
		title = sb.String()
	}
	return
}

func (t *listItem) Description() string {
	var parts []string

	switch e := t.internal.(type) {
	case *season:
		if e.ProductionYear != nil {
			parts = append(parts, strconv.Itoa(*e.ProductionYear))
		}
		if n, ok := e.episodes.Get(); ok {
			parts = append(parts, util.Quantify(n, "episode", "episodes"))
		} else {
			parts = append(parts, style.Faint("episodes not loaded"))
		}
		if e.UserData != nil && e.UserData.UnplayedItemCount != nil && *e.UserData.UnplayedItemCount > 0 {
			parts = append(parts, style.Fg(color.Yellow)(fmt.Sprintf("%d unplayed", *e.UserData.UnplayedItemCount)))
		}
	case *episode:
		if d := util.Duration(e.Runtime()); d != "" {
			parts = append(parts, d)
		}
		if e.PremiereDate != nil {
			parts = append(parts, e.PremiereDate.Format("2006-01-02"))
		}
	}

	return strings.Join(parts, " • ")
}

func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case *season:
		return e.Name
	case *episode:
		return e.Name
	default:
		return ""
	}
}

func (t *listItem) id() string {
	switch e := t.internal.(type) {
	case *season:
		return e.Id
	case *episode:
		return e.Id
	default:
		return ""
	}
}
