package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/jellytv/jellytv/config"
	"github.com/jellytv/jellytv/jellyfin"
	"github.com/jellytv/jellytv/key"
	"github.com/jellytv/jellytv/snackbar"
	"github.com/jellytv/jellytv/tvshows"
	"github.com/jellytv/jellytv/where"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

type staticAPI struct{}

func (staticAPI) GetSeasons(context.Context, string, string) (*jellyfin.BaseItemDtoQueryResult, error) {
	return &jellyfin.BaseItemDtoQueryResult{Items: []jellyfin.BaseItemDto{
		{Id: "se1", Name: "Season 1", Type: jellyfin.KindSeason, ProductionYear: lo.ToPtr(2008)},
		{Id: "se2", Name: "Season 2", Type: jellyfin.KindSeason},
	}}, nil
}

func (staticAPI) GetItems(_ context.Context, q jellyfin.ItemsQuery) (*jellyfin.BaseItemDtoQueryResult, error) {
	if q.ParentID != "se1" {
		return &jellyfin.BaseItemDtoQueryResult{}, nil
	}
	return &jellyfin.BaseItemDtoQueryResult{Items: []jellyfin.BaseItemDto{
		{Id: "ep1", Name: "Pilot", ParentId: "se1", IndexNumber: lo.ToPtr(1), ParentIndexNumber: lo.ToPtr(1), Overview: "A chemistry professor changes careers."},
		{Id: "ep2", Name: "Cat's in the Bag", ParentId: "se1", IndexNumber: lo.ToPtr(2), ParentIndexNumber: lo.ToPtr(1)},
	}}, nil
}

type userID string

func (u userID) UserID() string { return string(u) }

func loadedState() *tvshows.State {
	loader := tvshows.NewLoader(staticAPI{}, userID("u1"), nil, nil)
	loader.LoadSeasons(context.Background(), jellyfin.BaseItemDto{Id: "sr1"})
	loader.Wait()
	return loader.State()
}

func TestPrintSeasons(t *testing.T) {
	Convey("Given a loaded series", t, func() {
		viper.Set(key.EpisodesShowOverview, true)
		viper.Set(key.EpisodesOverviewWidth, 20)
		defer viper.Set(key.EpisodesShowOverview, config.Default[key.EpisodesShowOverview].Value)
		defer viper.Set(key.EpisodesOverviewWidth, config.Default[key.EpisodesOverviewWidth].Value)

		var out bytes.Buffer
		printSeasons(&out, loadedState())
		printed := out.String()

		Convey("Every season is printed with its episodes", func() {
			So(printed, ShouldContainSubstring, "Season 1")
			So(printed, ShouldContainSubstring, "2008")
			So(printed, ShouldContainSubstring, "Pilot")
			So(printed, ShouldContainSubstring, "S01E02")
			So(printed, ShouldContainSubstring, "Season 2")
		})

		Convey("Overviews are wrapped", func() {
			So(printed, ShouldContainSubstring, "chemistry")
			So(printed, ShouldNotContainSubstring, "A chemistry professor changes careers.")
		})
	})

	Convey("Given an empty state", t, func() {
		var out bytes.Buffer
		printSeasons(&out, tvshows.NewState())
		So(out.String(), ShouldContainSubstring, "No seasons")
	})
}

func TestConfigHelpers(t *testing.T) {
	Convey("Unknown keys suggest the closest registered one", t, func() {
		err := errUnknownKey("server.ur")
		So(err.Error(), ShouldContainSubstring, key.ServerURL)
	})

	Convey("Values are parsed by the type of their default", t, func() {
		v, err := parseValue(key.APITimeout, []string{"30"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, 30)

		_, err = parseValue(key.APITimeout, []string{"soon"})
		So(err, ShouldNotBeNil)

		v, err = parseValue(key.LogsWrite, []string{"true"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, true)

		v, err = parseValue(key.ServerURL, []string{"http://localhost:8096"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, "http://localhost:8096")
	})

	Convey("Exposed environment variables are prefixed and include the config path", t, func() {
		envs := exposedEnv()
		So(envs, ShouldContain, "JELLYTV_SERVER_URL")
		So(envs, ShouldContain, where.EnvConfigPath)
	})
}

func TestSnapshotSchema(t *testing.T) {
	Convey("The schema describes both state sequences", t, func() {
		b, err := json.Marshal(snapshotSchema())
		So(err, ShouldBeNil)
		So(string(b), ShouldContainSubstring, `"seasons"`)
		So(string(b), ShouldContainSubstring, `"seasonEpisodes"`)
	})
}

func TestOnlyErrors(t *testing.T) {
	Convey("Only error notifications are forwarded", t, func() {
		queue := snackbar.NewQueue()
		n := onlyErrors(queue)

		n.Push(snackbar.Message{Text: "Seasons cleared", Color: snackbar.ColorInfo})
		n.Push(snackbar.Error("timeout"))

		So(queue.Messages(), ShouldResemble, []snackbar.Message{snackbar.Error("timeout")})
	})

	Convey("Printing reports whether an error was queued", t, func() {
		queue := snackbar.NewQueue()
		queue.Push(snackbar.Message{Text: "hello", Color: snackbar.ColorInfo})
		So(printNotifications(queue), ShouldBeFalse)

		queue.Push(snackbar.Error("timeout"))
		So(printNotifications(queue), ShouldBeTrue)
		So(queue.Len(), ShouldEqual, 0)
	})
}
