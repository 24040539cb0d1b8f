package tvshows

import (
	"testing"

	"github.com/jellytv/jellytv/jellyfin"
	. "github.com/smartystreets/goconvey/convey"
)

func TestState(t *testing.T) {
	Convey("Given a new state", t, func() {
		state := NewState()

		Convey("It starts empty and idle", func() {
			So(state.Seasons(), ShouldBeEmpty)
			So(state.SeasonEpisodes(), ShouldBeEmpty)
			So(state.SeasonsStatus(), ShouldEqual, StatusIdle)
			So(state.SeasonsStatus().String(), ShouldEqual, "idle")
		})

		Convey("Reads are copies", func() {
			state.AddSeasons([]jellyfin.BaseItemDto{{Id: "se1"}})
			seasons := state.Seasons()
			seasons[0].Id = "mutated"
			So(state.Seasons()[0].Id, ShouldEqual, "se1")
		})

		Convey("Appended groups do not alias the caller's slice", func() {
			episodes := []jellyfin.BaseItemDto{{Id: "ep1"}}
			state.AddSeasonEpisodes(episodes)
			episodes[0].Id = "mutated"
			So(state.SeasonEpisodes()[0][0].Id, ShouldEqual, "ep1")
		})

		Convey("Snapshot holds both sequences", func() {
			state.AddSeasons([]jellyfin.BaseItemDto{{Id: "se1"}})
			state.AddSeasonEpisodes([]jellyfin.BaseItemDto{{Id: "ep1"}})
			snapshot := state.Snapshot()
			So(ids(snapshot.Seasons), ShouldResemble, []string{"se1"})
			So(groupIDs(snapshot.SeasonEpisodes), ShouldResemble, [][]string{{"ep1"}})
		})
	})
}

func TestEpisodesOf(t *testing.T) {
	Convey("Given groups from two seasons", t, func() {
		state := NewState()
		state.AddSeasonEpisodes([]jellyfin.BaseItemDto{{Id: "ep3", ParentId: "se2"}})
		state.AddSeasonEpisodes([]jellyfin.BaseItemDto{})
		state.AddSeasonEpisodes([]jellyfin.BaseItemDto{{Id: "ep1", SeasonId: "se1"}})

		So(ids(state.EpisodesOf("se1").MustGet()), ShouldResemble, []string{"ep1"})
		So(ids(state.EpisodesOf("se2").MustGet()), ShouldResemble, []string{"ep3"})
		So(state.EpisodesOf("se3").IsAbsent(), ShouldBeTrue)

		Convey("A refetched season resolves to its latest group", func() {
			state.AddSeasonEpisodes([]jellyfin.BaseItemDto{{Id: "ep1", SeasonId: "se1"}, {Id: "ep2", SeasonId: "se1"}})
			So(ids(state.EpisodesOf("se1").MustGet()), ShouldResemble, []string{"ep1", "ep2"})
		})
	})
}

func TestSubscribe(t *testing.T) {
	Convey("Given a subscriber", t, func() {
		state := NewState()
		changes, unsubscribe := state.Subscribe()

		Convey("It is signalled after a change", func() {
			state.AddSeasons([]jellyfin.BaseItemDto{{Id: "se1"}})
			So(len(changes), ShouldEqual, 1)
		})

		Convey("Signals coalesce instead of blocking", func() {
			state.AddSeasons([]jellyfin.BaseItemDto{{Id: "se1"}})
			state.ClearSeasons()
			state.AddSeasonEpisodes(nil)
			So(len(changes), ShouldEqual, 1)
		})

		Convey("It stops receiving after unsubscribing", func() {
			unsubscribe()
			state.ClearSeasons()
			So(len(changes), ShouldEqual, 0)
		})
	})
}

func TestFindEpisodes(t *testing.T) {
	Convey("Given loaded episodes", t, func() {
		state := NewState()
		state.AddSeasonEpisodes([]jellyfin.BaseItemDto{{Id: "ep1", Name: "Pilot"}, {Id: "ep2", Name: "The Return"}})
		state.AddSeasonEpisodes([]jellyfin.BaseItemDto{{Id: "ep3", Name: "Return of the King"}})

		Convey("An empty query returns everything in group order", func() {
			So(ids(state.FindEpisodes("")), ShouldResemble, []string{"ep1", "ep2", "ep3"})
		})

		Convey("Matching is fuzzy and case-insensitive", func() {
			So(ids(state.FindEpisodes("retrn")), ShouldResemble, []string{"ep2", "ep3"})
			So(ids(state.FindEpisodes("PILOT")), ShouldResemble, []string{"ep1"})
		})

		Convey("No match returns nothing", func() {
			So(state.FindEpisodes("zzz"), ShouldBeEmpty)
		})
	})
}
