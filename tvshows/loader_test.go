package tvshows

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jellytv/jellytv/jellyfin"
	"github.com/jellytv/jellytv/snackbar"
	. "github.com/smartystreets/goconvey/convey"
)

func waitFor(cond func() bool) bool {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(time.Millisecond)
	}
	return false
}

func TestLoadSeasons(t *testing.T) {
	Convey("Given a series S1 with seasons se1 and se2", t, func() {
		api := newFakeAPI()
		api.seasons = &jellyfin.BaseItemDtoQueryResult{Items: []jellyfin.BaseItemDto{{Id: "se1"}, {Id: "se2"}}}
		api.episodes["se1"] = []jellyfin.BaseItemDto{{Id: "ep1", SeasonId: "se1"}, {Id: "ep2", SeasonId: "se1"}}
		api.episodes["se2"] = []jellyfin.BaseItemDto{{Id: "ep3", SeasonId: "se2"}}

		notifications := snackbar.NewQueue()
		loader := NewLoader(api, staticUser("u1"), notifications, nil)

		Convey("When loading the seasons", func() {
			loader.LoadSeasons(context.Background(), jellyfin.BaseItemDto{Id: "S1"})
			loader.Wait()
			state := loader.State()

			Convey("The seasons are appended in response order", func() {
				So(ids(state.Seasons()), ShouldResemble, []string{"se1", "se2"})
				So(state.SeasonsStatus(), ShouldEqual, StatusSucceeded)
			})

			Convey("The series is requested for the session user", func() {
				So(api.seasonCalls, ShouldResemble, []string{"u1/S1"})
			})

			Convey("One episode fetch is fired per season, with overviews", func() {
				So(api.parentIDs(), ShouldHaveLength, 2)
				So(api.parentIDs(), ShouldContain, "se1")
				So(api.parentIDs(), ShouldContain, "se2")
				for _, q := range api.itemCalls {
					So(q.UserID, ShouldEqual, "u1")
					So(q.Fields, ShouldResemble, []jellyfin.ItemFields{jellyfin.ItemFieldsOverview})
				}
			})

			Convey("One group per season is appended", func() {
				So(state.SeasonEpisodes(), ShouldHaveLength, 2)
				So(ids(state.EpisodesOf("se1").MustGet()), ShouldResemble, []string{"ep1", "ep2"})
				So(ids(state.EpisodesOf("se2").MustGet()), ShouldResemble, []string{"ep3"})
				So(state.EpisodesInFlight(), ShouldEqual, 0)
			})

			Convey("No notification is raised", func() {
				So(notifications.Len(), ShouldEqual, 0)
			})

			Convey("Loading again appends again", func() {
				loader.LoadSeasons(context.Background(), jellyfin.BaseItemDto{Id: "S1"})
				loader.Wait()
				So(ids(state.Seasons()), ShouldResemble, []string{"se1", "se2", "se1", "se2"})
				So(state.SeasonEpisodes(), ShouldHaveLength, 4)
			})
		})

		Convey("When the second season resolves first", func() {
			api.beforeItem["se1"] = func(context.Context) {
				waitFor(func() bool { return len(loader.State().SeasonEpisodes()) == 1 })
			}

			loader.LoadSeasons(context.Background(), jellyfin.BaseItemDto{Id: "S1"})
			loader.Wait()

			Convey("Episode groups follow completion order", func() {
				So(groupIDs(loader.State().SeasonEpisodes()), ShouldResemble, [][]string{{"ep3"}, {"ep1", "ep2"}})
			})
		})

		Convey("When the episode fetches are still running", func() {
			release := make(chan struct{})
			block := func(context.Context) { <-release }
			api.beforeItem["se1"] = block
			api.beforeItem["se2"] = block

			ctx, cancel := context.WithCancel(context.Background())
			loader.LoadSeasons(ctx, jellyfin.BaseItemDto{Id: "S1"})
			cancel()

			Convey("LoadSeasons has already returned with the seasons applied", func() {
				So(loader.State().Seasons(), ShouldHaveLength, 2)
				So(loader.State().SeasonEpisodes(), ShouldBeEmpty)
				So(loader.State().EpisodesInFlight(), ShouldEqual, 2)

				close(release)
				loader.Wait()

				So(loader.State().SeasonEpisodes(), ShouldHaveLength, 2)
				So(loader.State().EpisodesInFlight(), ShouldEqual, 0)
			})

			Convey("Cancelling the caller does not cancel issued fetches", func() {
				close(release)
				loader.Wait()
				for _, err := range api.itemCtxErrs {
					So(err, ShouldBeNil)
				}
			})
		})

		Convey("When the seasons request fails with a message", func() {
			api.seasonsErr = errors.New("timeout")
			loader.State().AddSeasons([]jellyfin.BaseItemDto{{Id: "old"}})

			loader.LoadSeasons(context.Background(), jellyfin.BaseItemDto{Id: "S1"})
			loader.Wait()

			Convey("The state is unchanged and one error is notified", func() {
				So(ids(loader.State().Seasons()), ShouldResemble, []string{"old"})
				So(loader.State().SeasonEpisodes(), ShouldBeEmpty)
				So(notifications.Messages(), ShouldResemble, []snackbar.Message{{Text: "timeout", Color: snackbar.ColorError}})
				So(loader.State().SeasonsStatus(), ShouldEqual, StatusFailed)
			})

			Convey("No episode fetch is fired", func() {
				So(api.parentIDs(), ShouldBeEmpty)
			})
		})

		Convey("When the seasons request fails without a message", func() {
			api.seasonsErr = emptyMessageError{}
			loader.LoadSeasons(context.Background(), jellyfin.BaseItemDto{Id: "S1"})

			So(notifications.Messages(), ShouldResemble, []snackbar.Message{snackbar.Error(SeasonsFallbackMessage)})
		})

		Convey("When one season's episodes fail", func() {
			api.episodeErr["se2"] = errors.New("request failed with status code 500")
			loader.LoadSeasons(context.Background(), jellyfin.BaseItemDto{Id: "S1"})
			loader.Wait()

			Convey("Only the successful group is appended", func() {
				So(groupIDs(loader.State().SeasonEpisodes()), ShouldResemble, [][]string{{"ep1", "ep2"}})
				So(loader.State().Seasons(), ShouldHaveLength, 2)
			})

			Convey("One error is notified", func() {
				So(notifications.Messages(), ShouldResemble, []snackbar.Message{snackbar.Error("request failed with status code 500")})
			})
		})
	})

	Convey("Given an item without an id", t, func() {
		api := newFakeAPI()
		api.seasons = &jellyfin.BaseItemDtoQueryResult{}
		loader := NewLoader(api, staticUser("u1"), snackbar.NewQueue(), nil)

		loader.LoadSeasons(context.Background(), jellyfin.BaseItemDto{})
		loader.Wait()

		So(api.seasonCalls, ShouldResemble, []string{"u1/"})
		So(loader.State().Seasons(), ShouldBeEmpty)
		So(api.parentIDs(), ShouldBeEmpty)
	})
}

func TestLoadSeasonEpisodes(t *testing.T) {
	Convey("Given a season", t, func() {
		api := newFakeAPI()
		notifications := snackbar.NewQueue()
		loader := NewLoader(api, staticUser("u1"), notifications, nil)
		season := jellyfin.BaseItemDto{Id: "se9"}

		Convey("A successful fetch appends exactly one group", func() {
			api.episodes["se9"] = []jellyfin.BaseItemDto{{Id: "ep1"}, {Id: "ep2"}}
			loader.LoadSeasonEpisodes(context.Background(), season)
			So(groupIDs(loader.State().SeasonEpisodes()), ShouldResemble, [][]string{{"ep1", "ep2"}})
		})

		Convey("An empty result still appends an empty group", func() {
			loader.LoadSeasonEpisodes(context.Background(), season)
			So(loader.State().SeasonEpisodes(), ShouldHaveLength, 1)
			So(loader.State().SeasonEpisodes()[0], ShouldBeEmpty)
		})

		Convey("A failure leaves groups unchanged and notifies once", func() {
			api.episodeErr["se9"] = errors.New("network down")
			loader.LoadSeasonEpisodes(context.Background(), season)
			So(loader.State().SeasonEpisodes(), ShouldBeEmpty)
			So(notifications.Messages(), ShouldResemble, []snackbar.Message{snackbar.Error("network down")})
		})

		Convey("A failure without a message uses the fallback", func() {
			api.episodeErr["se9"] = emptyMessageError{}
			loader.LoadSeasonEpisodes(context.Background(), season)
			So(notifications.Messages(), ShouldResemble, []snackbar.Message{snackbar.Error(EpisodesFallbackMessage)})
		})
	})
}

func TestClearSeasons(t *testing.T) {
	Convey("Given loaded seasons and episodes", t, func() {
		loader := NewLoader(newFakeAPI(), staticUser("u1"), snackbar.NewQueue(), nil)
		loader.State().AddSeasons([]jellyfin.BaseItemDto{{Id: "se1"}})
		loader.State().AddSeasonEpisodes([]jellyfin.BaseItemDto{{Id: "ep1"}})

		Convey("Clearing empties seasons only", func() {
			loader.ClearSeasons()
			So(loader.State().Seasons(), ShouldBeEmpty)
			So(groupIDs(loader.State().SeasonEpisodes()), ShouldResemble, [][]string{{"ep1"}})
		})

		Convey("Clearing twice is harmless", func() {
			loader.ClearSeasons()
			loader.ClearSeasons()
			So(loader.State().Seasons(), ShouldBeEmpty)
		})
	})
}

type panickingAPI struct{ *fakeAPI }

func (panickingAPI) GetItems(context.Context, jellyfin.ItemsQuery) (*jellyfin.BaseItemDtoQueryResult, error) {
	panic("decoder exploded")
}

func TestPanickingEpisodeFetch(t *testing.T) {
	Convey("Given an API panicking on episode fetches", t, func() {
		api := newFakeAPI()
		api.seasons = &jellyfin.BaseItemDtoQueryResult{Items: []jellyfin.BaseItemDto{{Id: "se1"}}}
		notifications := snackbar.NewQueue()
		loader := NewLoader(panickingAPI{api}, staticUser("u1"), notifications, nil)

		Convey("A background fetch is reported once, without waiting", func() {
			loader.LoadSeasons(context.Background(), jellyfin.BaseItemDto{Id: "S1"})
			So(waitFor(func() bool { return notifications.Len() == 1 }), ShouldBeTrue)

			So(loader.Wait, ShouldNotPanic)
			So(loader.Wait, ShouldNotPanic)
			So(loader.Wait, ShouldNotPanic)

			So(notifications.Len(), ShouldEqual, 1)
			So(notifications.Messages()[0], ShouldResemble, snackbar.Error("decoder exploded"))
			So(loader.State().EpisodesInFlight(), ShouldEqual, 0)
			So(loader.State().SeasonEpisodes(), ShouldBeEmpty)
		})

		Convey("A direct fetch is reported the same way", func() {
			So(func() {
				loader.LoadSeasonEpisodes(context.Background(), jellyfin.BaseItemDto{Id: "se1"})
			}, ShouldNotPanic)
			So(notifications.Len(), ShouldEqual, 1)
			So(loader.State().EpisodesInFlight(), ShouldEqual, 0)
		})
	})
}

func TestNilNotifier(t *testing.T) {
	Convey("Given a loader built without a notifier", t, func() {
		api := newFakeAPI()
		api.seasonsErr = errors.New("timeout")
		loader := NewLoader(api, staticUser("u1"), nil, nil)

		Convey("Failures are dropped instead of crashing", func() {
			So(func() {
				loader.LoadSeasons(context.Background(), jellyfin.BaseItemDto{Id: "S1"})
			}, ShouldNotPanic)
			So(loader.State().SeasonsStatus(), ShouldEqual, StatusFailed)
		})
	})
}
