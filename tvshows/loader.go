// Package tvshows loads the seasons of a series, and the episodes of each season, into an observable State.
package tvshows

import (
	"context"
	"fmt"

	"github.com/jellytv/jellytv/jellyfin"
	"github.com/jellytv/jellytv/log"
	"github.com/jellytv/jellytv/snackbar"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/panics"
)

// Messages shown when a failed request carries no message of its own.
const (
	SeasonsFallbackMessage  = "Getting tv shows issue"
	EpisodesFallbackMessage = "Getting tv show season episodes issue"
)

// API is the part of the media server API the loader consumes.
type API interface {
	GetSeasons(ctx context.Context, userID, seriesID string) (*jellyfin.BaseItemDtoQueryResult, error)
	GetItems(ctx context.Context, q jellyfin.ItemsQuery) (*jellyfin.BaseItemDtoQueryResult, error)
}

var _ API = (*jellyfin.Client)(nil)

// UserProvider supplies the id of the user requests are made for.
type UserProvider interface {
	UserID() string
}

// Loader fetches seasons and episodes and records them in its State.
// API failures are turned into error notifications and never returned.
type Loader struct {
	api      API
	user     UserProvider
	notifier snackbar.Notifier
	state    *State

	episodes conc.WaitGroup
}

// NewLoader wires a loader. A nil state gets a fresh one and a nil notifier discards messages.
func NewLoader(api API, user UserProvider, notifier snackbar.Notifier, state *State) *Loader {
	if state == nil {
		state = NewState()
	}
	if notifier == nil {
		notifier = snackbar.NotifierFunc(func(snackbar.Message) {})
	}
	return &Loader{
		api:      api,
		user:     user,
		notifier: notifier,
		state:    state,
	}
}

// State returns the state the loader writes to.
func (l *Loader) State() *State {
	return l.state
}

// LoadSeasons fetches the seasons of series and appends them, then starts one episode fetch per
// season without waiting for any of them. Use Wait to block until those fetches finish.
func (l *Loader) LoadSeasons(ctx context.Context, series jellyfin.BaseItemDto) {
	userID := l.user.UserID()
	logger := log.WithFields(logrus.Fields{"series": series.Id, "user": userID})
	logger.Info("loading seasons")

	l.state.setSeasonsStatus(StatusPending)
	result, err := l.api.GetSeasons(ctx, userID, series.Id)
	if err != nil {
		logger.WithError(err).Error("loading seasons failed")
		l.state.setSeasonsStatus(StatusFailed)
		l.fail(err, SeasonsFallbackMessage)
		return
	}

	seasons := items(result)
	l.state.AddSeasons(seasons)
	l.state.setSeasonsStatus(StatusSucceeded)
	logger.Infof("loaded %d seasons", len(seasons))

	// Issued fetches outlive the caller's cancellation.
	detached := context.WithoutCancel(ctx)
	for _, season := range seasons {
		season := season
		l.state.episodeStarted()
		l.episodes.Go(func() {
			l.fetchEpisodes(detached, season)
		})
	}
}

// LoadSeasonEpisodes fetches the episodes of season, with overviews, and appends them as one group.
func (l *Loader) LoadSeasonEpisodes(ctx context.Context, season jellyfin.BaseItemDto) {
	l.state.episodeStarted()
	l.fetchEpisodes(ctx, season)
}

// fetchEpisodes reports a panic in the request like any other failure, once.
func (l *Loader) fetchEpisodes(ctx context.Context, season jellyfin.BaseItemDto) {
	defer l.state.episodeFinished()

	var catcher panics.Catcher
	catcher.Try(func() {
		l.requestEpisodes(ctx, season)
	})

	if r := catcher.Recovered(); r != nil {
		log.Errorf("episode fetch for season %s panicked: %v\n%s", season.Id, r.Value, r.Stack)
		l.fail(fmt.Errorf("%v", r.Value), EpisodesFallbackMessage)
	}
}

func (l *Loader) requestEpisodes(ctx context.Context, season jellyfin.BaseItemDto) {
	userID := l.user.UserID()
	logger := log.WithFields(logrus.Fields{"season": season.Id, "user": userID})

	result, err := l.api.GetItems(ctx, jellyfin.ItemsQuery{
		UserID:   userID,
		ParentID: season.Id,
		Fields:   []jellyfin.ItemFields{jellyfin.ItemFieldsOverview},
	})
	if err != nil {
		logger.WithError(err).Error("loading episodes failed")
		l.fail(err, EpisodesFallbackMessage)
		return
	}

	episodes := items(result)
	l.state.AddSeasonEpisodes(episodes)
	logger.Debugf("loaded %d episodes", len(episodes))
}

// ClearSeasons empties the season list.
func (l *Loader) ClearSeasons() {
	l.state.ClearSeasons()
}

// Wait blocks until every episode fetch started so far has finished.
func (l *Loader) Wait() {
	l.episodes.Wait()
}

func (l *Loader) fail(err error, fallback string) {
	l.notifier.Push(snackbar.Error(lo.CoalesceOrEmpty(err.Error(), fallback)))
}

func items(result *jellyfin.BaseItemDtoQueryResult) []jellyfin.BaseItemDto {
	if result == nil {
		return nil
	}
	return result.Items
}
