package tvshows

import (
	"sync"

	"github.com/jellytv/jellytv/jellyfin"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Status is the lifecycle of the last seasons request.
type Status int

const (
	StatusIdle Status = iota
	StatusPending
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Snapshot is a point-in-time copy of the state, also the --json output of the CLI.
type Snapshot struct {
	Seasons        []jellyfin.BaseItemDto   `json:"seasons"`
	SeasonEpisodes [][]jellyfin.BaseItemDto `json:"seasonEpisodes"`
}

// State holds the season list and the episode groups.
// Both sequences are append-only; episode groups are appended in the order fetches complete
// and have no positional relation to the season list.
type State struct {
	mu             sync.RWMutex
	seasons        []jellyfin.BaseItemDto
	seasonEpisodes [][]jellyfin.BaseItemDto

	seasonsStatus    Status
	episodesInFlight int

	nextSubscriber int
	subscribers    map[int]chan struct{}
}

// NewState returns an empty state.
func NewState() *State {
	return &State{
		seasons:        []jellyfin.BaseItemDto{},
		seasonEpisodes: [][]jellyfin.BaseItemDto{},
		subscribers:    make(map[int]chan struct{}),
	}
}

// AddSeasons appends seasons in the given order.
func (s *State) AddSeasons(seasons []jellyfin.BaseItemDto) {
	s.mutate(func() {
		s.seasons = append(s.seasons, seasons...)
	})
}

// AddSeasonEpisodes appends episodes as one new group, even when empty.
func (s *State) AddSeasonEpisodes(episodes []jellyfin.BaseItemDto) {
	group := append(make([]jellyfin.BaseItemDto, 0, len(episodes)), episodes...)
	s.mutate(func() {
		s.seasonEpisodes = append(s.seasonEpisodes, group)
	})
}

// ClearSeasons empties the season list. Episode groups are kept.
func (s *State) ClearSeasons() {
	s.mutate(func() {
		s.seasons = []jellyfin.BaseItemDto{}
	})
}

func (s *State) setSeasonsStatus(status Status) {
	s.mutate(func() {
		s.seasonsStatus = status
	})
}

func (s *State) episodeStarted() {
	s.mutate(func() {
		s.episodesInFlight++
	})
}

func (s *State) episodeFinished() {
	s.mutate(func() {
		s.episodesInFlight--
	})
}

// mutate applies fn under the write lock, then wakes subscribers.
func (s *State) mutate(fn func()) {
	s.mu.Lock()
	fn()
	subscribers := lo.Values(s.subscribers)
	s.mu.Unlock()

	for _, ch := range subscribers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Subscribe returns a channel signalled after every change and a function to unsubscribe.
// Signals are coalesced: a reader sees at least one signal after the latest change.
func (s *State) Subscribe() (<-chan struct{}, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubscriber
	s.nextSubscriber++
	ch := make(chan struct{}, 1)
	s.subscribers[id] = ch

	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

// Seasons returns a copy of the season list.
func (s *State) Seasons() []jellyfin.BaseItemDto {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]jellyfin.BaseItemDto{}, s.seasons...)
}

// SeasonEpisodes returns a copy of the episode groups.
func (s *State) SeasonEpisodes() [][]jellyfin.BaseItemDto {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyGroups(s.seasonEpisodes)
}

// EpisodesOf finds the most recent episode group fetched for seasonID by looking at its items'
// season or parent id. Empty groups cannot be attributed and are never returned.
func (s *State) EpisodesOf(seasonID string) mo.Option[[]jellyfin.BaseItemDto] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	group, _, ok := lo.FindLastIndexOf(s.seasonEpisodes, func(g []jellyfin.BaseItemDto) bool {
		return len(g) > 0 && (g[0].SeasonId == seasonID || g[0].ParentId == seasonID)
	})
	if !ok {
		return mo.None[[]jellyfin.BaseItemDto]()
	}
	return mo.Some(append([]jellyfin.BaseItemDto{}, group...))
}

// SeasonsStatus returns the status of the last seasons request.
func (s *State) SeasonsStatus() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seasonsStatus
}

// EpisodesInFlight returns the number of episode fetches not yet finished.
func (s *State) EpisodesInFlight() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.episodesInFlight
}

// Snapshot copies both sequences under one lock.
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Seasons:        append([]jellyfin.BaseItemDto{}, s.seasons...),
		SeasonEpisodes: copyGroups(s.seasonEpisodes),
	}
}

func copyGroups(groups [][]jellyfin.BaseItemDto) [][]jellyfin.BaseItemDto {
	return lo.Map(groups, func(g []jellyfin.BaseItemDto, _ int) []jellyfin.BaseItemDto {
		return append([]jellyfin.BaseItemDto{}, g...)
	})
}
