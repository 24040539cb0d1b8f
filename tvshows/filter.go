package tvshows

import (
	"github.com/jellytv/jellytv/jellyfin"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
)

// FindEpisodes returns the loaded episodes whose name fuzzily matches query, in group order.
// An empty query returns every loaded episode.
func (s *State) FindEpisodes(query string) []jellyfin.BaseItemDto {
	all := lo.Flatten(s.SeasonEpisodes())
	if query == "" {
		return all
	}

	return lo.Filter(all, func(e jellyfin.BaseItemDto, _ int) bool {
		return fuzzy.MatchNormalizedFold(query, e.Name)
	})
}
