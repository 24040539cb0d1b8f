package jellyfin

import (
	"fmt"
	"time"
)

// ItemFields names optional fields the server only returns when asked for.
type ItemFields string

const (
	ItemFieldsOverview     ItemFields = "Overview"
	ItemFieldsPath         ItemFields = "Path"
	ItemFieldsGenres       ItemFields = "Genres"
	ItemFieldsPrimaryImage ItemFields = "PrimaryImageAspectRatio"
)

// BaseItemKind values seen by this client.
const (
	KindSeries  = "Series"
	KindSeason  = "Season"
	KindEpisode = "Episode"
)

// BaseItemDto describes a series, season or episode.
type BaseItemDto struct {
	Id                string            `json:"Id"`
	Name              string            `json:"Name,omitempty"`
	Type              string            `json:"Type,omitempty"`
	SeriesId          string            `json:"SeriesId,omitempty"`
	SeriesName        string            `json:"SeriesName,omitempty"`
	SeasonId          string            `json:"SeasonId,omitempty"`
	SeasonName        string            `json:"SeasonName,omitempty"`
	ParentId          string            `json:"ParentId,omitempty"`
	IndexNumber       *int              `json:"IndexNumber,omitempty"`
	ParentIndexNumber *int              `json:"ParentIndexNumber,omitempty"`
	Overview          string            `json:"Overview,omitempty"`
	ProductionYear    *int              `json:"ProductionYear,omitempty"`
	PremiereDate      *time.Time        `json:"PremiereDate,omitempty"`
	RunTimeTicks      *int64            `json:"RunTimeTicks,omitempty"`
	UserData          *UserItemDataDto  `json:"UserData,omitempty"`
	ImageTags         map[string]string `json:"ImageTags,omitempty"`
}

// UserItemDataDto is the per-user playback state of an item.
type UserItemDataDto struct {
	Played                bool  `json:"Played"`
	PlaybackPositionTicks int64 `json:"PlaybackPositionTicks,omitempty"`
	UnplayedItemCount     *int  `json:"UnplayedItemCount,omitempty"`
}

// BaseItemDtoQueryResult is the envelope returned by list endpoints.
type BaseItemDtoQueryResult struct {
	Items            []BaseItemDto `json:"Items"`
	TotalRecordCount int           `json:"TotalRecordCount"`
	StartIndex       int           `json:"StartIndex"`
}

// ticksPerSecond is the resolution of RunTimeTicks (100ns).
const ticksPerSecond = 10_000_000

// Runtime converts RunTimeTicks to a duration, zero when unknown.
func (b *BaseItemDto) Runtime() time.Duration {
	if b.RunTimeTicks == nil {
		return 0
	}
	return time.Duration(*b.RunTimeTicks/ticksPerSecond) * time.Second
}

// Played reports whether the current user has watched the item.
func (b *BaseItemDto) Played() bool {
	return b.UserData != nil && b.UserData.Played
}

// Code returns "S01E03" style numbering built from the known index numbers.
// Seasons carry their number in IndexNumber, episodes in ParentIndexNumber and IndexNumber.
func (b *BaseItemDto) Code() string {
	var code string
	switch {
	case b.Type == KindSeason && b.IndexNumber != nil:
		return fmt.Sprintf("S%02d", *b.IndexNumber)
	case b.ParentIndexNumber != nil:
		code = fmt.Sprintf("S%02d", *b.ParentIndexNumber)
	}

	if b.IndexNumber != nil {
		code += fmt.Sprintf("E%02d", *b.IndexNumber)
	}
	return code
}

// UserDto is the subset of a user returned on login and by /Users/Me.
type UserDto struct {
	Id       string `json:"Id"`
	Name     string `json:"Name"`
	ServerId string `json:"ServerId,omitempty"`
}

// AuthenticationResult is returned by AuthenticateByName.
type AuthenticationResult struct {
	User        UserDto `json:"User"`
	AccessToken string  `json:"AccessToken"`
	ServerId    string  `json:"ServerId"`
}
