package tui

type state int

const (
	loadingState state = iota
	seasonsState
	episodesState
	errorState
)
