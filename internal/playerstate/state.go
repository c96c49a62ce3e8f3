package playerstate

import (
	"slices"

	"github.com/llehouerou/podwaves/internal/episode"
)

// State is a snapshot of the player: the episode list, the current position
// in it and the playback flags.
type State struct {
	EpisodeList         []episode.Episode
	CurrentEpisodeIndex int
	IsPlaying           bool
	IsLooping           bool
	IsShuffling         bool
}

// HasNext reports whether PlayNext would move. Shuffle always has a next.
func (s State) HasNext() bool {
	return s.IsShuffling || s.CurrentEpisodeIndex+1 < len(s.EpisodeList)
}

// HasPrevious reports whether PlayPrevious would move.
func (s State) HasPrevious() bool {
	return s.CurrentEpisodeIndex > 0
}

// CurrentEpisode returns the episode at the current index, or nil when the
// index does not point into the list (empty list, or an out-of-range index
// handed to PlayList).
func (s State) CurrentEpisode() *episode.Episode {
	if s.CurrentEpisodeIndex < 0 || s.CurrentEpisodeIndex >= len(s.EpisodeList) {
		return nil
	}
	ep := s.EpisodeList[s.CurrentEpisodeIndex]
	return &ep
}

// IsEmpty reports whether the episode list is empty.
func (s State) IsEmpty() bool {
	return len(s.EpisodeList) == 0
}

func (s State) clone() State {
	s.EpisodeList = slices.Clone(s.EpisodeList)
	return s
}
