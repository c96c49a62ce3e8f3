package playerstate

import "github.com/llehouerou/podwaves/internal/episode"

// StateChange is emitted when the playing flag flips.
type StateChange struct {
	Previous bool
	Current  bool
}

// EpisodeChange is emitted when the current episode moves.
//
// Emitted by:
//   - Play/PlayList: always, since the list is replaced
//   - PlayNext/PlayPrevious: when the index actually changes
//   - ClearPlayerState: with a nil Current
//
// A shuffle pick that lands on the current index does not emit.
type EpisodeChange struct {
	Previous      *episode.Episode
	Current       *episode.Episode
	PreviousIndex int
	Index         int
}

// ListChange is emitted when the episode list is replaced or cleared.
type ListChange struct {
	Episodes []episode.Episode
	Index    int
}

// ModeChange is emitted when the loop or shuffle flag changes.
type ModeChange struct {
	Looping   bool
	Shuffling bool
}
