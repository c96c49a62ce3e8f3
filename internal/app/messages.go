package app

import (
	"time"

	"github.com/llehouerou/podwaves/internal/playerstate"
)

// TickMsg advances the simulated playback position.
type TickMsg time.Time

// StoreStateMsg is sent when the store's playing flag flips.
type StoreStateMsg playerstate.StateChange

// StoreEpisodeMsg is sent when the current episode changes.
type StoreEpisodeMsg playerstate.EpisodeChange

// StoreListMsg is sent when the store's episode list is replaced.
type StoreListMsg playerstate.ListChange

// StoreModeMsg is sent when loop or shuffle is toggled.
type StoreModeMsg playerstate.ModeChange

// StoreClosedMsg is sent once the store has been closed.
type StoreClosedMsg struct{}

// NotifyErrorMsg reports a failed desktop notification.
type NotifyErrorMsg struct {
	Err error
}
