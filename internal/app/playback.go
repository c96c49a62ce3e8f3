package app

import (
	"log/slog"
	"time"

	"github.com/llehouerou/podwaves/internal/playerstate"
)

const tickInterval = time.Second

// handleTick advances the position of a playing episode and handles its end.
func (m *Model) handleTick() {
	st := m.store.State()
	ep := st.CurrentEpisode()
	if ep == nil || !st.IsPlaying {
		return
	}

	m.Position += tickInterval
	if length := ep.Length(); length <= 0 || m.Position < length {
		return
	}

	m.Position = 0
	m.episodeEnded(st)
}

// episodeEnded decides what follows a finished episode.
func (m *Model) episodeEnded(st playerstate.State) {
	switch {
	case st.IsLooping:
		slog.Debug("episode ended, looping", "index", st.CurrentEpisodeIndex)
	case !m.Autoplay:
		slog.Debug("episode ended, autoplay off", "index", st.CurrentEpisodeIndex)
		m.store.SetPlayingState(false)
	case st.HasNext() || (st.IsShuffling && !st.IsEmpty()):
		m.store.PlayNext()
	default:
		slog.Debug("episode list finished")
		m.store.ClearPlayerState()
	}
}
