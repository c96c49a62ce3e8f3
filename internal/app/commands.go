package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/podwaves/internal/episode"
)

// TickCmd returns a command that sends TickMsg after 1 second.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// WatchStoreEvents returns a command that waits for the next store event.
// It listens on all subscription channels and converts events to tea.Msg.
func (m Model) WatchStoreEvents() tea.Cmd {
	if m.sub == nil {
		return nil
	}
	sub := m.sub
	return func() tea.Msg {
		select {
		case e := <-sub.StateChanged:
			return StoreStateMsg(e)
		case e := <-sub.EpisodeChanged:
			return StoreEpisodeMsg(e)
		case e := <-sub.ListChanged:
			return StoreListMsg(e)
		case e := <-sub.ModeChanged:
			return StoreModeMsg(e)
		case <-sub.Done:
			return StoreClosedMsg{}
		}
	}
}

// announceCmd shows ep as a desktop notification. nil closes the last one.
func (m Model) announceCmd(ep *episode.Episode) tea.Cmd {
	if m.nowPlaying == nil {
		return nil
	}
	np := m.nowPlaying
	return func() tea.Msg {
		if err := np.Announce(ep); err != nil {
			return NotifyErrorMsg{Err: err}
		}
		return nil
	}
}
