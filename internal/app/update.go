package app

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/podwaves/internal/errmsg"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case tea.KeyMsg:
		cmd = m.handleKey(msg.String())

	case TickMsg:
		m.handleTick()
		cmd = TickCmd()

	case StoreEpisodeMsg:
		cmd = tea.Batch(m.handleEpisodeChange(msg), m.WatchStoreEvents())

	case StoreStateMsg, StoreListMsg, StoreModeMsg:
		cmd = m.WatchStoreEvents()

	case StoreClosedMsg:
		slog.Debug("player store closed")

	case NotifyErrorMsg:
		slog.Warn("notification failed", "err", msg.Err)
		m.ErrorMsg = errmsg.Format(errmsg.OpNotify, msg.Err)
	}

	m.resize()
	return m, cmd
}

// handleEpisodeChange restarts the position and announces the new episode.
func (m *Model) handleEpisodeChange(e StoreEpisodeMsg) tea.Cmd {
	m.Position = 0
	if e.Current == nil {
		slog.Debug("player cleared")
		return m.announceCmd(nil)
	}
	slog.Debug("episode changed", "index", e.Index, "title", e.Current.Title)
	if !m.store.State().IsPlaying {
		return nil
	}
	return m.announceCmd(e.Current)
}
