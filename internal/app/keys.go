package app

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/podwaves/internal/keymap"
	"github.com/llehouerou/podwaves/internal/ui/playerbar"
)

// handleKey dispatches a key press. Any key first dismisses a shown error.
func (m *Model) handleKey(k string) tea.Cmd {
	if m.ErrorMsg != "" {
		m.ErrorMsg = ""
		return nil
	}

	switch m.Keys.Resolve(k) { //nolint:exhaustive // playback and list actions handled below
	case keymap.ActionQuit:
		return tea.Quit
	case keymap.ActionHelp:
		m.Help.ShowAll = !m.Help.ShowAll
		return nil
	case keymap.ActionTogglePlayerDisplay:
		m.togglePlayerDisplayMode()
		return nil
	}

	if !m.handlePlaybackKey(k) {
		m.handleEpisodeKey(k)
	}
	return nil
}

// handlePlaybackKey maps playback actions onto store operations.
func (m *Model) handlePlaybackKey(k string) bool {
	switch m.Keys.Resolve(k) { //nolint:exhaustive // only handling playback actions
	case keymap.ActionPlayPause:
		m.store.TogglePlay()
	case keymap.ActionNext:
		m.store.PlayNext()
	case keymap.ActionPrevious:
		m.store.PlayPrevious()
	case keymap.ActionToggleLoop:
		m.store.ToggleLoop()
	case keymap.ActionToggleShuffle:
		m.store.ToggleShuffle()
	case keymap.ActionClear:
		m.store.ClearPlayerState()
	default:
		return false
	}
	return true
}

// handleEpisodeKey moves the list cursor or starts playback from the list.
func (m *Model) handleEpisodeKey(k string) bool {
	switch m.Keys.Resolve(k) { //nolint:exhaustive // only handling list actions
	case keymap.ActionMoveUp:
		m.Episodes.Move(-1)
	case keymap.ActionMoveDown:
		m.Episodes.Move(1)
	case keymap.ActionJumpStart:
		m.Episodes.JumpStart()
	case keymap.ActionJumpEnd:
		m.Episodes.JumpEnd()
	case keymap.ActionPlayFrom:
		if m.Episodes.Len() > 0 {
			m.store.PlayList(m.Episodes.Episodes(), m.Episodes.Cursor())
			m.Position = 0
		}
	case keymap.ActionPlayOnly:
		if ep := m.Episodes.Selected(); ep != nil {
			m.store.Play(*ep)
			m.Position = 0
		}
	case keymap.ActionJumpToNow:
		m.Episodes.SetPlaying(m.store.CurrentEpisode())
		if i := m.Episodes.PlayingIndex(); i >= 0 {
			m.Episodes.JumpTo(i)
		}
	default:
		return false
	}
	return true
}

func (m *Model) togglePlayerDisplayMode() {
	if m.PlayerDisplayMode == playerbar.ModeCompact {
		m.PlayerDisplayMode = playerbar.ModeExpanded
	} else {
		m.PlayerDisplayMode = playerbar.ModeCompact
	}
}

// shortHelpActions are shown in the one-line help.
var shortHelpActions = []keymap.Action{
	keymap.ActionPlayPause,
	keymap.ActionNext,
	keymap.ActionPrevious,
	keymap.ActionPlayFrom,
	keymap.ActionHelp,
	keymap.ActionQuit,
}

var helpContexts = []string{"playback", "episodes", "global"}

// helpKeyMap implements help.KeyMap over the keymap bindings.
type helpKeyMap struct{}

func (helpKeyMap) ShortHelp() []key.Binding {
	var short []keymap.Binding
	for _, b := range keymap.Bindings {
		if slices.Contains(shortHelpActions, b.Action) {
			short = append(short, b)
		}
	}
	return keymap.KeyBindings(short)
}

func (helpKeyMap) FullHelp() [][]key.Binding {
	groups := make([][]key.Binding, 0, len(helpContexts))
	for _, c := range helpContexts {
		groups = append(groups, keymap.KeyBindings(keymap.ByContext(c)))
	}
	return groups
}
