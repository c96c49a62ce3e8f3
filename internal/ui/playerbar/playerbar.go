// Package playerbar renders the player state as a bordered bar.
package playerbar

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/podwaves/internal/episode"
	"github.com/llehouerou/podwaves/internal/playerstate"
	"github.com/llehouerou/podwaves/internal/ui/render"
)

// DisplayMode controls the player bar appearance.
type DisplayMode int

const (
	ModeCompact  DisplayMode = iota // Single-line view
	ModeExpanded                    // Title, members and controls on separate rows
)

const (
	playSymbol     = "▶"
	pauseSymbol    = "⏸"
	previousSymbol = "⏮"
	nextSymbol     = "⏭"
	loopLabel      = "loop"
	shuffleLabel   = "shuffle"
	emptyMessage   = "Pick an episode to start listening"
)

// State holds everything needed to render the player bar.
type State struct {
	Episode     *episode.Episode
	Playing     bool
	Looping     bool
	Shuffling   bool
	HasNext     bool
	HasPrevious bool
	Position    time.Duration
	DisplayMode DisplayMode
}

// Height returns the total height of the player bar for the given mode.
func Height(mode DisplayMode) int {
	if mode == ModeExpanded {
		return 5 // 3 content rows + 2 border rows
	}
	return 3
}

// NewState builds a bar state from a player snapshot and the elapsed time of
// the current episode.
func NewState(st playerstate.State, position time.Duration, mode DisplayMode) State {
	return State{
		Episode:     st.CurrentEpisode(),
		Playing:     st.IsPlaying,
		Looping:     st.IsLooping,
		Shuffling:   st.IsShuffling,
		HasNext:     st.HasNext(),
		HasPrevious: st.HasPrevious(),
		Position:    position,
		DisplayMode: mode,
	}
}

// Render returns the player bar for the given total width.
func Render(s State, width int) string {
	if s.DisplayMode == ModeExpanded {
		return renderExpanded(s, width)
	}
	return renderCompact(s, width)
}

func renderCompact(s State, width int) string {
	innerWidth := max(width-6, 0) // border + padding

	if s.Episode == nil {
		return frame(membersStyle().Render(render.Truncate(emptyMessage, innerWidth)), width)
	}

	controls := renderControls(s)
	modes := renderModes(s)
	times := timeStyle().Render(timeText(s))

	const sep = "   "
	fixed := lipgloss.Width(controls) + lipgloss.Width(modes) + lipgloss.Width(times) + 3*len(sep)
	minBar := 10
	available := innerWidth - fixed - minBar

	info := titleStyle().Render(render.Truncate(s.Episode.Title, max(available, 1)))
	if s.Episode.Members != "" {
		titleWidth := lipgloss.Width(info)
		if room := available - titleWidth - len(sep); room > 3 {
			info += sep + membersStyle().Render(render.Truncate(s.Episode.Members, room))
		}
	}

	barWidth := max(innerWidth-fixed-lipgloss.Width(info), 5)

	var line strings.Builder
	line.WriteString(controls)
	line.WriteString(sep)
	line.WriteString(info)
	line.WriteString(sep)
	line.WriteString(renderProgress(s.Position, s.Episode.Length(), barWidth))
	line.WriteString(sep)
	line.WriteString(times)
	line.WriteString(sep)
	line.WriteString(modes)

	return frame(line.String(), width)
}

func renderControls(s State) string {
	status := playSymbol
	if s.Playing {
		status = pauseSymbol
	}
	return controlStyle(s.HasPrevious).Render(previousSymbol) + " " +
		titleStyle().Render(status) + " " +
		controlStyle(s.HasNext).Render(nextSymbol)
}

func renderModes(s State) string {
	return controlStyle(s.Looping).Render(loopLabel) + " " +
		controlStyle(s.Shuffling).Render(shuffleLabel)
}

func timeText(s State) string {
	if s.Episode == nil {
		return episode.FormatDuration(0) + " / " + episode.FormatDuration(0)
	}
	return episode.FormatDuration(s.Position) + " / " + episode.FormatDuration(s.Episode.Length())
}

func frame(content string, width int) string {
	return barStyle().Padding(0, 2).Width(max(width-2, 0)).Render(content)
}
