// Package episodelist renders the catalog as a scrollable list with a cursor.
package episodelist

import (
	"github.com/llehouerou/podwaves/internal/episode"
)

const scrollMargin = 2

// Model is the episode list state. It never mutates the player; the app
// reads Selected/Episodes and calls the store.
type Model struct {
	episodes []episode.Episode
	playing  *episode.Episode

	pos    int // cursor position
	offset int // first visible row
	width  int
	height int
}

// New creates a list over eps.
func New(eps []episode.Episode) Model {
	return Model{episodes: eps}
}

// SetSize sets the outer dimensions, borders included.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.ensureVisible()
}

// Width returns the outer width.
func (m Model) Width() int { return m.width }

// Height returns the outer height.
func (m Model) Height() int { return m.height }

// Episodes returns the listed episodes.
func (m Model) Episodes() []episode.Episode {
	return m.episodes
}

// Len returns the number of listed episodes.
func (m Model) Len() int {
	return len(m.episodes)
}

// Cursor returns the cursor position.
func (m Model) Cursor() int {
	return m.pos
}

// Selected returns the episode under the cursor, or nil for an empty list.
func (m Model) Selected() *episode.Episode {
	if m.pos < 0 || m.pos >= len(m.episodes) {
		return nil
	}
	ep := m.episodes[m.pos]
	return &ep
}

// SetPlaying marks the episode the player is on. nil clears the mark.
func (m *Model) SetPlaying(ep *episode.Episode) {
	m.playing = ep
}

// PlayingIndex returns the first row equal to the playing episode, or -1.
// Episodes carry no id, so rows are matched by value.
func (m Model) PlayingIndex() int {
	if m.playing == nil {
		return -1
	}
	for i, e := range m.episodes {
		if e == *m.playing {
			return i
		}
	}
	return -1
}

// Move moves the cursor by delta rows, clamped to the list.
func (m *Model) Move(delta int) {
	m.JumpTo(m.pos + delta)
}

// JumpTo moves the cursor to row i, clamped to the list.
func (m *Model) JumpTo(i int) {
	if len(m.episodes) == 0 {
		return
	}
	m.pos = min(max(i, 0), len(m.episodes)-1)
	m.ensureVisible()
}

// JumpStart moves the cursor to the first row.
func (m *Model) JumpStart() {
	m.JumpTo(0)
}

// JumpEnd moves the cursor to the last row.
func (m *Model) JumpEnd() {
	m.JumpTo(len(m.episodes) - 1)
}

// listHeight is the number of episode rows that fit: the outer height minus
// the border and the header + separator rows.
func (m Model) listHeight() int {
	return max(m.height-4, 0)
}

func (m *Model) ensureVisible() {
	h := m.listHeight()
	if h <= 0 || len(m.episodes) == 0 {
		m.offset = 0
		return
	}

	margin := min(scrollMargin, (h-1)/2)
	if m.pos < m.offset+margin {
		m.offset = m.pos - margin
	}
	if m.pos >= m.offset+h-margin {
		m.offset = m.pos - h + margin + 1
	}
	m.offset = min(max(m.offset, 0), max(len(m.episodes)-h, 0))
}

// visibleRange returns the visible rows as [start, end).
func (m Model) visibleRange() (start, end int) {
	h := m.listHeight()
	if h <= 0 || len(m.episodes) == 0 {
		return 0, 0
	}
	return m.offset, min(m.offset+h, len(m.episodes))
}
