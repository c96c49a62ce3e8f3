package episodelist

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/podwaves/internal/catalog"
	"github.com/llehouerou/podwaves/internal/episode"
	"github.com/llehouerou/podwaves/internal/ui/render"
	"github.com/llehouerou/podwaves/internal/ui/styles"
)

const (
	playingMarker = "▶ "
	emptyList     = "No episodes. Set `catalog` in config.toml."
)

// View renders the list inside a bordered panel.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	s := styles.T().S()
	innerWidth := max(m.width-2, 0)

	header := s.Title.Render(render.TruncateAndPad("Episodes", innerWidth/2)) +
		s.Muted.Render(render.Truncate(catalog.Summary(m.episodes), innerWidth-innerWidth/2))
	header = render.TruncateAndPad(header, innerWidth)

	lines := []string{header, s.Subtle.Render(strings.Repeat("─", innerWidth))}
	lines = append(lines, m.renderRows(innerWidth)...)

	return s.Panel.Width(innerWidth).Render(strings.Join(lines, "\n"))
}

func (m Model) renderRows(width int) []string {
	h := m.listHeight()
	rows := make([]string, 0, h)
	s := styles.T().S()

	if len(m.episodes) == 0 {
		rows = append(rows, s.Muted.Render(render.TruncateAndPad(emptyList, width)))
	}

	playing := m.PlayingIndex()
	start, end := m.visibleRange()
	for i := start; i < end; i++ {
		rows = append(rows, m.renderRow(m.episodes[i], width, i == m.pos, i == playing))
	}

	for len(rows) < h {
		rows = append(rows, strings.Repeat(" ", width))
	}
	return rows
}

// renderRow lays out "▶ Title   Members   45:00" in width cells.
func (m Model) renderRow(e episode.Episode, width int, cursor, playing bool) string {
	s := styles.T().S()

	marker := "  "
	if playing {
		marker = playingMarker
	}
	length := episode.FormatDuration(e.Length())

	// Title gets ~60% of the room, members the rest.
	room := max(width-lipgloss.Width(marker)-lipgloss.Width(length)-2, 0)
	titleWidth := room * 3 / 5
	membersWidth := room - titleWidth

	line := marker +
		render.TruncateAndPad(e.Title, titleWidth) + " " +
		render.TruncateAndPad(e.Members, membersWidth) + " " +
		length
	line = render.TruncateAndPad(line, width)

	switch {
	case cursor:
		return s.Cursor.Render(line)
	case playing:
		return s.Playing.Render(line)
	default:
		return s.Base.Render(line)
	}
}
