package playerbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/podwaves/internal/ui/render"
)

// renderExpanded lays the bar out on three rows:
//
//	Title                                   loop shuffle
//	Members
//	⏮ ⏸ ⏭   ━━━━━━━━━━────────────────────   1:23 / 45:00
func renderExpanded(s State, width int) string {
	innerWidth := max(width-6, 0)
	if innerWidth < 30 {
		return renderCompact(s, width)
	}

	if s.Episode == nil {
		empty := membersStyle().Render(render.Truncate(emptyMessage, innerWidth))
		return frame(lipgloss.JoinVertical(lipgloss.Left, "", empty, ""), width)
	}

	modes := renderModes(s)
	titleRoom := innerWidth - lipgloss.Width(modes) - 1
	title := titleStyle().Render(render.Truncate(s.Episode.Title, titleRoom))
	top := render.Row(title, modes, innerWidth)

	members := membersStyle().Render(render.Truncate(s.Episode.Members, innerWidth))

	controls := renderControls(s)
	times := timeStyle().Render(timeText(s))
	barWidth := max(innerWidth-lipgloss.Width(controls)-lipgloss.Width(times)-6, 3)
	bottom := controls + "   " + renderProgress(s.Position, s.Episode.Length(), barWidth) + "   " + times

	return frame(lipgloss.JoinVertical(lipgloss.Left, top, members, bottom), width)
}
