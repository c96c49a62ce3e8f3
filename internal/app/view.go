package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/podwaves/internal/ui/playerbar"
	"github.com/llehouerou/podwaves/internal/ui/render"
	"github.com/llehouerou/podwaves/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	st := m.store.State()

	list := m.Episodes
	list.SetPlaying(st.CurrentEpisode())

	bar := playerbar.Render(playerbar.NewState(st, m.Position, m.PlayerDisplayMode), m.Width)

	return lipgloss.JoinVertical(lipgloss.Left, list.View(), bar, m.renderFooter())
}

// renderFooter shows the error line when set, the help otherwise.
func (m Model) renderFooter() string {
	s := styles.T().S()
	if m.ErrorMsg != "" {
		return s.Error.Render(render.Truncate(m.ErrorMsg, m.Width))
	}

	lines := strings.Split(m.Help.View(helpKeyMap{}), "\n")
	for i, l := range lines {
		lines[i] = render.Truncate(l, m.Width)
	}
	return strings.Join(lines, "\n")
}

// resize lays out the list above the player bar and footer.
func (m *Model) resize() {
	m.Help.Width = m.Width
	footer := lipgloss.Height(m.renderFooter())
	listHeight := m.Height - playerbar.Height(m.PlayerDisplayMode) - footer
	m.Episodes.SetSize(m.Width, max(listHeight, 0))
}
