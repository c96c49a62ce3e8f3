package playerbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/podwaves/internal/ui/styles"
)

func barStyle() lipgloss.Style {
	return styles.T().S().Panel
}

func titleStyle() lipgloss.Style {
	return styles.T().S().Title
}

func membersStyle() lipgloss.Style {
	return styles.T().S().Muted
}

func timeStyle() lipgloss.Style {
	return styles.T().S().Muted
}

func emptyBarStyle() lipgloss.Style {
	return styles.T().S().Subtle
}

// controlStyle renders a control or mode indicator, dimmed when unavailable.
func controlStyle(active bool) lipgloss.Style {
	if active {
		return styles.T().S().Playing
	}
	return styles.T().S().Subtle
}
