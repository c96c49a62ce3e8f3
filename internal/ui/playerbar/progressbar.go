package playerbar

import (
	"strings"
	"time"

	"github.com/llehouerou/podwaves/internal/ui/styles"
)

// renderProgress renders a width-cell bar: a gradient filled part followed by
// a dim track.
func renderProgress(position, duration time.Duration, width int) string {
	if width <= 0 {
		return ""
	}
	filled := filledCells(position, duration, width)
	return styles.ProgressGradient(strings.Repeat("━", filled)) +
		emptyBarStyle().Render(strings.Repeat("─", width-filled))
}

func filledCells(position, duration time.Duration, width int) int {
	if duration <= 0 || position <= 0 {
		return 0
	}
	ratio := float64(position) / float64(duration)
	return min(int(float64(width)*ratio), width)
}
