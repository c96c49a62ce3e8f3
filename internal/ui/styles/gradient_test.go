package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestApplyGradient_PreservesText(t *testing.T) {
	tests := []string{"", "x", "━━━━━━", "épisode"}
	for _, in := range tests {
		got := ansi.Strip(ApplyGradient(in, "#a78bfa", "#f1a208"))
		if got != in {
			t.Errorf("ApplyGradient(%q) stripped = %q", in, got)
		}
	}
}

func TestBlendColors_Size(t *testing.T) {
	colors := blendColors(5, lipgloss.Color("#a78bfa"), lipgloss.Color("#f1a208"))

	if len(colors) != 5 {
		t.Fatalf("len = %d, want 5", len(colors))
	}
	for i, c := range colors {
		if hex := colorToHex(c); len(hex) != 7 || hex[0] != '#' {
			t.Errorf("colors[%d] = %q, want #rrggbb", i, hex)
		}
	}

	if got := blendColors(1, "#a78bfa", "#f1a208"); len(got) != 1 {
		t.Errorf("size 1 should return the start color only, got %d", len(got))
	}
}

func TestLipglossToColor_ANSIFallsBackToGray(t *testing.T) {
	r, g, b, _ := lipglossToColor(lipgloss.Color("240")).RGBA()
	if r != g || g != b {
		t.Errorf("ANSI color should map to gray, got %d,%d,%d", r, g, b)
	}
}
