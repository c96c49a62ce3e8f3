//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"slices"
	"testing"
)

func TestNewResolver(t *testing.T) {
	bindings := []Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
		{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
		{ActionMoveUp, []string{"k", "up"}, "Move up", "episodes"},
	}

	r := NewResolver(bindings)

	if r == nil {
		t.Fatal("NewResolver returned nil")
	}

	if len(r.actions) != 5 {
		t.Errorf("actions has %d keys, want 5", len(r.actions))
	}
	if len(r.keys) != 3 {
		t.Errorf("keys has %d actions, want 3", len(r.keys))
	}
}

func TestResolver_Resolve(t *testing.T) {
	bindings := []Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
		{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
		{ActionMoveUp, []string{"k", "up"}, "Move up", "episodes"},
		{ActionMoveDown, []string{"j", "down"}, "Move down", "episodes"},
	}

	r := NewResolver(bindings)

	tests := []struct {
		key      string
		expected Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{" ", ActionPlayPause},
		{"k", ActionMoveUp},
		{"up", ActionMoveUp},
		{"j", ActionMoveDown},
		{"down", ActionMoveDown},
		{"unknown", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			result := r.Resolve(tt.key)
			if result != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.key, result, tt.expected)
			}
		})
	}
}

func TestResolver_KeysFor(t *testing.T) {
	bindings := []Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
		{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
		{ActionMoveUp, []string{"k", "up"}, "Move up", "episodes"},
	}

	r := NewResolver(bindings)

	tests := []struct {
		action   Action
		expected []string
	}{
		{ActionQuit, []string{"q", "ctrl+c"}},
		{ActionPlayPause, []string{" "}},
		{ActionMoveUp, []string{"k", "up"}},
		{Action("unknown"), nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			result := r.KeysFor(tt.action)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("KeysFor(%q) = %v, want nil", tt.action, result)
				}
				return
			}

			if len(result) != len(tt.expected) {
				t.Errorf("KeysFor(%q) = %v, want %v", tt.action, result, tt.expected)
				return
			}

			for _, key := range tt.expected {
				if !slices.Contains(result, key) {
					t.Errorf("KeysFor(%q) missing key %q, got %v", tt.action, key, result)
				}
			}
		})
	}
}

func TestResolver_DeduplicatesKeys(t *testing.T) {
	// Same action bound in several contexts with overlapping keys
	bindings := []Binding{
		{ActionNext, []string{"n", "pgdown"}, "Next", "playback"},
		{ActionNext, []string{"n"}, "Next", "episodes"},
		{ActionNext, []string{"n"}, "Next", "global"},
	}

	r := NewResolver(bindings)

	keys := r.KeysFor(ActionNext)

	count := 0
	for _, k := range keys {
		if k == "n" {
			count++
		}
	}

	if count != 1 {
		t.Errorf("expected 'n' to appear once after deduplication, got %d times in %v", count, keys)
	}
}

func TestResolver_KeysForReturnsCopy(t *testing.T) {
	r := NewResolver([]Binding{{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"}})

	keys := r.KeysFor(ActionQuit)
	keys[0] = "x"

	if got := r.KeysFor(ActionQuit); got[0] != "q" {
		t.Errorf("KeysFor(ActionQuit)[0] = %q after caller mutation, want %q", got[0], "q")
	}
}

func TestResolver_LastBindingWins(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionNext, []string{"n"}, "Next", "playback"},
		{ActionJumpToNow, []string{"n"}, "Go to playing", "episodes"},
	})

	if action := r.Resolve("n"); action != ActionJumpToNow {
		t.Errorf("Resolve('n') = %q, want %q", action, ActionJumpToNow)
	}
}

func TestResolver_WithGlobalBindings(t *testing.T) {
	// Test with the actual global Bindings
	r := NewResolver(Bindings)

	// Verify some known bindings work
	if action := r.Resolve("q"); action != ActionQuit {
		t.Errorf("Resolve('q') = %q, want %q", action, ActionQuit)
	}

	if action := r.Resolve("enter"); action != ActionPlayFrom {
		t.Errorf("Resolve('enter') = %q, want %q", action, ActionPlayFrom)
	}

	if action := r.Resolve("s"); action != ActionToggleShuffle {
		t.Errorf("Resolve('s') = %q, want %q", action, ActionToggleShuffle)
	}

	if action := r.Resolve(" "); action != ActionPlayPause {
		t.Errorf("Resolve(' ') = %q, want %q", action, ActionPlayPause)
	}

	// Verify KeysFor returns expected keys
	quitKeys := r.KeysFor(ActionQuit)
	if !slices.Contains(quitKeys, "q") || !slices.Contains(quitKeys, "ctrl+c") {
		t.Errorf("KeysFor(ActionQuit) = %v, expected to contain 'q' and 'ctrl+c'", quitKeys)
	}
}

func TestResolver_EmptyBindings(t *testing.T) {
	r := NewResolver([]Binding{})

	if action := r.Resolve("q"); action != "" {
		t.Errorf("Resolve on empty resolver should return empty, got %q", action)
	}

	if keys := r.KeysFor(ActionQuit); keys != nil {
		t.Errorf("KeysFor on empty resolver should return nil, got %v", keys)
	}
}
