package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "episodes"
}

// Bindings contains all key bindings, in help order.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},

	// Playback
	{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
	{ActionNext, []string{"n", "pgdown"}, "Next episode", "playback"},
	{ActionPrevious, []string{"p", "pgup"}, "Previous episode", "playback"},
	{ActionToggleLoop, []string{"l"}, "Toggle loop", "playback"},
	{ActionToggleShuffle, []string{"s"}, "Toggle shuffle", "playback"},
	{ActionClear, []string{"c"}, "Clear player", "playback"},
	{ActionTogglePlayerDisplay, []string{"v"}, "Expand player bar", "playback"},

	// Episode list
	{ActionMoveUp, []string{"k", "up"}, "Move up", "episodes"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "episodes"},
	{ActionJumpStart, []string{"g", "home"}, "First episode", "episodes"},
	{ActionJumpEnd, []string{"G", "end"}, "Last episode", "episodes"},
	{ActionPlayFrom, []string{"enter"}, "Play from here", "episodes"},
	{ActionPlayOnly, []string{"o"}, "Play only this", "episodes"},
	{ActionJumpToNow, []string{"."}, "Go to playing", "episodes"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
