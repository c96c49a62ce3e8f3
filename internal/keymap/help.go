package keymap

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyBindings converts bindings to bubbles key bindings for the help view.
func KeyBindings(bindings []Binding) []key.Binding {
	result := make([]key.Binding, 0, len(bindings))
	for _, b := range bindings {
		result = append(result, key.NewBinding(
			key.WithKeys(b.Keys...),
			key.WithHelp(helpKeys(b.Keys), b.Description),
		))
	}
	return result
}

func helpKeys(keys []string) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		names[i] = k
	}
	return strings.Join(names, "/")
}
