// Package episode defines the playable media item shared by the catalog,
// the player state store and the views.
package episode

import (
	"fmt"
	"time"
)

// Episode is a playable item. It has no id: the player identifies it by its
// position in the episode list.
type Episode struct {
	Title     string `koanf:"title"`
	Members   string `koanf:"members"`
	Thumbnail string `koanf:"thumbnail"`
	Duration  int    `koanf:"duration"` // seconds
	URL       string `koanf:"url"`
}

// Length returns the episode duration as a time.Duration.
func (e Episode) Length() time.Duration {
	return time.Duration(e.Duration) * time.Second
}

// FormatDuration renders d as M:SS, or H:MM:SS once it reaches an hour.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
