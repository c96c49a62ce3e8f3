// Package notify provides desktop notifications via D-Bus.
package notify

import (
	"sync"

	"github.com/llehouerou/podwaves/internal/episode"
)

// Urgency represents notification priority levels per freedesktop spec.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

const (
	appName        = "podwaves"
	nowPlayingIcon = "media-playback-start"
)

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional, supports basic markup)
	Icon       string  // Path to image file or icon name (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are disabled or unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
}

// NowPlaying announces the current episode. Each announcement replaces the
// previous one so only a single popup is on screen.
type NowPlaying struct {
	notifier Notifier
	timeout  int32

	mu     sync.Mutex
	lastID uint32
}

// NewNowPlaying wraps n. timeout is in ms, -1 for the server default.
func NewNowPlaying(n Notifier, timeout int32) *NowPlaying {
	return &NowPlaying{notifier: n, timeout: timeout}
}

// Announce shows ep. A nil episode closes the last announcement.
func (p *NowPlaying) Announce(ep *episode.Episode) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if ep == nil {
		if p.lastID == 0 {
			return nil
		}
		id := p.lastID
		p.lastID = 0
		return p.notifier.Close(id)
	}

	id, err := p.notifier.Notify(Episode(*ep, p.timeout, p.lastID))
	if err != nil {
		return err
	}
	p.lastID = id
	return nil
}

// Episode builds the "now playing" notification for ep.
func Episode(ep episode.Episode, timeout int32, replaces uint32) Notification {
	body := ep.Members
	if d := ep.Length(); d > 0 {
		if body != "" {
			body += " · "
		}
		body += episode.FormatDuration(d)
	}
	return Notification{
		Title:      ep.Title,
		Body:       body,
		Icon:       nowPlayingIcon,
		Timeout:    timeout,
		ReplacesID: replaces,
		Urgency:    UrgencyLow,
	}
}
