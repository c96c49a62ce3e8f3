package notify

import (
	"testing"

	"github.com/llehouerou/podwaves/internal/episode"
)

func TestUrgencyValues(t *testing.T) {
	// Verify urgency constants match D-Bus spec
	if UrgencyLow != 0 {
		t.Errorf("UrgencyLow = %d, want 0", UrgencyLow)
	}
	if UrgencyNormal != 1 {
		t.Errorf("UrgencyNormal = %d, want 1", UrgencyNormal)
	}
	if UrgencyCritical != 2 {
		t.Errorf("UrgencyCritical = %d, want 2", UrgencyCritical)
	}
}

func TestNotificationZeroValue(t *testing.T) {
	var n Notification
	if n.Urgency != UrgencyLow {
		t.Errorf("zero value Urgency = %d, want UrgencyLow (0)", n.Urgency)
	}
	if n.Timeout != 0 {
		t.Error("zero value Timeout should be 0 (never expire)")
	}
	if n.ReplacesID != 0 {
		t.Error("zero value ReplacesID should be 0 (new notification)")
	}
}

// recordingNotifier records notifications for testing.
type recordingNotifier struct {
	sent   []Notification
	closed []uint32
	lastID uint32
}

func (r *recordingNotifier) Notify(n Notification) (uint32, error) {
	r.sent = append(r.sent, n)
	if n.ReplacesID != 0 {
		return n.ReplacesID, nil
	}
	r.lastID++
	return r.lastID, nil
}

func (r *recordingNotifier) Close(id uint32) error {
	r.closed = append(r.closed, id)
	return nil
}

func TestEpisodeNotification(t *testing.T) {
	tests := []struct {
		name string
		ep   episode.Episode
		body string
	}{
		{"members and length", episode.Episode{Title: "Pilot", Members: "Ana, Bruno", Duration: 1800}, "Ana, Bruno · 30:00"},
		{"no members", episode.Episode{Title: "Pilot", Duration: 90}, "1:30"},
		{"unknown length", episode.Episode{Title: "Pilot", Members: "Ana"}, "Ana"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := Episode(tt.ep, 5000, 7)
			if n.Title != "Pilot" {
				t.Errorf("Title = %q, want %q", n.Title, "Pilot")
			}
			if n.Body != tt.body {
				t.Errorf("Body = %q, want %q", n.Body, tt.body)
			}
			if n.ReplacesID != 7 || n.Timeout != 5000 {
				t.Errorf("ReplacesID/Timeout = %d/%d, want 7/5000", n.ReplacesID, n.Timeout)
			}
		})
	}
}

func TestNowPlaying_ReplacesPrevious(t *testing.T) {
	rec := &recordingNotifier{}
	np := NewNowPlaying(rec, -1)

	if err := np.Announce(&episode.Episode{Title: "Pilot"}); err != nil {
		t.Fatalf("Announce() error: %v", err)
	}
	if err := np.Announce(&episode.Episode{Title: "Second Wind"}); err != nil {
		t.Fatalf("Announce() error: %v", err)
	}

	if len(rec.sent) != 2 {
		t.Fatalf("sent %d notifications, want 2", len(rec.sent))
	}
	if rec.sent[0].ReplacesID != 0 {
		t.Errorf("first ReplacesID = %d, want 0", rec.sent[0].ReplacesID)
	}
	if rec.sent[1].ReplacesID != 1 {
		t.Errorf("second ReplacesID = %d, want 1", rec.sent[1].ReplacesID)
	}
}

func TestNowPlaying_NilClosesLast(t *testing.T) {
	rec := &recordingNotifier{}
	np := NewNowPlaying(rec, -1)

	// Nothing shown yet: nothing to close.
	if err := np.Announce(nil); err != nil {
		t.Fatalf("Announce(nil) error: %v", err)
	}
	if len(rec.closed) != 0 {
		t.Fatalf("closed = %v, want none", rec.closed)
	}

	_ = np.Announce(&episode.Episode{Title: "Pilot"})
	_ = np.Announce(nil)
	_ = np.Announce(nil)

	if len(rec.closed) != 1 || rec.closed[0] != 1 {
		t.Errorf("closed = %v, want [1]", rec.closed)
	}
}
