package episode

import (
	"testing"
	"time"
)

func TestEpisode_Length(t *testing.T) {
	e := Episode{Title: "Pilot", Duration: 3725}

	if got := e.Length(); got != 3725*time.Second {
		t.Errorf("Length() = %v, want %v", got, 3725*time.Second)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		in   time.Duration
		want string
	}{
		{"zero", 0, "0:00"},
		{"seconds only", 9 * time.Second, "0:09"},
		{"minutes", 83 * time.Second, "1:23"},
		{"just under an hour", 59*time.Minute + 59*time.Second, "59:59"},
		{"one hour", time.Hour, "1:00:00"},
		{"hours minutes seconds", time.Hour + 2*time.Minute + 5*time.Second, "1:02:05"},
		{"negative clamps to zero", -5 * time.Second, "0:00"},
		{"sub-second truncated", 1500 * time.Millisecond, "0:01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDuration(tt.in); got != tt.want {
				t.Errorf("FormatDuration(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
