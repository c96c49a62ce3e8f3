//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/podcasts/catalog.toml",
			expected: filepath.Join(home, "podcasts", "catalog.toml"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/srv/podcasts/catalog.toml",
			expected: "/srv/podcasts/catalog.toml",
		},
		{
			name:     "relative path unchanged",
			input:    "catalog.toml",
			expected: "catalog.toml",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) == 0 {
		t.Fatal("getConfigPaths() returned empty slice")
	}

	// Last path should be local config.toml
	if last := paths[len(paths)-1]; last != "config.toml" {
		t.Errorf("last config path = %q, want %q", last, "config.toml")
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadFrom_NoFiles(t *testing.T) {
	cfg, err := loadFrom([]string{filepath.Join(t.TempDir(), "missing.toml")})
	if err != nil {
		t.Fatalf("loadFrom() error = %v", err)
	}

	if cfg.Catalog != "" {
		t.Errorf("Catalog = %q, want empty", cfg.Catalog)
	}
	if cfg.Player.Shuffle || cfg.Player.Loop {
		t.Error("modes should default to off")
	}
	if !cfg.AutoplayEnabled() {
		t.Error("AutoplayEnabled() should default to true")
	}
	if !cfg.MPRISEnabled() || !cfg.NotificationsEnabled() {
		t.Error("integrations should default to enabled")
	}
}

func TestLoadFrom_ParsesAllKeys(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", `
catalog = "/srv/catalog.toml"
log_file = "/tmp/podwaves.log"
log_level = "DEBUG"

[player]
shuffle = true
loop = true
autoplay = false

[integrations]
mpris = false
notifications = false
`)

	cfg, err := loadFrom([]string{path})
	if err != nil {
		t.Fatalf("loadFrom() error = %v", err)
	}

	if cfg.Catalog != "/srv/catalog.toml" {
		t.Errorf("Catalog = %q", cfg.Catalog)
	}
	if cfg.LogFile != "/tmp/podwaves.log" {
		t.Errorf("LogFile = %q", cfg.LogFile)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("SlogLevel() = %v, want debug", cfg.SlogLevel())
	}
	if !cfg.Player.Shuffle || !cfg.Player.Loop {
		t.Errorf("Player = %+v, want shuffle and loop on", cfg.Player)
	}
	if cfg.AutoplayEnabled() {
		t.Error("AutoplayEnabled() = true, want false")
	}
	if cfg.MPRISEnabled() || cfg.NotificationsEnabled() {
		t.Error("integrations should be disabled")
	}
	if got, err := cfg.LogPath(); err != nil || got != "/tmp/podwaves.log" {
		t.Errorf("LogPath() = %q, %v", got, err)
	}
}

func TestLoadFrom_LastFileWins(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "first.toml", "catalog = \"/a.toml\"\n[player]\nloop = true\n")
	second := writeFile(t, dir, "second.toml", "catalog = \"/b.toml\"\n")

	cfg, err := loadFrom([]string{first, second})
	if err != nil {
		t.Fatalf("loadFrom() error = %v", err)
	}

	if cfg.Catalog != "/b.toml" {
		t.Errorf("Catalog = %q, want /b.toml", cfg.Catalog)
	}
	if !cfg.Player.Loop {
		t.Error("keys only set in the first file should survive")
	}
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.toml", "catalog = [unterminated")

	if _, err := loadFrom([]string{path}); err == nil {
		t.Fatal("loadFrom() should fail on invalid TOML")
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"info", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		c := &Config{LogLevel: tt.in}
		if got := c.SlogLevel(); got != tt.want {
			t.Errorf("SlogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
