package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "podwaves"

type Config struct {
	Catalog  string `koanf:"catalog"`   // path to the episode catalog (TOML)
	LogFile  string `koanf:"log_file"`  // default: $XDG_STATE_HOME/podwaves/podwaves.log
	LogLevel string `koanf:"log_level"` // "debug", "info", "warn", "error" (default: "info")

	Player       PlayerConfig       `koanf:"player"`
	Integrations IntegrationsConfig `koanf:"integrations"`
}

// PlayerConfig holds the initial player modes.
type PlayerConfig struct {
	Shuffle  bool  `koanf:"shuffle"`
	Loop     bool  `koanf:"loop"`
	Autoplay *bool `koanf:"autoplay"` // advance when an episode ends (default: true)
}

// IntegrationsConfig toggles desktop integrations.
type IntegrationsConfig struct {
	MPRIS         *bool `koanf:"mpris"`         // default: true
	Notifications *bool `koanf:"notifications"` // default: true
}

func Load() (*Config, error) {
	return loadFrom(getConfigPaths())
}

func loadFrom(paths []string) (*Config, error) {
	k := koanf.New(".")

	// Last existing file wins
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Catalog = expandPath(cfg.Catalog)
	cfg.LogFile = expandPath(cfg.LogFile)
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. $XDG_CONFIG_HOME/podwaves/config.toml
	if xdg.ConfigHome != "" {
		paths = append(paths, filepath.Join(xdg.ConfigHome, appName, "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// AutoplayEnabled reports whether the player advances when an episode ends.
func (c *Config) AutoplayEnabled() bool {
	return boolOr(c.Player.Autoplay, true)
}

// MPRISEnabled reports whether the MPRIS D-Bus interface should be exported.
func (c *Config) MPRISEnabled() bool {
	return boolOr(c.Integrations.MPRIS, true)
}

// NotificationsEnabled reports whether desktop notifications are sent.
func (c *Config) NotificationsEnabled() bool {
	return boolOr(c.Integrations.Notifications, true)
}

// LogPath returns the configured log file, falling back to the XDG state dir.
func (c *Config) LogPath() (string, error) {
	if c.LogFile != "" {
		return c.LogFile, nil
	}
	return xdg.StateFile(filepath.Join(appName, appName+".log"))
}

// SlogLevel maps log_level to a slog.Level. Unknown values mean info.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
