package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/podwaves/internal/app"
	"github.com/llehouerou/podwaves/internal/catalog"
	"github.com/llehouerou/podwaves/internal/config"
	"github.com/llehouerou/podwaves/internal/errmsg"
	"github.com/llehouerou/podwaves/internal/logging"
	"github.com/llehouerou/podwaves/internal/mpris"
	"github.com/llehouerou/podwaves/internal/notify"
	"github.com/llehouerou/podwaves/internal/playerstate"
)

const notificationTimeout = 5000 // ms

func main() {
	if err := run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	logPath, err := cfg.LogPath()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpLogSetup, err))
	}
	logFile, err := logging.Setup(logPath, cfg.SlogLevel())
	if err != nil {
		return errors.New(errmsg.FormatWith(errmsg.OpLogSetup, logPath, err))
	}
	defer logFile.Close()

	var opts []app.Option
	opts = append(opts, app.WithAutoplay(cfg.AutoplayEnabled()))

	// A broken catalog is shown in the UI rather than aborting startup.
	episodes, err := catalog.Load(cfg.Catalog)
	if err != nil {
		slog.Error("catalog load failed", "path", cfg.Catalog, "err", err)
		opts = append(opts, app.WithError(errmsg.FormatWith(errmsg.OpCatalogLoad, cfg.Catalog, err)))
	}
	slog.Info("starting", "catalog", cfg.Catalog, "episodes", len(episodes))

	ctx, unmount := playerstate.Provide(context.Background(),
		playerstate.WithModes(cfg.Player.Loop, cfg.Player.Shuffle))
	defer unmount()

	if cfg.MPRISEnabled() {
		adapter, err := mpris.New(playerstate.MustUse(ctx))
		if err != nil {
			slog.Warn(errmsg.Format(errmsg.OpMPRISStart, err))
		} else {
			defer adapter.Close()
		}
	}

	if cfg.NotificationsEnabled() {
		notifier, err := notify.New()
		if err != nil {
			slog.Warn(errmsg.Format(errmsg.OpNotify, err))
		} else {
			opts = append(opts, app.WithNowPlaying(notify.NewNowPlaying(notifier, notificationTimeout)))
		}
	}

	m, err := app.New(ctx, episodes, opts...)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
