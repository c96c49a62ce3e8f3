// Package app wires the player store, the episode list and the player bar
// into a Bubble Tea program.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/podwaves/internal/episode"
	"github.com/llehouerou/podwaves/internal/keymap"
	"github.com/llehouerou/podwaves/internal/notify"
	"github.com/llehouerou/podwaves/internal/playerstate"
	"github.com/llehouerou/podwaves/internal/ui/episodelist"
	"github.com/llehouerou/podwaves/internal/ui/playerbar"
)

// Model is the root application model.
type Model struct {
	store *playerstate.Store
	sub   *playerstate.Subscription

	Keys              *keymap.Resolver
	Help              help.Model
	Episodes          episodelist.Model
	PlayerDisplayMode playerbar.DisplayMode

	// Position is the simulated elapsed time of the current episode.
	Position time.Duration
	Autoplay bool
	ErrorMsg string

	nowPlaying *notify.NowPlaying

	Width  int
	Height int
}

// Option configures a Model.
type Option func(*Model)

// WithAutoplay sets whether the next episode starts when one ends.
func WithAutoplay(enabled bool) Option {
	return func(m *Model) { m.Autoplay = enabled }
}

// WithNowPlaying announces episode changes through np.
func WithNowPlaying(np *notify.NowPlaying) Option {
	return func(m *Model) { m.nowPlaying = np }
}

// WithError starts the UI with an error in the status line.
func WithError(msg string) Option {
	return func(m *Model) { m.ErrorMsg = msg }
}

// New creates the application model. The player store is taken from ctx,
// which must come from playerstate.Provide or playerstate.WithStore.
func New(ctx context.Context, episodes []episode.Episode, opts ...Option) (Model, error) {
	store, err := playerstate.Use(ctx)
	if err != nil {
		return Model{}, fmt.Errorf("create app: %w", err)
	}

	m := Model{
		store:    store,
		sub:      store.Subscribe(),
		Keys:     keymap.NewResolver(keymap.Bindings),
		Help:     help.New(),
		Episodes: episodelist.New(episodes),
		Autoplay: true,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(TickCmd(), m.WatchStoreEvents())
}

// Store returns the player store the model drives.
func (m Model) Store() *playerstate.Store {
	return m.store
}
