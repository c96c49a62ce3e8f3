//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"
	"log/slog"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/podwaves/internal/episode"
	"github.com/llehouerou/podwaves/internal/playerstate"
)

const (
	busName         = "podwaves"
	objectPath      = "/org/mpris/MediaPlayer2"
	playerInterface = "org.mpris.MediaPlayer2.Player"
	propsChanged    = "org.freedesktop.DBus.Properties.PropertiesChanged"
)

// Adapter exposes a player store as an MPRIS media player over D-Bus.
type Adapter struct {
	store  *playerstate.Store
	server *server.Server
	sub    *playerstate.Subscription
	conn   *dbus.Conn
	done   chan struct{}
}

// New creates and starts a new MPRIS adapter.
func New(store *playerstate.Store) (*Adapter, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, fmt.Errorf("connect session bus: %w", err)
	}

	a := &Adapter{
		store: store,
		conn:  conn,
		done:  make(chan struct{}),
	}

	a.server = server.NewServer(busName, &rootAdapter{}, &playerAdapter{store: store})
	a.sub = store.Subscribe()

	go func() {
		if err := a.server.Listen(); err != nil {
			slog.Warn("mpris server stopped", "err", err)
		}
	}()
	go a.watch()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	close(a.done)
	return a.server.Stop()
}

// watch forwards store changes to MPRIS clients as PropertiesChanged signals.
func (a *Adapter) watch() {
	for {
		var changed map[string]dbus.Variant
		select {
		case <-a.done:
			return
		case <-a.sub.Done:
			return
		case e := <-a.sub.StateChanged:
			changed = map[string]dbus.Variant{
				"PlaybackStatus": dbus.MakeVariant(string(playbackStatus(e.Current))),
			}
		case <-a.sub.EpisodeChanged:
			st := a.store.State()
			changed = map[string]dbus.Variant{
				"Metadata":      dbus.MakeVariant(metadataMap(st.CurrentEpisode())),
				"CanGoNext":     dbus.MakeVariant(st.HasNext()),
				"CanGoPrevious": dbus.MakeVariant(st.HasPrevious()),
				"CanPlay":       dbus.MakeVariant(!st.IsEmpty()),
			}
		case <-a.sub.ListChanged:
			st := a.store.State()
			changed = map[string]dbus.Variant{
				"CanGoNext":     dbus.MakeVariant(st.HasNext()),
				"CanGoPrevious": dbus.MakeVariant(st.HasPrevious()),
			}
		case e := <-a.sub.ModeChanged:
			changed = map[string]dbus.Variant{
				"LoopStatus": dbus.MakeVariant(string(loopStatus(e.Looping))),
				"Shuffle":    dbus.MakeVariant(e.Shuffling),
			}
		}
		a.emit(changed)
	}
}

func (a *Adapter) emit(changed map[string]dbus.Variant) {
	err := a.conn.Emit(dbus.ObjectPath(objectPath), propsChanged, playerInterface, changed, []string{})
	if err != nil {
		slog.Debug("mpris emit failed", "err", err)
	}
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil
}

func (r *rootAdapter) Quit() error {
	return nil // the TUI owns its lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "Podwaves", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"https", "http"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/mp4", "audio/ogg"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter and optional interfaces.
type playerAdapter struct {
	store *playerstate.Store
}

func (p *playerAdapter) Next() error {
	p.store.PlayNext()
	return nil
}

func (p *playerAdapter) Previous() error {
	p.store.PlayPrevious()
	return nil
}

func (p *playerAdapter) Pause() error {
	p.store.SetPlayingState(false)
	return nil
}

func (p *playerAdapter) PlayPause() error {
	p.store.TogglePlay()
	return nil
}

func (p *playerAdapter) Stop() error {
	p.store.ClearPlayerState()
	return nil
}

func (p *playerAdapter) Play() error {
	p.store.SetPlayingState(true)
	return nil
}

// Seek is unsupported: elapsed time lives in the UI, not the store.
func (p *playerAdapter) Seek(_ types.Microseconds) error {
	return nil
}

func (p *playerAdapter) SetPosition(_ string, _ types.Microseconds) error {
	return nil
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	st := p.store.State()
	if st.IsEmpty() {
		return types.PlaybackStatusStopped, nil
	}
	return playbackStatus(st.IsPlaying), nil
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	return metadata(p.store.CurrentEpisode()), nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetVolume(_ float64) error {
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	return 0, nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return p.store.HasNext(), nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return p.store.HasPrevious(), nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return !p.store.State().IsEmpty(), nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

// LoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
func (p *playerAdapter) LoopStatus() (types.LoopStatus, error) {
	return loopStatus(p.store.State().IsLooping), nil
}

// SetLoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
// Playlist looping has no store equivalent and is treated as Track.
func (p *playerAdapter) SetLoopStatus(status types.LoopStatus) error {
	want := status != types.LoopStatusNone
	if p.store.State().IsLooping != want {
		p.store.ToggleLoop()
	}
	return nil
}

// Shuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) Shuffle() (bool, error) {
	return p.store.State().IsShuffling, nil
}

// SetShuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) SetShuffle(shuffle bool) error {
	if p.store.State().IsShuffling != shuffle {
		p.store.ToggleShuffle()
	}
	return nil
}

func playbackStatus(playing bool) types.PlaybackStatus {
	if playing {
		return types.PlaybackStatusPlaying
	}
	return types.PlaybackStatusPaused
}

func loopStatus(looping bool) types.LoopStatus {
	if looping {
		return types.LoopStatusTrack
	}
	return types.LoopStatusNone
}

func metadata(ep *episode.Episode) types.Metadata {
	if ep == nil {
		return types.Metadata{}
	}
	meta := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(ep.URL)),
		Length:  types.Microseconds(ep.Length().Microseconds()),
		Title:   ep.Title,
		ArtUrl:  ep.Thumbnail,
	}
	if ep.Members != "" {
		meta.Artist = []string{ep.Members}
	}
	return meta
}

// metadataMap is the wire form of metadata for PropertiesChanged signals.
func metadataMap(ep *episode.Episode) map[string]dbus.Variant {
	if ep == nil {
		return map[string]dbus.Variant{}
	}
	m := map[string]dbus.Variant{
		"mpris:trackid": dbus.MakeVariant(dbus.ObjectPath(formatTrackID(ep.URL))),
		"mpris:length":  dbus.MakeVariant(ep.Length().Microseconds()),
		"xesam:title":   dbus.MakeVariant(ep.Title),
		"xesam:url":     dbus.MakeVariant(ep.URL),
	}
	if ep.Members != "" {
		m["xesam:artist"] = dbus.MakeVariant([]string{ep.Members})
	}
	if ep.Thumbnail != "" {
		m["mpris:artUrl"] = dbus.MakeVariant(ep.Thumbnail)
	}
	return m
}

func formatTrackID(url string) string {
	h := fnv.New64a()
	h.Write([]byte(url))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
