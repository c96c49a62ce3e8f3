// Package playerstate holds the player's episode list and playback flags, and
// is the only place they are mutated.
package playerstate

import (
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/llehouerou/podwaves/internal/episode"
)

// Store owns a State. Every operation runs to completion under the lock and
// replaces the state as a whole; readers never see a partial update.
type Store struct {
	mu    sync.RWMutex
	state State
	pick  func(n int) int

	subs   []*Subscription
	subsMu sync.RWMutex
	closed bool // guarded by subsMu
}

// Option configures a Store.
type Option func(*Store)

// WithRand replaces the shuffle pick. fn must return a value in [0, n).
func WithRand(fn func(n int) int) Option {
	return func(s *Store) {
		s.pick = fn
	}
}

// WithModes sets the initial loop and shuffle flags.
func WithModes(looping, shuffling bool) Option {
	return func(s *Store) {
		s.state.IsLooping = looping
		s.state.IsShuffling = shuffling
	}
}

// New creates a store with an empty list, index 0 and all flags false.
func New(opts ...Option) *Store {
	s := &Store{pick: rand.IntN}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a copy of the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// HasNext reports whether PlayNext would move.
func (s *Store) HasNext() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.HasNext()
}

// HasPrevious reports whether PlayPrevious would move.
func (s *Store) HasPrevious() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.HasPrevious()
}

// CurrentEpisode returns a copy of the current episode, or nil if none.
func (s *Store) CurrentEpisode() *episode.Episode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.CurrentEpisode()
}

// Play replaces the list with the single episode ep and starts playing it.
func (s *Store) Play(ep episode.Episode) {
	s.mutate(func(st *State) bool {
		st.EpisodeList = []episode.Episode{ep}
		st.CurrentEpisodeIndex = 0
		st.IsPlaying = true
		return true
	})
}

// PlayList replaces the list and starts playing at index.
// index is not validated; an out-of-range value leaves no current episode.
func (s *Store) PlayList(list []episode.Episode, index int) {
	s.mutate(func(st *State) bool {
		st.EpisodeList = slices.Clone(list)
		st.CurrentEpisodeIndex = index
		st.IsPlaying = true
		return true
	})
}

// TogglePlay flips the playing flag.
func (s *Store) TogglePlay() {
	s.mutate(func(st *State) bool {
		st.IsPlaying = !st.IsPlaying
		return false
	})
}

// ToggleLoop flips the looping flag.
func (s *Store) ToggleLoop() {
	s.mutate(func(st *State) bool {
		st.IsLooping = !st.IsLooping
		return false
	})
}

// ToggleShuffle flips the shuffling flag.
func (s *Store) ToggleShuffle() {
	s.mutate(func(st *State) bool {
		st.IsShuffling = !st.IsShuffling
		return false
	})
}

// SetPlayingState sets the playing flag.
func (s *Store) SetPlayingState(playing bool) {
	s.mutate(func(st *State) bool {
		st.IsPlaying = playing
		return false
	})
}

// PlayNext moves to the next episode. With shuffle on it picks a uniformly
// random index, which may be the current one; an empty list is left alone.
// Otherwise it advances only when HasNext.
func (s *Store) PlayNext() {
	s.mutate(func(st *State) bool {
		switch {
		case st.IsShuffling:
			if n := len(st.EpisodeList); n > 0 {
				st.CurrentEpisodeIndex = s.pick(n)
			}
		case st.HasNext():
			st.CurrentEpisodeIndex++
		}
		return false
	})
}

// PlayPrevious moves back one episode when HasPrevious.
func (s *Store) PlayPrevious() {
	s.mutate(func(st *State) bool {
		if st.HasPrevious() {
			st.CurrentEpisodeIndex--
		}
		return false
	})
}

// ClearPlayerState empties the list and resets the index.
// Playback flags are kept.
func (s *Store) ClearPlayerState() {
	s.mutate(func(st *State) bool {
		st.EpisodeList = nil
		st.CurrentEpisodeIndex = 0
		return true
	})
}

// Subscribe creates a new event subscription. After Close the returned
// subscription is already done.
func (s *Store) Subscribe() *Subscription {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	sub := newSubscription()
	if s.closed {
		sub.close()
		return sub
	}
	s.subs = append(s.subs, sub)
	return sub
}

// Close ends all subscriptions. It is safe to call more than once.
// Operations keep working on a closed store; they just notify no one.
func (s *Store) Close() error {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	for _, sub := range s.subs {
		sub.close()
	}
	s.subs = nil
	return nil
}

// mutate applies fn under the write lock, then publishes the difference.
// fn returns true when it replaced the episode list.
func (s *Store) mutate(fn func(st *State) bool) {
	s.mu.Lock()
	prev := s.state
	listReplaced := fn(&s.state)
	next := s.state
	s.mu.Unlock()

	s.publish(prev, next, listReplaced)
}

func (s *Store) publish(prev, next State, listReplaced bool) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	if len(s.subs) == 0 {
		return
	}

	for _, sub := range s.subs {
		if prev.IsPlaying != next.IsPlaying {
			sub.sendState(StateChange{Previous: prev.IsPlaying, Current: next.IsPlaying})
		}
		if prev.IsLooping != next.IsLooping || prev.IsShuffling != next.IsShuffling {
			sub.sendMode(ModeChange{Looping: next.IsLooping, Shuffling: next.IsShuffling})
		}
		if listReplaced {
			sub.sendList(ListChange{
				Episodes: slices.Clone(next.EpisodeList),
				Index:    next.CurrentEpisodeIndex,
			})
		}
		if listReplaced || prev.CurrentEpisodeIndex != next.CurrentEpisodeIndex {
			sub.sendEpisode(EpisodeChange{
				Previous:      prev.CurrentEpisode(),
				Current:       next.CurrentEpisode(),
				PreviousIndex: prev.CurrentEpisodeIndex,
				Index:         next.CurrentEpisodeIndex,
			})
		}
	}
}
