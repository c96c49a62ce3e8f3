package playerstate

const eventBufferSize = 16

// Subscription delivers store events to one consumer.
// Sends never block: when a buffer is full the event is dropped, and the
// consumer is expected to re-read State().
type Subscription struct {
	StateChanged   <-chan StateChange
	EpisodeChanged <-chan EpisodeChange
	ListChanged    <-chan ListChange
	ModeChanged    <-chan ModeChange
	Done           <-chan struct{}

	stateCh   chan StateChange
	episodeCh chan EpisodeChange
	listCh    chan ListChange
	modeCh    chan ModeChange
	doneCh    chan struct{}
}

func newSubscription() *Subscription {
	s := &Subscription{
		stateCh:   make(chan StateChange, eventBufferSize),
		episodeCh: make(chan EpisodeChange, eventBufferSize),
		listCh:    make(chan ListChange, eventBufferSize),
		modeCh:    make(chan ModeChange, eventBufferSize),
		doneCh:    make(chan struct{}),
	}
	s.StateChanged = s.stateCh
	s.EpisodeChanged = s.episodeCh
	s.ListChanged = s.listCh
	s.ModeChanged = s.modeCh
	s.Done = s.doneCh
	return s
}

func (s *Subscription) close() {
	close(s.doneCh)
}

func (s *Subscription) sendState(e StateChange) {
	select {
	case s.stateCh <- e:
	default:
		// Drop if buffer full
	}
}

func (s *Subscription) sendEpisode(e EpisodeChange) {
	select {
	case s.episodeCh <- e:
	default:
	}
}

func (s *Subscription) sendList(e ListChange) {
	select {
	case s.listCh <- e:
	default:
	}
}

func (s *Subscription) sendMode(e ModeChange) {
	select {
	case s.modeCh <- e:
	default:
	}
}
