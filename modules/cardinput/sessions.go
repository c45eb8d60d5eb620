package cardinput

import (
	"sync"

	"github.com/dmitrymomot/cardform"
)

// sessions maps form ids to the event stream of their connected form.
type sessions struct {
	mu      sync.RWMutex
	streams map[string]*cardform.Stream
}

func newSessions() *sessions {
	return &sessions{streams: make(map[string]*cardform.Stream)}
}

func (s *sessions) open(id string, stream *cardform.Stream) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.streams[id]; ok {
		return ErrSessionExists
	}
	s.streams[id] = stream
	return nil
}

func (s *sessions) get(id string) (*cardform.Stream, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stream, ok := s.streams[id]
	return stream, ok
}

// close removes id only if it still maps to stream.
func (s *sessions) close(id string, stream *cardform.Stream) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.streams[id] == stream {
		delete(s.streams, id)
	}
}

func (s *sessions) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.streams)
}
