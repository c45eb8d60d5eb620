package cardform

import (
	"context"
	"sync"
	"sync/atomic"
)

// Stream fans field events out to subscribed forms. It is the observable side
// of a form's inputs: HTTP handlers publish, the goroutine that owns the Form
// subscribes.
//
// Publish never blocks. When a subscriber's buffer is full the event is
// dropped for that subscriber and counted; the subscription stays open.
// All methods are safe for concurrent use.
type Stream struct {
	subscribers map[*Subscription]struct{}
	bufferSize  int
	closed      bool
	done        chan struct{}
	dropped     atomic.Uint64
	mu          sync.RWMutex
	cleanupWg   sync.WaitGroup
}

// NewStream creates a stream with the given per-subscriber buffer.
// A minimum buffer size of 1 is enforced.
func NewStream(bufferSize int) *Stream {
	return &Stream{
		subscribers: make(map[*Subscription]struct{}),
		bufferSize:  max(bufferSize, 1),
		done:        make(chan struct{}),
	}
}

// Subscribe registers a subscriber. The subscription is released when ctx is
// cancelled, when Close is called on it, or when the stream closes.
// Subscribing to a closed stream returns an already closed subscription.
func (s *Stream) Subscribe(ctx context.Context) *Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub := &Subscription{stream: s, ch: make(chan Event, s.bufferSize)}
	if s.closed {
		sub.close()
		return sub
	}
	s.subscribers[sub] = struct{}{}

	if ctx.Done() != nil {
		s.cleanupWg.Add(1)
		go func() {
			defer s.cleanupWg.Done()
			select {
			case <-ctx.Done():
				s.unsubscribe(sub)
			case <-s.done:
			}
		}()
	}

	return sub
}

// Publish delivers an event to every subscriber.
func (s *Stream) Publish(ctx context.Context, ev Event) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return ErrStreamClosed
	}
	for sub := range s.subscribers {
		if !sub.send(ev) {
			s.dropped.Add(1)
		}
	}
	return nil
}

// Subscribers returns the number of active subscriptions.
func (s *Stream) Subscribers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subscribers)
}

// Dropped returns how many deliveries were skipped because of full buffers.
func (s *Stream) Dropped() uint64 {
	return s.dropped.Load()
}

// Close closes every subscription. It is safe to call more than once.
func (s *Stream) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.done)
	for sub := range s.subscribers {
		sub.close()
	}
	clear(s.subscribers)
	s.mu.Unlock()

	s.cleanupWg.Wait()
	return nil
}

func (s *Stream) unsubscribe(sub *Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subscribers, sub)
	sub.close()
}

// Subscription receives events from a Stream.
type Subscription struct {
	stream *Stream
	ch     chan Event
	closed bool
	mu     sync.RWMutex
}

// Events returns the receive channel. It is closed when the subscription ends.
func (s *Subscription) Events() <-chan Event {
	return s.ch
}

// Close releases the subscription. It is idempotent.
func (s *Subscription) Close() error {
	s.stream.unsubscribe(s)
	return nil
}

func (s *Subscription) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		close(s.ch)
		s.closed = true
	}
}

func (s *Subscription) send(ev Event) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return false
	}
	select {
	case s.ch <- ev:
		return true
	default:
		return false
	}
}
