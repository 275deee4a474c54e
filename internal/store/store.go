package store

import (
	"bookstore/internal/logger"
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Listener observes each applied action. Listeners run on the dispatching goroutine while the
// store is locked, so they must not dispatch themselves.
type Listener func(prev, next State, a Action)

// Store owns one State and applies actions to it strictly one after another.
type Store struct {
	mu        sync.Mutex
	reducer   *Reducer
	state     State
	listeners []Listener
}

func New(reducer *Reducer, initial State) *Store {
	return &Store{reducer: reducer, state: initial}
}

// State returns the current snapshot. Snapshots are never modified afterwards, so callers may
// read them without further locking.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Dispatch applies the actions in order and returns the resulting state. No other dispatch can
// interleave with the batch.
func (s *Store) Dispatch(ctx context.Context, actions ...Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := logger.FromCtx(ctx)
	for _, a := range actions {
		prev := s.state
		s.state = s.reducer.Reduce(prev, a)
		log.Debug("action applied", zap.String("action", string(a.Type())))
		for _, l := range s.listeners {
			l(prev, s.state, a)
		}
	}
	return s.state
}

// DispatchAfter queues the actions to be dispatched once delay has elapsed and returns a channel
// that receives the resulting state. A scheduled dispatch cannot be withdrawn: cancelling ctx
// only detaches it from the caller, the actions are still applied.
func (s *Store) DispatchAfter(ctx context.Context, delay time.Duration, actions ...Action) <-chan State {
	done := make(chan State, 1)
	detached := context.WithoutCancel(ctx)
	time.AfterFunc(delay, func() {
		done <- s.Dispatch(detached, actions...)
		close(done)
	})
	return done
}
