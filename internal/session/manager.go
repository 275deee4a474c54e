// Package session keeps one store per connected client.
package session

import (
	"bookstore/internal/logger"
	"bookstore/internal/seed"
	"bookstore/internal/store"
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"
)

// Gauge tracks the number of live sessions. prometheus.Gauge satisfies it.
type Gauge interface {
	Inc()
	Dec()
}

type Manager struct {
	data      *seed.Data
	reducer   *store.Reducer
	cache     *expirable.LRU[string, *store.Store]
	listeners []store.Listener
	gauge     Gauge
}

type Option func(*Manager)

// WithListener subscribes l to every store the manager creates.
func WithListener(l store.Listener) Option {
	return func(m *Manager) { m.listeners = append(m.listeners, l) }
}

func WithGauge(g Gauge) Option {
	return func(m *Manager) { m.gauge = g }
}

// WithReducer replaces the reducer built from the seed history.
func WithReducer(r *store.Reducer) Option {
	return func(m *Manager) { m.reducer = r }
}

// NewManager keeps at most capacity sessions, each for ttl after it was created. The least
// recently used session is dropped when the cache is full; its state is lost.
func NewManager(data *seed.Data, capacity int, ttl time.Duration, opts ...Option) *Manager {
	m := &Manager{data: data}
	for _, opt := range opts {
		opt(m)
	}
	if m.reducer == nil {
		m.reducer = store.NewReducer(data.Orders(), data.Wishlist())
	}

	m.cache = expirable.NewLRU[string, *store.Store](capacity, m.evicted, ttl)
	return m
}

// Create starts a session at the initial state: catalog and accounts from the seed, nobody
// signed in.
func (m *Manager) Create(ctx context.Context) (string, *store.Store) {
	id := uuid.NewString()
	st := store.New(m.reducer, store.Initial(m.data.Books(), m.data.Users()))
	for _, l := range m.listeners {
		st.Subscribe(l)
	}

	m.cache.Add(id, st)
	if m.gauge != nil {
		m.gauge.Inc()
	}

	logger.FromCtx(ctx).Info("session created", zap.String("new_session_id", id))
	return id, st
}

// Rotate re-files the store of session id under a new id, keeping its state.
func (m *Manager) Rotate(ctx context.Context, id string) (string, bool) {
	st, ok := m.cache.Peek(id)
	if !ok {
		return "", false
	}
	m.cache.Remove(id)

	newID := uuid.NewString()
	m.cache.Add(newID, st)
	if m.gauge != nil {
		m.gauge.Inc()
	}

	logger.FromCtx(ctx).Info("session rotated", zap.String("new_session_id", newID))
	return newID, true
}

func (m *Manager) Get(id string) (*store.Store, bool) {
	return m.cache.Get(id)
}

func (m *Manager) Len() int {
	return m.cache.Len()
}

// evicted runs with the cache lock held.
func (m *Manager) evicted(id string, _ *store.Store) {
	if m.gauge != nil {
		m.gauge.Dec()
	}
	logger.L().Debug("session evicted", zap.String("session_id", id))
}
