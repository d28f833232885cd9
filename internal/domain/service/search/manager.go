package search

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"saftz/internal/domain"
	"saftz/internal/domain/value"
	"saftz/pkg/logx"
)

const (
	DefaultSessionTTL      = 30 * time.Minute
	DefaultCleanupInterval = 5 * time.Minute
)

type ManagerConfig struct {
	// TTL is the idle time after which a session is torn down. Every Get
	// restarts it.
	TTL             time.Duration
	CleanupInterval time.Duration
}

// Manager хранит сессии в памяти. Вытеснение по TTL, удаление и остановка
// сервиса закрывают сессию, то есть гасят её таймеры.
type Manager struct {
	ctx      context.Context //nolint:containedctx // parent of all session goroutines
	sessions *cache.Cache
	opts     Options

	mu     sync.RWMutex
	closed bool
}

var ErrManagerClosed = errors.New("session manager is closed")

func NewManager(ctx context.Context, cfg ManagerConfig, opts Options) *Manager {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultSessionTTL
	}

	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = DefaultCleanupInterval
	}

	sessions := cache.New(cfg.TTL, cfg.CleanupInterval)
	sessions.OnEvicted(func(_ string, v any) {
		if s, ok := v.(*Session); ok {
			s.Close()
		}
	})

	return &Manager{
		ctx:      ctx,
		sessions: sessions,
		opts:     opts,
	}
}

// Create registers a new idle session. After Close it fails with a
// conflict, so no session can outlive the manager.
func (m *Manager) Create(ctx context.Context) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, domain.ErrShuttingDown()
	}

	id := value.NewSessionID()
	s := NewSession(m.ctx, id, m.opts)

	m.sessions.Set(id.String(), s, cache.DefaultExpiration)

	logger(ctx).Info("session created", logx.Stringer(logx.FieldSessionID, id))

	return s, nil
}

// Get returns the session and restarts its idle TTL.
func (m *Manager) Get(_ context.Context, id value.SessionID) (*Session, error) {
	v, ok := m.sessions.Get(id.String())
	if !ok {
		return nil, domain.ErrSessionNotFound(id)
	}

	s, ok := v.(*Session)
	if !ok || s.Closed() {
		return nil, domain.ErrSessionNotFound(id)
	}

	// Replace (not Set) so a concurrently deleted session is not resurrected.
	if err := m.sessions.Replace(id.String(), s, cache.DefaultExpiration); err != nil {
		return nil, domain.ErrSessionNotFound(id)
	}

	return s, nil
}

// Delete tears the session down and forgets it.
func (m *Manager) Delete(ctx context.Context, id value.SessionID) error {
	if _, ok := m.sessions.Get(id.String()); !ok {
		return domain.ErrSessionNotFound(id)
	}

	m.sessions.Delete(id.String())

	logger(ctx).Info("session deleted", logx.Stringer(logx.FieldSessionID, id))

	return nil
}

func (m *Manager) Len() int {
	return m.sessions.ItemCount()
}

// Ready reports whether new sessions are accepted.
func (m *Manager) Ready(context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return ErrManagerClosed
	}

	return nil
}

// Close tears down every session. It is called on shutdown.
func (m *Manager) Close(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true

	items := m.sessions.Items()

	for id := range items {
		m.sessions.Delete(id)
	}

	logger(ctx).Info("sessions closed", slog.Int("count", len(items)))
}
