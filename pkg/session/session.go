// Package session keeps an authenticated session's access token fresh while
// the client is in the foreground. Clients report lifecycle transitions via
// Activate and Deactivate; while active, the manager refreshes the token ahead
// of its expiry, and while backgrounded no refresh traffic is generated.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// State is the client lifecycle state the manager is tracking.
type State int

const (
	// Background means no refreshes are scheduled.
	Background State = iota
	// Active means the manager keeps the token fresh.
	Active
)

func (s State) String() string {
	if s == Active {
		return "active"
	}
	return "background"
}

// RefreshFunc performs one token refresh and returns the new expiry.
type RefreshFunc func(ctx context.Context) (time.Time, error)

// ErrClosed is returned by Activate after Close.
var ErrClosed = errors.New("session manager closed")

const defaultRefreshLead = 30 * time.Second

// Manager drives token refreshes off the client lifecycle. The zero value is
// not usable; use NewManager.
type Manager struct {
	refresh RefreshFunc
	lead    time.Duration
	logger  *slog.Logger

	mu     sync.Mutex
	state  State
	expiry time.Time
	timer  *time.Timer
	closed bool
}

// Option configures a Manager.
type Option func(*Manager)

// WithRefreshLead sets how long before expiry the refresh fires.
func WithRefreshLead(lead time.Duration) Option {
	return func(m *Manager) { m.lead = lead }
}

// WithLogger sets the logger used for refresh outcomes.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) { m.logger = logger }
}

// NewManager creates a manager in the Background state. expiry is the current
// token's expiry; the zero time means no token is held yet and the first
// Activate refreshes immediately.
func NewManager(refresh RefreshFunc, expiry time.Time, opts ...Option) *Manager {
	m := &Manager{
		refresh: refresh,
		lead:    defaultRefreshLead,
		logger:  slog.Default(),
		state:   Background,
		expiry:  expiry,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State reports the current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Activate moves the session to the foreground. If the held token is already
// expired or inside the refresh lead it is refreshed synchronously, then the
// next refresh is scheduled. Activating an active session is a no-op.
func (m *Manager) Activate(ctx context.Context) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrClosed
	}
	if m.state == Active {
		m.mu.Unlock()
		return nil
	}
	m.state = Active
	needsRefresh := time.Until(m.expiry) <= m.lead
	m.mu.Unlock()

	if needsRefresh {
		if err := m.doRefresh(ctx); err != nil {
			return err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == Active && !m.closed {
		m.scheduleLocked()
	}
	return nil
}

// Deactivate moves the session to the background and stops the refresh timer.
// Deactivating a backgrounded session is a no-op.
func (m *Manager) Deactivate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = Background
	m.stopTimerLocked()
}

// Expiry reports the held token's expiry.
func (m *Manager) Expiry() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.expiry
}

// Close stops the manager for good.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.state = Background
	m.stopTimerLocked()
}

// doRefresh runs the refresh callback and stores the new expiry.
func (m *Manager) doRefresh(ctx context.Context) error {
	expiry, err := m.refresh(ctx)
	if err != nil {
		m.logger.Error("Session refresh failed", slog.String("error", err.Error()))
		return err
	}

	m.mu.Lock()
	m.expiry = expiry
	m.mu.Unlock()

	m.logger.Info("Session refreshed", slog.Time("expiry", expiry))
	return nil
}

// scheduleLocked arms the timer for the next refresh. Callers hold m.mu.
func (m *Manager) scheduleLocked() {
	m.stopTimerLocked()

	delay := time.Until(m.expiry) - m.lead
	if delay < 0 {
		delay = 0
	}

	m.timer = time.AfterFunc(delay, func() {
		m.mu.Lock()
		if m.state != Active || m.closed {
			m.mu.Unlock()
			return
		}
		m.mu.Unlock()

		// Best effort: a failed background refresh leaves the old expiry in
		// place and the next Activate retries synchronously.
		if err := m.doRefresh(context.Background()); err != nil {
			return
		}

		m.mu.Lock()
		defer m.mu.Unlock()
		if m.state == Active && !m.closed {
			m.scheduleLocked()
		}
	})
}

func (m *Manager) stopTimerLocked() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}
