// Package session is the client-side auth context: it holds the current
// session decoded from the persisted token, restores it on startup and
// exposes login/logout. Decoding here never verifies the signature — the
// client has no secret. It is a convenience read only; the server re-checks
// every request.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/edupract/exam_platform/internal/models"
	"github.com/edupract/exam_platform/internal/tokens"
)

// Session is the claims set cached for the lifetime of the process.
type Session struct {
	UserID    int64
	Name      string
	Role      models.Role
	ExpiresAt time.Time
}

// Manager owns the in-memory session and its persisted backing store.
// The UI event model is single-threaded; Manager methods are called from
// one goroutine.
type Manager struct {
	store Store
	now   func() time.Time

	loading bool
	token   string
	session *Session
}

func NewManager(store Store) *Manager {
	return &Manager{store: store, now: time.Now, loading: true}
}

// Restore reads the persisted token once at startup. A missing token leaves
// the session empty; an expired one is discarded and removed from storage.
// Loading reports false as soon as Restore returns, success or not.
func (m *Manager) Restore() error {
	defer func() { m.loading = false }()

	token, err := m.store.Read()
	if err != nil {
		if errors.Is(err, ErrNoToken) {
			return nil
		}
		return err
	}

	claims, err := tokens.Decode(token)
	if err != nil || claims.ExpiredAt(m.now()) {
		// Stale or unreadable token: clear it so the next start is clean.
		if clearErr := m.store.Clear(); clearErr != nil {
			return clearErr
		}
		return nil
	}

	m.token = token
	m.session = sessionFromClaims(claims)
	return nil
}

// Login persists the token and populates the session from its decoded
// claims. No network call happens here; the token must already have been
// obtained from the server.
func (m *Manager) Login(token string) error {
	claims, err := tokens.Decode(token)
	if err != nil {
		return fmt.Errorf("decode token: %w", err)
	}
	if err := m.store.Write(token); err != nil {
		return err
	}
	m.token = token
	m.session = sessionFromClaims(claims)
	return nil
}

// Logout clears the in-memory session and the persisted token. Calling it
// on an already-empty session is a no-op.
func (m *Manager) Logout() error {
	m.token = ""
	m.session = nil
	return m.store.Clear()
}

// Session returns the current session, or nil when logged out. A session
// whose expiry has passed is treated as absent.
func (m *Manager) Session() *Session {
	if m.session == nil {
		return nil
	}
	if !m.now().Before(m.session.ExpiresAt) {
		return nil
	}
	return m.session
}

// Token returns the raw token for outgoing request headers, empty when
// logged out.
func (m *Manager) Token() string {
	if m.Session() == nil {
		return ""
	}
	return m.token
}

// Loading is true only between construction and the completion of Restore.
func (m *Manager) Loading() bool {
	return m.loading
}

func sessionFromClaims(c *tokens.Claims) *Session {
	s := &Session{
		UserID: c.UserID,
		Name:   c.Name,
		Role:   c.Role,
	}
	if c.ExpiresAt != nil {
		s.ExpiresAt = c.ExpiresAt.Time
	}
	return s
}
