// Package session holds per-browser-session state behind opaque cookie
// tokens: the logged-in customer's identity, the cached admin flag, the cart
// and one-shot notices. Nothing here is durable; a restart logs everyone out.
package session

import (
	"sync"
	"time"

	"pastelaria/internal/domain"
	"github.com/google/uuid"
)

// Notice is a transient one-shot message surfaced to the user on the next
// response that drains it.
type Notice struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Session is the per-browser state. The admin flag is cached here at login
// and is not re-checked against the credential store per request: revoking
// admin status takes effect only when the affected session logs in again.
type Session struct {
	Token        string
	CustomerID   int64
	CustomerName string
	IsAdmin      bool
	Cart         domain.Cart
	Notices      []Notice
	ExpiresAt    time.Time
}

// Authenticated reports whether the session carries a customer identity.
func (s *Session) Authenticated() bool {
	return s != nil && s.CustomerID != 0
}

// Flash appends a one-shot notice.
func (s *Session) Flash(kind, message string) {
	s.Notices = append(s.Notices, Notice{Kind: kind, Message: message})
}

// Manager is an in-memory session store keyed by random tokens.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]Session
	ttl      time.Duration
}

func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		sessions: make(map[string]Session),
		ttl:      ttl,
	}
}

// TTL returns the session lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Start creates and stores a fresh session with a new token and an empty
// cart.
func (m *Manager) Start() Session {
	s := Session{
		Token:     uuid.NewString(),
		Cart:      domain.NewCart(),
		ExpiresAt: time.Now().Add(m.ttl),
	}
	m.mu.Lock()
	m.sessions[s.Token] = s
	m.mu.Unlock()
	return s
}

// Get returns a copy of the session for the token, dropping it when expired.
// Callers mutate the copy and write it back with Save; concurrent requests in
// the same session are last-write-wins.
func (m *Manager) Get(token string) (Session, bool) {
	m.mu.RLock()
	s, ok := m.sessions[token]
	m.mu.RUnlock()
	if !ok {
		return Session{}, false
	}
	if time.Now().After(s.ExpiresAt) {
		m.Destroy(token)
		return Session{}, false
	}
	s.Cart = s.Cart.Clone()
	s.Notices = append([]Notice(nil), s.Notices...)
	return s, true
}

// Save writes the session back to the store. Saving an unknown or destroyed
// token is a no-op.
func (m *Manager) Save(s Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[s.Token]; !ok {
		return
	}
	m.sessions[s.Token] = s
}

// Destroy removes the session, clearing identity and cart together.
func (m *Manager) Destroy(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}

// PopNotices drains the session's pending notices and persists the drained
// state.
func (m *Manager) PopNotices(s *Session) []Notice {
	notices := s.Notices
	s.Notices = nil
	m.Save(*s)
	return notices
}
