package session

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"ecoshop-assistant/internal/router"
)

const (
	// DefaultMaxSessions bounds the number of concurrently tracked users.
	DefaultMaxSessions = 1000

	// DefaultTTL is how long an idle session survives before expiry.
	DefaultTTL = 30 * time.Minute
)

// Store is a bounded, TTL-evicting keyed store of per-user sessions.
// Safe for concurrent use; concurrent writers to the same user are
// last-write-wins, which is acceptable for advisory state.
type Store struct {
	mu       sync.Mutex
	sessions *expirable.LRU[string, *Session]
}

// NewStore creates a session store. maxSessions <= 0 and ttl <= 0 fall
// back to the defaults.
func NewStore(maxSessions int, ttl time.Duration) *Store {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		sessions: expirable.NewLRU[string, *Session](maxSessions, nil, ttl),
	}
}

// Get returns the session for a user, creating it lazily on first use.
func (s *Store) Get(userID string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions.Get(userID); ok {
		return sess
	}

	sess := &Session{UserID: userID}
	s.sessions.Add(userID, sess)
	return sess
}

// Record appends a message to the user's history and updates the last
// seen intent and category. History only grows within a session's
// lifetime; whole sessions expire by TTL or capacity eviction.
func (s *Store) Record(userID, message string, intent router.Intent, category string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions.Get(userID)
	if !ok {
		sess = &Session{UserID: userID}
	}

	sess.History = append(sess.History, Entry{Message: message, Timestamp: time.Now()})
	sess.LastIntent = intent
	if category != "" {
		sess.LastCategory = category
	}
	sess.LastUpdated = time.Now()

	// Re-add to refresh the TTL clock for active users.
	s.sessions.Add(userID, sess)
	return sess
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions.Len()
}
