package web

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/hoehwa/internal/session"
)

// CookieName is the cookie carrying the browser's session id.
const CookieName = "hoehwa_session"

// entry guards one browser session. Its mutex is held only while state
// is read or mutated, never across a model call.
type entry struct {
	mu       sync.Mutex
	state    *session.State
	lastSeen time.Time
}

// Sessions maps cookie ids to isolated session state.
type Sessions struct {
	mu      sync.Mutex
	entries map[string]*entry
	maxIdle time.Duration
	now     func() time.Time
}

// NewSessions creates a store that forgets sessions idle for longer than
// maxIdle. A zero maxIdle keeps sessions for the life of the process.
func NewSessions(maxIdle time.Duration) *Sessions {
	return &Sessions{
		entries: make(map[string]*entry),
		maxIdle: maxIdle,
		now:     time.Now,
	}
}

// Len returns the number of live sessions.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// resolve returns the session for the request's cookie, creating one
// and setting the cookie when it is missing or unknown.
func (s *Sessions) resolve(w http.ResponseWriter, r *http.Request) *entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.pruneLocked(now)

	if c, err := r.Cookie(CookieName); err == nil {
		if e, ok := s.entries[c.Value]; ok {
			e.lastSeen = now
			return e
		}
	}

	id := uuid.New().String()
	st := session.NewState()
	st.ID = id
	e := &entry{state: st, lastSeen: now}
	s.entries[id] = e

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return e
}

func (s *Sessions) pruneLocked(now time.Time) {
	if s.maxIdle <= 0 {
		return
	}
	for id, e := range s.entries {
		if now.Sub(e.lastSeen) > s.maxIdle {
			delete(s.entries, id)
		}
	}
}
