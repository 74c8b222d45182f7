// Package session keeps the per-user state of the interactive split flow:
// the uploaded image and the slices of the latest split.
//
// A Session is a value. The store never mutates one in place; uploads and
// splits swap in a new value, so a snapshot returned by Get stays
// consistent for as long as the caller holds it.
package session

import (
	"container/list"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kiesman99/imgsplit/internal/splitter"
)

var (
	// ErrNotFound is returned for unknown or expired session ids
	ErrNotFound = errors.New("session not found")
	// ErrStale is returned when the session image changed while its split
	// was running
	ErrStale = errors.New("session image changed during split")
)

// State is the position of a session in the upload/split flow
type State string

const (
	// Loaded sessions hold an image but no slices
	Loaded State = "loaded"
	// Split sessions hold the slices of their latest split
	Split State = "split"
)

// Session is an immutable snapshot of one user's state
type Session struct {
	ID        string
	Source    *splitter.Source
	Result    *splitter.Result
	CreatedAt time.Time
	UpdatedAt time.Time
}

// State reports whether the session has been split
func (s Session) State() State {
	if s.Result != nil {
		return Split
	}
	return Loaded
}

type entry struct {
	session  Session
	elem     *list.Element
	lastUsed time.Time
}

// Store is an in-memory session store with idle expiry and a capacity
// bound. The least recently used session is evicted when full.
//
// Store is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	lru      *list.List // front = most recently used, values are ids
	ttl      time.Duration
	max      int
	now      func() time.Time
}

// NewStore creates a store. Sessions not accessed for longer than ttl
// expire.
func NewStore(ttl time.Duration, maxSessions int) *Store {
	return &Store{
		sessions: make(map[string]*entry),
		lru:      list.New(),
		ttl:      ttl,
		max:      maxSessions,
		now:      time.Now,
	}
}

// Create stores a new session holding src
func (s *Store) Create(src *splitter.Source) Session {
	now := s.now()
	sess := Session{
		ID:        uuid.NewString(),
		Source:    src,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for s.max > 0 && len(s.sessions) >= s.max {
		s.evictOldest()
	}
	s.sessions[sess.ID] = &entry{session: sess, elem: s.lru.PushFront(sess.ID), lastUsed: now}

	return sess
}

// Get returns the session with the given id
func (s *Store) Get(id string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.lookup(id)
	if err != nil {
		return Session{}, err
	}
	s.touch(e)
	return e.session, nil
}

// ReplaceSource swaps the session image and drops any previous slices
func (s *Store) ReplaceSource(id string, src *splitter.Source) (Session, error) {
	return s.update(id, func(sess *Session) error {
		sess.Source = src
		sess.Result = nil
		return nil
	})
}

// SetResult stores the slices of a split of src, replacing earlier ones.
// It fails with ErrStale when the session no longer holds src.
func (s *Store) SetResult(id string, src *splitter.Source, result *splitter.Result) (Session, error) {
	return s.update(id, func(sess *Session) error {
		if sess.Source != src {
			return ErrStale
		}
		sess.Result = result
		return nil
	})
}

// Delete removes a session. It reports whether the session existed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return false
	}
	s.remove(id, e)
	return true
}

// Len returns the number of stored sessions, expired ones included until
// the next Sweep
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep removes every expired session and returns how many were removed
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, e := range s.sessions {
		if s.expired(e) {
			s.remove(id, e)
			removed++
		}
	}
	return removed
}

// Run sweeps expired sessions every interval until done is closed
func (s *Store) Run(interval time.Duration, done <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

func (s *Store) update(id string, fn func(*Session) error) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.lookup(id)
	if err != nil {
		return Session{}, err
	}

	next := e.session
	if err := fn(&next); err != nil {
		return Session{}, err
	}
	next.UpdatedAt = s.now()

	e.session = next
	s.touch(e)
	return next, nil
}

// lookup must be called with mu held for writing
func (s *Store) lookup(id string) (*entry, error) {
	e, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	if s.expired(e) {
		s.remove(id, e)
		return nil, ErrNotFound
	}
	return e, nil
}

func (s *Store) touch(e *entry) {
	e.lastUsed = s.now()
	s.lru.MoveToFront(e.elem)
}

func (s *Store) expired(e *entry) bool {
	return s.ttl > 0 && s.now().Sub(e.lastUsed) > s.ttl
}

func (s *Store) evictOldest() {
	back := s.lru.Back()
	if back == nil {
		return
	}
	id := back.Value.(string)
	s.remove(id, s.sessions[id])
}

func (s *Store) remove(id string, e *entry) {
	s.lru.Remove(e.elem)
	delete(s.sessions, id)
}
