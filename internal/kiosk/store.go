package kiosk

import (
	"sync"

	"github.com/google/uuid"

	"aarka/internal/session"
)

type record struct {
	session   session.Session
	selection session.Selection
}

// Store keeps live kiosk sessions in process memory. Sessions are never
// persisted; they die with the process.
type Store struct {
	mu       sync.Mutex
	sessions map[string]record
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]record)}
}

func (s *Store) Create(sess session.Session) string {
	id := uuid.New().String()

	s.mu.Lock()
	s.sessions[id] = record{session: sess}
	s.mu.Unlock()

	return id
}

func (s *Store) Get(id string) (session.Session, session.Selection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.sessions[id]
	return rec.session, rec.selection, ok
}

// Update applies fn to the stored snapshot under the lock, so each
// intent fully replaces the snapshot before the next one is processed.
func (s *Store) Update(id string, fn func(session.Session, session.Selection) (session.Session, session.Selection)) (session.Session, session.Selection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.sessions[id]
	if !ok {
		return session.Session{}, session.Selection{}, false
	}

	rec.session, rec.selection = fn(rec.session, rec.selection)
	s.sessions[id] = rec
	return rec.session, rec.selection, true
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
