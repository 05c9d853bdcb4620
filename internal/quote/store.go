package quote

import "sync"

// Store keeps issued quotes in memory so the document and PDF endpoints can
// serve them after submission. Quotes are immutable values, so handing out
// copies is safe.
type Store struct {
	mu     sync.RWMutex
	quotes map[string]Quote
}

// NewStore returns an empty quote store.
func NewStore() *Store {
	return &Store{quotes: make(map[string]Quote)}
}

// Put records an issued quote under its document reference.
func (s *Store) Put(q Quote) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quotes[q.ID] = q
}

// Get returns the quote with the given reference.
func (s *Store) Get(id string) (Quote, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.quotes[id]
	return q, ok
}
