// Package analysis holds completed tender analyses for later retrieval and
// report rendering. Results live in memory only; a restart loses them, which
// callers are told about in the not-found message.
package analysis

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/mbeaulieu/ao-analyzer/internal/models"
)

// Store maps analysis ids to completed analyses. Entries are written exactly
// once at creation and read-only afterwards, so a plain RWMutex suffices.
type Store struct {
	mu       sync.RWMutex
	analyses map[string]*models.TenderAnalysis
}

func NewStore() *Store {
	return &Store{analyses: make(map[string]*models.TenderAnalysis)}
}

// NewID returns a fresh analysis id. Random tokens make write collisions a
// non-issue.
func NewID() string {
	return "ana_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
}

func (s *Store) Put(a *models.TenderAnalysis) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analyses[a.ID] = a
}

func (s *Store) Get(id string) (*models.TenderAnalysis, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.analyses[id]
	return a, ok
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.analyses)
}
