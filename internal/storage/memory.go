package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/xaenox/meet-bot/internal/models"
)

type MemoryStorage struct {
	mu      sync.RWMutex
	session models.Session
	joins   map[string]*models.Join
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		joins: make(map[string]*models.Join),
	}
}

// Session methods
func (s *MemoryStorage) GetSession(ctx context.Context) (models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.session, nil
}

func (s *MemoryStorage) SaveSession(ctx context.Context, session models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = session
	return nil
}

// RecordJoin stores join under a new ID and forgets joins from earlier days.
func (s *MemoryStorage) RecordJoin(ctx context.Context, join *models.Join) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if join.ID == "" {
		join.ID = uuid.New().String()
	}
	if join.JoinedAt.IsZero() {
		join.JoinedAt = time.Now()
	}

	for id, j := range s.joins {
		if !models.SameDay(j.JoinedAt, join.JoinedAt) {
			delete(s.joins, id)
		}
	}

	stored := *join
	s.joins[join.ID] = &stored
	return nil
}

// JoinsOn returns the joins recorded on day, oldest first.
func (s *MemoryStorage) JoinsOn(ctx context.Context, day time.Time) ([]*models.Join, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.Join, 0, len(s.joins))
	for _, j := range s.joins {
		if models.SameDay(j.JoinedAt, day) {
			copied := *j
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, k int) bool {
		return result[i].JoinedAt.Before(result[k].JoinedAt)
	})
	return result, nil
}

func (s *MemoryStorage) Close() error {
	// Nothing to close for in-memory storage
	return nil
}
