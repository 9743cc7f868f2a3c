package profile

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/abhisek/pathwise/internal/domain"
)

// MemoryStore is an in-process Store for tests and dry runs. Profiles
// are deep-copied on both load and save so callers never share state
// with the store.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{profiles: make(map[string][]byte)}
}

func (s *MemoryStore) Load(_ context.Context, userID string) (*domain.UserProfile, error) {
	s.mu.RLock()
	data, ok := s.profiles[safeKey(userID)]
	s.mu.RUnlock()

	if !ok {
		return domain.NewUserProfile(userID)
	}

	var p domain.UserProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, &StorageError{Op: "load", Key: userID, Err: err}
	}
	if p.Skills == nil {
		p.Skills = make(map[string]*domain.SkillProgress)
	}
	return &p, nil
}

func (s *MemoryStore) Save(_ context.Context, p *domain.UserProfile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return &StorageError{Op: "save", Key: p.UserID, Err: err}
	}

	s.mu.Lock()
	s.profiles[safeKey(p.UserID)] = data
	s.mu.Unlock()
	return nil
}

// Len returns how many profiles are stored.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.profiles)
}
