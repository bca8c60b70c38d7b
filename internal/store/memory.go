package store

import (
	"sync"

	"github.com/monjauro/app/internal/model"
)

// MemoryStore is an in-memory Store used in tests and anywhere a durable
// store is not wanted. Semantics mirror FileStore.
type MemoryStore struct {
	mu         sync.RWMutex
	injections []model.InjectionRecord
	nutrition  []model.NutritionEntry
	profile    *model.UserProfile
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) SaveInjection(rec model.InjectionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.injections = append(s.injections, rec)
	return nil
}

func (s *MemoryStore) Injections() ([]model.InjectionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.InjectionRecord, len(s.injections))
	copy(out, s.injections)
	return out, nil
}

func (s *MemoryStore) DeleteInjection(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.injections[:0]
	for _, rec := range s.injections {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	s.injections = kept
	return nil
}

func (s *MemoryStore) SaveNutritionEntry(entry model.NutritionEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nutrition = append(s.nutrition, entry)
	return nil
}

func (s *MemoryStore) NutritionEntries() ([]model.NutritionEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.NutritionEntry, len(s.nutrition))
	copy(out, s.nutrition)
	return out, nil
}

func (s *MemoryStore) DeleteNutritionEntry(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.nutrition[:0]
	for _, entry := range s.nutrition {
		if entry.ID != id {
			kept = append(kept, entry)
		}
	}
	s.nutrition = kept
	return nil
}

func (s *MemoryStore) SaveProfile(profile model.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = &profile
	return nil
}

func (s *MemoryStore) Profile() (*model.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return nil, ErrProfileNotFound
	}
	p := *s.profile
	return &p, nil
}

func (s *MemoryStore) Close() error {
	return nil
}

var _ Store = (*MemoryStore)(nil)
