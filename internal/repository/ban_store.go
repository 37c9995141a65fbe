package repository

import (
	"context"
	"quiz_backend/internal/model"
	"sync"
)

// MemoryBanStore is the default single-process ban record store. It does not
// survive restarts and is not shared between instances; deployments that scale
// horizontally configure the redis store instead.
type MemoryBanStore struct {
	mu      sync.RWMutex
	records map[string]model.BanRecord
}

func NewMemoryBanStore() *MemoryBanStore {
	return &MemoryBanStore{records: make(map[string]model.BanRecord)}
}

func (s *MemoryBanStore) Get(ctx context.Context, addr string) (*model.BanRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[addr]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (s *MemoryBanStore) Set(ctx context.Context, addr string, rec model.BanRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[addr] = rec
	return nil
}

func (s *MemoryBanStore) Delete(ctx context.Context, addr string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, addr)
	return nil
}
