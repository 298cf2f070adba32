// Package memory provides in-process implementations of the platform's
// outbound ports. They back the unit tests and are handy for local runs
// without a database.
package memory

import (
	"context"
	"sync"

	"airdrop-platform/internal/core/domain"
)

// PlatformStore keeps the platform snapshot in memory. Save stores a deep
// copy so later mutations of the live state never leak into the snapshot.
type PlatformStore struct {
	mu       sync.Mutex
	snapshot *domain.Platform
}

func NewPlatformStore() *PlatformStore {
	return &PlatformStore{}
}

func (s *PlatformStore) Load(ctx context.Context) (*domain.Platform, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot == nil {
		return nil, nil
	}
	return s.snapshot.Clone(), nil
}

func (s *PlatformStore) Save(ctx context.Context, p *domain.Platform) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = p.Clone()
	return nil
}
