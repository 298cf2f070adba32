package port

import (
	"context"

	"airdrop-platform/internal/core/domain"
)

// PlatformStore persists the platform state machine as a snapshot. It is an
// outbound port; implementations must apply Save atomically so a crash
// never leaves a half-written snapshot behind.
type PlatformStore interface {
	// Load returns the persisted platform state, or (nil, nil) when the
	// platform has never been initialized.
	Load(ctx context.Context) (*domain.Platform, error)
	// Save replaces the persisted snapshot with p in a single transaction.
	Save(ctx context.Context, p *domain.Platform) error
}
