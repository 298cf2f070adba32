package memory

import (
	"context"
	"sync"

	"airdrop-platform/internal/core/domain"
	"airdrop-platform/internal/core/port"
)

// EventRecorder stores audit events in memory and aggregates them on
// demand.
type EventRecorder struct {
	mu     sync.Mutex
	events []domain.Event
}

func NewEventRecorder() *EventRecorder {
	return &EventRecorder{}
}

func (r *EventRecorder) Record(ctx context.Context, ev domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return nil
}

// Events returns a copy of everything recorded so far.
func (r *EventRecorder) Events() []domain.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Event(nil), r.events...)
}

func (r *EventRecorder) Aggregate(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var resp port.StatsResp
	for _, ev := range r.events {
		if ev.CreatedAt.Before(req.From) || ev.CreatedAt.After(req.To) {
			continue
		}
		switch ev.Type {
		case domain.EventCampaignCreated:
			resp.CampaignsCreated++
			resp.FeesCollected += ev.Amount
		case domain.EventCampaignUpdated:
			resp.CampaignsUpdated++
			resp.FeesCollected += ev.Amount
		case domain.EventAirdrop:
			resp.Airdrops++
			resp.AmountDistributed += ev.Amount
		case domain.EventFeeWithdrawn:
			resp.FeesWithdrawn += ev.Amount
		}
	}
	return &resp, nil
}
