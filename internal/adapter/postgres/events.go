package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"airdrop-platform/internal/core/domain"
	"airdrop-platform/internal/core/port"
)

// EventRecorder stores audit events in the events table and serves the
// aggregate stats query.
type EventRecorder struct {
	pool *pgxpool.Pool
}

func NewEventRecorder(pool *pgxpool.Pool) *EventRecorder {
	return &EventRecorder{pool: pool}
}

func (r *EventRecorder) Record(ctx context.Context, ev domain.Event) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO events (id, event_type, campaign_id, actor, asset_address, amount, recipient, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		ev.ID, string(ev.Type), ev.CampaignID, ev.Actor, ev.AssetAddress,
		int64(ev.Amount), ev.Recipient, ev.CreatedAt)
	return err
}

func (r *EventRecorder) Aggregate(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	var (
		created, updated, airdrops        int64
		distributed, collected, withdrawn int64
	)
	err := r.pool.QueryRow(ctx,
		`SELECT
			COALESCE(count(*) FILTER (WHERE event_type = $3), 0),
			COALESCE(count(*) FILTER (WHERE event_type = $4), 0),
			COALESCE(count(*) FILTER (WHERE event_type = $5), 0),
			COALESCE(sum(amount) FILTER (WHERE event_type = $5), 0),
			COALESCE(sum(amount) FILTER (WHERE event_type IN ($3, $4)), 0),
			COALESCE(sum(amount) FILTER (WHERE event_type = $6), 0)
		 FROM events
		 WHERE created_at >= $1 AND created_at <= $2`,
		req.From, req.To,
		string(domain.EventCampaignCreated),
		string(domain.EventCampaignUpdated),
		string(domain.EventAirdrop),
		string(domain.EventFeeWithdrawn),
	).Scan(&created, &updated, &airdrops, &distributed, &collected, &withdrawn)
	if err != nil {
		return nil, err
	}
	return &port.StatsResp{
		CampaignsCreated:  created,
		CampaignsUpdated:  updated,
		Airdrops:          airdrops,
		AmountDistributed: uint64(distributed),
		FeesCollected:     uint64(collected),
		FeesWithdrawn:     uint64(withdrawn),
	}, nil
}
