// Package postgres implements the platform's outbound ports on top of
// PostgreSQL via pgx. All mutations run in serializable transactions;
// balance updates lock the affected rows.
package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"airdrop-platform/internal/core/domain"
)

// PlatformStore persists the platform state machine as a normalized
// snapshot across the platform, platform_operators, campaigns and
// campaign_assets tables. Save rewrites the snapshot wholesale in one
// transaction; the state is small (one record plus a short campaign list),
// so a rewrite is cheaper than diffing.
type PlatformStore struct {
	pool *pgxpool.Pool
}

func NewPlatformStore(pool *pgxpool.Pool) *PlatformStore {
	return &PlatformStore{pool: pool}
}

func (s *PlatformStore) Load(ctx context.Context) (*domain.Platform, error) {
	p := &domain.Platform{}
	var feePerAsset, accumulated int64
	err := s.pool.QueryRow(ctx,
		`SELECT admin, fee_per_asset, accumulated_fee FROM platform WHERE id = 1`,
	).Scan(&p.Admin, &feePerAsset, &accumulated)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p.FeePerAsset = uint64(feePerAsset)
	p.AccumulatedFee = uint64(accumulated)

	rows, err := s.pool.Query(ctx,
		`SELECT identity FROM platform_operators ORDER BY position`)
	if err != nil {
		return nil, err
	}
	p.Operators, err = pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, err
	}

	rows, err = s.pool.Query(ctx,
		`SELECT campaign_id, creator, starting_time, total_available
		 FROM campaigns ORDER BY position`)
	if err != nil {
		return nil, err
	}
	p.Campaigns, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		var c domain.Campaign
		var total int64
		err := row.Scan(&c.ID, &c.Creator, &c.StartingTime, &total)
		c.TotalAvailableAssets = uint64(total)
		return c, err
	})
	if err != nil {
		return nil, err
	}

	for i := range p.Campaigns {
		rows, err = s.pool.Query(ctx,
			`SELECT asset_address, available_amount
			 FROM campaign_assets WHERE campaign_id = $1 ORDER BY position`,
			p.Campaigns[i].ID)
		if err != nil {
			return nil, err
		}
		p.Campaigns[i].Assets, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AssetEntry, error) {
			var a domain.AssetEntry
			var amount int64
			err := row.Scan(&a.AssetAddress, &amount)
			a.AvailableAmount = uint64(amount)
			return a, err
		})
		if err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (s *PlatformStore) Save(ctx context.Context, p *domain.Platform) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	_, err = tx.Exec(ctx,
		`INSERT INTO platform (id, admin, fee_per_asset, accumulated_fee)
		 VALUES (1, $1, $2, $3)
		 ON CONFLICT (id) DO UPDATE
		 SET admin = $1, fee_per_asset = $2, accumulated_fee = $3`,
		p.Admin, int64(p.FeePerAsset), int64(p.AccumulatedFee))
	if err != nil {
		return err
	}

	if _, err = tx.Exec(ctx, `DELETE FROM platform_operators`); err != nil {
		return err
	}
	for i, op := range p.Operators {
		_, err = tx.Exec(ctx,
			`INSERT INTO platform_operators (position, identity) VALUES ($1, $2)`,
			i, op)
		if err != nil {
			return err
		}
	}

	// campaign_assets cascades from campaigns
	if _, err = tx.Exec(ctx, `DELETE FROM campaigns`); err != nil {
		return err
	}
	for i := range p.Campaigns {
		c := &p.Campaigns[i]
		_, err = tx.Exec(ctx,
			`INSERT INTO campaigns (campaign_id, creator, starting_time, total_available, position)
			 VALUES ($1, $2, $3, $4, $5)`,
			c.ID, c.Creator, c.StartingTime, int64(c.TotalAvailableAssets), i)
		if err != nil {
			return err
		}
		for j, a := range c.Assets {
			_, err = tx.Exec(ctx,
				`INSERT INTO campaign_assets (campaign_id, position, asset_address, available_amount)
				 VALUES ($1, $2, $3, $4)`,
				c.ID, j, a.AssetAddress, int64(a.AvailableAmount))
			if err != nil {
				return err
			}
		}
	}
	return nil
}
