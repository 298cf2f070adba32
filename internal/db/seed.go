package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"airdrop-platform/internal/core/domain"
)

// Seed loads demo wallets, token balances and platform allowances so a
// fresh database can serve create/airdrop calls right away. Identities are
// deterministic; asset addresses are random.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	const demoBalance = int64(100_000_000_000)

	for i := 1; i <= 3; i++ {
		creator := fmt.Sprintf("demo-creator-%d", i)
		_, err := pool.Exec(ctx,
			`INSERT INTO wallets (holder, balance) VALUES ($1, $2)
			 ON CONFLICT DO NOTHING`,
			creator, demoBalance)
		if err != nil {
			return err
		}

		// Two token assets per creator, fully approved for the platform.
		for j := 0; j < 2; j++ {
			asset := uuid.NewString()
			_, err = pool.Exec(ctx,
				`INSERT INTO asset_balances (asset_address, holder, amount)
				 VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
				asset, creator, demoBalance)
			if err != nil {
				return err
			}
			_, err = pool.Exec(ctx,
				`INSERT INTO allowances (asset_address, owner, delegate, remaining)
				 VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING`,
				asset, creator, domain.PlatformAccount, demoBalance)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
