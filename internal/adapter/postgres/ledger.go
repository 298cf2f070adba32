package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"airdrop-platform/internal/core/domain"
	"airdrop-platform/internal/core/port"
)

// AllowanceLedger implements the token ledger over the asset_balances and
// allowances tables. Each debit locks the allowance and owner-balance rows,
// so concurrent distributions against the same owner serialize at the
// database.
type AllowanceLedger struct {
	pool *pgxpool.Pool
}

func NewAllowanceLedger(pool *pgxpool.Pool) *AllowanceLedger {
	return &AllowanceLedger{pool: pool}
}

func (l *AllowanceLedger) DebitDelegated(ctx context.Context, asset, owner, delegate string, amount uint64) error {
	tx, err := l.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
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

	var remaining int64
	err = tx.QueryRow(ctx,
		`SELECT remaining FROM allowances
		 WHERE asset_address = $1 AND owner = $2 AND delegate = $3 FOR UPDATE`,
		asset, owner, delegate).Scan(&remaining)
	if errors.Is(err, pgx.ErrNoRows) || (err == nil && remaining < int64(amount)) {
		err = port.ErrInsufficientAllowance
		return err
	}
	if err != nil {
		return err
	}

	var balance int64
	err = tx.QueryRow(ctx,
		`SELECT amount FROM asset_balances
		 WHERE asset_address = $1 AND holder = $2 FOR UPDATE`,
		asset, owner).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) || (err == nil && balance < int64(amount)) {
		err = port.ErrInsufficientAllowance
		return err
	}
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`UPDATE allowances SET remaining = remaining - $1
		 WHERE asset_address = $2 AND owner = $3 AND delegate = $4`,
		int64(amount), asset, owner, delegate)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx,
		`UPDATE asset_balances SET amount = amount - $1
		 WHERE asset_address = $2 AND holder = $3`,
		int64(amount), asset, owner)
	return err
}

func (l *AllowanceLedger) CreditRecipient(ctx context.Context, asset, recipient string, amount uint64) error {
	_, err := l.pool.Exec(ctx,
		`INSERT INTO asset_balances (asset_address, holder, amount)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (asset_address, holder) DO UPDATE
		 SET amount = asset_balances.amount + $3`,
		asset, recipient, int64(amount))
	if err != nil {
		return port.ErrTransferFailure
	}
	return nil
}

// FeeBank implements native-currency fee transfers over the wallets table.
// Collected fees sit in the platform's own wallet row.
type FeeBank struct {
	pool *pgxpool.Pool
}

func NewFeeBank(pool *pgxpool.Pool) *FeeBank {
	return &FeeBank{pool: pool}
}

func (b *FeeBank) ChargeFee(ctx context.Context, payer string, amount uint64) error {
	return b.transfer(ctx, payer, domain.PlatformAccount, amount, port.ErrInsufficientFunds)
}

func (b *FeeBank) PayOut(ctx context.Context, recipient string, amount uint64) error {
	return b.transfer(ctx, domain.PlatformAccount, recipient, amount, port.ErrTransferFailure)
}

func (b *FeeBank) transfer(ctx context.Context, from, to string, amount uint64, shortfall error) error {
	tx, err := b.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
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

	var balance int64
	err = tx.QueryRow(ctx,
		`SELECT balance FROM wallets WHERE holder = $1 FOR UPDATE`,
		from).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) || (err == nil && balance < int64(amount)) {
		err = shortfall
		return err
	}
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`UPDATE wallets SET balance = balance - $1 WHERE holder = $2`,
		int64(amount), from)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx,
		`INSERT INTO wallets (holder, balance) VALUES ($1, $2)
		 ON CONFLICT (holder) DO UPDATE SET balance = wallets.balance + $2`,
		to, int64(amount))
	return err
}
