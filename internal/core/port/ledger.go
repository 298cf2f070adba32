package port

import (
	"context"
	"errors"

	"airdrop-platform/internal/core/domain"
)

var (
	// ErrInsufficientAllowance is returned by DebitDelegated when the
	// delegated spend limit cannot cover the requested amount.
	ErrInsufficientAllowance = errors.New("insufficient delegated allowance")
	// ErrTransferFailure is returned when a credit to a recipient cannot
	// be applied.
	ErrTransferFailure = errors.New("asset transfer failed")
	// ErrInsufficientFunds is returned by ChargeFee when the payer cannot
	// cover the amount.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// AllowanceLedger is the external token ledger the platform distributes
// through. Owners pre-approve the platform as delegate; distribution debits
// that allowance and credits the recipient. Each call must be atomic on its
// own; the usecase layer composes the two into one distribution.
type AllowanceLedger interface {
	DebitDelegated(ctx context.Context, asset, owner, delegate string, amount uint64) error
	CreditRecipient(ctx context.Context, asset, recipient string, amount uint64) error
}

// FeeBank moves native-currency fee amounts between callers and the
// platform's fee balance.
type FeeBank interface {
	// ChargeFee transfers amount from payer to the platform's fee balance.
	ChargeFee(ctx context.Context, payer string, amount uint64) error
	// PayOut transfers amount from the platform's fee balance to recipient.
	PayOut(ctx context.Context, recipient string, amount uint64) error
}

// EventRecorder stores audit events for completed operations and serves
// aggregate statistics over them. Recording is best-effort from the
// usecase's perspective: a failed Record never rolls back the operation.
type EventRecorder interface {
	Record(ctx context.Context, ev domain.Event) error
	Aggregate(ctx context.Context, req StatsReq) (*StatsResp, error)
}
