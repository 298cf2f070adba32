package memory

import (
	"context"
	"sync"

	"airdrop-platform/internal/core/domain"
	"airdrop-platform/internal/core/port"
)

// platformWallet holds collected fees inside the fee bank.
const platformWallet = domain.PlatformAccount

type allowanceKey struct {
	asset    string
	owner    string
	delegate string
}

type balanceKey struct {
	asset  string
	holder string
}

// AllowanceLedger is an in-memory token ledger with delegated allowances.
// Debit and credit are each atomic under one mutex.
type AllowanceLedger struct {
	mu         sync.Mutex
	allowances map[allowanceKey]uint64
	balances   map[balanceKey]uint64
}

func NewAllowanceLedger() *AllowanceLedger {
	return &AllowanceLedger{
		allowances: make(map[allowanceKey]uint64),
		balances:   make(map[balanceKey]uint64),
	}
}

// Approve sets a delegated spend limit, replacing any previous approval.
func (l *AllowanceLedger) Approve(asset, owner, delegate string, amount uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.allowances[allowanceKey{asset, owner, delegate}] = amount
}

// Mint credits freshly created units to holder.
func (l *AllowanceLedger) Mint(asset, holder string, amount uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[balanceKey{asset, holder}] += amount
}

// Allowance returns the remaining delegated spend limit.
func (l *AllowanceLedger) Allowance(asset, owner, delegate string) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.allowances[allowanceKey{asset, owner, delegate}]
}

// Balance returns holder's balance of asset.
func (l *AllowanceLedger) Balance(asset, holder string) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[balanceKey{asset, holder}]
}

func (l *AllowanceLedger) DebitDelegated(ctx context.Context, asset, owner, delegate string, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	ak := allowanceKey{asset, owner, delegate}
	bk := balanceKey{asset, owner}
	if l.allowances[ak] < amount || l.balances[bk] < amount {
		return port.ErrInsufficientAllowance
	}
	l.allowances[ak] -= amount
	l.balances[bk] -= amount
	return nil
}

func (l *AllowanceLedger) CreditRecipient(ctx context.Context, asset, recipient string, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[balanceKey{asset, recipient}] += amount
	return nil
}

// FeeBank is an in-memory native-currency ledger for platform fees.
type FeeBank struct {
	mu      sync.Mutex
	wallets map[string]uint64
}

func NewFeeBank() *FeeBank {
	return &FeeBank{wallets: make(map[string]uint64)}
}

// Deposit credits native currency to holder.
func (b *FeeBank) Deposit(holder string, amount uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.wallets[holder] += amount
}

// Balance returns holder's native-currency balance.
func (b *FeeBank) Balance(holder string) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.wallets[holder]
}

func (b *FeeBank) ChargeFee(ctx context.Context, payer string, amount uint64) error {
	return b.transfer(payer, platformWallet, amount, port.ErrInsufficientFunds)
}

func (b *FeeBank) PayOut(ctx context.Context, recipient string, amount uint64) error {
	return b.transfer(platformWallet, recipient, amount, port.ErrTransferFailure)
}

func (b *FeeBank) transfer(from, to string, amount uint64, shortfall error) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.wallets[from] < amount {
		return shortfall
	}
	b.wallets[from] -= amount
	b.wallets[to] += amount
	return nil
}
