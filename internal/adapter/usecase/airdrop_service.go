package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"airdrop-platform/internal/core/domain"
	"airdrop-platform/internal/core/port"
)

// AirdropService implements port.AirdropUseCase. It holds the platform
// state machine in memory behind a single mutex, so every operation is one
// indivisible transition. Mutations are staged on a deep copy of the state:
// external calls (fee bank, allowance ledger) and the snapshot save all
// happen against the copy, and only a fully successful transition is
// swapped in. A failed external call or save therefore leaves the
// observable state exactly as it was.
type AirdropService struct {
	mu       sync.RWMutex
	platform *domain.Platform

	store  port.PlatformStore
	ledger port.AllowanceLedger
	fees   port.FeeBank
	events port.EventRecorder
	logger *slog.Logger

	// now supplies the current time for the NotStarted gate and event
	// timestamps. Overridden in tests.
	now func() time.Time
}

// NewAirdropService wires the service with its collaborators. Call Restore
// before serving traffic to pick up a previously persisted snapshot.
func NewAirdropService(store port.PlatformStore, ledger port.AllowanceLedger, fees port.FeeBank, events port.EventRecorder, logger *slog.Logger) *AirdropService {
	return &AirdropService{
		store:  store,
		ledger: ledger,
		fees:   fees,
		events: events,
		logger: logger,
		now:    time.Now,
	}
}

// Restore loads the persisted platform snapshot, if any. A nil snapshot
// means the platform has never been initialized, which is not an error.
func (s *AirdropService) Restore(ctx context.Context) error {
	p, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load platform snapshot: %w", err)
	}
	s.mu.Lock()
	s.platform = p
	s.mu.Unlock()
	return nil
}

// Initialize creates the platform singleton with the caller as admin.
func (s *AirdropService) Initialize(ctx context.Context, caller string, feePerAsset uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.platform != nil {
		return domain.ErrAlreadyInitialized
	}
	p := domain.NewPlatform(caller, feePerAsset)
	if err := s.store.Save(ctx, p); err != nil {
		return err
	}
	s.platform = p
	s.logger.Info("platform initialized",
		slog.String("admin", caller),
		slog.Uint64("fee_per_asset", feePerAsset))
	return nil
}

// SetOperators adds or removes operators pairwise. Admin only.
func (s *AirdropService) SetOperators(ctx context.Context, caller string, operators []string, flags []bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.platform == nil {
		return domain.ErrNotInitialized
	}
	next := s.platform.Clone()
	if err := next.SetOperators(caller, operators, flags); err != nil {
		return err
	}
	return s.commit(ctx, next)
}

// SetFeePerAsset replaces the per-entry fee. Operator only.
func (s *AirdropService) SetFeePerAsset(ctx context.Context, caller string, fee uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.platform == nil {
		return domain.ErrNotInitialized
	}
	next := s.platform.Clone()
	if err := next.SetFeePerAsset(caller, fee); err != nil {
		return err
	}
	return s.commit(ctx, next)
}

// CreateCampaign registers a campaign and collects the per-entry fee from
// the caller. The charge gates the registration: a failed charge leaves no
// campaign behind.
func (s *AirdropService) CreateCampaign(ctx context.Context, caller string, req port.CampaignReq) (*port.CampaignResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.platform == nil {
		return nil, domain.ErrNotInitialized
	}
	next := s.platform.Clone()
	fee, err := next.CreateCampaign(caller, req.ID, toEntries(req.Assets), req.StartingTime)
	if err != nil {
		return nil, err
	}
	if err := s.chargeFee(ctx, caller, fee); err != nil {
		return nil, err
	}
	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}
	s.record(ctx, domain.Event{
		Type:       domain.EventCampaignCreated,
		CampaignID: req.ID,
		Actor:      caller,
		Amount:     fee,
	})
	c, _ := next.Campaign(req.ID)
	return &port.CampaignResult{Campaign: toView(c), FeeCharged: fee}, nil
}

// UpdateCampaign replaces the caller's campaign definition wholesale and
// collects the per-entry fee for the new entry count.
func (s *AirdropService) UpdateCampaign(ctx context.Context, caller string, req port.CampaignReq) (*port.CampaignResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.platform == nil {
		return nil, domain.ErrNotInitialized
	}
	next := s.platform.Clone()
	fee, err := next.UpdateCampaign(caller, req.ID, toEntries(req.Assets), req.StartingTime)
	if err != nil {
		return nil, err
	}
	if err := s.chargeFee(ctx, caller, fee); err != nil {
		return nil, err
	}
	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}
	s.record(ctx, domain.Event{
		Type:       domain.EventCampaignUpdated,
		CampaignID: req.ID,
		Actor:      caller,
		Amount:     fee,
	})
	c, _ := next.Campaign(req.ID)
	return &port.CampaignResult{Campaign: toView(c), FeeCharged: fee}, nil
}

// Airdrop pays one asset entry's full remaining amount to the recipient.
// The ledger debit and credit gate the local state change: a ledger failure
// leaves campaign state, allowances and balances as they were.
func (s *AirdropService) Airdrop(ctx context.Context, caller, campaignID string, assetIndex int, recipient string) (*port.AirdropResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.platform == nil {
		return nil, domain.ErrNotInitialized
	}
	next := s.platform.Clone()
	dist, err := next.Airdrop(caller, campaignID, assetIndex, s.now().Unix())
	if err != nil {
		return nil, err
	}
	if err := s.ledger.DebitDelegated(ctx, dist.AssetAddress, dist.Creator, domain.PlatformAccount, dist.Amount); err != nil {
		return nil, err
	}
	if err := s.ledger.CreditRecipient(ctx, dist.AssetAddress, recipient, dist.Amount); err != nil {
		return nil, err
	}
	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}
	s.record(ctx, domain.Event{
		Type:         domain.EventAirdrop,
		CampaignID:   campaignID,
		Actor:        caller,
		AssetAddress: dist.AssetAddress,
		Amount:       dist.Amount,
		Recipient:    recipient,
	})
	return &port.AirdropResult{
		CampaignID:      campaignID,
		AssetAddress:    dist.AssetAddress,
		Amount:          dist.Amount,
		Recipient:       recipient,
		CampaignRemoved: dist.CampaignRemoved,
	}, nil
}

// WithdrawFee pays the accumulated fee balance to recipient. Admin only;
// withdrawing zero is a no-op.
func (s *AirdropService) WithdrawFee(ctx context.Context, caller, recipient string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.platform == nil {
		return 0, domain.ErrNotInitialized
	}
	next := s.platform.Clone()
	amount, err := next.WithdrawFees(caller)
	if err != nil {
		return 0, err
	}
	if amount > 0 {
		if err := s.fees.PayOut(ctx, recipient, amount); err != nil {
			return 0, err
		}
	}
	if err := s.commit(ctx, next); err != nil {
		return 0, err
	}
	if amount > 0 {
		s.record(ctx, domain.Event{
			Type:      domain.EventFeeWithdrawn,
			Actor:     caller,
			Amount:    amount,
			Recipient: recipient,
		})
	}
	return amount, nil
}

// GetPlatform returns the current administrative configuration.
func (s *AirdropService) GetPlatform(ctx context.Context) (*port.PlatformView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.platform == nil {
		return nil, domain.ErrNotInitialized
	}
	p := s.platform
	return &port.PlatformView{
		Admin:          p.Admin,
		Operators:      append([]string(nil), p.Operators...),
		FeePerAsset:    p.FeePerAsset,
		AccumulatedFee: p.AccumulatedFee,
		CampaignCount:  len(p.Campaigns),
	}, nil
}

// ListCampaigns returns active campaigns in creation order.
func (s *AirdropService) ListCampaigns(ctx context.Context) ([]port.CampaignView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.platform == nil {
		return nil, domain.ErrNotInitialized
	}
	views := make([]port.CampaignView, 0, len(s.platform.Campaigns))
	for i := range s.platform.Campaigns {
		views = append(views, toView(&s.platform.Campaigns[i]))
	}
	return views, nil
}

// GetCampaign returns one active campaign by id.
func (s *AirdropService) GetCampaign(ctx context.Context, id string) (*port.CampaignView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.platform == nil {
		return nil, domain.ErrNotInitialized
	}
	c, ok := s.platform.Campaign(id)
	if !ok {
		return nil, domain.ErrCampaignNotFound
	}
	v := toView(c)
	return &v, nil
}

// GetStats aggregates recorded events over the requested window.
func (s *AirdropService) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	return s.events.Aggregate(ctx, req)
}

// chargeFee collects a campaign fee from payer, translating the fee bank's
// shortfall error into the domain's InsufficientFee. Zero fees are skipped.
func (s *AirdropService) chargeFee(ctx context.Context, payer string, fee uint64) error {
	if fee == 0 {
		return nil
	}
	if err := s.fees.ChargeFee(ctx, payer, fee); err != nil {
		if errors.Is(err, port.ErrInsufficientFunds) {
			return domain.ErrInsufficientFee
		}
		return err
	}
	return nil
}

// commit persists the staged state and swaps it in. The in-memory state is
// only replaced after a successful save.
func (s *AirdropService) commit(ctx context.Context, next *domain.Platform) error {
	if err := s.store.Save(ctx, next); err != nil {
		return fmt.Errorf("save platform snapshot: %w", err)
	}
	s.platform = next
	return nil
}

// record stores an audit event. Failures are logged and swallowed: the
// operation the event describes has already committed.
func (s *AirdropService) record(ctx context.Context, ev domain.Event) {
	ev.ID = uuid.NewString()
	ev.CreatedAt = s.now().UTC()
	if err := s.events.Record(ctx, ev); err != nil {
		s.logger.Warn("record event",
			slog.String("type", string(ev.Type)),
			slog.Any("error", err))
	}
}

func toEntries(in []port.AssetInput) []domain.AssetEntry {
	out := make([]domain.AssetEntry, len(in))
	for i, a := range in {
		out[i] = domain.AssetEntry{AssetAddress: a.Address, AvailableAmount: a.Amount}
	}
	return out
}

func toView(c *domain.Campaign) port.CampaignView {
	assets := make([]port.AssetInput, len(c.Assets))
	for i, a := range c.Assets {
		assets[i] = port.AssetInput{Address: a.AssetAddress, Amount: a.AvailableAmount}
	}
	return port.CampaignView{
		ID:                   c.ID,
		Creator:              c.Creator,
		Assets:               assets,
		StartingTime:         c.StartingTime,
		TotalAvailableAssets: c.TotalAvailableAssets,
	}
}
