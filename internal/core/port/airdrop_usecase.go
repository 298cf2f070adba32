package port

import (
	"context"
	"time"
)

// AirdropUseCase defines the business operations exposed by the airdrop
// platform. This interface is the primary port into the application domain;
// the HTTP layer depends on it and mock implementations can be written
// against it for testing. Every mutating operation takes the caller
// identity explicitly — authorization is part of the operation contract and
// is checked before any state changes.
type AirdropUseCase interface {
	// Initialize creates the platform singleton with the caller as admin
	// and sole operator. Calling it twice fails.
	Initialize(ctx context.Context, caller string, feePerAsset uint64) error

	// SetOperators adds or removes operators pairwise; operators[i] is
	// added when flags[i] is true, removed otherwise. Admin only.
	SetOperators(ctx context.Context, caller string, operators []string, flags []bool) error

	// SetFeePerAsset replaces the per-entry campaign fee. Operator only.
	SetFeePerAsset(ctx context.Context, caller string, fee uint64) error

	// CreateCampaign registers a campaign owned by the caller and charges
	// feePerAsset for every asset entry. The charge and the registration
	// are all-or-nothing.
	CreateCampaign(ctx context.Context, caller string, req CampaignReq) (*CampaignResult, error)

	// UpdateCampaign replaces the asset list and starting time of the
	// caller's campaign wholesale and charges the per-entry fee again for
	// the new entry count.
	UpdateCampaign(ctx context.Context, caller string, req CampaignReq) (*CampaignResult, error)

	// Airdrop pays the full remaining amount of one asset entry, addressed
	// by position, to the recipient out of the creator's delegated
	// allowance. Operator only, and only after the campaign's starting
	// time. Draining the last entry removes the campaign.
	Airdrop(ctx context.Context, caller, campaignID string, assetIndex int, recipient string) (*AirdropResult, error)

	// WithdrawFee pays the entire accumulated fee balance to recipient and
	// resets it to zero. Admin only; an empty balance is a no-op, not an
	// error. Returns the amount paid out.
	WithdrawFee(ctx context.Context, caller, recipient string) (uint64, error)

	// GetPlatform returns the current administrative configuration.
	GetPlatform(ctx context.Context) (*PlatformView, error)
	// ListCampaigns returns active campaigns in creation order.
	ListCampaigns(ctx context.Context) ([]CampaignView, error)
	// GetCampaign returns one active campaign by id.
	GetCampaign(ctx context.Context, id string) (*CampaignView, error)
	// GetStats aggregates recorded platform events over a time window.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

// AssetInput is one requested asset entry at campaign creation or update.
type AssetInput struct {
	Address string
	Amount  uint64
}

// CampaignReq carries the client-supplied campaign definition.
type CampaignReq struct {
	ID           string
	Assets       []AssetInput
	StartingTime int64
}

// CampaignView is the read-side representation of an active campaign.
type CampaignView struct {
	ID                   string
	Creator              string
	Assets               []AssetInput
	StartingTime         int64
	TotalAvailableAssets uint64
}

// CampaignResult is returned by create and update operations.
type CampaignResult struct {
	Campaign   CampaignView
	FeeCharged uint64
}

// AirdropResult describes one executed distribution.
type AirdropResult struct {
	CampaignID      string
	AssetAddress    string
	Amount          uint64
	Recipient       string
	CampaignRemoved bool
}

// PlatformView is the read-side representation of the platform record.
type PlatformView struct {
	Admin          string
	Operators      []string
	FeePerAsset    uint64
	AccumulatedFee uint64
	CampaignCount  int
}

// StatsReq selects the aggregation window for GetStats.
type StatsReq struct {
	From time.Time
	To   time.Time
}

// StatsResp contains aggregate counters derived from recorded events.
// Amounts are sums in the respective integer base units.
type StatsResp struct {
	CampaignsCreated  int64
	CampaignsUpdated  int64
	Airdrops          int64
	AmountDistributed uint64
	FeesCollected     uint64
	FeesWithdrawn     uint64
}
