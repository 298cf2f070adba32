package domain

import "slices"

// PlatformAccount is the identity under which the platform itself holds
// value: it is the delegate of campaign creators' token allowances and the
// owner of the collected fee balance.
const PlatformAccount = "platform"

// Platform is the singleton registry of the airdrop service: administrative
// configuration plus the ordered list of active campaigns. It is a pure
// state machine; all methods validate the caller and either apply the full
// transition or leave the receiver untouched. Persistence and external
// transfers are composed around it by the usecase layer.
type Platform struct {
	Admin          string
	FeePerAsset    uint64
	AccumulatedFee uint64
	Operators      []string
	Campaigns      []Campaign
}

// NewPlatform creates the platform record. The admin is the caller of the
// initialize operation and starts out as the only operator.
func NewPlatform(admin string, feePerAsset uint64) *Platform {
	return &Platform{
		Admin:       admin,
		FeePerAsset: feePerAsset,
		Operators:   []string{admin},
	}
}

// Clone returns a deep copy. Mutating the copy never affects the original,
// which lets callers stage a transition and discard it on failure.
func (p *Platform) Clone() *Platform {
	cp := *p
	cp.Operators = slices.Clone(p.Operators)
	cp.Campaigns = make([]Campaign, len(p.Campaigns))
	for i := range p.Campaigns {
		cp.Campaigns[i] = p.Campaigns[i].clone()
	}
	return &cp
}

// IsOperator reports whether id may adjust the fee rate and execute
// distributions. The admin is an operator regardless of the operator list.
func (p *Platform) IsOperator(id string) bool {
	return id == p.Admin || slices.Contains(p.Operators, id)
}

// Campaign returns the active campaign with the given id. Lookup is a
// linear scan; the campaign set is expected to stay small.
func (p *Platform) Campaign(id string) (*Campaign, bool) {
	for i := range p.Campaigns {
		if p.Campaigns[i].ID == id {
			return &p.Campaigns[i], true
		}
	}
	return nil, false
}

// SetOperators adds or removes operators pairwise: operators[i] is added
// when flags[i] is true and removed otherwise. Additions keep insertion
// order and are deduplicated; removals of absent identities are no-ops.
// Only the admin may call this.
func (p *Platform) SetOperators(caller string, operators []string, flags []bool) error {
	if caller != p.Admin {
		return ErrUnauthorized
	}
	if len(operators) != len(flags) {
		return ErrArgumentMismatch
	}
	for i, op := range operators {
		if flags[i] {
			if !slices.Contains(p.Operators, op) {
				p.Operators = append(p.Operators, op)
			}
		} else {
			p.Operators = slices.DeleteFunc(p.Operators, func(id string) bool {
				return id == op
			})
		}
	}
	return nil
}

// SetFeePerAsset replaces the per-entry fee rate. Any operator may call
// this; the new rate applies to subsequent create and update operations.
func (p *Platform) SetFeePerAsset(caller string, fee uint64) error {
	if !p.IsOperator(caller) {
		return ErrUnauthorized
	}
	p.FeePerAsset = fee
	return nil
}

// CreateCampaign registers a new campaign for the caller and returns the
// fee owed, feePerAsset per asset entry. The fee is added to the platform's
// accumulated balance; actually collecting it from the creator is the
// usecase layer's side of the transition.
func (p *Platform) CreateCampaign(creator, id string, assets []AssetEntry, startingTime int64) (uint64, error) {
	if _, ok := p.Campaign(id); ok {
		return 0, ErrDuplicateCampaign
	}
	if err := validateAssets(assets); err != nil {
		return 0, err
	}
	fee := p.FeePerAsset * uint64(len(assets))
	p.Campaigns = append(p.Campaigns, Campaign{
		ID:                   id,
		Creator:              creator,
		Assets:               slices.Clone(assets),
		StartingTime:         startingTime,
		TotalAvailableAssets: sumAmounts(assets),
	})
	p.AccumulatedFee += fee
	return fee, nil
}

// UpdateCampaign replaces the campaign's asset list and starting time
// wholesale and returns the fee owed for the new entry count. Only the
// campaign's creator may update it. The fee is charged on the new count,
// independent of what the campaign was charged before.
func (p *Platform) UpdateCampaign(caller, id string, assets []AssetEntry, startingTime int64) (uint64, error) {
	c, ok := p.Campaign(id)
	if !ok {
		return 0, ErrCampaignNotFound
	}
	if caller != c.Creator {
		return 0, ErrUnauthorized
	}
	if err := validateAssets(assets); err != nil {
		return 0, err
	}
	fee := p.FeePerAsset * uint64(len(assets))
	c.Assets = slices.Clone(assets)
	c.StartingTime = startingTime
	c.TotalAvailableAssets = sumAmounts(assets)
	p.AccumulatedFee += fee
	return fee, nil
}

// Distribution describes one executed airdrop: the full remaining amount of
// a single asset entry, paid out of the creator's delegated allowance.
type Distribution struct {
	CampaignID      string
	Creator         string
	AssetAddress    string
	Amount          uint64
	CampaignRemoved bool
}

// Airdrop drains the asset entry at assetIndex: the entry's entire
// remaining amount is withdrawn, the entry is spliced out of the list and
// the campaign is removed once its last entry is gone. Partial draws are
// not supported; creators wanting partial payouts must pre-split entries.
// Only operators may distribute, and only once now has reached the
// campaign's starting time.
func (p *Platform) Airdrop(caller, campaignID string, assetIndex int, now int64) (Distribution, error) {
	if !p.IsOperator(caller) {
		return Distribution{}, ErrUnauthorized
	}
	c, ok := p.Campaign(campaignID)
	if !ok {
		return Distribution{}, ErrCampaignNotFound
	}
	if now < c.StartingTime {
		return Distribution{}, ErrNotStarted
	}
	if assetIndex < 0 || assetIndex >= len(c.Assets) {
		return Distribution{}, ErrIndexOutOfRange
	}
	entry := c.Assets[assetIndex]
	if entry.AvailableAmount == 0 {
		return Distribution{}, ErrDepleted
	}

	c.Assets = slices.Delete(c.Assets, assetIndex, assetIndex+1)
	c.TotalAvailableAssets -= entry.AvailableAmount

	dist := Distribution{
		CampaignID:   campaignID,
		Creator:      c.Creator,
		AssetAddress: entry.AssetAddress,
		Amount:       entry.AvailableAmount,
	}
	if len(c.Assets) == 0 {
		p.Campaigns = slices.DeleteFunc(p.Campaigns, func(c Campaign) bool {
			return c.ID == campaignID
		})
		dist.CampaignRemoved = true
	}
	return dist, nil
}

// WithdrawFees zeroes the accumulated fee balance and returns the amount
// that was held. Admin only. Withdrawing an empty balance returns zero and
// is not an error.
func (p *Platform) WithdrawFees(caller string) (uint64, error) {
	if caller != p.Admin {
		return 0, ErrUnauthorized
	}
	amount := p.AccumulatedFee
	p.AccumulatedFee = 0
	return amount, nil
}
