package domain

import "slices"

// AssetEntry is one positional pledge of a quantity of an asset within a
// campaign. Entries are addressed by their index in the campaign's asset
// list, so two entries for the same asset address are tracked independently
// and never merged.
type AssetEntry struct {
	AssetAddress    string
	AvailableAmount uint64
}

// Campaign is a creator-defined, time-gated, multi-asset giveaway.
// Amounts are stored in integer base units of the respective asset.
type Campaign struct {
	ID                   string
	Creator              string
	Assets               []AssetEntry
	StartingTime         int64 // unix seconds
	TotalAvailableAssets uint64
}

func (c *Campaign) clone() Campaign {
	cp := *c
	cp.Assets = slices.Clone(c.Assets)
	return cp
}

// sumAmounts returns the total pledged across all entries. Campaign
// invariant: TotalAvailableAssets == sumAmounts(Assets) after every
// mutation.
func sumAmounts(assets []AssetEntry) uint64 {
	var total uint64
	for _, a := range assets {
		total += a.AvailableAmount
	}
	return total
}

func validateAssets(assets []AssetEntry) error {
	if len(assets) == 0 {
		return ErrEmptyAssetList
	}
	for _, a := range assets {
		if a.AvailableAmount == 0 {
			return ErrZeroAssetAmount
		}
	}
	return nil
}
