package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	admin    = "admin"
	operator = "operator"
	creator  = "creator"
	stranger = "stranger"
)

func newTestPlatform(t *testing.T) *Platform {
	t.Helper()
	p := NewPlatform(admin, 100)
	require.NoError(t, p.SetOperators(admin, []string{operator}, []bool{true}))
	return p
}

// checkTotals asserts the campaign accounting invariant after a mutation.
func checkTotals(t *testing.T, p *Platform) {
	t.Helper()
	for i := range p.Campaigns {
		c := &p.Campaigns[i]
		assert.Equal(t, sumAmounts(c.Assets), c.TotalAvailableAssets,
			"campaign %s total out of sync", c.ID)
		assert.NotEmpty(t, c.Assets, "campaign %s kept alive with no assets", c.ID)
	}
}

func TestNewPlatform(t *testing.T) {
	p := NewPlatform(admin, 700)
	assert.Equal(t, admin, p.Admin)
	assert.Equal(t, uint64(700), p.FeePerAsset)
	assert.Zero(t, p.AccumulatedFee)
	assert.Equal(t, []string{admin}, p.Operators)
	assert.Empty(t, p.Campaigns)
}

func TestSetOperators(t *testing.T) {
	t.Run("admin only", func(t *testing.T) {
		p := NewPlatform(admin, 0)
		err := p.SetOperators(stranger, []string{operator}, []bool{true})
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("length mismatch", func(t *testing.T) {
		p := NewPlatform(admin, 0)
		err := p.SetOperators(admin, []string{"a", "b"}, []bool{true})
		assert.ErrorIs(t, err, ErrArgumentMismatch)
	})

	t.Run("add and remove pairwise", func(t *testing.T) {
		p := NewPlatform(admin, 0)
		require.NoError(t, p.SetOperators(admin,
			[]string{"op1", "op2", "op3"}, []bool{true, true, true}))
		assert.Equal(t, []string{admin, "op1", "op2", "op3"}, p.Operators)

		require.NoError(t, p.SetOperators(admin,
			[]string{"op2", "op4"}, []bool{false, true}))
		assert.Equal(t, []string{admin, "op1", "op3", "op4"}, p.Operators)
	})

	t.Run("add is deduplicated", func(t *testing.T) {
		p := NewPlatform(admin, 0)
		require.NoError(t, p.SetOperators(admin, []string{"op1", "op1"}, []bool{true, true}))
		require.NoError(t, p.SetOperators(admin, []string{"op1"}, []bool{true}))
		assert.Equal(t, []string{admin, "op1"}, p.Operators)
	})

	t.Run("removing absent identity is a no-op", func(t *testing.T) {
		p := NewPlatform(admin, 0)
		require.NoError(t, p.SetOperators(admin, []string{"ghost"}, []bool{false}))
		assert.Equal(t, []string{admin}, p.Operators)
	})

	t.Run("admin stays operator even when removed from the list", func(t *testing.T) {
		p := NewPlatform(admin, 0)
		require.NoError(t, p.SetOperators(admin, []string{admin}, []bool{false}))
		assert.True(t, p.IsOperator(admin))
	})
}

func TestSetFeePerAsset(t *testing.T) {
	p := newTestPlatform(t)

	assert.ErrorIs(t, p.SetFeePerAsset(stranger, 1), ErrUnauthorized)
	assert.Equal(t, uint64(100), p.FeePerAsset)

	require.NoError(t, p.SetFeePerAsset(operator, 250))
	assert.Equal(t, uint64(250), p.FeePerAsset)

	require.NoError(t, p.SetFeePerAsset(admin, 0))
	assert.Zero(t, p.FeePerAsset)
}

func TestCreateCampaign(t *testing.T) {
	assets := []AssetEntry{
		{AssetAddress: "assetA", AvailableAmount: 500},
		{AssetAddress: "assetB", AvailableAmount: 90},
	}

	t.Run("registers campaign and charges per entry", func(t *testing.T) {
		p := newTestPlatform(t)
		fee, err := p.CreateCampaign(creator, "C1", assets, 1000)
		require.NoError(t, err)
		assert.Equal(t, uint64(200), fee, "two entries at rate 100")
		assert.Equal(t, uint64(200), p.AccumulatedFee)

		c, ok := p.Campaign("C1")
		require.True(t, ok)
		assert.Equal(t, creator, c.Creator)
		assert.Equal(t, int64(1000), c.StartingTime)
		assert.Equal(t, uint64(590), c.TotalAvailableAssets)
		checkTotals(t, p)
	})

	t.Run("duplicate id", func(t *testing.T) {
		p := newTestPlatform(t)
		_, err := p.CreateCampaign(creator, "C1", assets, 1000)
		require.NoError(t, err)
		_, err = p.CreateCampaign(stranger, "C1", assets, 2000)
		assert.ErrorIs(t, err, ErrDuplicateCampaign)
		assert.Len(t, p.Campaigns, 1)
	})

	t.Run("empty asset list", func(t *testing.T) {
		p := newTestPlatform(t)
		_, err := p.CreateCampaign(creator, "C1", nil, 1000)
		assert.ErrorIs(t, err, ErrEmptyAssetList)
		assert.Zero(t, p.AccumulatedFee)
	})

	t.Run("zero amount entry", func(t *testing.T) {
		p := newTestPlatform(t)
		_, err := p.CreateCampaign(creator, "C1",
			[]AssetEntry{{AssetAddress: "assetA", AvailableAmount: 0}}, 1000)
		assert.ErrorIs(t, err, ErrZeroAssetAmount)
		assert.Empty(t, p.Campaigns)
	})

	t.Run("same asset address twice stays separate", func(t *testing.T) {
		p := newTestPlatform(t)
		fee, err := p.CreateCampaign(creator, "C1", []AssetEntry{
			{AssetAddress: "assetA", AvailableAmount: 10},
			{AssetAddress: "assetA", AvailableAmount: 20},
		}, 1000)
		require.NoError(t, err)
		assert.Equal(t, uint64(200), fee, "fee is per entry, not per distinct asset")
		c, _ := p.Campaign("C1")
		assert.Len(t, c.Assets, 2)
	})

	t.Run("creation order preserved", func(t *testing.T) {
		p := newTestPlatform(t)
		for _, id := range []string{"C1", "C2", "C3"} {
			_, err := p.CreateCampaign(creator, id, assets, 1000)
			require.NoError(t, err)
		}
		var ids []string
		for _, c := range p.Campaigns {
			ids = append(ids, c.ID)
		}
		assert.Equal(t, []string{"C1", "C2", "C3"}, ids)
	})
}

func TestUpdateCampaign(t *testing.T) {
	initial := []AssetEntry{
		{AssetAddress: "assetA", AvailableAmount: 500},
		{AssetAddress: "assetB", AvailableAmount: 90},
	}
	replacement := []AssetEntry{
		{AssetAddress: "assetA", AvailableAmount: 400},
		{AssetAddress: "assetB", AvailableAmount: 88},
		{AssetAddress: "assetC", AvailableAmount: 1},
	}

	setup := func(t *testing.T) *Platform {
		p := newTestPlatform(t)
		_, err := p.CreateCampaign(creator, "C1", initial, 1000)
		require.NoError(t, err)
		return p
	}

	t.Run("replaces wholesale and recharges new count", func(t *testing.T) {
		p := setup(t)
		fee, err := p.UpdateCampaign(creator, "C1", replacement, 2000)
		require.NoError(t, err)
		assert.Equal(t, uint64(300), fee, "three entries at rate 100")
		assert.Equal(t, uint64(500), p.AccumulatedFee, "create fee plus update fee")

		c, _ := p.Campaign("C1")
		assert.Len(t, c.Assets, 3, "old entries must not be merged in")
		assert.Equal(t, int64(2000), c.StartingTime)
		assert.Equal(t, uint64(489), c.TotalAvailableAssets)
		checkTotals(t, p)
	})

	t.Run("uses the rate at call time", func(t *testing.T) {
		p := setup(t)
		require.NoError(t, p.SetFeePerAsset(operator, 7))
		fee, err := p.UpdateCampaign(creator, "C1", replacement, 2000)
		require.NoError(t, err)
		assert.Equal(t, uint64(21), fee)
	})

	t.Run("creator only", func(t *testing.T) {
		p := setup(t)
		_, err := p.UpdateCampaign(stranger, "C1", replacement, 2000)
		assert.ErrorIs(t, err, ErrUnauthorized)
		c, _ := p.Campaign("C1")
		assert.Len(t, c.Assets, 2)
	})

	t.Run("unknown campaign", func(t *testing.T) {
		p := setup(t)
		_, err := p.UpdateCampaign(creator, "nope", replacement, 2000)
		assert.ErrorIs(t, err, ErrCampaignNotFound)
	})

	t.Run("validation applies to the new list", func(t *testing.T) {
		p := setup(t)
		_, err := p.UpdateCampaign(creator, "C1", nil, 2000)
		assert.ErrorIs(t, err, ErrEmptyAssetList)
		_, err = p.UpdateCampaign(creator, "C1",
			[]AssetEntry{{AssetAddress: "assetA"}}, 2000)
		assert.ErrorIs(t, err, ErrZeroAssetAmount)
	})
}

func TestAirdrop(t *testing.T) {
	const start = int64(1000)
	assets := []AssetEntry{
		{AssetAddress: "assetA", AvailableAmount: 500},
		{AssetAddress: "assetB", AvailableAmount: 90},
	}

	setup := func(t *testing.T) *Platform {
		p := newTestPlatform(t)
		_, err := p.CreateCampaign(creator, "C1", assets, start)
		require.NoError(t, err)
		return p
	}

	t.Run("full entry withdrawal removes the entry", func(t *testing.T) {
		p := setup(t)
		dist, err := p.Airdrop(operator, "C1", 0, start)
		require.NoError(t, err)
		assert.Equal(t, "assetA", dist.AssetAddress)
		assert.Equal(t, uint64(500), dist.Amount, "one call drains the whole entry")
		assert.Equal(t, creator, dist.Creator)
		assert.False(t, dist.CampaignRemoved)

		c, ok := p.Campaign("C1")
		require.True(t, ok)
		assert.Len(t, c.Assets, 1)
		assert.Equal(t, "assetB", c.Assets[0].AssetAddress)
		assert.Equal(t, uint64(90), c.TotalAvailableAssets)
		checkTotals(t, p)
	})

	t.Run("draining the last entry removes the campaign", func(t *testing.T) {
		p := setup(t)
		_, err := p.Airdrop(operator, "C1", 1, start)
		require.NoError(t, err)
		dist, err := p.Airdrop(operator, "C1", 0, start)
		require.NoError(t, err)
		assert.True(t, dist.CampaignRemoved)

		_, ok := p.Campaign("C1")
		assert.False(t, ok)
		assert.Empty(t, p.Campaigns)

		_, err = p.Airdrop(operator, "C1", 0, start)
		assert.ErrorIs(t, err, ErrCampaignNotFound)
	})

	t.Run("operator only", func(t *testing.T) {
		p := setup(t)
		_, err := p.Airdrop(creator, "C1", 0, start)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("admin may distribute", func(t *testing.T) {
		p := setup(t)
		_, err := p.Airdrop(admin, "C1", 0, start)
		assert.NoError(t, err)
	})

	t.Run("before starting time", func(t *testing.T) {
		p := setup(t)
		_, err := p.Airdrop(operator, "C1", 0, start-1)
		assert.ErrorIs(t, err, ErrNotStarted)
		c, _ := p.Campaign("C1")
		assert.Len(t, c.Assets, 2, "state must be untouched")
		assert.Equal(t, uint64(590), c.TotalAvailableAssets)
	})

	t.Run("index out of range", func(t *testing.T) {
		p := setup(t)
		_, err := p.Airdrop(operator, "C1", 2, start)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
		_, err = p.Airdrop(operator, "C1", -1, start)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	})

	t.Run("depleted entry", func(t *testing.T) {
		// A zero entry cannot arise through the public operations, but the
		// guard still holds for state restored from elsewhere.
		p := newTestPlatform(t)
		p.Campaigns = append(p.Campaigns, Campaign{
			ID:      "Z",
			Creator: creator,
			Assets:  []AssetEntry{{AssetAddress: "assetA", AvailableAmount: 0}},
		})
		_, err := p.Airdrop(operator, "Z", 0, start)
		assert.ErrorIs(t, err, ErrDepleted)
	})
}

func TestWithdrawFees(t *testing.T) {
	p := newTestPlatform(t)
	_, err := p.CreateCampaign(creator, "C1",
		[]AssetEntry{{AssetAddress: "assetA", AvailableAmount: 1}}, 1000)
	require.NoError(t, err)
	require.Equal(t, uint64(100), p.AccumulatedFee)

	_, err = p.WithdrawFees(operator)
	assert.ErrorIs(t, err, ErrUnauthorized, "operators cannot withdraw fees")

	amount, err := p.WithdrawFees(admin)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), amount)
	assert.Zero(t, p.AccumulatedFee)

	// Withdrawing an empty balance succeeds with zero.
	amount, err = p.WithdrawFees(admin)
	require.NoError(t, err)
	assert.Zero(t, amount)
}

func TestClone(t *testing.T) {
	p := newTestPlatform(t)
	_, err := p.CreateCampaign(creator, "C1", []AssetEntry{
		{AssetAddress: "assetA", AvailableAmount: 10},
		{AssetAddress: "assetB", AvailableAmount: 20},
	}, 1000)
	require.NoError(t, err)

	cp := p.Clone()
	_, err = cp.Airdrop(operator, "C1", 0, 1000)
	require.NoError(t, err)
	require.NoError(t, cp.SetOperators(admin, []string{"op9"}, []bool{true}))

	// Original is unaffected by mutations of the copy.
	c, _ := p.Campaign("C1")
	assert.Len(t, c.Assets, 2)
	assert.Equal(t, uint64(30), c.TotalAvailableAssets)
	assert.NotContains(t, p.Operators, "op9")
}

// TestObservedScenario replays the reference flow end to end: fee rate set
// at init, lowered by a freshly added operator, a two-entry campaign
// created, rewritten to three entries, then drained entry by entry.
func TestObservedScenario(t *testing.T) {
	now := int64(1_700_000_000)

	p := NewPlatform(admin, 700_000_000)
	require.NoError(t, p.SetOperators(admin, []string{operator}, []bool{true}))
	require.NoError(t, p.SetFeePerAsset(operator, 100_000_000))

	fee, err := p.CreateCampaign(creator, "C1", []AssetEntry{
		{AssetAddress: "assetA", AvailableAmount: 34_000_000_000},
		{AssetAddress: "assetB", AvailableAmount: 90},
	}, now+1800)
	require.NoError(t, err)
	assert.Equal(t, uint64(200_000_000), fee)

	c, _ := p.Campaign("C1")
	assert.Equal(t, uint64(34_000_000_090), c.TotalAvailableAssets)

	fee, err = p.UpdateCampaign(creator, "C1", []AssetEntry{
		{AssetAddress: "assetA", AvailableAmount: 31_000_000_000},
		{AssetAddress: "assetB", AvailableAmount: 88},
		{AssetAddress: "assetC", AvailableAmount: 1},
	}, now+8)
	require.NoError(t, err)
	assert.Equal(t, uint64(300_000_000), fee)

	c, _ = p.Campaign("C1")
	assert.Equal(t, uint64(31_000_000_089), c.TotalAvailableAssets)
	assert.Equal(t, uint64(500_000_000), p.AccumulatedFee)

	// Too early by one second.
	_, err = p.Airdrop(operator, "C1", 0, now+7)
	assert.ErrorIs(t, err, ErrNotStarted)

	dist, err := p.Airdrop(operator, "C1", 0, now+8)
	require.NoError(t, err)
	assert.Equal(t, uint64(31_000_000_000), dist.Amount)
	checkTotals(t, p)

	for i := 0; i < 2; i++ {
		_, err = p.Airdrop(operator, "C1", 0, now+8)
		require.NoError(t, err)
		checkTotals(t, p)
	}
	_, ok := p.Campaign("C1")
	assert.False(t, ok, "fully drained campaign must disappear")

	amount, err := p.WithdrawFees(admin)
	require.NoError(t, err)
	assert.Equal(t, uint64(500_000_000), amount)
}
