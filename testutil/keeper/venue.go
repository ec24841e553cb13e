package keeper

import (
	"crypto/sha256"
	"encoding/json"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	routertypes "github.com/hydro-dex/hydro/x/router/types"
)

var _ routertypes.MatchingVenue = (*MockMatchingVenue)(nil)

// MockMatchingVenue is an in-memory matching venue for router tests. By
// default it consumes the requested fill amount and pays out pro-rata against
// the order's price; tests can override either side to model a venue that
// fills differently than declared.
type MockMatchingVenue struct {
	bank *MockBankKeeper

	MadeOverride  math.Int
	TakenOverride math.Int
	Err           error
}

// NewMockMatchingVenue creates a mock venue settling through the mock bank
func NewMockMatchingVenue(bank *MockBankKeeper) *MockMatchingVenue {
	return &MockMatchingVenue{bank: bank}
}

// FillOrder implements the MatchingVenue interface. It moves the taken amount
// of the taker asset from the taker to the maker and the made amount of the
// maker asset back, mirroring a real fill's token flows.
func (m *MockMatchingVenue) FillOrder(ctx sdk.Context, taker sdk.AccAddress, order routertypes.MatchingOrder, _ []byte, fillAmount math.Int, _ []byte) (math.Int, math.Int, []byte, error) {
	if m.Err != nil {
		return math.ZeroInt(), math.ZeroInt(), nil, m.Err
	}

	taken := fillAmount
	if !m.TakenOverride.IsNil() {
		taken = m.TakenOverride
	}
	made := taken.Mul(order.MakingAmount).Quo(order.TakingAmount)
	if !m.MadeOverride.IsNil() {
		made = m.MadeOverride
	}

	maker, err := sdk.AccAddressFromBech32(order.Maker)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), nil, err
	}

	if taken.IsPositive() {
		if err := m.bank.SendCoins(ctx, taker, maker, sdk.NewCoins(sdk.NewCoin(order.TakerAsset, taken))); err != nil {
			return math.ZeroInt(), math.ZeroInt(), nil, err
		}
	}
	if made.IsPositive() {
		if err := m.bank.SendCoins(ctx, maker, taker, sdk.NewCoins(sdk.NewCoin(order.MakerAsset, made))); err != nil {
			return math.ZeroInt(), math.ZeroInt(), nil, err
		}
	}

	return made, taken, m.HashOrder(order), nil
}

// HashOrder implements the MatchingVenue interface
func (m *MockMatchingVenue) HashOrder(order routertypes.MatchingOrder) []byte {
	bz, _ := json.Marshal(order)
	hash := sha256.Sum256(bz)
	return hash[:]
}
