package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgSmartSwap is a hybrid order: TotalIn is split between an optional
// matching-venue fill and a pool swap for the remainder, settled atomically.
// ZeroForOne selects the pool direction: token A in, token B out when set.
type MsgSmartSwap struct {
	Trader     string       `json:"trader"`
	PoolId     uint64       `json:"pool_id"`
	ZeroForOne bool         `json:"zero_for_one"`
	TotalIn    math.Int     `json:"total_in"`
	MinOut     math.Int     `json:"min_out"`
	Matching   *MatchingLeg `json:"matching,omitempty"`
}

// GetSigners returns the account that must sign the message
func (msg MsgSmartSwap) GetSigners() []sdk.AccAddress {
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{trader}
}

// ValidateBasic performs stateless validation of the message
func (msg MsgSmartSwap) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Trader); err != nil {
		return sdkerrors.Wrapf(ErrInvalidOrder, "invalid trader address: %s", err)
	}
	if msg.PoolId == 0 {
		return sdkerrors.Wrap(ErrInvalidOrder, "pool id cannot be zero")
	}
	if msg.TotalIn.IsNil() || !msg.TotalIn.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidOrder, "total input must be positive")
	}
	if msg.MinOut.IsNil() || msg.MinOut.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidOrder, "minimum output cannot be negative")
	}
	if msg.Matching != nil {
		if err := msg.Matching.Validate(); err != nil {
			return sdkerrors.Wrap(ErrInvalidOrder, err.Error())
		}
	}
	return nil
}
