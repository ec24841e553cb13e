package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgCreatePool defines a message to create a new liquidity pool
type MsgCreatePool struct {
	Creator    string        `json:"creator"`
	TokenA     string        `json:"token_a"`
	TokenB     string        `json:"token_b"`
	AmountA    math.Int      `json:"amount_a"`
	AmountB    math.Int      `json:"amount_b"`
	DynamicFee bool          `json:"dynamic_fee"`
	TaxConfig  PoolTaxConfig `json:"tax_config"`
}

// GetSigners returns the account that must sign the message
func (msg MsgCreatePool) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// ValidateBasic performs stateless validation of the message
func (msg MsgCreatePool) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrapf(ErrUnauthorized, "invalid creator address: %s", err)
	}
	if msg.TokenA == "" || msg.TokenB == "" {
		return sdkerrors.Wrap(ErrInvalidTokenPair, "token denominations cannot be empty")
	}
	if msg.TokenA == msg.TokenB {
		return sdkerrors.Wrap(ErrInvalidTokenPair, "tokens must be different")
	}
	if msg.AmountA.IsNil() || msg.AmountB.IsNil() || !msg.AmountA.IsPositive() || !msg.AmountB.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "amounts must be positive")
	}
	return msg.TaxConfig.Validate()
}

// MsgAddLiquidity defines a message to add liquidity to a pool
type MsgAddLiquidity struct {
	Provider string   `json:"provider"`
	PoolId   uint64   `json:"pool_id"`
	AmountA  math.Int `json:"amount_a"`
	AmountB  math.Int `json:"amount_b"`
}

// GetSigners returns the account that must sign the message
func (msg MsgAddLiquidity) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// ValidateBasic performs stateless validation of the message
func (msg MsgAddLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrUnauthorized, "invalid provider address: %s", err)
	}
	if msg.PoolId == 0 {
		return sdkerrors.Wrap(ErrInvalidPoolID, "pool id cannot be zero")
	}
	if msg.AmountA.IsNil() || msg.AmountB.IsNil() || !msg.AmountA.IsPositive() || !msg.AmountB.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "amounts must be positive")
	}
	return nil
}

// MsgRemoveLiquidity defines a message to burn pool shares for reserves
type MsgRemoveLiquidity struct {
	Provider string   `json:"provider"`
	PoolId   uint64   `json:"pool_id"`
	Shares   math.Int `json:"shares"`
}

// GetSigners returns the account that must sign the message
func (msg MsgRemoveLiquidity) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// ValidateBasic performs stateless validation of the message
func (msg MsgRemoveLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrUnauthorized, "invalid provider address: %s", err)
	}
	if msg.PoolId == 0 {
		return sdkerrors.Wrap(ErrInvalidPoolID, "pool id cannot be zero")
	}
	if msg.Shares.IsNil() || !msg.Shares.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "shares must be positive")
	}
	return nil
}

// MsgSwap defines a message to swap tokens against a pool
type MsgSwap struct {
	Trader       string   `json:"trader"`
	PoolId       uint64   `json:"pool_id"`
	TokenIn      string   `json:"token_in"`
	AmountIn     math.Int `json:"amount_in"`
	MinAmountOut math.Int `json:"min_amount_out"`
}

// GetSigners returns the account that must sign the message
func (msg MsgSwap) GetSigners() []sdk.AccAddress {
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{trader}
}

// ValidateBasic performs stateless validation of the message
func (msg MsgSwap) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Trader); err != nil {
		return sdkerrors.Wrapf(ErrUnauthorized, "invalid trader address: %s", err)
	}
	if msg.PoolId == 0 {
		return sdkerrors.Wrap(ErrInvalidPoolID, "pool id cannot be zero")
	}
	if msg.TokenIn == "" {
		return sdkerrors.Wrap(ErrInvalidTokenPair, "token denomination cannot be empty")
	}
	if msg.AmountIn.IsNil() || !msg.AmountIn.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "swap amount must be positive")
	}
	if msg.MinAmountOut.IsNil() || msg.MinAmountOut.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "minimum output cannot be negative")
	}
	return nil
}

// MsgUpdateTaxConfig defines an authority-only message to reconfigure a
// pool's taxation parameters after creation.
type MsgUpdateTaxConfig struct {
	Authority string        `json:"authority"`
	PoolId    uint64        `json:"pool_id"`
	Config    PoolTaxConfig `json:"config"`
}

// GetSigners returns the account that must sign the message
func (msg MsgUpdateTaxConfig) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// ValidateBasic performs stateless validation of the message
func (msg MsgUpdateTaxConfig) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrUnauthorized, "invalid authority address: %s", err)
	}
	if msg.PoolId == 0 {
		return sdkerrors.Wrap(ErrInvalidPoolID, "pool id cannot be zero")
	}
	return msg.Config.Validate()
}
