package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgConfigureFeeds defines a message to register or update token feed
// configurations. Restricted to the module authority.
type MsgConfigureFeeds struct {
	Authority string        `json:"authority"`
	Configs   []TokenConfig `json:"configs"`
}

// NewMsgConfigureFeeds creates a new MsgConfigureFeeds instance
func NewMsgConfigureFeeds(authority string, configs []TokenConfig) *MsgConfigureFeeds {
	return &MsgConfigureFeeds{
		Authority: authority,
		Configs:   configs,
	}
}

// GetSigners returns the account that must sign the message
func (msg MsgConfigureFeeds) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// ValidateBasic performs stateless validation of the message
func (msg MsgConfigureFeeds) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrUnauthorized, "invalid authority address: %s", err)
	}
	if len(msg.Configs) == 0 {
		return sdkerrors.Wrap(ErrInvalidConfig, "no token configs provided")
	}
	for _, cfg := range msg.Configs {
		if err := cfg.Validate(); err != nil {
			return sdkerrors.Wrap(ErrInvalidConfig, err.Error())
		}
	}
	return nil
}
