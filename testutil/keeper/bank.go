package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	ammtypes "github.com/hydro-dex/hydro/x/amm/types"
	routertypes "github.com/hydro-dex/hydro/x/router/types"
)

var (
	_ ammtypes.BankKeeper    = (*MockBankKeeper)(nil)
	_ routertypes.BankKeeper = (*MockBankKeeper)(nil)
)

// MockBankKeeper is an in-memory bank for keeper tests. Module accounts are
// addressed the same way the real bank keeper addresses them, so balance
// assertions against module custody work unchanged.
type MockBankKeeper struct {
	balances map[string]sdk.Coins
}

// NewMockBankKeeper creates an empty mock bank
func NewMockBankKeeper() *MockBankKeeper {
	return &MockBankKeeper{balances: make(map[string]sdk.Coins)}
}

// Fund credits coins to an address out of thin air
func (m *MockBankKeeper) Fund(addr sdk.AccAddress, amt sdk.Coins) {
	m.balances[addr.String()] = m.balances[addr.String()].Add(amt...)
}

func (m *MockBankKeeper) send(from, to sdk.AccAddress, amt sdk.Coins) error {
	bal := m.balances[from.String()]
	if !amt.IsAllLTE(bal) {
		return fmt.Errorf("insufficient funds: %s has %s, needs %s", from, bal, amt)
	}
	m.balances[from.String()] = bal.Sub(amt...)
	m.balances[to.String()] = m.balances[to.String()].Add(amt...)
	return nil
}

// SendCoins implements the bank keeper interface
func (m *MockBankKeeper) SendCoins(_ context.Context, from, to sdk.AccAddress, amt sdk.Coins) error {
	return m.send(from, to, amt)
}

// SendCoinsFromAccountToModule implements the bank keeper interface
func (m *MockBankKeeper) SendCoinsFromAccountToModule(_ context.Context, sender sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return m.send(sender, authtypes.NewModuleAddress(recipientModule), amt)
}

// SendCoinsFromModuleToAccount implements the bank keeper interface
func (m *MockBankKeeper) SendCoinsFromModuleToAccount(_ context.Context, senderModule string, recipient sdk.AccAddress, amt sdk.Coins) error {
	return m.send(authtypes.NewModuleAddress(senderModule), recipient, amt)
}

// SendCoinsFromModuleToModule implements the bank keeper interface
func (m *MockBankKeeper) SendCoinsFromModuleToModule(_ context.Context, senderModule, recipientModule string, amt sdk.Coins) error {
	return m.send(authtypes.NewModuleAddress(senderModule), authtypes.NewModuleAddress(recipientModule), amt)
}

// GetBalance implements the bank keeper interface
func (m *MockBankKeeper) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, m.balances[addr.String()].AmountOf(denom))
}
