package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// UnlockCallback is implemented by callers of Keeper.Unlock. While the
// callback runs, the caller holds the lock and may use the delta-based pool
// operations; every balance it accrues must be settled before it returns.
type UnlockCallback interface {
	UnlockCallback(ctx sdk.Context, data []byte) ([]byte, error)
}
