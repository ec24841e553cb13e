package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Router module sentinel errors
var (
	ErrInvalidOrder              = sdkerrors.Register(ModuleName, 1, "invalid order")
	ErrMatchingInputExceedsTotal = sdkerrors.Register(ModuleName, 2, "matching leg input exceeds total input")
	ErrMinOutputNotMet           = sdkerrors.Register(ModuleName, 3, "total output below minimum")
	ErrFillFailed                = sdkerrors.Register(ModuleName, 4, "matching venue fill failed")
	ErrInvalidCallbackData       = sdkerrors.Register(ModuleName, 5, "invalid settlement callback data")
	ErrQuoteUnavailable          = sdkerrors.Register(ModuleName, 6, "quote unavailable")
)
