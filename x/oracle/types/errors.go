package types

import (
	"cosmossdk.io/errors"
)

// Oracle module sentinel errors
var (
	ErrTokenNotSupported = errors.Register(ModuleName, 1, "token not supported")
	ErrInvalidPrice      = errors.Register(ModuleName, 2, "invalid price")
	ErrUnauthorized      = errors.Register(ModuleName, 3, "unauthorized")
	ErrInvalidConfig     = errors.Register(ModuleName, 4, "invalid token configuration")
	ErrFeedUnavailable   = errors.Register(ModuleName, 5, "price feed unavailable")
)
