package types

import (
	"cosmossdk.io/errors"
)

// AMM module sentinel errors
var (
	ErrInvalidPoolID          = errors.Register(ModuleName, 1, "invalid pool id")
	ErrPoolNotFound           = errors.Register(ModuleName, 2, "pool not found")
	ErrPoolAlreadyExists      = errors.Register(ModuleName, 3, "pool already exists")
	ErrInvalidTokenPair       = errors.Register(ModuleName, 4, "invalid token pair")
	ErrInvalidAmount          = errors.Register(ModuleName, 5, "invalid amount")
	ErrInsufficientLiquidity  = errors.Register(ModuleName, 6, "insufficient liquidity in pool")
	ErrInsufficientShares     = errors.Register(ModuleName, 7, "insufficient liquidity shares")
	ErrSlippageTooHigh        = errors.Register(ModuleName, 8, "output amount less than minimum required")
	ErrDynamicFeeRequired     = errors.Register(ModuleName, 9, "pool requires the dynamic fee mode")
	ErrInvalidTaxConfig       = errors.Register(ModuleName, 10, "invalid pool tax configuration")
	ErrUnauthorizedCallback   = errors.Register(ModuleName, 11, "callback caller is not the active locker")
	ErrAlreadyUnlocked        = errors.Register(ModuleName, 12, "pool access already unlocked")
	ErrInvariantViolation     = errors.Register(ModuleName, 13, "constant product invariant violated")
	ErrUnauthorized           = errors.Register(ModuleName, 14, "unauthorized")
)
