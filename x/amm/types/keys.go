package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "amm"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName
)

// Store key prefixes
var (
	ParamsKey          = []byte{0x01} // key for module parameters
	PoolKey            = []byte{0x02} // prefix for pool store
	PoolCountKey       = []byte{0x03} // key for pool count
	SharesKey          = []byte{0x04} // prefix for liquidity provider shares
	TaxConfigKey       = []byte{0x05} // prefix for per-pool tax configuration
	LastTaxedWindowKey = []byte{0x06} // prefix for per-pool last taxed window
	ActiveLockerKey    = []byte{0x07} // key for the in-flight unlock owner
	DeltaKey           = []byte{0x08} // prefix for per-denom unlock balance deltas
)

// GetPoolKey returns the store key for a pool
func GetPoolKey(poolID uint64) []byte {
	return append(PoolKey, sdk.Uint64ToBigEndian(poolID)...)
}

// GetSharesKey returns the store key for a provider's pool shares
func GetSharesKey(poolID uint64, provider string) []byte {
	key := append(SharesKey, sdk.Uint64ToBigEndian(poolID)...)
	return append(key, []byte(provider)...)
}

// GetTaxConfigKey returns the store key for a pool's tax configuration
func GetTaxConfigKey(poolID uint64) []byte {
	return append(TaxConfigKey, sdk.Uint64ToBigEndian(poolID)...)
}

// GetLastTaxedWindowKey returns the store key for a pool's last taxed window
func GetLastTaxedWindowKey(poolID uint64) []byte {
	return append(LastTaxedWindowKey, sdk.Uint64ToBigEndian(poolID)...)
}

// GetDeltaKey returns the store key for a denom's outstanding unlock delta
func GetDeltaKey(denom string) []byte {
	return append(DeltaKey, []byte(denom)...)
}
