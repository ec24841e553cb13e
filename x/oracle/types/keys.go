package types

const (
	// ModuleName defines the module name
	ModuleName = "oracle"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName
)

// Store key prefixes
var (
	ParamsKey       = []byte{0x01} // key for module parameters
	TokenConfigKey  = []byte{0x02} // prefix for per-asset feed configuration
	PriceHistoryKey = []byte{0x03} // prefix for per-asset price history buffers
)

// GetTokenConfigKey returns the store key for an asset's feed configuration
func GetTokenConfigKey(denom string) []byte {
	return append(TokenConfigKey, []byte(denom)...)
}

// GetPriceHistoryKey returns the store key for an asset's price history buffer
func GetPriceHistoryKey(denom string) []byte {
	return append(PriceHistoryKey, []byte(denom)...)
}
