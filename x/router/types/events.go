package types

// Router module event types
const (
	EventTypeSmartSwap = "router_smart_swap"
)

// Router module event attribute keys
const (
	AttributeKeyTrader      = "trader"
	AttributeKeyTokenIn     = "token_in"
	AttributeKeyTokenOut    = "token_out"
	AttributeKeyAmountIn    = "amount_in"
	AttributeKeyMatchingOut = "matching_out"
	AttributeKeyPoolOut     = "pool_out"
	AttributeKeyTotalOut    = "total_out"
	AttributeKeyOrderHash   = "order_hash"
)
