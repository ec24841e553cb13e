package types

// AMM module event types
const (
	EventTypePoolCreated      = "amm_pool_created"
	EventTypeSwap             = "amm_swap"
	EventTypeLiquidityAdded   = "amm_liquidity_added"
	EventTypeLiquidityRemoved = "amm_liquidity_removed"
	EventTypeDonation         = "amm_donation"
	EventTypeSwapTaxed        = "amm_swap_taxed"
	EventTypeJITTaxed         = "amm_jit_taxed"
)

// AMM module event attribute keys
const (
	AttributeKeyPoolID      = "pool_id"
	AttributeKeyTrader      = "trader"
	AttributeKeyProvider    = "provider"
	AttributeKeyTokenIn     = "token_in"
	AttributeKeyTokenOut    = "token_out"
	AttributeKeyAmountIn    = "amount_in"
	AttributeKeyAmountOut   = "amount_out"
	AttributeKeyShares      = "shares"
	AttributeKeyTax         = "tax"
	AttributeKeyTaxDenom    = "tax_denom"
	AttributeKeyWindow      = "window"
	AttributeKeyPriorityFee = "priority_fee"
)
