package types

// Oracle module event types
const (
	EventTypePriceRecorded   = "oracle_price_recorded"
	EventTypeFeedsConfigured = "oracle_feeds_configured"
)

// Oracle module event attribute keys
const (
	AttributeKeyDenom      = "denom"
	AttributeKeyPrice      = "price"
	AttributeKeyCursor     = "cursor"
	AttributeKeyDataPoints = "data_points"
	AttributeKeyNumFeeds   = "num_feeds"
)
