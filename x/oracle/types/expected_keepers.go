package types

import (
	"context"

	"cosmossdk.io/math"
)

// PriceFeed defines the external price source consumed by the oracle module.
// Price is expressed as price * 10^expo; a non-positive price is fatal input.
type PriceFeed interface {
	GetPrice(ctx context.Context, feedID string) (price math.Int, expo int32, timestamp int64, err error)
}
