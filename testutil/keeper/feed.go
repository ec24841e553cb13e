package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"

	oracletypes "github.com/hydro-dex/hydro/x/oracle/types"
)

var _ oracletypes.PriceFeed = (*MockPriceFeed)(nil)

type feedEntry struct {
	price     math.Int
	expo      int32
	timestamp int64
}

// MockPriceFeed is an in-memory price feed for oracle tests
type MockPriceFeed struct {
	entries map[string]feedEntry
}

// NewMockPriceFeed creates an empty mock feed
func NewMockPriceFeed() *MockPriceFeed {
	return &MockPriceFeed{entries: make(map[string]feedEntry)}
}

// SetPrice configures the feed response for a feed id
func (m *MockPriceFeed) SetPrice(feedID string, price math.Int, expo int32, timestamp int64) {
	m.entries[feedID] = feedEntry{price: price, expo: expo, timestamp: timestamp}
}

// GetPrice implements the PriceFeed interface
func (m *MockPriceFeed) GetPrice(_ context.Context, feedID string) (math.Int, int32, int64, error) {
	entry, ok := m.entries[feedID]
	if !ok {
		return math.ZeroInt(), 0, 0, fmt.Errorf("no price for feed %s", feedID)
	}
	return entry.price, entry.expo, entry.timestamp, nil
}
