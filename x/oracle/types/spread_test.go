package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/hydro-dex/hydro/x/oracle/types"
)

func TestValidateSpreadParams(t *testing.T) {
	tests := []struct {
		name       string
		baseBps    uint64
		multiplier uint64
		maxBps     uint64
		want       bool
	}{
		{"all zero", 0, 0, 0, true},
		{"typical", 30, 100, 200, true},
		{"base at cap", 1000, 100, 200, true},
		{"max at cap", 30, 100, 1000, true},
		{"multiplier at cap", 30, 1000, 200, true},
		{"base over cap", 1001, 100, 200, false},
		{"max over cap", 30, 100, 1001, false},
		{"multiplier over cap", 30, 1001, 200, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := types.ValidateSpreadParams(tt.baseBps, tt.multiplier, tt.maxBps)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestComputeSpread(t *testing.T) {
	tests := []struct {
		name       string
		baseBps    uint64
		multiplier uint64
		maxBps     uint64
		volatility math.Int
		want       uint64
	}{
		{"zero volatility yields base", 30, 100, 200, math.ZeroInt(), 30},
		{"impact added", 30, 100, 200, math.NewInt(5000), 80},
		{"capped at max", 30, 1000, 200, math.NewInt(5000), 200},
		{"truncating division", 30, 100, 200, math.NewInt(199), 31},
		{"sub-hundred volatility truncates to zero impact", 30, 100, 200, math.NewInt(99), 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := types.ComputeSpread(tt.baseBps, tt.multiplier, tt.maxBps, tt.volatility)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestComputeSpreadBounds(t *testing.T) {
	for vol := int64(0); vol <= 20000; vol += 500 {
		spread := types.ComputeSpread(50, 100, 300, math.NewInt(vol))
		require.LessOrEqual(t, spread, uint64(300))
		require.GreaterOrEqual(t, spread, uint64(50))
	}
}
