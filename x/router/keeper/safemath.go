package keeper

import (
	"fmt"
	"math/big"

	"cosmossdk.io/math"
)

var maxInt256 = new(big.Int).Exp(big.NewInt(2), big.NewInt(256), nil)

// SafeAdd adds two math.Int values with overflow checking
func SafeAdd(a, b math.Int) (math.Int, error) {
	result := new(big.Int).Add(a.BigInt(), b.BigInt())
	if result.Cmp(maxInt256) >= 0 {
		return math.Int{}, fmt.Errorf("overflow: addition result exceeds maximum value")
	}
	return math.NewIntFromBigInt(result), nil
}

// SafeMulDiv performs (a * b) / c at full precision, truncating the result.
// The multiply runs in big.Int space so the intermediate product cannot
// overflow or bias the rounding.
func SafeMulDiv(a, b, c math.Int) (math.Int, error) {
	if c.IsZero() {
		return math.Int{}, fmt.Errorf("division by zero")
	}

	intermediate := new(big.Int).Mul(a.BigInt(), b.BigInt())
	result := new(big.Int).Quo(intermediate, c.BigInt())
	if result.CmpAbs(maxInt256) >= 0 {
		return math.Int{}, fmt.Errorf("overflow: result exceeds maximum value")
	}
	return math.NewIntFromBigInt(result), nil
}
