package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// MatchingOrder is an immutable signed record held by its maker on the
// matching venue. The router references orders, it never mutates them.
type MatchingOrder struct {
	Maker        string   `json:"maker"`
	Receiver     string   `json:"receiver"`
	MakerAsset   string   `json:"maker_asset"`
	TakerAsset   string   `json:"taker_asset"`
	MakingAmount math.Int `json:"making_amount"`
	TakingAmount math.Int `json:"taking_amount"`
	Traits       uint64   `json:"traits"`
	Salt         uint64   `json:"salt"`
}

// Validate validates the order record
func (o MatchingOrder) Validate() error {
	if o.Maker == "" {
		return fmt.Errorf("maker cannot be empty")
	}
	if o.MakerAsset == "" || o.TakerAsset == "" {
		return fmt.Errorf("order assets cannot be empty")
	}
	if o.MakerAsset == o.TakerAsset {
		return fmt.Errorf("order assets must differ")
	}
	if o.MakingAmount.IsNil() || !o.MakingAmount.IsPositive() {
		return fmt.Errorf("making amount must be positive")
	}
	if o.TakingAmount.IsNil() || !o.TakingAmount.IsPositive() {
		return fmt.Errorf("taking amount must be positive")
	}
	return nil
}

// MatchingLeg is the matching-venue portion of a hybrid order: the signed
// order to fill, the declared input to consume, and opaque extension data
// forwarded to the venue's pricing hooks.
type MatchingLeg struct {
	Order      MatchingOrder `json:"order"`
	Signature  []byte        `json:"signature"`
	FillAmount math.Int      `json:"fill_amount"`
	Extension  []byte        `json:"extension,omitempty"`
}

// Validate validates the matching leg
func (l MatchingLeg) Validate() error {
	if err := l.Order.Validate(); err != nil {
		return err
	}
	if l.FillAmount.IsNil() || l.FillAmount.IsNegative() {
		return fmt.Errorf("fill amount cannot be negative")
	}
	return nil
}
