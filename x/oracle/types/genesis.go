package types

import (
	"fmt"
)

// GenesisState defines the oracle module's genesis state
type GenesisState struct {
	Params       Params        `json:"params"`
	TokenConfigs []TokenConfig `json:"token_configs"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:       DefaultParams(),
		TokenConfigs: []TokenConfig{},
	}
}

// Validate performs basic genesis state validation
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	seen := make(map[string]bool, len(gs.TokenConfigs))
	for _, cfg := range gs.TokenConfigs {
		if err := cfg.Validate(); err != nil {
			return err
		}
		if seen[cfg.Denom] {
			return fmt.Errorf("duplicate token config for %s", cfg.Denom)
		}
		seen[cfg.Denom] = true
	}
	return nil
}
