package types

import (
	"fmt"
)

// TaxConfigRecord pairs a pool with its tax configuration for genesis.
type TaxConfigRecord struct {
	PoolId uint64        `json:"pool_id"`
	Config PoolTaxConfig `json:"config"`
}

// GenesisState defines the amm module's genesis state
type GenesisState struct {
	Params     Params            `json:"params"`
	Pools      []Pool            `json:"pools"`
	TaxConfigs []TaxConfigRecord `json:"tax_configs"`
	PoolCount  uint64            `json:"pool_count"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
	}
}

// Validate performs basic genesis state validation
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	seen := make(map[uint64]bool, len(gs.Pools))
	for _, pool := range gs.Pools {
		if err := pool.Validate(); err != nil {
			return err
		}
		if seen[pool.Id] {
			return fmt.Errorf("duplicate pool id %d", pool.Id)
		}
		if pool.Id > gs.PoolCount {
			return fmt.Errorf("pool id %d exceeds pool count %d", pool.Id, gs.PoolCount)
		}
		seen[pool.Id] = true
	}
	for _, rec := range gs.TaxConfigs {
		if !seen[rec.PoolId] {
			return fmt.Errorf("tax config for unknown pool %d", rec.PoolId)
		}
		if err := rec.Config.Validate(); err != nil {
			return err
		}
	}
	return nil
}
