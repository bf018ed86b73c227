// Package genesis maintains access to the genesis file.
package genesis

import (
	"encoding/json"
	"os"
	"time"
)

// Genesis represents the genesis file. It fixes the chain's starting
// balances and the constant difficulty parameter.
type Genesis struct {
	Date       time.Time         `json:"date"`
	ChainID    uint16            `json:"chain_id"`   // The chain id represents an unique id for this running instance.
	Difficulty uint64            `json:"difficulty"` // How difficult it needs to be to solve the work problem.
	Balances   map[string]uint64 `json:"balances"`
}

// =============================================================================

// Load opens and consumes the genesis file.
func Load(path string) (Genesis, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Genesis{}, err
	}

	var genesis Genesis
	if err := json.Unmarshal(content, &genesis); err != nil {
		return Genesis{}, err
	}

	return genesis, nil
}

// Save writes the genesis information to the specified file.
func Save(path string, genesis Genesis) error {
	data, err := json.MarshalIndent(genesis, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
