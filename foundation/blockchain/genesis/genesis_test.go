package genesis_test

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/ardanlabs/chain/foundation/blockchain/genesis"
)

func Test_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "genesis.json")

	gen := genesis.Genesis{
		Date:       time.Date(2023, time.March, 15, 0, 0, 0, 0, time.UTC),
		ChainID:    1,
		Difficulty: 1_000_000,
		Balances: map[string]uint64{
			"alice": 100_000,
			"bob":   100_000,
		},
	}

	if err := genesis.Save(path, gen); err != nil {
		t.Fatalf("saving genesis: %v", err)
	}

	loaded, err := genesis.Load(path)
	if err != nil {
		t.Fatalf("loading genesis: %v", err)
	}

	if !reflect.DeepEqual(loaded, gen) {
		t.Fatalf("expected %+v, got %+v", gen, loaded)
	}
}

func Test_LoadMissing(t *testing.T) {
	if _, err := genesis.Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected an error loading a missing genesis file")
	}
}
