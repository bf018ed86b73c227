// Package digest provides the content hashing support used to identify
// blocks and to commit to block bodies and chain state.
package digest

import (
	"crypto/sha256"
	"encoding/json"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ZeroHash represents a hash code of zeros. It is the parent reference of
// the genesis header and the commitment for an empty block body.
const ZeroHash string = "0x0000000000000000000000000000000000000000000000000000000000000000"

// Hash returns a unique string for the value. The value is serialized to
// JSON first so any value with a deterministic JSON form can be hashed.
func Hash(value any) string {
	data, err := json.Marshal(value)
	if err != nil {
		return ZeroHash
	}

	hash := sha256.Sum256(data)
	return hexutil.Encode(hash[:])
}

// ToBig converts the specified hash string into a big integer so hashes
// can be compared against a proof of work target.
func ToBig(hash string) *big.Int {
	data, err := hexutil.Decode(hash)
	if err != nil {
		return big.NewInt(0)
	}

	return new(big.Int).SetBytes(data)
}
