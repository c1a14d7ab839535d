package block

import (
	"encoding/json"
	"fmt"
)

// genesisNonceLiteral is the fixed string value the genesis block carries
// in place of a mined integer nonce.
const genesisNonceLiteral = "genesis_nonce"

// Nonce is the PoW nonce field. Every mined block carries an integer; the
// genesis block alone carries the literal string "genesis_nonce" instead,
// so the wire form is a tagged union rather than a plain integer.
type Nonce struct {
	Value     int64
	IsGenesis bool
}

// NonceOf wraps a mined integer nonce.
func NonceOf(v int64) Nonce {
	return Nonce{Value: v}
}

// GenesisNonce is the fixed genesis sentinel.
func GenesisNonce() Nonce {
	return Nonce{IsGenesis: true}
}

// MarshalJSON encodes a mined nonce as a JSON number, and the genesis
// sentinel as the literal string "genesis_nonce".
func (n Nonce) MarshalJSON() ([]byte, error) {
	if n.IsGenesis {
		return json.Marshal(genesisNonceLiteral)
	}
	return json.Marshal(n.Value)
}

// UnmarshalJSON accepts either a JSON number or the genesis literal string.
func (n *Nonce) UnmarshalJSON(data []byte) error {
	var asInt int64
	if err := json.Unmarshal(data, &asInt); err == nil {
		*n = Nonce{Value: asInt}
		return nil
	}

	var asString string
	if err := json.Unmarshal(data, &asString); err != nil {
		return fmt.Errorf("nonce must be a number or %q: %w", genesisNonceLiteral, err)
	}
	if asString != genesisNonceLiteral {
		return fmt.Errorf("nonce string must be %q, got %q", genesisNonceLiteral, asString)
	}
	*n = Nonce{IsGenesis: true}
	return nil
}
