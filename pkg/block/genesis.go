package block

import "github.com/coinforge/ledgerd/pkg/tx"

// Genesis returns the fixed first block of every chain. It is exempt from
// the proof-of-work and hash-reconstruction checks IsValidBlock applies to
// every other block, and is identified by exact equality against this
// constant rather than by height.
func Genesis() *Block {
	return &Block{
		Timestamp:  1,
		PrevHash:   "genesis_prev_hash",
		Hash:       "genesis_hash",
		Data:       []*tx.Transaction{},
		Difficulty: 10,
		Nonce:      GenesisNonce(),
	}
}

// IsGenesis reports whether b is exactly the genesis block.
func IsGenesis(b *Block) bool {
	g := Genesis()
	if b.Timestamp != g.Timestamp || b.PrevHash != g.PrevHash || b.Hash != g.Hash ||
		b.Difficulty != g.Difficulty || b.Nonce != g.Nonce || len(b.Data) != 0 {
		return false
	}
	return true
}
