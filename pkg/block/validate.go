package block

import (
	"errors"
	"fmt"

	"github.com/coinforge/ledgerd/pkg/crypto"
	"github.com/coinforge/ledgerd/pkg/types"
)

// Validation errors, checked in the order IsValidBlock applies them.
var (
	ErrPrevHashMismatch  = errors.New("block prev_hash incorrect")
	ErrMalformedHash     = errors.New("block hash is not valid hex")
	ErrProofOfWorkFailed = errors.New("proof of work requirement not met")
	ErrDifficultyJump    = errors.New("block difficulty must only adjust by 1")
	ErrHashMismatch      = errors.New("block hash incorrect")
)

// IsValidBlock checks block against prev in the order a fresh block must
// satisfy to extend the chain: correct predecessor link, well-formed hash,
// proof-of-work met, difficulty adjusted by at most one, and the hash is a
// faithful digest of the block's own fields.
func IsValidBlock(prev, b *Block) error {
	if b.PrevHash != prev.Hash {
		return ErrPrevHashMismatch
	}

	if !types.IsHex64(b.Hash) {
		return ErrMalformedHash
	}

	binary := crypto.HexToBinary(b.Hash)
	if b.Difficulty < 0 || len(binary) < b.Difficulty || binary[:b.Difficulty] != zeros(b.Difficulty) {
		return ErrProofOfWorkFailed
	}

	jump := prev.Difficulty - b.Difficulty
	if jump < -1 || jump > 1 {
		return ErrDifficultyJump
	}

	reconstructed := crypto.Hash(b.Timestamp, b.PrevHash, b.Data, b.Difficulty, nonceValue(b.Nonce))
	if b.Hash != reconstructed {
		return fmt.Errorf("%w: got %s, want %s", ErrHashMismatch, b.Hash, reconstructed)
	}

	return nil
}

// nonceValue returns the value Mine hashed over for this nonce: the integer
// for a mined block, or the genesis literal for the genesis block.
func nonceValue(n Nonce) any {
	if n.IsGenesis {
		return genesisNonceLiteral
	}
	return n.Value
}
