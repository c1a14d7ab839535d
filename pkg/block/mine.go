package block

import (
	"time"

	"github.com/coinforge/ledgerd/config"
	"github.com/coinforge/ledgerd/pkg/crypto"
	"github.com/coinforge/ledgerd/pkg/tx"
)

// Mine seals a new block on top of prev carrying data, searching nonces
// until the resulting hash's leading bits satisfy the current difficulty.
// Runs until a valid nonce is found; callers that need to bound or cancel
// this loop do so by not calling it on a lock-held path (see the chain
// package's concurrency notes).
func Mine(prev *Block, data []*tx.Transaction) *Block {
	timestamp := time.Now().UnixNano()
	difficulty := AdjustDifficulty(prev, timestamp)

	var nonce int64
	hash := crypto.Hash(timestamp, prev.Hash, data, difficulty, nonce)

	for crypto.HexToBinary(hash)[:difficulty] != zeros(difficulty) {
		nonce++
		timestamp = time.Now().UnixNano()
		difficulty = AdjustDifficulty(prev, timestamp)
		hash = crypto.Hash(timestamp, prev.Hash, data, difficulty, nonce)
	}

	return &Block{
		Timestamp:  timestamp,
		PrevHash:   prev.Hash,
		Hash:       hash,
		Data:       data,
		Difficulty: difficulty,
		Nonce:      NonceOf(nonce),
	}
}

// AdjustDifficulty raises the previous block's difficulty by one if newTimestamp
// arrived before MineRate has elapsed, lowers it by one otherwise, and never
// lets difficulty fall below 1.
func AdjustDifficulty(prev *Block, newTimestamp int64) int {
	if newTimestamp-prev.Timestamp < config.MineRate {
		return prev.Difficulty + 1
	}
	if prev.Difficulty-1 < 1 {
		return 1
	}
	return prev.Difficulty - 1
}

func zeros(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '0'
	}
	return string(b)
}
