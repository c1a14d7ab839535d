// Package block defines the ledger's block type, mining loop, and
// block-level validation.
package block

import "github.com/coinforge/ledgerd/pkg/tx"

// Block is a single unit of the chain: a timestamped batch of transactions
// linked to its predecessor by hash, sealed by a proof-of-work nonce.
type Block struct {
	Timestamp  int64             `json:"timestamp"`
	PrevHash   string            `json:"prev_hash"`
	Hash       string            `json:"hash"`
	Data       []*tx.Transaction `json:"data"`
	Difficulty int               `json:"difficulty"`
	Nonce      Nonce             `json:"nonce"`
}
