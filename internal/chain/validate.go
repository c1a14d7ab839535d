package chain

import (
	"errors"
	"fmt"

	"github.com/coinforge/ledgerd/config"
	"github.com/coinforge/ledgerd/pkg/block"
	"github.com/coinforge/ledgerd/pkg/tx"
)

// Validation errors.
var (
	ErrShorterChain     = errors.New("incoming chain must be longer")
	ErrInvalidGenesis   = errors.New("genesis block invalid")
	ErrDuplicateTx      = errors.New("transaction id is not unique across the chain")
	ErrMultipleRewards  = errors.New("block has more than one mining reward")
	ErrInvalidReward    = errors.New("reward transaction does not pay exactly the mining reward")
	ErrStaleInputAmount = errors.New("transaction input amount does not match sender's historic balance")
)

// ReplaceChain swaps in candidate if it is both longer than the current
// chain and entirely valid. Used when a peer's BLOCK gossip announces a
// chain the local node has not seen.
func (c *Chain) ReplaceChain(candidate []*block.Block) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(candidate) <= len(c.blocks) {
		return ErrShorterChain
	}
	if err := IsValidChain(candidate); err != nil {
		return fmt.Errorf("incoming chain invalid: %w", err)
	}

	c.blocks = candidate
	return nil
}

// IsValidChain checks that chain begins with the exact genesis block, that
// every block properly extends its predecessor, and that every transaction
// in the chain is individually and collectively valid.
func IsValidChain(blocks []*block.Block) error {
	if len(blocks) == 0 || !block.IsGenesis(blocks[0]) {
		return ErrInvalidGenesis
	}

	for i := 1; i < len(blocks); i++ {
		if err := block.IsValidBlock(blocks[i-1], blocks[i]); err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
	}

	return IsValidTransactionChain(blocks)
}

// IsValidTransactionChain enforces the rules that span the whole chain: no
// transaction id repeats, each block carries at most one reward
// transaction, and every non-reward transaction's declared input amount
// still matches the sender's balance at the point it was recorded.
func IsValidTransactionChain(blocks []*block.Block) error {
	seen := make(map[string]bool)

	for i, b := range blocks {
		hasReward := false

		for _, t := range b.Data {
			if seen[t.ID] {
				return fmt.Errorf("%w: %s", ErrDuplicateTx, t.ID)
			}
			seen[t.ID] = true

			if t.IsReward() {
				if hasReward {
					return fmt.Errorf("%w: block %s", ErrMultipleRewards, b.Hash)
				}
				hasReward = true

				if len(t.Output) != 1 {
					return fmt.Errorf("%w: transaction %s", ErrInvalidReward, t.ID)
				}
				for _, amount := range t.Output {
					if amount != config.MiningReward {
						return fmt.Errorf("%w: transaction %s", ErrInvalidReward, t.ID)
					}
				}
				continue
			}

			historicBalance := CalculateBalance(blocks[:i], t.Input.Address)
			if historicBalance != t.Input.Amount {
				return fmt.Errorf("%w: transaction %s", ErrStaleInputAmount, t.ID)
			}

			if err := tx.IsValidTransaction(t); err != nil {
				return err
			}
		}
	}

	return nil
}

// CalculateBalance replays blocks to compute address's current balance: it
// starts from config.StartingBalance, resets to the most recent output
// address received once its own transaction is found, then accumulates
// every later output credited to it. A reward transaction's sentinel
// address never equals a real wallet address, so the reset branch never
// fires for reward transactions — a documented, intentional quirk of the
// reference algorithm, not a bug to be "fixed" here.
func CalculateBalance(blocks []*block.Block, address string) int64 {
	balance := config.StartingBalance

	for _, b := range blocks {
		for _, t := range b.Data {
			if t.Input.Address == address {
				balance = t.Output[address]
				continue
			}
			if amount, credited := t.Output[address]; credited {
				balance += amount
			}
		}
	}

	return balance
}
