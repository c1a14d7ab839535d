// Package chain holds the replicated list of blocks and the rules for
// extending or replacing it.
package chain

import (
	"sync"

	"github.com/coinforge/ledgerd/pkg/block"
)

// Chain is the node's local view of the ledger: an ordered list of blocks
// starting at the genesis block. All access goes through the embedded
// mutex — the same lock the node uses to guard the mempool, so mining and
// gossip never observe the chain and mempool out of sync with each other.
type Chain struct {
	mu     sync.Mutex
	blocks []*block.Block
}

// New returns a Chain containing only the genesis block.
func New() *Chain {
	return &Chain{blocks: []*block.Block{block.Genesis()}}
}

// Lock and Unlock expose the chain's mutex directly so a node can hold one
// lock across a read of the chain together with the mempool (see
// internal/miner, which clones the tail, mines outside the lock, then
// reacquires it to append-or-discard).
func (c *Chain) Lock()   { c.mu.Lock() }
func (c *Chain) Unlock() { c.mu.Unlock() }

// Blocks returns a shallow copy of the chain's block slice, safe for a
// caller to range over without holding the chain's lock.
func (c *Chain) Blocks() []*block.Block {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.blocksLocked()
}

// blocksLocked returns a shallow copy; caller must hold the lock.
func (c *Chain) blocksLocked() []*block.Block {
	out := make([]*block.Block, len(c.blocks))
	copy(out, c.blocks)
	return out
}

// BlocksLocked is the exported form of blocksLocked, for callers outside
// this package (internal/miner) that already hold the lock via Lock.
func (c *Chain) BlocksLocked() []*block.Block {
	return c.blocksLocked()
}

// TipLocked returns the last block on the chain; caller must hold the lock.
func (c *Chain) TipLocked() *block.Block {
	return c.blocks[len(c.blocks)-1]
}

// Height returns the number of blocks on the chain, including genesis.
func (c *Chain) Height() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.blocks)
}

// AddBlockLocked appends b to the chain. Caller must hold the lock and have
// already validated b against the current tip.
func (c *Chain) AddBlockLocked(b *block.Block) {
	c.blocks = append(c.blocks, b)
}

// AddBlock validates and appends a single block built on the current tip.
// This is the path trusted local callers (development seeding) use; the
// miner appends through AddBlockLocked after its own tip check, and a
// candidate chain received over gossip instead goes through ReplaceChain.
func (c *Chain) AddBlock(b *block.Block) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	tip := c.TipLocked()
	if err := block.IsValidBlock(tip, b); err != nil {
		return err
	}
	c.AddBlockLocked(b)
	return nil
}
