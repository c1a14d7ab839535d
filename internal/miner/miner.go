// Package miner produces new blocks from pending mempool transactions.
package miner

import (
	"github.com/coinforge/ledgerd/config"
	"github.com/coinforge/ledgerd/internal/chain"
	"github.com/coinforge/ledgerd/internal/log"
	"github.com/coinforge/ledgerd/internal/mempool"
	"github.com/coinforge/ledgerd/pkg/block"
	"github.com/coinforge/ledgerd/pkg/tx"
)

// Broadcaster announces a newly mined block to the rest of the network.
// internal/p2p implements this; miner depends only on the interface so the
// two packages don't import each other.
type Broadcaster interface {
	BroadcastBlock(b *block.Block) error
}

// Miner mines new blocks on top of a Chain, draining the Pool of pending
// transactions and crediting itself a reward for each block it produces.
type Miner struct {
	chain       *chain.Chain
	pool        *mempool.Pool
	broadcaster Broadcaster
	minerAddr   string
}

// New returns a Miner that credits rewards to minerAddr.
func New(c *chain.Chain, p *mempool.Pool, b Broadcaster, minerAddr string) *Miner {
	return &Miner{chain: c, pool: p, broadcaster: b, minerAddr: minerAddr}
}

// Mine drains the current mempool, appends a reward transaction for the
// node's own address, and mines a block extending the chain's tip.
//
// Mining the block itself happens outside the chain's lock — proof-of-work
// can take seconds, and holding the lock that long would stall every other
// reader and the HTTP control surface along with it. The lock is reacquired
// only to check whether the tip moved while mining was in progress (another
// peer's block arrived first) and, if not, to append the result. A
// discarded block just means this miner lost the race; its transactions
// remain in the mempool for the next attempt.
func (m *Miner) Mine() (*block.Block, error) {
	m.chain.Lock()
	tip := m.chain.TipLocked()
	m.chain.Unlock()

	data := m.pool.All()
	data = append(data, tx.RewardFor(m.minerAddr, config.MiningReward))

	mined := block.Mine(tip, data)

	m.chain.Lock()
	if m.chain.TipLocked().Hash != tip.Hash {
		m.chain.Unlock()
		log.Miner.Info().Msg("discarding locally mined block: tip advanced during mining")
		return nil, nil
	}
	m.chain.AddBlockLocked(mined)
	blocks := m.chain.BlocksLocked()
	m.chain.Unlock()

	m.pool.ClearConfirmed(blocks)

	log.Miner.Info().
		Int("height", len(blocks)).
		Str("hash", mined.Hash).
		Int("txs", len(mined.Data)).
		Msg("mined block")

	if m.broadcaster != nil {
		if err := m.broadcaster.BroadcastBlock(mined); err != nil {
			log.Miner.Warn().Err(err).Msg("failed to broadcast mined block")
		}
	}

	return mined, nil
}
