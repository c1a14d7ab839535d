package p2p

import (
	"encoding/json"

	"github.com/coinforge/ledgerd/internal/chain"
	"github.com/coinforge/ledgerd/internal/log"
	"github.com/coinforge/ledgerd/internal/mempool"
	"github.com/coinforge/ledgerd/pkg/block"
	"github.com/coinforge/ledgerd/pkg/tx"
	"github.com/libp2p/go-libp2p/core/peer"
)

// Wire connects a Node's inbound gossip to a chain and mempool: an incoming
// block is appended to the local chain as a single-block extension and
// offered to ReplaceChain; an incoming transaction is placed straight into
// the mempool. This mirrors the reference implementation's pubsub listener,
// which does exactly this on its BLOCK and TRANSACTION channels.
func Wire(n *Node, c *chain.Chain, p *mempool.Pool) {
	n.SetBlockHandler(func(_ peer.ID, data []byte) {
		var b block.Block
		if err := json.Unmarshal(data, &b); err != nil {
			log.P2P.Warn().Err(err).Msg("received malformed block")
			return
		}

		candidate := append(c.Blocks(), &b)
		if err := c.ReplaceChain(candidate); err != nil {
			log.P2P.Debug().Err(err).Msg("did not replace local chain")
			return
		}
		p.ClearConfirmed(c.Blocks())
		log.P2P.Info().Str("hash", b.Hash).Msg("replaced local chain with gossiped block")
	})

	n.SetTxHandler(func(_ peer.ID, data []byte) {
		var t tx.Transaction
		if err := json.Unmarshal(data, &t); err != nil {
			log.P2P.Warn().Err(err).Msg("received malformed transaction")
			return
		}
		p.Set(&t)
		log.P2P.Debug().Str("id", t.ID).Msg("added gossiped transaction to mempool")
	})
}
