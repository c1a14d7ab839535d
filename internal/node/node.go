// Package node wires together a chain, mempool, wallet, miner, P2P node,
// and HTTP control surface into a single runnable ledger node.
package node

import (
	"context"
	"fmt"
	"sync"

	"github.com/coinforge/ledgerd/config"
	"github.com/coinforge/ledgerd/internal/chain"
	"github.com/coinforge/ledgerd/internal/httpapi"
	"github.com/coinforge/ledgerd/internal/log"
	"github.com/coinforge/ledgerd/internal/mempool"
	"github.com/coinforge/ledgerd/internal/miner"
	"github.com/coinforge/ledgerd/internal/p2p"
	"github.com/coinforge/ledgerd/internal/wallet"
	"github.com/coinforge/ledgerd/pkg/block"
	"github.com/coinforge/ledgerd/pkg/tx"
)

// Node is a fully-initialized ledger node.
type Node struct {
	cfg *config.Config

	chain   *chain.Chain
	pool    *mempool.Pool
	wallet  *wallet.Wallet
	miner   *miner.Miner
	p2pNode *p2p.Node
	http    *httpapi.Server

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New wires up a Node from cfg but does not start any network listeners or
// background goroutines; call Start for that.
func New(cfg *config.Config) (*Node, error) {
	if err := log.Init(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	w, err := wallet.New()
	if err != nil {
		return nil, fmt.Errorf("create wallet: %w", err)
	}

	c := chain.New()
	pool := mempool.New()

	p2pNode := p2p.New(p2p.Config{
		ListenAddr: "0.0.0.0",
		Port:       cfg.P2P.ListenPort,
		NoDiscover: cfg.P2P.NoDiscover,
	})

	var m *miner.Miner
	if cfg.Mining.Enabled {
		var broadcaster miner.Broadcaster
		if p2pNode != nil {
			broadcaster = p2pNode
		}
		m = miner.New(c, pool, broadcaster, w.Address)
	}

	httpAddr := fmt.Sprintf("%s:%d", cfg.HTTP.Addr, cfg.HTTP.Port)
	srv := httpapi.New(httpAddr, c, pool, w, m)
	if p2pNode != nil {
		srv.SetBroadcaster(p2pNode)
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Node{
		cfg:     cfg,
		chain:   c,
		pool:    pool,
		wallet:  w,
		miner:   m,
		p2pNode: p2pNode,
		http:    srv,
		ctx:     ctx,
		cancel:  cancel,
	}, nil
}

// Start brings up the HTTP surface, the P2P node (joining gossip topics and
// optionally bootstrapping from a seed peer's HTTP API), and, if configured,
// preloads development data.
func (n *Node) Start() error {
	if err := n.http.Start(); err != nil {
		return fmt.Errorf("start http api: %w", err)
	}
	log.HTTP.Info().Str("addr", n.http.Addr()).Msg("http control surface started")

	if n.cfg.P2P.Seed != "" {
		if err := p2p.BootstrapFromPeer(n.chain, n.cfg.P2P.Seed); err != nil {
			log.Chain.Warn().Err(err).Str("seed", n.cfg.P2P.Seed).Msg("bootstrap from seed failed, starting from genesis")
		}
	}

	if n.p2pNode != nil {
		if err := n.p2pNode.Start(); err != nil {
			return fmt.Errorf("start p2p: %w", err)
		}
		p2p.Wire(n.p2pNode, n.chain, n.pool)
		log.P2P.Info().Str("id", n.p2pNode.ID().String()).Msg("p2p node started")
	}

	if n.cfg.Seed {
		n.seedDevelopmentData()
	}

	return nil
}

// Stop shuts everything down in reverse order.
func (n *Node) Stop() {
	n.cancel()
	n.wg.Wait()

	if n.p2pNode != nil {
		n.p2pNode.Stop()
	}
	_ = n.http.Stop()
}

// HTTPAddr returns the address the HTTP control surface is listening on.
func (n *Node) HTTPAddr() string {
	return n.http.Addr()
}

// Chain returns the node's chain, for callers embedding Node directly
// (tests, cmd/ledger-devnet).
func (n *Node) Chain() *chain.Chain {
	return n.chain
}

// Wallet returns the node's wallet identity.
func (n *Node) Wallet() *wallet.Wallet {
	return n.wallet
}

// Miner returns the node's miner, or nil if mining is disabled.
func (n *Node) Miner() *miner.Miner {
	return n.miner
}

// seedDevelopmentData preloads ten blocks of synthetic transfers and three
// pending mempool entries, mirroring the reference implementation's
// SEED_DATA developer convenience so a freshly started node has something
// to look at immediately.
func (n *Node) seedDevelopmentData() {
	for i := 0; i < 10; i++ {
		a, err1 := wallet.New()
		b, err2 := wallet.New()
		if err1 != nil || err2 != nil {
			continue
		}
		t1 := tx.RewardFor(a.Address, 25)
		t2 := tx.RewardFor(b.Address, 25)

		n.chain.Lock()
		tip := n.chain.TipLocked()
		n.chain.Unlock()

		next := block.Mine(tip, []*tx.Transaction{t1, t2})
		if err := n.chain.AddBlock(next); err != nil {
			log.Chain.Warn().Err(err).Msg("failed to seed development block")
		}
	}

	for i := 0; i < 3; i++ {
		a, err := wallet.New()
		if err != nil {
			continue
		}
		pending := tx.RewardFor(a.Address, 10)
		pending.Input.Address = n.wallet.Address
		n.pool.Set(pending)
	}

	log.Chain.Info().Int("height", n.chain.Height()).Msg("seeded development data")
}
