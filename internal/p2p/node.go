// Package p2p implements peer gossip over libp2p GossipSub: newly mined
// blocks and newly submitted transactions are published on two topics and
// applied to the node's chain and mempool as they arrive from peers.
package p2p

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/coinforge/ledgerd/internal/log"
	"github.com/libp2p/go-libp2p"
	pubsub "github.com/libp2p/go-libp2p-pubsub"
	"github.com/libp2p/go-libp2p/core/host"
	"github.com/libp2p/go-libp2p/core/peer"
	"github.com/libp2p/go-libp2p/p2p/discovery/mdns"
)

// rendezvous is the mDNS discovery namespace shared by every node on a
// local network.
const rendezvous = "ledgerd"

// Config holds P2P node configuration.
type Config struct {
	ListenAddr string
	Port       int
	NoDiscover bool // disable mDNS local-network discovery
}

// Node is a libp2p host joined to the block and transaction gossip topics.
type Node struct {
	host   host.Host
	pubsub *pubsub.PubSub
	config Config
	ctx    context.Context
	cancel context.CancelFunc

	topicBlock *pubsub.Topic
	topicTx    *pubsub.Topic
	subBlock   *pubsub.Subscription
	subTx      *pubsub.Subscription

	blockHandler func(peer.ID, []byte)
	txHandler    func(peer.ID, []byte)

	mu    sync.RWMutex
	peers map[peer.ID]*Peer
}

// New creates a P2P node with the given config. Call Start to bring up the
// libp2p host and join the gossip topics.
func New(cfg Config) *Node {
	ctx, cancel := context.WithCancel(context.Background())
	return &Node{
		config: cfg,
		ctx:    ctx,
		cancel: cancel,
		peers:  make(map[peer.ID]*Peer),
	}
}

// Start initializes the libp2p host and GossipSub, and joins the block and
// transaction topics.
func (n *Node) Start() error {
	addr := fmt.Sprintf("/ip4/%s/tcp/%d", n.config.ListenAddr, n.config.Port)

	h, err := libp2p.New(libp2p.ListenAddrStrings(addr))
	if err != nil {
		return fmt.Errorf("create libp2p host: %w", err)
	}
	n.host = h

	ps, err := pubsub.NewGossipSub(n.ctx, h)
	if err != nil {
		h.Close()
		return fmt.Errorf("create pubsub: %w", err)
	}
	n.pubsub = ps

	if err := n.joinTopics(); err != nil {
		h.Close()
		return err
	}

	go n.readLoop(n.subBlock, n.handleBlockMessage)
	go n.readLoop(n.subTx, n.handleTxMessage)

	if !n.config.NoDiscover {
		n.startMDNS()
	}

	log.P2P.Info().Str("id", h.ID().String()).Strs("addrs", n.Addrs()).Msg("p2p node started")
	return nil
}

// Stop shuts down the P2P node.
func (n *Node) Stop() error {
	n.cancel()
	if n.subBlock != nil {
		n.subBlock.Cancel()
	}
	if n.subTx != nil {
		n.subTx.Cancel()
	}
	if n.host != nil {
		return n.host.Close()
	}
	return nil
}

// Host returns the underlying libp2p host (nil before Start).
func (n *Node) Host() host.Host {
	return n.host
}

// ID returns the peer ID of this node.
func (n *Node) ID() peer.ID {
	if n.host == nil {
		return ""
	}
	return n.host.ID()
}

// Addrs returns the full multiaddrs of this node.
func (n *Node) Addrs() []string {
	if n.host == nil {
		return nil
	}
	var addrs []string
	for _, a := range n.host.Addrs() {
		addrs = append(addrs, fmt.Sprintf("%s/p2p/%s", a, n.host.ID()))
	}
	return addrs
}

// SetBlockHandler registers a callback for incoming blocks. The callback
// receives the sender peer ID and the raw message bytes.
func (n *Node) SetBlockHandler(fn func(from peer.ID, data []byte)) {
	n.blockHandler = fn
}

// SetTxHandler registers a callback for incoming transactions. The callback
// receives the sender peer ID and the raw message bytes.
func (n *Node) SetTxHandler(fn func(from peer.ID, data []byte)) {
	n.txHandler = fn
}

// PeerCount returns the number of peers seen over gossip or mDNS so far.
func (n *Node) PeerCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.peers)
}

func (n *Node) addPeer(id peer.ID, source string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, exists := n.peers[id]; !exists {
		n.peers[id] = &Peer{ID: id, ConnectedAt: time.Now(), Source: source}
	}
}

func (n *Node) joinTopics() error {
	var err error
	n.topicBlock, err = n.pubsub.Join(TopicBlocks)
	if err != nil {
		return fmt.Errorf("join block topic: %w", err)
	}
	n.topicTx, err = n.pubsub.Join(TopicTransactions)
	if err != nil {
		return fmt.Errorf("join tx topic: %w", err)
	}
	n.subBlock, err = n.topicBlock.Subscribe()
	if err != nil {
		return fmt.Errorf("subscribe block: %w", err)
	}
	n.subTx, err = n.topicTx.Subscribe()
	if err != nil {
		return fmt.Errorf("subscribe tx: %w", err)
	}
	return nil
}

func (n *Node) readLoop(sub *pubsub.Subscription, handler func(*pubsub.Message)) {
	for {
		msg, err := sub.Next(n.ctx)
		if err != nil {
			return // Context cancelled.
		}
		if msg.ReceivedFrom == n.host.ID() {
			continue // Skip own messages.
		}
		handler(msg)
	}
}

func (n *Node) handleBlockMessage(msg *pubsub.Message) {
	defer func() { recover() }()
	n.addPeer(msg.ReceivedFrom, "gossip")
	if n.blockHandler != nil {
		n.blockHandler(msg.ReceivedFrom, msg.Data)
	}
}

func (n *Node) handleTxMessage(msg *pubsub.Message) {
	defer func() { recover() }()
	n.addPeer(msg.ReceivedFrom, "gossip")
	if n.txHandler != nil {
		n.txHandler(msg.ReceivedFrom, msg.Data)
	}
}

func (n *Node) startMDNS() {
	svc := mdns.NewMdnsService(n.host, rendezvous, &discoveryNotifee{node: n})
	// mDNS failure is non-fatal: the node still works with explicit seeds.
	if err := svc.Start(); err != nil {
		log.P2P.Warn().Err(err).Msg("mdns discovery unavailable")
	}
}
