package p2p

// GossipSub topic names. The network has exactly two buses: newly mined
// blocks and newly submitted transactions. Peers are assumed non-malicious,
// so there is no handshake, ban-list, or per-topic access control beyond
// subscribing.
const (
	TopicBlocks       = "/ledgerd/block/1.0.0"
	TopicTransactions = "/ledgerd/tx/1.0.0"
)
