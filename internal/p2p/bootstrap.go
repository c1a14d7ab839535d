package p2p

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/coinforge/ledgerd/internal/chain"
	"github.com/coinforge/ledgerd/internal/log"
	"github.com/coinforge/ledgerd/pkg/block"
)

// BootstrapFromPeer fetches the full chain from a running node's HTTP
// control surface and, if it is longer and valid, replaces the local
// chain with it. It is the external "bootstrap/sync from a seed peer"
// collaborator: a brand-new node has nothing to gossip about yet, so it
// needs one synchronous catch-up before joining the gossip topics.
func BootstrapFromPeer(c *chain.Chain, peerHTTPAddr string) error {
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(fmt.Sprintf("http://%s/blockchain", peerHTTPAddr))
	if err != nil {
		return fmt.Errorf("fetch chain from %s: %w", peerHTTPAddr, err)
	}
	defer resp.Body.Close()

	var blocks []*block.Block
	if err := json.NewDecoder(resp.Body).Decode(&blocks); err != nil {
		return fmt.Errorf("decode chain from %s: %w", peerHTTPAddr, err)
	}

	if err := c.ReplaceChain(blocks); err != nil {
		return fmt.Errorf("replace chain from %s: %w", peerHTTPAddr, err)
	}

	log.P2P.Info().Str("peer", peerHTTPAddr).Int("height", len(blocks)).Msg("bootstrapped chain from seed peer")
	return nil
}
