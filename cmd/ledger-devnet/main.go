// ledger-devnet boots two in-process ledger nodes, lets them discover each
// other over the local network, mines a handful of blocks on one node, and
// confirms the other converges to the same chain via gossip.
//
// Usage: go run ./cmd/ledger-devnet
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coinforge/ledgerd/config"
	klog "github.com/coinforge/ledgerd/internal/log"
	"github.com/coinforge/ledgerd/internal/node"
)

const (
	numBlocks   = 10
	mineDelay   = 500 * time.Millisecond
	convergeFor = 10 * time.Second
)

func main() {
	klog.Init("info", false, "")
	logger := klog.WithComponent("devnet")

	logger.Info().Msg("starting a two-node local devnet")

	minerCfg := config.Default()
	minerCfg.HTTP.Port = 0
	minerCfg.Mining.Enabled = true

	follower, err := node.New(minerCfg)
	if err != nil {
		fatal(err)
	}
	if err := follower.Start(); err != nil {
		fatal(err)
	}
	defer follower.Stop()
	logger.Info().Str("http", follower.HTTPAddr()).Msg("follower node started")

	producerCfg := config.Default()
	producerCfg.HTTP.Port = 0
	producerCfg.Mining.Enabled = true
	producerCfg.P2P.Seed = follower.HTTPAddr()

	producer, err := node.New(producerCfg)
	if err != nil {
		fatal(err)
	}
	if err := producer.Start(); err != nil {
		fatal(err)
	}
	defer producer.Stop()
	logger.Info().Str("http", producer.HTTPAddr()).Msg("producer node started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	for i := 0; i < numBlocks; i++ {
		select {
		case <-sigCh:
			logger.Info().Msg("interrupted, shutting down early")
			return
		case <-time.After(mineDelay):
		}
		if _, err := producer.Miner().Mine(); err != nil {
			logger.Warn().Err(err).Msg("mine failed")
			continue
		}
		logger.Info().Int("height", producer.Chain().Height()).Msg("produced block")
	}

	deadline := time.Now().Add(convergeFor)
	for time.Now().Before(deadline) {
		if follower.Chain().Height() >= producer.Chain().Height() {
			break
		}
		select {
		case <-sigCh:
			return
		case <-time.After(200 * time.Millisecond):
		}
	}

	logger.Info().
		Int("producer_height", producer.Chain().Height()).
		Int("follower_height", follower.Chain().Height()).
		Msg("convergence check complete")

	if follower.Chain().Height() < producer.Chain().Height() {
		logger.Warn().Msg("follower did not converge within the timeout")
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
