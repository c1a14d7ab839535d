// ledgerd is the ledger full node daemon.
//
// Usage:
//
//	ledgerd [options]    Run a node
//	ledgerd --help       Show help
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/coinforge/ledgerd/config"
	"github.com/coinforge/ledgerd/internal/log"
	"github.com/coinforge/ledgerd/internal/node"
)

func main() {
	cfg, _, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	n, err := node.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := n.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log.Chain.Info().
		Str("http", n.HTTPAddr()).
		Str("wallet", n.Wallet().Address).
		Int("height", n.Chain().Height()).
		Bool("mining", cfg.Mining.Enabled).
		Msg("ledgerd started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh

	log.Chain.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	n.Stop()
	log.Chain.Info().Msg("goodbye")
}
