// Package httpapi implements the node's REST control surface: a thin
// net/http server exposing the chain, mempool, and wallet to local tools
// and other peers' bootstrap requests.
package httpapi

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/coinforge/ledgerd/internal/chain"
	"github.com/coinforge/ledgerd/internal/log"
	"github.com/coinforge/ledgerd/internal/mempool"
	"github.com/coinforge/ledgerd/internal/miner"
	"github.com/coinforge/ledgerd/internal/wallet"
)

// Server is the node's REST control surface.
type Server struct {
	addr   string
	chain  *chain.Chain
	pool   *mempool.Pool
	wallet *wallet.Wallet
	miner  *miner.Miner

	broadcaster TxBroadcaster

	server *http.Server
	ln     net.Listener
}

// New creates a Server bound to addr (host:port). The miner may be nil when
// this node does not mine locally — GET /blockchain/mine then fails.
func New(addr string, c *chain.Chain, p *mempool.Pool, w *wallet.Wallet, m *miner.Miner) *Server {
	s := &Server{
		addr:   addr,
		chain:  c,
		pool:   p,
		wallet: w,
		miner:  m,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/blockchain", s.handleBlockchain)
	mux.HandleFunc("/blockchain/range", s.handleBlockchainRange)
	mux.HandleFunc("/blockchain/length", s.handleBlockchainLength)
	mux.HandleFunc("/blockchain/mine", s.handleBlockchainMine)
	mux.HandleFunc("/wallet/transact", s.handleWalletTransact)
	mux.HandleFunc("/wallet/info", s.handleWalletInfo)
	mux.HandleFunc("/transactions", s.handleTransactions)
	mux.HandleFunc("/known-addresses", s.handleKnownAddresses)

	s.server = &http.Server{
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second, // mining a block can take a few seconds
	}
	return s
}

// Start begins listening and serving in a background goroutine. It returns
// once the listener is bound.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("http listen: %w", err)
	}
	s.ln = ln

	go func() {
		if err := s.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			log.HTTP.Error().Err(err).Msg("http server error")
		}
	}()
	return nil
}

// Addr returns the listener's bound address (useful when bound to :0).
func (s *Server) Addr() string {
	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.addr
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	fmt.Fprint(w, "Welcome to the Blockchain")
}
