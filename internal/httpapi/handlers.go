package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/coinforge/ledgerd/internal/log"
	"github.com/coinforge/ledgerd/pkg/tx"
)

// TxBroadcaster announces a new or updated transaction to the rest of the
// network. internal/p2p implements this; httpapi depends only on the
// interface so the two packages don't import each other.
type TxBroadcaster interface {
	BroadcastTx(t *tx.Transaction) error
}

// SetBroadcaster wires a gossip broadcaster for POST /wallet/transact. A nil
// broadcaster (the default) means transactions stay local to this node.
func (s *Server) SetBroadcaster(b TxBroadcaster) {
	s.broadcaster = b
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	http.Error(w, msg, status)
}

// GET /blockchain
func (s *Server) handleBlockchain(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.chain.Blocks())
}

// GET /blockchain/range?start&end — the chain reversed (newest first),
// sliced [start:end], matching the reference implementation's
// blockchain.to_json()[::-1][start:end].
func (s *Server) handleBlockchainRange(w http.ResponseWriter, r *http.Request) {
	start, err := strconv.Atoi(r.URL.Query().Get("start"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "start must be an integer")
		return
	}
	end, err := strconv.Atoi(r.URL.Query().Get("end"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "end must be an integer")
		return
	}

	blocks := s.chain.Blocks()
	reversed := make([]interface{}, len(blocks))
	for i, b := range blocks {
		reversed[len(blocks)-1-i] = b
	}

	if start < 0 {
		start = 0
	}
	if end > len(reversed) {
		end = len(reversed)
	}
	if start > end {
		start = end
	}

	writeJSON(w, reversed[start:end])
}

// GET /blockchain/length
func (s *Server) handleBlockchainLength(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.chain.Height())
}

// GET /blockchain/mine
func (s *Server) handleBlockchainMine(w http.ResponseWriter, r *http.Request) {
	if s.miner == nil {
		writeErr(w, http.StatusServiceUnavailable, "mining is disabled on this node")
		return
	}
	mined, err := s.miner.Mine()
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	if mined == nil {
		writeErr(w, http.StatusConflict, "lost the race to mine the next block")
		return
	}
	writeJSON(w, mined)
}

// POST /wallet/transact {recipient, amount}
func (s *Server) handleWalletTransact(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, "POST required")
		return
	}

	var body struct {
		Recipient string `json:"recipient"`
		Amount    int64  `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid request body")
		return
	}

	existing := s.pool.Get(s.wallet.Address)

	var txn *tx.Transaction
	if existing != nil {
		if err := s.wallet.AmendTransaction(s.chain, existing, body.Recipient, body.Amount); err != nil {
			writeErr(w, http.StatusBadRequest, err.Error())
			return
		}
		txn = existing
	} else {
		var err error
		txn, err = s.wallet.CreateTransaction(s.chain, body.Recipient, body.Amount)
		if err != nil {
			writeErr(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	s.pool.Set(txn)

	if s.broadcaster != nil {
		if err := s.broadcaster.BroadcastTx(txn); err != nil {
			log.HTTP.Warn().Err(err).Msg("failed to broadcast transaction")
		}
	}

	writeJSON(w, txn)
}

// GET /wallet/info
func (s *Server) handleWalletInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, struct {
		Address string `json:"address"`
		Balance int64  `json:"balance"`
	}{
		Address: s.wallet.Address,
		Balance: s.wallet.Balance(s.chain),
	})
}

// GET /transactions
func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.pool.All())
}

// GET /known-addresses
func (s *Server) handleKnownAddresses(w http.ResponseWriter, r *http.Request) {
	seen := make(map[string]bool)
	var addrs []string
	for _, b := range s.chain.Blocks() {
		for _, t := range b.Data {
			for recipient := range t.Output {
				if !seen[recipient] {
					seen[recipient] = true
					addrs = append(addrs, recipient)
				}
			}
		}
	}
	writeJSON(w, addrs)
}
