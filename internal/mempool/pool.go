// Package mempool holds transactions that have been accepted but not yet
// mined into a block.
package mempool

import (
	"sync"

	"github.com/coinforge/ledgerd/pkg/block"
	"github.com/coinforge/ledgerd/pkg/tx"
)

// Pool is a set of pending transactions keyed by transaction id.
type Pool struct {
	mu  sync.RWMutex
	txs map[string]*tx.Transaction
}

// New returns an empty Pool.
func New() *Pool {
	return &Pool{txs: make(map[string]*tx.Transaction)}
}

// Set stores t, keyed by its id. A transaction already present under the
// same id is replaced — this is how Wallet.AmendTransaction's in-place edits reach
// the pool that other peers see.
func (p *Pool) Set(t *tx.Transaction) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.txs[t.ID] = t
}

// Get returns the pending transaction whose sender is address, if any.
// There is at most one in-flight transaction per sender at a time: a
// sender composing a second transfer before the first is mined amends the
// existing one via Transaction.Update rather than creating a new entry.
func (p *Pool) Get(address string) *tx.Transaction {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, t := range p.txs {
		if t.Input.Address == address {
			return t
		}
	}
	return nil
}

// All returns every pending transaction, in no particular order.
func (p *Pool) All() []*tx.Transaction {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]*tx.Transaction, 0, len(p.txs))
	for _, t := range p.txs {
		out = append(out, t)
	}
	return out
}

// ClearConfirmed removes every pooled transaction that also appears in any
// of blocks, so a transaction the chain just mined stops being offered to
// the next block.
func (p *Pool) ClearConfirmed(blocks []*block.Block) {
	mined := make(map[string]bool)
	for _, b := range blocks {
		for _, t := range b.Data {
			mined[t.ID] = true
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	for id := range p.txs {
		if mined[id] {
			delete(p.txs, id)
		}
	}
}
