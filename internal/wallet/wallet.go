// Package wallet holds a node's signing identity and derives its spendable
// balance from chain history.
package wallet

import (
	"github.com/coinforge/ledgerd/internal/chain"
	"github.com/coinforge/ledgerd/pkg/crypto"
	"github.com/coinforge/ledgerd/pkg/tx"
	"github.com/coinforge/ledgerd/pkg/types"
)

// Wallet is a single ephemeral keypair with a randomly generated address.
// There is no persistence and no key derivation: a fresh Wallet is created
// each time a node starts, exactly as the reference implementation does.
type Wallet struct {
	Address    string
	privateKey *crypto.PrivateKey
	publicKey  string // PEM-encoded
}

// New generates a fresh wallet identity.
func New() (*Wallet, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, err
	}
	return &Wallet{
		Address:    types.NewAddress(),
		privateKey: key,
		publicKey:  key.PublicKeyPEM(),
	}, nil
}

// PublicKey returns the wallet's PEM-encoded public key.
func (w *Wallet) PublicKey() string {
	return w.publicKey
}

// Balance derives the wallet's current balance by replaying c's history.
// It is never cached on the struct — every call re-derives it from chain
// state, which is the only source of truth for balances in this model.
func (w *Wallet) Balance(c *chain.Chain) int64 {
	return chain.CalculateBalance(c.Blocks(), w.Address)
}

// CreateTransaction builds and signs a transfer of amount to recipient,
// using the wallet's current balance on c as the sender's declared input
// amount.
func (w *Wallet) CreateTransaction(c *chain.Chain, recipient string, amount int64) (*tx.Transaction, error) {
	balance := w.Balance(c)
	return tx.Construct(w.privateKey, w.Address, w.publicKey, balance, amount, recipient)
}

// AmendTransaction re-signs t to add a transfer of amount to recipient,
// using the wallet's current balance on c as the sender's declared input
// amount. t must be a transaction this wallet originally created.
func (w *Wallet) AmendTransaction(c *chain.Chain, t *tx.Transaction, recipient string, amount int64) error {
	balance := w.Balance(c)
	return t.Update(w.privateKey, w.Address, w.publicKey, balance, amount, recipient)
}
