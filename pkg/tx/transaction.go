// Package tx defines the ledger's transaction type and its validation rules.
package tx

import (
	"time"

	"github.com/coinforge/ledgerd/pkg/crypto"
	"github.com/coinforge/ledgerd/pkg/types"
)

// Input carries a sender's signed authorization for a transfer, or the
// fixed reward sentinel for a mining-reward transaction.
type Input struct {
	Timestamp int64             `json:"timestamp"`
	Amount    int64             `json:"amount"`
	Address   string            `json:"address"`
	PublicKey string            `json:"public_key,omitempty"`
	Signature *crypto.Signature `json:"signature,omitempty"`
}

// Transaction moves value from one wallet to one or more recipients.
// Output always includes the sender's own address holding their change,
// except for reward transactions, whose single output credits the miner.
type Transaction struct {
	ID     string           `json:"id"`
	Output map[string]int64 `json:"output"`
	Input  Input            `json:"input"`
}

// IsReward reports whether this transaction is a mining reward rather than
// a wallet-authorized transfer.
func (t *Transaction) IsReward() bool {
	return t.Input.Address == types.RewardAddress
}

// Construct builds and signs a new transfer transaction: amount moves from
// the sender to recipient, with the remainder of senderBalance returned to
// the sender as change.
func Construct(senderPrivateKey *crypto.PrivateKey, senderAddress, senderPublicKeyPEM string, senderBalance, amount int64, recipient string) (*Transaction, error) {
	if amount > senderBalance {
		return nil, ErrInsufficientBalance
	}

	t := &Transaction{
		ID: types.NewAddress(),
		Output: map[string]int64{
			recipient:     amount,
			senderAddress: senderBalance - amount,
		},
	}

	if err := t.sign(senderPrivateKey, senderAddress, senderPublicKeyPEM, senderBalance); err != nil {
		return nil, err
	}
	return t, nil
}

// Update credits amount to recipient — adding to any amount recipient
// already held in this transaction — debits it from the sender's change
// output, and re-signs against the sender's current balance.
func (t *Transaction) Update(senderPrivateKey *crypto.PrivateKey, senderAddress, senderPublicKeyPEM string, senderBalance, amount int64, recipient string) error {
	if amount > t.Output[senderAddress] {
		return ErrInsufficientBalance
	}

	t.Output[recipient] += amount
	t.Output[senderAddress] -= amount

	return t.sign(senderPrivateKey, senderAddress, senderPublicKeyPEM, senderBalance)
}

func (t *Transaction) sign(senderPrivateKey *crypto.PrivateKey, senderAddress, senderPublicKeyPEM string, senderBalance int64) error {
	sig, err := crypto.SignData(senderPrivateKey, t.Output)
	if err != nil {
		return err
	}
	t.Input = Input{
		Timestamp: time.Now().UnixNano(),
		Amount:    senderBalance,
		Address:   senderAddress,
		PublicKey: senderPublicKeyPEM,
		Signature: &sig,
	}
	return nil
}

// RewardFor builds the fixed-form mining-reward transaction that credits
// minerAddress. Its input is the reward sentinel, never a wallet signature.
func RewardFor(minerAddress string, miningReward int64) *Transaction {
	return &Transaction{
		ID:     types.NewAddress(),
		Output: map[string]int64{minerAddress: miningReward},
		Input: Input{
			Address: types.RewardAddress,
		},
	}
}
