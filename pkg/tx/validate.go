package tx

import (
	"errors"
	"fmt"

	"github.com/coinforge/ledgerd/pkg/crypto"
)

// Validation errors.
var (
	ErrInsufficientBalance = errors.New("amount exceeds balance")
	ErrOutputMismatch      = errors.New("invalid transaction output values")
	ErrInvalidSignature    = errors.New("invalid transaction signature")
)

// IsValidTransaction checks that a transfer transaction's declared input
// amount matches the sum of its outputs, and that its signature verifies
// against the claimed public key and output map. Reward transactions are
// not checked here — callers identify them with IsReward first.
func IsValidTransaction(t *Transaction) error {
	var outputTotal int64
	for _, amount := range t.Output {
		outputTotal += amount
	}

	if t.Input.Amount != outputTotal {
		return fmt.Errorf("%w: transaction %s", ErrOutputMismatch, t.ID)
	}

	if t.Input.Signature == nil {
		return fmt.Errorf("%w: transaction %s has no signature", ErrInvalidSignature, t.ID)
	}

	ok, err := crypto.VerifyData(t.Input.PublicKey, t.Output, *t.Input.Signature)
	if err != nil {
		return fmt.Errorf("verify transaction %s: %w", t.ID, err)
	}
	if !ok {
		return fmt.Errorf("%w: transaction %s", ErrInvalidSignature, t.ID)
	}

	return nil
}
