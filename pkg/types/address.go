package types

import (
	"fmt"

	"github.com/google/uuid"
)

// AddressLength is the length of a wallet address. Addresses are not
// derived from key material — they are opaque random identifiers, exactly
// as the reference ledger generates them.
const AddressLength = 8

// RewardAddress is the sentinel recipient/sender used by mining-reward
// transactions. It can never collide with a generated address: NewAddress
// only ever produces AddressLength characters drawn from a UUID, while this
// sentinel is longer and carries punctuation.
const RewardAddress = "*--official-mining-reward--*"

// NewAddress generates a fresh random address identifier.
func NewAddress() string {
	return uuid.New().String()[:AddressLength]
}

// ValidateAddress reports whether s is a well-formed, non-reward address.
func ValidateAddress(s string) error {
	if s == "" {
		return fmt.Errorf("address must not be empty")
	}
	if len(s) != AddressLength {
		return fmt.Errorf("address must be %d characters, got %d", AddressLength, len(s))
	}
	return nil
}
