package tx

import (
	"testing"

	"github.com/coinforge/ledgerd/pkg/crypto"
)

func TestIsValidTransaction_Valid(t *testing.T) {
	key, addr, pub := newKeyAndAddress(t)
	txn, err := Construct(key, addr, pub, 1000, 50, "recipient")
	if err != nil {
		t.Fatalf("Construct() error: %v", err)
	}
	if err := IsValidTransaction(txn); err != nil {
		t.Errorf("expected valid transaction, got error: %v", err)
	}
}

func TestIsValidTransaction_TamperedOutput(t *testing.T) {
	key, addr, pub := newKeyAndAddress(t)
	txn, err := Construct(key, addr, pub, 1000, 50, "recipient")
	if err != nil {
		t.Fatalf("Construct() error: %v", err)
	}

	txn.Output["recipient"] = 9000

	if err := IsValidTransaction(txn); err == nil {
		t.Error("expected error for tampered output")
	}
}

func TestIsValidTransaction_AmountMismatch(t *testing.T) {
	key, addr, pub := newKeyAndAddress(t)
	txn, err := Construct(key, addr, pub, 1000, 50, "recipient")
	if err != nil {
		t.Fatalf("Construct() error: %v", err)
	}

	txn.Input.Amount = 2000

	if err := IsValidTransaction(txn); err == nil {
		t.Error("expected error when input amount no longer matches output sum")
	}
}

func TestIsValidTransaction_InvalidSignature(t *testing.T) {
	key, addr, pub := newKeyAndAddress(t)
	txn, err := Construct(key, addr, pub, 1000, 50, "recipient")
	if err != nil {
		t.Fatalf("Construct() error: %v", err)
	}

	other, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey() error: %v", err)
	}
	sig, err := crypto.SignData(other, txn.Output)
	if err != nil {
		t.Fatalf("SignData() error: %v", err)
	}
	txn.Input.Signature = &sig

	if err := IsValidTransaction(txn); err == nil {
		t.Error("expected error for signature produced by the wrong key")
	}
}

func TestIsValidTransaction_MissingSignature(t *testing.T) {
	key, addr, pub := newKeyAndAddress(t)
	txn, err := Construct(key, addr, pub, 1000, 50, "recipient")
	if err != nil {
		t.Fatalf("Construct() error: %v", err)
	}
	txn.Input.Signature = nil

	if err := IsValidTransaction(txn); err == nil {
		t.Error("expected error for missing signature")
	}
}
