package tx

import (
	"testing"

	"github.com/coinforge/ledgerd/pkg/crypto"
)

func newKeyAndAddress(t *testing.T) (*crypto.PrivateKey, string, string) {
	t.Helper()
	key, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey() error: %v", err)
	}
	return key, "sender01", key.PublicKeyPEM()
}

func TestConstruct(t *testing.T) {
	key, addr, pub := newKeyAndAddress(t)

	txn, err := Construct(key, addr, pub, 1000, 50, "recipient")
	if err != nil {
		t.Fatalf("Construct() error: %v", err)
	}

	if txn.Output["recipient"] != 50 {
		t.Errorf("Output[recipient] = %d, want 50", txn.Output["recipient"])
	}
	if txn.Output[addr] != 950 {
		t.Errorf("Output[sender] = %d, want 950", txn.Output[addr])
	}
	if txn.Input.Amount != 1000 {
		t.Errorf("Input.Amount = %d, want 1000", txn.Input.Amount)
	}
	if txn.Input.Address != addr {
		t.Errorf("Input.Address = %s, want %s", txn.Input.Address, addr)
	}
	if txn.ID == "" {
		t.Error("Construct() should assign a transaction id")
	}
}

func TestConstruct_InsufficientBalance(t *testing.T) {
	key, addr, pub := newKeyAndAddress(t)

	if _, err := Construct(key, addr, pub, 100, 200, "recipient"); err == nil {
		t.Error("expected error when amount exceeds balance")
	}
}

func TestConstruct_ValidatesSuccessfully(t *testing.T) {
	key, addr, pub := newKeyAndAddress(t)

	txn, err := Construct(key, addr, pub, 1000, 50, "recipient")
	if err != nil {
		t.Fatalf("Construct() error: %v", err)
	}
	if err := IsValidTransaction(txn); err != nil {
		t.Errorf("freshly constructed transaction should be valid: %v", err)
	}
}

func TestUpdate(t *testing.T) {
	key, addr, pub := newKeyAndAddress(t)

	txn, err := Construct(key, addr, pub, 1000, 50, "recipientA")
	if err != nil {
		t.Fatalf("Construct() error: %v", err)
	}

	if err := txn.Update(key, addr, pub, 1000, 75, "recipientB"); err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	if txn.Output["recipientA"] != 50 {
		t.Errorf("Output[recipientA] = %d, want 50 (unchanged)", txn.Output["recipientA"])
	}
	if txn.Output["recipientB"] != 75 {
		t.Errorf("Output[recipientB] = %d, want 75", txn.Output["recipientB"])
	}
	if txn.Output[addr] != 875 {
		t.Errorf("Output[sender] = %d, want 875", txn.Output[addr])
	}
	if err := IsValidTransaction(txn); err != nil {
		t.Errorf("updated transaction should be valid: %v", err)
	}
}

func TestUpdate_SameRecipientAccumulates(t *testing.T) {
	key, addr, pub := newKeyAndAddress(t)

	txn, err := Construct(key, addr, pub, 1000, 50, "recipientA")
	if err != nil {
		t.Fatalf("Construct() error: %v", err)
	}
	if err := txn.Update(key, addr, pub, 1000, 25, "recipientA"); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if txn.Output["recipientA"] != 75 {
		t.Errorf("Output[recipientA] = %d, want 75 (50+25)", txn.Output["recipientA"])
	}
}

func TestUpdate_InsufficientBalance(t *testing.T) {
	key, addr, pub := newKeyAndAddress(t)

	txn, err := Construct(key, addr, pub, 1000, 900, "recipientA")
	if err != nil {
		t.Fatalf("Construct() error: %v", err)
	}
	if err := txn.Update(key, addr, pub, 1000, 200, "recipientB"); err == nil {
		t.Error("expected error when update amount exceeds remaining change")
	}
}

func TestRewardFor(t *testing.T) {
	reward := RewardFor("miner01", 50)

	if !reward.IsReward() {
		t.Error("RewardFor() transaction should report IsReward() == true")
	}
	if reward.Output["miner01"] != 50 {
		t.Errorf("Output[miner] = %d, want 50", reward.Output["miner01"])
	}
	if reward.Input.Signature != nil {
		t.Error("reward transaction should carry no signature")
	}
}

func TestIsReward_FalseForTransfer(t *testing.T) {
	key, addr, pub := newKeyAndAddress(t)
	txn, err := Construct(key, addr, pub, 1000, 50, "recipient")
	if err != nil {
		t.Fatalf("Construct() error: %v", err)
	}
	if txn.IsReward() {
		t.Error("a regular transfer must not report IsReward() == true")
	}
}
