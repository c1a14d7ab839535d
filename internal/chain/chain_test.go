package chain

import (
	"testing"

	"github.com/coinforge/ledgerd/pkg/block"
	"github.com/coinforge/ledgerd/pkg/tx"
)

func TestNew_StartsAtGenesis(t *testing.T) {
	c := New()
	blocks := c.Blocks()
	if len(blocks) != 1 || !block.IsGenesis(blocks[0]) {
		t.Error("New() should produce a chain containing only the genesis block")
	}
}

func TestAddBlock(t *testing.T) {
	c := New()
	next := block.Mine(block.Genesis(), []*tx.Transaction{tx.RewardFor("miner01", 50)})

	if err := c.AddBlock(next); err != nil {
		t.Fatalf("AddBlock() error: %v", err)
	}
	if c.Height() != 2 {
		t.Errorf("Height() = %d, want 2", c.Height())
	}
}

func TestAddBlock_RejectsInvalidPredecessor(t *testing.T) {
	c := New()
	bogusPrev := &block.Block{Hash: "not-the-tip"}
	next := block.Mine(bogusPrev, []*tx.Transaction{})

	if err := c.AddBlock(next); err == nil {
		t.Error("expected error adding a block that does not extend the tip")
	}
}

func TestIsValidChain_Genesis(t *testing.T) {
	if err := IsValidChain([]*block.Block{block.Genesis()}); err != nil {
		t.Errorf("a lone genesis chain should be valid: %v", err)
	}
}

func TestIsValidChain_BadGenesis(t *testing.T) {
	tampered := *block.Genesis()
	tampered.Hash = "tampered"
	if err := IsValidChain([]*block.Block{&tampered}); err == nil {
		t.Error("expected error for a tampered genesis block")
	}
}

func TestReplaceChain_RejectsShorterOrEqual(t *testing.T) {
	c := New()
	if err := c.ReplaceChain(c.Blocks()); err == nil {
		t.Error("expected error replacing with a chain of equal length")
	}
}

func TestReplaceChain_AcceptsLongerValidChain(t *testing.T) {
	c := New()

	candidate := []*block.Block{block.Genesis()}
	next := block.Mine(candidate[0], []*tx.Transaction{tx.RewardFor("miner01", 50)})
	candidate = append(candidate, next)

	if err := c.ReplaceChain(candidate); err != nil {
		t.Fatalf("ReplaceChain() error: %v", err)
	}
	if c.Height() != 2 {
		t.Errorf("Height() = %d, want 2 after replace", c.Height())
	}
}

func TestReplaceChain_RejectsInvalidChain(t *testing.T) {
	c := New()

	next := block.Mine(block.Genesis(), []*tx.Transaction{})
	next.Hash = "corrupted"
	candidate := []*block.Block{block.Genesis(), next}

	if err := c.ReplaceChain(candidate); err == nil {
		t.Error("expected error replacing with an invalid chain")
	}
}

func TestIsValidTransactionChain_DuplicateTransaction(t *testing.T) {
	reward := tx.RewardFor("miner01", 50)
	b1 := block.Mine(block.Genesis(), []*tx.Transaction{reward})
	b2 := block.Mine(b1, []*tx.Transaction{reward})

	err := IsValidTransactionChain([]*block.Block{block.Genesis(), b1, b2})
	if err == nil {
		t.Error("expected error for a duplicate transaction id across blocks")
	}
}

func TestIsValidTransactionChain_MultipleRewardsInOneBlock(t *testing.T) {
	b := block.Mine(block.Genesis(), []*tx.Transaction{
		tx.RewardFor("miner01", 50),
		tx.RewardFor("miner02", 50),
	})

	err := IsValidTransactionChain([]*block.Block{block.Genesis(), b})
	if err == nil {
		t.Error("expected error for more than one reward transaction in a block")
	}
}

func TestCalculateBalance_StartingBalance(t *testing.T) {
	got := CalculateBalance([]*block.Block{block.Genesis()}, "nobody")
	if got != 1000 {
		t.Errorf("CalculateBalance() = %d, want 1000 (no history)", got)
	}
}

func TestCalculateBalance_AccumulatesCredits(t *testing.T) {
	reward := tx.RewardFor("miner01", 50)
	b := block.Mine(block.Genesis(), []*tx.Transaction{reward})

	got := CalculateBalance([]*block.Block{block.Genesis(), b}, "miner01")
	if got != 1050 {
		t.Errorf("CalculateBalance() = %d, want 1050", got)
	}
}
