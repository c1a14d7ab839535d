package block

import (
	"testing"

	"github.com/coinforge/ledgerd/pkg/tx"
)

func TestMine_ExtendsPrevHash(t *testing.T) {
	genesis := Genesis()
	b := Mine(genesis, []*tx.Transaction{})

	if b.PrevHash != genesis.Hash {
		t.Errorf("PrevHash = %s, want %s", b.PrevHash, genesis.Hash)
	}
	if b.Hash == "" {
		t.Error("mined block should have a hash")
	}
}

func TestMine_SatisfiesProofOfWork(t *testing.T) {
	genesis := Genesis()
	// Use a trivial genesis-derived predecessor with low difficulty so the
	// test mines quickly.
	prev := &Block{Timestamp: genesis.Timestamp, PrevHash: genesis.Hash, Hash: genesis.Hash, Difficulty: 1, Nonce: NonceOf(0)}
	b := Mine(prev, []*tx.Transaction{})

	if err := IsValidBlock(prev, b); err != nil {
		t.Errorf("mined block should be valid: %v", err)
	}
}

func TestMine_LowersDifficultyWhenSlow(t *testing.T) {
	prev := &Block{Timestamp: 1, PrevHash: "x", Hash: "y", Difficulty: 3, Nonce: NonceOf(0)}
	// A timestamp far beyond MineRate in the future: AdjustDifficulty alone.
	got := AdjustDifficulty(prev, prev.Timestamp+1_000_000_000_000)
	if got != 2 {
		t.Errorf("AdjustDifficulty() = %d, want 2", got)
	}
}

func TestAdjustDifficulty_RaisesWhenFast(t *testing.T) {
	prev := &Block{Timestamp: 1000, Difficulty: 5}
	got := AdjustDifficulty(prev, prev.Timestamp+1)
	if got != 6 {
		t.Errorf("AdjustDifficulty() = %d, want 6", got)
	}
}

func TestAdjustDifficulty_NeverBelowOne(t *testing.T) {
	prev := &Block{Timestamp: 1, Difficulty: 1}
	got := AdjustDifficulty(prev, prev.Timestamp+1_000_000_000_000)
	if got != 1 {
		t.Errorf("AdjustDifficulty() = %d, want 1 (floor)", got)
	}
}

func TestIsGenesis(t *testing.T) {
	g := Genesis()
	if !IsGenesis(g) {
		t.Error("Genesis() should identify itself as genesis")
	}

	other := Mine(g, []*tx.Transaction{})
	if IsGenesis(other) {
		t.Error("a mined block must not be identified as genesis")
	}
}
