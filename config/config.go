// Package config holds the ledger's protocol constants and node-level
// runtime configuration.
package config

import "time"

// Protocol constants. These are not configurable — every node must agree
// on them for chain validation to agree.
const (
	// StartingBalance is the balance every wallet begins with before any
	// chain history is replayed against it.
	StartingBalance int64 = 1000

	// MineRate is the target nanosecond interval between blocks. Blocks
	// mined faster than this raise difficulty; slower lowers it.
	MineRate = 4 * int64(time.Second)

	// MiningReward is the amount credited to a miner's address by the
	// reward transaction of each block it mines.
	MiningReward int64 = 50

	// Seconds is one second expressed in the nanosecond units timestamps
	// and MineRate use.
	Seconds = int64(time.Second)
)

// LogConfig holds logging settings.
type LogConfig struct {
	Level string
	File  string
	JSON  bool
}

// P2PConfig holds peer-to-peer networking settings.
type P2PConfig struct {
	ListenPort int
	Seed       string // address of a peer's HTTP API to bootstrap the chain from
	NoDiscover bool   // disable mDNS local-network discovery
}

// HTTPConfig holds the node's REST control-surface settings.
type HTTPConfig struct {
	Addr string
	Port int
}

// MiningConfig holds this node's own mining behavior.
type MiningConfig struct {
	Enabled bool
}

// Config holds one node's full runtime configuration.
type Config struct {
	P2P    P2PConfig
	HTTP   HTTPConfig
	Mining MiningConfig
	Log    LogConfig

	// Seed preloads the chain and mempool with synthetic development data
	// on startup (mirrors the reference implementation's SEED_DATA switch).
	Seed bool
}
