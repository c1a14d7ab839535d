package config

import (
	"flag"
	"fmt"
	"os"
)

// Flags holds parsed command-line flags for the ledgerd binary.
type Flags struct {
	Help    bool
	Version bool

	HTTPAddr string
	HTTPPort int

	P2PPort    int
	Seed       string
	NoDiscover bool

	Mine    bool
	SetMine bool

	SeedData bool

	LogLevel string
	LogFile  string
	LogJSON  bool
}

// ParseFlags parses os.Args[1:] into a Flags.
func ParseFlags() *Flags {
	f := &Flags{}
	fs := flag.NewFlagSet("ledgerd", flag.ContinueOnError)

	fs.BoolVar(&f.Help, "help", false, "Show help message")
	fs.BoolVar(&f.Help, "h", false, "Show help message (shorthand)")
	fs.BoolVar(&f.Version, "version", false, "Show version information")

	fs.StringVar(&f.HTTPAddr, "http-addr", "", "HTTP control surface listen address")
	fs.IntVar(&f.HTTPPort, "http-port", 0, "HTTP control surface listen port")

	fs.IntVar(&f.P2PPort, "p2p-port", 0, "P2P listen port (0 picks a free port)")
	fs.StringVar(&f.Seed, "peer", "", "Seed peer HTTP address to bootstrap the chain from, e.g. 127.0.0.1:3000")
	fs.BoolVar(&f.NoDiscover, "nodiscover", false, "Disable mDNS local-network peer discovery")

	fs.BoolVar(&f.Mine, "mine", true, "Mine blocks locally")
	fs.BoolVar(&f.SeedData, "seed-data", false, "Preload the chain and mempool with synthetic development data")

	fs.StringVar(&f.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.LogFile, "log-file", "", "Log file path (default: stderr)")
	fs.BoolVar(&f.LogJSON, "log-json", false, "Output logs as JSON")

	fs.Usage = printUsage

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	f.SetMine = isFlagSet(fs, "mine")

	return f
}

func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			found = true
		}
	})
	return found
}

func printUsage() {
	fmt.Print(`ledgerd - a small proof-of-work ledger node

Usage:
  ledgerd [options]
  ledgerd --help

Options:
  --http-addr       HTTP control surface listen address (default 127.0.0.1)
  --http-port       HTTP control surface listen port (default 3000)
  --p2p-port        P2P listen port (default: OS-assigned)
  --peer            Seed peer HTTP address to bootstrap the chain from
  --nodiscover      Disable mDNS local-network peer discovery
  --mine            Mine blocks locally (default true)
  --seed-data       Preload the chain and mempool with synthetic development data
  --log-level       Log level: debug, info, warn, error (default info)
  --log-file        Log file path (default stderr)
  --log-json        Output logs as JSON

Examples:
  # Start a node listening on the default HTTP port
  ledgerd

  # Start a second node on a different port, peering with the first
  ledgerd --http-port=3001 --peer=127.0.0.1:3000
`)
}

// ApplyFlags overlays f onto cfg, leaving cfg's values untouched wherever f
// was not explicitly set.
func ApplyFlags(cfg *Config, f *Flags) {
	if f.HTTPAddr != "" {
		cfg.HTTP.Addr = f.HTTPAddr
	}
	if f.HTTPPort != 0 {
		cfg.HTTP.Port = f.HTTPPort
	}
	if f.P2PPort != 0 {
		cfg.P2P.ListenPort = f.P2PPort
	}
	if f.Seed != "" {
		cfg.P2P.Seed = f.Seed
	}
	if f.NoDiscover {
		cfg.P2P.NoDiscover = true
	}
	if f.SetMine {
		cfg.Mining.Enabled = f.Mine
	}
	if f.SeedData {
		cfg.Seed = true
	}
	if f.LogLevel != "" {
		cfg.Log.Level = f.LogLevel
	}
	if f.LogFile != "" {
		cfg.Log.File = f.LogFile
	}
	if f.LogJSON {
		cfg.Log.JSON = true
	}
}

// Load parses command-line flags and applies them over Default().
func Load() (*Config, *Flags, error) {
	flags := ParseFlags()

	if flags.Help {
		printUsage()
		os.Exit(0)
	}
	if flags.Version {
		fmt.Println("ledgerd version 0.1.0")
		os.Exit(0)
	}

	cfg := Default()
	ApplyFlags(cfg, flags)

	return cfg, flags, nil
}
