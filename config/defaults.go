package config

// Default returns a node configuration with the reference ports and
// settings a freshly started node uses when no flags override them.
func Default() *Config {
	return &Config{
		P2P: P2PConfig{
			ListenPort: 0, // 0 lets the OS assign a free port
		},
		HTTP: HTTPConfig{
			Addr: "127.0.0.1",
			Port: 3000,
		},
		Mining: MiningConfig{
			Enabled: true,
		},
		Log: LogConfig{
			Level: "info",
			JSON:  false,
		},
	}
}
