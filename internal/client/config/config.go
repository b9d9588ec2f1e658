package config

import "time"

// Config holds runtime settings for the resumefill CLI.
//
// Fields:
//   - AgentEndpointAddr: base URL of the page-agent HTTP endpoint.
//   - DatabaseDSN: path (or sqlite DSN) of the local store.
//   - OnlineCheckInterval: how often the CLI probes agent reachability.
type Config struct {
	AgentEndpointAddr   string
	DatabaseDSN         string
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.AgentEndpointAddr = "http://127.0.0.1:8199"
	c.DatabaseDSN = "resumefill.db"
	c.OnlineCheckInterval = 3 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
