package config

import "time"

// Config holds runtime settings for the qaboard CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - DatabasePath: path of the local SQLite file holding durable slots.
//   - CacheTTL: freshness window for cached collections.
//   - SelectionMaxAge: how long a saved active selection stays usable.
//
// Units: CacheTTL and SelectionMaxAge are time.Duration values.
type Config struct {
	ServerEndpointAddr string
	DatabasePath       string
	CacheTTL           time.Duration
	SelectionMaxAge    time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.DatabasePath = "qaboard.db"
	c.CacheTTL = 5 * time.Minute
	c.SelectionMaxAge = 24 * time.Hour
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
