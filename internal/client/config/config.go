package config

import "time"

// Config holds runtime settings for the customer CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the customer gRPC endpoint.
//   - RequestTimeout: deadline for each add, update or remove call. Streams
//     are bounded by their filter generation instead.
//   - LogLevel: debug, info, warn or error. Logs go to stderr.
type Config struct {
	ServerEndpointAddr string
	RequestTimeout     time.Duration
	LogLevel           string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 5 * time.Second
	c.LogLevel = "warn"
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
