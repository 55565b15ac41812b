// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the customer server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the gRPC endpoint.
//   - StorageDriver: record store backend, one of memory, sqlite, postgres.
//   - DatabaseDSN: DSN for the sqlite or postgres driver.
//   - MetricsAddr: bind address for the Prometheus /metrics endpoint; empty disables it.
//   - SeedSource: JSON file path or s3://bucket/key used to fill an empty store.
//   - LogLevel: debug, info, warn or error.
//   - ShutdownTimeout: how long in-flight calls may run after a stop signal.
//   - S3RootUser / S3RootPassword / S3Region / S3BaseEndpoint: settings for s3:// seed sources.
type Config struct {
	EndpointAddrGRPC string
	StorageDriver    string
	DatabaseDSN      string
	MetricsAddr      string
	SeedSource       string
	LogLevel         string
	ShutdownTimeout  time.Duration
	S3RootUser       string
	S3RootPassword   string
	S3Region         string
	S3BaseEndpoint   string
}

// LoadDefaults populates Config with development defaults: an in-memory
// store seeded from MockData.json in the working directory.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.StorageDriver = "memory"
	c.DatabaseDSN = ""
	c.MetricsAddr = ":9090"
	c.SeedSource = "MockData.json"
	c.LogLevel = "info"
	c.ShutdownTimeout = 10 * time.Second
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
