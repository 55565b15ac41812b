package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/custkeeper/internal/flagx"
	"github.com/dmitrijs2005/custkeeper/internal/timex"
)

// JsonConfig is the on-disk form of Config. Durations accept both "10s"
// strings and integer nanoseconds. Absent fields keep their current value.
type JsonConfig struct {
	EndpointAddrGRPC string          `json:"endpoint_addr_grpc"`
	StorageDriver    string          `json:"storage_driver"`
	DatabaseDSN      string          `json:"database_dsn"`
	MetricsAddr      *string         `json:"metrics_addr"`
	SeedSource       *string         `json:"seed_source"`
	LogLevel         string          `json:"log_level"`
	ShutdownTimeout  *timex.Duration `json:"shutdown_timeout"`
	S3RootUser       string          `json:"s3_root_user"`
	S3RootPassword   string          `json:"s3_root_password"`
	S3Region         string          `json:"s3_region"`
	S3BaseEndpoint   string          `json:"s3_base_endpoint"`
}

// parseJson overlays values from the JSON file named by -c/-config or the
// CUSTKEEPER_CONFIG environment variable. Without either nothing is loaded.
// An unreadable or malformed file panics.
//
// metrics_addr and seed_source may be set to "" to disable the feature.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigPath()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.StorageDriver, c.StorageDriver)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)

	if c.MetricsAddr != nil {
		config.MetricsAddr = *c.MetricsAddr
	}
	if c.SeedSource != nil {
		config.SeedSource = *c.SeedSource
	}
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
