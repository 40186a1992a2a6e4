package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the replica client transport.
type ClientAdapter struct {
	// BaseURL is the server base URL used by the replica client.
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups the replica client storage backend settings.
type ClientStorage struct {
	// SQLitePath is the local SQLite replica database path.
	SQLitePath string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the background replica sync job runs.
	SyncInterval time.Duration
}

// ClientConfig is the top-level replica client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport settings.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background worker settings.
	Workers ClientWorkers
}

// GetClientConfig loads the shared structured configuration and projects it
// onto the subset the replica client binary needs, applying client defaults
// and validating the result.
func GetClientConfig() (*ClientConfig, error) {
	structured, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading structured config: %w", err)
	}

	cfg := &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        structured.Client.BaseURL,
			RequestTimeout: structured.Client.RequestTimeout,
		},
		Storage: ClientStorage{
			SQLitePath: structured.Client.SQLitePath,
		},
		Workers: ClientWorkers{
			SyncInterval: structured.Workers.SyncInterval,
		},
	}

	cfg.applyDefaults()

	return cfg, cfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.BaseURL == "" {
		cfg.Adapter.BaseURL = "http://localhost:8080"
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = 15 * time.Second
	}
	if cfg.Storage.SQLitePath == "" {
		cfg.Storage.SQLitePath = "replica.db"
	}
	if cfg.Workers.SyncInterval <= 0 {
		cfg.Workers.SyncInterval = 5 * time.Minute
	}
}

// validate checks the assembled client configuration.
func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Storage.SQLitePath == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Workers.SyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
