package config

import (
	"time"

	"golang-law-tracker/pkg/config"
)

// Storage holds the local file store configuration, used when no database
// host is configured.
type Storage struct {
	DataDir string `mapstructure:"data_dir"`
}

// Inference holds the configuration for the remote inference endpoint.
type Inference struct {
	EndpointURL         string        `mapstructure:"endpoint_url"`
	APIKey              string        `mapstructure:"api_key"`
	Timeout             time.Duration `mapstructure:"timeout"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
}

// Upload holds document upload limits.
type Upload struct {
	MaxFileSizeBytes int64 `mapstructure:"max_file_size_bytes"`
}

// Config holds the full configuration for the tracker service.
type Config struct {
	App       config.App      `mapstructure:"app"`
	Logger    config.Logger   `mapstructure:"logger"`
	API       config.API      `mapstructure:"api"`
	Database  config.Database `mapstructure:"database"`
	Storage   Storage         `mapstructure:"storage"`
	Inference Inference       `mapstructure:"inference"`
	Upload    Upload          `mapstructure:"upload"`
}

// Load loads the tracker configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	if cfg.Inference.Timeout == 0 {
		cfg.Inference.Timeout = 90 * time.Second
	}
	if cfg.Inference.MaxRequestPerMinute == 0 {
		cfg.Inference.MaxRequestPerMinute = 30
	}
	if cfg.Upload.MaxFileSizeBytes == 0 {
		cfg.Upload.MaxFileSizeBytes = 10 * 1024 * 1024
	}
	if cfg.Storage.DataDir == "" {
		cfg.Storage.DataDir = "data"
	}
	return &cfg, nil
}
