// SPDX-License-Identifier: EPL-2.0

package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// EngineConfig selects the codec engine and the logging setup.
type EngineConfig struct {
	Engine   string `env:"SNDSTREAM_ENGINE, default=go"`
	LogLevel string `env:"SNDSTREAM_LOG_LEVEL, default=info"`
	LogFile  string `env:"SNDSTREAM_LOG_FILE"`
}

func NewEngineConfigFromEnv() (*EngineConfig, error) {
	return NewEngineConfig(context.Background(), envconfig.OsLookuper())
}

// NewEngineConfig reads the configuration from l.
func NewEngineConfig(ctx context.Context, l envconfig.Lookuper) (*EngineConfig, error) {
	var cfg EngineConfig
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("SNDSTREAM_LOG_LEVEL: %w", err)
	}
	return &cfg, nil
}
