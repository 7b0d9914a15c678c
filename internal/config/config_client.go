package config

import (
	"fmt"
)

// ClientConfig is the configuration of cmd/client.
type ClientConfig struct {
	Adapter  Adapter
	LogLevel string
}

// GetClientConfig loads the client configuration. Command-line flags are
// left to the client's subcommands, so only env, JSON and defaults apply.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter:  cfg.Adapter,
		LogLevel: cfg.App.LogLevel,
	}

	return clientCfg, clientCfg.validate()
}
