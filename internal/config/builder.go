package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*Config
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*Config, 0, 2),
	}
}

// build merges the collected configuration layers in priority order (earlier
// layers win; mergo only fills fields that are still zero) and validates the
// result.
func (b *configBuilder) build() (*Config, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(Config)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &Config{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

// withJSON appends the JSON file layer when one of the earlier layers named a
// config file. A missing or malformed file is an error: pointing the SDK at a
// config file that cannot be read should fail loudly, not silently fall back
// to env-only values.
func (b *configBuilder) withJSON() *configBuilder {
	jsonPath := ""
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
			break
		}
	}
	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, jsonCfg)
	return b
}

// Load assembles the default-client configuration from environment variables
// and the optional JSON file. Environment variables take priority.
func Load() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withJSON().
		build()
}
