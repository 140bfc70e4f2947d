package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envPrefix is prepended to every env tag lookup so all SDK variables live
// under one namespace (ZMP_API_KEY, ZMP_APP_ID, ...).
const envPrefix = "ZMP_"

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [Config] and its nested types.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg *Config) error {
	err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
