package config

import (
	"fmt"
	"os"

	"github.com/zalo-miniapp/openapi-go/internal/json"
)

// parseJSON loads a [Config] from the JSON file at jsonFilePath. Fields
// absent from the file stay at their zero value and are filled in by the
// other configuration sources during the merge.
func parseJSON(jsonFilePath string) (*Config, error) {
	raw, err := os.ReadFile(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}

	cfg := new(Config)
	if err := json.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return cfg, nil
}
