package config

import (
	"time"
)

// Config holds everything needed to construct the default client.
//
// Struct tags:
//   - env       — environment variable name, looked up with the ZMP_ prefix
//     (caarlos0/env).
//   - envPrefix — prefix applied to nested env tag lookups.
//   - json      — field name in the optional JSON configuration file.
type Config struct {
	// APIKey is the partner API key issued by Zalo Mini App.
	// Env: ZMP_API_KEY
	APIKey string `env:"API_KEY" json:"api_key"`

	// ZaloAppID is the Zalo App the Mini Apps belong to.
	// Env: ZMP_APP_ID
	ZaloAppID string `env:"APP_ID" json:"zalo_app_id"`

	// Domain overrides the Open API base URL. Empty means the production
	// endpoint.
	// Env: ZMP_DOMAIN
	Domain string `env:"DOMAIN" json:"domain"`

	// RequestTimeout is the per-request timeout for outbound calls
	// (e.g. "15s"). Zero means no SDK-enforced timeout.
	// Env: ZMP_REQUEST_TIMEOUT
	RequestTimeout Duration `env:"REQUEST_TIMEOUT" json:"request_timeout"`

	// Proxy holds optional forward-proxy settings.
	Proxy Proxy `envPrefix:"PROXY_" json:"proxy"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged underneath the values
	// already loaded from environment variables.
	// Env: ZMP_CONFIG
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// Proxy describes a forward proxy for outbound API requests.
type Proxy struct {
	// Host is the proxy hostname or IP address.
	// Env: ZMP_PROXY_HOST
	Host string `env:"HOST" json:"host"`

	// Port is the proxy TCP port.
	// Env: ZMP_PROXY_PORT
	Port int `env:"PORT" json:"port"`
}

// validate checks that the credential pair required by every API operation is
// present.
func (c *Config) validate() error {
	if c.APIKey == "" || c.ZaloAppID == "" {
		return ErrMissingCredentials
	}

	return nil
}

// Duration is a time.Duration that unmarshals from both JSON duration
// strings ("15s", "1m") and raw nanosecond numbers, and from env var text.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler so caarlos0/env can parse
// values like "15s".
func (d *Duration) UnmarshalText(b []byte) error {
	parsed, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}

	*d = Duration(parsed)
	return nil
}

// UnmarshalJSON accepts either a duration string or a number of nanoseconds.
func (d *Duration) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		return d.UnmarshalText(b[1 : len(b)-1])
	}

	parsed, err := time.ParseDuration(string(b) + "ns")
	if err != nil {
		return err
	}

	*d = Duration(parsed)
	return nil
}

// Std returns the value as a standard time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}
