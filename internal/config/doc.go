// Package config loads the SDK settings used by the module-level default
// client.
//
// Values are assembled by merging two sources in priority order:
//
//  1. environment variables with the ZMP_ prefix (highest priority);
//  2. an optional JSON file pointed to by ZMP_CONFIG.
//
// Explicitly constructed clients do not touch this package; it exists only so
// the package-level convenience functions can build a default client without
// the caller wiring credentials by hand.
package config
