package config

import "errors"

// Validation errors returned by [Load] when the merged configuration is
// incomplete.
var (
	// ErrMissingCredentials indicates that ZMP_API_KEY or ZMP_APP_ID was not
	// supplied by any configuration source.
	ErrMissingCredentials = errors.New("missing api key or zalo app id")
)
