package config

import "errors"

// Validation errors returned by [Config.validate].
var (
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
