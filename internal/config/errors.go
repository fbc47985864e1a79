package config

import "errors"

// Error variables for config and seed loading.
var (
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("cannot read config file")
	ErrConfigInvalid      = errors.New("invalid config file")
	ErrInvalidLogLevel    = errors.New("invalid log_level (want debug|info|warn|error)")
	ErrSeedRead           = errors.New("cannot read seed file")
	ErrSeedInvalid        = errors.New("invalid seed file")
)
