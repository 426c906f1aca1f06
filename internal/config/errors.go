package config

import "errors"

var (
	// ErrInvalidStorageConfigs is returned when the merged configuration has
	// no database DSN. The initializer cannot run without a live connection
	// target.
	ErrInvalidStorageConfigs = errors.New("invalid storage configs: database DSN is required")

	// ErrInvalidSeedConfigs is returned when the seed account is missing a
	// username, email, or password after all sources (including defaults)
	// have been merged.
	ErrInvalidSeedConfigs = errors.New("invalid seed configs: username, email and password are required")
)
