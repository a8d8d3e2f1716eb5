package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a merged
// configuration cannot be used to start the server.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty schema name).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, an API prefix without a leading slash).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidLimitsConfigs indicates a non-positive cardinality limit.
	ErrInvalidLimitsConfigs = errors.New("invalid limits configuration")
)
