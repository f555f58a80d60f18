// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The node-api-and-auth Authors

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing or invalid.
var (
	// ErrMissingTokenSignKey indicates that no token signing key was provided
	// by any configuration source. Tokens signed with an undefined key are
	// worthless, so this is treated as a fatal startup misconfiguration.
	ErrMissingTokenSignKey = errors.New("token signing key is not configured")

	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
