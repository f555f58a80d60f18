// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The node-api-and-auth Authors

// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig]. The merged result is
// validated before use; a missing token signing key is treated as a fatal
// startup misconfiguration by the caller.
package config
