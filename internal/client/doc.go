// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The node-api-and-auth Authors

// Package client provides a typed API client for the items service.
//
// It wraps every endpoint of the REST API, remembers the bearer token
// obtained at login, and unwraps the canonical response envelope into Go
// values and errors.
package client
