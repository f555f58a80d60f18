// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The node-api-and-auth Authors

package http

import "errors"

var (
	// ErrTokenMissing is reported with HTTP 401 when no token was supplied in
	// any of the accepted transports (header, query, body).
	ErrTokenMissing = errors.New("Token missing")

	// ErrTokenInvalidOrExpired is reported with HTTP 403 when a token was
	// supplied but failed verification. Expired and malformed tokens are not
	// distinguished externally.
	ErrTokenInvalidOrExpired = errors.New("Invalid or expired token")
)
