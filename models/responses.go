// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The node-api-and-auth Authors

package models

// Response is the JSON envelope returned by every API endpoint.
// Success reports whether the operation completed; exactly one of Message or
// Error carries the human-readable outcome. The remaining fields are
// populated per operation: Token after login, Item for single-item
// operations, Items for listings, and ItemID after a delete.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`

	Token string `json:"token,omitempty"`
	Item  *Item  `json:"item,omitempty"`

	// Items is a pointer so that an empty listing still marshals as [],
	// while non-listing responses omit the key entirely.
	Items *[]Item `json:"items,omitempty"`

	ItemID int64 `json:"itemId,omitempty"`
}
