// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The node-api-and-auth Authors

package models

// User represents an account row in the "users" table.
// Accounts are created by registration and never updated or deleted
// by the service.
type User struct {
	// ID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	ID int64 `json:"-"`

	// Username is the unique login identifier checked during authentication
	// and embedded as the subject claim of issued tokens.
	Username string `json:"username"`

	// Password is the credential compared verbatim against the stored value.
	// The value is persisted exactly as provided.
	Password string `json:"password"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
