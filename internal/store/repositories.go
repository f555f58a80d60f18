// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The node-api-and-auth Authors

package store

import "github.com/givesachin/node-api-and-auth/internal/logger"

// Repositories bundles every repository backed by the shared database
// connection.
type Repositories struct {
	UserRepository UserRepository
	ItemRepository ItemRepository
}

// NewRepositories constructs all repositories on top of the given connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(db, logger),
		ItemRepository: NewItemRepository(db, logger),
	}
}
