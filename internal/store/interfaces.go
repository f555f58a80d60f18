// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The node-api-and-auth Authors

package store

import (
	"context"

	"github.com/givesachin/node-api-and-auth/models"
)

// UserRepository is the persistence boundary for user accounts.
type UserRepository interface {
	// CreateUser inserts a new account and returns it with the
	// store-assigned ID. A violated username uniqueness constraint is
	// reported as [ErrUsernameAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindByCredentials returns the account whose username and password
	// both match exactly, or [ErrUserNotFound].
	FindByCredentials(ctx context.Context, username, password string) (models.User, error)
}

// ItemRepository is the persistence boundary for the items resource.
type ItemRepository interface {
	Create(ctx context.Context, name string) (models.Item, error)
	List(ctx context.Context) ([]models.Item, error)
	GetByID(ctx context.Context, id int64) (models.Item, error)

	// Update overwrites the name of the row with item.ID. There is no
	// existence check; updating an unknown id is reported as success with
	// the input echoed back.
	Update(ctx context.Context, item models.Item) (models.Item, error)

	// Delete removes the row and returns its pre-delete snapshot, or
	// [ErrItemNotFound].
	Delete(ctx context.Context, id int64) (models.Item, error)
}
