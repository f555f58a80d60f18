// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The node-api-and-auth Authors

package service

import (
	"context"

	"github.com/givesachin/node-api-and-auth/models"
)

type AuthService interface {
	Register(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type ItemService interface {
	Create(ctx context.Context, name string) (models.Item, error)
	List(ctx context.Context) ([]models.Item, error)
	Get(ctx context.Context, id int64) (models.Item, error)
	Update(ctx context.Context, item models.Item) (models.Item, error)
	Delete(ctx context.Context, id int64) (models.Item, error)
}
