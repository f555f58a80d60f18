// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The node-api-and-auth Authors

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/givesachin/node-api-and-auth/internal/config"
	"github.com/givesachin/node-api-and-auth/internal/logger"
	"github.com/givesachin/node-api-and-auth/internal/service"
	"github.com/givesachin/node-api-and-auth/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerFn    func(ctx context.Context, user models.User) (models.User, error)
	loginFn       func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, user models.User) (models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, user)
	}
	return user, nil
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, user)
	}
	return user, nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "test-token", Username: user.Username}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{Username: "alice"}, nil
}

// ─────────────────────────────────────────────
// Mock: service.ItemService
// ─────────────────────────────────────────────

type mockItemService struct {
	createFn func(ctx context.Context, name string) (models.Item, error)
	listFn   func(ctx context.Context) ([]models.Item, error)
	getFn    func(ctx context.Context, id int64) (models.Item, error)
	updateFn func(ctx context.Context, item models.Item) (models.Item, error)
	deleteFn func(ctx context.Context, id int64) (models.Item, error)
}

func (m *mockItemService) Create(ctx context.Context, name string) (models.Item, error) {
	if m.createFn != nil {
		return m.createFn(ctx, name)
	}
	return models.Item{ID: 1, Name: name}, nil
}

func (m *mockItemService) List(ctx context.Context) ([]models.Item, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []models.Item{}, nil
}

func (m *mockItemService) Get(ctx context.Context, id int64) (models.Item, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.Item{ID: id}, nil
}

func (m *mockItemService) Update(ctx context.Context, item models.Item) (models.Item, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, item)
	}
	return item, nil
}

func (m *mockItemService) Delete(ctx context.Context, id int64) (models.Item, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return models.Item{ID: id}, nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestHandler(auth service.AuthService, items service.ItemService) *Handler {
	if auth == nil {
		auth = &mockAuthService{}
	}
	if items == nil {
		items = &mockItemService{}
	}
	services := &service.Services{AuthService: auth, ItemService: items}
	return NewHandler(services, config.Server{}, logger.Nop())
}

// decodeResponse unmarshals the canonical envelope out of a recorder.
func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) models.Response {
	t.Helper()

	var resp models.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

var errService = errors.New("service error")
