// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The node-api-and-auth Authors

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/givesachin/node-api-and-auth/internal/store"
	"github.com/givesachin/node-api-and-auth/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withURLParam attaches a chi route parameter to the request context so path
// handlers can be exercised without a full router.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateItem_Success(t *testing.T) {
	items := &mockItemService{
		createFn: func(_ context.Context, name string) (models.Item, error) {
			return models.Item{ID: 1, Name: name}, nil
		},
	}
	h := newTestHandler(nil, items)

	req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(`{"name":"pen"}`))
	rec := httptest.NewRecorder()

	h.createItem(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "Item created", resp.Message)
	require.NotNil(t, resp.Item)
	assert.Equal(t, models.Item{ID: 1, Name: "pen"}, *resp.Item)
}

func TestCreateItem_MissingName(t *testing.T) {
	h := newTestHandler(nil, nil)

	tests := []struct {
		name string
		body string
	}{
		{name: "empty object", body: `{}`},
		{name: "empty name", body: `{"name":""}`},
		{name: "malformed JSON", body: `{"name":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.createItem(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			resp := decodeResponse(t, rec)
			assert.Equal(t, "Item name required", resp.Error)
		})
	}
}

func TestListItems_Success(t *testing.T) {
	items := &mockItemService{
		listFn: func(_ context.Context) ([]models.Item, error) {
			return []models.Item{{ID: 1, Name: "pen"}, {ID: 2, Name: "notebook"}}, nil
		},
	}
	h := newTestHandler(nil, items)

	req := httptest.NewRequest(http.MethodGet, "/items/list", nil)
	rec := httptest.NewRecorder()

	h.listItems(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Items)
	assert.Len(t, *resp.Items, 2)
}

// An empty collection must still serialize the items key as [].
func TestListItems_Empty(t *testing.T) {
	h := newTestHandler(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/items/list", nil)
	rec := httptest.NewRecorder()

	h.listItems(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"items":[]`)
}

func TestListItems_StoreError(t *testing.T) {
	items := &mockItemService{
		listFn: func(_ context.Context) ([]models.Item, error) {
			return nil, errService
		},
	}
	h := newTestHandler(nil, items)

	req := httptest.NewRequest(http.MethodGet, "/items/list", nil)
	rec := httptest.NewRecorder()

	h.listItems(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, errService.Error())
}

// A driver-level failure message must reach the caller inside the 500
// envelope instead of being flattened to a generic status text.
func TestListItems_StoreErrorMessagePropagated(t *testing.T) {
	items := &mockItemService{
		listFn: func(_ context.Context) ([]models.Item, error) {
			return nil, errors.New("SQLITE_BUSY: database is locked")
		},
	}
	h := newTestHandler(nil, items)

	req := httptest.NewRequest(http.MethodGet, "/items/list", nil)
	rec := httptest.NewRecorder()

	h.listItems(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Contains(t, resp.Error, "database is locked")
	assert.NotContains(t, resp.Error, "Internal Server Error")
}

func TestGetItem_Success(t *testing.T) {
	items := &mockItemService{
		getFn: func(_ context.Context, id int64) (models.Item, error) {
			return models.Item{ID: id, Name: "pen"}, nil
		},
	}
	h := newTestHandler(nil, items)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/items/42", nil), "id", "42")
	rec := httptest.NewRecorder()

	h.getItem(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Item)
	assert.Equal(t, models.Item{ID: 42, Name: "pen"}, *resp.Item)
}

func TestGetItem_NotFound(t *testing.T) {
	items := &mockItemService{
		getFn: func(_ context.Context, _ int64) (models.Item, error) {
			return models.Item{}, store.ErrItemNotFound
		},
	}
	h := newTestHandler(nil, items)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/items/99", nil), "id", "99")
	rec := httptest.NewRecorder()

	h.getItem(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "Item not found", resp.Error)
}

func TestGetItem_NonNumericID(t *testing.T) {
	h := newTestHandler(nil, nil)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/items/abc", nil), "id", "abc")
	rec := httptest.NewRecorder()

	h.getItem(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateItem_Success(t *testing.T) {
	items := &mockItemService{
		updateFn: func(_ context.Context, item models.Item) (models.Item, error) {
			return item, nil
		},
	}
	h := newTestHandler(nil, items)

	req := httptest.NewRequest(http.MethodPost, "/items/update", strings.NewReader(`{"id":1,"name":"renamed"}`))
	rec := httptest.NewRecorder()

	h.updateItem(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "Item updated", resp.Message)
	require.NotNil(t, resp.Item)
	assert.Equal(t, models.Item{ID: 1, Name: "renamed"}, *resp.Item)
}

func TestUpdateItem_MissingFields(t *testing.T) {
	h := newTestHandler(nil, nil)

	tests := []struct {
		name string
		body string
	}{
		{name: "missing name", body: `{"id":1}`},
		{name: "missing id", body: `{"name":"x"}`},
		{name: "empty object", body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/items/update", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.updateItem(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			resp := decodeResponse(t, rec)
			assert.Equal(t, "ID and name required", resp.Error)
		})
	}
}

// Updating an id that matches no row still reports success.
func TestUpdateItem_UnknownIDStillSucceeds(t *testing.T) {
	items := &mockItemService{
		updateFn: func(_ context.Context, item models.Item) (models.Item, error) {
			return item, nil
		},
	}
	h := newTestHandler(nil, items)

	req := httptest.NewRequest(http.MethodPost, "/items/update", strings.NewReader(`{"id":999,"name":"ghost"}`))
	rec := httptest.NewRecorder()

	h.updateItem(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
}

func TestRenameItem_Success(t *testing.T) {
	items := &mockItemService{
		updateFn: func(_ context.Context, item models.Item) (models.Item, error) {
			return item, nil
		},
	}
	h := newTestHandler(nil, items)

	req := withURLParam(httptest.NewRequest(http.MethodPut, "/items/7", strings.NewReader(`{"name":"renamed"}`)), "id", "7")
	rec := httptest.NewRecorder()

	h.renameItem(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Item)
	assert.Equal(t, models.Item{ID: 7, Name: "renamed"}, *resp.Item)
}

func TestDeleteItem_Success(t *testing.T) {
	items := &mockItemService{
		deleteFn: func(_ context.Context, id int64) (models.Item, error) {
			return models.Item{ID: id, Name: "pen"}, nil
		},
	}
	h := newTestHandler(nil, items)

	req := httptest.NewRequest(http.MethodPost, "/items/delete", strings.NewReader(`{"id":7}`))
	rec := httptest.NewRecorder()

	h.deleteItem(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "Item deleted", resp.Message)
	assert.Equal(t, int64(7), resp.ItemID)
	require.NotNil(t, resp.Item)
	assert.Equal(t, "pen", resp.Item.Name)
}

func TestDeleteItem_MissingID(t *testing.T) {
	h := newTestHandler(nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/items/delete", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.deleteItem(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "ID required", resp.Error)
}

func TestDeleteItem_NotFound(t *testing.T) {
	items := &mockItemService{
		deleteFn: func(_ context.Context, _ int64) (models.Item, error) {
			return models.Item{}, store.ErrItemNotFound
		},
	}
	h := newTestHandler(nil, items)

	req := httptest.NewRequest(http.MethodPost, "/items/delete", strings.NewReader(`{"id":99}`))
	rec := httptest.NewRecorder()

	h.deleteItem(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "Item not found", resp.Error)
}

func TestDeleteItemByID_Success(t *testing.T) {
	items := &mockItemService{
		deleteFn: func(_ context.Context, id int64) (models.Item, error) {
			return models.Item{ID: id, Name: "pen"}, nil
		},
	}
	h := newTestHandler(nil, items)

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/items/7", nil), "id", "7")
	rec := httptest.NewRecorder()

	h.deleteItemByID(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, int64(7), resp.ItemID)
}
