// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The node-api-and-auth Authors

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/givesachin/node-api-and-auth/internal/logger"
	"github.com/givesachin/node-api-and-auth/internal/service"
	"github.com/givesachin/node-api-and-auth/internal/store"
	"github.com/givesachin/node-api-and-auth/models"
	"github.com/go-chi/chi/v5"
)

// createItem handles POST /items.
func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "Item name required", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Err(err).Msg("missing item name")
		writeError(w, "Item name required", http.StatusBadRequest)
		return
	}

	item, err := h.services.ItemService.Create(ctx, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			writeError(w, "Item name required", http.StatusBadRequest)
			return
		}

		log.Err(err).Msg("unexpected error occurred during item creation")
		writeInternalError(w, err)
		return
	}

	writeSuccess(w, models.Response{Message: "Item created", Item: &item})
}

// listItems handles GET /items and its GET /items/list alias.
func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	items, err := h.services.ItemService.List(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during item listing")
		writeInternalError(w, err)
		return
	}

	writeSuccess(w, models.Response{Items: &items})
}

// getItem handles GET /items/{id}.
func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("non-numeric item id in path")
		writeError(w, "ID required", http.StatusBadRequest)
		return
	}

	item, err := h.services.ItemService.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			writeError(w, "Item not found", http.StatusNotFound)
			return
		}

		log.Err(err).Int64("id", id).Msg("unexpected error occurred during item lookup")
		writeInternalError(w, err)
		return
	}

	writeSuccess(w, models.Response{Item: &item})
}

// updateItem handles POST /items/update, with the id carried in the body.
// An update of an unknown id still reports success: the write simply affects
// no rows, matching the last-writer-wins contract of the endpoint.
func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "ID and name required", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Err(err).Msg("missing update fields")
		writeError(w, "ID and name required", http.StatusBadRequest)
		return
	}

	h.applyItemUpdate(w, r, models.Item{ID: req.ID, Name: req.Name})
}

// renameItem handles PUT /items/{id}, with the id carried in the path.
func (h *Handler) renameItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("non-numeric item id in path")
		writeError(w, "ID and name required", http.StatusBadRequest)
		return
	}

	var req renameItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "ID and name required", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Err(err).Msg("missing item name")
		writeError(w, "ID and name required", http.StatusBadRequest)
		return
	}

	h.applyItemUpdate(w, r, models.Item{ID: id, Name: req.Name})
}

// applyItemUpdate performs the shared update path of the two update variants.
func (h *Handler) applyItemUpdate(w http.ResponseWriter, r *http.Request, item models.Item) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	updated, err := h.services.ItemService.Update(ctx, item)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			writeError(w, "ID and name required", http.StatusBadRequest)
			return
		}

		log.Err(err).Int64("id", item.ID).Msg("unexpected error occurred during item update")
		writeInternalError(w, err)
		return
	}

	writeSuccess(w, models.Response{Message: "Item updated", Item: &updated})
}

// deleteItem handles POST /items/delete, with the id carried in the body.
func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req deleteItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "ID required", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Err(err).Msg("missing item id")
		writeError(w, "ID required", http.StatusBadRequest)
		return
	}

	h.applyItemDelete(w, r, req.ID)
}

// deleteItemByID handles DELETE /items/{id}, with the id carried in the path.
func (h *Handler) deleteItemByID(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("non-numeric item id in path")
		writeError(w, "ID required", http.StatusBadRequest)
		return
	}

	h.applyItemDelete(w, r, id)
}

// applyItemDelete performs the shared delete path of the two delete variants.
// The deleted item's pre-delete snapshot is echoed back alongside its id.
func (h *Handler) applyItemDelete(w http.ResponseWriter, r *http.Request, id int64) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	item, err := h.services.ItemService.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			writeError(w, "Item not found", http.StatusNotFound)
			return
		}

		log.Err(err).Int64("id", id).Msg("unexpected error occurred during item deletion")
		writeInternalError(w, err)
		return
	}

	writeSuccess(w, models.Response{Message: "Item deleted", Item: &item, ItemID: item.ID})
}
