// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The node-api-and-auth Authors

package service

import (
	"context"
	"fmt"

	"github.com/givesachin/node-api-and-auth/internal/logger"
	"github.com/givesachin/node-api-and-auth/internal/store"
	"github.com/givesachin/node-api-and-auth/models"
)

// itemService is the concrete implementation of ItemService. It applies input
// validation and delegates persistence to an ItemRepository; all items live in
// a single shared collection visible to every authenticated user.
type itemService struct {
	itemRepository store.ItemRepository
	logger         *logger.Logger
}

// NewItemService constructs an ItemService backed by the given repository.
func NewItemService(itemRepository store.ItemRepository, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		logger:         logger,
	}
}

// Create validates the name and persists a new item.
// Returns ErrInvalidDataProvided if the name is empty.
func (s *itemService) Create(ctx context.Context, name string) (models.Item, error) {
	log := logger.FromContext(ctx)

	if name == "" {
		log.Error().Msg("empty item name provided")
		return models.Item{}, ErrInvalidDataProvided
	}

	item, err := s.itemRepository.Create(ctx, name)
	if err != nil {
		log.Err(err).Str("name", name).Msg("item creation ended with error")
		return models.Item{}, fmt.Errorf("item creation ended with error: %w", err)
	}

	return item, nil
}

// List returns all items ordered by id. The slice is never nil.
func (s *itemService) List(ctx context.Context) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	items, err := s.itemRepository.List(ctx)
	if err != nil {
		log.Err(err).Msg("item listing ended with error")
		return nil, fmt.Errorf("item listing ended with error: %w", err)
	}

	return items, nil
}

// Get returns a single item by id.
// Returns store.ErrItemNotFound (wrapped) when the id does not exist.
func (s *itemService) Get(ctx context.Context, id int64) (models.Item, error) {
	log := logger.FromContext(ctx)

	item, err := s.itemRepository.GetByID(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("item lookup ended with error")
		return models.Item{}, fmt.Errorf("item lookup ended with error: %w", err)
	}

	return item, nil
}

// Update overwrites the name of the item with the given id and echoes the
// updated value back. An unknown id is not an error: the write simply affects
// no rows and the input is still returned as the result.
// Returns ErrInvalidDataProvided if the new name is empty.
func (s *itemService) Update(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	if item.Name == "" {
		log.Error().Int64("id", item.ID).Msg("empty item name provided")
		return models.Item{}, ErrInvalidDataProvided
	}

	updated, err := s.itemRepository.Update(ctx, item)
	if err != nil {
		log.Err(err).Int64("id", item.ID).Msg("item update ended with error")
		return models.Item{}, fmt.Errorf("item update ended with error: %w", err)
	}

	return updated, nil
}

// Delete removes the item with the given id and returns its pre-delete
// snapshot. Returns store.ErrItemNotFound (wrapped) when the id does not
// exist.
func (s *itemService) Delete(ctx context.Context, id int64) (models.Item, error) {
	log := logger.FromContext(ctx)

	item, err := s.itemRepository.Delete(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("item deletion ended with error")
		return models.Item{}, fmt.Errorf("item deletion ended with error: %w", err)
	}

	return item, nil
}
