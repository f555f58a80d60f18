// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The node-api-and-auth Authors

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/givesachin/node-api-and-auth/internal/logger"
	"github.com/givesachin/node-api-and-auth/models"
)

// itemRepository is the SQL-backed implementation of [ItemRepository].
// It executes all item CRUD operations against the "items" table using the
// shared [*DB] connection.
type itemRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewItemRepository constructs an [ItemRepository] backed by the provided
// database connection and logger.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new item row and returns it with the store-assigned id
// via the INSERT … RETURNING clause.
func (r *itemRepository) Create(ctx context.Context, name string) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateItemQuery(r.db.builder, name)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.Create").Msg("failed to build insert query")
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var item models.Item
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&item.ID, &item.Name); err != nil {
		log.Err(err).Str("func", "itemRepository.Create").Str("name", name).Msg("failed to insert item")
		return models.Item{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return item, nil
}

// List returns every item row ordered by id ascending. An empty table yields
// an empty slice, not nil.
func (r *itemRepository) List(ctx context.Context) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListItemsQuery(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.List").Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.List").Msg("failed to execute select query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0, 16)

	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.ID, &item.Name); err != nil {
			log.Err(err).Str("func", "itemRepository.List").Msg("failed to scan item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "itemRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

// GetByID returns the item with the given id or [ErrItemNotFound].
func (r *itemRepository) GetByID(ctx context.Context, id int64) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetItemByIDQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.GetByID").Msg("failed to build select query")
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var item models.Item
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&item.ID, &item.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, ErrItemNotFound
		}

		log.Err(err).Str("func", "itemRepository.GetByID").Int64("id", id).Msg("failed to query item")
		return models.Item{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return item, nil
}

// Update overwrites the name of the row with item.ID and echoes the input
// back. The affected-row count is deliberately not inspected: an update of
// an unknown id is still reported as success (last writer wins, no
// existence check).
func (r *itemRepository) Update(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateItemQuery(r.db.builder, item)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.Update").Msg("failed to build update query")
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "itemRepository.Update").Int64("id", item.ID).Msg("failed to execute update query")
		return models.Item{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return item, nil
}

// Delete removes the row with the given id and returns its pre-delete
// snapshot via the DELETE … RETURNING clause, or [ErrItemNotFound] when the
// id does not exist.
func (r *itemRepository) Delete(ctx context.Context, id int64) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteItemQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.Delete").Msg("failed to build delete query")
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var item models.Item
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&item.ID, &item.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, ErrItemNotFound
		}

		log.Err(err).Str("func", "itemRepository.Delete").Int64("id", id).Msg("failed to execute delete query")
		return models.Item{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Info().Str("func", "itemRepository.Delete").Int64("id", id).Msg("item deleted")

	return item, nil
}
