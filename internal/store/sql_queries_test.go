// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The node-api-and-auth Authors

package store

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/givesachin/node-api-and-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pgBuilder     = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func Test_buildCreateUserQuery(t *testing.T) {
	user := models.User{Username: "alice", Password: "p1"}

	query, args, err := buildCreateUserQuery(pgBuilder, user)
	require.NoError(t, err)

	require.Equal(t, []any{"alice", "p1"}, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into users")
	require.Contains(t, q, "username")
	require.Contains(t, q, "password")
	require.Contains(t, q, "returning id, username, password")

	// placeholder format should be $N (Postgres)
	require.Contains(t, query, "$1")
	require.Contains(t, query, "$2")
}

func Test_buildCreateUserQuery_SQLitePlaceholders(t *testing.T) {
	query, _, err := buildCreateUserQuery(sqliteBuilder, models.User{Username: "alice", Password: "p1"})
	require.NoError(t, err)

	assert.NotContains(t, query, "$1")
	assert.Contains(t, query, "?")
}

func Test_buildFindUserByCredentialsQuery(t *testing.T) {
	query, args, err := buildFindUserByCredentialsQuery(pgBuilder, "alice", "p1")
	require.NoError(t, err)

	// sq.Eq iterates keys in sorted order, so password precedes username.
	require.Equal(t, []any{"p1", "alice"}, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "select id, username, password")
	require.Contains(t, q, "from users")
	require.Contains(t, q, "where")
	require.Contains(t, q, "password = $1")
	require.Contains(t, q, "username = $2")
}

func Test_buildCreateItemQuery(t *testing.T) {
	query, args, err := buildCreateItemQuery(pgBuilder, "pen")
	require.NoError(t, err)

	require.Equal(t, []any{"pen"}, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into items")
	require.Contains(t, q, "returning id, name")
	require.Contains(t, query, "$1")
}

func Test_buildListItemsQuery(t *testing.T) {
	query, args, err := buildListItemsQuery(pgBuilder)
	require.NoError(t, err)

	require.Empty(t, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "select id, name")
	require.Contains(t, q, "from items")
	require.Contains(t, q, "order by id asc")
}

func Test_buildGetItemByIDQuery(t *testing.T) {
	query, args, err := buildGetItemByIDQuery(pgBuilder, 42)
	require.NoError(t, err)

	require.Equal(t, []any{int64(42)}, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "from items")
	require.Contains(t, q, "id = $1")
}

func Test_buildUpdateItemQuery(t *testing.T) {
	query, args, err := buildUpdateItemQuery(pgBuilder, models.Item{ID: 1, Name: "x"})
	require.NoError(t, err)

	require.Equal(t, []any{"x", int64(1)}, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "update items")
	require.Contains(t, q, "set name = $1")
	require.Contains(t, q, "id = $2")
}

func Test_buildDeleteItemQuery(t *testing.T) {
	query, args, err := buildDeleteItemQuery(pgBuilder, 7)
	require.NoError(t, err)

	require.Equal(t, []any{int64(7)}, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "delete from items")
	require.Contains(t, q, "id = $1")
	require.Contains(t, q, "returning id, name")
}
