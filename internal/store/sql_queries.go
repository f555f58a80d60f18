// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The node-api-and-auth Authors

package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/givesachin/node-api-and-auth/models"
)

// Query builders. Every statement the repositories execute is assembled
// through squirrel so that the placeholder format follows the driver chosen
// at connect time (Dollar for Postgres, Question for SQLite).

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(user.TableName()).
		Columns("username", "password").
		Values(user.Username, user.Password).
		Suffix("RETURNING id, username, password").
		ToSql()
}

func buildFindUserByCredentialsQuery(b sq.StatementBuilderType, username, password string) (string, []any, error) {
	return b.Select("id", "username", "password").
		From(models.User{}.TableName()).
		Where(sq.Eq{"username": username, "password": password}).
		ToSql()
}

func buildCreateItemQuery(b sq.StatementBuilderType, name string) (string, []any, error) {
	return b.Insert(models.Item{}.TableName()).
		Columns("name").
		Values(name).
		Suffix("RETURNING id, name").
		ToSql()
}

func buildListItemsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("id", "name").
		From(models.Item{}.TableName()).
		OrderBy("id ASC").
		ToSql()
}

func buildGetItemByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select("id", "name").
		From(models.Item{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildUpdateItemQuery(b sq.StatementBuilderType, item models.Item) (string, []any, error) {
	return b.Update(item.TableName()).
		Set("name", item.Name).
		Where(sq.Eq{"id": item.ID}).
		ToSql()
}

func buildDeleteItemQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(models.Item{}.TableName()).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, name").
		ToSql()
}
