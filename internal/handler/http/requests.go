// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The node-api-and-auth Authors

package http

// credentialsRequest is the body of POST /register and POST /login.
type credentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// createItemRequest is the body of POST /items.
type createItemRequest struct {
	Name string `json:"name" validate:"required"`
}

// updateItemRequest is the body of POST /items/update. The PUT /items/{id}
// variant carries the id in the path instead, so only Name is required there.
type updateItemRequest struct {
	ID   int64  `json:"id" validate:"required"`
	Name string `json:"name" validate:"required"`
}

// renameItemRequest is the body of PUT /items/{id}.
type renameItemRequest struct {
	Name string `json:"name" validate:"required"`
}

// deleteItemRequest is the body of POST /items/delete.
type deleteItemRequest struct {
	ID int64 `json:"id" validate:"required"`
}
