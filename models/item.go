// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The node-api-and-auth Authors

package models

// Item represents a row of the "items" resource. The ID is assigned by the
// store on insert; Name is mutated in place by updates, last writer wins.
type Item struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TableName returns the name of the database table
// associated with the Item model.
func (i Item) TableName() string {
	return "items"
}
