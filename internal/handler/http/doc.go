// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The node-api-and-auth Authors

// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response helpers for
// the REST API. Authentication, logging, and tracing concerns are all
// handled at this layer before requests are forwarded to the service layer.
//
// Every endpoint answers with the same JSON envelope:
//
//	{"success": bool, "message"?: string, "error"?: string,
//	 "token"?: string, "item"?: {...}, "items"?: [...], "itemId"?: number}
package http
