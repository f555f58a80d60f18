// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The node-api-and-auth Authors

package http

import (
	"net/http"

	"github.com/givesachin/node-api-and-auth/internal/utils"
	"github.com/givesachin/node-api-and-auth/models"
)

// writeSuccess writes resp with Success forced to true and HTTP 200.
func writeSuccess(w http.ResponseWriter, resp models.Response) {
	resp.Success = true
	utils.WriteJSON(w, resp, http.StatusOK)
}

// writeError writes the canonical failure envelope with the given status.
func writeError(w http.ResponseWriter, errorMessage string, statusCode int) {
	utils.WriteJSON(w, models.Response{Success: false, Error: errorMessage}, statusCode)
}

// writeInternalError reports a store or service failure as a 500 whose
// envelope carries the underlying error message, mirroring the API's
// observed contract. The resulting information leak is a documented
// property of the service, not an accident.
func writeInternalError(w http.ResponseWriter, err error) {
	message := http.StatusText(http.StatusInternalServerError)
	if err != nil {
		message = err.Error()
	}
	writeError(w, message, http.StatusInternalServerError)
}
