// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The node-api-and-auth Authors

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/givesachin/node-api-and-auth/internal/logger"
	"github.com/givesachin/node-api-and-auth/internal/service"
	"github.com/givesachin/node-api-and-auth/internal/store"
	"github.com/givesachin/node-api-and-auth/models"
)

// register handles POST /register. It creates a new account and reports a
// confirmation message. Uniqueness is enforced by the store's constraint, so
// a duplicate username surfaces as a 409 regardless of request interleaving.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "Username & password required", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Err(err).Msg("missing registration fields")
		writeError(w, "Username & password required", http.StatusBadRequest)
		return
	}

	_, err := h.services.AuthService.Register(ctx, models.User{Username: req.Username, Password: req.Password})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeError(w, "Username & password required", http.StatusBadRequest)
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			log.Warn().Str("username", req.Username).Msg("username already exists")
			writeError(w, "Username already exists", http.StatusConflict)
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			writeError(w, "Database error: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}

	writeSuccess(w, models.Response{Message: "Registration successful"})
}

// login handles POST /login. It verifies the username/password pair and
// answers with a freshly signed bearer token. A missing account and a wrong
// password both yield the same 401 to avoid leaking which part failed.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	user, err := h.services.AuthService.Login(ctx, models.User{Username: req.Username, Password: req.Password})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided), errors.Is(err, service.ErrInvalidCredentials):
			log.Warn().Str("username", req.Username).Msg("invalid credentials")
			writeError(w, "Invalid credentials", http.StatusUnauthorized)
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			writeInternalError(w, err)
		}
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeInternalError(w, err)
		return
	}

	log.Debug().Str("username", user.Username).Msg("user successfully logged in")

	writeSuccess(w, models.Response{Message: "Login successful", Token: token.SignedString})
}
