// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The node-api-and-auth Authors

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/givesachin/node-api-and-auth/internal/logger"
	"github.com/givesachin/node-api-and-auth/internal/utils"
)

// maxTokenBodyBytes bounds how much of a request body the middleware is
// willing to buffer while looking for a body-carried token.
const maxTokenBodyBytes = 1 << 20

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// The token is looked up in three places, in order of precedence:
//  1. the "Authorization: Bearer <token>" header,
//  2. the "token" query parameter,
//  3. the "token" field of a JSON request body.
//
// Body extraction buffers and restores r.Body so that downstream handlers
// can still decode the payload.
//
// Rejections:
//   - HTTP 401 with [ErrTokenMissing] when no token was found anywhere.
//   - HTTP 403 with [ErrTokenInvalidOrExpired] when a token was found but
//     failed signature, expiry, or issuer verification.
//
// On success the authenticated username is stored in the request context
// under [utils.UsernameCtxKey] before delegating to the next handler.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString := extractToken(r)
		if tokenString == "" {
			log.Warn().Msg("no token supplied in header, query or body")
			writeError(w, ErrTokenMissing.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("token verification failed")
			writeError(w, ErrTokenInvalidOrExpired.Error(), http.StatusForbidden)
			return
		}

		// Store the authenticated username in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UsernameCtxKey, token.Username)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// extractToken returns the first token found in the accepted transports, or
// the empty string when none carries one.
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		if tokenString, err := utils.ParseBearerToken(authHeader); err == nil {
			return tokenString
		}
	}

	if tokenString := r.URL.Query().Get("token"); tokenString != "" {
		return tokenString
	}

	return extractTokenFromBody(r)
}

// extractTokenFromBody peeks into a JSON request body for a "token" field.
// The consumed bytes are rewound into r.Body, so the downstream handler sees
// the payload untouched — including bodies larger than maxTokenBodyBytes,
// which are restored in full but never searched for a token. A non-JSON or
// oversized body simply yields no token.
func extractTokenFromBody(r *http.Request) string {
	if r.Body == nil {
		return ""
	}

	// Read one byte past the cap so an exactly-at-cap body is distinguishable
	// from an oversized one.
	bodyBytes, err := io.ReadAll(io.LimitReader(r.Body, maxTokenBodyBytes+1))
	if len(bodyBytes) > maxTokenBodyBytes {
		// Too large to search. Stitch the buffered prefix back onto the
		// unread remainder so the downstream handler still sees the whole
		// stream.
		r.Body = &replayBody{
			Reader: io.MultiReader(bytes.NewReader(bodyBytes), r.Body),
			closer: r.Body,
		}
		return ""
	}

	r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(bodyBytes))
	if err != nil {
		return ""
	}

	var payload struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(bodyBytes, &payload); err != nil {
		return ""
	}

	return payload.Token
}

// replayBody re-serves buffered bytes ahead of a still-open body stream while
// keeping the original Close behavior.
type replayBody struct {
	io.Reader
	closer io.Closer
}

func (b *replayBody) Close() error {
	return b.closer.Close()
}
