// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The node-api-and-auth Authors

package http

import (
	"github.com/givesachin/node-api-and-auth/internal/config"
	"github.com/givesachin/node-api-and-auth/internal/logger"
	"github.com/givesachin/node-api-and-auth/internal/service"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	services *service.Services

	// validate checks decoded request bodies against their struct tags.
	validate *validator.Validate

	// staticDir is the directory served at the site root for the bundled
	// tester page. Empty disables static serving.
	staticDir string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validate:  validator.New(),
		staticDir: cfg.StaticDir,
		logger:    logger,
	}
}
