// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The node-api-and-auth Authors

package main

import (
	"context"
	"fmt"

	"github.com/givesachin/node-api-and-auth/internal/config"
	myHTTP "github.com/givesachin/node-api-and-auth/internal/handler/http"
	"github.com/givesachin/node-api-and-auth/internal/logger"
	"github.com/givesachin/node-api-and-auth/internal/server"
	"github.com/givesachin/node-api-and-auth/internal/service"
	"github.com/givesachin/node-api-and-auth/internal/store"
	"github.com/givesachin/node-api-and-auth/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("items-server")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.Connect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = migrations.Migrate(db.DB, db.Driver()); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repositories := store.NewRepositories(db, log)
	services := service.NewServices(repositories, *cfg, log)
	handler := myHTTP.NewHandler(services, cfg.Server, log)

	server.NewServer(handler.Init(), cfg.Server, log).RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
