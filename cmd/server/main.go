// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The api-vault Authors

package main

import (
	"context"
	"fmt"

	"github.com/apivault/apivault/internal/config"
	"github.com/apivault/apivault/internal/crypto"
	"github.com/apivault/apivault/internal/handler"
	"github.com/apivault/apivault/internal/logger"
	"github.com/apivault/apivault/internal/server"
	"github.com/apivault/apivault/internal/service"
	"github.com/apivault/apivault/internal/store"
	"github.com/apivault/apivault/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("api-vault-server")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	if err = migrations.Migrate(storages.DB.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	cipher, err := crypto.NewCipher(cfg.App.EncryptionKey)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating cipher")
	}

	services := service.NewServices(storages, cipher, cfg.App, log)

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
