/*
 * Copyright 2026 Pathsync Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/pathsynchq/pathsync/pkg/config"
	"github.com/pathsynchq/pathsync/pkg/logger"
	"github.com/pathsynchq/pathsync/pkg/sync"
	"github.com/pathsynchq/pathsync/pkg/sync/integrations/swis"
	"github.com/pathsynchq/pathsync/pkg/sync/integrations/thousandeyes"
)

func main() {
	configPath := flag.String("config", "/etc/pathsync/pathsync.json", "Path to config file")
	flag.Parse()

	ctx := context.Background()

	var cfg sync.Config

	if err := config.NewConfig().LoadAndValidate(ctx, *configPath, &cfg); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.New(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	monitor, err := thousandeyes.NewClient(cfg.Monitor, appLogger)
	if err != nil {
		log.Fatalf("Failed to create monitor service client: %v", err)
	}

	inventory, err := swis.NewClient(cfg.Inventory, appLogger)
	if err != nil {
		log.Fatalf("Failed to create inventory client: %v", err)
	}

	syncer, err := sync.NewSyncer(monitor, inventory, cfg.Sync, appLogger)
	if err != nil {
		log.Fatalf("Failed to create syncer: %v", err)
	}

	result, err := syncer.Sync(ctx)
	if err != nil {
		appLogger.Error().Err(err).Msg("Synchronisation failed")
		os.Exit(1)
	}

	appLogger.Info().
		Int("created", result.Created).
		Int("deleted", result.Deleted).
		Int("create_failed", result.CreateFailed).
		Int("delete_failed", result.DeleteFailed).
		Msg("Synchronisation successful")
}
