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

package sync

import (
	"context"

	"github.com/pathsynchq/pathsync/pkg/sync/integrations/thousandeyes"
)

//go:generate mockgen -destination=mock_sync.go -package=sync github.com/pathsynchq/pathsync/pkg/sync MonitorAPI,InventoryAPI

// MonitorAPI is the monitor service surface the syncer needs.
type MonitorAPI interface {
	Status(ctx context.Context) (bool, error)
	GetAgents(ctx context.Context) ([]thousandeyes.Agent, error)
	GetNetworkTests(ctx context.Context) ([]thousandeyes.NetworkTest, error)
	CreateNetworkTest(ctx context.Context, test *thousandeyes.NetworkTest) (bool, error)
	DeleteNetworkTest(ctx context.Context, id int) (bool, error)
}

// InventoryAPI is the source-of-truth surface the syncer needs.
type InventoryAPI interface {
	Status(ctx context.Context) (bool, error)
	GetFlaggedEndpoints(ctx context.Context, customProperty string) (map[string]string, error)
}
