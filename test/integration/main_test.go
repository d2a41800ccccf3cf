/*
 * Copyright (c) 2026, KSS Supplier Ltd. (https://www.ksssupplier.co.uk).
 *
 * KSS Supplier Ltd. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package integration

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/DavidCapener182/KSSSupplier-sub002/internal/system/config"
	"github.com/DavidCapener182/KSSSupplier-sub002/internal/system/database/provider"
	"github.com/DavidCapener182/KSSSupplier-sub002/internal/system/log"
	"github.com/DavidCapener182/KSSSupplier-sub002/internal/system/workers"
	"github.com/DavidCapener182/KSSSupplier-sub002/test/integration/utils"
	"github.com/DavidCapener182/KSSSupplier-sub002/test/setup"
)

var testPG *setup.TestPostgres

func TestMain(m *testing.M) {
	ctx := context.Background()
	os.Setenv("TEST_MODE", "true")

	conf := config.Config{
		Log: config.LogConfig{
			LogLevel: "DEBUG",
		},
		Detection: config.DetectionConfig{
			FuzzyNameThreshold: 0.85,
		},
	}
	config.OverrideSCSRuntime(conf)
	_ = log.Init("DEBUG")

	pg, err := setup.SetupTestPostgres(ctx)
	if err != nil {
		fmt.Println("Failed to start test DB:", err)
		os.Exit(1)
	}
	testPG = pg

	provider.SetTestDB(pg.DB)
	err = utils.CreateTablesFromFile(pg.DB, filepath.Join("..", "..", "dbscripts", "schema.sql"))
	if err != nil {
		fmt.Println("Failed to create tables from schema:", err)
		os.Exit(1)
	}

	workers.StartScanWorker()

	code := m.Run()

	_ = pg.Container.Terminate(ctx)

	os.Exit(code)
}
