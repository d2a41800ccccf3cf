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

package main

import (
	"flag"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/DavidCapener182/KSSSupplier-sub002/internal/system/config"
	"github.com/DavidCapener182/KSSSupplier-sub002/internal/system/constants"
	dbprovider "github.com/DavidCapener182/KSSSupplier-sub002/internal/system/database/provider"
	"github.com/DavidCapener182/KSSSupplier-sub002/internal/system/log"
	"github.com/DavidCapener182/KSSSupplier-sub002/internal/system/managers"
	"github.com/DavidCapener182/KSSSupplier-sub002/internal/system/schedulers"
	"github.com/DavidCapener182/KSSSupplier-sub002/internal/system/workers"
)

const configFile = "config/deployment.yaml"

func main() {
	scsHome := getSCSHome()

	envFiles, err := filepath.Glob(filepath.Join(scsHome, "config", "*.env"))
	if err == nil && len(envFiles) > 0 {
		_ = godotenv.Load(envFiles...)
	}

	// Load the configuration file.
	scsConfig, err := config.LoadConfig(scsHome, configFile)
	if err != nil {
		stdlog.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize runtime configuration.
	if err := config.InitializeSCSRuntime(scsHome, scsConfig); err != nil {
		stdlog.Fatalf("Failed to initialize runtime configuration: %v", err)
	}

	// Initialize logger.
	if err := log.Init(scsConfig.Log.LogLevel); err != nil {
		stdlog.Fatalf("Failed to initialize logger: %v", err)
	}
	logger := log.GetLogger()

	// Verify database connectivity before serving.
	if _, err := dbprovider.NewDBProvider().GetDBClient(); err != nil {
		logger.Fatal("Failed to connect to the database", log.Error(err))
	}
	logger.Info("Database connection verified")

	// Start the incremental scan worker.
	workers.StartScanWorker()

	// Start the periodic full-rescan scheduler.
	if interval := scsConfig.Detection.RescanIntervalMinutes; interval > 0 {
		go schedulers.StartRescanScheduler(time.Duration(interval) * time.Minute)
	}

	serverAddr := fmt.Sprintf("%s:%d", scsConfig.Addr.Host, scsConfig.Addr.Port)
	mux := enableCORS(initMultiplexer())

	ln, err := net.Listen("tcp", serverAddr)
	if err != nil {
		logger.Fatal("Failed to start listener", log.Error(err))
	}

	logger.Info("Staffing conflict service started in: " + serverAddr)

	server := &http.Server{Handler: mux}
	if err := server.Serve(ln); err != nil {
		logger.Error("Failed to serve requests.", log.Error(err))
	}
}

// initMultiplexer initializes the HTTP multiplexer and registers the services.
func initMultiplexer() *http.ServeMux {

	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux)

	// Register the services.
	err := serviceManager.RegisterServices(constants.ApiBasePath)
	if err != nil {
		log.GetLogger().Error("Failed to register the services.", log.Error(err))
	}

	return mux
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func getSCSHome() string {

	// Parse project directory from command line arguments.
	projectHome := ""
	projectHomeFlag := flag.String("scsHome", "", "Path to the staffing conflict service home directory")
	flag.Parse()

	if *projectHomeFlag != "" {
		projectHome = *projectHomeFlag
	} else {
		// If no command line argument is provided, use the current working directory.
		dir, dirErr := os.Getwd()
		if dirErr != nil {
			stdlog.Fatalf("Failed to get current working directory: %v", dirErr)
		}
		projectHome = dir
	}

	return projectHome
}
