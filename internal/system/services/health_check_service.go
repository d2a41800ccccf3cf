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

package services

import (
	"net/http"
	"strings"

	"github.com/DavidCapener182/KSSSupplier-sub002/internal/health_check/handler"
	"github.com/DavidCapener182/KSSSupplier-sub002/internal/system/constants"
)

type HealthCheckService struct {
	healthHandler *handler.HealthHandler
}

func NewHealthCheckService() *HealthCheckService {
	return &HealthCheckService{
		healthHandler: handler.NewHealthHandler(),
	}
}

// Route handles the liveness and readiness endpoints.
func (s *HealthCheckService) Route(w http.ResponseWriter, r *http.Request) {

	path := strings.TrimPrefix(r.URL.Path, constants.ApiBasePath)
	path = strings.TrimSuffix(path, "/")

	switch {
	case r.Method == http.MethodGet && path == "/health/liveness":
		s.healthHandler.HandleHealth(w, r)

	case r.Method == http.MethodGet && path == "/health/readiness":
		s.healthHandler.HandleReadiness(w, r)

	default:
		http.NotFound(w, r)
	}
}
