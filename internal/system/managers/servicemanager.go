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

package managers

import (
	"net/http"
	"strings"

	"github.com/DavidCapener182/KSSSupplier-sub002/internal/system/authn"
	"github.com/DavidCapener182/KSSSupplier-sub002/internal/system/services"
)

type ServiceManagerInterface interface {
	RegisterServices(apiBasePath string) error
}

type ServiceManager struct {
	mux *http.ServeMux
}

// NewServiceManager creates a new instance of ServiceManager.
func NewServiceManager(mux *http.ServeMux) ServiceManagerInterface {

	return &ServiceManager{
		mux: mux,
	}
}

func (sm *ServiceManager) RegisterServices(apiBasePath string) error {

	conflictService := services.NewConflictService()
	rosterService := services.NewRosterService()
	healthService := services.NewHealthCheckService()

	// Health endpoints stay outside the authn boundary so probes work unauthenticated.
	sm.mux.HandleFunc(apiBasePath+"/health/", healthService.Route)

	// Single dispatcher for the authenticated services.
	dispatcher := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, apiBasePath), "/")

		switch {
		case strings.HasPrefix(path, "/conflicts"):
			conflictService.Route(w, r)
		case strings.HasPrefix(path, "/roster"):
			rosterService.Route(w, r)
		default:
			http.NotFound(w, r)
		}
	})
	sm.mux.Handle(apiBasePath+"/", authn.Middleware(dispatcher))

	return nil
}
