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

	"github.com/DavidCapener182/KSSSupplier-sub002/internal/conflicts/handler"
	"github.com/DavidCapener182/KSSSupplier-sub002/internal/system/constants"
)

type ConflictService struct {
	conflictHandler *handler.ConflictHandler
}

func NewConflictService() *ConflictService {
	return &ConflictService{
		conflictHandler: handler.NewConflictHandler(),
	}
}

// Route handles all conflict detection and alert lifecycle endpoints.
func (s *ConflictService) Route(w http.ResponseWriter, r *http.Request) {

	path := strings.TrimPrefix(r.URL.Path, constants.ApiBasePath)
	path = strings.TrimSuffix(path, "/")
	method := r.Method

	switch {
	case method == http.MethodPost && path == "/conflicts/detect":
		s.conflictHandler.DetectConflicts(w, r)

	case method == http.MethodGet && path == "/conflicts":
		s.conflictHandler.GetConflicts(w, r)

	case method == http.MethodPatch && strings.HasPrefix(path, "/conflicts/alerts/"):
		s.conflictHandler.UpdateAlertStatus(w, r)

	default:
		http.NotFound(w, r)
	}
}
