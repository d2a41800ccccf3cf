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

package provider

import (
	"github.com/DavidCapener182/KSSSupplier-sub002/internal/roster/service"
)

// RosterProviderInterface defines the interface for the roster provider.
type RosterProviderInterface interface {
	GetRosterService() service.RosterServiceInterface
}

// RosterProvider is the default implementation of the RosterProviderInterface.
type RosterProvider struct{}

// NewRosterProvider creates a new instance of RosterProvider.
func NewRosterProvider() RosterProviderInterface {

	return &RosterProvider{}
}

// GetRosterService returns the roster service instance.
func (rp *RosterProvider) GetRosterService() service.RosterServiceInterface {

	return service.GetRosterService()
}
