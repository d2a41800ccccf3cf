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
	"github.com/DavidCapener182/KSSSupplier-sub002/internal/conflicts/model"
	"github.com/DavidCapener182/KSSSupplier-sub002/internal/conflicts/service"
	"github.com/DavidCapener182/KSSSupplier-sub002/internal/conflicts/store"
	"github.com/DavidCapener182/KSSSupplier-sub002/internal/matching"
	rostermodel "github.com/DavidCapener182/KSSSupplier-sub002/internal/roster/model"
	rosterstore "github.com/DavidCapener182/KSSSupplier-sub002/internal/roster/store"
	"github.com/DavidCapener182/KSSSupplier-sub002/internal/system/client"
	"github.com/DavidCapener182/KSSSupplier-sub002/internal/system/config"
)

// ConflictProviderInterface defines the interface for the conflict provider.
type ConflictProviderInterface interface {
	GetConflictScanner() *service.ConflictScanner
	GetAlertLifecycleService() *service.AlertLifecycleService
}

// ConflictProvider wires the scanner and lifecycle services to the Postgres
// stores and the notification client.
type ConflictProvider struct{}

// NewConflictProvider creates a new instance of ConflictProvider.
func NewConflictProvider() ConflictProviderInterface {

	return &ConflictProvider{}
}

// GetConflictScanner returns a scanner bound to the concrete stores, the
// configured fuzzy threshold and the notification collaborator.
func (cp *ConflictProvider) GetConflictScanner() *service.ConflictScanner {

	cfg := config.GetSCSRuntime().Config
	matcher := matching.NewMatcher(cfg.Detection.FuzzyNameThreshold)
	notifier := client.NewNotificationClient(cfg)

	return service.NewConflictScanner(&rosterReader{}, &alertStore{}, matcher, notifier)
}

// GetAlertLifecycleService returns the lifecycle service over the alert store.
func (cp *ConflictProvider) GetAlertLifecycleService() *service.AlertLifecycleService {

	return service.NewAlertLifecycleService(&alertStore{})
}

// rosterReader adapts the roster store package to the scanner's RosterReader.
type rosterReader struct{}

func (r *rosterReader) EventExists(eventId string) (bool, error) {
	return rosterstore.EventExists(eventId)
}

func (r *rosterReader) GetStaffRecordsByEvent(eventId string) ([]rostermodel.StaffRecord, error) {
	return rosterstore.GetStaffRecordsByEvent(eventId)
}

// alertStore adapts the alert store package to the scanner and lifecycle interfaces.
type alertStore struct{}

func (s *alertStore) InsertAlertIfAbsent(alert model.DoubleBookingAlert) (bool, error) {
	return store.InsertAlertIfAbsent(alert)
}

func (s *alertStore) GetAlertsByEvent(eventId string) ([]model.DoubleBookingAlert, error) {
	return store.GetAlertsByEvent(eventId)
}

func (s *alertStore) GetAlertById(alertId string) (*model.DoubleBookingAlert, error) {
	return store.GetAlertById(alertId)
}

func (s *alertStore) UpdateAlertStatusFromPending(alertId string, status string) (int64, error) {
	return store.UpdateAlertStatusFromPending(alertId, status)
}
