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
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	conflictmodel "github.com/DavidCapener182/KSSSupplier-sub002/internal/conflicts/model"
	conflictprovider "github.com/DavidCapener182/KSSSupplier-sub002/internal/conflicts/provider"
	conflictstore "github.com/DavidCapener182/KSSSupplier-sub002/internal/conflicts/store"
	rostermodel "github.com/DavidCapener182/KSSSupplier-sub002/internal/roster/model"
	rosterprovider "github.com/DavidCapener182/KSSSupplier-sub002/internal/roster/provider"
	"github.com/DavidCapener182/KSSSupplier-sub002/internal/system/constants"
	errors2 "github.com/DavidCapener182/KSSSupplier-sub002/internal/system/errors"
)

func seedProvider(t *testing.T, name string) string {
	t.Helper()
	providerId := uuid.New().String()
	_, err := testPG.DB.Exec(`INSERT INTO providers (provider_id, provider_name) VALUES ($1, $2)`,
		providerId, name)
	require.NoError(t, err, "Failed to seed provider")
	return providerId
}

func seedEvent(t *testing.T, name string) string {
	t.Helper()
	eventId := uuid.New().String()
	_, err := testPG.DB.Exec(`INSERT INTO events (event_id, event_name, event_date) VALUES ($1, $2, CURRENT_DATE)`,
		eventId, name)
	require.NoError(t, err, "Failed to seed event")
	return eventId
}

func seedAssignment(t *testing.T, eventId, providerId string) string {
	t.Helper()
	assignmentId := uuid.New().String()
	_, err := testPG.DB.Exec(
		`INSERT INTO assignments (assignment_id, event_id, provider_id, headcount) VALUES ($1, $2, $3, $4)`,
		assignmentId, eventId, providerId, 10)
	require.NoError(t, err, "Failed to seed assignment")
	return assignmentId
}

func addStaff(t *testing.T, assignmentId, name, license string) rostermodel.StaffRecord {
	t.Helper()
	created, err := rosterprovider.NewRosterProvider().GetRosterService().AddStaffRecord(rostermodel.StaffRecord{
		AssignmentId:  assignmentId,
		StaffName:     name,
		LicenseNumber: license,
	})
	require.NoError(t, err, "Failed to add staff record")
	return created
}

func Test_ConflictDetection(t *testing.T) {
	eventId := seedEvent(t, "Stadium Concert")
	assignment1 := seedAssignment(t, eventId, seedProvider(t, "Alpha Security"))
	assignment2 := seedAssignment(t, eventId, seedProvider(t, "Beta Staffing"))

	record1 := addStaff(t, assignment1, "John Smith", "SIA-9912")
	record2 := addStaff(t, assignment2, "Jon Smyth", "SIA-9912")

	scanner := conflictprovider.NewConflictProvider().GetConflictScanner()
	var alertId string

	t.Run("Detect_conflicts", func(t *testing.T) {
		alerts, err := scanner.DetectAndPersist(eventId)
		require.NoError(t, err, "Failed to detect conflicts")
		require.Len(t, alerts, 1, "Expected exactly one alert for the pair")
		require.Equal(t, constants.MatchTypeExactLicense, alerts[0].MatchType)
		require.Equal(t, 1.0, alerts[0].Similarity)
		require.Equal(t, "SIA-9912", alerts[0].LicenseNumber)
		require.Equal(t, constants.AlertStatusPending, alerts[0].Status)
		require.Less(t, alerts[0].RecordId1, alerts[0].RecordId2, "Pair must be stored in canonical order")
		require.ElementsMatch(t,
			[]string{record1.RecordId, record2.RecordId},
			[]string{alerts[0].RecordId1, alerts[0].RecordId2})
		alertId = alerts[0].AlertId
	})

	t.Run("Rescan_is_idempotent", func(t *testing.T) {
		alerts, err := scanner.DetectAndPersist(eventId)
		require.NoError(t, err, "Failed to rescan")
		require.Len(t, alerts, 1, "Rescan must not duplicate the alert")
		require.Equal(t, alertId, alerts[0].AlertId, "Rescan must keep the original alert")
	})

	t.Run("Duplicate_pair_insert_is_dropped", func(t *testing.T) {
		first, second := record1.RecordId, record2.RecordId
		if second < first {
			first, second = second, first
		}
		isNew, err := conflictstore.InsertAlertIfAbsent(conflictmodel.DoubleBookingAlert{
			AlertId:       uuid.New().String(),
			EventId:       eventId,
			RecordId1:     first,
			RecordId2:     second,
			LicenseNumber: "SIA-9912",
			StaffName:     "John Smith",
			MatchType:     constants.MatchTypeExactLicense,
			Similarity:    1.0,
			Status:        constants.AlertStatusPending,
			CreatedAt:     time.Now().UTC().Unix(),
		})
		require.NoError(t, err, "Duplicate insert must not error")
		require.False(t, isNew, "Duplicate pair must be dropped by the uniqueness rule")
	})

	t.Run("List_alerts_with_provider_names", func(t *testing.T) {
		alerts, err := scanner.ListAlerts(eventId)
		require.NoError(t, err, "Failed to list alerts")
		require.Len(t, alerts, 1)
		require.ElementsMatch(t,
			[]string{"Alpha Security", "Beta Staffing"},
			[]string{alerts[0].ProviderName1, alerts[0].ProviderName2})
	})

	t.Run("Unknown_event_returns_404", func(t *testing.T) {
		_, err := scanner.DetectAndPersist(uuid.New().String())
		var clientErr *errors2.ClientError
		require.ErrorAs(t, err, &clientErr)
		require.Equal(t, http.StatusNotFound, clientErr.StatusCode)
	})
}

func Test_NoConflictsForDistinctStaff(t *testing.T) {
	eventId := seedEvent(t, "Arena Match")
	assignment1 := seedAssignment(t, eventId, seedProvider(t, "Gamma Guards"))
	assignment2 := seedAssignment(t, eventId, seedProvider(t, "Delta Events"))

	addStaff(t, assignment1, "Mike Jones", "SIA-1001")
	addStaff(t, assignment2, "Michael Jonas", "SIA-2002")

	scanner := conflictprovider.NewConflictProvider().GetConflictScanner()

	alerts, err := scanner.DetectAndPersist(eventId)
	require.NoError(t, err, "Scan with no conflicts must succeed")
	require.Empty(t, alerts, "Distinct staff must not raise alerts")
}

func Test_SameProviderDuplicatesIgnored(t *testing.T) {
	eventId := seedEvent(t, "Festival Day One")
	assignment := seedAssignment(t, eventId, seedProvider(t, "Epsilon Security"))

	addStaff(t, assignment, "John Smith", "SIA-9912")
	addStaff(t, assignment, "John Smith", "SIA-9912")

	scanner := conflictprovider.NewConflictProvider().GetConflictScanner()

	alerts, err := scanner.DetectAndPersist(eventId)
	require.NoError(t, err)
	require.Empty(t, alerts, "Same-provider pairs must never be flagged")
}

func Test_IncrementalScanOnInsertion(t *testing.T) {
	eventId := seedEvent(t, "Exhibition Hall")
	assignment1 := seedAssignment(t, eventId, seedProvider(t, "Zeta Staffing"))
	assignment2 := seedAssignment(t, eventId, seedProvider(t, "Eta Security"))

	addStaff(t, assignment1, "Sarah Obrien", "SIA-1001")
	addStaff(t, assignment2, "Sarah O'Brien", "SIA-2002")

	// The roster service hands each insertion to the scan worker; the alert
	// shows up once the worker has drained the queue.
	require.Eventually(t, func() bool {
		alerts, err := conflictstore.GetAlertsByEvent(eventId)
		return err == nil && len(alerts) == 1
	}, 10*time.Second, 100*time.Millisecond, "Expected the scan worker to raise one alert")

	alerts, err := conflictstore.GetAlertsByEvent(eventId)
	require.NoError(t, err)
	require.Equal(t, constants.MatchTypeFuzzyName, alerts[0].MatchType)
	require.Greater(t, alerts[0].Similarity, 0.85)
	require.Equal(t, constants.AlertStatusPending, alerts[0].Status)
}

func Test_AddStaffRecordValidation(t *testing.T) {
	rosterSvc := rosterprovider.NewRosterProvider().GetRosterService()

	t.Run("Missing_name_rejected", func(t *testing.T) {
		_, err := rosterSvc.AddStaffRecord(rostermodel.StaffRecord{
			AssignmentId: uuid.New().String(),
		})
		var clientErr *errors2.ClientError
		require.ErrorAs(t, err, &clientErr)
		require.Equal(t, http.StatusBadRequest, clientErr.StatusCode)
	})

	t.Run("Unknown_assignment_rejected", func(t *testing.T) {
		_, err := rosterSvc.AddStaffRecord(rostermodel.StaffRecord{
			AssignmentId: uuid.New().String(),
			StaffName:    "John Smith",
		})
		var clientErr *errors2.ClientError
		require.ErrorAs(t, err, &clientErr)
		require.Equal(t, http.StatusNotFound, clientErr.StatusCode)
	})
}
