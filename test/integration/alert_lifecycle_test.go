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

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	conflictprovider "github.com/DavidCapener182/KSSSupplier-sub002/internal/conflicts/provider"
	conflictstore "github.com/DavidCapener182/KSSSupplier-sub002/internal/conflicts/store"
	"github.com/DavidCapener182/KSSSupplier-sub002/internal/system/constants"
	errors2 "github.com/DavidCapener182/KSSSupplier-sub002/internal/system/errors"
)

func Test_AlertLifecycle(t *testing.T) {
	eventId := seedEvent(t, "Conference Centre")
	assignment1 := seedAssignment(t, eventId, seedProvider(t, "Theta Security"))
	assignment2 := seedAssignment(t, eventId, seedProvider(t, "Iota Staffing"))

	addStaff(t, assignment1, "John Smith", "SIA-5544")
	addStaff(t, assignment2, "Jon Smyth", "SIA-5544")

	scanner := conflictprovider.NewConflictProvider().GetConflictScanner()
	lifecycle := conflictprovider.NewConflictProvider().GetAlertLifecycleService()

	alerts, err := scanner.DetectAndPersist(eventId)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	alertId := alerts[0].AlertId

	t.Run("Invalid_status_rejected", func(t *testing.T) {
		err := lifecycle.Transition(alertId, "escalated")
		var clientErr *errors2.ClientError
		require.ErrorAs(t, err, &clientErr)
		require.Equal(t, http.StatusBadRequest, clientErr.StatusCode)
	})

	t.Run("Unknown_alert_returns_404", func(t *testing.T) {
		err := lifecycle.Transition(uuid.New().String(), constants.AlertStatusResolved)
		var clientErr *errors2.ClientError
		require.ErrorAs(t, err, &clientErr)
		require.Equal(t, http.StatusNotFound, clientErr.StatusCode)
	})

	t.Run("Resolve_pending_alert", func(t *testing.T) {
		require.NoError(t, lifecycle.Transition(alertId, constants.AlertStatusResolved))

		alert, err := conflictstore.GetAlertById(alertId)
		require.NoError(t, err)
		require.NotNil(t, alert)
		require.Equal(t, constants.AlertStatusResolved, alert.Status)
	})

	t.Run("Terminal_state_is_final", func(t *testing.T) {
		err := lifecycle.Transition(alertId, constants.AlertStatusIgnored)
		var clientErr *errors2.ClientError
		require.ErrorAs(t, err, &clientErr)
		require.Equal(t, http.StatusConflict, clientErr.StatusCode)
	})

	t.Run("Rescan_preserves_resolved_status", func(t *testing.T) {
		alerts, err := scanner.DetectAndPersist(eventId)
		require.NoError(t, err)
		require.Len(t, alerts, 1, "Rescan must not create a second alert for the pair")
		require.Equal(t, alertId, alerts[0].AlertId)
		require.Equal(t, constants.AlertStatusResolved, alerts[0].Status)
	})
}
