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

package service

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DavidCapener182/KSSSupplier-sub002/internal/conflicts/model"
	"github.com/DavidCapener182/KSSSupplier-sub002/internal/system/constants"
	errors2 "github.com/DavidCapener182/KSSSupplier-sub002/internal/system/errors"
)

func seedAlert(t *testing.T, store *fakeAlertStore, status string) string {

	t.Helper()
	alert := model.DoubleBookingAlert{
		AlertId:   uuid.New().String(),
		EventId:   "ev-1",
		RecordId1: "rec-a",
		RecordId2: "rec-b",
		MatchType: constants.MatchTypeExactLicense,
		Status:    status,
	}
	isNew, err := store.InsertAlertIfAbsent(alert)
	require.NoError(t, err)
	require.True(t, isNew)
	return alert.AlertId
}

func TestTransition_PendingToResolved(t *testing.T) {

	store := newFakeAlertStore()
	alertId := seedAlert(t, store, constants.AlertStatusPending)
	lifecycle := NewAlertLifecycleService(store)

	require.NoError(t, lifecycle.Transition(alertId, constants.AlertStatusResolved))

	alert, err := store.GetAlertById(alertId)
	require.NoError(t, err)
	assert.Equal(t, constants.AlertStatusResolved, alert.Status)
}

func TestTransition_PendingToIgnored(t *testing.T) {

	store := newFakeAlertStore()
	alertId := seedAlert(t, store, constants.AlertStatusPending)
	lifecycle := NewAlertLifecycleService(store)

	require.NoError(t, lifecycle.Transition(alertId, constants.AlertStatusIgnored))

	alert, err := store.GetAlertById(alertId)
	require.NoError(t, err)
	assert.Equal(t, constants.AlertStatusIgnored, alert.Status)
}

func TestTransition_UnknownStatusRejected(t *testing.T) {

	store := newFakeAlertStore()
	alertId := seedAlert(t, store, constants.AlertStatusPending)
	lifecycle := NewAlertLifecycleService(store)

	err := lifecycle.Transition(alertId, "escalated")

	var clientErr *errors2.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, http.StatusBadRequest, clientErr.StatusCode)
	assert.Equal(t, errors2.INVALID_ALERT_STATUS.Code, clientErr.Code)
}

func TestTransition_BackToPendingRejected(t *testing.T) {

	store := newFakeAlertStore()
	alertId := seedAlert(t, store, constants.AlertStatusPending)
	lifecycle := NewAlertLifecycleService(store)

	err := lifecycle.Transition(alertId, constants.AlertStatusPending)

	var clientErr *errors2.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, http.StatusBadRequest, clientErr.StatusCode)
}

func TestTransition_UnknownAlertReturns404(t *testing.T) {

	lifecycle := NewAlertLifecycleService(newFakeAlertStore())

	err := lifecycle.Transition(uuid.New().String(), constants.AlertStatusResolved)

	var clientErr *errors2.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, http.StatusNotFound, clientErr.StatusCode)
	assert.Equal(t, errors2.ALERT_NOT_FOUND.Code, clientErr.Code)
}

func TestTransition_TerminalStatesAreFinal(t *testing.T) {

	store := newFakeAlertStore()
	alertId := seedAlert(t, store, constants.AlertStatusPending)
	lifecycle := NewAlertLifecycleService(store)

	require.NoError(t, lifecycle.Transition(alertId, constants.AlertStatusResolved))

	err := lifecycle.Transition(alertId, constants.AlertStatusIgnored)

	var clientErr *errors2.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, http.StatusConflict, clientErr.StatusCode)

	alert, getErr := store.GetAlertById(alertId)
	require.NoError(t, getErr)
	assert.Equal(t, constants.AlertStatusResolved, alert.Status)
}
