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
	"fmt"
	"net/http"

	"github.com/DavidCapener182/KSSSupplier-sub002/internal/conflicts/model"
	"github.com/DavidCapener182/KSSSupplier-sub002/internal/system/constants"
	errors2 "github.com/DavidCapener182/KSSSupplier-sub002/internal/system/errors"
	"github.com/DavidCapener182/KSSSupplier-sub002/internal/system/log"
)

// LifecycleStore is the slice of alert persistence the lifecycle needs.
type LifecycleStore interface {
	GetAlertById(alertId string) (*model.DoubleBookingAlert, error)
	UpdateAlertStatusFromPending(alertId string, status string) (int64, error)
}

// AlertLifecycleService owns the alert state machine:
//
//	pending -> resolved | ignored
//
// Both target states are terminal and nothing moves an alert back to pending.
// Only an explicit admin action goes through here; the scanner never touches
// status, and a rescan that rediscovers a resolved or ignored pair cannot
// resurrect it (the store's no-overwrite rule).
type AlertLifecycleService struct {
	alerts LifecycleStore
}

// NewAlertLifecycleService creates an AlertLifecycleService over the given store.
func NewAlertLifecycleService(alerts LifecycleStore) *AlertLifecycleService {

	return &AlertLifecycleService{alerts: alerts}
}

// Transition moves one alert from pending to the given terminal status.
func (als *AlertLifecycleService) Transition(alertId string, to string) error {

	if !constants.AllowedTransitionStatuses[to] {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.INVALID_ALERT_STATUS.Code,
			Message:     errors2.INVALID_ALERT_STATUS.Message,
			Description: errors2.INVALID_ALERT_STATUS.Description,
		}, http.StatusBadRequest)
	}

	alert, err := als.alerts.GetAlertById(alertId)
	if err != nil {
		return err
	}
	if alert == nil {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.ALERT_NOT_FOUND.Code,
			Message:     errors2.ALERT_NOT_FOUND.Message,
			Description: errors2.ALERT_NOT_FOUND.Description,
		}, http.StatusNotFound)
	}

	if alert.Status != constants.AlertStatusPending {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.INVALID_ALERT_STATUS.Code,
			Message:     errors2.INVALID_ALERT_STATUS.Message,
			Description: fmt.Sprintf("Alert is already %s and cannot be moved.", alert.Status),
		}, http.StatusConflict)
	}

	affected, err := als.alerts.UpdateAlertStatusFromPending(alertId, to)
	if err != nil {
		return err
	}
	if affected == 0 {
		// Lost a race with another admin action; the alert is no longer pending.
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.INVALID_ALERT_STATUS.Code,
			Message:     errors2.INVALID_ALERT_STATUS.Message,
			Description: "Alert is no longer pending.",
		}, http.StatusConflict)
	}

	log.GetLogger().Info(fmt.Sprintf("Alert: %s moved to status: %s", alertId, to))
	return nil
}
