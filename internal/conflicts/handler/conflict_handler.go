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

package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/DavidCapener182/KSSSupplier-sub002/internal/conflicts/model"
	"github.com/DavidCapener182/KSSSupplier-sub002/internal/conflicts/provider"
	"github.com/DavidCapener182/KSSSupplier-sub002/internal/system/constants"
	errors2 "github.com/DavidCapener182/KSSSupplier-sub002/internal/system/errors"
	"github.com/DavidCapener182/KSSSupplier-sub002/internal/system/log"
	"github.com/DavidCapener182/KSSSupplier-sub002/internal/system/utils"
)

type ConflictHandler struct{}

func NewConflictHandler() *ConflictHandler {

	return &ConflictHandler{}
}

// DetectConflicts handles POST /conflicts/detect
func (ch *ConflictHandler) DetectConflicts(w http.ResponseWriter, r *http.Request) {

	var req model.DetectConflictsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.HandleError(w, badRequestError(utils.HandleDecodeError(err, "conflict detection")))
		return
	}
	if req.EventId == "" {
		utils.HandleError(w, badRequestError("event_id is required."))
		return
	}

	conflictProvider := provider.NewConflictProvider()
	scanner := conflictProvider.GetConflictScanner()
	alerts, err := scanner.DetectAndPersist(req.EventId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	logger := log.GetLogger()
	logger.Info(fmt.Sprintf("Conflict scan completed for event: %s with %d alert(s)", req.EventId, len(alerts)))
	utils.WriteJSONResponse(w, http.StatusOK, model.ConflictListResponse{
		Conflicts: emptyIfNil(alerts),
		Count:     len(alerts),
	})
}

// GetConflicts handles GET /conflicts?event_id=...
func (ch *ConflictHandler) GetConflicts(w http.ResponseWriter, r *http.Request) {

	eventId := r.URL.Query().Get(constants.EventIdParam)
	if eventId == "" {
		utils.HandleError(w, badRequestError("event_id query parameter is required."))
		return
	}

	conflictProvider := provider.NewConflictProvider()
	scanner := conflictProvider.GetConflictScanner()
	alerts, err := scanner.ListAlerts(eventId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, model.ConflictListResponse{
		Conflicts: emptyIfNil(alerts),
		Count:     len(alerts),
	})
}

// UpdateAlertStatus handles PATCH /conflicts/alerts/{alert_id}
func (ch *ConflictHandler) UpdateAlertStatus(w http.ResponseWriter, r *http.Request) {

	pathParts := strings.Split(r.URL.Path, "/")
	if len(pathParts) < 3 {
		utils.HandleError(w, badRequestError("Invalid path."))
		return
	}
	alertId := pathParts[len(pathParts)-1]

	var req model.AlertStatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.HandleError(w, badRequestError(utils.HandleDecodeError(err, "alert status update")))
		return
	}

	conflictProvider := provider.NewConflictProvider()
	lifecycle := conflictProvider.GetAlertLifecycleService()
	if err := lifecycle.Transition(alertId, req.Status); err != nil {
		utils.HandleError(w, err)
		return
	}

	logger := log.GetLogger()
	logger.Info(fmt.Sprintf("Alert: %s updated to status: %s successfully", alertId, req.Status))
	utils.WriteJSONResponse(w, http.StatusOK, map[string]string{
		"alert_id": alertId,
		"status":   req.Status,
	})
}

func badRequestError(description string) *errors2.ClientError {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.INVALID_REQUEST_PAYLOAD.Code,
		Message:     errors2.INVALID_REQUEST_PAYLOAD.Message,
		Description: description,
	}, http.StatusBadRequest)
}

func emptyIfNil(alerts []model.DoubleBookingAlert) []model.DoubleBookingAlert {
	if alerts == nil {
		return []model.DoubleBookingAlert{}
	}
	return alerts
}
