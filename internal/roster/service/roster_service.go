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
	"time"

	"github.com/google/uuid"

	"github.com/DavidCapener182/KSSSupplier-sub002/internal/roster/model"
	"github.com/DavidCapener182/KSSSupplier-sub002/internal/roster/store"
	errors2 "github.com/DavidCapener182/KSSSupplier-sub002/internal/system/errors"
	"github.com/DavidCapener182/KSSSupplier-sub002/internal/system/workers"
)

type RosterServiceInterface interface {
	AddStaffRecord(record model.StaffRecord) (model.StaffRecord, error)
}

// RosterService receives staff record creations from the roster ingestion
// collaborator. Each accepted record is persisted and then queued for an
// incremental conflict scan, so detection runs eagerly per roster line
// instead of waiting for a full rescan.
type RosterService struct{}

// GetRosterService creates a new instance of RosterService.
func GetRosterService() RosterServiceInterface {

	return &RosterService{}
}

func (rs *RosterService) AddStaffRecord(record model.StaffRecord) (model.StaffRecord, error) {

	if record.StaffName == "" {
		return model.StaffRecord{}, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.STAFF_NAME_REQUIRED.Code,
			Message:     errors2.STAFF_NAME_REQUIRED.Message,
			Description: errors2.STAFF_NAME_REQUIRED.Description,
		}, http.StatusBadRequest)
	}

	assignment, err := store.GetAssignmentById(record.AssignmentId)
	if err != nil {
		return model.StaffRecord{}, err
	}
	if assignment == nil {
		return model.StaffRecord{}, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.ASSIGNMENT_NOT_FOUND.Code,
			Message:     errors2.ASSIGNMENT_NOT_FOUND.Message,
			Description: errors2.ASSIGNMENT_NOT_FOUND.Description,
		}, http.StatusNotFound)
	}

	record.RecordId = uuid.New().String()
	record.CreatedAt = time.Now().UTC().Unix()
	record.EventId = assignment.EventId
	record.ProviderId = assignment.ProviderId

	if err := store.AddStaffRecord(record); err != nil {
		return model.StaffRecord{}, err
	}

	workers.EnqueueStaffRecord(record)
	return record, nil
}
