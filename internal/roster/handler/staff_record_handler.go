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

	"github.com/DavidCapener182/KSSSupplier-sub002/internal/roster/model"
	"github.com/DavidCapener182/KSSSupplier-sub002/internal/roster/provider"
	errors2 "github.com/DavidCapener182/KSSSupplier-sub002/internal/system/errors"
	"github.com/DavidCapener182/KSSSupplier-sub002/internal/system/log"
	"github.com/DavidCapener182/KSSSupplier-sub002/internal/system/utils"
)

type StaffRecordHandler struct{}

func NewStaffRecordHandler() *StaffRecordHandler {

	return &StaffRecordHandler{}
}

// CreateStaffRecord handles POST /roster/staff-records
func (srh *StaffRecordHandler) CreateStaffRecord(w http.ResponseWriter, r *http.Request) {

	var record model.StaffRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		utils.HandleError(w, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.INVALID_REQUEST_PAYLOAD.Code,
			Message:     errors2.INVALID_REQUEST_PAYLOAD.Message,
			Description: utils.HandleDecodeError(err, "staff record"),
		}, http.StatusBadRequest))
		return
	}

	rosterProvider := provider.NewRosterProvider()
	rosterService := rosterProvider.GetRosterService()
	created, err := rosterService.AddStaffRecord(record)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	logger := log.GetLogger()
	logger.Info(fmt.Sprintf("Staff record: %s created successfully for assignment: %s", created.RecordId,
		created.AssignmentId))
	utils.WriteJSONResponse(w, http.StatusCreated, created)
}
