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

package store

import (
	"fmt"

	"github.com/DavidCapener182/KSSSupplier-sub002/internal/roster/model"
	"github.com/DavidCapener182/KSSSupplier-sub002/internal/system/database/provider"
	errors2 "github.com/DavidCapener182/KSSSupplier-sub002/internal/system/errors"
	"github.com/DavidCapener182/KSSSupplier-sub002/internal/system/log"
)

// EventExists reports whether an event row exists for the given event id.
func EventExists(eventId string) (bool, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for checking event: %s", eventId)
		logger.Debug(errorMsg, log.Error(err))
		serverError := errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DB_CLIENT_INIT.Code,
			Message:     errors2.DB_CLIENT_INIT.Message,
			Description: errorMsg,
		}, err)
		return false, serverError
	}
	defer dbClient.Close()

	query := `SELECT event_id FROM events WHERE event_id = $1`
	rows, err := dbClient.ExecuteQuery(query, eventId)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed in checking existence of event: %s", eventId)
		logger.Debug(errorMsg, log.Error(err))
		serverError := errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_ASSIGNMENTS.Code,
			Message:     errors2.FETCH_ASSIGNMENTS.Message,
			Description: errorMsg,
		}, err)
		return false, serverError
	}
	return len(rows) > 0, nil
}

// GetAssignmentById retrieves one assignment, resolving its event and provider.
// Returns nil when no assignment exists for the id.
func GetAssignmentById(assignmentId string) (*model.Assignment, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for fetching assignment: %s", assignmentId)
		logger.Debug(errorMsg, log.Error(err))
		serverError := errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_ASSIGNMENTS.Code,
			Message:     errors2.FETCH_ASSIGNMENTS.Message,
			Description: errorMsg,
		}, err)
		return nil, serverError
	}
	defer dbClient.Close()

	query := `SELECT assignment_id, event_id, provider_id, headcount FROM assignments WHERE assignment_id = $1`
	rows, err := dbClient.ExecuteQuery(query, assignmentId)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed in fetching assignment: %s", assignmentId)
		logger.Debug(errorMsg, log.Error(err))
		serverError := errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_ASSIGNMENTS.Code,
			Message:     errors2.FETCH_ASSIGNMENTS.Message,
			Description: errorMsg,
		}, err)
		return nil, serverError
	}
	if len(rows) == 0 {
		return nil, nil
	}

	row := rows[0]
	return &model.Assignment{
		AssignmentId: asString(row["assignment_id"]),
		EventId:      asString(row["event_id"]),
		ProviderId:   asString(row["provider_id"]),
		Headcount:    int(asInt64(row["headcount"])),
	}, nil
}

// GetStaffRecordsByEvent retrieves all staff records for an event across all
// of its assignments, with each record's owning event and provider resolved.
// The retrieval order is stable (insertion order by created_at, then record id)
// so repeated scans walk pairs the same way.
func GetStaffRecordsByEvent(eventId string) ([]model.StaffRecord, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for fetching staff records for event: %s", eventId)
		logger.Debug(errorMsg, log.Error(err))
		serverError := errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_STAFF_RECORDS.Code,
			Message:     errors2.FETCH_STAFF_RECORDS.Message,
			Description: errorMsg,
		}, err)
		return nil, serverError
	}
	defer dbClient.Close()

	query := `SELECT r.record_id, r.assignment_id, r.staff_name, r.license_number, r.notes, r.created_at,
	                 a.event_id, a.provider_id
	          FROM staff_records r
	          JOIN assignments a ON a.assignment_id = r.assignment_id
	          WHERE a.event_id = $1
	          ORDER BY r.created_at, r.record_id`

	rows, err := dbClient.ExecuteQuery(query, eventId)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed in fetching staff records for event: %s", eventId)
		logger.Debug(errorMsg, log.Error(err))
		serverError := errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_STAFF_RECORDS.Code,
			Message:     errors2.FETCH_STAFF_RECORDS.Message,
			Description: errorMsg,
		}, err)
		return nil, serverError
	}

	var records []model.StaffRecord
	for _, row := range rows {
		records = append(records, mapRowToStaffRecord(row))
	}
	return records, nil
}

// AddStaffRecord inserts one staff record as produced by the roster ingestion
// collaborator. Records are never updated after this insert.
func AddStaffRecord(record model.StaffRecord) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for adding staff record: %s", record.RecordId)
		logger.Debug(errorMsg, log.Error(err))
		serverError := errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_STAFF_RECORD.Code,
			Message:     errors2.ADD_STAFF_RECORD.Message,
			Description: errorMsg,
		}, err)
		return serverError
	}
	defer dbClient.Close()

	query := `INSERT INTO staff_records (record_id, assignment_id, staff_name, license_number, notes, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = dbClient.ExecuteStatement(query, record.RecordId, record.AssignmentId, record.StaffName,
		record.LicenseNumber, record.Notes, record.CreatedAt)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed on inserting staff record: %s", record.RecordId)
		logger.Debug(errorMsg, log.Error(err))
		serverError := errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_STAFF_RECORD.Code,
			Message:     errors2.ADD_STAFF_RECORD.Message,
			Description: errorMsg,
		}, err)
		return serverError
	}

	logger.Info(fmt.Sprintf("Staff record: %s added successfully for assignment: %s", record.RecordId,
		record.AssignmentId))
	return nil
}

// GetEventIdsWithMultipleProviders returns the ids of events that have
// assignments from at least two distinct providers. Only those events can
// carry cross-provider double bookings, so the scheduled rescan is scoped
// to them.
func GetEventIdsWithMultipleProviders() ([]string, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := "Failed to get db client for listing multi-provider events"
		logger.Debug(errorMsg, log.Error(err))
		serverError := errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_ASSIGNMENTS.Code,
			Message:     errors2.FETCH_ASSIGNMENTS.Message,
			Description: errorMsg,
		}, err)
		return nil, serverError
	}
	defer dbClient.Close()

	query := `SELECT event_id FROM assignments GROUP BY event_id HAVING COUNT(DISTINCT provider_id) > 1`
	rows, err := dbClient.ExecuteQuery(query)
	if err != nil {
		errorMsg := "Failed in listing events with multiple providers"
		logger.Debug(errorMsg, log.Error(err))
		serverError := errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_ASSIGNMENTS.Code,
			Message:     errors2.FETCH_ASSIGNMENTS.Message,
			Description: errorMsg,
		}, err)
		return nil, serverError
	}

	var eventIds []string
	for _, row := range rows {
		eventIds = append(eventIds, asString(row["event_id"]))
	}
	return eventIds, nil
}

func mapRowToStaffRecord(row map[string]interface{}) model.StaffRecord {
	return model.StaffRecord{
		RecordId:      asString(row["record_id"]),
		AssignmentId:  asString(row["assignment_id"]),
		StaffName:     asString(row["staff_name"]),
		LicenseNumber: asString(row["license_number"]),
		Notes:         asString(row["notes"]),
		CreatedAt:     asInt64(row["created_at"]),
		EventId:       asString(row["event_id"]),
		ProviderId:    asString(row["provider_id"]),
	}
}

func asString(val interface{}) string {
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return ""
	}
}

func asInt64(val interface{}) int64 {
	switch v := val.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	default:
		return 0
	}
}
