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
	"strconv"

	"github.com/DavidCapener182/KSSSupplier-sub002/internal/conflicts/model"
	"github.com/DavidCapener182/KSSSupplier-sub002/internal/system/database/provider"
	errors2 "github.com/DavidCapener182/KSSSupplier-sub002/internal/system/errors"
	"github.com/DavidCapener182/KSSSupplier-sub002/internal/system/log"
)

// InsertAlertIfAbsent inserts one alert row keyed by (event_id, record_id_1,
// record_id_2). When a row for that pair already exists, in any status, the
// insert is a no-op and the existing row is left untouched. The uniqueness
// check lives in the database constraint, not in application code, so two
// overlapping scans racing on the same pair cannot both insert; the losing
// writer's insert is simply dropped.
//
// Returns true when a new row was inserted.
func InsertAlertIfAbsent(alert model.DoubleBookingAlert) (bool, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for persisting alert for pair: %s, %s",
			alert.RecordId1, alert.RecordId2)
		logger.Debug(errorMsg, log.Error(err))
		serverError := errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.PERSIST_ALERT.Code,
			Message:     errors2.PERSIST_ALERT.Message,
			Description: errorMsg,
		}, err)
		return false, serverError
	}
	defer dbClient.Close()

	query := `INSERT INTO double_booking_alerts
	          (alert_id, event_id, record_id_1, record_id_2, license_number, staff_name, match_type, similarity, status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	          ON CONFLICT (event_id, record_id_1, record_id_2) DO NOTHING`

	affected, err := dbClient.ExecuteStatement(query, alert.AlertId, alert.EventId, alert.RecordId1,
		alert.RecordId2, alert.LicenseNumber, alert.StaffName, alert.MatchType, alert.Similarity,
		alert.Status, alert.CreatedAt)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed on inserting alert for pair: %s, %s in event: %s",
			alert.RecordId1, alert.RecordId2, alert.EventId)
		logger.Debug(errorMsg, log.Error(err))
		serverError := errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.PERSIST_ALERT.Code,
			Message:     errors2.PERSIST_ALERT.Message,
			Description: errorMsg,
		}, err)
		return false, serverError
	}

	return affected > 0, nil
}

// GetAlertsByEvent retrieves every alert for an event, in any status, with
// each side's provider display name resolved for presentation.
func GetAlertsByEvent(eventId string) ([]model.DoubleBookingAlert, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for fetching alerts for event: %s", eventId)
		logger.Debug(errorMsg, log.Error(err))
		serverError := errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_ALERTS.Code,
			Message:     errors2.FETCH_ALERTS.Message,
			Description: errorMsg,
		}, err)
		return nil, serverError
	}
	defer dbClient.Close()

	query := `SELECT al.alert_id, al.event_id, al.record_id_1, al.record_id_2, al.license_number,
	                 al.staff_name, al.match_type, al.similarity, al.status, al.created_at,
	                 p1.provider_name AS provider_name_1, p2.provider_name AS provider_name_2
	          FROM double_booking_alerts al
	          LEFT JOIN staff_records r1 ON r1.record_id = al.record_id_1
	          LEFT JOIN assignments a1 ON a1.assignment_id = r1.assignment_id
	          LEFT JOIN providers p1 ON p1.provider_id = a1.provider_id
	          LEFT JOIN staff_records r2 ON r2.record_id = al.record_id_2
	          LEFT JOIN assignments a2 ON a2.assignment_id = r2.assignment_id
	          LEFT JOIN providers p2 ON p2.provider_id = a2.provider_id
	          WHERE al.event_id = $1
	          ORDER BY al.created_at, al.alert_id`

	rows, err := dbClient.ExecuteQuery(query, eventId)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed in fetching alerts for event: %s", eventId)
		logger.Debug(errorMsg, log.Error(err))
		serverError := errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_ALERTS.Code,
			Message:     errors2.FETCH_ALERTS.Message,
			Description: errorMsg,
		}, err)
		return nil, serverError
	}

	var alerts []model.DoubleBookingAlert
	for _, row := range rows {
		alerts = append(alerts, mapRowToAlert(row))
	}
	return alerts, nil
}

// GetAlertById retrieves one alert. Returns nil when no alert exists for the id.
func GetAlertById(alertId string) (*model.DoubleBookingAlert, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for fetching alert: %s", alertId)
		logger.Debug(errorMsg, log.Error(err))
		serverError := errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_ALERTS.Code,
			Message:     errors2.FETCH_ALERTS.Message,
			Description: errorMsg,
		}, err)
		return nil, serverError
	}
	defer dbClient.Close()

	query := `SELECT alert_id, event_id, record_id_1, record_id_2, license_number, staff_name,
	                 match_type, similarity, status, created_at
	          FROM double_booking_alerts WHERE alert_id = $1`

	rows, err := dbClient.ExecuteQuery(query, alertId)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed in fetching alert: %s", alertId)
		logger.Debug(errorMsg, log.Error(err))
		serverError := errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_ALERTS.Code,
			Message:     errors2.FETCH_ALERTS.Message,
			Description: errorMsg,
		}, err)
		return nil, serverError
	}
	if len(rows) == 0 {
		return nil, nil
	}

	alert := mapRowToAlert(rows[0])
	return &alert, nil
}

// UpdateAlertStatusFromPending moves one pending alert to the given status.
// The WHERE clause pins the current status to pending, so a resolved or
// ignored alert can never be moved again, and no transition leads back to
// pending. Returns the number of rows updated (0 or 1).
func UpdateAlertStatusFromPending(alertId string, status string) (int64, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for updating alert: %s", alertId)
		logger.Debug(errorMsg, log.Error(err))
		serverError := errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_ALERT_STATUS.Code,
			Message:     errors2.UPDATE_ALERT_STATUS.Message,
			Description: errorMsg,
		}, err)
		return 0, serverError
	}
	defer dbClient.Close()

	query := `UPDATE double_booking_alerts SET status = $1 WHERE alert_id = $2 AND status = 'pending'`
	affected, err := dbClient.ExecuteStatement(query, status, alertId)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed on updating status of alert: %s", alertId)
		logger.Debug(errorMsg, log.Error(err))
		serverError := errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_ALERT_STATUS.Code,
			Message:     errors2.UPDATE_ALERT_STATUS.Message,
			Description: errorMsg,
		}, err)
		return 0, serverError
	}

	return affected, nil
}

func mapRowToAlert(row map[string]interface{}) model.DoubleBookingAlert {
	return model.DoubleBookingAlert{
		AlertId:       asString(row["alert_id"]),
		EventId:       asString(row["event_id"]),
		RecordId1:     asString(row["record_id_1"]),
		RecordId2:     asString(row["record_id_2"]),
		LicenseNumber: asString(row["license_number"]),
		StaffName:     asString(row["staff_name"]),
		MatchType:     asString(row["match_type"]),
		Similarity:    asFloat64(row["similarity"]),
		Status:        asString(row["status"]),
		CreatedAt:     asInt64(row["created_at"]),
		ProviderName1: asString(row["provider_name_1"]),
		ProviderName2: asString(row["provider_name_2"]),
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

func asFloat64(val interface{}) float64 {
	switch v := val.(type) {
	case float64:
		return v
	case []byte:
		f, _ := strconv.ParseFloat(string(v), 64)
		return f
	default:
		return 0
	}
}
