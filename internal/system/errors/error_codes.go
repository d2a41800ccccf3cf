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

package errors

const errorPrefix = "SCS-"

var (
	// Server error codes

	DB_CLIENT_INIT = ErrorMessage{
		Code:    errorPrefix + "15001",
		Message: "Unable to initialize database client.",
	}

	FETCH_ASSIGNMENTS = ErrorMessage{
		Code:    errorPrefix + "15002",
		Message: "Error while fetching assignments for event.",
	}

	FETCH_STAFF_RECORDS = ErrorMessage{
		Code:    errorPrefix + "15003",
		Message: "Error while fetching staff records.",
	}

	ADD_STAFF_RECORD = ErrorMessage{
		Code:    errorPrefix + "15004",
		Message: "Error while adding staff record.",
	}

	PERSIST_ALERT = ErrorMessage{
		Code:    errorPrefix + "15005",
		Message: "Error while persisting double booking alert.",
	}

	FETCH_ALERTS = ErrorMessage{
		Code:    errorPrefix + "15006",
		Message: "Error while fetching double booking alerts.",
	}

	UPDATE_ALERT_STATUS = ErrorMessage{
		Code:    errorPrefix + "15007",
		Message: "Error while updating alert status.",
	}

	NOTIFY_ALERT = ErrorMessage{
		Code:    errorPrefix + "15008",
		Message: "Error while notifying administrators about a new alert.",
	}

	PARSING_ERROR = ErrorMessage{
		Code:    errorPrefix + "15009",
		Message: "Error while parsing authentication token.",
	}

	// Client error codes

	EVENT_NOT_FOUND = ErrorMessage{
		Code:        errorPrefix + "16001",
		Message:     "Event not found.",
		Description: "No event exists for the given event id.",
	}

	ALERT_NOT_FOUND = ErrorMessage{
		Code:        errorPrefix + "16002",
		Message:     "Alert not found.",
		Description: "No double booking alert exists for the given alert id.",
	}

	INVALID_ALERT_STATUS = ErrorMessage{
		Code:        errorPrefix + "16003",
		Message:     "Invalid alert status.",
		Description: "Alert status must be either 'resolved' or 'ignored'.",
	}

	INVALID_REQUEST_PAYLOAD = ErrorMessage{
		Code:    errorPrefix + "16004",
		Message: "Invalid request payload.",
	}

	ASSIGNMENT_NOT_FOUND = ErrorMessage{
		Code:        errorPrefix + "16005",
		Message:     "Assignment not found.",
		Description: "No assignment exists for the given assignment id.",
	}

	STAFF_NAME_REQUIRED = ErrorMessage{
		Code:        errorPrefix + "16006",
		Message:     "Staff name is required.",
		Description: "A staff record must carry a display name.",
	}

	UNAUTHORIZED = ErrorMessage{
		Code:        errorPrefix + "16007",
		Message:     "Unauthorized.",
		Description: "A valid bearer token is required to access this resource.",
	}
)
