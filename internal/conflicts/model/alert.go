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

package model

// ConflictCandidate is a potential double booking discovered by a scan run.
// Candidates are ephemeral; only the alert persisted from a candidate outlives
// the scan. RecordId1 < RecordId2 always holds (canonical pair order), so the
// same unordered pair produces the same key regardless of discovery order.
type ConflictCandidate struct {
	RecordId1     string
	RecordId2     string
	MatchType     string
	Similarity    float64
	LicenseNumber string
	StaffName     string
}

// PairKey returns the canonical identity of the unordered record pair.
func (c ConflictCandidate) PairKey() string {
	return c.RecordId1 + ":" + c.RecordId2
}

// DoubleBookingAlert is the persistent record of a detected double booking.
// At most one alert row can ever exist for a given unordered record pair
// within an event, enforced by a uniqueness constraint at the database.
type DoubleBookingAlert struct {
	AlertId       string  `json:"alert_id"`
	EventId       string  `json:"event_id"`
	RecordId1     string  `json:"record_id_1"`
	RecordId2     string  `json:"record_id_2"`
	LicenseNumber string  `json:"license_number,omitempty"`
	StaffName     string  `json:"staff_name"`
	MatchType     string  `json:"match_type"`
	Similarity    float64 `json:"similarity"`
	Status        string  `json:"status"`
	CreatedAt     int64   `json:"created_at"`
	// Provider display names of each side, resolved at read time for the admin UI.
	ProviderName1 string `json:"provider_name_1,omitempty"`
	ProviderName2 string `json:"provider_name_2,omitempty"`
}

// DetectConflictsRequest is the payload of POST /conflicts/detect.
type DetectConflictsRequest struct {
	EventId string `json:"event_id"`
}

// ConflictListResponse is the response of detection and listing endpoints.
type ConflictListResponse struct {
	Conflicts []DoubleBookingAlert `json:"conflicts"`
	Count     int                  `json:"count"`
}

// AlertStatusUpdateRequest is the payload of PATCH /conflicts/alerts/{alert_id}.
type AlertStatusUpdateRequest struct {
	Status string `json:"status"`
}
