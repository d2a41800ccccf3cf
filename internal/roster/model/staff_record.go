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

// StaffRecord is one named individual submitted by a provider against its
// assignment. Records are immutable once created; the conflict core never
// mutates or deletes them. EventId and ProviderId are resolved through the
// owning assignment when records are read for scanning.
type StaffRecord struct {
	RecordId      string `json:"record_id,omitempty"`
	AssignmentId  string `json:"assignment_id"`
	StaffName     string `json:"staff_name"`
	LicenseNumber string `json:"license_number,omitempty"`
	Notes         string `json:"notes,omitempty"`
	CreatedAt     int64  `json:"created_at,omitempty"`
	EventId       string `json:"event_id,omitempty"`
	ProviderId    string `json:"provider_id,omitempty"`
}

// Assignment is the relationship between one provider and one event, carrying
// the headcount it is contracted to supply. Read-only to this service.
type Assignment struct {
	AssignmentId string `json:"assignment_id"`
	EventId      string `json:"event_id"`
	ProviderId   string `json:"provider_id"`
	Headcount    int    `json:"headcount,omitempty"`
}

// Provider is an independent staffing company supplying workers to an event.
type Provider struct {
	ProviderId   string `json:"provider_id"`
	ProviderName string `json:"provider_name"`
}
