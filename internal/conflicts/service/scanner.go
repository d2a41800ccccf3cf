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
	"time"

	"github.com/google/uuid"

	"github.com/DavidCapener182/KSSSupplier-sub002/internal/conflicts/model"
	"github.com/DavidCapener182/KSSSupplier-sub002/internal/matching"
	rostermodel "github.com/DavidCapener182/KSSSupplier-sub002/internal/roster/model"
	"github.com/DavidCapener182/KSSSupplier-sub002/internal/system/constants"
	errors2 "github.com/DavidCapener182/KSSSupplier-sub002/internal/system/errors"
	"github.com/DavidCapener182/KSSSupplier-sub002/internal/system/log"
)

// RosterReader is the read side of the roster consumed by the scanner.
type RosterReader interface {
	EventExists(eventId string) (bool, error)
	GetStaffRecordsByEvent(eventId string) ([]rostermodel.StaffRecord, error)
}

// AlertStore persists and reads double booking alerts.
type AlertStore interface {
	InsertAlertIfAbsent(alert model.DoubleBookingAlert) (bool, error)
	GetAlertsByEvent(eventId string) ([]model.DoubleBookingAlert, error)
}

// Notifier hands newly created alerts over to the notification collaborator.
type Notifier interface {
	NotifyNewAlert(alert model.DoubleBookingAlert) error
}

// ConflictScanner compares staff records within one event across providers
// and turns matches into persisted double booking alerts. Both the on-demand
// batch path and the per-insertion incremental path run through this one
// type, with the same Matcher, so they classify any given pair identically.
type ConflictScanner struct {
	roster   RosterReader
	alerts   AlertStore
	matcher  *matching.Matcher
	notifier Notifier
}

// NewConflictScanner creates a ConflictScanner with its collaborators passed
// in explicitly. Nothing here reaches for process-wide state, so the scanner
// is testable against in-memory fakes.
func NewConflictScanner(roster RosterReader, alerts AlertStore, matcher *matching.Matcher,
	notifier Notifier) *ConflictScanner {

	return &ConflictScanner{
		roster:   roster,
		alerts:   alerts,
		matcher:  matcher,
		notifier: notifier,
	}
}

// Scan runs a full batch comparison over every unordered pair of staff
// records for the event, skipping pairs owned by the same provider. The cost
// is O(n²) string comparisons, which is acceptable because rosters are scoped
// to one event (tens to low hundreds of entries). Candidates are deduplicated
// by canonical pair key within the run.
func (cs *ConflictScanner) Scan(eventId string) ([]model.ConflictCandidate, error) {

	exists, err := cs.roster.EventExists(eventId)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, eventNotFoundError()
	}

	records, err := cs.roster.GetStaffRecordsByEvent(eventId)
	if err != nil {
		return nil, err
	}

	var candidates []model.ConflictCandidate
	seen := make(map[string]bool)
	for i := 0; i < len(records); i++ {
		for j := i + 1; j < len(records); j++ {
			candidate, ok := cs.compare(records[i], records[j])
			if !ok || seen[candidate.PairKey()] {
				continue
			}
			seen[candidate.PairKey()] = true
			candidates = append(candidates, candidate)
		}
	}
	return candidates, nil
}

// ScanOne compares a single newly inserted staff record against the existing
// records of its event, giving O(n) cost per insertion. Scoping is strictly
// by event identifier; event dates play no part, so same-day conflicts can
// never fall out of scope over a date boundary.
func (cs *ConflictScanner) ScanOne(record rostermodel.StaffRecord) ([]model.ConflictCandidate, error) {

	records, err := cs.roster.GetStaffRecordsByEvent(record.EventId)
	if err != nil {
		return nil, err
	}

	var candidates []model.ConflictCandidate
	seen := make(map[string]bool)
	for _, existing := range records {
		if existing.RecordId == record.RecordId {
			continue
		}
		candidate, ok := cs.compare(record, existing)
		if !ok || seen[candidate.PairKey()] {
			continue
		}
		seen[candidate.PairKey()] = true
		candidates = append(candidates, candidate)
	}
	return candidates, nil
}

// DetectAndPersist runs a batch scan, persists the candidates and returns the
// complete current alert set for the event, pre-existing rows included.
func (cs *ConflictScanner) DetectAndPersist(eventId string) ([]model.DoubleBookingAlert, error) {

	candidates, err := cs.Scan(eventId)
	if err != nil {
		return nil, err
	}
	return cs.Persist(eventId, candidates)
}

// ScanOneAndPersist is the incremental counterpart of DetectAndPersist,
// invoked once per staff record insertion.
func (cs *ConflictScanner) ScanOneAndPersist(record rostermodel.StaffRecord) ([]model.DoubleBookingAlert, error) {

	candidates, err := cs.ScanOne(record)
	if err != nil {
		return nil, err
	}
	return cs.Persist(record.EventId, candidates)
}

// Persist writes one alert per candidate, relying on the store's pair
// uniqueness rule for idempotence: a pair that already has an alert, whatever
// its status, is left untouched. A failing write is logged and skipped so one
// bad row cannot blind the caller to the rest of the scan. Newly inserted
// alerts, and only those, are handed to the notifier.
func (cs *ConflictScanner) Persist(eventId string, candidates []model.ConflictCandidate) ([]model.DoubleBookingAlert, error) {

	logger := log.GetLogger()
	now := time.Now().UTC().Unix()

	var inserted []model.DoubleBookingAlert
	for _, candidate := range candidates {
		alert := model.DoubleBookingAlert{
			AlertId:       uuid.New().String(),
			EventId:       eventId,
			RecordId1:     candidate.RecordId1,
			RecordId2:     candidate.RecordId2,
			LicenseNumber: candidate.LicenseNumber,
			StaffName:     candidate.StaffName,
			MatchType:     candidate.MatchType,
			Similarity:    candidate.Similarity,
			Status:        constants.AlertStatusPending,
			CreatedAt:     now,
		}

		isNew, err := cs.alerts.InsertAlertIfAbsent(alert)
		if err != nil {
			logger.Error(fmt.Sprintf("Failed to persist alert for pair: %s, %s; continuing scan",
				candidate.RecordId1, candidate.RecordId2), log.Error(err))
			continue
		}
		if isNew {
			inserted = append(inserted, alert)
		}
	}

	for _, alert := range inserted {
		if cs.notifier == nil {
			break
		}
		if err := cs.notifier.NotifyNewAlert(alert); err != nil {
			logger.Error(fmt.Sprintf("Failed to notify administrators for alert: %s", alert.AlertId),
				log.Error(err))
		}
	}

	return cs.alerts.GetAlertsByEvent(eventId)
}

// ListAlerts returns the current alert set for an event without rescanning.
func (cs *ConflictScanner) ListAlerts(eventId string) ([]model.DoubleBookingAlert, error) {

	exists, err := cs.roster.EventExists(eventId)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, eventNotFoundError()
	}
	return cs.alerts.GetAlertsByEvent(eventId)
}

// compare classifies a pair and, when it matches, emits a candidate with the
// pair in canonical order by record identifier, not scan order. Same-provider
// pairs are never candidates: a provider may legitimately reuse a name format
// within its own roster.
func (cs *ConflictScanner) compare(a, b rostermodel.StaffRecord) (model.ConflictCandidate, bool) {

	if a.ProviderId == b.ProviderId {
		return model.ConflictCandidate{}, false
	}

	match := cs.matcher.Classify(a, b)
	if match.Type == constants.MatchTypeNone {
		return model.ConflictCandidate{}, false
	}

	first, second := a, b
	if second.RecordId < first.RecordId {
		first, second = second, first
	}

	return model.ConflictCandidate{
		RecordId1:     first.RecordId,
		RecordId2:     second.RecordId,
		MatchType:     match.Type,
		Similarity:    match.Score,
		LicenseNumber: match.SharedLicense,
		StaffName:     first.StaffName,
	}, true
}

func eventNotFoundError() *errors2.ClientError {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.EVENT_NOT_FOUND.Code,
		Message:     errors2.EVENT_NOT_FOUND.Message,
		Description: errors2.EVENT_NOT_FOUND.Description,
	}, http.StatusNotFound)
}
