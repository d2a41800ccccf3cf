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

package schedulers

import (
	"fmt"
	"time"

	"github.com/DavidCapener182/KSSSupplier-sub002/internal/conflicts/provider"
	"github.com/DavidCapener182/KSSSupplier-sub002/internal/roster/store"
	"github.com/DavidCapener182/KSSSupplier-sub002/internal/system/log"
)

// StartRescanScheduler starts the periodic full-rescan job. Each tick it
// rescans every event that has assignments from more than one provider; an
// overlapping incremental scan is harmless because alert persistence is
// idempotent per pair.
func StartRescanScheduler(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Run once at startup.
	rescanQualifyingEvents()

	for range ticker.C {
		rescanQualifyingEvents()
	}
}

// rescanQualifyingEvents runs one batch scan per multi-provider event.
func rescanQualifyingEvents() {
	logger := log.GetLogger()

	eventIds, err := store.GetEventIdsWithMultipleProviders()
	if err != nil {
		logger.Error("Failed to list events for scheduled rescan", log.Error(err))
		return
	}

	scanner := provider.NewConflictProvider().GetConflictScanner()
	for _, eventId := range eventIds {
		alerts, err := scanner.DetectAndPersist(eventId)
		if err != nil {
			logger.Error(fmt.Sprintf("Scheduled rescan failed for event: %s", eventId), log.Error(err))
			continue
		}
		logger.Debug(fmt.Sprintf("Scheduled rescan for event: %s completed with %d alert(s)",
			eventId, len(alerts)))
	}
}
