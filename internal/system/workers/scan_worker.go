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

package workers

import (
	"fmt"

	"github.com/DavidCapener182/KSSSupplier-sub002/internal/conflicts/provider"
	rostermodel "github.com/DavidCapener182/KSSSupplier-sub002/internal/roster/model"
	"github.com/DavidCapener182/KSSSupplier-sub002/internal/system/log"
)

// ScanQueue carries newly inserted staff records to the incremental scanner.
// One message per insertion keeps incremental scans naturally serialized.
var ScanQueue chan rostermodel.StaffRecord

// StartScanWorker starts the background consumer of the incremental scan
// queue. This replaces a database insert trigger with an explicit, observable
// call path: the roster service enqueues, this worker scans.
func StartScanWorker() {
	ScanQueue = make(chan rostermodel.StaffRecord, 1000)

	go func() {
		for record := range ScanQueue {
			scanner := provider.NewConflictProvider().GetConflictScanner()
			alerts, err := scanner.ScanOneAndPersist(record)
			if err != nil {
				log.GetLogger().Error(fmt.Sprintf("Incremental scan failed for staff record: %s",
					record.RecordId), log.Error(err))
				continue
			}
			log.GetLogger().Debug(fmt.Sprintf("Incremental scan for staff record: %s completed, "+
				"event now carries %d alert(s)", record.RecordId, len(alerts)))
		}
	}()
}

// EnqueueStaffRecord queues one staff record for an incremental scan.
func EnqueueStaffRecord(record rostermodel.StaffRecord) {
	if ScanQueue != nil {
		ScanQueue <- record
	}
}
