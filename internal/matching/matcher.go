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

package matching

import (
	"strings"

	rostermodel "github.com/DavidCapener182/KSSSupplier-sub002/internal/roster/model"
	"github.com/DavidCapener182/KSSSupplier-sub002/internal/system/constants"
)

// DefaultFuzzyNameThreshold is the exclusive lower bound a name similarity
// score must exceed to count as a fuzzy-name match.
const DefaultFuzzyNameThreshold = 0.85

// Match is the classification of a staff record pair.
type Match struct {
	Type          string
	Score         float64
	SharedLicense string
}

// Matcher decides whether two staff records refer to the same individual.
// Both the batch and the incremental scan path share one Matcher, so the two
// paths can never drift apart in classification behavior.
type Matcher struct {
	fuzzyThreshold float64
}

// NewMatcher creates a Matcher with the given fuzzy-name threshold. A
// non-positive threshold falls back to DefaultFuzzyNameThreshold.
func NewMatcher(fuzzyThreshold float64) *Matcher {

	if fuzzyThreshold <= 0 {
		fuzzyThreshold = DefaultFuzzyNameThreshold
	}
	return &Matcher{fuzzyThreshold: fuzzyThreshold}
}

// Classify applies the match rules in priority order. An exact license match
// is unambiguous ground truth and wins even when the names differ (nicknames,
// transliteration); name similarity is only a fallback when no usable license
// pair exists.
func (m *Matcher) Classify(a, b rostermodel.StaffRecord) Match {

	licenseA := strings.TrimSpace(a.LicenseNumber)
	licenseB := strings.TrimSpace(b.LicenseNumber)
	if licenseA != "" && licenseA == licenseB {
		return Match{
			Type:          constants.MatchTypeExactLicense,
			Score:         1.0,
			SharedLicense: licenseA,
		}
	}

	if a.StaffName != "" && b.StaffName != "" {
		score := Similarity(a.StaffName, b.StaffName)
		if score > m.fuzzyThreshold {
			return Match{
				Type:  constants.MatchTypeFuzzyName,
				Score: score,
			}
		}
	}

	return Match{Type: constants.MatchTypeNone}
}
