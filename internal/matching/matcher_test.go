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
	"testing"

	"github.com/stretchr/testify/assert"

	rostermodel "github.com/DavidCapener182/KSSSupplier-sub002/internal/roster/model"
	"github.com/DavidCapener182/KSSSupplier-sub002/internal/system/constants"
)

func record(name, license string) rostermodel.StaffRecord {

	return rostermodel.StaffRecord{StaffName: name, LicenseNumber: license}
}

func TestClassify_ExactLicenseWinsOverDifferentNames(t *testing.T) {

	m := NewMatcher(0)
	match := m.Classify(record("John Smith", "SIA-9912"), record("Jon Smyth", "SIA-9912"))

	assert.Equal(t, constants.MatchTypeExactLicense, match.Type)
	assert.Equal(t, 1.0, match.Score)
	assert.Equal(t, "SIA-9912", match.SharedLicense)
}

func TestClassify_LicenseWhitespaceTrimmed(t *testing.T) {

	m := NewMatcher(0)
	match := m.Classify(record("John Smith", "  SIA-9912 "), record("Jon Smyth", "SIA-9912"))

	assert.Equal(t, constants.MatchTypeExactLicense, match.Type)
	assert.Equal(t, "SIA-9912", match.SharedLicense)
}

func TestClassify_EmptyLicensesNeverMatchExact(t *testing.T) {

	m := NewMatcher(0)
	match := m.Classify(record("Mike Jones", ""), record("Michael Jonas", "   "))

	assert.Equal(t, constants.MatchTypeNone, match.Type)
}

func TestClassify_FuzzyNameFallback(t *testing.T) {

	m := NewMatcher(0)
	match := m.Classify(record("Sarah O'Brien", "SIA-1001"), record("Sarah Obrien", "SIA-2002"))

	assert.Equal(t, constants.MatchTypeFuzzyName, match.Type)
	assert.InDelta(t, 12.0/13.0, match.Score, 1e-9)
	assert.Empty(t, match.SharedLicense)
}

func TestClassify_LowSimilarityIsNoMatch(t *testing.T) {

	m := NewMatcher(0)
	match := m.Classify(record("Mike Jones", "SIA-1001"), record("Michael Jonas", "SIA-2002"))

	assert.Equal(t, constants.MatchTypeNone, match.Type)
}

func TestClassify_ThresholdIsExclusive(t *testing.T) {

	// "ab" vs "ax" has similarity exactly 0.5; a score equal to the
	// threshold must not count as a fuzzy match.
	m := NewMatcher(0.5)
	match := m.Classify(record("ab", ""), record("ax", ""))

	assert.Equal(t, constants.MatchTypeNone, match.Type)
}

func TestClassify_MissingNameIsNoMatch(t *testing.T) {

	m := NewMatcher(0)

	assert.Equal(t, constants.MatchTypeNone, m.Classify(record("", ""), record("John Smith", "")).Type)
	assert.Equal(t, constants.MatchTypeNone, m.Classify(record("John Smith", ""), record("", "")).Type)
}

func TestNewMatcher_NonPositiveThresholdFallsBack(t *testing.T) {

	assert.Equal(t, DefaultFuzzyNameThreshold, NewMatcher(0).fuzzyThreshold)
	assert.Equal(t, DefaultFuzzyNameThreshold, NewMatcher(-1).fuzzyThreshold)
	assert.Equal(t, 0.9, NewMatcher(0.9).fuzzyThreshold)
}
